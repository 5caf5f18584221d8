// Package importer reads appointment rows from csv and xlsx uploads.
package importer

import (
	"bytes"
	"dockhub/internal/domains/appointment/model"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	ExtensionCSV  = ".csv"
	ExtensionXLSX = ".xlsx"

	minutesPerDay = 24 * 60
)

var (
	ErrUnsupportedFile = errors.New("only .csv and .xlsx files are supported")
	ErrEmptyFile       = errors.New("file has no rows")
	ErrNoSheet         = errors.New("workbook has no sheets")
)

var (
	dateLayouts  = []string{"01/02/2006", "1/2/2006", "01/02/06", "1/2/06", time.DateOnly}
	clockLayouts = []string{"15:04:05", "15:04", "3:04:05 PM", "3:04 PM", "1504"}
)

// column positions when the file has no recognizable header
const (
	columnDate = iota
	columnTime
	columnSalesOrder
	columnDelivery
)

var headerNames = map[int][]string{
	columnDate:       {"start date", "date", "scheduled date", "appointment date"},
	columnTime:       {"start time", "time", "scheduled time", "appointment time"},
	columnSalesOrder: {"sales order", "sales_order", "salesorder", "so", "sales order number"},
	columnDelivery:   {"delivery", "delivery number", "delivery_number", "dn"},
}

// Row is one parsed data line. Line is 1-based as shown in a spreadsheet.
type Row struct {
	Line          int
	ScheduledDate time.Time
	ScheduledTime string
	SalesOrder    string
	Delivery      string
	Err           error
}

// Parse picks the reader by file extension.
func Parse(filename string, data []byte) ([]Row, error) {
	var (
		records [][]string
		err     error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ExtensionCSV:
		records, err = readCSV(data)
	case ExtensionXLSX:
		records, err = readXLSX(data)
	default:
		return nil, ErrUnsupportedFile
	}

	if err != nil {
		return nil, err
	}

	return parseRecords(records)
}

func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	return records, nil
}

// readXLSX returns raw cell values of the first sheet so dates and times arrive as serial numbers.
func readXLSX(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}

	rows, err := file.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	return rows, nil
}

func normalizeHeader(value string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(value))), " ")
}

// detectHeader maps columns by name. ok is false when the record is data, not a header.
func detectHeader(record []string) (map[int]int, bool) {
	positions := map[int]int{}

	for index, cell := range record {
		name := normalizeHeader(cell)

		for column, names := range headerNames {
			if _, taken := positions[column]; !taken && slices.Contains(names, name) {
				positions[column] = index
			}
		}
	}

	_, hasDate := positions[columnDate]
	_, hasTime := positions[columnTime]

	return positions, hasDate && hasTime
}

func blank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

func parseRecords(records [][]string) ([]Row, error) {
	start := slices.IndexFunc(records, func(record []string) bool { return !blank(record) })
	if start < 0 {
		return nil, ErrEmptyFile
	}

	positions, hasHeader := detectHeader(records[start])
	if hasHeader {
		start++
	} else {
		positions = map[int]int{columnDate: 0, columnTime: 1, columnSalesOrder: 2, columnDelivery: 3} //nolint:mnd
	}

	cell := func(record []string, column int) string {
		index, ok := positions[column]
		if !ok || index >= len(record) {
			return ""
		}

		return strings.TrimSpace(record[index])
	}

	rows := make([]Row, 0, len(records)-start)

	for i := start; i < len(records); i++ {
		record := records[i]
		if blank(record) {
			continue
		}

		row := Row{
			Line:       i + 1,
			SalesOrder: cell(record, columnSalesOrder),
			Delivery:   cell(record, columnDelivery),
		}

		row.ScheduledDate, row.Err = ParseDate(cell(record, columnDate))

		if row.Err == nil {
			row.ScheduledTime, row.Err = ParseTime(cell(record, columnTime))
		}

		if row.Err == nil && row.SalesOrder == "" && row.Delivery == "" {
			row.Err = errors.New("sales order or delivery is required")
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// ParseDate accepts MM/DD/YYYY, ISO dates and spreadsheet serial numbers. The result is a UTC date.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("start date is required")
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial >= 1 {
		parsed, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid start date %q, expected MM/DD/YYYY", value)
}

// ParseTime accepts HH:MM:SS, HH:MM, 12 hour clocks, HHMM, work in and fractional days.
// Seconds are dropped and the result is HHMM.
func ParseTime(value string) (string, error) {
	if value == "" {
		return "", errors.New("start time is required")
	}

	if normalizeHeader(strings.ReplaceAll(value, "_", " ")) == "work in" {
		return model.WorkIn, nil
	}

	for _, layout := range clockLayouts {
		if parsed, err := time.Parse(layout, strings.ToUpper(value)); err == nil {
			return parsed.Format("1504"), nil
		}
	}

	if fraction, err := strconv.ParseFloat(value, 64); err == nil && fraction >= 0 {
		_, fraction = math.Modf(fraction)

		minute := int(math.Round(fraction*minutesPerDay)) % minutesPerDay

		return fmt.Sprintf("%02d%02d", minute/60, minute%60), nil //nolint:mnd
	}

	return "", fmt.Errorf("invalid start time %q, expected HH:MM:SS", value)
}
