package importer_test

import (
	"dockhub/internal/domains/appointment/importer"
	"dockhub/internal/domains/appointment/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParse_CSVWithHeader(t *testing.T) {
	data := []byte("\xef\xbb\xbfDelivery,Start Date,Start Time,Sales Order\n" +
		"DN-1,03/02/2026,08:00:00,SO-1\n" +
		",,,\n" +
		",3/2/2026,13:30:00,SO-2\n" +
		"DN-3,03/02/2026,25:00:00,\n" +
		",03/02/2026,09:00:00,\n")

	rows, err := importer.Parse("schedule.CSV", data)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), rows[0].ScheduledDate)
	assert.Equal(t, "0800", rows[0].ScheduledTime)
	assert.Equal(t, "SO-1", rows[0].SalesOrder)
	assert.Equal(t, "DN-1", rows[0].Delivery)
	require.NoError(t, rows[0].Err)

	assert.Equal(t, 4, rows[1].Line)
	assert.Equal(t, "1330", rows[1].ScheduledTime)
	assert.Empty(t, rows[1].Delivery)
	require.NoError(t, rows[1].Err)

	require.Error(t, rows[2].Err)
	assert.Contains(t, rows[2].Err.Error(), "invalid start time")

	require.Error(t, rows[3].Err)
	assert.Contains(t, rows[3].Err.Error(), "sales order or delivery")
}

func TestParse_CSVWithoutHeader(t *testing.T) {
	rows, err := importer.Parse("schedule.csv", []byte("03/03/2026,0.25,SO-9,DN-9\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, 1, rows[0].Line)
	assert.Equal(t, "0600", rows[0].ScheduledTime)
	assert.Equal(t, "SO-9", rows[0].SalesOrder)
	assert.Equal(t, "DN-9", rows[0].Delivery)
}

func TestParse_XLSX(t *testing.T) {
	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	require.NoError(t, file.SetSheetRow(sheet, "A1", &[]any{"Start Date", "Start Time", "Sales Order", "Delivery"}))
	require.NoError(t, file.SetSheetRow(sheet, "A2", &[]any{46083, 0.5, "SO-1", ""}))
	require.NoError(t, file.SetSheetRow(sheet, "A3", &[]any{"03/02/2026", "07:30:00", "", "DN-2"}))

	buffer, err := file.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, file.Close())

	rows, err := importer.Parse("schedule.xlsx", buffer.Bytes())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NoError(t, rows[0].Err)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), rows[0].ScheduledDate)
	assert.Equal(t, "1200", rows[0].ScheduledTime)

	require.NoError(t, rows[1].Err)
	assert.Equal(t, "0730", rows[1].ScheduledTime)
	assert.Equal(t, "DN-2", rows[1].Delivery)
}

func TestParse_Rejected(t *testing.T) {
	_, err := importer.Parse("schedule.pdf", []byte("x"))
	require.ErrorIs(t, err, importer.ErrUnsupportedFile)

	_, err = importer.Parse("schedule.csv", []byte("\n\n"))
	require.ErrorIs(t, err, importer.ErrEmptyFile)

	_, err = importer.Parse("schedule.xlsx", []byte("not a zip"))
	require.Error(t, err)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		value   string
		want    time.Time
		wantErr bool
	}{
		{value: "03/02/2026", want: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		{value: "3/2/2026", want: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		{value: "2026-03-02", want: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		{value: "46083", want: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		{value: "13/02/2026", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := importer.ParseDate(tt.value)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		value   string
		want    string
		wantErr bool
	}{
		{value: "08:00:00", want: "0800"},
		{value: "17:30", want: "1730"},
		{value: "2:15 pm", want: "1415"},
		{value: "0530", want: "0530"},
		{value: "0.75", want: "1800"},
		{value: "46083.375", want: "0900"},
		{value: "0.99999", want: "0000"},
		{value: "Work In", want: model.WorkIn},
		{value: "work_in", want: model.WorkIn},
		{value: "noon", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := importer.ParseTime(tt.value)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
