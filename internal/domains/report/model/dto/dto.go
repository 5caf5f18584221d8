package dto

import (
	"dockhub/internal/domains/report/model"
	gDto "dockhub/shared/dto"
	"dockhub/shared/failure"
	"dockhub/shared/timezone"
	"dockhub/shared/validator"
	"net/http"
	"time"
)

type DetentionRequest struct {
	From string `json:"from" validate:"required,datetime=2006-01-02"`
	To   string `json:"to"   validate:"required,datetime=2006-01-02"`
}

func (r *DetentionRequest) FromRequest(req *http.Request) {
	query := req.URL.Query()

	r.From = query.Get("from")
	r.To = query.Get("to")
}

// Range returns the half-open facility-time interval covering both days inclusively.
func (r *DetentionRequest) Range() (time.Time, time.Time, error) {
	if err := validator.ValidateStruct(r); err != nil {
		return time.Time{}, time.Time{}, err //nolint:wrapcheck
	}

	from, err := timezone.ParseDay(r.From)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	to, err := timezone.ParseDay(r.To)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("to must not be before from") //nolint:wrapcheck
	}

	to = to.AddDate(0, 0, 1)

	if to.Sub(from) > model.MaxRangeDays*24*time.Hour {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("report range is limited to 92 days") //nolint:wrapcheck
	}

	return from, to, nil
}

type RowResponse struct {
	CheckInID        string  `json:"check_in_id"`
	DriverName       string  `json:"driver_name"`
	CarrierName      string  `json:"carrier_name"`
	ReferenceNumber  string  `json:"reference_number"`
	LoadType         string  `json:"load_type"`
	DockNumber       *string `json:"dock_number"`
	Status           string  `json:"status"`
	AppointmentTime  *string `json:"appointment_time"`
	CheckInTime      string  `json:"check_in_time"`
	EndTime          *string `json:"end_time"`
	OnTime           bool    `json:"on_time"`
	DetentionMinutes int     `json:"detention_minutes"`
	DwellMinutes     *int    `json:"dwell_minutes"`
}

func (r *RowResponse) FromModel(row model.Row) {
	r.CheckInID = row.CheckIn.ID
	r.DriverName = row.CheckIn.DriverName
	r.CarrierName = row.CheckIn.CarrierName
	r.ReferenceNumber = row.CheckIn.ReferenceNumber
	r.LoadType = row.CheckIn.LoadType
	r.DockNumber = row.CheckIn.DockNumber
	r.Status = string(row.CheckIn.Status)
	r.AppointmentTime = row.CheckIn.AppointmentTime
	r.CheckInTime = gDto.Timestamp(row.CheckIn.CheckInTime)
	r.OnTime = row.OnTime
	r.DetentionMinutes = row.DetentionMinutes
	r.DwellMinutes = row.DwellMinutes
	r.EndTime = gDto.OptionalTimestamp(row.End)
}

type SummaryResponse struct {
	Total            int `json:"total"`
	OnTime           int `json:"on_time"`
	Late             int `json:"late"`
	Unscheduled      int `json:"unscheduled"`
	WithDetention    int `json:"with_detention"`
	DetentionMinutes int `json:"detention_minutes"`
}

type DetentionResponse struct {
	From    string          `json:"from"`
	To      string          `json:"to"`
	Rows    []RowResponse   `json:"rows"`
	Summary SummaryResponse `json:"summary"`
}

func (r *DetentionResponse) FromModels(req DetentionRequest, rows []model.Row, summary model.Summary) {
	r.From = req.From
	r.To = req.To
	r.Summary = SummaryResponse(summary)

	r.Rows = make([]RowResponse, len(rows))
	for i, row := range rows {
		r.Rows[i].FromModel(row)
	}
}
