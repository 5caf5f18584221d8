package dto

import (
	"dockhub/internal/domains/checkin/model"
	"dockhub/shared"
	gDto "dockhub/shared/dto"
	gModel "dockhub/shared/model"
	"dockhub/shared/timezone"
	"dockhub/shared/validator"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateCheckInRequest struct {
	DriverName       string `json:"driver_name"       validate:"required,max=100"`
	DriverPhone      string `json:"driver_phone"      validate:"required,phone"`
	DriverEmail      string `json:"driver_email"      validate:"omitempty,email,max=100"`
	CarrierName      string `json:"carrier_name"      validate:"required,max=100"`
	TrailerNumber    string `json:"trailer_number"    validate:"required,max=30"`
	TrailerLength    string `json:"trailer_length"    validate:"omitempty,max=10"`
	DestinationCity  string `json:"destination_city"  validate:"omitempty,max=100"`
	DestinationState string `json:"destination_state" validate:"omitempty,usstate"`
	LoadType         string `json:"load_type"         validate:"required,oneof=inbound outbound"`
	ReferenceNumber  string `json:"reference_number"  validate:"required,refnum"`
	AppointmentTime  string `json:"appointment_time"  validate:"omitempty,hhmm|eq=work_in"`
	Notes            string `json:"notes"             validate:"omitempty,max=500"`
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	return &value
}

// ToModel builds a pending check-in stamped with the current facility time.
func (c *CreateCheckInRequest) ToModel(user string) model.CheckIn {
	now := timezone.Now()

	var state *string
	if c.DestinationState != "" {
		upper := strings.ToUpper(c.DestinationState)
		state = &upper
	}

	return model.CheckIn{
		ID:               uuid.NewString(),
		DriverName:       strings.TrimSpace(c.DriverName),
		DriverPhone:      validator.NormalizePhone(c.DriverPhone),
		DriverEmail:      optional(c.DriverEmail),
		CarrierName:      strings.TrimSpace(c.CarrierName),
		TrailerNumber:    strings.TrimSpace(c.TrailerNumber),
		TrailerLength:    optional(c.TrailerLength),
		DestinationCity:  optional(c.DestinationCity),
		DestinationState: state,
		LoadType:         c.LoadType,
		ReferenceNumber:  strings.ToUpper(strings.TrimSpace(c.ReferenceNumber)),
		AppointmentTime:  optional(c.AppointmentTime),
		Status:           model.StatusPending,
		CheckInTime:      now,
		Notes:            optional(c.Notes),
		Metadata:         gModel.NewMetadata(user, now),
	}
}

// UpdateCheckInRequest carries the descriptive fields staff may correct. Last writer wins.
type UpdateCheckInRequest struct {
	DriverName      string `db:"driver_name"      json:"driver_name"      validate:"omitempty,max=100"`
	DriverPhone     string `db:"driver_phone"     json:"driver_phone"     validate:"omitempty,phone"`
	CarrierName     string `db:"carrier_name"     json:"carrier_name"     validate:"omitempty,max=100"`
	TrailerNumber   string `db:"trailer_number"   json:"trailer_number"   validate:"omitempty,max=30"`
	LoadType        string `db:"load_type"        json:"load_type"        validate:"omitempty,oneof=inbound outbound"`
	ReferenceNumber string `db:"reference_number" json:"reference_number" validate:"omitempty,refnum"`
	AppointmentTime string `db:"appointment_time" json:"appointment_time" validate:"omitempty,hhmm|eq=work_in"`
	Notes           string `db:"notes"            json:"notes"            validate:"omitempty,max=500"`
}

// Normalize applies the same canonical forms as creation.
func (u *UpdateCheckInRequest) Normalize() {
	if u.DriverPhone != "" {
		u.DriverPhone = validator.NormalizePhone(u.DriverPhone)
	}

	u.ReferenceNumber = strings.ToUpper(strings.TrimSpace(u.ReferenceNumber))
}

type AssignDockRequest struct {
	DockNumber string `json:"dock_number" validate:"required,max=10"`
	Notify     *bool  `json:"notify"`
}

// ShouldNotify defaults to true when the flag is omitted.
func (a *AssignDockRequest) ShouldNotify() bool {
	return a.Notify == nil || *a.Notify
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=checked_out rejected turned_away denied driver_left"`
	Notes  string `json:"notes"  validate:"omitempty,max=500"`
	Notify *bool  `json:"notify"`
}

func (c *ChangeStatusRequest) ShouldNotify() bool {
	return c.Notify == nil || *c.Notify
}

type CheckInResponse struct {
	ID               string  `json:"id"`
	DriverName       string  `json:"driver_name"`
	DriverPhone      string  `json:"driver_phone"`
	DriverEmail      *string `json:"driver_email"`
	CarrierName      string  `json:"carrier_name"`
	TrailerNumber    string  `json:"trailer_number"`
	TrailerLength    *string `json:"trailer_length"`
	DestinationCity  *string `json:"destination_city"`
	DestinationState *string `json:"destination_state"`
	LoadType         string  `json:"load_type"`
	ReferenceNumber  string  `json:"reference_number"`
	DockNumber       *string `json:"dock_number"`
	AppointmentTime  *string `json:"appointment_time"`
	Status           string  `json:"status"`
	CheckInTime      string  `json:"check_in_time"`
	CheckOutTime     *string `json:"check_out_time"`
	StartTime        *string `json:"start_time"`
	EndTime          *string `json:"end_time"`
	Notes            *string `json:"notes"`
	gDto.Metadata
}

func (r *CheckInResponse) FromModel(model model.CheckIn) {
	r.ID = model.ID
	r.DriverName = model.DriverName
	r.DriverPhone = model.DriverPhone
	r.DriverEmail = model.DriverEmail
	r.CarrierName = model.CarrierName
	r.TrailerNumber = model.TrailerNumber
	r.TrailerLength = model.TrailerLength
	r.DestinationCity = model.DestinationCity
	r.DestinationState = model.DestinationState
	r.LoadType = model.LoadType
	r.ReferenceNumber = model.ReferenceNumber
	r.DockNumber = model.DockNumber
	r.AppointmentTime = model.AppointmentTime
	r.Status = string(model.Status)
	r.CheckInTime = gDto.Timestamp(model.CheckInTime)
	r.CheckOutTime = gDto.OptionalTimestamp(model.CheckOutTime)
	r.StartTime = gDto.OptionalTimestamp(model.StartTime)
	r.EndTime = gDto.OptionalTimestamp(model.EndTime)
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetCheckInsResponse struct {
	CheckIns  []CheckInResponse `json:"check_ins"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetCheckInsResponse) FromModels(models []model.CheckIn, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.CheckIns = make([]CheckInResponse, len(models))
	for i, mod := range models {
		r.CheckIns[i].FromModel(mod)
	}
}

// AssignDockResponse returns the updated record and any advisory warnings.
// Warnings never block the assignment.
type AssignDockResponse struct {
	CheckIn  CheckInResponse `json:"check_in"`
	Warnings []string        `json:"warnings"`
}

type ChangeStatusResponse struct {
	CheckIn  CheckInResponse `json:"check_in"`
	Warnings []string        `json:"warnings"`
}

// Filter is the list query of the check-in board.
type Filter struct {
	Statuses        []string
	DockNumber      string
	LoadType        string
	Date            string
	ReferenceNumber string
}

var SortableColumns = []string{
	model.FieldCheckInTime, model.FieldStatus, model.FieldDockNumber, model.FieldCarrierName, model.FieldAppointmentTime,
}

// FromRequest reads status (comma separated), dock_number, load_type, date (YYYY-MM-DD) and reference_number.
func (f *Filter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	if statuses := query.Get("status"); statuses != "" {
		f.Statuses = strings.Split(statuses, ",")
	}

	f.DockNumber = query.Get("dock_number")
	f.LoadType = query.Get("load_type")
	f.Date = query.Get("date")
	f.ReferenceNumber = query.Get("reference_number")
}

// Validate checks the filter values that reach SQL as typed arguments.
func (f *Filter) Validate() error {
	for _, status := range f.Statuses {
		if err := validator.ValidateVar(status, "oneof=pending checked_in checked_out rejected turned_away denied driver_left"); err != nil {
			return err
		}
	}

	if f.LoadType != "" {
		if err := validator.ValidateVar(f.LoadType, "oneof=inbound outbound"); err != nil {
			return err
		}
	}

	if f.Date != "" {
		if err := validator.ValidateVar(f.Date, "datetime=2006-01-02"); err != nil {
			return err
		}
	}

	return nil
}

// ToFilterGroup maps the filter to storage predicates. dockNumber must already be normalized.
func (f *Filter) ToFilterGroup(dockNumber string) gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if len(f.Statuses) > 0 {
		group.Filters = append(group.Filters, gDto.Filter{
			Field: model.FieldStatus, Value: f.Statuses, Operator: gDto.FilterOperatorIn, Table: model.TableName,
		})
	}

	if dockNumber != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field: model.FieldDockNumber, Value: dockNumber, Operator: gDto.FilterOperatorEq, Table: model.TableName,
		})
	}

	if f.LoadType != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field: model.FieldLoadType, Value: f.LoadType, Operator: gDto.FilterOperatorEq, Table: model.TableName,
		})
	}

	if f.ReferenceNumber != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field: model.FieldReferenceNumber, Value: f.ReferenceNumber, Operator: gDto.FilterOperatorLike, Table: model.TableName,
		})
	}

	if f.Date != "" {
		if day, err := timezone.ParseDay(f.Date); err == nil {
			group.Filters = append(group.Filters, CheckInTimeRange(day, day.AddDate(0, 0, 1)))
		}
	}

	return group
}

// CheckInTimeRange selects check-ins with from <= check_in_time < to.
func CheckInTimeRange(from, to time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{ArgName: "check_in_from", Field: model.FieldCheckInTime, Value: from, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
			gDto.Filter{ArgName: "check_in_to", Field: model.FieldCheckInTime, Value: to, Operator: gDto.FilterOperatorLess, Table: model.TableName},
		},
	}
}

// ActiveOnDocks selects active check-ins that hold a dock, optionally one dock only.
func ActiveOnDocks(dockNumber string) gDto.FilterGroup {
	statuses := make([]string, len(model.ActiveStatuses))
	for i, status := range model.ActiveStatuses {
		statuses[i] = string(status)
	}

	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, Value: statuses, Operator: gDto.FilterOperatorIn, Table: model.TableName},
			gDto.Filter{Field: model.FieldDockNumber, Operator: gDto.FilterIsNotNull, Table: model.TableName},
		},
	}

	if dockNumber != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field: model.FieldDockNumber, Value: dockNumber, Operator: gDto.FilterOperatorEq, Table: model.TableName,
		})
	}

	return group
}
