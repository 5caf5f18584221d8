package dto

import (
	"dockhub/internal/domains/appointment/model"
	"dockhub/shared"
	"dockhub/shared/constant"
	gDto "dockhub/shared/dto"
	gModel "dockhub/shared/model"
	"dockhub/shared/timezone"
	"dockhub/shared/validator"
	"mime/multipart"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	ScheduledDate string `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	ScheduledTime string `json:"scheduled_time" validate:"required,hhmm|eq=work_in"`
	SalesOrder    string `json:"sales_order"    validate:"required_without=Delivery,max=50"`
	Delivery      string `json:"delivery"       validate:"required_without=SalesOrder,max=50"`
	Notes         string `json:"notes"          validate:"omitempty,max=500"`
}

// Validate adds the slot enumeration on top of the struct tags.
func (c *CreateAppointmentRequest) Validate() error {
	c.SalesOrder = strings.TrimSpace(c.SalesOrder)
	c.Delivery = strings.TrimSpace(c.Delivery)

	if err := validator.ValidateStruct(c); err != nil {
		return err //nolint:wrapcheck
	}

	return ValidateSlot(c.ScheduledTime)
}

func ValidateSlot(slot string) error {
	if !slices.Contains(model.TimeSlots(), slot) {
		return validator.ValidateVar(slot, "oneof="+strings.Join(model.TimeSlots(), " ")) //nolint:wrapcheck
	}

	return nil
}

// ParseDate reads YYYY-MM-DD into the UTC midnight stored in the date column.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(constant.DayFormat, value) //nolint:wrapcheck
}

func (c *CreateAppointmentRequest) ToModel(user string) model.Appointment {
	date, _ := ParseDate(c.ScheduledDate)
	now := timezone.Now()

	var notes *string
	if c.Notes != "" {
		notes = &c.Notes
	}

	return model.Appointment{
		ID:            uuid.NewString(),
		ScheduledDate: date,
		ScheduledTime: c.ScheduledTime,
		SalesOrder:    c.SalesOrder,
		Delivery:      c.Delivery,
		Source:        model.SourceManual,
		Notes:         notes,
		Metadata:      gModel.NewMetadata(user, now),
	}
}

type UpdateAppointmentRequest struct {
	ScheduledDate string `db:"scheduled_date" json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	ScheduledTime string `db:"scheduled_time" json:"scheduled_time" validate:"omitempty,hhmm|eq=work_in"`
	SalesOrder    string `db:"sales_order"    json:"sales_order"    validate:"omitempty,max=50"`
	Delivery      string `db:"delivery"       json:"delivery"       validate:"omitempty,max=50"`
	Notes         string `db:"notes"          json:"notes"          validate:"omitempty,max=500"`
}

func (u *UpdateAppointmentRequest) Validate() error {
	if err := validator.ValidateStruct(u); err != nil {
		return err //nolint:wrapcheck
	}

	if u.ScheduledTime != "" {
		return ValidateSlot(u.ScheduledTime)
	}

	return nil
}

type ImportRequest struct {
	File *multipart.FileHeader `json:"file" validate:"required,mimetypes=text/csv application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,maxfilesize=5"`
}

type ImportResponse struct {
	Created    int      `json:"created"`
	Failed     int      `json:"failed"`
	Skipped    int      `json:"skipped"`
	Errors     []string `json:"errors"`
	ArchiveURL string   `json:"archive_url,omitempty"`
}

type AppointmentResponse struct {
	ID            string  `json:"id"`
	ScheduledDate string  `json:"scheduled_date"`
	ScheduledTime string  `json:"scheduled_time"`
	SalesOrder    string  `json:"sales_order"`
	Delivery      string  `json:"delivery"`
	Source        string  `json:"source"`
	Notes         *string `json:"notes"`
	gDto.Metadata
}

func (r *AppointmentResponse) FromModel(model model.Appointment) {
	r.ID = model.ID
	r.ScheduledDate = model.ScheduledDate.Format(constant.DayFormat)
	r.ScheduledTime = model.ScheduledTime
	r.SalesOrder = model.SalesOrder
	r.Delivery = model.Delivery
	r.Source = model.Source
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}

type TimeSlotsResponse struct {
	Slots []string `json:"slots"`
}

var SortableColumns = []string{model.FieldScheduledDate, model.FieldScheduledTime, model.FieldSalesOrder, model.FieldDelivery, constant.FieldCreatedAt}

// Filter narrows the appointment list to one day or a date range and a search term.
type Filter struct {
	Date   string
	From   string
	To     string
	Search string
}

func (f *Filter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.Date = query.Get("date")
	f.From = query.Get("from")
	f.To = query.Get("to")
	f.Search = query.Get("search")
}

func (f *Filter) Validate() error {
	for _, value := range []string{f.Date, f.From, f.To} {
		if value == "" {
			continue
		}

		if err := validator.ValidateVar(value, "datetime=2006-01-02"); err != nil {
			return err //nolint:wrapcheck
		}
	}

	return nil
}

func (f *Filter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.Date != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field: model.FieldScheduledDate, Value: f.Date, Operator: gDto.FilterOperatorEq, Table: model.TableName,
		})
	}

	if f.From != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			ArgName: "scheduled_from", Field: model.FieldScheduledDate, Value: f.From, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName,
		})
	}

	if f.To != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			ArgName: "scheduled_to", Field: model.FieldScheduledDate, Value: f.To, Operator: gDto.FilterOperatorLessEq, Table: model.TableName,
		})
	}

	if f.Search != "" {
		group.Filters = append(group.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{Field: model.FieldSalesOrder, Value: f.Search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				gDto.Filter{Field: model.FieldDelivery, Value: f.Search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			},
		})
	}

	return group
}

// ByKey matches the duplicate key exactly.
func ByKey(key model.Key) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldScheduledDate, Value: key.Date, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldScheduledTime, Value: key.Time, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldSalesOrder, Value: key.SalesOrder, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldDelivery, Value: key.Delivery, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}
