package model

import (
	"dockhub/shared/model"
	"slices"
	"time"
)

const (
	TableName  = "check_ins"
	EntityName = "check_in"

	FieldID              = "id"
	FieldDriverName      = "driver_name"
	FieldDriverPhone     = "driver_phone"
	FieldCarrierName     = "carrier_name"
	FieldLoadType        = "load_type"
	FieldReferenceNumber = "reference_number"
	FieldDockNumber      = "dock_number"
	FieldAppointmentTime = "appointment_time"
	FieldStatus          = "status"
	FieldCheckInTime     = "check_in_time"
	FieldCheckOutTime    = "check_out_time"
	FieldStartTime       = "start_time"
	FieldEndTime         = "end_time"
	FieldNotes           = "notes"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusRejected   Status = "rejected"
	StatusTurnedAway Status = "turned_away"
	StatusDenied     Status = "denied"
	StatusDriverLeft Status = "driver_left"
)

const (
	LoadTypeInbound  = "inbound"
	LoadTypeOutbound = "outbound"

	// AppointmentWorkIn marks a driver without a scheduled slot.
	AppointmentWorkIn = "work_in"
)

// ActiveStatuses are the statuses that occupy a dock.
var ActiveStatuses = []Status{StatusPending, StatusCheckedIn}

var terminalStatuses = []Status{StatusCheckedOut, StatusRejected, StatusTurnedAway, StatusDenied, StatusDriverLeft}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return slices.Contains(terminalStatuses, s)
}

func (s Status) IsActive() bool {
	return slices.Contains(ActiveStatuses, s)
}

// CanTransition reports whether a status change request may move from s to next.
// pending to checked_in only happens through dock assignment, so it is not allowed here.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return slices.Contains([]Status{StatusRejected, StatusTurnedAway, StatusDenied, StatusDriverLeft}, next)
	case StatusCheckedIn:
		return slices.Contains([]Status{StatusCheckedOut, StatusRejected, StatusTurnedAway, StatusDenied, StatusDriverLeft}, next)
	default:
		return false
	}
}

type CheckIn struct {
	ID               string     `db:"id"`
	DriverName       string     `db:"driver_name"`
	DriverPhone      string     `db:"driver_phone"`
	DriverEmail      *string    `db:"driver_email"`
	CarrierName      string     `db:"carrier_name"`
	TrailerNumber    string     `db:"trailer_number"`
	TrailerLength    *string    `db:"trailer_length"`
	DestinationCity  *string    `db:"destination_city"`
	DestinationState *string    `db:"destination_state"`
	LoadType         string     `db:"load_type"`
	ReferenceNumber  string     `db:"reference_number"`
	DockNumber       *string    `db:"dock_number"`
	AppointmentTime  *string    `db:"appointment_time"`
	Status           Status     `db:"status"`
	CheckInTime      time.Time  `db:"check_in_time"`
	CheckOutTime     *time.Time `db:"check_out_time"`
	StartTime        *time.Time `db:"start_time"`
	EndTime          *time.Time `db:"end_time"`
	Notes            *string    `db:"notes"`
	model.Metadata
}
