package model

import (
	"dockhub/shared/model"
	"fmt"
	"time"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID            = "id"
	FieldScheduledDate = "scheduled_date"
	FieldScheduledTime = "scheduled_time"
	FieldSalesOrder    = "sales_order"
	FieldDelivery      = "delivery"
	FieldSource        = "source"
	FieldNotes         = "notes"

	SourceExcel  = "excel"
	SourceManual = "manual"

	// WorkIn is the slot for drivers without a scheduled time.
	WorkIn = "work_in"

	firstSlotMinute = 5 * 60
	lastSlotMinute  = 17*60 + 30
	slotStepMinutes = 30
)

// TimeSlots lists the bookable slots as HHMM from 0500 to 1730 followed by work_in.
func TimeSlots() []string {
	slots := make([]string, 0, (lastSlotMinute-firstSlotMinute)/slotStepMinutes+2) //nolint:mnd

	for minute := firstSlotMinute; minute <= lastSlotMinute; minute += slotStepMinutes {
		slots = append(slots, fmt.Sprintf("%02d%02d", minute/60, minute%60)) //nolint:mnd
	}

	return append(slots, WorkIn)
}

// Appointment is a scheduled dock visit. An empty SalesOrder or Delivery means absent,
// so the duplicate key (date, time, sales order, delivery) compares plain values.
type Appointment struct {
	ID            string    `db:"id"`
	ScheduledDate time.Time `db:"scheduled_date"`
	ScheduledTime string    `db:"scheduled_time"`
	SalesOrder    string    `db:"sales_order"`
	Delivery      string    `db:"delivery"`
	Source        string    `db:"source"`
	Notes         *string   `db:"notes"`
	model.Metadata
}

// Key identifies duplicates within an import and against storage.
type Key struct {
	Date       string
	Time       string
	SalesOrder string
	Delivery   string
}

func (a Appointment) Key() Key {
	return Key{
		Date:       a.ScheduledDate.Format(time.DateOnly),
		Time:       a.ScheduledTime,
		SalesOrder: a.SalesOrder,
		Delivery:   a.Delivery,
	}
}
