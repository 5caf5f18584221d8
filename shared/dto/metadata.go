package dto

import (
	"dockhub/shared/constant"
	"dockhub/shared/model"
	"dockhub/shared/timezone"
	"time"
)

// Metadata is the audit trail rendered on every record response. Times are in facility time.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedAt string `json:"modified_at"`
	ModifiedBy string `json:"modified_by"`
	// Automated is set when the last change was made by the kiosk or a system job rather than staff.
	Automated bool `json:"automated"`
}

func (m *Metadata) FromModel(audit model.Metadata) {
	m.CreatedAt = Timestamp(audit.CreatedAt)
	m.CreatedBy = audit.CreatedBy
	m.ModifiedAt = Timestamp(audit.ModifiedAt)
	m.ModifiedBy = audit.ModifiedBy
	m.Automated = IsAutomatedActor(audit.ModifiedBy)
}

// IsAutomatedActor reports whether the actor is one of the non-staff contexts.
func IsAutomatedActor(actor string) bool {
	return actor == constant.ContextGuest || actor == constant.ContextSystem
}

// Timestamp renders t in facility time.
func Timestamp(t time.Time) string {
	return timezone.Format(t, constant.DateFormat)
}

// OptionalTimestamp is Timestamp for nullable columns; nil stays nil.
func OptionalTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := Timestamp(*t)

	return &formatted
}
