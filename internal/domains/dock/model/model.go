package model

import (
	"dockhub/config"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	TableName  = "dock_states"
	EntityName = "dock_state"

	FieldDockNumber = "dock_number"
	FieldStatus     = "status"
	FieldCheckInID  = "check_in_id"

	// RampDock is the non-numbered ramp door.
	RampDock = "Ramp"
)

// State is the derived occupancy of a dock.
type State string

const (
	StateAvailable    State = "available"
	StateInUse        State = "in_use"
	StateDoubleBooked State = "double_booked"
	StateBlocked      State = "blocked"
)

// CycleStatus is the stored state of the claim workflow.
type CycleStatus string

const (
	CycleAvailable CycleStatus = "available"
	CycleAssigned  CycleStatus = "assigned"
	CycleLoading   CycleStatus = "loading"
)

// Registry is the fixed set of dock numbers of the facility.
type Registry struct {
	numbers []string
}

func NewRegistry(first, last int, ramp bool) Registry {
	numbers := make([]string, 0, max(last-first+1, 0)+1)
	for number := first; number <= last; number++ {
		numbers = append(numbers, strconv.Itoa(number))
	}

	if ramp {
		numbers = append(numbers, RampDock)
	}

	return Registry{numbers: numbers}
}

func NewRegistryFromConfig(cfg *config.Config) Registry {
	return NewRegistry(cfg.Dock.First, cfg.Dock.Last, cfg.Dock.RampEnabled)
}

// All returns the dock numbers in display order.
func (r Registry) All() []string {
	return slices.Clone(r.numbers)
}

// Normalize maps user input such as "07" or "ramp" to a registered dock number.
func (r Registry) Normalize(number string) (string, bool) {
	number = strings.TrimSpace(number)

	if strings.EqualFold(number, RampDock) {
		number = RampDock
	} else if n, err := strconv.Atoi(number); err == nil {
		number = strconv.Itoa(n)
	}

	return number, slices.Contains(r.numbers, number)
}

func (r Registry) Valid(number string) bool {
	_, ok := r.Normalize(number)

	return ok
}

// Block is a manual hold placed on a dock by staff.
type Block struct {
	DockNumber string    `json:"dock_number"`
	Reason     string    `json:"reason"`
	BlockedBy  string    `json:"blocked_by"`
	BlockedAt  time.Time `json:"blocked_at"`
}

// DockState is one row of the claim workflow.
type DockState struct {
	DockNumber string      `db:"dock_number"`
	Status     CycleStatus `db:"status"`
	CheckInID  *string     `db:"check_in_id"`
	ModifiedAt time.Time   `db:"modified_at"`
	ModifiedBy string      `db:"modified_by"`
}
