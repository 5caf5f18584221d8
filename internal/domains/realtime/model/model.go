package model

import (
	"encoding/json"
	"fmt"
	"time"
)

type EventType string

const (
	EventInsert EventType = "insert"
	EventUpdate EventType = "update"
	EventDelete EventType = "delete"
	EventAll    EventType = "*"
)

const (
	TableCheckIns     = "check_ins"
	TableAppointments = "appointments"
	TableDockStates   = "dock_states"
	TableDockBlocks   = "dock_blocks"
)

var Tables = []string{TableCheckIns, TableAppointments, TableDockStates, TableDockBlocks}

// ChangeEvent carries the full row after the change. Delete events may omit the row.
type ChangeEvent struct {
	Table      string          `json:"table"`
	Type       EventType       `json:"type"`
	ID         string          `json:"id"`
	Action     string          `json:"action,omitempty"`
	Row        json.RawMessage `json:"row,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func NewChangeEvent(table string, eventType EventType, id, action string, row any, now time.Time) (ChangeEvent, error) {
	event := ChangeEvent{
		Table:      table,
		Type:       eventType,
		ID:         id,
		Action:     action,
		OccurredAt: now,
	}

	if row != nil {
		raw, err := json.Marshal(row)
		if err != nil {
			return event, fmt.Errorf("failed to encode change row: %w", err)
		}

		event.Row = raw
	}

	return event, nil
}

// Filter selects events by table and type. Empty or "*" matches everything.
type Filter struct {
	Table string
	Event EventType
}

func (f Filter) Matches(event ChangeEvent) bool {
	if f.Table != "" && f.Table != string(EventAll) && f.Table != event.Table {
		return false
	}

	return f.Event == "" || f.Event == EventAll || f.Event == event.Type
}
