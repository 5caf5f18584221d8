package model_test

import (
	checkInModel "dockhub/internal/domains/checkin/model"
	"dockhub/internal/domains/dock/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	registry := model.NewRegistry(1, 3, true)

	assert.Equal(t, []string{"1", "2", "3", "Ramp"}, registry.All())

	tests := []struct {
		input string
		want  string
		valid bool
	}{
		{input: "2", want: "2", valid: true},
		{input: "02", want: "2", valid: true},
		{input: " 3 ", want: "3", valid: true},
		{input: "ramp", want: "Ramp", valid: true},
		{input: "RAMP", want: "Ramp", valid: true},
		{input: "4", want: "4", valid: false},
		{input: "0", want: "0", valid: false},
		{input: "door", want: "door", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := registry.Normalize(tt.input)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.valid, registry.Valid(tt.input))
		})
	}
}

func TestRegistry_WithoutRamp(t *testing.T) {
	registry := model.NewRegistry(5, 6, false)

	assert.Equal(t, []string{"5", "6"}, registry.All())
	assert.False(t, registry.Valid("Ramp"))
}

func checkIn(id, dock string, status checkInModel.Status) checkInModel.CheckIn {
	c := checkInModel.CheckIn{ID: id, Status: status}
	if dock != "" {
		c.DockNumber = &dock
	}

	return c
}

func TestClassify(t *testing.T) {
	docks := []string{"1", "2", "3", "4", "Ramp"}
	checkIns := []checkInModel.CheckIn{
		checkIn("a", "1", checkInModel.StatusCheckedIn),
		checkIn("b", "2", checkInModel.StatusCheckedIn),
		checkIn("c", "2", checkInModel.StatusPending),
		checkIn("d", "3", checkInModel.StatusCheckedIn),
		checkIn("e", "4", checkInModel.StatusCheckedOut),
		checkIn("f", "", checkInModel.StatusPending),
		checkIn("g", "Ramp", checkInModel.StatusDriverLeft),
	}
	blocks := map[string]model.Block{
		"3": {DockNumber: "3", Reason: "leveler broken", BlockedBy: "csr", BlockedAt: time.Now()},
	}

	result := model.Classify(docks, checkIns, blocks)
	require.Len(t, result, len(docks))

	states := map[string]model.State{}
	for _, occupancy := range result {
		states[occupancy.DockNumber] = occupancy.State
	}

	assert.Equal(t, map[string]model.State{
		"1":    model.StateInUse,
		"2":    model.StateDoubleBooked,
		"3":    model.StateBlocked,
		"4":    model.StateAvailable,
		"Ramp": model.StateAvailable,
	}, states)

	assert.Len(t, result[1].CheckIns, 2)
	require.NotNil(t, result[2].Block)
	assert.Equal(t, "leveler broken", result[2].Block.Reason)
	assert.Len(t, result[2].CheckIns, 1)
	assert.Empty(t, result[3].CheckIns)
}

func TestClassify_Order(t *testing.T) {
	result := model.Classify([]string{"9", "1"}, nil, nil)

	assert.Equal(t, "9", result[0].DockNumber)
	assert.Equal(t, "1", result[1].DockNumber)
	assert.Equal(t, model.StateAvailable, result[0].State)
}
