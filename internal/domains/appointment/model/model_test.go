package model_test

import (
	"dockhub/internal/domains/appointment/model"
	"dockhub/migrations"
	"io/fs"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlots(t *testing.T) {
	slots := model.TimeSlots()

	assert.Len(t, slots, 27)
	assert.Equal(t, "0500", slots[0])
	assert.Equal(t, "0530", slots[1])
	assert.Equal(t, "1200", slots[14])
	assert.Equal(t, "1730", slots[25])
	assert.Equal(t, model.WorkIn, slots[26])
}

func TestKey(t *testing.T) {
	a := model.Appointment{
		ScheduledDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		ScheduledTime: "0800",
		SalesOrder:    "SO-1",
	}

	assert.Equal(t, model.Key{Date: "2026-03-02", Time: "0800", SalesOrder: "SO-1"}, a.Key())
}

func TestTimeSlots_FitScheduledTimeColumn(t *testing.T) {
	ddl, err := fs.ReadFile(migrations.Postgres, migrations.PostgresDir+"/000004_create_appointments_table.up.sql")
	require.NoError(t, err)

	match := regexp.MustCompile(`scheduled_time VARCHAR\((\d+)\)`).FindSubmatch(ddl)
	require.NotNil(t, match, "scheduled_time column not found")

	width, err := strconv.Atoi(string(match[1]))
	require.NoError(t, err)

	for _, slot := range model.TimeSlots() {
		assert.LessOrEqual(t, len(slot), width, "slot %q", slot)
	}
}
