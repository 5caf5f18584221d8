package detention_test

import (
	"dockhub/internal/domains/report/detention"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chicago(t *testing.T) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	return loc
}

func TestAppointmentInstant(t *testing.T) {
	loc := chicago(t)

	// 04:30 UTC on the 3rd is still the evening of the 2nd in Chicago.
	checkIn := time.Date(2026, 3, 3, 4, 30, 0, 0, time.UTC)

	instant, ok := detention.AppointmentInstant(checkIn, "2100", loc)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 2, 21, 0, 0, 0, loc), instant)

	for _, appointment := range []string{"work_in", "", "2460", "800", "08:00"} {
		_, ok := detention.AppointmentInstant(checkIn, appointment, loc)
		assert.False(t, ok, appointment)
	}
}

func TestIsOnTime(t *testing.T) {
	loc := chicago(t)

	tests := []struct {
		name        string
		checkIn     time.Time
		appointment string
		want        bool
	}{
		{name: "early", checkIn: time.Date(2026, 3, 2, 7, 15, 0, 0, loc), appointment: "0800", want: true},
		{name: "exactly on time", checkIn: time.Date(2026, 3, 2, 8, 0, 0, 0, loc), appointment: "0800", want: true},
		{name: "within the same minute", checkIn: time.Date(2026, 3, 2, 8, 0, 45, 0, loc), appointment: "0800", want: true},
		{name: "one minute late", checkIn: time.Date(2026, 3, 2, 8, 1, 0, 0, loc), appointment: "0800", want: false},
		{name: "work in", checkIn: time.Date(2026, 3, 2, 6, 0, 0, 0, loc), appointment: "work_in", want: false},
		{name: "no appointment", checkIn: time.Date(2026, 3, 2, 6, 0, 0, 0, loc), appointment: "", want: false},
		{name: "stored in utc", checkIn: time.Date(2026, 3, 2, 13, 59, 0, 0, time.UTC), appointment: "0800", want: true},
		{name: "stored in utc late", checkIn: time.Date(2026, 3, 2, 14, 5, 0, 0, time.UTC), appointment: "0800", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detention.IsOnTime(tt.checkIn, tt.appointment, loc))
		})
	}
}

func TestMinutes(t *testing.T) {
	loc := chicago(t)
	appointment := time.Date(2026, 3, 2, 8, 0, 0, 0, loc)
	onTime := appointment.Add(-10 * time.Minute)

	tests := []struct {
		name        string
		checkIn     time.Time
		end         time.Time
		appointment string
		want        int
	}{
		{name: "past grace", checkIn: onTime, end: appointment.Add(130 * time.Minute), appointment: "0800", want: 10},
		{name: "within grace", checkIn: onTime, end: appointment.Add(90 * time.Minute), appointment: "0800", want: 0},
		{name: "exactly grace", checkIn: onTime, end: appointment.Add(120 * time.Minute), appointment: "0800", want: 0},
		{name: "partial minute truncates", checkIn: onTime, end: appointment.Add(125*time.Minute + 59*time.Second), appointment: "0800", want: 5},
		{name: "late arrival", checkIn: appointment.Add(5 * time.Minute), end: appointment.Add(300 * time.Minute), appointment: "0800", want: 0},
		{name: "work in", checkIn: onTime, end: appointment.Add(300 * time.Minute), appointment: "work_in", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detention.Minutes(tt.checkIn, tt.end, tt.appointment, loc))
		})
	}
}

func TestDwellMinutes(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, 95, detention.DwellMinutes(start, start.Add(95*time.Minute+30*time.Second)))
	assert.Equal(t, 0, detention.DwellMinutes(start, start.Add(-time.Minute)))
}
