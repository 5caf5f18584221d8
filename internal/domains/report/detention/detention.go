// Package detention computes on-time arrival and billable detention for check-ins.
// All comparisons happen in the facility location and minute differences truncate toward zero.
package detention

import (
	"dockhub/shared/constant"
	"time"
)

// GraceMinutes is the time past the appointment before detention accrues.
const GraceMinutes = 120

// AppointmentInstant places an HHMM slot on the facility day of checkIn.
// Sentinels such as work_in and malformed values report false.
func AppointmentInstant(checkIn time.Time, appointment string, loc *time.Location) (time.Time, bool) {
	if len(appointment) != len(constant.ClockFormat) {
		return time.Time{}, false
	}

	clock, err := time.Parse(constant.ClockFormat, appointment)
	if err != nil {
		return time.Time{}, false
	}

	local := checkIn.In(loc)

	return time.Date(local.Year(), local.Month(), local.Day(), clock.Hour(), clock.Minute(), 0, 0, loc), true
}

func minutesBetween(from, to time.Time) int {
	return int(to.Sub(from) / time.Minute)
}

// IsOnTime reports whether the driver checked in at or before the appointment.
func IsOnTime(checkIn time.Time, appointment string, loc *time.Location) bool {
	instant, ok := AppointmentInstant(checkIn, appointment, loc)
	if !ok {
		return false
	}

	return minutesBetween(instant, checkIn) <= 0
}

// Minutes returns the detention accrued by end. Late arrivals and sentinel appointments accrue none.
func Minutes(checkIn, end time.Time, appointment string, loc *time.Location) int {
	if !IsOnTime(checkIn, appointment, loc) {
		return 0
	}

	instant, _ := AppointmentInstant(checkIn, appointment, loc)

	return max(0, minutesBetween(instant, end)-GraceMinutes)
}

// DwellMinutes is the time between check-in and end, zero when end precedes check-in.
func DwellMinutes(checkIn, end time.Time) int {
	return max(0, minutesBetween(checkIn, end))
}
