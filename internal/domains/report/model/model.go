package model

import (
	checkInModel "dockhub/internal/domains/checkin/model"
	"dockhub/internal/domains/report/detention"
	"time"
)

// MaxRangeDays bounds one report request.
const MaxRangeDays = 92

// Row is one check-in with its computed timings. Open records have no end and accrue nothing.
type Row struct {
	CheckIn          checkInModel.CheckIn
	End              *time.Time
	OnTime           bool
	DetentionMinutes int
	DwellMinutes     *int
}

type Summary struct {
	Total            int
	OnTime           int
	Late             int
	Unscheduled      int
	WithDetention    int
	DetentionMinutes int
}

func endOf(checkIn checkInModel.CheckIn) *time.Time {
	if checkIn.EndTime != nil {
		return checkIn.EndTime
	}

	return checkIn.CheckOutTime
}

// Build computes every row in the facility location.
func Build(checkIns []checkInModel.CheckIn, loc *time.Location) ([]Row, Summary) {
	rows := make([]Row, 0, len(checkIns))
	summary := Summary{Total: len(checkIns)}

	for _, checkIn := range checkIns {
		var appointment string
		if checkIn.AppointmentTime != nil {
			appointment = *checkIn.AppointmentTime
		}

		row := Row{
			CheckIn: checkIn,
			End:     endOf(checkIn),
			OnTime:  detention.IsOnTime(checkIn.CheckInTime, appointment, loc),
		}

		if row.End != nil {
			row.DetentionMinutes = detention.Minutes(checkIn.CheckInTime, *row.End, appointment, loc)

			dwell := detention.DwellMinutes(checkIn.CheckInTime, *row.End)
			row.DwellMinutes = &dwell
		}

		_, scheduled := detention.AppointmentInstant(checkIn.CheckInTime, appointment, loc)

		switch {
		case !scheduled:
			summary.Unscheduled++
		case row.OnTime:
			summary.OnTime++
		default:
			summary.Late++
		}

		if row.DetentionMinutes > 0 {
			summary.WithDetention++
			summary.DetentionMinutes += row.DetentionMinutes
		}

		rows = append(rows, row)
	}

	return rows, summary
}
