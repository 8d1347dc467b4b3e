package availability

import (
	"time"
)

// GenerateDayWindows enumerates one DayWindow per calendar date from
// today (local midnight in the reference zone) through today plus
// lookaheadDays inclusive, skipping Saturdays and Sundays. The UTC
// window boundaries are computed per date, so a daylight-saving
// transition inside the lookahead shifts only the dates after it.
func GenerateDayWindows(now time.Time, lookaheadDays, workStartHour, workEndHour int, reference *time.Location) []DayWindow {
	local := now.In(reference)

	windows := make([]DayWindow, 0, lookaheadDays+1)
	for i := 0; i <= lookaheadDays; i++ {
		date := time.Date(local.Year(), local.Month(), local.Day()+i, 0, 0, 0, 0, reference)
		weekday := date.Weekday()
		if weekday == time.Saturday || weekday == time.Sunday {
			continue
		}

		windows = append(windows, DayWindow{
			Date:      date,
			Weekday:   weekday,
			WorkStart: time.Date(date.Year(), date.Month(), date.Day(), workStartHour, 0, 0, 0, reference).UTC(),
			WorkEnd:   time.Date(date.Year(), date.Month(), date.Day(), workEndHour, 0, 0, 0, reference).UTC(),
		})
	}

	return windows
}
