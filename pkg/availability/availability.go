package availability

import (
	"time"
)

// MinuteStatus classifies a minute of a work window.
type MinuteStatus int

const (
	StatusAvailable MinuteStatus = iota
	StatusBusy
)

func (s MinuteStatus) String() string {
	if s == StatusBusy {
		return "Busy"
	}
	return "Available"
}

// NormalizedEvent is an event anchored to UTC at minute precision.
// Immutable once produced by Normalize.
type NormalizedEvent struct {
	Start    time.Time
	End      time.Time
	Title    string
	Location *time.Location // resolved authoring zone, used for schedule rendering
}

// DayWindow is one weekday of the lookahead period together with its
// work-hour window expressed in UTC. Date is local midnight in the
// reference timezone; the UTC window boundaries carry whatever offset
// is in effect on that specific date.
type DayWindow struct {
	Date      time.Time
	Weekday   time.Weekday
	WorkStart time.Time
	WorkEnd   time.Time
}

// DayStart returns the calendar-day boundary used to decide whether an
// event belongs to this day. It is the window's local midnight, not the
// work-hour start.
func (w DayWindow) DayStart() time.Time {
	return w.Date
}

// DayEnd is DayStart plus 24 hours.
func (w DayWindow) DayEnd() time.Time {
	return w.Date.Add(24 * time.Hour)
}

// Interval is a maximal run of minutes sharing one status, half-open
// over [Start, End) in UTC.
type Interval struct {
	Start  time.Time
	End    time.Time
	Status MinuteStatus
}

// DaySchedule groups one day's intervals.
type DaySchedule struct {
	Date      time.Time
	Weekday   time.Weekday
	Intervals []Interval
}

// Report is the result of one availability run.
type Report struct {
	ID          string
	GeneratedAt time.Time
	Days        []DaySchedule
}

// DayEvents groups one day's events for the schedule listing.
type DayEvents struct {
	Date    time.Time
	Weekday time.Weekday
	Events  []NormalizedEvent
}

// Schedule is the per-day event listing variant of a run.
type Schedule struct {
	ID          string
	GeneratedAt time.Time
	Days        []DayEvents
}
