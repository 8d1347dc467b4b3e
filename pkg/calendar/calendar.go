package calendar

import (
	"context"
	"time"
)

// EpochAnchor is the fixed instant event timestamps are stored relative
// to. Both the store and the availability engine share this constant;
// it is never re-derived at runtime.
var EpochAnchor = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// RawEvent is an event record as the store keeps it: start and end as
// whole seconds since EpochAnchor, plus the zone name the event was
// authored in.
type RawEvent struct {
	StartSeconds int64
	EndSeconds   int64
	Timezone     string
	Title        string
	CalendarID   int64
}

// Start returns the event start as an absolute UTC instant.
func (e RawEvent) Start() time.Time {
	return EpochAnchor.Add(time.Duration(e.StartSeconds) * time.Second)
}

// End returns the event end as an absolute UTC instant.
func (e RawEvent) End() time.Time {
	return EpochAnchor.Add(time.Duration(e.EndSeconds) * time.Second)
}

// ToAnchorSeconds converts an absolute instant to whole seconds since
// EpochAnchor.
func ToAnchorSeconds(t time.Time) int64 {
	return int64(t.Sub(EpochAnchor) / time.Second)
}

type CalendarInfo struct {
	ID    int64
	Title string
}

// EventSource yields every stored event whose interval intersects
// [from, to). Sources may return extra events outside the range; the
// engine filters per day, not per query.
type EventSource interface {
	FetchEvents(ctx context.Context, from time.Time, to time.Time) ([]RawEvent, error)
}

type CalendarLister interface {
	ListCalendars(ctx context.Context) ([]CalendarInfo, error)
}
