package calendar

import (
	"context"
	"time"
)

// StubEventSource serves a fixed set of events. FetchEvents records the
// requested ranges and deliberately returns the full set unfiltered,
// like a source that over-returns.
type StubEventSource struct {
	Events    []RawEvent
	Calendars []CalendarInfo
	Requests  [][2]time.Time
	Err       error
}

func (s *StubEventSource) FetchEvents(ctx context.Context, from time.Time, to time.Time) ([]RawEvent, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Requests = append(s.Requests, [2]time.Time{from, to})
	return s.Events, nil
}

func (s *StubEventSource) ListCalendars(ctx context.Context) ([]CalendarInfo, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Calendars, nil
}
