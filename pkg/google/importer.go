package google

import (
	"context"
	"fmt"
	"time"

	"github.com/freebusy/freebusy/pkg/calendar"
	log "github.com/sirupsen/logrus"
)

// Importer copies a Google Calendar range into the local event store so
// reports can be built offline from one place.
type Importer struct {
	source       calendar.EventSource
	store        calendar.EventStore
	calendarName string
}

func NewImporter(source calendar.EventSource, store calendar.EventStore, calendarName string) *Importer {
	return &Importer{source: source, store: store, calendarName: calendarName}
}

// Import fetches [from, to) from the remote calendar and replaces the
// local copy. It returns the number of events stored.
func (i *Importer) Import(ctx context.Context, from time.Time, to time.Time) (int, error) {
	events, err := i.source.FetchEvents(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch remote events: %w", err)
	}

	calendarID, err := i.store.EnsureCalendar(ctx, i.calendarName)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare local calendar: %w", err)
	}

	for idx := range events {
		events[idx].CalendarID = calendarID
	}

	if err := i.store.StoreEvents(ctx, calendarID, events); err != nil {
		return 0, fmt.Errorf("failed to store events: %w", err)
	}

	log.Infof("imported %d events into calendar %q", len(events), i.calendarName)
	return len(events), nil
}
