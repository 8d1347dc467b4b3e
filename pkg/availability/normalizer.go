package availability

import (
	"sort"
	"time"

	"github.com/freebusy/freebusy/pkg/calendar"
	log "github.com/sirupsen/logrus"
)

// allDayThreshold marks all-day events: anything longer than 23 hours
// is calendar noise, not schedulable time.
const allDayThreshold = 23 * time.Hour

// Normalize converts raw store records into UTC-anchored events at
// minute precision, sorted by start. All-day events and events without
// positive duration after truncation are dropped. An unknown zone name
// falls back to defaultLocation; that is a normal condition, never an
// error.
func Normalize(raw []calendar.RawEvent, defaultLocation *time.Location) []NormalizedEvent {
	events := make([]NormalizedEvent, 0, len(raw))
	for _, r := range raw {
		location, err := time.LoadLocation(r.Timezone)
		if err != nil {
			log.Debugf("unknown event timezone %q, falling back to %s", r.Timezone, defaultLocation)
			location = defaultLocation
		}

		// Seconds are discarded, not rounded.
		start := r.Start().Truncate(time.Minute)
		end := r.End().Truncate(time.Minute)

		if end.Sub(start) > allDayThreshold {
			log.Debugf("dropping all-day event %q (%s)", r.Title, end.Sub(start))
			continue
		}
		if !start.Before(end) {
			log.Debugf("dropping zero-length event %q", r.Title)
			continue
		}

		events = append(events, NormalizedEvent{
			Start:    start,
			End:      end,
			Title:    r.Title,
			Location: location,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})

	return events
}
