package availability

import (
	"testing"
	"time"

	"github.com/freebusy/freebusy/pkg/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawEvent(start time.Time, duration time.Duration, timezone, title string) calendar.RawEvent {
	return calendar.RawEvent{
		StartSeconds: calendar.ToAnchorSeconds(start),
		EndSeconds:   calendar.ToAnchorSeconds(start.Add(duration)),
		Timezone:     timezone,
		Title:        title,
	}
}

func TestNormalize(t *testing.T) {
	utc := time.UTC
	start := time.Date(2024, time.June, 4, 13, 0, 0, 0, utc)

	t.Run("converts anchor offsets to UTC instants", func(t *testing.T) {
		events := Normalize([]calendar.RawEvent{rawEvent(start, 30*time.Minute, "UTC", "Standup")}, utc)

		require.Len(t, events, 1)
		assert.Equal(t, start, events[0].Start)
		assert.Equal(t, start.Add(30*time.Minute), events[0].End)
		assert.Equal(t, "Standup", events[0].Title)
	})

	t.Run("truncates seconds instead of rounding", func(t *testing.T) {
		raw := rawEvent(start, 30*time.Minute, "UTC", "Standup")
		raw.StartSeconds += 59
		raw.EndSeconds += 59

		events := Normalize([]calendar.RawEvent{raw}, utc)

		require.Len(t, events, 1)
		assert.Equal(t, start, events[0].Start)
		assert.Equal(t, start.Add(30*time.Minute), events[0].End)
	})

	t.Run("falls back to the default timezone for unknown zone names", func(t *testing.T) {
		toronto, err := time.LoadLocation("America/Toronto")
		require.NoError(t, err)

		events := Normalize([]calendar.RawEvent{rawEvent(start, time.Hour, "Not/AZone", "Mystery")}, toronto)

		require.Len(t, events, 1)
		assert.Equal(t, toronto, events[0].Location)
	})

	t.Run("resolves the authoring zone when known", func(t *testing.T) {
		events := Normalize([]calendar.RawEvent{rawEvent(start, time.Hour, "Europe/Warsaw", "Call")}, utc)

		require.Len(t, events, 1)
		assert.Equal(t, "Europe/Warsaw", events[0].Location.String())
	})

	t.Run("drops all-day events", func(t *testing.T) {
		events := Normalize([]calendar.RawEvent{
			rawEvent(start, 24*time.Hour, "UTC", "Vacation"),
			rawEvent(start, 23*time.Hour+time.Minute, "UTC", "Just over"),
			rawEvent(start, 23*time.Hour, "UTC", "Marathon"),
		}, utc)

		require.Len(t, events, 1)
		assert.Equal(t, "Marathon", events[0].Title)
	})

	t.Run("drops events without positive duration after truncation", func(t *testing.T) {
		raw := rawEvent(start, 0, "UTC", "Instant")
		raw.EndSeconds = raw.StartSeconds + 30 // under a minute

		events := Normalize([]calendar.RawEvent{raw}, utc)

		assert.Empty(t, events)
	})

	t.Run("sorts by start time", func(t *testing.T) {
		events := Normalize([]calendar.RawEvent{
			rawEvent(start.Add(2*time.Hour), time.Hour, "UTC", "Later"),
			rawEvent(start, time.Hour, "UTC", "Earlier"),
		}, utc)

		require.Len(t, events, 2)
		assert.Equal(t, "Earlier", events[0].Title)
		assert.Equal(t, "Later", events[1].Title)
	})
}
