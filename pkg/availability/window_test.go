package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDayWindows(t *testing.T) {
	toronto, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)

	t.Run("single weekday with zero lookahead", func(t *testing.T) {
		now := time.Date(2024, time.June, 4, 8, 0, 0, 0, toronto) // Tuesday

		windows := GenerateDayWindows(now, 0, 9, 17, toronto)

		require.Len(t, windows, 1)
		assert.Equal(t, time.Tuesday, windows[0].Weekday)
		assert.Equal(t, time.Date(2024, time.June, 4, 0, 0, 0, 0, toronto), windows[0].Date)
		assert.Equal(t, time.Date(2024, time.June, 4, 13, 0, 0, 0, time.UTC), windows[0].WorkStart)
		assert.Equal(t, time.Date(2024, time.June, 4, 21, 0, 0, 0, time.UTC), windows[0].WorkEnd)
	})

	t.Run("anchors to local midnight regardless of time of day", func(t *testing.T) {
		morning := time.Date(2024, time.June, 4, 0, 1, 0, 0, toronto)
		evening := time.Date(2024, time.June, 4, 23, 59, 0, 0, toronto)

		a := GenerateDayWindows(morning, 0, 9, 17, toronto)
		b := GenerateDayWindows(evening, 0, 9, 17, toronto)

		assert.Equal(t, a, b)
	})

	t.Run("skips weekends inside the lookahead", func(t *testing.T) {
		now := time.Date(2024, time.June, 7, 8, 0, 0, 0, toronto) // Friday

		windows := GenerateDayWindows(now, 7, 9, 17, toronto)

		require.Len(t, windows, 6) // Fri, then Mon through Fri
		assert.Equal(t, time.Friday, windows[0].Weekday)
		assert.Equal(t, time.Monday, windows[1].Weekday)
		assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, toronto), windows[1].Date)
		for _, win := range windows {
			assert.NotEqual(t, time.Saturday, win.Weekday)
			assert.NotEqual(t, time.Sunday, win.Weekday)
		}
	})

	t.Run("returns nothing when the whole lookahead is a weekend", func(t *testing.T) {
		now := time.Date(2024, time.June, 8, 8, 0, 0, 0, toronto) // Saturday

		windows := GenerateDayWindows(now, 1, 9, 17, toronto)

		assert.Empty(t, windows)
	})

	t.Run("applies each date's own UTC offset across a DST transition", func(t *testing.T) {
		// Toronto springs forward on Sunday 2024-03-10.
		now := time.Date(2024, time.March, 8, 8, 0, 0, 0, toronto) // Friday, still EST

		windows := GenerateDayWindows(now, 3, 9, 17, toronto)

		require.Len(t, windows, 2)
		assert.Equal(t, time.Friday, windows[0].Weekday)
		assert.Equal(t, time.Date(2024, time.March, 8, 14, 0, 0, 0, time.UTC), windows[0].WorkStart)
		assert.Equal(t, time.Monday, windows[1].Weekday)
		assert.Equal(t, time.Date(2024, time.March, 11, 13, 0, 0, 0, time.UTC), windows[1].WorkStart)
	})

	t.Run("lookahead is inclusive of its last day", func(t *testing.T) {
		now := time.Date(2024, time.June, 3, 8, 0, 0, 0, toronto) // Monday

		windows := GenerateDayWindows(now, 4, 9, 17, toronto)

		require.Len(t, windows, 5)
		assert.Equal(t, time.Date(2024, time.June, 7, 0, 0, 0, 0, toronto), windows[4].Date)
	})
}
