package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testWindow is Tuesday 2024-06-04 in Toronto (EDT, UTC-4): the 09:00
// to 17:00 work window is 13:00 to 21:00 UTC.
func testWindow(t *testing.T) DayWindow {
	t.Helper()
	toronto, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)
	now := time.Date(2024, time.June, 4, 7, 0, 0, 0, toronto)
	windows := GenerateDayWindows(now, 0, 9, 17, toronto)
	require.Len(t, windows, 1)
	return windows[0]
}

func normalized(start time.Time, duration time.Duration, title string) NormalizedEvent {
	return NormalizedEvent{Start: start, End: start.Add(duration), Title: title, Location: time.UTC}
}

func TestMergeSpans(t *testing.T) {
	base := time.Date(2024, time.June, 4, 13, 0, 0, 0, time.UTC)
	at := func(offset, length time.Duration) span {
		return span{start: base.Add(offset), end: base.Add(offset + length)}
	}

	t.Run("coalesces overlapping and touching spans", func(t *testing.T) {
		merged := mergeSpans([]span{
			at(time.Hour, 30*time.Minute),
			at(0, 45*time.Minute),
			at(30*time.Minute, 30*time.Minute), // touches the first, overlaps the second
		})

		require.Len(t, merged, 1)
		assert.Equal(t, base, merged[0].start)
		assert.Equal(t, base.Add(90*time.Minute), merged[0].end)
	})

	t.Run("keeps disjoint spans apart", func(t *testing.T) {
		merged := mergeSpans([]span{
			at(2*time.Hour, 30*time.Minute),
			at(0, 30*time.Minute),
		})

		require.Len(t, merged, 2)
		assert.Equal(t, base, merged[0].start)
		assert.Equal(t, base.Add(2*time.Hour), merged[1].start)
	})
}

func TestSubtractSpans(t *testing.T) {
	base := time.Date(2024, time.June, 4, 13, 0, 0, 0, time.UTC)
	window := span{start: base, end: base.Add(8 * time.Hour)}

	t.Run("cut in the middle splits the window", func(t *testing.T) {
		remaining := subtractSpans(window, []span{{start: base.Add(time.Hour), end: base.Add(2 * time.Hour)}})

		require.Len(t, remaining, 2)
		assert.Equal(t, span{start: base, end: base.Add(time.Hour)}, remaining[0])
		assert.Equal(t, span{start: base.Add(2 * time.Hour), end: window.end}, remaining[1])
	})

	t.Run("cut overlapping the window start trims the head", func(t *testing.T) {
		remaining := subtractSpans(window, []span{{start: base.Add(-time.Hour), end: base.Add(time.Hour)}})

		require.Len(t, remaining, 1)
		assert.Equal(t, span{start: base.Add(time.Hour), end: window.end}, remaining[0])
	})

	t.Run("cut covering the window leaves nothing", func(t *testing.T) {
		remaining := subtractSpans(window, []span{{start: base.Add(-time.Hour), end: window.end.Add(time.Hour)}})

		assert.Empty(t, remaining)
	})

	t.Run("cuts outside the window are ignored", func(t *testing.T) {
		remaining := subtractSpans(window, []span{
			{start: base.Add(-2 * time.Hour), end: base.Add(-time.Hour)},
			{start: window.end, end: window.end.Add(time.Hour)},
		})

		require.Len(t, remaining, 1)
		assert.Equal(t, window, remaining[0])
	})
}

// assertPartition checks that intervals tile [start, end) without gaps
// and with strictly alternating statuses.
func assertPartition(t *testing.T, intervals []Interval, start, end time.Time) {
	t.Helper()
	require.NotEmpty(t, intervals)
	assert.Equal(t, start, intervals[0].Start)
	assert.Equal(t, end, intervals[len(intervals)-1].End)
	for i := 1; i < len(intervals); i++ {
		assert.Equal(t, intervals[i-1].End, intervals[i].Start, "gap before interval %d", i)
		assert.NotEqual(t, intervals[i-1].Status, intervals[i].Status, "statuses must alternate at %d", i)
	}
}

func TestComputeDay(t *testing.T) {
	win := testWindow(t)

	t.Run("day without events is one available interval", func(t *testing.T) {
		intervals := ComputeDay(win, nil, true)

		require.Len(t, intervals, 1)
		assert.Equal(t, Interval{Start: win.WorkStart, End: win.WorkEnd, Status: StatusAvailable}, intervals[0])
	})

	t.Run("event inside the window splits it", func(t *testing.T) {
		meeting := normalized(win.WorkStart, 30*time.Minute, "Standup")

		intervals := ComputeDay(win, []NormalizedEvent{meeting}, true)

		require.Len(t, intervals, 2)
		assert.Equal(t, Interval{Start: win.WorkStart, End: win.WorkStart.Add(30 * time.Minute), Status: StatusBusy}, intervals[0])
		assert.Equal(t, Interval{Start: win.WorkStart.Add(30 * time.Minute), End: win.WorkEnd, Status: StatusAvailable}, intervals[1])
		assertPartition(t, intervals, win.WorkStart, win.WorkEnd)
	})

	t.Run("event covering the whole window is one busy interval", func(t *testing.T) {
		meeting := normalized(win.WorkStart, 8*time.Hour, "Offsite")

		intervals := ComputeDay(win, []NormalizedEvent{meeting}, true)

		require.Len(t, intervals, 1)
		assert.Equal(t, Interval{Start: win.WorkStart, End: win.WorkEnd, Status: StatusBusy}, intervals[0])
	})

	t.Run("overlapping events merge into one busy stretch", func(t *testing.T) {
		intervals := ComputeDay(win, []NormalizedEvent{
			normalized(win.WorkStart.Add(time.Hour), time.Hour, "Review"),
			normalized(win.WorkStart.Add(90*time.Minute), time.Hour, "Overrun"),
		}, true)

		require.Len(t, intervals, 3)
		assert.Equal(t, StatusAvailable, intervals[0].Status)
		assert.Equal(t, Interval{
			Start:  win.WorkStart.Add(time.Hour),
			End:    win.WorkStart.Add(150 * time.Minute),
			Status: StatusBusy,
		}, intervals[1])
		assertPartition(t, intervals, win.WorkStart, win.WorkEnd)
	})

	t.Run("busy time past the window end is discarded", func(t *testing.T) {
		meeting := normalized(win.WorkEnd.Add(-30*time.Minute), 2*time.Hour, "Late call")

		intervals := ComputeDay(win, []NormalizedEvent{meeting}, true)

		require.Len(t, intervals, 2)
		assert.Equal(t, Interval{Start: win.WorkEnd.Add(-30 * time.Minute), End: win.WorkEnd, Status: StatusBusy}, intervals[1])
	})

	t.Run("event starting after the window end leaves the day free", func(t *testing.T) {
		meeting := normalized(win.WorkEnd.Add(time.Hour), time.Hour, "Dinner")

		intervals := ComputeDay(win, []NormalizedEvent{meeting}, true)

		require.Len(t, intervals, 1)
		assert.Equal(t, StatusAvailable, intervals[0].Status)
	})

	t.Run("event belonging to another day is ignored", func(t *testing.T) {
		meeting := normalized(win.DayStart().Add(-time.Hour), 30*time.Minute, "Yesterday")

		intervals := ComputeDay(win, []NormalizedEvent{meeting}, true)

		require.Len(t, intervals, 1)
		assert.Equal(t, StatusAvailable, intervals[0].Status)
	})

	t.Run("strict mode clips busy time before the window start", func(t *testing.T) {
		// 08:30 to 09:15 local: starts inside the calendar day but before
		// the work window.
		meeting := normalized(win.WorkStart.Add(-30*time.Minute), 45*time.Minute, "Early sync")

		intervals := ComputeDay(win, []NormalizedEvent{meeting}, true)

		require.Len(t, intervals, 2)
		assert.Equal(t, Interval{Start: win.WorkStart, End: win.WorkStart.Add(15 * time.Minute), Status: StatusBusy}, intervals[0])
		assertPartition(t, intervals, win.WorkStart, win.WorkEnd)
	})

	t.Run("non-strict mode keeps pre-window busy minutes doubly tagged", func(t *testing.T) {
		meeting := normalized(win.WorkStart.Add(-30*time.Minute), 45*time.Minute, "Early sync")

		intervals := ComputeDay(win, []NormalizedEvent{meeting}, false)

		// The 29 minutes from 08:30 to 08:59 local carry both statuses and
		// come out as alternating one-minute intervals, then 08:59 closes
		// the Available side, the Busy run continues to 09:15 and the rest
		// of the window is Available.
		require.Len(t, intervals, 61)
		first := win.WorkStart.Add(-30 * time.Minute)
		assert.Equal(t, Interval{Start: first, End: first.Add(time.Minute), Status: StatusAvailable}, intervals[0])
		assert.Equal(t, Interval{Start: first, End: first.Add(time.Minute), Status: StatusBusy}, intervals[1])
		assert.Equal(t, Interval{
			Start:  win.WorkStart.Add(-time.Minute),
			End:    win.WorkStart.Add(15 * time.Minute),
			Status: StatusBusy,
		}, intervals[59])
		assert.Equal(t, Interval{
			Start:  win.WorkStart.Add(15 * time.Minute),
			End:    win.WorkEnd,
			Status: StatusAvailable,
		}, intervals[60])
	})

	t.Run("non-strict mode matches strict mode when nothing precedes the window", func(t *testing.T) {
		events := []NormalizedEvent{normalized(win.WorkStart.Add(2*time.Hour), time.Hour, "Review")}

		assert.Equal(t, ComputeDay(win, events, true), ComputeDay(win, events, false))
	})
}
