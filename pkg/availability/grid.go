package availability

import (
	"sort"
	"time"
)

// span is a half-open [start, end) stretch of time at minute granularity.
type span struct {
	start time.Time
	end   time.Time
}

func (s span) empty() bool {
	return !s.start.Before(s.end)
}

// mergeSpans sorts spans by start and coalesces overlapping or touching
// ones.
func mergeSpans(spans []span) []span {
	if len(spans) < 2 {
		return spans
	}
	sort.Slice(spans, func(i, j int) bool {
		return spans[i].start.Before(spans[j].start)
	})

	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.start.After(last.end) {
			merged = append(merged, s)
			continue
		}
		if s.end.After(last.end) {
			last.end = s.end
		}
	}
	return merged
}

// subtractSpans returns the parts of window not covered by cuts. Cuts
// must be merged and ordered.
func subtractSpans(window span, cuts []span) []span {
	var remaining []span
	cursor := window.start
	for _, c := range cuts {
		if !c.end.After(cursor) || !c.start.Before(window.end) {
			continue
		}
		if c.start.After(cursor) {
			remaining = append(remaining, span{start: cursor, end: c.start})
		}
		if c.end.After(cursor) {
			cursor = c.end
		}
	}
	if cursor.Before(window.end) {
		remaining = append(remaining, span{start: cursor, end: window.end})
	}
	return remaining
}

// busySpans collects the merged busy coverage of one day. An event
// belongs to the day when its start falls inside the calendar day (not
// the work window); its minutes at or past the window end are discarded
// even if the event continues.
func busySpans(win DayWindow, events []NormalizedEvent) []span {
	var spans []span
	dayStart := win.DayStart()
	dayEnd := win.DayEnd()
	for _, e := range events {
		if e.Start.Before(dayStart) || !e.Start.Before(dayEnd) {
			continue
		}
		s := span{start: e.Start, end: e.End}
		if s.end.After(win.WorkEnd) {
			s.end = win.WorkEnd
		}
		if s.empty() {
			continue
		}
		spans = append(spans, s)
	}
	return mergeSpans(spans)
}

// ComputeDay classifies the minutes of one day window as Busy or
// Available and compresses them into ordered intervals.
//
// In strict mode busy time is clipped to the work window and the result
// partitions [WorkStart, WorkEnd) exactly. In non-strict mode the
// available set is the symmetric difference of window minutes and busy
// minutes: busy minutes between local midnight and the window start
// survive, tagged both Available and Busy, and surface in the result as
// alternating one-minute intervals.
func ComputeDay(win DayWindow, events []NormalizedEvent, strict bool) []Interval {
	window := span{start: win.WorkStart, end: win.WorkEnd}
	busy := busySpans(win, events)

	if strict {
		clipped := make([]span, 0, len(busy))
		for _, b := range busy {
			if b.start.Before(window.start) {
				b.start = window.start
			}
			if b.empty() {
				continue
			}
			clipped = append(clipped, b)
		}
		busy = clipped
	}

	available := subtractSpans(window, busy)
	if !strict {
		for _, b := range busy {
			if b.start.Before(window.start) {
				head := b
				if head.end.After(window.start) {
					head.end = window.start
				}
				available = append(available, head)
			}
		}
	}

	entries := minuteEntries(available, StatusAvailable)
	entries = append(entries, minuteEntries(busy, StatusBusy)...)

	return compressStreaks(entries)
}
