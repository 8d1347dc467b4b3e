package availability

import (
	"sort"
	"time"
)

// minuteEntry tags one minute instant with a status.
type minuteEntry struct {
	minute time.Time
	status MinuteStatus
}

// minuteEntries expands half-open spans into tagged minute entries.
func minuteEntries(spans []span, status MinuteStatus) []minuteEntry {
	var entries []minuteEntry
	for _, s := range spans {
		for m := s.start; m.Before(s.end); m = m.Add(time.Minute) {
			entries = append(entries, minuteEntry{minute: m, status: status})
		}
	}
	return entries
}

// compressStreaks merges tagged minutes into maximal half-open
// intervals. Entries are ordered by minute; when the same minute
// carries both statuses, Available sorts before Busy. The tie-break is
// part of the contract, not an accident of insertion order.
func compressStreaks(entries []minuteEntry) []Interval {
	if len(entries) == 0 {
		return nil
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].minute.Equal(entries[j].minute) {
			return entries[i].status < entries[j].status
		}
		return entries[i].minute.Before(entries[j].minute)
	})

	var intervals []Interval
	streakStart := entries[0].minute
	lastMinute := entries[0].minute
	status := entries[0].status

	for _, e := range entries[1:] {
		if e.status != status {
			// The closing minute is part of the streak, so the half-open
			// end extends one past it.
			intervals = append(intervals, Interval{Start: streakStart, End: lastMinute.Add(time.Minute), Status: status})
			streakStart = e.minute
			status = e.status
		}
		lastMinute = e.minute
	}
	intervals = append(intervals, Interval{Start: streakStart, End: lastMinute.Add(time.Minute), Status: status})

	return intervals
}
