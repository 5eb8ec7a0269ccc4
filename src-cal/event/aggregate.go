package event

import "sort"

// GroupByDate partitions events by their own date key in one pass. Relative
// input order is kept inside every bucket.
func GroupByDate(events []Event) map[string][]Event {
	buckets := make(map[string][]Event)
	for _, ev := range events {
		buckets[ev.Date] = append(buckets[ev.Date], ev)
	}
	return buckets
}

// ByStart returns a copy of events sorted ascending by start time, for the
// per-day view. Starts are zero-padded HH:MM so plain string comparison is
// chronological; the sort is stable so equal starts keep their stored order.
func ByStart(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}
