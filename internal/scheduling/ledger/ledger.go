// Package ledger counts remaining capacity of quantity-backed resources over time.
package ledger

import (
	"slices"
	"time"

	"slotkeeper/internal/scheduling/interval"
)

// Hold is a quantity held over an interval by one active rental.
type Hold struct {
	Interval interval.Interval
	Quantity int
}

// Overdue extends a hold whose units are not back yet until now.
func Overdue(i interval.Interval, quantity int, now time.Time) Hold {
	if now.After(i.End) {
		i.End = now
	}

	return Hold{Interval: i, Quantity: quantity}
}

// Segment is a stretch of the window with constant holdings.
type Segment struct {
	Interval  interval.Interval `json:"interval"`
	Held      int               `json:"held"`
	Remaining int               `json:"remaining"`
}

type event struct {
	at    time.Time
	delta int
}

// Timeline splits window at every hold boundary and reports the capacity of each piece.
// Remaining never goes below zero.
func Timeline(total int, holds []Hold, window interval.Interval) []Segment {
	if !window.Valid() {
		return []Segment{}
	}

	events := make([]event, 0, len(holds)*2)
	boundaries := []time.Time{window.Start, window.End}

	for _, h := range holds {
		if h.Quantity <= 0 {
			continue
		}

		clipped, ok := interval.Intersect(h.Interval, window)
		if !ok {
			continue
		}

		events = append(events, event{at: clipped.Start, delta: h.Quantity}, event{at: clipped.End, delta: -h.Quantity})
		boundaries = append(boundaries, clipped.Start, clipped.End)
	}

	// Releases sort before acquisitions at the same instant: [9,10) and [10,11) never stack.
	slices.SortFunc(events, func(a, b event) int {
		if c := a.at.Compare(b.at); c != 0 {
			return c
		}

		return a.delta - b.delta
	})

	slices.SortFunc(boundaries, time.Time.Compare)
	boundaries = slices.CompactFunc(boundaries, time.Time.Equal)

	segments := make([]Segment, 0, len(boundaries)-1)
	held, next := 0, 0

	for i := 0; i+1 < len(boundaries); i++ {
		from, to := boundaries[i], boundaries[i+1]

		for next < len(events) && !events[next].at.After(from) {
			held += events[next].delta
			next++
		}

		segments = append(segments, Segment{
			Interval:  interval.Interval{Start: from, End: to},
			Held:      held,
			Remaining: max(total-held, 0),
		})
	}

	return segments
}

// RemainingCapacity is the minimum capacity left over window.
func RemainingCapacity(total int, holds []Hold, window interval.Interval) int {
	segments := Timeline(total, holds, window)
	if len(segments) == 0 {
		return 0
	}

	remaining := segments[0].Remaining
	for _, s := range segments[1:] {
		remaining = min(remaining, s.Remaining)
	}

	return remaining
}

func CanReserve(total int, holds []Hold, window interval.Interval, quantity int) bool {
	if quantity <= 0 {
		return false
	}

	return quantity <= RemainingCapacity(total, holds, window)
}
