// Package availability computes the open intervals of a resource from its resolved day and busy time.
package availability

import (
	"time"

	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/internal/scheduling/policy"
)

// Busy is the time a resource is already committed for one day.
type Busy struct {
	// Bookings are pending or confirmed bookings; they are widened by the policy buffer.
	Bookings []interval.Interval
	// External are imported calendar events; they are authoritative as given.
	External []interval.Interval
}

// BlockedBy returns every interval that removes availability, with bookings buffer-expanded.
func (b Busy) BlockedBy(buffer time.Duration) []interval.Interval {
	blocked := make([]interval.Interval, 0, len(b.Bookings)+len(b.External))

	for _, booking := range b.Bookings {
		blocked = append(blocked, booking.Expand(buffer, buffer))
	}

	blocked = append(blocked, b.External...)

	return interval.Merge(blocked)
}

// Open subtracts busy time from the day's raw intervals.
func Open(day policy.Day, busy Busy) []interval.Interval {
	return interval.SubtractAll(day.Open, busy.BlockedBy(day.Envelope.Buffer)...)
}

// Fits reports whether candidate lies entirely inside one open interval of the given days.
// The exact continuous range is checked, never a snapped slot.
func Fits(candidate interval.Interval, days []policy.Day, busy Busy) bool {
	return interval.ContainedIn(candidate, OpenAcross(days, busy, candidate))
}

// OpenAcross resolves and joins several consecutive days, clipped to window. Intervals that
// meet at midnight are coalesced.
func OpenAcross(days []policy.Day, busy Busy, window interval.Interval) []interval.Interval {
	open := []interval.Interval{}

	for _, day := range days {
		open = append(open, Open(day, busy)...)
	}

	return interval.Clip(interval.Merge(open), window)
}
