// Package interval implements the half-open time interval algebra the scheduling engine is built on.
//
// Every interval is [Start, End): an interval ending at 10:00 and one starting at 10:00 touch but do
// not overlap. All functions are pure and return fresh slices; callers may keep or mutate results.
package interval

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var ErrInvalidInterval = errors.New("interval start must be before its end")

type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// New builds an interval and rejects empty or inverted ranges.
func New(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, fmt.Errorf("%w: [%s, %s)", ErrInvalidInterval, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	return Interval{Start: start, End: end}, nil
}

func (i Interval) Valid() bool {
	return i.Start.Before(i.End)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Contains reports whether other lies entirely inside i.
func (i Interval) Contains(other Interval) bool {
	return !other.Start.Before(i.Start) && !other.End.After(i.End)
}

// ContainsInstant reports whether t is in [Start, End).
func (i Interval) ContainsInstant(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// Expand widens the interval by before and after. Negative values shrink it.
func (i Interval) Expand(before, after time.Duration) Interval {
	return Interval{Start: i.Start.Add(-before), End: i.End.Add(after)}
}

func (i Interval) In(loc *time.Location) Interval {
	return Interval{Start: i.Start.In(loc), End: i.End.In(loc)}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
}

func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Intersect returns the common part of a and b, if any.
func Intersect(a, b Interval) (Interval, bool) {
	start := maxTime(a.Start, b.Start)
	end := minTime(a.End, b.End)

	if !start.Before(end) {
		return Interval{}, false
	}

	return Interval{Start: start, End: end}, true
}

// Subtract removes every busy interval from a and returns the remaining fragments in order.
func Subtract(a Interval, busy ...Interval) []Interval {
	if !a.Valid() {
		return nil
	}

	fragments := []Interval{a}

	for _, b := range Merge(busy) {
		next := make([]Interval, 0, len(fragments)+1)

		for _, f := range fragments {
			if !Overlaps(f, b) {
				next = append(next, f)

				continue
			}

			if f.Start.Before(b.Start) {
				next = append(next, Interval{Start: f.Start, End: b.Start})
			}

			if b.End.Before(f.End) {
				next = append(next, Interval{Start: b.End, End: f.End})
			}
		}

		fragments = next
	}

	return fragments
}

// SubtractAll applies Subtract to each open interval and flattens the result.
func SubtractAll(open []Interval, busy ...Interval) []Interval {
	merged := Merge(busy)
	result := make([]Interval, 0, len(open))

	for _, o := range open {
		result = append(result, Subtract(o, merged...)...)
	}

	return result
}

// Merge sorts by start and coalesces touching or overlapping intervals. Invalid intervals are dropped.
func Merge(intervals []Interval) []Interval {
	sorted := make([]Interval, 0, len(intervals))

	for _, i := range intervals {
		if i.Valid() {
			sorted = append(sorted, i)
		}
	}

	if len(sorted) < 2 { //nolint:mnd
		return sorted
	}

	slices.SortFunc(sorted, func(a, b Interval) int {
		return a.Start.Compare(b.Start)
	})

	merged := []Interval{sorted[0]}

	for _, i := range sorted[1:] {
		last := &merged[len(merged)-1]

		if i.Start.After(last.End) {
			merged = append(merged, i)

			continue
		}

		if i.End.After(last.End) {
			last.End = i.End
		}
	}

	return merged
}

// Clip intersects every interval with window and drops what falls outside.
func Clip(intervals []Interval, window Interval) []Interval {
	clipped := make([]Interval, 0, len(intervals))

	for _, i := range intervals {
		if c, ok := Intersect(i, window); ok {
			clipped = append(clipped, c)
		}
	}

	return clipped
}

// ContainedIn reports whether candidate fits entirely inside one of the open intervals.
func ContainedIn(candidate Interval, open []Interval) bool {
	return slices.ContainsFunc(open, func(o Interval) bool {
		return o.Contains(candidate)
	})
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}

	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}

	return b
}
