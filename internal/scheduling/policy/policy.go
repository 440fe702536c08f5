// Package policy turns a resource's raw schedule configuration into the open intervals of a day and
// the booking envelope that constrains which of them may be offered.
package policy

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/shared/failure"
)

const (
	MinutesPerDay  Minute = 24 * minutesPerHour
	minutesPerHour        = 60
)

var (
	ErrInvalidClock     = errors.New("time of day must be formatted as HH:MM between 00:00 and 24:00")
	ErrInvalidRange     = errors.New("range start must be before its end")
	ErrOverlappingRange = errors.New("ranges must not overlap")
	ErrInvalidPolicy    = errors.New("invalid booking policy")
)

// Minute is a minute of the day in [0, 1440].
type Minute int

func ParseClock(value string) (Minute, error) {
	hh, mm, ok := strings.Cut(value, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	hours, errH := strconv.Atoi(hh)
	minutes, errM := strconv.Atoi(mm)

	if errH != nil || errM != nil || hours < 0 || minutes < 0 || minutes >= minutesPerHour {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	m := Minute(hours*minutesPerHour + minutes)
	if m > MinutesPerDay {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	return m, nil
}

func (m Minute) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/minutesPerHour, int(m)%minutesPerHour)
}

// Range is a time-of-day interval [Start, End) within one day.
type Range struct {
	Start Minute `json:"start"`
	End   Minute `json:"end"`
}

func (r Range) Validate() error {
	if r.Start < 0 || r.End > MinutesPerDay {
		return fmt.Errorf("%w: %s-%s", ErrInvalidClock, r.Start, r.End)
	}

	if r.Start >= r.End {
		return fmt.Errorf("%w: %s-%s", ErrInvalidRange, r.Start, r.End)
	}

	return nil
}

// NormalizeRanges sorts ranges and rejects invalid or overlapping ones. Touching ranges are allowed.
func NormalizeRanges(ranges []Range) ([]Range, error) {
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b Range) int {
		return int(a.Start - b.Start)
	})

	for i, r := range sorted {
		if err := r.Validate(); err != nil {
			return nil, err
		}

		if i > 0 && r.Start < sorted[i-1].End {
			return nil, fmt.Errorf("%w: %s-%s and %s-%s", ErrOverlappingRange, sorted[i-1].Start, sorted[i-1].End, r.Start, r.End)
		}
	}

	return sorted, nil
}

// WorkingHours maps a weekday to its ordered, non-overlapping opening ranges.
type WorkingHours map[time.Weekday][]Range

func (w WorkingHours) Normalize() (WorkingHours, error) {
	normalized := make(WorkingHours, len(w))

	for day, ranges := range w {
		if day < time.Sunday || day > time.Saturday {
			return nil, fmt.Errorf("%w: unknown weekday %d", ErrInvalidRange, day)
		}

		sorted, err := NormalizeRanges(ranges)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", day, err)
		}

		normalized[day] = sorted
	}

	return normalized, nil
}

// Exception overrides WorkingHours for one date. Closed wins over Ranges.
type Exception struct {
	Date   Date
	Closed bool
	Ranges []Range
}

// Policy is the booking policy of a business, or a resource override of it.
type Policy struct {
	Buffer             time.Duration
	MinAdvance         time.Duration
	MaxAdvanceDays     int // 0 means no horizon
	MaxDailyBookings   int // 0 means no cap
	Granularity        time.Duration
	UseFixedIntervals  bool
	CancellationWindow time.Duration
	AutoConfirm        bool
}

func (p Policy) Validate() error {
	switch {
	case p.Buffer < 0, p.MinAdvance < 0, p.CancellationWindow < 0, p.Granularity < 0:
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidPolicy)
	case p.MaxAdvanceDays < 0, p.MaxDailyBookings < 0:
		return fmt.Errorf("%w: limits must not be negative", ErrInvalidPolicy)
	case p.UseFixedIntervals && p.Granularity == 0:
		return fmt.Errorf("%w: fixed intervals need a granularity", ErrInvalidPolicy)
	}

	return nil
}

func (p Policy) Envelope(loc *time.Location) Envelope {
	return Envelope{
		Buffer:            p.Buffer,
		MinAdvance:        p.MinAdvance,
		MaxAdvanceDays:    p.MaxAdvanceDays,
		MaxDailyBookings:  p.MaxDailyBookings,
		Granularity:       p.Granularity,
		UseFixedIntervals: p.UseFixedIntervals,
		Location:          loc,
	}
}

// Envelope holds the policy constraints evaluated against the clock at query or commit time.
type Envelope struct {
	Buffer            time.Duration
	MinAdvance        time.Duration
	MaxAdvanceDays    int
	MaxDailyBookings  int
	Granularity       time.Duration
	UseFixedIntervals bool
	Location          *time.Location
}

// Earliest is the first instant a slot may start at.
func (e Envelope) Earliest(now time.Time) time.Time {
	return now.Add(e.MinAdvance)
}

// Horizon is the instant slots must start before. ok is false when there is no horizon.
func (e Envelope) Horizon(now time.Time) (time.Time, bool) {
	if e.MaxAdvanceDays <= 0 {
		return time.Time{}, false
	}

	return DateOf(now, e.location()).AddDays(e.MaxAdvanceDays).End(e.location()), true
}

// Admit checks a start instant against min advance and max advance, relative to now.
func (e Envelope) Admit(start, now time.Time) error {
	if start.Before(e.Earliest(now)) {
		if e.MinAdvance == 0 {
			return fmt.Errorf("%w: start is in the past", failure.ErrPolicyViolation)
		}

		return fmt.Errorf("%w: bookings need at least %s advance notice", failure.ErrPolicyViolation, e.MinAdvance)
	}

	if horizon, ok := e.Horizon(now); ok && !start.Before(horizon) {
		return fmt.Errorf("%w: bookings can be made at most %d days ahead", failure.ErrPolicyViolation, e.MaxAdvanceDays)
	}

	return nil
}

func (e Envelope) location() *time.Location {
	if e.Location == nil {
		return time.UTC
	}

	return e.Location
}

// Schedule is everything needed to resolve the raw open intervals of a resource.
type Schedule struct {
	Hours      WorkingHours
	Exceptions map[Date]Exception
	Policy     Policy
	Location   *time.Location
}

// Day is one resolved date: raw open intervals before any busy time is removed.
type Day struct {
	Date     Date
	Open     []interval.Interval
	Envelope Envelope
}

// Resolve applies the exception for date if one exists, else the weekday hours.
func (s Schedule) Resolve(date Date) Day {
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}

	ranges := s.Hours[date.Weekday()]
	if exception, ok := s.Exceptions[date]; ok {
		ranges = exception.Ranges
		if exception.Closed {
			ranges = nil
		}
	}

	open := make([]interval.Interval, 0, len(ranges))

	for _, r := range ranges {
		i := interval.Interval{Start: date.At(r.Start, loc), End: date.At(r.End, loc)}
		if i.Valid() {
			open = append(open, i)
		}
	}

	return Day{
		Date:     date,
		Open:     interval.Merge(open),
		Envelope: s.Policy.Envelope(loc),
	}
}
