package model

import (
	"time"

	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/internal/scheduling/policy"
)

// Span is a busy row reduced to the time it occupies.
type Span struct {
	StartAt time.Time `db:"start_at"`
	EndAt   time.Time `db:"end_at"`
}

func Intervals(spans []Span) []interval.Interval {
	intervals := make([]interval.Interval, 0, len(spans))

	for _, s := range spans {
		intervals = append(intervals, interval.Interval{Start: s.StartAt, End: s.EndAt})
	}

	return intervals
}

// DayCount is the number of blocking bookings starting on one local date.
type DayCount struct {
	Day   time.Time `db:"day"`
	Total int       `db:"total"`
}

func Counts(rows []DayCount) map[policy.Date]int {
	counts := make(map[policy.Date]int, len(rows))

	for _, row := range rows {
		counts[policy.DateOf(row.Day, time.UTC)] += row.Total
	}

	return counts
}
