package policy

import (
	"fmt"
	"time"

	"slotkeeper/internal/scheduling/interval"
)

const DateLayout = "2006-01-02"

// Date is a calendar date with no time of day and no location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t as seen in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	y, m, d := t.In(loc).Date()

	return Date{Year: y, Month: m, Day: d}
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return DateOf(t, time.UTC), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC), time.UTC)
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}

	if d.Month != other.Month {
		return d.Month < other.Month
	}

	return d.Day < other.Day
}

// At returns the instant of minute-of-day m on this date in loc. The wall clock is
// built directly so DST shifts never move opening hours, and 24:00 is the next midnight.
func (d Date) At(m Minute, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, int(m)/minutesPerHour, int(m)%minutesPerHour, 0, 0, loc)
}

func (d Date) Start(loc *time.Location) time.Time {
	return d.At(0, loc)
}

func (d Date) End(loc *time.Location) time.Time {
	return d.At(MinutesPerDay, loc)
}

// Window is the local day [midnight, next midnight) as an interval.
func (d Date) Window(loc *time.Location) interval.Interval {
	return interval.Interval{Start: d.Start(loc), End: d.End(loc)}
}

// DatesOf lists the local dates touched by the half-open window, in order.
func DatesOf(window interval.Interval, loc *time.Location) []Date {
	if !window.Valid() {
		return nil
	}

	first := DateOf(window.Start, loc)
	last := DateOf(window.End.Add(-time.Nanosecond), loc)

	dates := []Date{}
	for d := first; !last.Before(d); d = d.AddDays(1) {
		dates = append(dates, d)
	}

	return dates
}
