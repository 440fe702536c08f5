package availability_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"slotkeeper/internal/scheduling/availability"
	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/internal/scheduling/policy"
)

var monday = policy.Date{Year: 2030, Month: time.March, Day: 4}

func at(hour, minute int) time.Time {
	return time.Date(2030, time.March, 4, hour, minute, 0, 0, time.UTC)
}

func iv(sh, sm, eh, em int) interval.Interval {
	return interval.Interval{Start: at(sh, sm), End: at(eh, em)}
}

func day(buffer time.Duration, open ...interval.Interval) policy.Day {
	return policy.Day{
		Date:     monday,
		Open:     open,
		Envelope: policy.Policy{Buffer: buffer}.Envelope(time.UTC),
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name string
		day  policy.Day
		busy availability.Busy
		want []interval.Interval
	}{
		{
			name: "no busy time",
			day:  day(0, iv(9, 0, 17, 0)),
			want: []interval.Interval{iv(9, 0, 17, 0)},
		},
		{
			name: "booking ending at 10:00 with 15 minute buffer blocks 10:00-10:15",
			day:  day(15*time.Minute, iv(9, 0, 12, 0)),
			busy: availability.Busy{Bookings: []interval.Interval{iv(9, 0, 10, 0)}},
			want: []interval.Interval{iv(10, 15, 12, 0)},
		},
		{
			name: "buffer applies on both sides",
			day:  day(15*time.Minute, iv(9, 0, 12, 0)),
			busy: availability.Busy{Bookings: []interval.Interval{iv(10, 0, 11, 0)}},
			want: []interval.Interval{iv(9, 0, 9, 45), iv(11, 15, 12, 0)},
		},
		{
			name: "external busy is not buffer expanded",
			day:  day(15*time.Minute, iv(9, 0, 12, 0)),
			busy: availability.Busy{External: []interval.Interval{iv(10, 0, 11, 0)}},
			want: []interval.Interval{iv(9, 0, 10, 0), iv(11, 0, 12, 0)},
		},
		{
			name: "booking ending at opening leaves the day untouched without buffer",
			day:  day(0, iv(10, 0, 12, 0)),
			busy: availability.Busy{Bookings: []interval.Interval{iv(9, 0, 10, 0)}},
			want: []interval.Interval{iv(10, 0, 12, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, availability.Open(tt.day, tt.busy))
		})
	}
}

func TestFits_BoundaryExclusivity(t *testing.T) {
	d := day(0, iv(9, 0, 12, 0))
	busy := availability.Busy{Bookings: []interval.Interval{iv(9, 0, 10, 0)}}

	assert.True(t, availability.Fits(iv(10, 0, 11, 0), []policy.Day{d}, busy), "a booking may start when another ends")
	assert.False(t, availability.Fits(iv(9, 30, 10, 30), []policy.Day{d}, busy))
	assert.False(t, availability.Fits(iv(11, 30, 12, 30), []policy.Day{d}, busy), "must stay inside opening hours")
}

func TestFits_AcrossMidnight(t *testing.T) {
	tuesday := monday.AddDays(1)
	late := policy.Day{Date: monday, Open: []interval.Interval{{Start: at(22, 0), End: tuesday.Start(time.UTC)}}}
	early := policy.Day{Date: tuesday, Open: []interval.Interval{{Start: tuesday.Start(time.UTC), End: tuesday.At(120, time.UTC)}}}

	candidate := interval.Interval{Start: at(23, 0), End: tuesday.At(60, time.UTC)}
	assert.True(t, availability.Fits(candidate, []policy.Day{late, early}, availability.Busy{}))
}

func TestOpen_Idempotent(t *testing.T) {
	d := day(10*time.Minute, iv(9, 0, 17, 0))
	busy := availability.Busy{
		Bookings: []interval.Interval{iv(11, 0, 12, 0), iv(9, 0, 9, 30)},
		External: []interval.Interval{iv(15, 0, 16, 0)},
	}

	first := availability.Open(d, busy)
	second := availability.Open(d, busy)

	assert.Equal(t, first, second)
	assert.Equal(t, []interval.Interval{iv(9, 40, 10, 50), iv(12, 10, 15, 0), iv(16, 0, 17, 0)}, first)
}

func TestOpenAcross(t *testing.T) {
	tuesday := monday.AddDays(1)
	days := []policy.Day{
		{Date: monday, Open: []interval.Interval{{Start: at(20, 0), End: tuesday.Start(time.UTC)}}},
		{Date: tuesday, Open: []interval.Interval{{Start: tuesday.Start(time.UTC), End: tuesday.At(180, time.UTC)}}},
	}

	window := interval.Interval{Start: at(21, 0), End: tuesday.At(120, time.UTC)}
	got := availability.OpenAcross(days, availability.Busy{}, window)

	assert.Equal(t, []interval.Interval{window}, got)
}
