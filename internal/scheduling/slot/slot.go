// Package slot enumerates offerable slots from a resource's open intervals.
package slot

import (
	"time"

	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/internal/scheduling/policy"
)

// DefaultDisplayStep is the start step in continuous mode when neither the policy nor the caller sets one.
const DefaultDisplayStep = 15 * time.Minute

type Options struct {
	// DisplayStep snaps continuous-mode starts; the envelope granularity wins when set.
	DisplayStep time.Duration
	// Booked is the pending plus confirmed count per local date, used for the daily cap.
	Booked map[policy.Date]int
}

// Generate returns the ordered slots of length duration that fit inside open and pass the envelope
// filters evaluated against now.
func Generate(open []interval.Interval, duration time.Duration, envelope policy.Envelope, now time.Time, opts Options) []interval.Interval {
	slots := []interval.Interval{}
	if duration <= 0 {
		return slots
	}

	loc := envelope.Location
	if loc == nil {
		loc = time.UTC
	}

	earliest := envelope.Earliest(now)
	horizon, bounded := envelope.Horizon(now)

	for _, window := range interval.Merge(open) {
		for start := firstStart(window, envelope, opts, loc); !start.Add(duration).After(window.End); start = start.Add(step(envelope, opts)) {
			if start.Before(earliest) {
				continue
			}

			if bounded && !start.Before(horizon) {
				break
			}

			if capped(envelope, opts, policy.DateOf(start, loc)) {
				continue
			}

			slots = append(slots, interval.Interval{Start: start, End: start.Add(duration)})
		}
	}

	return slots
}

func step(envelope policy.Envelope, opts Options) time.Duration {
	if envelope.Granularity > 0 {
		return envelope.Granularity
	}

	if opts.DisplayStep > 0 {
		return opts.DisplayStep
	}

	return DefaultDisplayStep
}

// firstStart is the open interval's start in fixed mode, and the start rounded up to the local
// clock grid in continuous mode.
func firstStart(window interval.Interval, envelope policy.Envelope, opts Options, loc *time.Location) time.Time {
	if envelope.UseFixedIntervals {
		return window.Start
	}

	every := step(envelope, opts)
	local := window.Start.In(loc)
	sinceMidnight := time.Duration(local.Hour())*time.Hour +
		time.Duration(local.Minute())*time.Minute +
		time.Duration(local.Second())*time.Second +
		time.Duration(local.Nanosecond())

	if rem := sinceMidnight % every; rem != 0 {
		return window.Start.Add(every - rem)
	}

	return window.Start
}

func capped(envelope policy.Envelope, opts Options, date policy.Date) bool {
	if envelope.MaxDailyBookings <= 0 {
		return false
	}

	return opts.Booked[date] >= envelope.MaxDailyBookings
}
