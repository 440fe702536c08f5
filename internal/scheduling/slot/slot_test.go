package slot_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/internal/scheduling/policy"
	"slotkeeper/internal/scheduling/slot"
)

var monday = policy.Date{Year: 2030, Month: time.March, Day: 4}

func at(hour, minute int) time.Time {
	return time.Date(2030, time.March, 4, hour, minute, 0, 0, time.UTC)
}

func starts(slots []interval.Interval) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start.Format("Mon 15:04"))
	}

	return out
}

// longAgo keeps advance-notice filters out of the way.
var longAgo = time.Date(2029, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestGenerate_FixedGrid(t *testing.T) {
	schedule := policy.Schedule{
		Hours:    policy.WorkingHours{time.Monday: {{Start: 540, End: 720}}},
		Policy:   policy.Policy{Granularity: 30 * time.Minute, UseFixedIntervals: true},
		Location: time.UTC,
	}
	require.NoError(t, schedule.Policy.Validate())

	day := schedule.Resolve(monday)
	slots := slot.Generate(day.Open, time.Hour, day.Envelope, longAgo, slot.Options{})

	// 11:00-12:00 ends exactly at closing and still fits; 11:30 would overrun.
	assert.Equal(t, []string{"Mon 09:00", "Mon 09:30", "Mon 10:00", "Mon 10:30", "Mon 11:00"}, starts(slots))
	for _, s := range slots {
		assert.Equal(t, time.Hour, s.Duration())
	}
}

func TestGenerate_FixedGridNeverSpansGap(t *testing.T) {
	envelope := policy.Policy{Granularity: 30 * time.Minute, UseFixedIntervals: true}.Envelope(time.UTC)
	open := []interval.Interval{
		{Start: at(9, 0), End: at(10, 0)},
		{Start: at(10, 30), End: at(11, 30)},
	}

	slots := slot.Generate(open, time.Hour, envelope, longAgo, slot.Options{})

	assert.Equal(t, []string{"Mon 09:00", "Mon 10:30"}, starts(slots))
}

func TestGenerate_FixedGridStartsAtOpenInterval(t *testing.T) {
	envelope := policy.Policy{Granularity: 30 * time.Minute, UseFixedIntervals: true}.Envelope(time.UTC)
	open := []interval.Interval{{Start: at(9, 10), End: at(10, 40)}}

	slots := slot.Generate(open, time.Hour, envelope, longAgo, slot.Options{})

	assert.Equal(t, []string{"Mon 09:10", "Mon 09:40"}, starts(slots))
}

func TestGenerate_ContinuousSnapsToLocalClock(t *testing.T) {
	envelope := policy.Policy{}.Envelope(time.UTC)
	open := []interval.Interval{{Start: at(9, 10), End: at(10, 30)}}

	slots := slot.Generate(open, 45*time.Minute, envelope, longAgo, slot.Options{DisplayStep: 15 * time.Minute})

	assert.Equal(t, []string{"Mon 09:15", "Mon 09:30", "Mon 09:45"}, starts(slots))
}

func TestGenerate_ContinuousUsesGranularityWhenSet(t *testing.T) {
	envelope := policy.Policy{Granularity: 20 * time.Minute}.Envelope(time.UTC)
	open := []interval.Interval{{Start: at(9, 0), End: at(10, 0)}}

	slots := slot.Generate(open, 20*time.Minute, envelope, longAgo, slot.Options{DisplayStep: 5 * time.Minute})

	assert.Equal(t, []string{"Mon 09:00", "Mon 09:20", "Mon 09:40"}, starts(slots))
}

func TestGenerate_ContinuousAlignsInResourceTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	envelope := policy.Policy{}.Envelope(loc)
	start := time.Date(2030, time.March, 4, 9, 5, 0, 0, loc)
	open := []interval.Interval{{Start: start, End: start.Add(40 * time.Minute)}}

	slots := slot.Generate(open, 15*time.Minute, envelope, longAgo, slot.Options{DisplayStep: 15 * time.Minute})

	require.NotEmpty(t, slots)
	assert.Equal(t, "09:15", slots[0].Start.In(loc).Format("15:04"))
}

func TestGenerate_AdvanceNotice(t *testing.T) {
	open := []interval.Interval{{Start: at(9, 0), End: at(12, 0)}}
	now := at(8, 0)

	envelope := policy.Policy{MinAdvance: 2 * time.Hour, Granularity: time.Hour, UseFixedIntervals: true}.Envelope(time.UTC)
	slots := slot.Generate(open, time.Hour, envelope, now, slot.Options{})

	assert.Equal(t, []string{"Mon 10:00", "Mon 11:00"}, starts(slots))
}

func TestGenerate_Horizon(t *testing.T) {
	envelope := policy.Policy{MaxAdvanceDays: 1, Granularity: time.Hour, UseFixedIntervals: true}.Envelope(time.UTC)
	now := at(8, 0)
	tuesday := monday.AddDays(1)
	wednesday := monday.AddDays(2)

	open := []interval.Interval{
		{Start: tuesday.At(1380, time.UTC), End: tuesday.End(time.UTC)},
		{Start: wednesday.At(540, time.UTC), End: wednesday.At(600, time.UTC)},
	}

	slots := slot.Generate(open, time.Hour, envelope, now, slot.Options{})

	require.Len(t, slots, 1)
	assert.Equal(t, tuesday.At(1380, time.UTC), slots[0].Start)
}

func TestGenerate_DailyCap(t *testing.T) {
	envelope := policy.Policy{MaxDailyBookings: 2, Granularity: time.Hour, UseFixedIntervals: true}.Envelope(time.UTC)
	tuesday := monday.AddDays(1)

	open := []interval.Interval{
		{Start: at(9, 0), End: at(11, 0)},
		{Start: tuesday.At(540, time.UTC), End: tuesday.At(660, time.UTC)},
	}

	slots := slot.Generate(open, time.Hour, envelope, longAgo, slot.Options{
		Booked: map[policy.Date]int{monday: 2, tuesday: 1},
	})

	assert.Equal(t, []string{"Tue 09:00", "Tue 10:00"}, starts(slots))
}

func TestGenerate_Empty(t *testing.T) {
	envelope := policy.Policy{}.Envelope(time.UTC)

	assert.Empty(t, slot.Generate(nil, time.Hour, envelope, longAgo, slot.Options{}))
	assert.Empty(t, slot.Generate([]interval.Interval{{Start: at(9, 0), End: at(9, 30)}}, time.Hour, envelope, longAgo, slot.Options{}))
	assert.Empty(t, slot.Generate([]interval.Interval{{Start: at(9, 0), End: at(10, 0)}}, 0, envelope, longAgo, slot.Options{}))
}
