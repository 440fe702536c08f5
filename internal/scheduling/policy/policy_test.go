package policy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/internal/scheduling/policy"
	"slotkeeper/shared/failure"
)

func clock(t *testing.T, value string) policy.Minute {
	t.Helper()

	m, err := policy.ParseClock(value)
	require.NoError(t, err)

	return m
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		value   string
		want    policy.Minute
		wantErr bool
	}{
		{value: "00:00", want: 0},
		{value: "09:30", want: 570},
		{value: "24:00", want: 1440},
		{value: "24:01", wantErr: true},
		{value: "9:30", wantErr: true},
		{value: "09:60", wantErr: true},
		{value: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := policy.ParseClock(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, policy.ErrInvalidClock)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.value, got.String())
		})
	}
}

func TestNormalizeRanges(t *testing.T) {
	sorted, err := policy.NormalizeRanges([]policy.Range{{Start: 780, End: 1020}, {Start: 540, End: 720}})
	require.NoError(t, err)
	assert.Equal(t, []policy.Range{{Start: 540, End: 720}, {Start: 780, End: 1020}}, sorted)

	_, err = policy.NormalizeRanges([]policy.Range{{Start: 540, End: 720}, {Start: 720, End: 780}})
	assert.NoError(t, err, "touching ranges are allowed")

	_, err = policy.NormalizeRanges([]policy.Range{{Start: 540, End: 730}, {Start: 720, End: 780}})
	assert.ErrorIs(t, err, policy.ErrOverlappingRange)

	_, err = policy.NormalizeRanges([]policy.Range{{Start: 600, End: 600}})
	assert.ErrorIs(t, err, policy.ErrInvalidRange)
}

func TestWorkingHours_Normalize(t *testing.T) {
	hours := policy.WorkingHours{
		time.Monday: {{Start: 540, End: 720}, {Start: 700, End: 800}},
	}

	_, err := hours.Normalize()
	assert.ErrorIs(t, err, policy.ErrOverlappingRange)
}

func TestPolicy_Validate(t *testing.T) {
	assert.NoError(t, policy.Policy{Buffer: 15 * time.Minute}.Validate())
	assert.ErrorIs(t, policy.Policy{Buffer: -time.Minute}.Validate(), policy.ErrInvalidPolicy)
	assert.ErrorIs(t, policy.Policy{UseFixedIntervals: true}.Validate(), policy.ErrInvalidPolicy)
	assert.ErrorIs(t, policy.Policy{MaxDailyBookings: -1}.Validate(), policy.ErrInvalidPolicy)
}

func TestSchedule_Resolve(t *testing.T) {
	monday := policy.Date{Year: 2030, Month: time.March, Day: 4}
	require.Equal(t, time.Monday, monday.Weekday())

	schedule := policy.Schedule{
		Hours: policy.WorkingHours{
			time.Monday: {
				{Start: clock(t, "09:00"), End: clock(t, "12:00")},
				{Start: clock(t, "13:00"), End: clock(t, "17:00")},
			},
		},
		Exceptions: map[policy.Date]policy.Exception{
			monday.AddDays(7):  {Date: monday.AddDays(7), Closed: true},
			monday.AddDays(14): {Date: monday.AddDays(14), Ranges: []policy.Range{{Start: clock(t, "10:00"), End: clock(t, "11:00")}}},
		},
		Policy:   policy.Policy{Buffer: 10 * time.Minute},
		Location: time.UTC,
	}

	t.Run("weekday hours", func(t *testing.T) {
		day := schedule.Resolve(monday)
		assert.Equal(t, []interval.Interval{
			{Start: monday.At(540, time.UTC), End: monday.At(720, time.UTC)},
			{Start: monday.At(780, time.UTC), End: monday.At(1020, time.UTC)},
		}, day.Open)
		assert.Equal(t, 10*time.Minute, day.Envelope.Buffer)
	})

	t.Run("closed exception wins over weekday hours", func(t *testing.T) {
		assert.Empty(t, schedule.Resolve(monday.AddDays(7)).Open)
	})

	t.Run("exception replaces rather than merges", func(t *testing.T) {
		d := monday.AddDays(14)
		assert.Equal(t, []interval.Interval{{Start: d.At(600, time.UTC), End: d.At(660, time.UTC)}}, schedule.Resolve(d).Open)
	})

	t.Run("day without hours is closed", func(t *testing.T) {
		assert.Empty(t, schedule.Resolve(monday.AddDays(1)).Open)
	})
}

func TestSchedule_ResolveAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2030-03-10 is the spring-forward Sunday in New York.
	sunday := policy.Date{Year: 2030, Month: time.March, Day: 10}
	schedule := policy.Schedule{
		Hours:    policy.WorkingHours{time.Sunday: {{Start: 540, End: 1020}}},
		Location: loc,
	}

	day := schedule.Resolve(sunday)
	require.Len(t, day.Open, 1)
	assert.Equal(t, 9, day.Open[0].Start.In(loc).Hour())
	assert.Equal(t, 17, day.Open[0].End.In(loc).Hour())
	assert.Equal(t, 8*time.Hour, day.Open[0].Duration())
}

func TestEnvelope_Admit(t *testing.T) {
	now := time.Date(2030, time.March, 4, 8, 0, 0, 0, time.UTC)

	envelope := policy.Policy{MinAdvance: 2 * time.Hour, MaxAdvanceDays: 3}.Envelope(time.UTC)

	assert.ErrorIs(t, envelope.Admit(now.Add(time.Hour), now), failure.ErrPolicyViolation)
	assert.NoError(t, envelope.Admit(now.Add(2*time.Hour), now))

	lastDay := time.Date(2030, time.March, 7, 23, 30, 0, 0, time.UTC)
	assert.NoError(t, envelope.Admit(lastDay, now))
	assert.ErrorIs(t, envelope.Admit(lastDay.Add(time.Hour), now), failure.ErrPolicyViolation)

	open := policy.Policy{}.Envelope(time.UTC)
	assert.ErrorIs(t, open.Admit(now.Add(-time.Minute), now), failure.ErrPolicyViolation, "past starts are never admitted")
	assert.NoError(t, open.Admit(now.AddDate(5, 0, 0), now), "no horizon without max advance days")
}

func TestDatesOf(t *testing.T) {
	start := time.Date(2030, time.March, 4, 22, 0, 0, 0, time.UTC)

	dates := policy.DatesOf(interval.Interval{Start: start, End: start.Add(27 * time.Hour)}, time.UTC)
	assert.Equal(t, []policy.Date{
		{Year: 2030, Month: time.March, Day: 4},
		{Year: 2030, Month: time.March, Day: 5},
		{Year: 2030, Month: time.March, Day: 6},
	}, dates)

	assert.Len(t, policy.DatesOf(interval.Interval{Start: start, End: start.Add(26 * time.Hour)}, time.UTC), 2,
		"ending at midnight of the 6th does not touch the 6th")

	midnight := time.Date(2030, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []policy.Date{{Year: 2030, Month: time.March, Day: 4}},
		policy.DatesOf(interval.Interval{Start: start, End: midnight}, time.UTC), "end is exclusive")
}
