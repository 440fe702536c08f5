package interval_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotkeeper/internal/scheduling/interval"
)

var base = time.Date(2030, time.March, 4, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return base.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func iv(startHour, startMinute, endHour, endMinute int) interval.Interval {
	return interval.Interval{Start: at(startHour, startMinute), End: at(endHour, endMinute)}
}

func TestNew(t *testing.T) {
	_, err := interval.New(at(10, 0), at(10, 0))
	assert.ErrorIs(t, err, interval.ErrInvalidInterval)

	_, err = interval.New(at(11, 0), at(10, 0))
	assert.ErrorIs(t, err, interval.ErrInvalidInterval)

	got, err := interval.New(at(9, 0), at(10, 0))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, got.Duration())
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    interval.Interval
		b    interval.Interval
		want bool
	}{
		{name: "touching end to start", a: iv(9, 0, 10, 0), b: iv(10, 0, 11, 0), want: false},
		{name: "touching start to end", a: iv(10, 0, 11, 0), b: iv(9, 0, 10, 0), want: false},
		{name: "partial overlap", a: iv(9, 0, 10, 30), b: iv(10, 0, 11, 0), want: true},
		{name: "containment", a: iv(9, 0, 12, 0), b: iv(10, 0, 11, 0), want: true},
		{name: "identical", a: iv(9, 0, 10, 0), b: iv(9, 0, 10, 0), want: true},
		{name: "disjoint", a: iv(9, 0, 10, 0), b: iv(11, 0, 12, 0), want: false},
		{name: "one minute overlap", a: iv(9, 0, 10, 1), b: iv(10, 0, 11, 0), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, interval.Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, interval.Overlaps(tt.b, tt.a))
		})
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name string
		open interval.Interval
		busy []interval.Interval
		want []interval.Interval
	}{
		{
			name: "no busy",
			open: iv(9, 0, 12, 0),
			want: []interval.Interval{iv(9, 0, 12, 0)},
		},
		{
			name: "busy in the middle splits",
			open: iv(9, 0, 12, 0),
			busy: []interval.Interval{iv(10, 0, 11, 0)},
			want: []interval.Interval{iv(9, 0, 10, 0), iv(11, 0, 12, 0)},
		},
		{
			name: "busy touching the edges removes nothing",
			open: iv(9, 0, 12, 0),
			busy: []interval.Interval{iv(8, 0, 9, 0), iv(12, 0, 13, 0)},
			want: []interval.Interval{iv(9, 0, 12, 0)},
		},
		{
			name: "busy covers everything",
			open: iv(9, 0, 12, 0),
			busy: []interval.Interval{iv(8, 0, 13, 0)},
			want: []interval.Interval{},
		},
		{
			name: "unsorted overlapping busy",
			open: iv(9, 0, 17, 0),
			busy: []interval.Interval{iv(14, 0, 15, 0), iv(9, 30, 10, 30), iv(10, 0, 11, 0)},
			want: []interval.Interval{iv(9, 0, 9, 30), iv(11, 0, 14, 0), iv(15, 0, 17, 0)},
		},
		{
			name: "busy clips the start",
			open: iv(9, 0, 12, 0),
			busy: []interval.Interval{iv(8, 0, 9, 15)},
			want: []interval.Interval{iv(9, 15, 12, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interval.Subtract(tt.open, tt.busy...)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		in   []interval.Interval
		want []interval.Interval
	}{
		{name: "empty", in: nil, want: []interval.Interval{}},
		{
			name: "touching intervals coalesce",
			in:   []interval.Interval{iv(10, 0, 11, 0), iv(9, 0, 10, 0)},
			want: []interval.Interval{iv(9, 0, 11, 0)},
		},
		{
			name: "overlapping and disjoint",
			in:   []interval.Interval{iv(13, 0, 14, 0), iv(9, 0, 10, 30), iv(10, 0, 11, 0)},
			want: []interval.Interval{iv(9, 0, 11, 0), iv(13, 0, 14, 0)},
		},
		{
			name: "contained interval is absorbed",
			in:   []interval.Interval{iv(9, 0, 12, 0), iv(10, 0, 11, 0)},
			want: []interval.Interval{iv(9, 0, 12, 0)},
		},
		{
			name: "invalid intervals are dropped",
			in:   []interval.Interval{iv(11, 0, 10, 0), iv(9, 0, 10, 0)},
			want: []interval.Interval{iv(9, 0, 10, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, interval.Merge(tt.in))
		})
	}
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	in := []interval.Interval{iv(10, 0, 11, 0), iv(9, 0, 10, 30)}
	_ = interval.Merge(in)

	assert.Equal(t, iv(10, 0, 11, 0), in[0])
	assert.Equal(t, iv(9, 0, 10, 30), in[1])
}

func TestIntersectAndClip(t *testing.T) {
	got, ok := interval.Intersect(iv(9, 0, 11, 0), iv(10, 0, 12, 0))
	require.True(t, ok)
	assert.Equal(t, iv(10, 0, 11, 0), got)

	_, ok = interval.Intersect(iv(9, 0, 10, 0), iv(10, 0, 11, 0))
	assert.False(t, ok)

	clipped := interval.Clip([]interval.Interval{iv(8, 0, 9, 30), iv(10, 0, 11, 0), iv(11, 30, 13, 0)}, iv(9, 0, 12, 0))
	assert.Equal(t, []interval.Interval{iv(9, 0, 9, 30), iv(10, 0, 11, 0), iv(11, 30, 12, 0)}, clipped)
}

func TestContainedIn(t *testing.T) {
	open := []interval.Interval{iv(9, 0, 10, 0), iv(11, 0, 12, 0)}

	assert.True(t, interval.ContainedIn(iv(9, 0, 10, 0), open))
	assert.True(t, interval.ContainedIn(iv(11, 15, 11, 45), open))
	assert.False(t, interval.ContainedIn(iv(9, 30, 11, 30), open), "slot must not span a gap")
	assert.False(t, interval.ContainedIn(iv(11, 30, 12, 30), open))
}

func TestExpand(t *testing.T) {
	got := iv(9, 0, 10, 0).Expand(15*time.Minute, 15*time.Minute)
	assert.Equal(t, iv(8, 45, 10, 15), got)
	assert.True(t, got.ContainsInstant(at(10, 14)))
	assert.False(t, got.ContainsInstant(at(10, 15)))
}
