package reset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func utc(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func TestNextDaily(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "before today's reset",
			now:  utc(2026, time.August, 31, 10, 0), // Monday
			want: utc(2026, time.August, 31, 17, 0),
		},
		{
			name: "after today's reset",
			now:  utc(2026, time.August, 31, 18, 30),
			want: utc(2026, time.September, 1, 17, 0),
		},
		{
			name: "exactly at reset rolls to tomorrow",
			now:  utc(2026, time.August, 31, 17, 0),
			want: utc(2026, time.September, 1, 17, 0),
		},
		{
			name: "non-UTC input",
			now:  time.Date(2026, time.August, 31, 11, 0, 0, 0, time.FixedZone("EDT", -4*3600)), // 15:00 UTC
			want: utc(2026, time.August, 31, 17, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextDaily(tt.now))
		})
	}
}

func TestNextWeekly(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "monday before reset",
			now:  utc(2026, time.August, 31, 10, 0),
			want: utc(2026, time.September, 1, 17, 0), // Tuesday
		},
		{
			name: "tuesday before reset",
			now:  utc(2026, time.September, 1, 12, 0),
			want: utc(2026, time.September, 1, 17, 0),
		},
		{
			name: "tuesday after reset waits a full week",
			now:  utc(2026, time.September, 1, 17, 1),
			want: utc(2026, time.September, 8, 17, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextWeekly(tt.now)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, time.Tuesday, got.Weekday())
		})
	}
}

func TestLastWeekly(t *testing.T) {
	// Wednesday mid-week points back to the Tuesday before.
	assert.Equal(t,
		utc(2026, time.September, 1, 17, 0),
		LastWeekly(utc(2026, time.September, 2, 9, 0)))

	// exactly at reset is its own period start
	assert.Equal(t,
		utc(2026, time.September, 1, 17, 0),
		LastWeekly(utc(2026, time.September, 1, 17, 0)))
}

func TestIsSameWeeklyPeriod(t *testing.T) {
	wednesday := utc(2026, time.September, 2, 9, 0)
	monday := utc(2026, time.September, 7, 23, 0)
	nextTuesday := utc(2026, time.September, 8, 17, 0)

	assert.True(t, IsSameWeeklyPeriod(wednesday, monday))
	assert.False(t, IsSameWeeklyPeriod(monday, nextTuesday))
	assert.False(t, IsSameWeeklyPeriod(wednesday, nextTuesday))
}
