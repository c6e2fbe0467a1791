package scheduler

import (
	"testing"
	"time"

	"pawtrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name string
		r    models.Reminder
		want time.Time
		ok   bool
	}{
		{
			name: "none does not repeat",
			r:    models.Reminder{DueDate: date(2025, time.June, 15), RepeatType: models.RepeatNone},
			ok:   false,
		},
		{
			name: "weekly adds seven days",
			r:    models.Reminder{DueDate: date(2025, time.June, 15), RepeatType: models.RepeatWeekly},
			want: date(2025, time.June, 22),
			ok:   true,
		},
		{
			name: "monthly adds one calendar month",
			r:    models.Reminder{DueDate: date(2025, time.June, 15), RepeatType: models.RepeatMonthly},
			want: date(2025, time.July, 15),
			ok:   true,
		},
		{
			name: "yearly adds one calendar year",
			r:    models.Reminder{DueDate: date(2025, time.June, 15), RepeatType: models.RepeatYearly},
			want: date(2026, time.June, 15),
			ok:   true,
		},
		{
			name: "custom adds the configured day count",
			r:    models.Reminder{DueDate: date(2025, time.June, 15), RepeatType: models.RepeatCustomDays, CustomDaysInterval: 3},
			want: date(2025, time.June, 18),
			ok:   true,
		},
		{
			name: "custom across a month boundary",
			r:    models.Reminder{DueDate: date(2025, time.June, 29), RepeatType: models.RepeatCustomDays, CustomDaysInterval: 3},
			want: date(2025, time.July, 2),
			ok:   true,
		},
		{
			name: "custom with missing interval treated as non-repeating",
			r:    models.Reminder{DueDate: date(2025, time.June, 15), RepeatType: models.RepeatCustomDays},
			ok:   false,
		},
		{
			name: "custom with negative interval treated as non-repeating",
			r:    models.Reminder{DueDate: date(2025, time.June, 15), RepeatType: models.RepeatCustomDays, CustomDaysInterval: -5},
			ok:   false,
		},
		{
			name: "unknown repeat type treated as non-repeating",
			r:    models.Reminder{DueDate: date(2025, time.June, 15), RepeatType: "fortnightly"},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextDueDate(&tt.r)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
				assert.True(t, got.After(tt.r.DueDate))
			}
		})
	}
}

// Pins the chosen month-end policy: AddDate overflow, not clamping.
func TestNextDueDate_MonthEndOverflow(t *testing.T) {
	r := models.Reminder{DueDate: date(2025, time.January, 31), RepeatType: models.RepeatMonthly}
	got, ok := NextDueDate(&r)
	require.True(t, ok)
	// Jan 31 + 1 month = Feb 31, which normalizes to Mar 3 in a
	// non-leap year.
	assert.Equal(t, date(2025, time.March, 3), got)
}

func TestNextDueDate_LeapYear(t *testing.T) {
	r := models.Reminder{DueDate: date(2024, time.February, 29), RepeatType: models.RepeatYearly}
	got, ok := NextDueDate(&r)
	require.True(t, ok)
	// Feb 29 + 1 year normalizes to Mar 1 in the following non-leap year.
	assert.Equal(t, date(2025, time.March, 1), got)
}
