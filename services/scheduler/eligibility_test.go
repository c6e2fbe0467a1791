package scheduler

import (
	"testing"
	"time"

	"pawtrack/models"

	"github.com/stretchr/testify/assert"
)

func TestEligible(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	lookback := now.Add(-10 * time.Minute)

	ptr := func(ts time.Time) *time.Time { return &ts }

	tests := []struct {
		name string
		r    models.Reminder
		want bool
	}{
		{
			name: "due now, never notified",
			r:    models.Reminder{DueDate: now.Add(-time.Minute), RepeatType: models.RepeatNone},
			want: true,
		},
		{
			name: "zero due date",
			r:    models.Reminder{RepeatType: models.RepeatNone},
			want: false,
		},
		{
			name: "future due date",
			r:    models.Reminder{DueDate: now.Add(time.Hour), RepeatType: models.RepeatNone},
			want: false,
		},
		{
			name: "stale one-shot beyond lookback",
			r:    models.Reminder{DueDate: now.Add(-20 * time.Minute), RepeatType: models.RepeatNone},
			want: false,
		},
		{
			name: "old weekly reminder is exempt from staleness skip",
			r:    models.Reminder{DueDate: now.Add(-20 * time.Minute), RepeatType: models.RepeatWeekly},
			want: true,
		},
		{
			name: "already notified for this due date",
			r: models.Reminder{
				DueDate:        now.Add(-time.Minute),
				RepeatType:     models.RepeatWeekly,
				LastNotifiedAt: ptr(now.Add(-time.Minute)),
			},
			want: false,
		},
		{
			name: "notified for a previous due date",
			r: models.Reminder{
				DueDate:        now.Add(-time.Minute),
				RepeatType:     models.RepeatWeekly,
				LastNotifiedAt: ptr(now.Add(-8 * 24 * time.Hour)),
			},
			want: true,
		},
		{
			name: "lastNotifiedAt after due date",
			r: models.Reminder{
				DueDate:        now.Add(-time.Minute),
				RepeatType:     models.RepeatNone,
				LastNotifiedAt: ptr(now),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Eligible(&tt.r, now, lookback))
		})
	}
}

func TestEligible_OncePerDueDate(t *testing.T) {
	// Given a fixed due date, eligibility flips to false as soon as
	// lastNotifiedAt reaches it and stays false until the due date moves.
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	lookback := now.Add(-10 * time.Minute)

	r := models.Reminder{DueDate: now.Add(-time.Minute), RepeatType: models.RepeatWeekly}
	assert.True(t, Eligible(&r, now, lookback))

	r.LastNotifiedAt = &now
	assert.False(t, Eligible(&r, now, lookback))

	// Advancing the due date past lastNotifiedAt re-arms the reminder.
	r.DueDate = r.DueDate.AddDate(0, 0, 7)
	later := now.AddDate(0, 0, 7)
	assert.True(t, Eligible(&r, later, later.Add(-10*time.Minute)))
}
