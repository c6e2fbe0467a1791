package reminder

import (
	"testing"
	"time"

	"pawtrack/models"

	"github.com/stretchr/testify/assert"
)

func baseReminder() *models.Reminder {
	return &models.Reminder{
		ID:         "rem-1",
		OwnerID:    "user-1",
		PetID:      "pet-1",
		Title:      "Rabies booster",
		Type:       models.ReminderTypeVaccine,
		DueDate:    time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		RepeatType: models.RepeatNone,
	}
}

func TestValidateReminder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.Reminder)
		wantErr bool
	}{
		{
			name:   "valid one-shot",
			mutate: func(r *models.Reminder) {},
		},
		{
			name: "valid custom days",
			mutate: func(r *models.Reminder) {
				r.RepeatType = models.RepeatCustomDays
				r.CustomDaysInterval = 14
			},
		},
		{
			name:    "missing pet id",
			mutate:  func(r *models.Reminder) { r.PetID = "" },
			wantErr: true,
		},
		{
			name:    "missing title",
			mutate:  func(r *models.Reminder) { r.Title = "" },
			wantErr: true,
		},
		{
			name:    "unknown type",
			mutate:  func(r *models.Reminder) { r.Type = "grooming" },
			wantErr: true,
		},
		{
			name:    "zero due date",
			mutate:  func(r *models.Reminder) { r.DueDate = time.Time{} },
			wantErr: true,
		},
		{
			name:    "unknown repeat type",
			mutate:  func(r *models.Reminder) { r.RepeatType = "fortnightly" },
			wantErr: true,
		},
		{
			name: "custom days without interval",
			mutate: func(r *models.Reminder) {
				r.RepeatType = models.RepeatCustomDays
			},
			wantErr: true,
		},
		{
			name: "negative custom interval",
			mutate: func(r *models.Reminder) {
				r.RepeatType = models.RepeatCustomDays
				r.CustomDaysInterval = -3
			},
			wantErr: true,
		},
		{
			name: "interval set on weekly repeat",
			mutate: func(r *models.Reminder) {
				r.RepeatType = models.RepeatWeekly
				r.CustomDaysInterval = 7
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := baseReminder()
			tt.mutate(r)
			err := validateReminder(r)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
