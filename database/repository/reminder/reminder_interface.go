package reminderRepo

import (
	"context"
	"time"

	"pawtrack/models"
)

// ReminderRepository defines persistence for reminders.
type ReminderRepository interface {
	Create(ctx context.Context, reminder *models.Reminder) error
	GetByKey(ctx context.Context, key models.ReminderKey) (*models.Reminder, error)
	ListByPet(ctx context.Context, ownerID, petID string) ([]models.Reminder, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Reminder, error)
	Update(ctx context.Context, reminder *models.Reminder) error
	Delete(ctx context.Context, key models.ReminderKey) error

	// FindDue returns up to limit reminders across all owners where
	// active is true and dueDate <= now, ordered ascending by dueDate
	// so the most overdue records are favored when the cap is hit.
	FindDue(ctx context.Context, now time.Time, limit int64) ([]models.Reminder, error)

	// PatchSchedule merges the scheduler's outcome onto a reminder
	// record without touching fields outside the patch.
	PatchSchedule(ctx context.Context, key models.ReminderKey, patch models.SchedulePatch) error
}
