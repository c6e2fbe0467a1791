package reminder

import (
	"context"
	"fmt"

	reminderRepo "pawtrack/database/repository/reminder"
	"pawtrack/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReminderService defines reminder management for the mobile client.
type ReminderService interface {
	Create(ctx context.Context, reminder *models.Reminder) (*models.Reminder, error)
	ListByPet(ctx context.Context, ownerID, petID string) ([]models.Reminder, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Reminder, error)
	Update(ctx context.Context, reminder *models.Reminder) (*models.Reminder, error)
	Deactivate(ctx context.Context, key models.ReminderKey) error
	Delete(ctx context.Context, key models.ReminderKey) error
}

// DefaultReminderService is the production implementation.
type DefaultReminderService struct {
	Repo   reminderRepo.ReminderRepository
	Logger *zap.Logger
}

func (s *DefaultReminderService) Create(ctx context.Context, reminder *models.Reminder) (*models.Reminder, error) {
	if reminder.ID == "" {
		reminder.ID = uuid.New().String()
	}
	reminder.Active = true
	reminder.LastNotifiedAt = nil

	if err := validateReminder(reminder); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, reminder); err != nil {
		return nil, err
	}
	s.Logger.Info("reminder created",
		zap.String("ownerId", reminder.OwnerID),
		zap.String("reminderId", reminder.ID),
		zap.Time("dueDate", reminder.DueDate))
	return reminder, nil
}

func (s *DefaultReminderService) ListByPet(ctx context.Context, ownerID, petID string) ([]models.Reminder, error) {
	return s.Repo.ListByPet(ctx, ownerID, petID)
}

func (s *DefaultReminderService) ListByOwner(ctx context.Context, ownerID string) ([]models.Reminder, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

func (s *DefaultReminderService) Update(ctx context.Context, reminder *models.Reminder) (*models.Reminder, error) {
	if err := validateReminder(reminder); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByKey(ctx, reminder.Key())
	if err != nil {
		return nil, err
	}
	// The scheduler owns lastNotifiedAt; client updates never touch it.
	reminder.LastNotifiedAt = existing.LastNotifiedAt
	reminder.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (s *DefaultReminderService) Deactivate(ctx context.Context, key models.ReminderKey) error {
	reminder, err := s.Repo.GetByKey(ctx, key)
	if err != nil {
		return err
	}
	reminder.Active = false
	return s.Repo.Update(ctx, reminder)
}

func (s *DefaultReminderService) Delete(ctx context.Context, key models.ReminderKey) error {
	return s.Repo.Delete(ctx, key)
}

func validateReminder(r *models.Reminder) error {
	if !r.Key().Valid() {
		return fmt.Errorf("reminder is missing its owner, pet or id")
	}
	if r.Title == "" {
		return fmt.Errorf("reminder title is required")
	}
	switch r.Type {
	case models.ReminderTypeVaccine, models.ReminderTypeMedication, models.ReminderTypeVetVisit:
	default:
		return fmt.Errorf("unknown reminder type %q", r.Type)
	}
	if r.DueDate.IsZero() {
		return fmt.Errorf("reminder due date is required")
	}
	switch r.RepeatType {
	case models.RepeatNone, models.RepeatWeekly, models.RepeatMonthly, models.RepeatYearly:
		if r.CustomDaysInterval != 0 {
			return fmt.Errorf("customDaysInterval is only valid with the %s repeat type", models.RepeatCustomDays)
		}
	case models.RepeatCustomDays:
		if r.CustomDaysInterval <= 0 {
			return fmt.Errorf("customDaysInterval must be a positive number of days")
		}
	default:
		return fmt.Errorf("unknown repeat type %q", r.RepeatType)
	}
	return nil
}
