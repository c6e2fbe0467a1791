package health

import (
	"context"
	"fmt"
	"time"

	healthRepo "pawtrack/database/repository/health"
	petRepo "pawtrack/database/repository/pet"
	"pawtrack/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultListLimit = 50

// HealthService manages a pet's health history: dated log entries and
// weight measurements.
type HealthService interface {
	CreateLog(ctx context.Context, entry *models.HealthLog) (*models.HealthLog, error)
	ListLogs(ctx context.Context, ownerID, petID string, limit int64) ([]models.HealthLog, error)
	DeleteLog(ctx context.Context, ownerID, petID, logID string) error

	RecordWeight(ctx context.Context, entry *models.WeightEntry) (*models.WeightEntry, error)
	ListWeights(ctx context.Context, ownerID, petID string, limit int64) ([]models.WeightEntry, error)
}

// DefaultHealthService is the production implementation.
type DefaultHealthService struct {
	Repo   healthRepo.HealthRepository
	Pets   petRepo.PetRepository
	Logger *zap.Logger
}

func (s *DefaultHealthService) CreateLog(ctx context.Context, entry *models.HealthLog) (*models.HealthLog, error) {
	if entry.Kind == "" {
		return nil, fmt.Errorf("health log kind is required")
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now()
	}
	if _, err := s.Pets.GetName(ctx, entry.OwnerID, entry.PetID); err != nil {
		return nil, fmt.Errorf("health service: pet lookup failed: %w", err)
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if err := s.Repo.CreateLog(ctx, entry); err != nil {
		return nil, err
	}
	s.Logger.Info("health log created",
		zap.String("petId", entry.PetID),
		zap.String("kind", entry.Kind))
	return entry, nil
}

func (s *DefaultHealthService) ListLogs(ctx context.Context, ownerID, petID string, limit int64) ([]models.HealthLog, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.Repo.ListLogs(ctx, ownerID, petID, limit)
}

func (s *DefaultHealthService) DeleteLog(ctx context.Context, ownerID, petID, logID string) error {
	return s.Repo.DeleteLog(ctx, ownerID, petID, logID)
}

func (s *DefaultHealthService) RecordWeight(ctx context.Context, entry *models.WeightEntry) (*models.WeightEntry, error) {
	if entry.WeightKg <= 0 {
		return nil, fmt.Errorf("weight must be a positive number of kilograms")
	}
	if entry.MeasuredAt.IsZero() {
		entry.MeasuredAt = time.Now()
	}
	if _, err := s.Pets.GetName(ctx, entry.OwnerID, entry.PetID); err != nil {
		return nil, fmt.Errorf("health service: pet lookup failed: %w", err)
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if err := s.Repo.CreateWeight(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *DefaultHealthService) ListWeights(ctx context.Context, ownerID, petID string, limit int64) ([]models.WeightEntry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.Repo.ListWeights(ctx, ownerID, petID, limit)
}
