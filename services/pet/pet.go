package pet

import (
	"context"
	"fmt"

	petRepo "pawtrack/database/repository/pet"
	"pawtrack/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PetService manages pet profiles.
type PetService interface {
	Create(ctx context.Context, pet *models.Pet) (*models.Pet, error)
	Get(ctx context.Context, ownerID, petID string) (*models.Pet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Pet, error)
	Update(ctx context.Context, pet *models.Pet) (*models.Pet, error)
	Delete(ctx context.Context, ownerID, petID string) error
}

// DefaultPetService is the production implementation.
type DefaultPetService struct {
	Repo   petRepo.PetRepository
	Logger *zap.Logger
}

func (s *DefaultPetService) Create(ctx context.Context, pet *models.Pet) (*models.Pet, error) {
	if pet.Name == "" {
		return nil, fmt.Errorf("pet name is required")
	}
	if pet.Species == "" {
		return nil, fmt.Errorf("pet species is required")
	}
	if pet.ID == "" {
		pet.ID = uuid.New().String()
	}
	if err := s.Repo.Create(ctx, pet); err != nil {
		return nil, err
	}
	s.Logger.Info("pet created", zap.String("ownerId", pet.OwnerID), zap.String("petId", pet.ID))
	return pet, nil
}

func (s *DefaultPetService) Get(ctx context.Context, ownerID, petID string) (*models.Pet, error) {
	return s.Repo.GetByID(ctx, ownerID, petID)
}

func (s *DefaultPetService) ListByOwner(ctx context.Context, ownerID string) ([]models.Pet, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

func (s *DefaultPetService) Update(ctx context.Context, pet *models.Pet) (*models.Pet, error) {
	if pet.Name == "" {
		return nil, fmt.Errorf("pet name is required")
	}
	existing, err := s.Repo.GetByID(ctx, pet.OwnerID, pet.ID)
	if err != nil {
		return nil, err
	}
	pet.CreatedAt = existing.CreatedAt
	if err := s.Repo.Update(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (s *DefaultPetService) Delete(ctx context.Context, ownerID, petID string) error {
	return s.Repo.Delete(ctx, ownerID, petID)
}
