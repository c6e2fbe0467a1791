package vault

import (
	"context"
	"fmt"

	vaultRepo "pawtrack/database/repository/vault"
	"pawtrack/models"
	"pawtrack/services/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VaultService manages per-pet document storage: the file lives in
// object storage, the metadata record in Mongo.
type VaultService interface {
	Upload(ctx context.Context, doc *models.VaultDocument, localFilePath string) (*models.VaultDocument, error)
	ListByPet(ctx context.Context, ownerID, petID string) ([]models.VaultDocument, error)
	DownloadURL(ctx context.Context, ownerID, docID string) (string, error)
	Delete(ctx context.Context, ownerID, docID string) error
}

// DefaultVaultService is the production implementation.
type DefaultVaultService struct {
	Repo    vaultRepo.VaultRepository
	Storage storage.StorageService
	Logger  *zap.Logger
}

func (s *DefaultVaultService) Upload(ctx context.Context, doc *models.VaultDocument, localFilePath string) (*models.VaultDocument, error) {
	if doc.Name == "" {
		return nil, fmt.Errorf("document name is required")
	}
	if doc.PetID == "" {
		return nil, fmt.Errorf("document pet id is required")
	}
	if doc.ResourceType == "" {
		doc.ResourceType = "image"
	}

	folder := fmt.Sprintf("vault/%s/%s", doc.OwnerID, doc.PetID)
	publicID, err := s.Storage.UploadFile(ctx, localFilePath, folder)
	if err != nil {
		return nil, err
	}

	doc.ID = uuid.New().String()
	doc.PublicID = publicID
	if err := s.Repo.Create(ctx, doc); err != nil {
		// The file is already in storage; reclaim it rather than orphan it.
		if delErr := s.Storage.DeleteFile(ctx, publicID); delErr != nil {
			s.Logger.Warn("vault: failed to reclaim orphaned upload",
				zap.String("publicId", publicID), zap.Error(delErr))
		}
		return nil, err
	}
	s.Logger.Info("vault document stored",
		zap.String("ownerId", doc.OwnerID),
		zap.String("docId", doc.ID))
	return doc, nil
}

func (s *DefaultVaultService) ListByPet(ctx context.Context, ownerID, petID string) ([]models.VaultDocument, error) {
	return s.Repo.ListByPet(ctx, ownerID, petID)
}

func (s *DefaultVaultService) DownloadURL(ctx context.Context, ownerID, docID string) (string, error) {
	doc, err := s.Repo.GetByID(ctx, ownerID, docID)
	if err != nil {
		return "", err
	}
	return s.Storage.GetDownloadURL(ctx, doc.ResourceType, doc.PublicID)
}

func (s *DefaultVaultService) Delete(ctx context.Context, ownerID, docID string) error {
	doc, err := s.Repo.GetByID(ctx, ownerID, docID)
	if err != nil {
		return err
	}
	if err := s.Storage.DeleteFile(ctx, doc.PublicID); err != nil {
		s.Logger.Warn("vault: failed to delete stored file",
			zap.String("publicId", doc.PublicID), zap.Error(err))
	}
	return s.Repo.Delete(ctx, ownerID, docID)
}
