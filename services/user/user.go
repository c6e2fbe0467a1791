package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	deviceRepo "pawtrack/database/repository/device"
	userRepo "pawtrack/database/repository/user"
	"pawtrack/models"
	"pawtrack/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 30 * 24 * time.Hour

// ErrInvalidCredentials is returned when the email or password does not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken is returned when signing up with an email that already has an account.
var ErrEmailTaken = errors.New("an account with this email already exists")

// UserService handles owner accounts and their registered push devices.
type UserService interface {
	Register(ctx context.Context, req models.RegisterUserRequest) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, req models.AuthenticateUserRequest) (*models.AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.User, error)

	RegisterDevice(ctx context.Context, ownerID string, req models.RegisterDeviceTokenRequest) (*models.DeviceToken, error)
	UnregisterDevice(ctx context.Context, ownerID, token string) error
	ListDevices(ctx context.Context, ownerID string) ([]models.DeviceToken, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo    userRepo.UserRepository
	Devices deviceRepo.DeviceTokenRepository
	Logger  *zap.Logger
}

func (s *DefaultUserService) Register(ctx context.Context, req models.RegisterUserRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, userRepo.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("user service: failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("user service: failed to sign token: %w", err)
	}
	s.Logger.Info("user registered", zap.String("userId", user.ID))
	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *DefaultUserService) Authenticate(ctx context.Context, req models.AuthenticateUserRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("user service: failed to sign token: %w", err)
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultUserService) RegisterDevice(ctx context.Context, ownerID string, req models.RegisterDeviceTokenRequest) (*models.DeviceToken, error) {
	token := models.SanitizeToken(req.Token)
	if token == "" {
		return nil, fmt.Errorf("device token must not be empty")
	}
	provider := req.Provider
	if provider == "" {
		provider = models.PushProviderFCM
	}

	record := &models.DeviceToken{
		Token:    token,
		OwnerID:  ownerID,
		Platform: req.Platform,
		Provider: provider,
	}
	if err := s.Devices.Save(ctx, record); err != nil {
		return nil, err
	}
	s.Logger.Info("device registered",
		zap.String("ownerId", ownerID),
		zap.String("platform", req.Platform))
	return record, nil
}

func (s *DefaultUserService) UnregisterDevice(ctx context.Context, ownerID, token string) error {
	return s.Devices.Delete(ctx, ownerID, models.SanitizeToken(token))
}

func (s *DefaultUserService) ListDevices(ctx context.Context, ownerID string) ([]models.DeviceToken, error) {
	return s.Devices.ListByOwner(ctx, ownerID)
}
