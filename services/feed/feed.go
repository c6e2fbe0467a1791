package feed

import (
	"context"
	"fmt"
	"strings"

	feedRepo "pawtrack/database/repository/feed"
	"pawtrack/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultFeedLimit = 30
	maxPostLength    = 2000
)

// FeedService manages the community feed.
type FeedService interface {
	CreatePost(ctx context.Context, post *models.FeedPost) (*models.FeedPost, error)
	ListRecent(ctx context.Context, limit int64) ([]models.FeedPost, error)
	ListByOwner(ctx context.Context, ownerID string, limit int64) ([]models.FeedPost, error)
	DeletePost(ctx context.Context, ownerID, postID string) error
}

// DefaultFeedService is the production implementation.
type DefaultFeedService struct {
	Repo   feedRepo.FeedRepository
	Logger *zap.Logger
}

func (s *DefaultFeedService) CreatePost(ctx context.Context, post *models.FeedPost) (*models.FeedPost, error) {
	post.Text = strings.TrimSpace(post.Text)
	if post.Text == "" && post.PhotoURL == "" {
		return nil, fmt.Errorf("a post needs text or a photo")
	}
	if len(post.Text) > maxPostLength {
		return nil, fmt.Errorf("post text exceeds %d characters", maxPostLength)
	}
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if err := s.Repo.Create(ctx, post); err != nil {
		return nil, err
	}
	s.Logger.Info("feed post created", zap.String("ownerId", post.OwnerID), zap.String("postId", post.ID))
	return post, nil
}

func (s *DefaultFeedService) ListRecent(ctx context.Context, limit int64) ([]models.FeedPost, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultFeedLimit
	}
	return s.Repo.ListRecent(ctx, limit)
}

func (s *DefaultFeedService) ListByOwner(ctx context.Context, ownerID string, limit int64) ([]models.FeedPost, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultFeedLimit
	}
	return s.Repo.ListByOwner(ctx, ownerID, limit)
}

func (s *DefaultFeedService) DeletePost(ctx context.Context, ownerID, postID string) error {
	return s.Repo.Delete(ctx, ownerID, postID)
}
