package feedRepo

import (
	"context"
	"fmt"
	"time"

	"pawtrack/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FeedRepository defines persistence for social feed posts.
type FeedRepository interface {
	Create(ctx context.Context, post *models.FeedPost) error
	ListRecent(ctx context.Context, limit int64) ([]models.FeedPost, error)
	ListByOwner(ctx context.Context, ownerID string, limit int64) ([]models.FeedPost, error)
	Delete(ctx context.Context, ownerID, postID string) error
}

// MongoFeedRepo implements FeedRepository using MongoDB.
type MongoFeedRepo struct {
	coll *mongo.Collection
}

func NewMongoFeedRepo(db *mongo.Database) (FeedRepository, error) {
	repo := &MongoFeedRepo{coll: db.Collection("feed_posts")}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *MongoFeedRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create feed indexes: %w", err)
	}
	return nil
}

func (r *MongoFeedRepo) Create(ctx context.Context, post *models.FeedPost) error {
	post.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to create feed post: %w", err)
	}
	return nil
}

func (r *MongoFeedRepo) ListRecent(ctx context.Context, limit int64) ([]models.FeedPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.FeedPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode feed posts: %w", err)
	}
	return posts, nil
}

func (r *MongoFeedRepo) ListByOwner(ctx context.Context, ownerID string, limit int64) ([]models.FeedPost, error) {
	filter := bson.M{"ownerId": ownerID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed posts for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var posts []models.FeedPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode feed posts: %w", err)
	}
	return posts, nil
}

func (r *MongoFeedRepo) Delete(ctx context.Context, ownerID, postID string) error {
	filter := bson.M{"ownerId": ownerID, "id": postID}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete feed post %s: %w", postID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("feed post %s not found", postID)
	}
	return nil
}
