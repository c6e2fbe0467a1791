package healthRepo

import (
	"context"
	"fmt"
	"time"

	"pawtrack/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HealthRepository defines persistence for health logs and weight history.
type HealthRepository interface {
	CreateLog(ctx context.Context, entry *models.HealthLog) error
	ListLogs(ctx context.Context, ownerID, petID string, limit int64) ([]models.HealthLog, error)
	DeleteLog(ctx context.Context, ownerID, petID, logID string) error

	CreateWeight(ctx context.Context, entry *models.WeightEntry) error
	ListWeights(ctx context.Context, ownerID, petID string, limit int64) ([]models.WeightEntry, error)
}

// MongoHealthRepo implements HealthRepository using MongoDB.
type MongoHealthRepo struct {
	logs    *mongo.Collection
	weights *mongo.Collection
}

func NewMongoHealthRepo(db *mongo.Database) (HealthRepository, error) {
	repo := &MongoHealthRepo{
		logs:    db.Collection("health_logs"),
		weights: db.Collection("weight_entries"),
	}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *MongoHealthRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "petId", Value: 1}, {Key: "occurredAt", Value: -1}}},
	}
	if _, err := r.logs.Indexes().CreateMany(ctx, logIndexes); err != nil {
		return fmt.Errorf("failed to create health log indexes: %w", err)
	}

	weightIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "petId", Value: 1}, {Key: "measuredAt", Value: -1}}},
	}
	if _, err := r.weights.Indexes().CreateMany(ctx, weightIndexes); err != nil {
		return fmt.Errorf("failed to create weight indexes: %w", err)
	}
	return nil
}

func (r *MongoHealthRepo) CreateLog(ctx context.Context, entry *models.HealthLog) error {
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	if _, err := r.logs.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to create health log: %w", err)
	}
	return nil
}

func (r *MongoHealthRepo) ListLogs(ctx context.Context, ownerID, petID string, limit int64) ([]models.HealthLog, error) {
	filter := bson.M{"ownerId": ownerID, "petId": petID}
	opts := options.Find().SetSort(bson.D{{Key: "occurredAt", Value: -1}}).SetLimit(limit)

	cursor, err := r.logs.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list health logs for pet %s: %w", petID, err)
	}
	defer cursor.Close(ctx)

	var entries []models.HealthLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode health logs: %w", err)
	}
	return entries, nil
}

func (r *MongoHealthRepo) DeleteLog(ctx context.Context, ownerID, petID, logID string) error {
	filter := bson.M{"ownerId": ownerID, "petId": petID, "id": logID}
	result, err := r.logs.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete health log %s: %w", logID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("health log %s not found", logID)
	}
	return nil
}

func (r *MongoHealthRepo) CreateWeight(ctx context.Context, entry *models.WeightEntry) error {
	entry.CreatedAt = time.Now()

	if _, err := r.weights.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to create weight entry: %w", err)
	}
	return nil
}

func (r *MongoHealthRepo) ListWeights(ctx context.Context, ownerID, petID string, limit int64) ([]models.WeightEntry, error) {
	filter := bson.M{"ownerId": ownerID, "petId": petID}
	opts := options.Find().SetSort(bson.D{{Key: "measuredAt", Value: -1}}).SetLimit(limit)

	cursor, err := r.weights.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list weights for pet %s: %w", petID, err)
	}
	defer cursor.Close(ctx)

	var entries []models.WeightEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode weight entries: %w", err)
	}
	return entries, nil
}
