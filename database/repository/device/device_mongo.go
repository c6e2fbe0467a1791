package deviceRepo

import (
	"context"
	"fmt"
	"time"

	"pawtrack/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DeviceTokenRepository defines persistence for push destinations.
type DeviceTokenRepository interface {
	// Save upserts a token record; registering the same token twice
	// for one owner refreshes it instead of duplicating it.
	Save(ctx context.Context, token *models.DeviceToken) error
	ListByOwner(ctx context.Context, ownerID string) ([]models.DeviceToken, error)
	// Delete removes one token. Deleting an already-deleted token is a no-op.
	Delete(ctx context.Context, ownerID, token string) error
}

// MongoDeviceTokenRepo implements DeviceTokenRepository using MongoDB.
type MongoDeviceTokenRepo struct {
	coll *mongo.Collection
}

func NewMongoDeviceTokenRepo(db *mongo.Database) (DeviceTokenRepository, error) {
	repo := &MongoDeviceTokenRepo{coll: db.Collection("device_tokens")}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *MongoDeviceTokenRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "token", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create device token indexes: %w", err)
	}
	return nil
}

func (r *MongoDeviceTokenRepo) Save(ctx context.Context, token *models.DeviceToken) error {
	token.Token = models.SanitizeToken(token.Token)
	if token.Token == "" {
		return fmt.Errorf("device token is empty")
	}

	now := time.Now()
	token.UpdatedAt = now

	filter := bson.M{"ownerId": token.OwnerID, "token": token.Token}
	update := bson.M{
		"$set": bson.M{
			"platform":  token.Platform,
			"provider":  token.Provider,
			"updatedAt": token.UpdatedAt,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to save device token: %w", err)
	}
	return nil
}

func (r *MongoDeviceTokenRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.DeviceToken, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list device tokens for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var tokens []models.DeviceToken
	if err := cursor.All(ctx, &tokens); err != nil {
		return nil, fmt.Errorf("failed to decode device tokens: %w", err)
	}
	return tokens, nil
}

func (r *MongoDeviceTokenRepo) Delete(ctx context.Context, ownerID, token string) error {
	filter := bson.M{"ownerId": ownerID, "token": models.SanitizeToken(token)}
	if _, err := r.coll.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete device token: %w", err)
	}
	return nil
}
