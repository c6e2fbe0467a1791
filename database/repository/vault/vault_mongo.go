package vaultRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pawtrack/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VaultRepository defines persistence for document vault metadata.
type VaultRepository interface {
	Create(ctx context.Context, doc *models.VaultDocument) error
	GetByID(ctx context.Context, ownerID, docID string) (*models.VaultDocument, error)
	ListByPet(ctx context.Context, ownerID, petID string) ([]models.VaultDocument, error)
	Delete(ctx context.Context, ownerID, docID string) error
}

// MongoVaultRepo implements VaultRepository using MongoDB.
type MongoVaultRepo struct {
	coll *mongo.Collection
}

func NewMongoVaultRepo(db *mongo.Database) (VaultRepository, error) {
	repo := &MongoVaultRepo{coll: db.Collection("vault_documents")}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *MongoVaultRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "petId", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create vault indexes: %w", err)
	}
	return nil
}

func (r *MongoVaultRepo) Create(ctx context.Context, doc *models.VaultDocument) error {
	doc.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create vault document: %w", err)
	}
	return nil
}

func (r *MongoVaultRepo) GetByID(ctx context.Context, ownerID, docID string) (*models.VaultDocument, error) {
	var doc models.VaultDocument
	filter := bson.M{"ownerId": ownerID, "id": docID}
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("vault document %s not found", docID)
		}
		return nil, fmt.Errorf("failed to fetch vault document %s: %w", docID, err)
	}
	return &doc, nil
}

func (r *MongoVaultRepo) ListByPet(ctx context.Context, ownerID, petID string) ([]models.VaultDocument, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID, "petId": petID})
	if err != nil {
		return nil, fmt.Errorf("failed to list vault documents for pet %s: %w", petID, err)
	}
	defer cursor.Close(ctx)

	var docs []models.VaultDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode vault documents: %w", err)
	}
	return docs, nil
}

func (r *MongoVaultRepo) Delete(ctx context.Context, ownerID, docID string) error {
	filter := bson.M{"ownerId": ownerID, "id": docID}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete vault document %s: %w", docID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("vault document %s not found", docID)
	}
	return nil
}
