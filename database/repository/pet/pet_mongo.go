package petRepo

import (
	"context"
	"fmt"
	"time"

	"pawtrack/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PetRepository defines persistence for pet profiles.
type PetRepository interface {
	Create(ctx context.Context, pet *models.Pet) error
	GetByID(ctx context.Context, ownerID, petID string) (*models.Pet, error)
	GetName(ctx context.Context, ownerID, petID string) (string, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Pet, error)
	Update(ctx context.Context, pet *models.Pet) error
	Delete(ctx context.Context, ownerID, petID string) error
}

// MongoPetRepo implements PetRepository using MongoDB.
type MongoPetRepo struct {
	coll *mongo.Collection
}

func NewMongoPetRepo(db *mongo.Database) (PetRepository, error) {
	repo := &MongoPetRepo{coll: db.Collection("pets")}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *MongoPetRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create pet indexes: %w", err)
	}
	return nil
}

func (r *MongoPetRepo) Create(ctx context.Context, pet *models.Pet) error {
	now := time.Now()
	pet.CreatedAt = now
	pet.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, pet); err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}
	return nil
}

func (r *MongoPetRepo) GetByID(ctx context.Context, ownerID, petID string) (*models.Pet, error) {
	var pet models.Pet
	filter := bson.M{"ownerId": ownerID, "id": petID}
	if err := r.coll.FindOne(ctx, filter).Decode(&pet); err != nil {
		return nil, fmt.Errorf("failed to fetch pet %s: %w", petID, err)
	}
	return &pet, nil
}

// GetName returns only the pet's display name, using a projection.
func (r *MongoPetRepo) GetName(ctx context.Context, ownerID, petID string) (string, error) {
	opts := options.FindOne().SetProjection(bson.M{"name": 1})

	var pet models.Pet
	filter := bson.M{"ownerId": ownerID, "id": petID}
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&pet); err != nil {
		return "", fmt.Errorf("failed to fetch pet name for %s: %w", petID, err)
	}
	return pet.Name, nil
}

func (r *MongoPetRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Pet, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list pets for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var pets []models.Pet
	if err := cursor.All(ctx, &pets); err != nil {
		return nil, fmt.Errorf("failed to decode pets: %w", err)
	}
	return pets, nil
}

func (r *MongoPetRepo) Update(ctx context.Context, pet *models.Pet) error {
	pet.UpdatedAt = time.Now()
	filter := bson.M{"ownerId": pet.OwnerID, "id": pet.ID}

	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": pet})
	if err != nil {
		return fmt.Errorf("failed to update pet %s: %w", pet.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("pet %s not found", pet.ID)
	}
	return nil
}

func (r *MongoPetRepo) Delete(ctx context.Context, ownerID, petID string) error {
	filter := bson.M{"ownerId": ownerID, "id": petID}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete pet %s: %w", petID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("pet %s not found", petID)
	}
	return nil
}
