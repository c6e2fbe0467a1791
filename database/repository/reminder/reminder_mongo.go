package reminderRepo

import (
	"context"
	"fmt"
	"time"

	"pawtrack/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReminderRepo implements ReminderRepository using MongoDB.
type MongoReminderRepo struct {
	coll *mongo.Collection
}

// NewMongoReminderRepo creates a new ReminderRepository backed by the
// given database.
func NewMongoReminderRepo(db *mongo.Database) (ReminderRepository, error) {
	repo := &MongoReminderRepo{coll: db.Collection("reminders")}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
// The compound (active, dueDate) index backs the scheduler's due scan.
func (r *MongoReminderRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "petId", Value: 1}, {Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "active", Value: 1}, {Key: "dueDate", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create reminder indexes: %w", err)
	}
	return nil
}

func keyFilter(key models.ReminderKey) bson.M {
	return bson.M{"ownerId": key.OwnerID, "petId": key.PetID, "id": key.ReminderID}
}

// Create inserts a new reminder document.
func (r *MongoReminderRepo) Create(ctx context.Context, reminder *models.Reminder) error {
	now := time.Now()
	reminder.CreatedAt = now
	reminder.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, reminder); err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}
	return nil
}

// GetByKey retrieves a reminder by its structured key.
func (r *MongoReminderRepo) GetByKey(ctx context.Context, key models.ReminderKey) (*models.Reminder, error) {
	var reminder models.Reminder
	if err := r.coll.FindOne(ctx, keyFilter(key)).Decode(&reminder); err != nil {
		return nil, fmt.Errorf("failed to fetch reminder %s: %w", key.ReminderID, err)
	}
	return &reminder, nil
}

// ListByPet returns all reminders for one pet.
func (r *MongoReminderRepo) ListByPet(ctx context.Context, ownerID, petID string) ([]models.Reminder, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID, "petId": petID})
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders for pet %s: %w", petID, err)
	}
	defer cursor.Close(ctx)

	var reminders []models.Reminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, fmt.Errorf("failed to decode reminders: %w", err)
	}
	return reminders, nil
}

// ListByOwner returns all reminders belonging to one owner.
func (r *MongoReminderRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Reminder, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var reminders []models.Reminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, fmt.Errorf("failed to decode reminders: %w", err)
	}
	return reminders, nil
}

// Update replaces the mutable fields of an existing reminder.
func (r *MongoReminderRepo) Update(ctx context.Context, reminder *models.Reminder) error {
	reminder.UpdatedAt = time.Now()
	update := bson.M{"$set": reminder}

	result, err := r.coll.UpdateOne(ctx, keyFilter(reminder.Key()), update)
	if err != nil {
		return fmt.Errorf("failed to update reminder %s: %w", reminder.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reminder %s not found", reminder.ID)
	}
	return nil
}

// Delete removes a reminder document.
func (r *MongoReminderRepo) Delete(ctx context.Context, key models.ReminderKey) error {
	result, err := r.coll.DeleteOne(ctx, keyFilter(key))
	if err != nil {
		return fmt.Errorf("failed to delete reminder %s: %w", key.ReminderID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("reminder %s not found", key.ReminderID)
	}
	return nil
}
