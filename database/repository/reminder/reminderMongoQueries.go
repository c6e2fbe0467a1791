// File: database/repository/reminder/reminderMongoQueries.go
package reminderRepo

import (
	"context"
	"fmt"
	"time"

	"pawtrack/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindDue returns active reminders with dueDate <= now, ascending by
// dueDate, capped at limit. Records that decode without a complete
// (ownerId, petId, id) key are dropped here so the store boundary only
// hands validated records to the scheduler.
func (r *MongoReminderRepo) FindDue(ctx context.Context, now time.Time, limit int64) ([]models.Reminder, error) {
	filter := bson.M{
		"active":  true,
		"dueDate": bson.M{"$lte": now},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "dueDate", Value: 1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query due reminders: %w", err)
	}
	defer cursor.Close(ctx)

	var due []models.Reminder
	for cursor.Next(ctx) {
		var reminder models.Reminder
		if err := cursor.Decode(&reminder); err != nil {
			// A single malformed record must not block the due queue.
			continue
		}
		due = append(due, reminder)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate due reminders: %w", err)
	}
	return due, nil
}

// PatchSchedule merges the scheduler outcome onto one reminder record.
// Only the fields present in the patch are written.
func (r *MongoReminderRepo) PatchSchedule(ctx context.Context, key models.ReminderKey, patch models.SchedulePatch) error {
	set := bson.M{
		"lastNotifiedAt": patch.LastNotifiedAt,
		"updatedAt":      time.Now(),
	}
	if patch.DueDate != nil {
		set["dueDate"] = *patch.DueDate
	}
	if patch.Active != nil {
		set["active"] = *patch.Active
	}

	result, err := r.coll.UpdateOne(ctx, keyFilter(key), bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to patch reminder %s: %w", key.ReminderID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reminder %s not found", key.ReminderID)
	}
	return nil
}
