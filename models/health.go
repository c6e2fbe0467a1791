// File: pawtrack/models/health.go
package models

import "time"

// HealthLog is a single dated entry in a pet's health history.
type HealthLog struct {
	ID         string    `bson:"id" json:"id"`
	OwnerID    string    `bson:"ownerId" json:"ownerId"`
	PetID      string    `bson:"petId" json:"petId"`
	Kind       string    `bson:"kind" json:"kind"`
	Note       string    `bson:"note,omitempty" json:"note,omitempty"`
	Tags       []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	OccurredAt time.Time `bson:"occurredAt" json:"occurredAt"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// WeightEntry is one point in a pet's weight history.
type WeightEntry struct {
	ID         string    `bson:"id" json:"id"`
	OwnerID    string    `bson:"ownerId" json:"ownerId"`
	PetID      string    `bson:"petId" json:"petId"`
	WeightKg   float64   `bson:"weightKg" json:"weightKg"`
	MeasuredAt time.Time `bson:"measuredAt" json:"measuredAt"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
