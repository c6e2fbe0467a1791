// File: pawtrack/models/pet.go
package models

import "time"

// Pet is a profile owned by one user.
type Pet struct {
	ID        string     `bson:"id" json:"id"`
	OwnerID   string     `bson:"ownerId" json:"ownerId"`
	Name      string     `bson:"name" json:"name"`
	Species   string     `bson:"species" json:"species"`
	Breed     string     `bson:"breed,omitempty" json:"breed,omitempty"`
	BirthDate *time.Time `bson:"birthDate,omitempty" json:"birthDate,omitempty"`
	PhotoURL  string     `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}
