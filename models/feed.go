// File: pawtrack/models/feed.go
package models

import "time"

// FeedPost is a post in the social feed.
type FeedPost struct {
	ID        string    `bson:"id" json:"id"`
	OwnerID   string    `bson:"ownerId" json:"ownerId"`
	PetID     string    `bson:"petId,omitempty" json:"petId,omitempty"`
	Text      string    `bson:"text" json:"text"`
	PhotoURL  string    `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
