// File: pawtrack/models/vault.go
package models

import "time"

// VaultDocument is a stored pet document (vet report, insurance
// certificate, photo of a prescription). The file itself lives in
// object storage; PublicID is the storage identifier.
type VaultDocument struct {
	ID           string    `bson:"id" json:"id"`
	OwnerID      string    `bson:"ownerId" json:"ownerId"`
	PetID        string    `bson:"petId" json:"petId"`
	Name         string    `bson:"name" json:"name"`
	PublicID     string    `bson:"publicId" json:"-"`
	ResourceType string    `bson:"resourceType" json:"resourceType"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
