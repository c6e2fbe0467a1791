// File: pawtrack/models/device.go
package models

import (
	"strings"
	"time"
)

// Push providers and platforms.
const (
	PushProviderFCM = "fcm"

	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)

// DeviceToken is a registered push destination belonging to one user.
// The sanitized token string doubles as the record identity within
// the owner's set.
type DeviceToken struct {
	Token     string    `bson:"token" json:"token"`
	OwnerID   string    `bson:"ownerId" json:"ownerId"`
	Platform  string    `bson:"platform" json:"platform"`
	Provider  string    `bson:"provider" json:"provider"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SanitizeToken normalizes a raw token string before it is used as a
// record identity.
func SanitizeToken(raw string) string {
	return strings.TrimSpace(raw)
}

// RegisterDeviceTokenRequest is the payload for registering a push token.
type RegisterDeviceTokenRequest struct {
	Token    string `json:"token" binding:"required"`
	Platform string `json:"platform" binding:"required,oneof=ios android"`
	Provider string `json:"provider"`
}
