// File: pawtrack/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so routes
// can be registered from a single place.
type HandlerBundle struct {
	// Account endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetProfileHandler       gin.HandlerFunc

	// Device token endpoints
	RegisterDeviceHandler   gin.HandlerFunc
	UnregisterDeviceHandler gin.HandlerFunc
	ListDevicesHandler      gin.HandlerFunc

	// Pet endpoints
	CreatePetHandler gin.HandlerFunc
	GetPetHandler    gin.HandlerFunc
	ListPetsHandler  gin.HandlerFunc
	UpdatePetHandler gin.HandlerFunc
	DeletePetHandler gin.HandlerFunc

	// Health endpoints
	CreateHealthLogHandler gin.HandlerFunc
	ListHealthLogsHandler  gin.HandlerFunc
	DeleteHealthLogHandler gin.HandlerFunc
	RecordWeightHandler    gin.HandlerFunc
	ListWeightsHandler     gin.HandlerFunc

	// Reminder endpoints
	CreateReminderHandler     gin.HandlerFunc
	ListPetRemindersHandler   gin.HandlerFunc
	ListOwnerRemindersHandler gin.HandlerFunc
	UpdateReminderHandler     gin.HandlerFunc
	DeactivateReminderHandler gin.HandlerFunc
	DeleteReminderHandler     gin.HandlerFunc

	// Feed endpoints
	CreatePostHandler  gin.HandlerFunc
	ListFeedHandler    gin.HandlerFunc
	ListMyPostsHandler gin.HandlerFunc
	DeletePostHandler  gin.HandlerFunc

	// Vault endpoints
	UploadDocumentHandler gin.HandlerFunc
	ListDocumentsHandler  gin.HandlerFunc
	DocumentURLHandler    gin.HandlerFunc
	DeleteDocumentHandler gin.HandlerFunc

	// AI summary endpoints
	RequestSummaryHandler gin.HandlerFunc
	GetSummaryHandler     gin.HandlerFunc
}
