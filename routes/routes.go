package routes

import (
	"net/http"
	"time"

	"pawtrack/handlers"
	"pawtrack/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/signin", hb.AuthenticateUserHandler)
	}

	me := r.Group("/api/me")
	{
		me.Use(middleware.JWTAuthMiddleware())
		me.GET("", hb.GetProfileHandler)
	}
}

// RegisterDeviceRoutes registers push token endpoints.
func RegisterDeviceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/devices")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.RegisterDeviceHandler)
		api.DELETE("", hb.UnregisterDeviceHandler)
		api.GET("", hb.ListDevicesHandler)
	}
}

// RegisterPetRoutes registers pet profile endpoints plus the nested
// health, reminder, vault and summary endpoints.
func RegisterPetRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pets")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.CreatePetHandler)
		api.GET("", hb.ListPetsHandler)
		api.GET("/:petId", hb.GetPetHandler)
		api.PUT("/:petId", hb.UpdatePetHandler)
		api.DELETE("/:petId", hb.DeletePetHandler)

		// Health history.
		api.POST("/:petId/logs", hb.CreateHealthLogHandler)
		api.GET("/:petId/logs", hb.ListHealthLogsHandler)
		api.DELETE("/:petId/logs/:logId", hb.DeleteHealthLogHandler)
		api.POST("/:petId/weights", hb.RecordWeightHandler)
		api.GET("/:petId/weights", hb.ListWeightsHandler)

		// Reminders.
		api.POST("/:petId/reminders", hb.CreateReminderHandler)
		api.GET("/:petId/reminders", hb.ListPetRemindersHandler)
		api.PUT("/:petId/reminders/:reminderId", hb.UpdateReminderHandler)
		api.POST("/:petId/reminders/:reminderId/deactivate", hb.DeactivateReminderHandler)
		api.DELETE("/:petId/reminders/:reminderId", hb.DeleteReminderHandler)

		// Document vault.
		api.POST("/:petId/vault", hb.UploadDocumentHandler)
		api.GET("/:petId/vault", hb.ListDocumentsHandler)

		// AI summaries.
		api.POST("/:petId/summaries", hb.RequestSummaryHandler)
		api.GET("/:petId/summaries/:kind", hb.GetSummaryHandler)
	}
}

// RegisterReminderRoutes registers the cross-pet reminder listing.
func RegisterReminderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reminders")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListOwnerRemindersHandler)
	}
}

// RegisterFeedRoutes registers community feed endpoints.
func RegisterFeedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/feed")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.CreatePostHandler)
		api.GET("", hb.ListFeedHandler)
		api.GET("/mine", hb.ListMyPostsHandler)
		api.DELETE("/:postId", hb.DeletePostHandler)
	}
}

// RegisterVaultRoutes registers document endpoints addressed by doc ID.
func RegisterVaultRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vault")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/:docId/url", hb.DocumentURLHandler)
		api.DELETE("/:docId", hb.DeleteDocumentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm PawTrack"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterDeviceRoutes(r, hb)
	RegisterPetRoutes(r, hb)
	RegisterReminderRoutes(r, hb)
	RegisterFeedRoutes(r, hb)
	RegisterVaultRoutes(r, hb)
	RegisterHealthRoute(r)
}
