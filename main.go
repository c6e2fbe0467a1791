// File: pawtrack/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawtrack/config"
	"pawtrack/cron"
	"pawtrack/database"
	deviceRepoPkg "pawtrack/database/repository/device"
	feedRepoPkg "pawtrack/database/repository/feed"
	healthRepoPkg "pawtrack/database/repository/health"
	petRepoPkg "pawtrack/database/repository/pet"
	reminderRepoPkg "pawtrack/database/repository/reminder"
	userRepoPkg "pawtrack/database/repository/user"
	vaultRepoPkg "pawtrack/database/repository/vault"
	"pawtrack/handlers"
	"pawtrack/middleware"
	"pawtrack/routes"
	"pawtrack/services/feed"
	"pawtrack/services/health"
	"pawtrack/services/notification"
	"pawtrack/services/pet"
	"pawtrack/services/reminder"
	"pawtrack/services/scheduler"
	"pawtrack/services/summary"
	"pawtrack/services/user"
	"pawtrack/services/vault"
	"pawtrack/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	utils.InitCache()
	utils.InitSummaryCache()

	ctx := context.Background()

	messagingClient, err := utils.NewMessagingClient(ctx, config.AppConfig.FirebaseCredentialsFile)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize firebase messaging: %v", err)
	}

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Repositories.
	userRepo, err := userRepoPkg.NewMongoUserRepo(db)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize user repository: %v", err)
	}
	deviceRepo, err := deviceRepoPkg.NewMongoDeviceTokenRepo(db)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize device repository: %v", err)
	}
	petRepo, err := petRepoPkg.NewMongoPetRepo(db)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize pet repository: %v", err)
	}
	healthRepo, err := healthRepoPkg.NewMongoHealthRepo(db)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize health repository: %v", err)
	}
	reminderRepo, err := reminderRepoPkg.NewMongoReminderRepo(db)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize reminder repository: %v", err)
	}
	feedRepo, err := feedRepoPkg.NewMongoFeedRepo(db)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize feed repository: %v", err)
	}
	vaultRepo, err := vaultRepoPkg.NewMongoVaultRepo(db)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize vault repository: %v", err)
	}

	// Services.
	userService := &user.DefaultUserService{
		Repo:    userRepo,
		Devices: deviceRepo,
		Logger:  logger,
	}
	petService := &pet.DefaultPetService{
		Repo:   petRepo,
		Logger: logger,
	}
	healthService := &health.DefaultHealthService{
		Repo:   healthRepo,
		Pets:   petRepo,
		Logger: logger,
	}
	reminderService := &reminder.DefaultReminderService{
		Repo:   reminderRepo,
		Logger: logger,
	}
	feedService := &feed.DefaultFeedService{
		Repo:   feedRepo,
		Logger: logger,
	}
	vaultService := &vault.DefaultVaultService{
		Repo:    vaultRepo,
		Storage: storageService,
		Logger:  logger,
	}

	// Background notification scheduler.
	pushSender, err := notification.NewFCMSender(messagingClient, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize push sender: %v", err)
	}
	location, err := time.LoadLocation(config.AppConfig.NotifyTimezone)
	if err != nil {
		logger.Sugar().Warnf("main: unknown timezone %q, falling back to UTC", config.AppConfig.NotifyTimezone)
		location = time.UTC
	}
	reminderScheduler := scheduler.New(reminderRepo, deviceRepo, petRepo, pushSender, logger, scheduler.Config{
		Lookback:   time.Duration(config.AppConfig.SchedulerLookbackMin) * time.Minute,
		BatchLimit: int64(config.AppConfig.SchedulerBatchLimit),
		Location:   location,
	})
	schedulerCron := cron.StartReminderScheduler(reminderScheduler, config.AppConfig.SchedulerIntervalMin, logger)

	// AI summary generation.
	var textGen summary.TextGenerator
	if config.AppConfig.GeminiAPIKey != "" {
		geminiClient, err := summary.NewGeminiClient(ctx, config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Warnf("main: gemini unavailable, summaries will use local generation: %v", err)
		} else {
			textGen = geminiClient
		}
	}
	summaryService := summary.NewDefaultService(
		textGen,
		petRepo,
		healthRepo,
		reminderRepo,
		utils.GetSummaryCacheClient(),
		logger,
	)
	cron.StartSummaryWorker(summaryService)
	taskClient := cron.NewTaskClient()
	defer taskClient.Close()

	// Handlers.
	userHandler := handlers.NewUserHandler(userService)
	petHandler := handlers.NewPetHandler(petService)
	healthHandler := handlers.NewHealthHandler(healthService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	feedHandler := handlers.NewFeedHandler(feedService)
	vaultHandler := handlers.NewVaultHandler(vaultService)
	summaryHandler := handlers.NewSummaryHandler(summaryService, taskClient)

	handlerBundle := &handlers.HandlerBundle{
		// Account endpoints.
		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,
		GetProfileHandler:       userHandler.GetProfileHandler,

		// Device token endpoints.
		RegisterDeviceHandler:   userHandler.RegisterDeviceHandler,
		UnregisterDeviceHandler: userHandler.UnregisterDeviceHandler,
		ListDevicesHandler:      userHandler.ListDevicesHandler,

		// Pet endpoints.
		CreatePetHandler: petHandler.CreatePetHandler,
		GetPetHandler:    petHandler.GetPetHandler,
		ListPetsHandler:  petHandler.ListPetsHandler,
		UpdatePetHandler: petHandler.UpdatePetHandler,
		DeletePetHandler: petHandler.DeletePetHandler,

		// Health endpoints.
		CreateHealthLogHandler: healthHandler.CreateHealthLogHandler,
		ListHealthLogsHandler:  healthHandler.ListHealthLogsHandler,
		DeleteHealthLogHandler: healthHandler.DeleteHealthLogHandler,
		RecordWeightHandler:    healthHandler.RecordWeightHandler,
		ListWeightsHandler:     healthHandler.ListWeightsHandler,

		// Reminder endpoints.
		CreateReminderHandler:     reminderHandler.CreateReminderHandler,
		ListPetRemindersHandler:   reminderHandler.ListPetRemindersHandler,
		ListOwnerRemindersHandler: reminderHandler.ListOwnerRemindersHandler,
		UpdateReminderHandler:     reminderHandler.UpdateReminderHandler,
		DeactivateReminderHandler: reminderHandler.DeactivateReminderHandler,
		DeleteReminderHandler:     reminderHandler.DeleteReminderHandler,

		// Feed endpoints.
		CreatePostHandler:  feedHandler.CreatePostHandler,
		ListFeedHandler:    feedHandler.ListFeedHandler,
		ListMyPostsHandler: feedHandler.ListMyPostsHandler,
		DeletePostHandler:  feedHandler.DeletePostHandler,

		// Vault endpoints.
		UploadDocumentHandler: vaultHandler.UploadDocumentHandler,
		ListDocumentsHandler:  vaultHandler.ListDocumentsHandler,
		DocumentURLHandler:    vaultHandler.DocumentURLHandler,
		DeleteDocumentHandler: vaultHandler.DeleteDocumentHandler,

		// AI summary endpoints.
		RequestSummaryHandler: summaryHandler.RequestSummaryHandler,
		GetSummaryHandler:     summaryHandler.GetSummaryHandler,
	}

	// The Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	schedulerCron.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect from MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
