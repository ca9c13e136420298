package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carebridge/config"
	"carebridge/cron"
	catalogRepo "carebridge/database/repository/catalog"
	orderRepo "carebridge/database/repository/order"
	providerRepo "carebridge/database/repository/provider"
	userRepo "carebridge/database/repository/user"
	"carebridge/handlers"
	"carebridge/routes"
	"carebridge/services/booking"
	"carebridge/services/certification"
	"carebridge/services/completion"
	ai "carebridge/services/intelligence"
	"carebridge/services/provider"
	"carebridge/services/storage"
	"carebridge/services/user"
	"carebridge/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()

	// Image storage: Cloudinary when configured, in-memory otherwise.
	var storageSvc storage.StorageService
	if config.AppConfig.CloudinaryCloudName != "" {
		svc, err := storage.NewCloudinaryFromParams(
			config.AppConfig.CloudinaryCloudName,
			config.AppConfig.CloudinaryAPIKey,
			config.AppConfig.CloudinaryAPISecret,
			config.AppConfig.CloudinaryFolder,
		)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize cloudinary storage: %v", err)
		}
		storageSvc = svc
	} else {
		logger.Warn("Cloudinary not configured, using in-memory storage")
		storageSvc = storage.NewMemoryStorage()
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Repositories.
	catalog := catalogRepo.NewMemoryCatalogRepo()
	providers := providerRepo.NewMemoryProviderRepo()
	orders := orderRepo.NewMemoryOrderRepo()
	userData := userRepo.NewMemoryUserDataRepo()

	// Reminder queue client and worker.
	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderClient.Close()
	reminderWorker := cron.InitReminderWorker()
	defer reminderWorker.Shutdown()

	// Services.
	authService := user.NewAuthService(logger)
	userDataService := user.NewUserDataService(userData)
	rosterService := provider.NewRosterService(providers)

	workbenchService := provider.NewWorkbenchService(orders, providers, logger)
	defer workbenchService.Close()

	bookingService := booking.NewBookingFlowService(
		catalog, providers, orders, userData,
		booking.NewSimulatedPaymentProcessor(logger),
		reminderClient,
		logger,
	)
	defer bookingService.Close()

	certificationService := certification.NewCertificationService(
		providers,
		certification.NewSimulatedFaceVerifier(logger),
		logger,
	)

	completionService := completion.NewCompletionService(
		orders, providers,
		completion.NewSimulatedCodeVerifier(logger),
		completion.NewSimulatedRecordSubmitter(logger),
		storageSvc,
		logger,
	)

	var advisorService ai.AdvisorService
	if config.AppConfig.GeminiAPIKey != "" {
		client, err := ai.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize gemini client: %v", err)
		}
		advisorService = ai.NewAdvisorService(client, catalog, logger)
	} else {
		logger.Warn("Gemini not configured, advisor will serve fallback copy")
		advisorService = ai.NewUnavailableAdvisor()
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:          authService,
		UserData:      userDataService,
		Catalog:       catalog,
		Orders:        orders,
		Roster:        rosterService,
		Workbench:     workbenchService,
		Booking:       bookingService,
		Certification: certificationService,
		Completion:    completionService,
		Advisor:       advisorService,
		Storage:       storageSvc,
		Logger:        logger,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
