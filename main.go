package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"itsourstudio/config"
	"itsourstudio/cron"
	"itsourstudio/database"
	bookingRepoPkg "itsourstudio/database/repository/booking"
	feedbackRepoPkg "itsourstudio/database/repository/feedback"
	staffRepoPkg "itsourstudio/database/repository/staff"
	"itsourstudio/handlers"
	"itsourstudio/routes"
	"itsourstudio/services/admin"
	"itsourstudio/services/booking"
	"itsourstudio/services/feedback"
	"itsourstudio/services/mailer"
	"itsourstudio/services/notification"
	"itsourstudio/services/storage"
	"itsourstudio/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	storageService, err := storage.NewLocalStorageService(config.AppConfig.UploadDir, config.AppConfig.GalleryDir)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize local storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	feedbackRepo := feedbackRepoPkg.NewMongoFeedbackRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()

	// outbound mail: queue client feeds asynq, the worker drains it.
	mailQueue := cron.NewMailQueueClient()
	notificationService, err := notification.NewDefaultNotificationService(mailQueue)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	smtpMailer, err := mailer.NewSMTPMailer()
	if err != nil {
		logger.Sugar().Warnf("main: outbound mail disabled: %v", err)
	} else {
		cron.InitMailWorker(smtpMailer)
	}

	// services.
	wizardService := &booking.DefaultWizardService{
		Sessions: booking.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Repo:     bookingRepo,
		Notifier: notificationService,
	}
	feedbackService := &feedback.DefaultFeedbackService{
		Repo: feedbackRepo,
	}
	adminService := &admin.DefaultAdminService{
		Bookings: bookingRepo,
		Feedback: feedbackRepo,
		Staff:    staffRepo,
		Notifier: notificationService,
	}

	handlers.WizardSvc = wizardService
	handlers.FeedbackSvc = feedbackService
	handlers.AdminSvc = adminService
	handlers.StorageSvc = storageService

	routes.RegisterRoutes(router, &config.AppConfig, staffRepo)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

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
	if err := mailQueue.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close mail queue client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
