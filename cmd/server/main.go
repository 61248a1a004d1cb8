package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitweek/fitness-tracker/internal/api"
	"fitweek/fitness-tracker/internal/cache"
	"fitweek/fitness-tracker/internal/config"
	"fitweek/fitness-tracker/internal/payments"
	"fitweek/fitness-tracker/internal/repository/mongo"
	"fitweek/fitness-tracker/internal/service"
	"fitweek/fitness-tracker/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("starting fitness tracker server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.WithError(err).Fatal("could not load config")
	}

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to MongoDB")
	}
	defer func() {
		logrus.Info("disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logrus.WithError(err).Error("failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logrus.Info("database connection established")

	// --- Ensure Indexes ---
	go func() { // Run index creation in the background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureWorkoutLogIndexes(ctx, appDB.Collection("workout_logs"), appDB.Collection("workout_log_entries"))
		mongo.EnsurePaymentIndexes(ctx, appDB.Collection("premium_payments"))
		mongo.EnsurePostIndexes(ctx, appDB.Collection("posts"))
		logrus.Info("index creation process completed")
	}()

	// --- Initialize Storage ---
	mediaStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize S3 storage")
	}

	// --- Initialize Payment Provider ---
	checkoutProvider, err := payments.NewStripeProvider(cfg.Stripe)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize payment provider")
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	logRepo := mongo.NewMongoWorkoutLogRepository(appDB)
	paymentRepo := mongo.NewMongoPaymentRepository(appDB)
	postRepo := mongo.NewMongoPostRepository(appDB)

	// --- Initialize Services ---
	dayLogCache := cache.NewDayLogCache(cfg.Cache.SizeMB, cfg.Cache.TTL)
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	logService := service.NewWorkoutLogService(logRepo, dayLogCache)
	progressService := service.NewProgressService(logService)
	paymentService := service.NewPaymentService(paymentRepo, postRepo, checkoutProvider, cfg.Stripe.Currency)
	premiumService := service.NewPremiumService(postRepo, paymentRepo, mediaStorage)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	api.SetupRoutes(router, cfg.JWT.Secret, authService, logService, progressService, paymentService, premiumService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logrus.WithField("address", cfg.Server.Address).Info("server starting")

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("ListenAndServe error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down server...")

	// Give in-flight requests five seconds to finish.
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logrus.WithError(err).Fatal("server forced to shutdown")
	}

	logrus.Info("server exiting")
}
