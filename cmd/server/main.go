package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/careguard/careguard-backend/internal/config"
	"github.com/careguard/careguard-backend/internal/database"
	"github.com/careguard/careguard-backend/internal/handlers"
	"github.com/careguard/careguard-backend/internal/logger"
	"github.com/careguard/careguard-backend/internal/models"
	"github.com/careguard/careguard-backend/internal/repositories"
	"github.com/careguard/careguard-backend/internal/services"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize database connections
	postgresPool, err := database.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("failed to create postgres pool", zap.Error(err))
	}
	defer postgresPool.Close()

	redisClient, err := database.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		zapLogger.Fatal("failed to create redis client", zap.Error(err))
	}
	defer redisClient.Close()

	// Repositories
	userRepo := repositories.NewPostgresUserRepository(postgresPool)
	fallEventRepo := repositories.NewPostgresFallEventRepository(postgresPool)
	medicineRepo := repositories.NewPostgresMedicineRepository(postgresPool)
	caregiverRepo := repositories.NewPostgresCaregiverRepository(postgresPool)
	explanationCache := repositories.NewRedisExplanationCache(redisClient)

	// Services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	notifier := services.NewTwilioNotifier(cfg, zapLogger)
	// One DeviceState for the whole process; it dies with the process.
	deviceState := &models.DeviceState{}
	coordinator := services.NewCoordinator(deviceState, fallEventRepo, notifier, zapLogger)
	explainService := services.NewExplainService(cfg.InferenceAPIKey, cfg.InferenceBaseURL, cfg.InferenceModel, explanationCache, zapLogger)

	router := handlers.NewRouter(handlers.Deps{
		Auth:        authService,
		Coordinator: coordinator,
		Explain:     explainService,
		FallEvents:  fallEventRepo,
		Medicines:   medicineRepo,
		Caregivers:  caregiverRepo,
		Logger:      zapLogger,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: router,
	}

	// graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		zapLogger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	zapLogger.Info("starting server", zap.String("port", cfg.ServerPort))
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		zapLogger.Fatal("server error", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
