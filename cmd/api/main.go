package main

import (
	"context"
	"go-onboarding-backend/config"
	_ "go-onboarding-backend/docs" // Important for Swagger
	v1 "go-onboarding-backend/internal/delivery/http/v1"
	"go-onboarding-backend/internal/repository/postgres"
	"go-onboarding-backend/internal/usecase"
	"go-onboarding-backend/pkg/database"
	"go-onboarding-backend/pkg/logger"
	"go-onboarding-backend/pkg/redis"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
)

// @title           Onboarding Backend API
// @version         1.0
// @description     Backend for the employee onboarding portal using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting onboarding backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting falls back to in-memory when unavailable)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting will use in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	taskRepo := postgres.NewTaskRepository(dbPool)
	onboardingRepo := postgres.NewOnboardingRepository(dbPool)
	templateRepo := postgres.NewTemplateRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour
	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret, tokenTTL)
	userUC := usecase.NewUserUsecase(userRepo)
	taskUC := usecase.NewTaskUsecase(taskRepo, userRepo)
	onboardingUC := usecase.NewOnboardingUsecase(onboardingRepo, taskRepo, validate)
	templateUC := usecase.NewTemplateUsecase(templateRepo, userRepo, onboardingRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		TaskUC:       taskUC,
		OnboardingUC: onboardingUC,
		TemplateUC:   templateUC,
		Config:       cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
