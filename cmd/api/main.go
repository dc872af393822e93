package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/config"
	v1 "github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/v1"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/repository/postgres"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/usecase"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/ai"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/database"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/email"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/logger"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/redis"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/token"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	logger.Log.Info("Starting job portal backend", "port", cfg.Port)

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		}
		defer redis.Close()
	}

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	savedJobRepo := postgres.NewSavedJobRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	verificationRepo := postgres.NewVerificationRepository(dbPool)
	reviewRepo := postgres.NewReviewRepository(dbPool)
	notificationRepo := postgres.NewNotificationRepository(dbPool)
	jobAlertRepo := postgres.NewJobAlertRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)

	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - notification emails disabled")
	}

	aiClient := ai.NewClient(cfg.AIAPIKey, cfg.AIAPIURL, cfg.AIModel)
	if !aiClient.IsConfigured() {
		logger.Log.Warn("AI API key not configured - AI endpoints will degrade")
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)

	// Usecases
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	jobUC := usecase.NewJobUsecase(jobRepo)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo, userRepo, emailService)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, notificationUC)
	savedJobUC := usecase.NewSavedJobUsecase(savedJobRepo, jobRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo)
	verificationUC := usecase.NewVerificationUsecase(verificationRepo, companyRepo)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, companyRepo)
	jobAlertUC := usecase.NewJobAlertUsecase(jobAlertRepo, jobRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	resumeUC := usecase.NewResumeUsecase(resumeRepo)
	adminUC := usecase.NewAdminUsecase(userRepo, jobRepo, companyRepo)
	aiUC := usecase.NewAIUsecase(aiClient)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:         authUC,
		JobUC:          jobUC,
		ApplicationUC:  applicationUC,
		SavedJobUC:     savedJobUC,
		CompanyUC:      companyUC,
		VerificationUC: verificationUC,
		ReviewUC:       reviewUC,
		NotificationUC: notificationUC,
		JobAlertUC:     jobAlertUC,
		ProfileUC:      profileUC,
		ResumeUC:       resumeUC,
		AdminUC:        adminUC,
		AIUC:           aiUC,
		Config:         cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exited")
}
