package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/token"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.Env)
	logger.Log.Info("Starting job board backend", "port", cfg.Port, "local_auth", cfg.LocalAuth())

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, backs the login rate limiter)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable - rate limiting disabled", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	// 6. Setup Token Service / Peer Verifier
	// A configured signing secret means tokens are issued and verified here.
	// Without it, every bearer token is forwarded to the auth peer.
	var tokens *token.Service
	var verifier *auth.Verifier
	if cfg.LocalAuth() {
		tokens = token.NewService(cfg.JWTSecret)
	} else {
		if cfg.AuthPeerURL == "" {
			logger.Log.Error("Neither JWT_SECRET nor AUTH_PEER_URL is configured")
			os.Exit(1)
		}
		verifier = auth.NewVerifier(cfg.AuthPeerURL)
	}

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	profileUC := usecase.NewProfileUsecase(userRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		ProfileUC:     profileUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		Tokens:        tokens,
		Verifier:      verifier,
		Config:        cfg,
	})

	// 9. Start Server
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
