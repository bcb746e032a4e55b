package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/salesdock/tenant-idm/internal/config"
	httpserver "github.com/salesdock/tenant-idm/internal/http"
	"github.com/salesdock/tenant-idm/pkg/auth"
	"github.com/salesdock/tenant-idm/pkg/repository"
)

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Connect to database
	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	logger.Info("connected to database")

	// Bootstrap schema
	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repository.Migrate(migrateCtx, db); err != nil {
		cancelMigrate()
		logger.Error("failed to apply schema", "error", err)
		os.Exit(1)
	}
	cancelMigrate()

	logger.Info("database schema ready")

	// Initialize repositories
	companiesRepo := repository.NewCompaniesRepository(db)
	usersRepo := repository.NewUsersRepository(db)

	// Initialize services
	sessionService := auth.NewSessionService(auth.SessionConfig{
		TTL:    cfg.SessionTTL,
		Secret: []byte(cfg.JWTSecret),
		Issuer: cfg.JWTIssuer,
	})
	onboardingService := auth.NewOnboardingService(db, companiesRepo, usersRepo, sessionService)
	passwordService := auth.NewPasswordService(usersRepo)
	provisioningService := auth.NewProvisioningService(usersRepo)

	// Create router
	router := httpserver.NewRouter(httpserver.RouterConfig{
		Logger:              logger,
		OnboardingService:   onboardingService,
		PasswordService:     passwordService,
		SessionService:      sessionService,
		ProvisioningService: provisioningService,
		RateLimitConfig:     cfg.RateLimit,
		SecurityHeaders:     cfg.SecurityHeaders,
		MaxRequestBodySize:  cfg.MaxRequestBodySize,
		CookieSecure:        cfg.Production(),
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.ServerAddr, cfg.ServerPort)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("starting server", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("server stopped")
}
