package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordquiz/internal/config"
	"wordquiz/internal/handler"
	"wordquiz/internal/repository/sqldb"
	"wordquiz/internal/service"
	"wordquiz/internal/storage"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting wordquiz server",
		zap.String("env", cfg.Env),
		zap.String("driver", cfg.Database.Driver),
	)

	// Connect to database with retries
	gw, err := storage.Open(cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	logger.Info("Database connection established")

	// Run migrations
	if err := gw.Migrate(cfg.Database.MigrationsURL(), logger); err != nil {
		gw.Close()
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	wordRepo := sqldb.NewWordRepo(gw)

	// Initialize services
	wordService := service.NewWordService(wordRepo)
	authService := service.NewAuthService(cfg.TeacherPassword)
	if authService.Enabled() {
		logger.Info("Teacher password required for word changes")
	}

	// Initialize handler
	h := handler.NewHandler(wordService, authService, gw, logger)
	app := handler.NewApp(h, handler.AppConfig{
		StaticDir:    cfg.Server.StaticDir,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	// Start server in background
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", zap.String("port", cfg.Server.Port))
		serverErr <- app.Listen(":" + cfg.Server.Port)
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received, stopping server...", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server stopped unexpectedly", zap.Error(err))
		}
	}

	// Graceful shutdown: stop accepting requests, then release the pool
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("Failed to shut down server", zap.Error(err))
	}

	if err := gw.Close(); err != nil {
		logger.Error("Failed to close database pool", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
