package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classbook/internal/booking"
	"classbook/internal/class"
	"classbook/internal/config"
	"classbook/internal/db"
	"classbook/internal/logger"
	"classbook/internal/server"
	"classbook/internal/timezone"
)

// @title ClassBook API
// @version 1.0
// @description Fitness studio class booking API with timezone support.
// @host localhost:8080
// @BasePath /
func main() {
	logger.Init()
	logger.Info("Starting ClassBook application")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	tz, err := timezone.New(cfg.DefaultTimezone)
	if err != nil {
		logger.Fatalf("Failed to load reference timezone: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	cache := class.NewCache(cfg.RedisAddr, 30*time.Second)
	defer cache.Close()

	classRepo := class.NewRepository(database)
	classService := class.NewService(classRepo, tz, cache)

	bookingRepo := booking.NewRepository(database)
	bookingService := booking.NewService(bookingRepo, classRepo, tz, cache)

	if cfg.SeedSampleData {
		if err := classService.SeedSampleClasses(context.Background()); err != nil {
			logger.Errorf("Failed to seed sample classes: %v", err)
		}
	}

	srv := server.New(cfg, classService, bookingService)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
