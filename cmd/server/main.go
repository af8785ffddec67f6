package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"thoth-hr/internal/adapters/http/middleware"
	"thoth-hr/internal/adapters/http/routes"
	"thoth-hr/internal/adapters/persistence/snapshots"
	"thoth-hr/internal/adapters/persistence/userstore"
	"thoth-hr/internal/config"
	"thoth-hr/internal/core/services"
	"thoth-hr/internal/core/store"
	"thoth-hr/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	logger.Init(cfg.IsDev())

	// Pick the snapshot backend
	repo, err := buildSnapshotRepository(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to set up %s backend: %v", cfg.StoreBackend, err)
	}

	// Load (or seed) the domain store
	ctx := context.Background()
	st, err := store.New(ctx, repo)
	if err != nil {
		log.Fatalf("❌ Failed to initialize store: %v", err)
	}
	log.Printf("✅ Store ready [BACKEND: %s]", cfg.StoreBackend)

	// User registry + demo accounts
	users := userstore.NewFileRepository(cfg.DataDir)
	authService := services.NewAuthService(users, cfg)
	if err := authService.SeedDemoUsers(ctx); err != nil {
		log.Printf("⚠️ Warning: Failed to seed demo users: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Thoth HR API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, st, users, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// buildSnapshotRepository wires the configured persistence backend
func buildSnapshotRepository(cfg *config.Config) (snapshots.SnapshotRepository, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return snapshots.NewMemoryRepository(), nil
	case config.BackendMySQL:
		db, err := config.ConnectDatabase(cfg)
		if err != nil {
			return nil, err
		}
		return snapshots.NewMySQLRepository(db)
	default:
		return snapshots.NewFileRepository(cfg.DataDir), nil
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
