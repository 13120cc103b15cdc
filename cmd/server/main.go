package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"bms-api/internal/adapters/http/middleware"
	"bms-api/internal/adapters/http/routes"
	"bms-api/internal/config"
	"bms-api/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "bms-api/docs" // Swagger docs
)

// @title BMS Banking API
// @version 1.0
// @description Banking management system API over the BMS core schema
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@dubey-bms.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host api.dubey-bms.com
// @BasePath /api/v1
// @schemes https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Connect to the quote cache. The API runs fine without it.
	rdb, err := config.ConnectRedis(cfg)
	if err != nil {
		log.Printf("⚠️  Quote cache unavailable, continuing without it: %v", err)
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// Start dashboard stats refresher
	statsService := services.NewStatsService(db)
	if err := statsService.Start(cfg.Stats.RefreshCron); err != nil {
		log.Fatalf("❌ Failed to start stats refresher: %v", err)
	}
	defer statsService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "BMS Banking API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, rdb, statsService, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
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
