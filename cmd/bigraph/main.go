package main

import (
	"fmt"
	"log"
	"time"

	"spatial-bigraph/internal/bigraph/handlers"
	"spatial-bigraph/internal/common/config"
	"spatial-bigraph/internal/common/middleware"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Bigraph Service
// ============================================================

func main() {
	cfg := config.Load()

	settings, err := handlers.SettingsFromConfig(cfg)
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	bigraphHandler := handlers.NewBigraphHandler(settings)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		BodyLimit:    cfg.BodyLimit,
		AppName:      "Bigraph Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS(cfg.CorsOrigins))

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", handlers.LivenessProbe)
	app.Get("/health/ready", bigraphHandler.ReadinessProbe)
	app.Get("/health/startup", handlers.StartupProbe)

	// ============================================================
	// Bigraph Routes
	// ============================================================

	app.Post("/bigraph", bigraphHandler.Build)
	app.Post("/bigraph/layout", bigraphHandler.Layout)
	app.Post("/footprint", bigraphHandler.Footprint)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Bigraph Service on %s (env: %s, convention: %s, strategy: %s)",
		addr, cfg.Environment, settings.Convention, settings.Strategy)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
