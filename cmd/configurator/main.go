package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"furniture-configurator/internal/common/config"
	"furniture-configurator/internal/common/middleware"
	"furniture-configurator/internal/configurator/handlers"
	"furniture-configurator/internal/configurator/materials"
	"furniture-configurator/internal/configurator/service"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Configurator Service
// ============================================================

func main() {
	cfg := config.Load()
	if os.Getenv("PORT") == "" {
		cfg.Port = "3001"
	}

	catalog, err := materials.Load(cfg.MaterialsPath)
	if err != nil {
		log.Fatalf("load materials: %v", err)
	}
	log.Printf("Loaded %d materials from %s", len(catalog.All()), cfg.MaterialsPath)

	configuratorHandler := handlers.NewConfiguratorHandler(service.NewConfigurator(catalog))

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Configurator Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})

	// ============================================================
	// Configurator Routes
	// ============================================================

	app.Post("/generate", configuratorHandler.Generate)
	app.Post("/render", configuratorHandler.Render)
	app.Post("/cutlist", configuratorHandler.CutList)
	app.Get("/materials", configuratorHandler.Materials)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Configurator Service on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
