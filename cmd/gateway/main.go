package main

import (
	"fmt"
	"log"
	"time"

	"furniture-configurator/internal/common/config"
	"furniture-configurator/internal/common/middleware"
	"furniture-configurator/internal/gateway/handlers"
	"furniture-configurator/internal/gateway/proxy"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// API Gateway
// ============================================================

const apiPrefix = "/api/v1"

func main() {
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Furniture Configurator Gateway",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", handlers.LivenessProbe)
	app.Get("/health/ready", handlers.ReadinessProbe(map[string]string{
		"configurator": cfg.ConfiguratorURL,
		"projects":     cfg.ProjectsURL,
	}))
	app.Get("/health/startup", handlers.StartupProbe)

	// ============================================================
	// Docs
	// ============================================================

	app.Get("/docs", handlers.SwaggerUI)
	app.Get("/docs/openapi.yaml", handlers.SwaggerSpec(cfg.OpenAPIPath))

	// ============================================================
	// API Routes
	// ============================================================

	api := app.Group(apiPrefix)

	api.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Furniture Configurator API v1",
			"status":  "ok",
		})
	})

	// ============================================================
	// Service Routes (Proxy)
	// ============================================================

	// Configurator Service
	api.Post("/generate", proxy.ProxyTo(cfg.ConfiguratorURL+"/generate"))
	api.Post("/render", proxy.ProxyTo(cfg.ConfiguratorURL+"/render"))
	api.Post("/cutlist", proxy.ProxyTo(cfg.ConfiguratorURL+"/cutlist"))
	api.Get("/materials", proxy.ProxyTo(cfg.ConfiguratorURL+"/materials"))

	// Projects Service
	projects := proxy.ProxyPath(cfg.ProjectsURL, apiPrefix)
	api.Post("/projects", projects)
	api.Get("/projects", projects)
	api.Get("/projects/:id", projects)
	api.Post("/projects/:id/cabinets", projects)
	api.Get("/projects/:id/parts", projects)
	api.Get("/projects/:id/cutlist", projects)
	api.Get("/projects/:id/cabinets/:cabinetId/svg", projects)
	api.Post("/projects/:id/export", projects)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting API Gateway on %s (env: %s)", addr, cfg.Environment)
	log.Printf("Proxying configurator to %s, projects to %s", cfg.ConfiguratorURL, cfg.ProjectsURL)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
