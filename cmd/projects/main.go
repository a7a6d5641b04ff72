package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"furniture-configurator/internal/common/config"
	"furniture-configurator/internal/common/middleware"
	"furniture-configurator/internal/configurator/materials"
	cfgservice "furniture-configurator/internal/configurator/service"
	"furniture-configurator/internal/projects/handlers"
	"furniture-configurator/internal/projects/repository"
	"furniture-configurator/internal/projects/service"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Projects Service
// ============================================================

func main() {
	cfg := config.Load()
	if os.Getenv("PORT") == "" {
		cfg.Port = "3002"
	}

	db, err := repository.OpenSQLite(cfg.ProjectsDBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Init(context.Background(), cfg.MigrationsPath); err != nil {
		log.Fatalf("init db: %v", err)
	}

	catalog, err := materials.Load(cfg.MaterialsPath)
	if err != nil {
		log.Fatalf("load materials: %v", err)
	}

	projectService := service.NewProjectService(
		repo,
		cfgservice.NewConfigurator(catalog),
		service.NewRenderCache(),
		service.NewExportStorage(cfg.ExportsDir),
	)
	projectsHandler := handlers.NewProjectsHandler(projectService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Projects Service",
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
		if err := repo.Ping(context.Background()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ready"})
	})

	// ============================================================
	// Project Routes
	// ============================================================

	app.Post("/projects", projectsHandler.CreateProject)
	app.Get("/projects", projectsHandler.ListProjects)
	app.Get("/projects/:id", projectsHandler.GetProject)
	app.Post("/projects/:id/cabinets", projectsHandler.AddCabinet)
	app.Get("/projects/:id/parts", projectsHandler.ListParts)
	app.Get("/projects/:id/cutlist", projectsHandler.CutList)
	app.Get("/projects/:id/cabinets/:cabinetId/svg", projectsHandler.Elevation)
	app.Post("/projects/:id/export", projectsHandler.Export)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Projects Service on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
