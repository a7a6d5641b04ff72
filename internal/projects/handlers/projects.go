package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	cfghandlers "furniture-configurator/internal/configurator/handlers"
	cfgservice "furniture-configurator/internal/configurator/service"
	"furniture-configurator/internal/projects/repository"
	"furniture-configurator/internal/projects/service"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Projects Handler
// ============================================================

type ProjectsHandler struct {
	projects *service.ProjectService
}

func NewProjectsHandler(projects *service.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{projects: projects}
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateProject создает пустой проект.
func (h *ProjectsHandler) CreateProject(c fiber.Ctx) error {
	log.Printf("[PROJECTS] Create request")

	if len(c.Body()) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "empty body"})
	}

	var req createProjectRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	p, err := h.projects.CreateProject(context.Background(), req.Name, req.Description)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(p)
}

func (h *ProjectsHandler) ListProjects(c fiber.Ctx) error {
	list, err := h.projects.ListProjects(context.Background())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"projects": list})
}

func (h *ProjectsHandler) GetProject(c fiber.Ctx) error {
	p, err := h.projects.GetProject(context.Background(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

// AddCabinet генерирует шкаф и сохраняет его детали в проект.
func (h *ProjectsHandler) AddCabinet(c fiber.Ctx) error {
	projectID := c.Params("id")
	log.Printf("[PROJECTS] Add cabinet to %s, %d bytes", projectID, len(c.Body()))

	if len(c.Body()) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "empty body"})
	}

	var req cfgservice.CabinetRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	cab, parts, err := h.projects.AddCabinet(context.Background(), projectID, req)
	if err != nil {
		return h.fail(c, err)
	}

	log.Printf("[PROJECTS] Stored cabinet %s (%s) with %d parts", cab.ID, cab.Type, len(parts))
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"cabinet": cab,
		"parts":   parts,
	})
}

// ListParts отдаёт детали проекта, опционально одного шкафа (?cabinet=).
func (h *ProjectsHandler) ListParts(c fiber.Ctx) error {
	parts, err := h.projects.Parts(context.Background(), c.Params("id"), c.Query("cabinet"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"parts": parts})
}

func (h *ProjectsHandler) CutList(c fiber.Ctx) error {
	waste, err := cfghandlers.WastePercent(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	list, err := h.projects.CutList(context.Background(), c.Params("id"), waste)
	if err != nil {
		return h.fail(c, err)
	}
	return cfghandlers.SendCutList(c, list)
}

// Elevation отдаёт SVG фронтального вида сохраненного шкафа.
func (h *ProjectsHandler) Elevation(c fiber.Ctx) error {
	opts, err := cfghandlers.RenderOptions(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	svg, err := h.projects.Elevation(context.Background(), c.Params("id"), c.Params("cabinetId"), opts)
	if err != nil {
		return h.fail(c, err)
	}
	c.Set("Content-Type", "image/svg+xml")
	return c.Send(svg)
}

// Export сохраняет cutlist и SVG проекта на диск и возвращает пути.
func (h *ProjectsHandler) Export(c fiber.Ctx) error {
	waste, err := cfghandlers.WastePercent(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	files, err := h.projects.Export(context.Background(), c.Params("id"), waste)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"files": files})
}

// ============================================================
// Helpers
// ============================================================

func (h *ProjectsHandler) fail(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrDuplicate):
		return c.Status(http.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidProject), cfgservice.IsClientError(err):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("[PROJECTS] Error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
