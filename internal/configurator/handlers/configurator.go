package handlers

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"furniture-configurator/internal/configurator/cutlist"
	"furniture-configurator/internal/configurator/models"
	"furniture-configurator/internal/configurator/render"
	"furniture-configurator/internal/configurator/service"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Configurator Handler
// ============================================================

const defaultWastePercent = 10

type ConfiguratorHandler struct {
	configurator *service.Configurator
}

func NewConfiguratorHandler(configurator *service.Configurator) *ConfiguratorHandler {
	return &ConfiguratorHandler{configurator: configurator}
}

// Generate возвращает детали шкафа в JSON.
func (h *ConfiguratorHandler) Generate(c fiber.Ctx) error {
	log.Printf("[GENERATE] Received request, %d bytes", len(c.Body()))

	asm, status, err := h.build(c, "GENERATE")
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	log.Printf("[GENERATE] %s %s: %d parts", asm.Type, asm.CabinetID, len(asm.Parts))
	return c.JSON(asm)
}

// Render отдаёт фронтальный вид шкафа в SVG.
func (h *ConfiguratorHandler) Render(c fiber.Ctx) error {
	log.Printf("[RENDER] Received request, %d bytes", len(c.Body()))

	opts, err := RenderOptions(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	asm, status, err := h.build(c, "RENDER")
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	var buf bytes.Buffer
	if err := render.FrontElevation(&buf, asm, opts); err != nil {
		log.Printf("[RENDER] Render error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set("Content-Type", "image/svg+xml")
	return c.Send(buf.Bytes())
}

// CutList отдаёт список раскроя: CSV по умолчанию, JSON при format=json.
func (h *ConfiguratorHandler) CutList(c fiber.Ctx) error {
	log.Printf("[CUTLIST] Received request, %d bytes", len(c.Body()))

	waste, err := WastePercent(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	asm, status, err := h.build(c, "CUTLIST")
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return SendCutList(c, cutlist.Build(asm.Parts, waste))
}

// Materials возвращает каталог материалов, опционально по категории.
func (h *ConfiguratorHandler) Materials(c fiber.Ctx) error {
	catalog := h.configurator.Catalog()
	category := c.Query("category")
	if category == "" {
		return c.JSON(fiber.Map{"materials": catalog.All()})
	}

	list := catalog.ByCategory()[category]
	if list == nil {
		list = []models.Material{}
	}
	return c.JSON(fiber.Map{"materials": list})
}

func (h *ConfiguratorHandler) build(c fiber.Ctx, tag string) (models.Assembly, int, error) {
	if len(c.Body()) == 0 {
		return models.Assembly{}, http.StatusBadRequest, errBodyRequired
	}

	var req service.CabinetRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		log.Printf("[%s] Decode error: %v", tag, err)
		return models.Assembly{}, http.StatusBadRequest, errInvalidJSON
	}

	asm, err := h.configurator.Build(req)
	if err != nil {
		log.Printf("[%s] Build error: %v", tag, err)
		if service.IsClientError(err) {
			return models.Assembly{}, http.StatusBadRequest, err
		}
		return models.Assembly{}, http.StatusInternalServerError, err
	}
	return asm, http.StatusOK, nil
}
