package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"strconv"

	"furniture-configurator/internal/configurator/cutlist"
	"furniture-configurator/internal/configurator/render"

	"github.com/gofiber/fiber/v3"
)

var (
	errBodyRequired = errors.New("body required")
	errInvalidJSON  = errors.New("invalid JSON payload")
)

// WastePercent reads the optional waste query parameter (percent of
// edge banding added as offcut allowance).
func WastePercent(c fiber.Ctx) (float64, error) {
	raw := c.Query("waste")
	if raw == "" {
		return defaultWastePercent, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, errors.New("waste must be a non-negative number")
	}
	return v, nil
}

// RenderOptions reads scale, dimensions and boxes query parameters.
func RenderOptions(c fiber.Ctx) (render.Options, error) {
	opts := render.Options{
		ShowDimensions:  c.Query("dimensions") == "true",
		HideDrawerBoxes: c.Query("boxes") == "false",
	}
	if raw := c.Query("scale"); raw != "" {
		scale, err := strconv.ParseFloat(raw, 64)
		if err != nil || scale <= 0 {
			return opts, errors.New("scale must be a positive number")
		}
		opts.Scale = scale
	}
	return opts, nil
}

// SendCutList writes a cut list as CSV, or as JSON when format=json.
// Shared with the projects service.
func SendCutList(c fiber.Ctx, list cutlist.CutList) error {
	if c.Query("format") == "json" {
		return c.JSON(list)
	}

	var buf bytes.Buffer
	if err := cutlist.WriteCSV(&buf, list); err != nil {
		log.Printf("[CUTLIST] CSV error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="cutlist.csv"`)
	return c.Send(buf.Bytes())
}
