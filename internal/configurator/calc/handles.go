package calc

import (
	"math"

	"furniture-configurator/internal/configurator/models"
)

// ============================================================
// Handle position calculator
// ============================================================

// HandlePlacement resolves where a handle sits on a front, as an (x, y) offset
// from the front's center. It returns nil for fronts without a handle.
//
// The edge offset along the handle's long axis includes half the handle length,
// so a bar never crosses the edge of the front.
func HandlePlacement(cfg *models.HandleConfig, frontWidth, frontHeight float64, kind models.FrontKind, hinge models.HingeSide) *models.HandleMetadata {
	if cfg == nil || cfg.Type == models.HandleNone {
		return nil
	}
	resolved := normalizeHandle(*cfg, kind)

	length := resolved.Dimensions.Length
	edgeX := resolved.OffsetFromEdge
	edgeY := resolved.OffsetFromEdge
	if resolved.Orientation == models.HandleHorizontal {
		edgeX += length / 2
	} else {
		edgeY += length / 2
	}

	maxX := math.Max(frontWidth/2-edgeX, 0)
	maxY := math.Max(frontHeight/2-edgeY, 0)

	position := resolved.Position
	if position == models.HandleSmart {
		position = smartPosition(kind, hinge)
	}

	var x, y float64
	switch position {
	case models.HandleTopLeft:
		x, y = -maxX, maxY
	case models.HandleTopCenter:
		x, y = 0, maxY
	case models.HandleTopRight:
		x, y = maxX, maxY
	case models.HandleMiddleLeft:
		x, y = -maxX, 0
	case models.HandleMiddleRight:
		x, y = maxX, 0
	case models.HandleBottomLeft:
		x, y = -maxX, -maxY
	case models.HandleBottomCenter:
		x, y = 0, -maxY
	case models.HandleBottomRight:
		x, y = maxX, -maxY
	case models.HandleCustom:
		x = clamp(resolved.CustomX, -maxX, maxX)
		y = clamp(resolved.CustomY, -maxY, maxY)
	}

	resolved.Position = position
	return &models.HandleMetadata{
		Config:      resolved,
		X:           x,
		Y:           y,
		Orientation: resolved.Orientation,
	}
}

func normalizeHandle(cfg models.HandleConfig, kind models.FrontKind) models.HandleConfig {
	if cfg.Type == "" {
		cfg.Type = models.HandleBar
	}
	if cfg.OffsetFromEdge <= 0 {
		cfg.OffsetFromEdge = DefaultHandleOffset
	}
	if cfg.Dimensions.Length <= 0 && cfg.Type == models.HandleBar {
		cfg.Dimensions.Length = DefaultHandleLength
	}
	if cfg.Dimensions.Length < 0 {
		cfg.Dimensions.Length = 0
	}
	if cfg.Orientation == "" {
		switch kind {
		case models.FrontDrawer, models.FrontFoldingDoor:
			cfg.Orientation = models.HandleHorizontal
		default:
			cfg.Orientation = models.HandleVertical
		}
	}
	return cfg
}

// smartPosition puts door handles on the edge away from the hinge (for double
// doors that is the edge next to the center gap), drawer handles top center and
// lift-up handles on the bottom edge.
func smartPosition(kind models.FrontKind, hinge models.HingeSide) models.HandlePosition {
	switch kind {
	case models.FrontDrawer:
		return models.HandleTopCenter
	case models.FrontFoldingDoor:
		return models.HandleBottomCenter
	}
	if hinge == models.HingeRight {
		return models.HandleMiddleLeft
	}
	return models.HandleMiddleRight
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
