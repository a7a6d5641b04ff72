package generators

import (
	"math"

	"furniture-configurator/internal/configurator/calc"
	"furniture-configurator/internal/configurator/models"
)

// ============================================================
// Decorative panels
// ============================================================

type DecorativeConfig struct {
	Owner         models.Owner
	CabinetWidth  float64
	CabinetHeight float64
	CabinetDepth  float64
	Thickness     float64
	LegOffset     float64
	MaterialID    string
	Panels        models.DecorativePanelsConfig
}

// GenerateDecorativePanels builds the trim above and below the body.
//
//	BLENDA      front-flush board
//	PLINTH      board recessed from the front
//	STRIP       thin front-flush strip
//	FULL_PANEL  flat panel covering the whole top or underside
//
// Bottom trim lives in the leg space and is left out when the cabinet has no legs.
func GenerateDecorativePanels(cfg DecorativeConfig) []models.Part {
	var parts []models.Part
	if p, ok := cfg.top(cfg.Panels.Top); ok {
		parts = append(parts, p)
	}
	if p, ok := cfg.bottom(cfg.Panels.Bottom); ok {
		parts = append(parts, p)
	}
	return parts
}

func (cfg DecorativeConfig) top(dp *models.DecorativePanelConfig) (models.Part, bool) {
	if dp == nil || !dp.Enabled {
		return models.Part{}, false
	}
	bodyTop := cfg.LegOffset + cfg.CabinetHeight

	if dp.Type == models.DecorativeFullPanel {
		return cfg.fullPanel(dp, "Decorative top", models.RoleDecorativeTop, bodyTop+cfg.Thickness/2), true
	}
	height := decorativeHeight(dp)
	return cfg.board(dp, "Decorative top", models.RoleDecorativeTop, height, bodyTop+height/2), true
}

func (cfg DecorativeConfig) bottom(dp *models.DecorativePanelConfig) (models.Part, bool) {
	if dp == nil || !dp.Enabled || cfg.LegOffset <= 0 {
		return models.Part{}, false
	}

	switch dp.Type {
	case models.DecorativeFullPanel:
		if cfg.LegOffset < cfg.Thickness {
			return models.Part{}, false
		}
		return cfg.fullPanel(dp, "Decorative bottom", models.RoleDecorativeBot, cfg.LegOffset-cfg.Thickness/2), true
	case models.DecorativePlinth:
		// A plinth fills the leg space down to the floor.
		return cfg.board(dp, "Decorative bottom", models.RoleDecorativeBot, cfg.LegOffset, cfg.LegOffset/2), true
	}
	height := math.Min(decorativeHeight(dp), cfg.LegOffset)
	return cfg.board(dp, "Decorative bottom", models.RoleDecorativeBot, height, cfg.LegOffset-height/2), true
}

// board is an upright front-facing trim board.
func (cfg DecorativeConfig) board(dp *models.DecorativePanelConfig, name string, role models.PartRole, height, y float64) models.Part {
	z := cfg.CabinetDepth/2 - cfg.Thickness/2
	banding := models.FullBanding()
	if dp.Type == models.DecorativePlinth {
		recess := dp.Recess
		if recess <= 0 {
			recess = calc.DefaultPlinthRecess
		}
		z -= recess
		banding = models.EdgeBanding{Type: models.EdgeBandingRect, Top: true}
	}

	part := cfg.Owner.Rect(name, role,
		cfg.CabinetWidth, height, cfg.Thickness,
		models.Vec3{0, y, z},
		models.RotFront, firstNonEmpty(dp.MaterialID, cfg.MaterialID), banding)
	part.CabinetMetadata.DecorativeType = dp.Type
	return part
}

func (cfg DecorativeConfig) fullPanel(dp *models.DecorativePanelConfig, name string, role models.PartRole, y float64) models.Part {
	part := cfg.Owner.Rect(name, role,
		cfg.CabinetWidth, cfg.CabinetDepth, cfg.Thickness,
		models.Vec3{0, y, 0},
		models.RotFlat, firstNonEmpty(dp.MaterialID, cfg.MaterialID), models.FullBanding())
	part.CabinetMetadata.DecorativeType = dp.Type
	return part
}

func decorativeHeight(dp *models.DecorativePanelConfig) float64 {
	if dp.Height > 0 {
		return dp.Height
	}
	switch dp.Type {
	case models.DecorativePlinth:
		return calc.DefaultPlinthHeight
	case models.DecorativeStrip:
		return calc.DefaultStripHeight
	}
	return calc.DefaultBlendaHeight
}
