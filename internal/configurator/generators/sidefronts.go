package generators

import (
	"furniture-configurator/internal/configurator/calc"
	"furniture-configurator/internal/configurator/models"
)

// ============================================================
// Side fronts
// ============================================================

type SideFrontsConfig struct {
	Owner         models.Owner
	CabinetWidth  float64
	CabinetHeight float64
	CabinetDepth  float64
	Thickness     float64
	LegOffset     float64
	MaterialID    string
	SideFronts    models.SideFrontsConfig
}

// GenerateSideFronts builds decorative end panels outside each enabled side.
// A panel runs from the back of the body to forwardExtension past the front.
func GenerateSideFronts(cfg SideFrontsConfig) []models.Part {
	var parts []models.Part
	if p, ok := cfg.panel(cfg.SideFronts.Left, "Side front left", models.RoleSideFrontLeft, -1); ok {
		parts = append(parts, p)
	}
	if p, ok := cfg.panel(cfg.SideFronts.Right, "Side front right", models.RoleSideFrontRight, 1); ok {
		parts = append(parts, p)
	}
	return parts
}

func (cfg SideFrontsConfig) panel(sf *models.SideFrontConfig, name string, role models.PartRole, side float64) (models.Part, bool) {
	if sf == nil || !sf.Enabled {
		return models.Part{}, false
	}
	height := cfg.CabinetHeight - sf.BottomOffset - sf.TopOffset
	if height < calc.MinFrontHeight {
		return models.Part{}, false
	}
	extension := sf.ForwardExtension
	if extension < 0 {
		extension = 0
	}
	materialID := firstNonEmpty(sf.MaterialID, cfg.MaterialID)

	return cfg.Owner.Rect(name, role,
		cfg.CabinetDepth+extension, height, cfg.Thickness,
		models.Vec3{
			side * (cfg.CabinetWidth/2 + cfg.Thickness/2),
			cfg.LegOffset + sf.BottomOffset + height/2,
			extension / 2,
		},
		models.RotSide, materialID, models.FullBanding()), true
}
