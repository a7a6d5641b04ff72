package generators

import (
	"fmt"
	"math"

	"furniture-configurator/internal/configurator/calc"
	"furniture-configurator/internal/configurator/models"
)

// ============================================================
// Folding doors
// ============================================================

type FoldingDoorsConfig struct {
	Owner          models.Owner
	CabinetWidth   float64
	CabinetHeight  float64
	CabinetDepth   float64
	FrontThickness float64
	LegOffset      float64
	MaterialID     string
	Layout         models.DoorLayout
	Folding        models.FoldingDoorConfig
	HandleConfig   *models.HandleConfig
}

// FoldingSections splits the front height into lower and upper section heights.
// lower + upper + gap always equals the front height. Unset values take the
// defaults; the split is clamped to [0, 1] and the gap to >= 0.
func FoldingSections(cabinetHeight float64, folding models.FoldingDoorConfig) (lower, upper, gap float64) {
	split := calc.DefaultSplitRatio
	if folding.SplitRatio != nil {
		split = math.Min(math.Max(*folding.SplitRatio, 0), 1)
	}
	gap = calc.DefaultSectionGap
	if folding.SectionGap != nil {
		gap = math.Max(*folding.SectionGap, 0)
	}
	available := cabinetHeight - 2*calc.FrontMargin - gap
	if available < 0 {
		available = 0
	}
	lower = available * split
	upper = available - lower
	return lower, upper, gap
}

// GenerateFoldingDoors builds a lower and an upper section per column: two
// panels for SINGLE, four for DOUBLE. Only lower sections carry a handle.
func GenerateFoldingDoors(cfg FoldingDoorsConfig) []models.Part {
	lower, upper, gap := FoldingSections(cfg.CabinetHeight, cfg.Folding)
	opening := cfg.CabinetWidth - 2*calc.FrontMargin
	z := cfg.CabinetDepth/2 + cfg.FrontThickness/2
	lowerY := cfg.LegOffset + calc.FrontMargin + lower/2
	upperY := cfg.LegOffset + calc.FrontMargin + lower + gap + upper/2

	type column struct {
		label string
		width float64
		x     float64
		hinge models.HingeSide
	}
	var columns []column
	if cfg.Layout == models.DoorDouble {
		width := (opening - calc.DoorGap) / 2
		offset := width/2 + calc.DoorGap/2
		columns = []column{
			{"left ", width, -offset, models.HingeLeft},
			{"right ", width, offset, models.HingeRight},
		}
	} else {
		columns = []column{{"", opening, 0, models.HingeLeft}}
	}

	var parts []models.Part
	index := 0
	for _, col := range columns {
		if col.width < calc.MinDoorWidth {
			continue
		}
		for _, s := range []struct {
			section models.FoldingSection
			name    string
			height  float64
			y       float64
		}{
			{models.SectionLower, "lower", lower, lowerY},
			{models.SectionUpper, "upper", upper, upperY},
		} {
			if s.height < calc.MinFrontHeight {
				continue
			}
			part := cfg.Owner.Rect(fmt.Sprintf("Door %s%s", col.label, s.name), models.RoleDoor,
				col.width, s.height, cfg.FrontThickness,
				models.Vec3{col.x, s.y, z},
				models.RotFront, cfg.MaterialID, models.FullBanding())
			part.CabinetMetadata.Index = models.IntPtr(index)
			part.CabinetMetadata.DoorMetadata = &models.DoorMetadata{
				HingeSide:        col.hinge,
				OpeningDirection: models.OpenFoldUp,
				Layout:           layoutOrSingle(cfg.Layout),
				Section:          s.section,
			}
			if s.section == models.SectionLower {
				part.CabinetMetadata.HandleMetadata = calc.HandlePlacement(cfg.HandleConfig, col.width, s.height, models.FrontFoldingDoor, col.hinge)
			}
			parts = append(parts, part)
			index++
		}
	}
	return parts
}

func layoutOrSingle(l models.DoorLayout) models.DoorLayout {
	if l == models.DoorDouble {
		return l
	}
	return models.DoorSingle
}
