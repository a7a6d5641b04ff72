package generators

import (
	"furniture-configurator/internal/configurator/calc"
	"furniture-configurator/internal/configurator/models"
)

// ============================================================
// Doors
// ============================================================

type DoorsConfig struct {
	Owner          models.Owner
	CabinetWidth   float64
	CabinetHeight  float64
	CabinetDepth   float64
	FrontThickness float64
	LegOffset      float64
	MaterialID     string
	Door           models.DoorConfig
	HandleConfig   *models.HandleConfig
}

// GenerateDoors builds one door (SINGLE) or two doors with opposite hinges
// (DOUBLE) across the cabinet front. Doors narrower than MinDoorWidth are left out.
func GenerateDoors(cfg DoorsConfig) []models.Part {
	height := cfg.CabinetHeight - 2*calc.FrontMargin
	if height < calc.MinFrontHeight {
		return nil
	}
	opening := cfg.CabinetWidth - 2*calc.FrontMargin
	y := cfg.CabinetHeight/2 + cfg.LegOffset
	z := cfg.CabinetDepth/2 + cfg.FrontThickness/2
	direction := cfg.Door.OpeningDirection
	if direction == "" {
		direction = models.OpenHorizontal
	}

	if cfg.Door.Layout == models.DoorDouble {
		width := (opening - calc.DoorGap) / 2
		if width < calc.MinDoorWidth {
			return nil
		}
		offset := width/2 + calc.DoorGap/2
		return []models.Part{
			cfg.door("Door left", width, height, models.Vec3{-offset, y, z}, models.HingeLeft, direction, 0),
			cfg.door("Door right", width, height, models.Vec3{offset, y, z}, models.HingeRight, direction, 1),
		}
	}

	if opening < calc.MinDoorWidth {
		return nil
	}
	hinge := cfg.Door.HingeSide
	if hinge == "" {
		hinge = models.HingeLeft
	}
	return []models.Part{cfg.door("Door", opening, height, models.Vec3{0, y, z}, hinge, direction, 0)}
}

func (cfg DoorsConfig) door(name string, width, height float64, pos models.Vec3, hinge models.HingeSide, direction models.OpeningDirection, index int) models.Part {
	layout := cfg.Door.Layout
	kind := models.FrontDoubleDoor
	if layout != models.DoorDouble {
		layout = models.DoorSingle
		kind = models.FrontSingleDoor
	}

	part := cfg.Owner.Rect(name, models.RoleDoor,
		width, height, cfg.FrontThickness,
		pos, models.RotFront, cfg.MaterialID, models.FullBanding())
	part.CabinetMetadata.Index = models.IntPtr(index)
	part.CabinetMetadata.DoorMetadata = &models.DoorMetadata{
		HingeSide:        hinge,
		OpeningDirection: direction,
		Layout:           layout,
	}
	part.CabinetMetadata.HandleMetadata = calc.HandlePlacement(cfg.HandleConfig, width, height, kind, hinge)
	return part
}
