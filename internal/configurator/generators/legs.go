package generators

import (
	"fmt"

	"furniture-configurator/internal/configurator/calc"
	"furniture-configurator/internal/configurator/models"
)

// GenerateLegs places 4 or 6 legs under a w x d footprint centered on the
// origin. Leg styling travels in typed LegMetadata.
func GenerateLegs(owner models.Owner, legs models.LegsConfig, width, depth float64) []models.Part {
	return legsAt(owner, legs, width, depth, 0, func(x, z float64) (float64, float64) { return x, z })
}

// legsAt is GenerateLegs with a frame mapping and a starting index, for
// generators that do not use the center-floor frame.
func legsAt(owner models.Owner, legs models.LegsConfig, width, depth float64, firstIndex int, toFrame func(x, z float64) (float64, float64)) []models.Part {
	height := calc.LegOffset(&legs)
	if height <= 0 {
		return nil
	}
	diameter := positiveOr(legs.Diameter, calc.DefaultLegDiameter)
	shape := legs.Shape
	if shape == "" {
		shape = models.LegRound
	}

	positions := calc.LegPositions(legs, width, depth)
	parts := make([]models.Part, 0, len(positions))
	for i, xz := range positions {
		index := firstIndex + i
		x, z := toFrame(xz[0], xz[1])
		part := owner.Rect(fmt.Sprintf("Leg %d", index+1), models.RoleLeg,
			diameter, height, diameter,
			models.Vec3{x, height / 2, z},
			models.RotFront, "", models.NoBanding())
		part.CabinetMetadata.LegIndex = models.IntPtr(index)
		part.CabinetMetadata.LegMetadata = &models.LegMetadata{
			Shape:    shape,
			Finish:   legs.Finish,
			Color:    legs.Color,
			Diameter: diameter,
			Height:   height,
		}
		parts = append(parts, part)
	}
	return parts
}
