package calc

import (
	"math"

	"furniture-configurator/internal/configurator/models"
)

// ============================================================
// Legs
// ============================================================

// LegOffset is how far the cabinet body is lifted off the floor.
func LegOffset(legs *models.LegsConfig) float64 {
	if legs == nil || !legs.Enabled {
		return 0
	}
	if legs.Height <= 0 {
		return DefaultLegHeight
	}
	return legs.Height
}

// LegCount returns 4 or 6. Wide cabinets get a pair of center supports.
func LegCount(legs models.LegsConfig, cabinetWidth float64) int {
	switch legs.Count {
	case 4, 6:
		return legs.Count
	}
	if cabinetWidth > LegCenterSupportThreshold {
		return 6
	}
	return 4
}

// LegPositions returns the (x, z) centers of the legs in the center-floor frame,
// ordered front-left, front-right, back-left, back-right, then front/back center.
func LegPositions(legs models.LegsConfig, cabinetWidth, cabinetDepth float64) [][2]float64 {
	diameter := legs.Diameter
	if diameter <= 0 {
		diameter = DefaultLegDiameter
	}
	inset := legs.Inset
	if inset <= 0 {
		inset = DefaultLegInset
	}

	x := math.Max(cabinetWidth/2-inset-diameter/2, 0)
	z := math.Max(cabinetDepth/2-inset-diameter/2, 0)

	positions := [][2]float64{
		{-x, z},
		{x, z},
		{-x, -z},
		{x, -z},
	}
	if LegCount(legs, cabinetWidth) == 6 {
		positions = append(positions, [2]float64{0, z}, [2]float64{0, -z})
	}
	return positions
}

// ============================================================
// Back panel
// ============================================================

// BackPanelDimensions computes the overlap-mounted back. Placement of the
// top/bottom panels does not matter: both reduce to the same edge inset.
func BackPanelDimensions(cabinetWidth, cabinetHeight, bodyThickness, overlapRatio float64) (width, height, overlap, edgeInset float64) {
	if overlapRatio <= 0 {
		overlapRatio = DefaultBackOverlapRatio
	}
	overlap = math.Max(bodyThickness*overlapRatio, MinBackOverlap)
	edgeInset = bodyThickness - overlap
	width = math.Max(cabinetWidth-2*edgeInset, MinBackPanelWidth)
	height = math.Max(cabinetHeight-2*edgeInset, MinBackPanelHeight)
	return width, height, overlap, edgeInset
}

// ============================================================
// Drawer boxes
// ============================================================

// DrawerBoxDimensions returns the outer width and depth of a drawer box.
func DrawerBoxDimensions(cabinetWidth, cabinetDepth, sideThickness float64, slide models.SlideType) (width, depth float64) {
	preset := Slide(slide)
	width = cabinetWidth - 2*sideThickness - 2*preset.SideOffset
	depth = cabinetDepth - preset.DepthOffset
	return width, depth
}

// BoxSideHeight keeps a box a little shorter than the space it is given.
func BoxSideHeight(spaceHeight float64) float64 {
	return math.Max(spaceHeight-BoxHeightReduction, BoxHeightMin)
}

// ============================================================
// Shelves
// ============================================================

// ShelfDepth resolves a depth preset against the cabinet depth.
func ShelfDepth(preset models.DepthPreset, customDepth, cabinetDepth float64) float64 {
	full := cabinetDepth - ShelfDepthSetback
	switch preset {
	case models.DepthHalf:
		return full / 2
	case models.DepthCustom:
		if customDepth > 0 {
			return math.Min(customDepth, full)
		}
	}
	return full
}

// EvenShelfPositions spaces count shelves evenly over a span, returning the
// shelf center heights. One shelf lands at mid-span.
func EvenShelfPositions(startY, span float64, count int) []float64 {
	if count <= 0 || span <= 0 {
		return nil
	}
	step := span / float64(count+1)
	out := make([]float64, count)
	for i := range out {
		out[i] = startY + float64(i+1)*step
	}
	return out
}

// ============================================================
// Corner cabinets
// ============================================================

// CornerDeadZone is the part of a corner cabinet's opening hidden behind the
// adjacent cabinet.
func CornerDeadZone(adjacentDepth float64) float64 {
	return adjacentDepth + CornerClearance
}

// CornerDoorWidth is the default door width for a blind corner cabinet.
func CornerDoorWidth(openingWidth, adjacentDepth float64) float64 {
	return math.Max(openingWidth-CornerDeadZone(adjacentDepth), 0)
}

// CornerFrontPanelWidth is whatever remains of the opening next to the door.
func CornerFrontPanelWidth(openingWidth, doorWidth float64) float64 {
	return openingWidth - doorWidth - DoorGap
}

// CornerShelfPositions spaces shelves across the interior of a corner body.
func CornerShelfPositions(interiorBottom, interiorHeight float64, count int) []float64 {
	return EvenShelfPositions(interiorBottom, interiorHeight, count)
}
