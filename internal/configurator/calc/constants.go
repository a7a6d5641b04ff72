// Package calc holds the shared constants and the pure dimension math used by
// every part generator. Nothing here builds parts.
package calc

import "furniture-configurator/internal/configurator/models"

// ============================================================
// Fronts
// ============================================================

const (
	FrontMargin = 2.0 // gap between a front and the cabinet edge
	DoorGap     = 3.0 // gap between neighbouring fronts

	MinDoorWidth       = 50.0
	MinFrontHeight     = 20.0
	MinFrontPanelWidth = 50.0

	DefaultSplitRatio = 0.5
	DefaultSectionGap = 3.0
)

// ============================================================
// Handles
// ============================================================

const (
	DefaultHandleOffset = 30.0
	DefaultHandleLength = 128.0
)

// ============================================================
// Back panel
// ============================================================

const (
	MinBackOverlap          = 6.0
	DefaultBackOverlapRatio = 0.667
	MinBackPanelWidth       = 50.0
	MinBackPanelHeight      = 50.0

	DefaultHangerCutoutWidth  = 50.0
	DefaultHangerCutoutHeight = 40.0
	DefaultHangerCutoutInset  = 30.0
)

// ============================================================
// Drawers & shelves
// ============================================================

const (
	BoxHeightReduction = 30.0
	BoxHeightMin       = 50.0

	ShelfDepthSetback = 10.0

	MaxZoneDepth = 4
)

// SlidePreset holds the clearances a drawer slide needs.
type SlidePreset struct {
	SideOffset  float64 // per side, between cabinet side and box side
	DepthOffset float64 // subtracted from the cabinet depth
}

var slidePresets = map[models.SlideType]SlidePreset{
	models.SlideSideMount:   {SideOffset: 13, DepthOffset: 50},
	models.SlideBallBearing: {SideOffset: 12.5, DepthOffset: 50},
	models.SlideUndermount:  {SideOffset: 6, DepthOffset: 10},
}

// Slide returns the preset for a slide type, falling back to side mount.
func Slide(t models.SlideType) SlidePreset {
	if p, ok := slidePresets[t]; ok {
		return p
	}
	return slidePresets[models.SlideSideMount]
}

// ============================================================
// Legs & trim
// ============================================================

const (
	DefaultLegHeight          = 100.0
	DefaultLegDiameter        = 30.0
	DefaultLegInset           = 30.0
	LegCenterSupportThreshold = 800.0

	DefaultBlendaHeight = 100.0
	DefaultPlinthHeight = 100.0
	DefaultPlinthRecess = 50.0
	DefaultStripHeight  = 30.0
)

// ============================================================
// Corner cabinets
// ============================================================

const (
	CornerClearance = 20.0
)
