// Package drawers turns a zone-based drawer configuration into fronts, drawer
// boxes and the shelves that sit above short boxes.
package drawers

import (
	"fmt"

	"furniture-configurator/internal/configurator/calc"
	"furniture-configurator/internal/configurator/models"
)

// ============================================================
// Drawer engine
// ============================================================

// Config describes the envelope the drawers live in. Y values produced by
// Generate are measured from the bottom of that envelope.
type Config struct {
	CabinetID      string
	FurnitureID    string
	CabinetWidth   float64
	CabinetHeight  float64
	CabinetDepth   float64
	BodyThickness  float64
	FrontThickness float64

	BodyMaterialID  string
	FrontMaterialID string

	Drawers      models.DrawerConfiguration
	HandleConfig *models.HandleConfig

	// FrontWidth overrides the default front width (cabinet width minus margins).
	FrontWidth float64
	// XOffset moves everything sideways, for drawers placed in a column.
	XOffset float64
	// FrontXOffset shifts only the fronts, for columns whose two edges
	// overlap different neighbours.
	FrontXOffset float64
	// DrawerIndexOffset keeps drawer indices unique across several calls.
	DrawerIndexOffset int
}

type generator struct {
	cfg   Config
	owner models.Owner

	boxWidth  float64
	boxDepth  float64
	thickness float64
}

// Generate processes zones bottom-to-top. Two cursors advance per zone: one
// for the box stack inside the body and one for the visible fronts.
func Generate(cfg Config) []models.Part {
	zones := cfg.Drawers.Zones
	if len(zones) == 0 {
		return nil
	}

	g := &generator{
		cfg:       cfg,
		owner:     models.Owner{CabinetID: cfg.CabinetID, FurnitureID: cfg.FurnitureID},
		thickness: cfg.BodyThickness,
	}
	g.boxWidth, g.boxDepth = calc.DrawerBoxDimensions(cfg.CabinetWidth, cfg.CabinetDepth, cfg.BodyThickness, cfg.Drawers.SlideType)

	interiorHeight := cfg.CabinetHeight - 2*cfg.BodyThickness
	frontHeight := cfg.CabinetHeight - 2*calc.FrontMargin

	totalRatio := 0.0
	for _, z := range zones {
		totalRatio += zoneRatio(z)
	}

	var parts []models.Part
	currentBoxY := cfg.BodyThickness
	currentFrontY := calc.FrontMargin
	drawerIndex := cfg.DrawerIndexOffset

	for zi, zone := range zones {
		share := zoneRatio(zone) / totalRatio
		zoneInteriorHeight := interiorHeight * share
		zoneFrontHeight := frontHeight * share
		isTop := zi == len(zones)-1

		if zone.Front != nil {
			if front, ok := g.front(zi, zone, currentFrontY, zoneFrontHeight, isTop); ok {
				parts = append(parts, front)
			}
		}

		effectiveBoxHeight := zoneInteriorHeight * zone.EffectiveBoxToFrontRatio()
		boxes := zone.Boxes
		if len(boxes) == 0 {
			boxes = []models.DrawerBox{{HeightRatio: 1}}
		}
		boxTotal := 0.0
		for _, b := range boxes {
			boxTotal += boxRatio(b)
		}

		boxY := currentBoxY
		for bi, b := range boxes {
			space := effectiveBoxHeight * boxRatio(b) / boxTotal
			closed := zone.Front == nil || bi > 0
			parts = append(parts, g.box(drawerIndex, boxY, space, closed)...)
			boxY += space
			drawerIndex++
		}

		if zone.EffectiveBoxToFrontRatio() < 1 && zone.AboveBoxContent != nil && len(zone.AboveBoxContent.Shelves) > 0 {
			boxTopY := currentBoxY + effectiveBoxHeight
			parts = append(parts, g.shelvesAboveBox(zi, boxTopY, zoneInteriorHeight-effectiveBoxHeight, zone.AboveBoxContent.Shelves)...)
		}

		currentBoxY += zoneInteriorHeight
		currentFrontY += zoneFrontHeight
	}

	return parts
}

// BoxCount returns how many drawer boxes a configuration produces.
func BoxCount(cfg models.DrawerConfiguration) int {
	n := 0
	for _, z := range cfg.Zones {
		if len(z.Boxes) == 0 {
			n++
			continue
		}
		n += len(z.Boxes)
	}
	return n
}

func zoneRatio(z models.DrawerZone) float64 {
	if z.HeightRatio <= 0 {
		return 1
	}
	return z.HeightRatio
}

func boxRatio(b models.DrawerBox) float64 {
	if b.HeightRatio <= 0 {
		return 1
	}
	return b.HeightRatio
}

// ============================================================
// Fronts
// ============================================================

func (g *generator) front(zoneIndex int, zone models.DrawerZone, startY, zoneFrontHeight float64, isTop bool) (models.Part, bool) {
	height := zoneFrontHeight
	if !isTop {
		height -= calc.DoorGap
	}
	width := g.cfg.FrontWidth
	if width <= 0 {
		width = g.cfg.CabinetWidth - 2*calc.FrontMargin
	}
	if height < calc.MinFrontHeight || width < calc.MinDoorWidth {
		return models.Part{}, false
	}

	frontThickness := g.frontThickness()
	materialID := g.cfg.FrontMaterialID
	if zone.Front.MaterialID != "" {
		materialID = zone.Front.MaterialID
	}

	part := g.owner.Rect(
		fmt.Sprintf("Drawer front %d", zoneIndex+1),
		models.RoleDrawerFront,
		width, height, frontThickness,
		models.Vec3{g.cfg.XOffset + g.cfg.FrontXOffset, startY + height/2, g.cfg.CabinetDepth/2 + frontThickness/2},
		models.RotFront,
		materialID,
		models.FullBanding(),
	)
	part.CabinetMetadata.Index = models.IntPtr(zoneIndex)

	handle := zone.Front.HandleConfig
	if handle == nil {
		handle = g.cfg.HandleConfig
	}
	part.CabinetMetadata.HandleMetadata = calc.HandlePlacement(handle, width, height, models.FrontDrawer, "")
	return part, true
}

func (g *generator) frontThickness() float64 {
	if g.cfg.FrontThickness > 0 {
		return g.cfg.FrontThickness
	}
	return g.cfg.BodyThickness
}

// ============================================================
// Shelves above a short box
// ============================================================

// shelvesAboveBox places the first shelf right on top of the box stack and
// spreads the rest over the free space above it.
func (g *generator) shelvesAboveBox(zoneIndex int, boxTopY, remaining float64, shelves []models.ShelfItem) []models.Part {
	width := g.cfg.CabinetWidth - 2*g.thickness
	count := float64(len(shelves))

	parts := make([]models.Part, 0, len(shelves))
	for idx, s := range shelves {
		depth := calc.ShelfDepth(s.DepthPreset, s.CustomDepth, g.cfg.CabinetDepth)
		materialID := s.MaterialID
		if materialID == "" {
			materialID = g.cfg.BodyMaterialID
		}
		y := boxTopY + float64(idx)/count*remaining

		part := g.owner.Rect(
			fmt.Sprintf("Drawer zone %d shelf %d", zoneIndex+1, idx+1),
			models.RoleShelf,
			width, depth, g.thickness,
			models.Vec3{g.cfg.XOffset, y, g.cfg.CabinetDepth/2 - depth/2},
			models.RotFlat,
			materialID,
			models.FrontEdgeBanding(),
		)
		part.CabinetMetadata.Index = models.IntPtr(idx)
		parts = append(parts, part)
	}
	return parts
}
