package interior

import (
	"fmt"
	"math"

	"furniture-configurator/internal/configurator/calc"
	"furniture-configurator/internal/configurator/drawers"
	"furniture-configurator/internal/configurator/models"
)

// ============================================================
// Interior engine
// ============================================================

// Config describes the cabinet body the interior is built into. Positions use
// the center-floor frame.
type Config struct {
	CabinetID     string
	FurnitureID   string
	CabinetWidth  float64
	CabinetHeight float64
	CabinetDepth  float64
	BodyThickness float64
	LegOffset     float64

	BodyMaterialID  string
	FrontMaterialID string

	Root         models.InteriorZone
	HandleConfig *models.HandleConfig
}

// Span returns the free space between the body panels.
func (c Config) Span() Span {
	t := c.BodyThickness
	return Span{
		StartX: -c.CabinetWidth/2 + t,
		Width:  c.CabinetWidth - 2*t,
		StartY: c.LegOffset + t,
		Height: c.CabinetHeight - 2*t,
	}
}

// Generate lays out the zone tree and emits shelves, drawers and partitions.
func Generate(cfg Config) []models.Part {
	layout := CalculateLayout(cfg.Root, cfg.Span(), cfg.BodyThickness)
	owner := models.Owner{CabinetID: cfg.CabinetID, FurnitureID: cfg.FurnitureID}

	var parts []models.Part
	shelfIndex := 0
	drawerIndex := 0
	for _, leaf := range layout.Leaves {
		switch leaf.Zone.ContentType {
		case models.ZoneShelves:
			shelves := shelvesForLeaf(cfg, owner, leaf, shelfIndex)
			shelfIndex += len(shelves)
			parts = append(parts, shelves...)
		case models.ZoneDrawers:
			if leaf.Zone.DrawerConfig == nil {
				continue
			}
			parts = append(parts, drawersForLeaf(cfg, layout, leaf, drawerIndex)...)
			drawerIndex += drawers.BoxCount(*leaf.Zone.DrawerConfig)
		}
	}

	for i, pb := range layout.Partitions {
		parts = append(parts, partitionPart(cfg, owner, pb, i))
	}
	return parts
}

// drawersForLeaf runs the drawer engine as if the leaf were a cabinet of its
// own (height = leaf height + two body thicknesses) and moves the result into
// the leaf's slot.
func drawersForLeaf(cfg Config, layout Layout, leaf ZoneBounds, indexOffset int) []models.Part {
	t := cfg.BodyThickness
	dc := drawers.Config{
		CabinetID:         cfg.CabinetID,
		FurnitureID:       cfg.FurnitureID,
		CabinetWidth:      leaf.Width + 2*t,
		CabinetHeight:     leaf.Height + 2*t,
		CabinetDepth:      cfg.CabinetDepth,
		BodyThickness:     t,
		BodyMaterialID:    cfg.BodyMaterialID,
		FrontMaterialID:   cfg.FrontMaterialID,
		Drawers:           *leaf.Zone.DrawerConfig,
		HandleConfig:      cfg.HandleConfig,
		XOffset:           leaf.CenterX(),
		DrawerIndexOffset: indexOffset,
	}
	if math.Abs(leaf.Width-(cfg.CabinetWidth-2*t)) > 1e-6 {
		// Column leaf: each front edge covers half of the panel next to it,
		// or stops half a gap short when there is no panel.
		left := frontReach(leftNeighbour(cfg, layout, leaf))
		right := frontReach(rightNeighbour(cfg, layout, leaf))
		dc.FrontWidth = leaf.Width + left + right
		dc.FrontXOffset = (right - left) / 2
	}

	parts := drawers.Generate(dc)
	shift := leaf.StartY - t
	for i := range parts {
		parts[i].Position[1] += shift
	}
	return parts
}

func frontReach(neighbour float64) float64 {
	return neighbour/2 - calc.DoorGap/2
}

// leftNeighbour returns the thickness of the panel touching the leaf's left
// edge: a body side, an enabled partition, or nothing.
func leftNeighbour(cfg Config, layout Layout, leaf ZoneBounds) float64 {
	span := cfg.Span()
	if math.Abs(leaf.StartX-span.StartX) < 1e-6 {
		return cfg.BodyThickness
	}
	for _, p := range layout.Partitions {
		if p.Direction == models.DivisionVertical && math.Abs(p.StartX+p.Width-leaf.StartX) < 1e-6 && overlapsY(p, leaf) {
			return p.Width
		}
	}
	return 0
}

func rightNeighbour(cfg Config, layout Layout, leaf ZoneBounds) float64 {
	span := cfg.Span()
	end := leaf.StartX + leaf.Width
	if math.Abs(end-(span.StartX+span.Width)) < 1e-6 {
		return cfg.BodyThickness
	}
	for _, p := range layout.Partitions {
		if p.Direction == models.DivisionVertical && math.Abs(p.StartX-end) < 1e-6 && overlapsY(p, leaf) {
			return p.Width
		}
	}
	return 0
}

func overlapsY(p PartitionBounds, leaf ZoneBounds) bool {
	return p.StartY < leaf.StartY+leaf.Height-1e-6 && leaf.StartY < p.StartY+p.Height-1e-6
}

// ============================================================
// Shelves
// ============================================================

// shelvesForLeaf spaces shelves evenly over the leaf, first one nearest the bottom.
func shelvesForLeaf(cfg Config, owner models.Owner, leaf ZoneBounds, indexOffset int) []models.Part {
	sc := leaf.Zone.ShelvesConfig
	if sc == nil || sc.Count <= 0 {
		return nil
	}

	positions := calc.EvenShelfPositions(leaf.StartY, leaf.Height, sc.Count)
	parts := make([]models.Part, 0, len(positions))
	for i, y := range positions {
		preset, custom, materialID := shelfSettings(*sc, i)
		if materialID == "" {
			materialID = cfg.BodyMaterialID
		}
		depth := calc.ShelfDepth(preset, custom, cfg.CabinetDepth)

		index := indexOffset + i
		part := owner.Rect(
			fmt.Sprintf("Shelf %d", index+1),
			models.RoleShelf,
			leaf.Width, depth, cfg.BodyThickness,
			models.Vec3{leaf.CenterX(), y, cfg.CabinetDepth/2 - depth/2},
			models.RotFlat,
			materialID,
			models.FrontEdgeBanding(),
		)
		part.CabinetMetadata.Index = models.IntPtr(index)
		parts = append(parts, part)
	}
	return parts
}

// shelfSettings resolves depth and material for shelf i. MANUAL mode takes
// per-shelf overrides and falls back to the uniform values.
func shelfSettings(sc models.ShelfConfig, i int) (models.DepthPreset, float64, string) {
	preset, custom, materialID := sc.DepthPreset, sc.CustomDepth, sc.MaterialID
	if sc.Mode != models.ShelfManual || i >= len(sc.Shelves) {
		return preset, custom, materialID
	}
	item := sc.Shelves[i]
	if item.DepthPreset != "" {
		preset, custom = item.DepthPreset, item.CustomDepth
	}
	if item.MaterialID != "" {
		materialID = item.MaterialID
	}
	return preset, custom, materialID
}

// ============================================================
// Partitions
// ============================================================

func partitionPart(cfg Config, owner models.Owner, pb PartitionBounds, index int) models.Part {
	depth := calc.ShelfDepth(pb.Config.DepthPreset, pb.Config.CustomDepth, cfg.CabinetDepth)
	materialID := pb.Config.MaterialID
	if materialID == "" {
		materialID = cfg.BodyMaterialID
	}
	z := cfg.CabinetDepth/2 - depth/2
	name := fmt.Sprintf("Partition %d", index+1)

	var part models.Part
	if pb.Direction == models.DivisionVertical {
		part = owner.Rect(name, models.RolePartition,
			depth, pb.Height, pb.Width,
			models.Vec3{pb.StartX + pb.Width/2, pb.StartY + pb.Height/2, z},
			models.RotSide, materialID,
			models.EdgeBanding{Type: models.EdgeBandingRect, Left: true})
	} else {
		part = owner.Rect(name, models.RolePartition,
			pb.Width, depth, pb.Height,
			models.Vec3{pb.StartX + pb.Width/2, pb.StartY + pb.Height/2, z},
			models.RotFlat, materialID,
			models.FrontEdgeBanding())
	}
	part.CabinetMetadata.Index = models.IntPtr(index)
	return part
}
