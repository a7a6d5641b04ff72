package generators

import (
	"fmt"
	"math"

	"furniture-configurator/internal/configurator/calc"
	"furniture-configurator/internal/configurator/interior"
	"furniture-configurator/internal/configurator/models"
)

// ============================================================
// Corner cabinets (corner frame)
// ============================================================
//
// Origin at the front-left corner on the floor, X to the right, Y up and
// Z toward the back. The front face of the body is the plane Z = 0.

// GenerateCornerCabinet picks the corner strategy named by cornerConfig.cornerType.
func GenerateCornerCabinet(cabinetID, furnitureID string, params models.CabinetParams, materials models.CabinetMaterials, body models.Material, back *models.Material) ([]models.Part, error) {
	if err := checkType(params, models.CabinetCorner); err != nil {
		return nil, err
	}
	if params.CornerConfig == nil {
		return nil, ErrMissingCornerConfig
	}

	c := newCorner(cabinetID, furnitureID, params, materials, body, back)
	switch params.CornerConfig.CornerType {
	case models.CornerTwoArm:
		return c.twoArm(), nil
	case models.CornerLShaped, "":
		return c.lShaped(), nil
	}
	return nil, fmt.Errorf("%w: corner type %q", ErrUnknownCabinetType, params.CornerConfig.CornerType)
}

type corner struct {
	body
	cfg models.CornerConfig
}

func newCorner(cabinetID, furnitureID string, params models.CabinetParams, materials models.CabinetMaterials, bodyMaterial models.Material, back *models.Material) corner {
	return corner{
		body: newBody(cabinetID, furnitureID, params, materials, bodyMaterial, back, false),
		cfg:  *params.CornerConfig,
	}
}

// toCorner maps a center-frame (x, z) of a w x d footprint whose front-left
// corner sits at (x0, z0) in the corner frame.
func toCorner(x0, z0, w, d float64) func(x, z float64) (float64, float64) {
	return func(x, z float64) (float64, float64) {
		return x0 + w/2 + x, z0 + d/2 - z
	}
}

// ============================================================
// L_SHAPED: single body with a blind front panel
// ============================================================

func (c corner) lShaped() []models.Part {
	p := c.params
	t := c.t
	W, H, D := p.Width, p.Height, p.Depth
	leg := c.legOffset

	bottomMount := mountOr(c.cfg.BottomMount, p.TopBottomPlacement)
	topMount := mountOr(c.cfg.TopMount, p.TopBottomPlacement)

	var parts []models.Part
	horizontal := func(name string, role models.PartRole, mount models.Placement, y float64) models.Part {
		width := W
		if mount == models.PlacementInset {
			width = W - 2*t
		}
		return c.owner.Rect(name, role, width, D, t,
			models.Vec3{W / 2, y, D / 2},
			models.RotFlat, c.bodyMaterialID, models.FullBanding())
	}
	parts = append(parts,
		horizontal("Bottom", models.RoleBottom, bottomMount, leg+t/2),
		horizontal("Top", models.RoleTop, topMount, leg+H-t/2),
	)

	// Sides lose a thickness for every overlay edge.
	sideBottom := leg
	sideHeight := H
	if bottomMount == models.PlacementOverlay {
		sideBottom += t
		sideHeight -= t
	}
	if topMount == models.PlacementOverlay {
		sideHeight -= t
	}
	internalX, externalX := t/2, W-t/2
	if c.cfg.WallSide == models.HingeRight {
		internalX, externalX = externalX, internalX
	}
	side := func(name string, role models.PartRole, x float64) models.Part {
		return c.owner.Rect(name, role, D, sideHeight, t,
			models.Vec3{x, sideBottom + sideHeight/2, D / 2},
			models.RotSide, c.bodyMaterialID, models.FullBanding())
	}
	parts = append(parts,
		side("Internal side", models.RoleCornerInternalSide, internalX),
		side("External side", models.RoleCornerExternalSide, externalX),
	)

	if c.cfg.ShelfCount > 0 {
		parts = append(parts, c.cornerShelves(W-2*t, D, models.Vec3{W / 2, 0, D / 2})...)
	} else {
		parts = append(parts, c.lShapedInterior()...)
	}
	parts = append(parts, c.blindFront()...)

	if p.HasBack && c.back != nil {
		// Full width, covering both side edges.
		parts = append(parts, c.owner.Rect("Back", models.RoleBack,
			W, H, c.back.Thickness,
			models.Vec3{W / 2, leg + H/2, D + c.back.Thickness/2},
			models.RotFront, c.backMaterialID, models.NoBanding()))
	}

	if p.Legs != nil && p.Legs.Enabled {
		parts = append(parts, legsAt(c.owner, *p.Legs, W, D, 0, toCorner(0, 0, W, D))...)
	}
	return parts
}

// lShapedInterior builds the cabinet's interior tree (interiorConfig or the
// legacy shelf/drawer fields) and moves it into the corner frame. Only shelves
// and partitions are kept: the opening is already closed by the blind front.
func (c corner) lShapedInterior() []models.Part {
	root, ok := interior.Normalize(c.params)
	if !ok {
		return nil
	}
	p := c.params
	generated := interior.Generate(interior.Config{
		CabinetID:      c.owner.CabinetID,
		FurnitureID:    c.owner.FurnitureID,
		CabinetWidth:   p.Width,
		CabinetHeight:  p.Height,
		CabinetDepth:   p.Depth,
		BodyThickness:  c.t,
		LegOffset:      c.legOffset,
		BodyMaterialID: c.bodyMaterialID,
		Root:           root,
	})

	to := toCorner(0, 0, p.Width, p.Depth)
	parts := make([]models.Part, 0, len(generated))
	for _, part := range generated {
		switch part.CabinetMetadata.Role {
		case models.RoleShelf, models.RolePartition:
			parts = append(parts, mirrorToCorner(part, to))
		}
	}
	return parts
}

// mirrorToCorner moves a center-frame part into the corner frame. Z flips, so
// banding on the edges facing front or back swaps sides.
func mirrorToCorner(part models.Part, to func(x, z float64) (float64, float64)) models.Part {
	part.Position[0], part.Position[2] = to(part.Position[0], part.Position[2])
	b := &part.EdgeBanding
	if part.Rotation == models.RotSide {
		b.Left, b.Right = b.Right, b.Left
	} else {
		b.Top, b.Bottom = b.Bottom, b.Top
	}
	return part
}

// blindFront closes the dead part of the opening with a fixed panel next to
// the wall and hangs a door over the rest.
func (c corner) blindFront() []models.Part {
	p := c.params
	t := c.t
	W, H := p.Width, p.Height
	leg := c.legOffset
	opening := W - 2*t

	adjacent := positiveOr(c.cfg.AdjacentDepth, p.Depth)
	doorWidth := calc.CornerDoorWidth(opening, adjacent)
	if c.cfg.DoorWidth > 0 {
		doorWidth = math.Min(c.cfg.DoorWidth, opening)
	}
	panelWidth := calc.CornerFrontPanelWidth(opening, doorWidth)
	hasPanel := panelWidth > calc.MinFrontPanelWidth
	if c.cfg.HasFrontPanel != nil && !*c.cfg.HasFrontPanel {
		hasPanel = false
	}
	if !hasPanel {
		doorWidth = opening
	}

	wallLeft := c.cfg.WallSide != models.HingeRight
	var parts []models.Part

	if hasPanel {
		x := t + panelWidth/2
		if !wallLeft {
			x = W - t - panelWidth/2
		}
		parts = append(parts, c.owner.Rect("Front panel", models.RoleCornerFrontPanel,
			panelWidth, H-2*t, t,
			models.Vec3{x, leg + H/2, t / 2},
			models.RotFront, c.frontMaterialID, models.FullBanding()))
	}

	height := H - 2*calc.FrontMargin
	if doorWidth < calc.MinDoorWidth || height < calc.MinFrontHeight {
		return parts
	}
	doorX := W - t - doorWidth/2
	if !wallLeft {
		doorX = t + doorWidth/2
	}
	hinge := c.cfg.HingeSide
	if hinge == "" {
		// Hinge on the external side, away from the wall.
		hinge = models.HingeRight
		if !wallLeft {
			hinge = models.HingeLeft
		}
	}

	door := c.owner.Rect("Door", models.RoleDoor,
		doorWidth, height, t,
		models.Vec3{doorX, leg + H/2, -t / 2},
		models.RotFront, c.frontMaterialID, models.FullBanding())
	door.CabinetMetadata.Index = models.IntPtr(0)
	door.CabinetMetadata.DoorMetadata = &models.DoorMetadata{
		HingeSide:        hinge,
		OpeningDirection: models.OpenHorizontal,
		Layout:           models.DoorSingle,
	}
	door.CabinetMetadata.HandleMetadata = calc.HandlePlacement(p.HandleConfig, doorWidth, height, models.FrontSingleDoor, hinge)
	return append(parts, door)
}

// cornerShelves spaces shelves evenly between bottom and top. center gives
// the X/Z center of the shelf footprint; the front edge is set back from Z = 0.
func (c corner) cornerShelves(width, depth float64, center models.Vec3) []models.Part {
	count := c.shelfCount()
	if count <= 0 {
		return nil
	}
	t := c.t
	shelfDepth := calc.ShelfDepth(models.DepthFull, 0, depth)
	positions := calc.CornerShelfPositions(c.legOffset+t, c.params.Height-2*t, count)

	parts := make([]models.Part, 0, len(positions))
	for i, y := range positions {
		part := c.owner.Rect(fmt.Sprintf("Shelf %d", i+1), models.RoleShelf,
			width, shelfDepth, t,
			models.Vec3{center[0], y, center[2] + (depth-shelfDepth)/2},
			models.RotFlat, c.bodyMaterialID,
			// Local top edge faces the front in this frame.
			models.EdgeBanding{Type: models.EdgeBandingRect, Top: true})
		part.CabinetMetadata.Index = models.IntPtr(i)
		parts = append(parts, part)
	}
	return parts
}

func (c corner) shelfCount() int {
	if c.cfg.ShelfCount > 0 {
		return c.cfg.ShelfCount
	}
	return c.params.ShelfCount
}

func mountOr(m, fallback models.Placement) models.Placement {
	if m == "" {
		m = fallback
	}
	if m == models.PlacementOverlay {
		return m
	}
	return models.PlacementInset
}
