package generators

import (
	"furniture-configurator/internal/configurator/calc"
	"furniture-configurator/internal/configurator/interior"
	"furniture-configurator/internal/configurator/models"
)

// ============================================================
// Shared body assembler (center-floor frame)
// ============================================================

type frontMode int

const (
	frontsNone frontMode = iota
	// doors only when doorConfig is set
	frontsConfigured
	// double doors unless doorConfig says otherwise
	frontsDefaultDouble
	// folding doors when configured, else doors
	frontsWall
)

type bodyOptions struct {
	fronts frontMode
	wall   bool
}

// body carries what every sub-generator of one cabinet needs.
type body struct {
	owner     models.Owner
	params    models.CabinetParams
	t         float64
	legOffset float64

	bodyMaterialID  string
	frontMaterialID string
	back            *models.Material
	backMaterialID  string
}

func newBody(cabinetID, furnitureID string, params models.CabinetParams, materials models.CabinetMaterials, bodyMaterial models.Material, back *models.Material, wall bool) body {
	b := body{
		owner:           models.Owner{CabinetID: cabinetID, FurnitureID: furnitureID},
		params:          params,
		t:               bodyMaterial.Thickness,
		legOffset:       calc.LegOffset(params.Legs),
		bodyMaterialID:  firstNonEmpty(materials.BodyMaterialID, bodyMaterial.ID),
		frontMaterialID: firstNonEmpty(materials.FrontMaterialID, materials.BodyMaterialID, bodyMaterial.ID),
		back:            back,
	}
	if wall {
		b.legOffset = 0
	}
	if back != nil {
		b.backMaterialID = firstNonEmpty(materials.BackMaterialID, back.ID)
	}
	return b
}

// assemble appends body panels, interior, fronts, back, side fronts,
// decorative panels and legs, in that order.
func assemble(cabinetID, furnitureID string, params models.CabinetParams, materials models.CabinetMaterials, bodyMaterial models.Material, back *models.Material, opts bodyOptions) []models.Part {
	b := newBody(cabinetID, furnitureID, params, materials, bodyMaterial, back, opts.wall)

	parts := b.panels()
	parts = append(parts, b.interior()...)
	parts = append(parts, b.fronts(opts.fronts)...)
	parts = append(parts, b.backPanel(opts.wall)...)
	parts = append(parts, b.sideFronts()...)
	parts = append(parts, b.decorative()...)
	if !opts.wall {
		parts = append(parts, b.legs()...)
	}
	return parts
}

// panels builds bottom, top and both sides. Inset puts top and bottom between
// the sides; overlay puts them over the full width and shortens the sides.
func (b body) panels() []models.Part {
	p := b.params
	t := b.t

	horizontalWidth := p.Width - 2*t
	sideHeight := p.Height
	if !p.IsInset() {
		horizontalWidth = p.Width
		sideHeight = p.Height - 2*t
	}

	return []models.Part{
		b.owner.Rect("Bottom", models.RoleBottom,
			horizontalWidth, p.Depth, t,
			models.Vec3{0, t/2 + b.legOffset, 0},
			models.RotFlat, b.bodyMaterialID, models.FullBanding()),
		b.owner.Rect("Top", models.RoleTop,
			horizontalWidth, p.Depth, t,
			models.Vec3{0, p.Height - t/2 + b.legOffset, 0},
			models.RotFlat, b.bodyMaterialID, models.FullBanding()),
		b.owner.Rect("Left side", models.RoleLeftSide,
			p.Depth, sideHeight, t,
			models.Vec3{-p.Width/2 + t/2, p.Height/2 + b.legOffset, 0},
			models.RotSide, b.bodyMaterialID, models.FullBanding()),
		b.owner.Rect("Right side", models.RoleRightSide,
			p.Depth, sideHeight, t,
			models.Vec3{p.Width/2 - t/2, p.Height/2 + b.legOffset, 0},
			models.RotSide, b.bodyMaterialID, models.FullBanding()),
	}
}

func (b body) interior() []models.Part {
	root, ok := interior.Normalize(b.params)
	if !ok {
		return nil
	}
	return interior.Generate(interior.Config{
		CabinetID:       b.owner.CabinetID,
		FurnitureID:     b.owner.FurnitureID,
		CabinetWidth:    b.params.Width,
		CabinetHeight:   b.params.Height,
		CabinetDepth:    b.params.Depth,
		BodyThickness:   b.t,
		LegOffset:       b.legOffset,
		BodyMaterialID:  b.bodyMaterialID,
		FrontMaterialID: b.frontMaterialID,
		Root:            root,
		HandleConfig:    b.params.HandleConfig,
	})
}

func (b body) fronts(mode frontMode) []models.Part {
	p := b.params
	door := p.DoorConfig

	switch mode {
	case frontsNone:
		return nil
	case frontsDefaultDouble:
		if door == nil {
			door = &models.DoorConfig{Layout: models.DoorDouble}
		}
	case frontsWall:
		if p.FoldingDoorConfig != nil {
			layout := models.DoorSingle
			if door != nil && door.Layout != "" {
				layout = door.Layout
			}
			return GenerateFoldingDoors(FoldingDoorsConfig{
				Owner:          b.owner,
				CabinetWidth:   p.Width,
				CabinetHeight:  p.Height,
				CabinetDepth:   p.Depth,
				FrontThickness: b.t,
				LegOffset:      b.legOffset,
				MaterialID:     b.frontMaterialID,
				Layout:         layout,
				Folding:        *p.FoldingDoorConfig,
				HandleConfig:   p.HandleConfig,
			})
		}
	}
	if door == nil {
		return nil
	}
	return GenerateDoors(DoorsConfig{
		Owner:          b.owner,
		CabinetWidth:   p.Width,
		CabinetHeight:  p.Height,
		CabinetDepth:   p.Depth,
		FrontThickness: b.t,
		LegOffset:      b.legOffset,
		MaterialID:     b.frontMaterialID,
		Door:           *door,
		HandleConfig:   p.HandleConfig,
	})
}

// backPanel is skipped when the cabinet has no back or no back material.
func (b body) backPanel(wall bool) []models.Part {
	if !b.params.HasBack || b.back == nil {
		return nil
	}
	cfg := BackPanelConfig{
		Owner:         b.owner,
		CabinetWidth:  b.params.Width,
		CabinetHeight: b.params.Height,
		CabinetDepth:  b.params.Depth,
		BodyThickness: b.t,
		BackThickness: b.back.Thickness,
		OverlapRatio:  b.params.BackOverlapRatio,
		LegOffset:     b.legOffset,
		MaterialID:    b.backMaterialID,
	}
	if wall {
		return []models.Part{GenerateBackPanelWithCutouts(cfg, b.params.HangerCutouts)}
	}
	return []models.Part{GenerateBackPanel(cfg)}
}

func (b body) sideFronts() []models.Part {
	if b.params.SideFronts == nil {
		return nil
	}
	return GenerateSideFronts(SideFrontsConfig{
		Owner:         b.owner,
		CabinetWidth:  b.params.Width,
		CabinetHeight: b.params.Height,
		CabinetDepth:  b.params.Depth,
		Thickness:     b.t,
		LegOffset:     b.legOffset,
		MaterialID:    b.frontMaterialID,
		SideFronts:    *b.params.SideFronts,
	})
}

func (b body) decorative() []models.Part {
	if b.params.DecorativePanels == nil {
		return nil
	}
	return GenerateDecorativePanels(DecorativeConfig{
		Owner:         b.owner,
		CabinetWidth:  b.params.Width,
		CabinetHeight: b.params.Height,
		CabinetDepth:  b.params.Depth,
		Thickness:     b.t,
		LegOffset:     b.legOffset,
		MaterialID:    b.frontMaterialID,
		Panels:        *b.params.DecorativePanels,
	})
}

func (b body) legs() []models.Part {
	if b.params.Legs == nil || !b.params.Legs.Enabled {
		return nil
	}
	return GenerateLegs(b.owner, *b.params.Legs, b.params.Width, b.params.Depth)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
