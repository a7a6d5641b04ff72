package generators

import (
	"furniture-configurator/internal/configurator/calc"
	"furniture-configurator/internal/configurator/models"

	"gonum.org/v1/gonum/spatial/r2"
)

// ============================================================
// Back panel
// ============================================================

type BackPanelConfig struct {
	Owner         models.Owner
	CabinetWidth  float64
	CabinetHeight float64
	CabinetDepth  float64
	BodyThickness float64
	BackThickness float64
	OverlapRatio  float64
	LegOffset     float64
	MaterialID    string
}

// GenerateBackPanel builds an overlap-mounted back that sits entirely behind
// the body. The back face is never visible, so it gets no banding.
func GenerateBackPanel(cfg BackPanelConfig) models.Part {
	width, height, _, _ := calc.BackPanelDimensions(cfg.CabinetWidth, cfg.CabinetHeight, cfg.BodyThickness, cfg.OverlapRatio)
	return cfg.Owner.Rect("Back", models.RoleBack,
		width, height, cfg.BackThickness,
		cfg.position(),
		models.RotFront, cfg.MaterialID, models.NoBanding())
}

// GenerateBackPanelWithCutouts notches both top corners for hanger fittings.
// It falls back to the plain panel when cutouts are off or do not fit.
func GenerateBackPanelWithCutouts(cfg BackPanelConfig, cutouts *models.HangerCutoutConfig) models.Part {
	plain := GenerateBackPanel(cfg)
	if cutouts == nil || !cutouts.Enabled {
		return plain
	}

	points, ok := hangerOutline(plain.Width, plain.Height, *cutouts)
	if !ok {
		return plain
	}
	return cfg.Owner.Polygon("Back", models.RoleBack,
		points, cfg.BackThickness,
		cfg.position(),
		models.RotFront, cfg.MaterialID,
		models.EdgeBanding{Type: models.EdgeBandingGeneric})
}

func (cfg BackPanelConfig) position() models.Vec3 {
	return models.Vec3{0, cfg.CabinetHeight/2 + cfg.LegOffset, -cfg.CabinetDepth/2 - cfg.BackThickness/2}
}

// hangerOutline returns the 12-point clockwise outline of a w x h panel with a
// rectangular notch open to the top edge near each top corner.
func hangerOutline(w, h float64, c models.HangerCutoutConfig) ([]models.Point, bool) {
	cw := positiveOr(c.Width, calc.DefaultHangerCutoutWidth)
	ch := positiveOr(c.Height, calc.DefaultHangerCutoutHeight)
	inset := positiveOr(c.HorizontalInset, calc.DefaultHangerCutoutInset)
	if inset+cw > w/2 || ch >= h {
		return nil, false
	}

	left, right := -w/2, w/2
	bottom, top := -h/2, h/2
	notchBottom := top - ch

	outline := []r2.Vec{
		{X: left, Y: bottom},
		{X: left, Y: top},
		{X: left + inset, Y: top},
		{X: left + inset, Y: notchBottom},
		{X: left + inset + cw, Y: notchBottom},
		{X: left + inset + cw, Y: top},
		{X: right - inset - cw, Y: top},
		{X: right - inset - cw, Y: notchBottom},
		{X: right - inset, Y: notchBottom},
		{X: right - inset, Y: top},
		{X: right, Y: top},
		{X: right, Y: bottom},
	}
	return toPoints(outline), true
}

func toPoints(vs []r2.Vec) []models.Point {
	out := make([]models.Point, len(vs))
	for i, v := range vs {
		out[i] = models.Point{X: v.X, Y: v.Y}
	}
	return out
}

func positiveOr(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}
