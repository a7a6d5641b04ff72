// Package interior lays out the recursive zone tree of a cabinet interior and
// fills its leaves with shelves and drawers.
package interior

import (
	"furniture-configurator/internal/configurator/calc"
	"furniture-configurator/internal/configurator/models"
)

// ============================================================
// Bounds
// ============================================================

// Span is an axis-aligned rectangle in the cabinet's front plane (X, Y).
type Span struct {
	StartX float64
	Width  float64
	StartY float64
	Height float64
}

// ZoneBounds is the slot assigned to one leaf zone.
type ZoneBounds struct {
	Zone   models.InteriorZone
	Path   []int
	StartX float64
	Width  float64
	StartY float64
	Height float64
	Depth  int
}

func (b ZoneBounds) CenterX() float64 { return b.StartX + b.Width/2 }

// PartitionBounds is the slot reserved for an enabled partition between siblings.
type PartitionBounds struct {
	Config    models.PartitionConfig
	Direction models.Direction
	Path      []int
	Index     int
	StartX    float64
	Width     float64
	StartY    float64
	Height    float64
}

type Layout struct {
	Leaves     []ZoneBounds
	Partitions []PartitionBounds
}

// CalculateBounds returns one record per leaf zone, in tree order.
func CalculateBounds(root models.InteriorZone, span Span, partitionThickness float64) []ZoneBounds {
	return CalculateLayout(root, span, partitionThickness).Leaves
}

// CalculateLayout walks the tree like a minimal flex-box: each NESTED node splits
// its span among its children, fixed sizes first and the rest by ratio. Enabled
// partitions reserve partitionThickness between siblings. Leaves and partitions
// together cover the root span exactly.
func CalculateLayout(root models.InteriorZone, span Span, partitionThickness float64) Layout {
	var l Layout
	l.walk(root, nil, span, 0, partitionThickness)
	return l
}

func (l *Layout) walk(zone models.InteriorZone, path []int, span Span, depth int, thickness float64) {
	if zone.ContentType == models.ZoneNested && len(zone.Children) > 0 && depth >= calc.MaxZoneDepth {
		// Too deep to split further.
		zone.ContentType = models.ZoneEmpty
		zone.Children = nil
		zone.Partitions = nil
	}

	if zone.IsLeaf() {
		l.Leaves = append(l.Leaves, ZoneBounds{
			Zone:   zone,
			Path:   path,
			StartX: span.StartX,
			Width:  span.Width,
			StartY: span.StartY,
			Height: span.Height,
			Depth:  depth,
		})
		return
	}

	vertical := zone.DivisionDirection == models.DivisionVertical
	n := len(zone.Children)

	gaps := 0.0
	for i := 0; i < n-1; i++ {
		if partitionEnabled(zone, i) {
			gaps += thickness
		}
	}

	total := span.Height
	if vertical {
		total = span.Width
	}
	available := total - gaps
	if available < 0 {
		available = 0
	}

	specs := make([]sizeSpec, n)
	for i, child := range zone.Children {
		if vertical {
			specs[i] = widthSpec(child)
		} else {
			specs[i] = heightSpec(child)
		}
	}
	sizes := distribute(available, specs)

	cursor := span.StartY
	if vertical {
		cursor = span.StartX
	}
	for i, child := range zone.Children {
		childPath := appendPath(path, i)
		childSpan := span
		if vertical {
			childSpan.StartX, childSpan.Width = cursor, sizes[i]
		} else {
			childSpan.StartY, childSpan.Height = cursor, sizes[i]
		}
		l.walk(child, childPath, childSpan, depth+1, thickness)
		cursor += sizes[i]

		if i < n-1 && partitionEnabled(zone, i) {
			pb := PartitionBounds{
				Config:    zone.Partitions[i],
				Direction: zone.DivisionDirection,
				Path:      path,
				Index:     i,
				StartX:    span.StartX,
				Width:     span.Width,
				StartY:    span.StartY,
				Height:    span.Height,
			}
			if vertical {
				pb.StartX, pb.Width = cursor, thickness
			} else {
				pb.StartY, pb.Height = cursor, thickness
			}
			l.Partitions = append(l.Partitions, pb)
			cursor += thickness
		}
	}
}

func partitionEnabled(zone models.InteriorZone, i int) bool {
	return i < len(zone.Partitions) && zone.Partitions[i].Enabled
}

func appendPath(path []int, i int) []int {
	out := make([]int, len(path)+1)
	copy(out, path)
	out[len(path)] = i
	return out
}

// ============================================================
// Distribution
// ============================================================

type sizeSpec struct {
	fixed bool
	value float64
}

func heightSpec(z models.InteriorZone) sizeSpec {
	if z.HeightConfig.Mode == models.HeightExact && z.HeightConfig.ExactHeight > 0 {
		return sizeSpec{fixed: true, value: z.HeightConfig.ExactHeight}
	}
	return sizeSpec{value: positiveOr(z.HeightConfig.Ratio, 1)}
}

func widthSpec(z models.InteriorZone) sizeSpec {
	if z.WidthConfig == nil {
		return sizeSpec{value: 1}
	}
	if z.WidthConfig.Mode == models.WidthFixed && z.WidthConfig.FixedWidth > 0 {
		return sizeSpec{fixed: true, value: z.WidthConfig.FixedWidth}
	}
	return sizeSpec{value: positiveOr(z.WidthConfig.Ratio, 1)}
}

func positiveOr(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}

// distribute splits available among specs so the sizes always sum to available.
// Fixed sizes are honoured when they fit; the remainder goes to ratio entries.
// Without ratio entries the fixed sizes are scaled to fill the span, and fixed
// sizes that overflow are scaled down.
func distribute(available float64, specs []sizeSpec) []float64 {
	sizes := make([]float64, len(specs))
	if len(specs) == 0 {
		return sizes
	}

	var fixedSum, ratioSum float64
	ratioCount := 0
	for _, s := range specs {
		if s.fixed {
			fixedSum += s.value
		} else {
			ratioSum += s.value
			ratioCount++
		}
	}

	fixedScale := 1.0
	if fixedSum > available || (ratioCount == 0 && fixedSum > 0) {
		fixedScale = available / fixedSum
	}
	remaining := available - fixedSum*fixedScale
	if remaining < 0 {
		remaining = 0
	}

	for i, s := range specs {
		if s.fixed {
			sizes[i] = s.value * fixedScale
		} else {
			sizes[i] = remaining * s.value / ratioSum
		}
	}
	return sizes
}
