package interior

import (
	"testing"

	"furniture-configurator/internal/configurator/calc"
	"furniture-configurator/internal/configurator/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(content models.ZoneContentType, ratio float64) models.InteriorZone {
	return models.InteriorZone{
		ContentType:  content,
		HeightConfig: models.HeightConfig{Mode: models.HeightRatio, Ratio: ratio},
	}
}

func exact(content models.ZoneContentType, height float64) models.InteriorZone {
	return models.InteriorZone{
		ContentType:  content,
		HeightConfig: models.HeightConfig{Mode: models.HeightExact, ExactHeight: height},
	}
}

func rows(children ...models.InteriorZone) models.InteriorZone {
	return models.InteriorZone{
		ContentType:       models.ZoneNested,
		DivisionDirection: models.DivisionHorizontal,
		HeightConfig:      models.HeightConfig{Mode: models.HeightRatio, Ratio: 1},
		Children:          children,
		Partitions:        make([]models.PartitionConfig, len(children)-1),
	}
}

func columns(children ...models.InteriorZone) models.InteriorZone {
	z := rows(children...)
	z.DivisionDirection = models.DivisionVertical
	return z
}

func enableAll(z models.InteriorZone) models.InteriorZone {
	for i := range z.Partitions {
		z.Partitions[i].Enabled = true
	}
	return z
}

var testSpan = Span{StartX: -382, Width: 764, StartY: 18, Height: 684}

func TestCalculateBounds_SingleLeaf(t *testing.T) {
	bounds := CalculateBounds(leaf(models.ZoneShelves, 1), testSpan, 18)
	require.Len(t, bounds, 1)
	assert.Equal(t, testSpan.StartY, bounds[0].StartY)
	assert.Equal(t, testSpan.Height, bounds[0].Height)
	assert.Equal(t, 0, bounds[0].Depth)
	assert.Empty(t, bounds[0].Path)
}

func TestCalculateBounds_RowsBottomToTop(t *testing.T) {
	root := rows(leaf(models.ZoneDrawers, 1), leaf(models.ZoneShelves, 2), leaf(models.ZoneEmpty, 1))
	bounds := CalculateBounds(root, testSpan, 18)
	require.Len(t, bounds, 3)

	assert.InDelta(t, 171, bounds[0].Height, 1e-9)
	assert.InDelta(t, 342, bounds[1].Height, 1e-9)
	assert.InDelta(t, 18, bounds[0].StartY, 1e-9)
	assert.InDelta(t, 18+171, bounds[1].StartY, 1e-9)
	assert.InDelta(t, 18+513, bounds[2].StartY, 1e-9)
	assert.Equal(t, models.ZoneDrawers, bounds[0].Zone.ContentType)
	assert.Equal(t, []int{2}, bounds[2].Path)
}

func TestCalculateBounds_ExactHeightsFirst(t *testing.T) {
	root := rows(exact(models.ZoneDrawers, 200), leaf(models.ZoneShelves, 1))
	bounds := CalculateBounds(root, testSpan, 18)
	require.Len(t, bounds, 2)
	assert.InDelta(t, 200, bounds[0].Height, 1e-9)
	assert.InDelta(t, 484, bounds[1].Height, 1e-9)
}

func TestCalculateBounds_OverflowingExactHeightsScaleDown(t *testing.T) {
	root := rows(exact(models.ZoneDrawers, 600), exact(models.ZoneShelves, 600), leaf(models.ZoneEmpty, 1))
	bounds := CalculateBounds(root, testSpan, 18)
	require.Len(t, bounds, 3)
	assert.InDelta(t, 342, bounds[0].Height, 1e-9)
	assert.InDelta(t, 342, bounds[1].Height, 1e-9)
	assert.InDelta(t, 0, bounds[2].Height, 1e-9)
}

func TestCalculateBounds_ColumnsWithPartitions(t *testing.T) {
	a := leaf(models.ZoneShelves, 1)
	a.WidthConfig = &models.WidthConfig{Mode: models.WidthFixed, FixedWidth: 300}
	b := leaf(models.ZoneDrawers, 1)
	b.WidthConfig = &models.WidthConfig{Mode: models.WidthProportional, Ratio: 1}
	root := enableAll(columns(a, b))

	layout := CalculateLayout(root, testSpan, 18)
	require.Len(t, layout.Leaves, 2)
	require.Len(t, layout.Partitions, 1)

	assert.InDelta(t, 300, layout.Leaves[0].Width, 1e-9)
	assert.InDelta(t, 764-300-18, layout.Leaves[1].Width, 1e-9)
	assert.InDelta(t, -382+300, layout.Partitions[0].StartX, 1e-9)
	assert.InDelta(t, -382+318, layout.Leaves[1].StartX, 1e-9)
	assert.Equal(t, testSpan.Height, layout.Leaves[1].Height)
}

func TestCalculateBounds_CoverageProperty(t *testing.T) {
	// Trees of every nesting depth up to MaxZoneDepth, alternating directions,
	// some partitions enabled.
	for depth := 0; depth <= calc.MaxZoneDepth; depth++ {
		root := nestedTree(depth, 0)
		layout := CalculateLayout(root, testSpan, 18)

		area := 0.0
		for _, b := range layout.Leaves {
			area += b.Width * b.Height
		}
		for _, p := range layout.Partitions {
			area += p.Width * p.Height
		}
		assert.InDelta(t, testSpan.Width*testSpan.Height, area, 1e-6, "depth %d", depth)

		for _, b := range layout.Leaves {
			assert.GreaterOrEqual(t, b.StartY, testSpan.StartY-1e-9)
			assert.LessOrEqual(t, b.StartY+b.Height, testSpan.StartY+testSpan.Height+1e-9)
			assert.GreaterOrEqual(t, b.StartX, testSpan.StartX-1e-9)
			assert.LessOrEqual(t, b.StartX+b.Width, testSpan.StartX+testSpan.Width+1e-9)
		}
	}
}

func TestCalculateBounds_RowHeightsSumToParent(t *testing.T) {
	root := enableAll(rows(
		exact(models.ZoneDrawers, 150),
		leaf(models.ZoneShelves, 2),
		rows(leaf(models.ZoneEmpty, 1), leaf(models.ZoneShelves, 3)),
	))
	layout := CalculateLayout(root, testSpan, 18)

	sum := 0.0
	for _, b := range layout.Leaves {
		sum += b.Height
	}
	for _, p := range layout.Partitions {
		sum += p.Height
	}
	assert.InDelta(t, testSpan.Height, sum, 1e-9)
}

func TestCalculateBounds_TooDeepBecomesEmpty(t *testing.T) {
	root := nestedTree(calc.MaxZoneDepth+2, 0)
	for _, b := range CalculateBounds(root, testSpan, 18) {
		assert.LessOrEqual(t, b.Depth, calc.MaxZoneDepth)
	}
}

func nestedTree(levels, depth int) models.InteriorZone {
	if levels == 0 {
		return leaf(models.ZoneShelves, 1)
	}
	var z models.InteriorZone
	if depth%2 == 0 {
		z = rows(exact(models.ZoneDrawers, 80), nestedTree(levels-1, depth+1), leaf(models.ZoneEmpty, 2))
	} else {
		z = columns(leaf(models.ZoneShelves, 1), nestedTree(levels-1, depth+1))
	}
	z.Partitions[0].Enabled = true
	z.Depth = depth
	return z
}

func TestDistribute(t *testing.T) {
	sizes := distribute(100, []sizeSpec{{fixed: true, value: 30}, {value: 1}, {value: 3}})
	assert.InDeltaSlice(t, []float64{30, 17.5, 52.5}, sizes, 1e-9)

	onlyFixed := distribute(100, []sizeSpec{{fixed: true, value: 10}, {fixed: true, value: 30}})
	assert.InDeltaSlice(t, []float64{25, 75}, onlyFixed, 1e-9)

	assert.Empty(t, distribute(100, nil))
}
