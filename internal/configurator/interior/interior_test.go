package interior

import (
	"testing"

	"furniture-configurator/internal/configurator/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig(root models.InteriorZone) Config {
	return Config{
		CabinetID:       "cab-1",
		FurnitureID:     "f-1",
		CabinetWidth:    800,
		CabinetHeight:   720,
		CabinetDepth:    580,
		BodyThickness:   18,
		BodyMaterialID:  "body",
		FrontMaterialID: "front",
		Root:            root,
	}
}

func shelves(count int) *models.ShelfConfig {
	return &models.ShelfConfig{Mode: models.ShelfUniform, Count: count, DepthPreset: models.DepthFull}
}

func oneDrawer() *models.DrawerConfiguration {
	return &models.DrawerConfiguration{
		SlideType: models.SlideSideMount,
		Zones: []models.DrawerZone{
			{HeightRatio: 1, Front: &models.DrawerFront{}, Boxes: []models.DrawerBox{{HeightRatio: 1}}},
		},
	}
}

func TestGenerate_SingleShelfAtMidHeight(t *testing.T) {
	root := leaf(models.ZoneShelves, 1)
	root.ShelvesConfig = shelves(1)

	parts := Generate(baseConfig(root))
	require.Len(t, parts, 1)

	shelf := parts[0]
	assert.Equal(t, models.RoleShelf, shelf.CabinetMetadata.Role)
	assert.InDelta(t, 360, shelf.Position[1], 1e-9)
	assert.InDelta(t, 764, shelf.Width, 1e-9)
	assert.InDelta(t, 570, shelf.Height, 1e-9)
	assert.InDelta(t, 5, shelf.Position[2], 1e-9)
	assert.Equal(t, models.RotFlat, shelf.Rotation)
	assert.Equal(t, "body", shelf.MaterialID)
	require.NotNil(t, shelf.CabinetMetadata.Index)
	assert.Equal(t, 0, *shelf.CabinetMetadata.Index)
}

func TestGenerate_ShelvesRespectLegOffset(t *testing.T) {
	root := leaf(models.ZoneShelves, 1)
	root.ShelvesConfig = shelves(1)
	cfg := baseConfig(root)
	cfg.LegOffset = 100

	parts := Generate(cfg)
	require.Len(t, parts, 1)
	assert.InDelta(t, 460, parts[0].Position[1], 1e-9)
}

func TestGenerate_ManualShelfOverrides(t *testing.T) {
	root := leaf(models.ZoneShelves, 1)
	root.ShelvesConfig = &models.ShelfConfig{
		Mode:        models.ShelfManual,
		Count:       2,
		DepthPreset: models.DepthFull,
		Shelves: []models.ShelfItem{
			{DepthPreset: models.DepthHalf, MaterialID: "oak"},
		},
	}

	parts := Generate(baseConfig(root))
	require.Len(t, parts, 2)
	assert.InDelta(t, 285, parts[0].Height, 1e-9)
	assert.Equal(t, "oak", parts[0].MaterialID)
	assert.InDelta(t, 570, parts[1].Height, 1e-9)
	assert.Equal(t, "body", parts[1].MaterialID)
}

func TestGenerate_ShelfIndicesContinueAcrossLeaves(t *testing.T) {
	a := leaf(models.ZoneShelves, 1)
	a.ShelvesConfig = shelves(2)
	b := leaf(models.ZoneShelves, 1)
	b.ShelvesConfig = shelves(1)

	parts := Generate(baseConfig(rows(a, b)))
	require.Len(t, parts, 3)
	for i, p := range parts {
		require.NotNil(t, p.CabinetMetadata.Index)
		assert.Equal(t, i, *p.CabinetMetadata.Index)
	}
	assert.Equal(t, "Shelf 3", parts[2].Name)
}

func TestGenerate_FullWidthDrawerLeaf(t *testing.T) {
	root := leaf(models.ZoneDrawers, 1)
	root.DrawerConfig = oneDrawer()

	parts := Generate(baseConfig(root))
	fronts := models.PartsByRole(parts, models.RoleDrawerFront)
	require.Len(t, fronts, 1)

	front := fronts[0]
	assert.InDelta(t, 796, front.Width, 1e-9)
	assert.InDelta(t, 716, front.Height, 1e-9)
	assert.InDelta(t, 360, front.Position[1], 1e-9)
	assert.InDelta(t, 0, front.Position[0], 1e-9)
}

func TestGenerate_DrawerColumnNextToShelves(t *testing.T) {
	a := leaf(models.ZoneShelves, 1)
	a.WidthConfig = &models.WidthConfig{Mode: models.WidthFixed, FixedWidth: 300}
	a.ShelvesConfig = shelves(1)
	b := leaf(models.ZoneDrawers, 1)
	b.WidthConfig = &models.WidthConfig{Mode: models.WidthProportional, Ratio: 1}
	b.DrawerConfig = oneDrawer()
	root := enableAll(columns(a, b))

	parts := Generate(baseConfig(root))

	shelvesOut := models.PartsByRole(parts, models.RoleShelf)
	require.Len(t, shelvesOut, 1)
	assert.InDelta(t, 300, shelvesOut[0].Width, 1e-9)
	assert.InDelta(t, -232, shelvesOut[0].Position[0], 1e-9)

	fronts := models.PartsByRole(parts, models.RoleDrawerFront)
	require.Len(t, fronts, 1)
	assert.InDelta(t, 461, fronts[0].Width, 1e-9)
	assert.InDelta(t, 159, fronts[0].Position[0], 1e-9)

	partitions := models.PartsByRole(parts, models.RolePartition)
	require.Len(t, partitions, 1)
	p := partitions[0]
	assert.Equal(t, models.RotSide, p.Rotation)
	assert.InDelta(t, 18, p.Depth, 1e-9)
	assert.InDelta(t, 684, p.Height, 1e-9)
	assert.InDelta(t, -73, p.Position[0], 1e-9)
}

func TestGenerate_HorizontalPartitionIsFlat(t *testing.T) {
	root := enableAll(rows(leaf(models.ZoneEmpty, 1), leaf(models.ZoneEmpty, 1)))
	root.Partitions[0].DepthPreset = models.DepthHalf

	parts := Generate(baseConfig(root))
	require.Len(t, parts, 1)
	p := parts[0]
	assert.Equal(t, models.RolePartition, p.CabinetMetadata.Role)
	assert.Equal(t, models.RotFlat, p.Rotation)
	assert.InDelta(t, 764, p.Width, 1e-9)
	assert.InDelta(t, 285, p.Height, 1e-9)
	assert.InDelta(t, 18+333+9, p.Position[1], 1e-9)
}

func TestGenerate_DrawerIndicesUniqueAcrossLeaves(t *testing.T) {
	a := leaf(models.ZoneDrawers, 1)
	a.DrawerConfig = oneDrawer()
	b := leaf(models.ZoneDrawers, 1)
	b.DrawerConfig = oneDrawer()

	parts := Generate(baseConfig(rows(a, b)))
	seen := map[int]bool{}
	for _, p := range models.PartsByRole(parts, models.RoleDrawerBottom) {
		require.NotNil(t, p.CabinetMetadata.DrawerIndex)
		idx := *p.CabinetMetadata.DrawerIndex
		assert.False(t, seen[idx], "duplicate drawer index %d", idx)
		seen[idx] = true
	}
	assert.Len(t, seen, 2)
}

func TestGenerate_EmptyTree(t *testing.T) {
	assert.Empty(t, Generate(baseConfig(leaf(models.ZoneEmpty, 1))))
}

func TestGenerate_DrawerColumnsWithoutPartitionKeepDoorGap(t *testing.T) {
	a := leaf(models.ZoneDrawers, 1)
	a.WidthConfig = &models.WidthConfig{Mode: models.WidthProportional, Ratio: 1}
	a.DrawerConfig = oneDrawer()
	b := leaf(models.ZoneDrawers, 1)
	b.WidthConfig = &models.WidthConfig{Mode: models.WidthProportional, Ratio: 1}
	b.DrawerConfig = oneDrawer()
	root := columns(a, b)
	require.False(t, root.Partitions[0].Enabled)

	parts := Generate(baseConfig(root))
	assert.Empty(t, models.PartsByRole(parts, models.RolePartition))

	fronts := models.PartsByRole(parts, models.RoleDrawerFront)
	require.Len(t, fronts, 2)
	left, right := fronts[0], fronts[1]

	assert.InDelta(t, 388, left.Width, 1e-9)
	assert.InDelta(t, 388, right.Width, 1e-9)
	leftOuter := left.Position[0] - left.Width/2
	leftInner := left.Position[0] + left.Width/2
	rightInner := right.Position[0] - right.Width/2
	rightOuter := right.Position[0] + right.Width/2

	assert.InDelta(t, -389.5, leftOuter, 1e-9, "half of the body side")
	assert.InDelta(t, 389.5, rightOuter, 1e-9, "half of the body side")
	assert.InDelta(t, -1.5, leftInner, 1e-9)
	assert.InDelta(t, 1.5, rightInner, 1e-9)
	assert.InDelta(t, 3, rightInner-leftInner, 1e-9, "fronts never overlap")
}
