package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"furniture-configurator/internal/configurator/generators"
	"furniture-configurator/internal/configurator/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	board     = models.Material{ID: "board-18", Thickness: 18}
	hdf       = models.Material{ID: "hdf-3", Thickness: 3}
	materials = models.CabinetMaterials{BodyMaterialID: "board-18", FrontMaterialID: "front-18", BackMaterialID: "hdf-3"}
	owner     = models.Owner{CabinetID: "c", FurnitureID: "f"}
)

func assertVec(t *testing.T, want, got r3.Vec) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-6, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-6, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-6, "z")
}

func TestPartBounds_Orientations(t *testing.T) {
	front := owner.Rect("door", models.RoleDoor, 400, 700, 18, models.Vec3{0, 360, 299}, models.RotFront, "", models.NoBanding())
	b := PartBounds(front)
	assertVec(t, r3.Vec{X: -200, Y: 10, Z: 290}, b.Min)
	assertVec(t, r3.Vec{X: 200, Y: 710, Z: 308}, b.Max)

	// Flat panels: local height runs along world Z.
	shelf := owner.Rect("shelf", models.RoleShelf, 764, 562, 18, models.Vec3{0, 100, 0}, models.RotFlat, "", models.NoBanding())
	b = PartBounds(shelf)
	assertVec(t, r3.Vec{X: -382, Y: 91, Z: -281}, b.Min)
	assertVec(t, r3.Vec{X: 382, Y: 109, Z: 281}, b.Max)

	// Side panels: local width runs along world Z.
	side := owner.Rect("side", models.RoleLeftSide, 580, 720, 18, models.Vec3{-391, 360, 0}, models.RotSide, "", models.NoBanding())
	b = PartBounds(side)
	assertVec(t, r3.Vec{X: -400, Y: 0, Z: -290}, b.Min)
	assertVec(t, r3.Vec{X: -382, Y: 720, Z: 290}, b.Max)
}

func TestPartBounds_DiagonalRotation(t *testing.T) {
	p := owner.Rect("diag", models.RoleCornerDiagonal, 100, 10, 0, models.Vec3{}, models.Vec3{0, math.Pi / 4, 0}, "", models.NoBanding())
	b := PartBounds(p)
	half := 50 * math.Sqrt2 / 2
	assert.InDelta(t, -half, b.Min.X, 1e-6)
	assert.InDelta(t, half, b.Max.X, 1e-6)
	assert.InDelta(t, half, b.Max.Z, 1e-6)
}

func TestBounds_KitchenCabinet(t *testing.T) {
	params := models.CabinetParams{
		Type:               models.CabinetKitchen,
		Width:              800,
		Height:             720,
		Depth:              580,
		TopBottomPlacement: models.PlacementInset,
		HasBack:            true,
		DoorConfig:         &models.DoorConfig{Layout: models.DoorDouble},
	}
	asm, err := generators.Generate("c", "f", params, materials, board, &hdf)
	require.NoError(t, err)

	b := Bounds(asm.Parts)
	assert.InDelta(t, -400, b.Min.X, 1e-6)
	assert.InDelta(t, 400, b.Max.X, 1e-6)
	assert.InDelta(t, 0, b.Min.Y, 1e-6)
	assert.InDelta(t, 720, b.Max.Y, 1e-6)
	// Doors stand proud of the body; the back sits behind it.
	assert.InDelta(t, 290+18, b.Max.Z, 1e-6)
	assert.Less(t, b.Min.Z, -290.0)
}

func TestBounds_Empty(t *testing.T) {
	assert.Equal(t, r3.Box{}, Bounds(nil))
}

func TestToCenterFrame(t *testing.T) {
	params := models.CabinetParams{
		Type:               models.CabinetCorner,
		Width:              1000,
		Height:             720,
		Depth:              600,
		TopBottomPlacement: models.PlacementInset,
		HasBack:            true,
		CornerConfig:       &models.CornerConfig{CornerType: models.CornerLShaped},
	}
	asm, err := generators.Generate("c", "f", params, materials, board, &hdf)
	require.NoError(t, err)
	require.Equal(t, models.FrameCornerFrontLeft, asm.Frame)

	centered := ToCenterFrame(asm)
	assert.Equal(t, models.FrameCenterFloor, centered.Frame)
	require.Len(t, centered.Parts, len(asm.Parts))

	bottom := models.PartsByRole(centered.Parts, models.RoleBottom)[0]
	assert.InDelta(t, 0, bottom.Position[0], 1e-9)
	assert.InDelta(t, 0, bottom.Position[2], 1e-9)

	back := models.PartsByRole(centered.Parts, models.RoleBack)[0]
	assert.InDelta(t, -301.5, back.Position[2], 1e-9)

	// Flat panels keep their extent after the mirror.
	b := Bounds(centered.Parts)
	assert.InDelta(t, -500, b.Min.X, 1e-6)
	assert.InDelta(t, 500, b.Max.X, 1e-6)

	// The input assembly is untouched.
	assert.InDelta(t, 500, models.PartsByRole(asm.Parts, models.RoleBottom)[0].Position[0], 1e-9)
}

func TestToCenterFrame_LeavesBodyCabinets(t *testing.T) {
	asm := models.Assembly{Frame: models.FrameCenterFloor, Parts: []models.Part{{Name: "x", Position: models.Vec3{1, 2, 3}}}}
	assert.Equal(t, asm, ToCenterFrame(asm))
}

func TestFrontElevation(t *testing.T) {
	params := models.CabinetParams{
		Type:               models.CabinetWall,
		Width:              600,
		Height:             720,
		Depth:              320,
		TopBottomPlacement: models.PlacementInset,
		HasBack:            true,
		HangerCutouts:      &models.HangerCutoutConfig{Enabled: true},
		DoorConfig:         &models.DoorConfig{Layout: models.DoorSingle},
		HandleConfig:       &models.HandleConfig{Type: models.HandleBar, Dimensions: models.HandleDimensions{Length: 128}},
	}
	asm, err := generators.Generate("wall-1", "f", params, materials, board, &hdf)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, FrontElevation(&buf, asm, Options{Scale: 1, ShowDimensions: true}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"))
	assert.Contains(t, out, `width="680"`)
	assert.Contains(t, out, `height="800"`)
	assert.Contains(t, out, "<polygon", "the cutout back keeps its outline")
	assert.Contains(t, out, `id="handles"`)
	assert.Contains(t, out, "600 mm")
	assert.Contains(t, out, "720 mm")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))

	// The back is painted before the door.
	assert.Less(t, strings.Index(out, "<polygon"), strings.LastIndex(out, "fill:#f3e9d2"))
}

func TestFrontElevation_CornerAndEmpty(t *testing.T) {
	params := models.CabinetParams{
		Type:               models.CabinetCorner,
		Width:              1000,
		Height:             720,
		Depth:              600,
		TopBottomPlacement: models.PlacementInset,
		CornerConfig:       &models.CornerConfig{CornerType: models.CornerTwoArm},
	}
	asm, err := generators.Generate("corner-1", "f", params, materials, board, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, FrontElevation(&buf, asm, Options{}))
	assert.Contains(t, buf.String(), "<rect")

	err = FrontElevation(&buf, models.Assembly{CabinetID: "none"}, Options{})
	assert.Error(t, err)
}

func TestFrontElevation_HideDrawerBoxes(t *testing.T) {
	params := models.CabinetParams{
		Type:               models.CabinetDrawer,
		Width:              600,
		Height:             720,
		Depth:              560,
		TopBottomPlacement: models.PlacementInset,
		DrawerConfig: &models.DrawerConfiguration{
			SlideType: models.SlideBallBearing,
			Zones: []models.DrawerZone{
				{HeightRatio: 1, Front: &models.DrawerFront{}},
				{HeightRatio: 1, Front: &models.DrawerFront{}},
			},
		},
	}
	asm, err := generators.Generate("d", "f", params, materials, board, nil)
	require.NoError(t, err)

	var all, fronts bytes.Buffer
	require.NoError(t, FrontElevation(&all, asm, Options{}))
	require.NoError(t, FrontElevation(&fronts, asm, Options{HideDrawerBoxes: true}))
	assert.Contains(t, all.String(), "fill:#e0e0e0")
	assert.NotContains(t, fronts.String(), "fill:#e0e0e0")
}
