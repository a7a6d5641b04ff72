package cutlist

import (
	"bytes"
	"encoding/csv"
	"testing"

	"furniture-configurator/internal/configurator/generators"
	"furniture-configurator/internal/configurator/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var owner = models.Owner{CabinetID: "cab", FurnitureID: "f"}

func square() models.Part {
	pts := []models.Point{{X: -50, Y: -50}, {X: 50, Y: -50}, {X: 50, Y: 50}, {X: -50, Y: 50}}
	return owner.Polygon("corner top", models.RoleTop, pts, 18, models.Vec3{}, models.RotFlat, "board",
		models.EdgeBanding{Type: models.EdgeBandingGeneric, Edges: []int{0, 1}})
}

func TestBandingLength(t *testing.T) {
	door := owner.Rect("door", models.RoleDoor, 600, 400, 18, models.Vec3{}, models.RotFront, "front", models.FullBanding())
	assert.InDelta(t, 2000, BandingLength(door), 1e-9)

	shelf := owner.Rect("shelf", models.RoleShelf, 764, 552, 18, models.Vec3{}, models.RotFlat, "board", models.FrontEdgeBanding())
	assert.InDelta(t, 764, BandingLength(shelf), 1e-9)

	side := owner.Rect("side", models.RoleLeftSide, 580, 720, 18, models.Vec3{}, models.RotSide, "board",
		models.EdgeBanding{Type: models.EdgeBandingRect, Right: true})
	assert.InDelta(t, 720, BandingLength(side), 1e-9)

	assert.InDelta(t, 200, BandingLength(square()), 1e-9)

	bad := square()
	bad.EdgeBanding.Edges = []int{3, 7, -1}
	assert.InDelta(t, 100, BandingLength(bad), 1e-9, "out of range edges are ignored")
}

func TestEdgeLabel(t *testing.T) {
	assert.Equal(t, "T+B+L+R", EdgeLabel(models.FullBanding()))
	assert.Equal(t, "B", EdgeLabel(models.FrontEdgeBanding()))
	assert.Equal(t, "-", EdgeLabel(models.NoBanding()))
	assert.Equal(t, "E0+E2", EdgeLabel(models.EdgeBanding{Type: models.EdgeBandingGeneric, Edges: []int{0, 2}}))
}

func TestSummarize(t *testing.T) {
	door := owner.Rect("door", models.RoleDoor, 600, 400, 18, models.Vec3{}, models.RotFront, "front", models.FullBanding())
	back := owner.Rect("back", models.RoleBack, 600, 400, 3, models.Vec3{}, models.RotFront, "hdf", models.NoBanding())

	list := Build([]models.Part{door, square(), back}, 25)
	s := list.Banding
	assert.InDelta(t, 2200, s.TotalLinearMM, 1e-9)
	assert.InDelta(t, 2.2, s.TotalLinearM, 1e-9)
	assert.InDelta(t, 2750, s.TotalWithWasteMM, 1e-9)
	assert.InDelta(t, 2.75, s.TotalWithWasteM, 1e-9)
	assert.Equal(t, 2, s.PartCount)
	assert.Equal(t, 6, s.EdgeCount)
}

func TestSummarize_RoundsUp(t *testing.T) {
	rows := []Row{{Quantity: 1, Edges: "T", BandingPerUnit: 100.2, BandingTotal: 100.2}}
	assert.InDelta(t, 101, Summarize(rows, 0).TotalWithWasteMM, 1e-9)
}

func TestBuild_KitchenCabinet(t *testing.T) {
	params := models.CabinetParams{
		Type:               models.CabinetKitchen,
		Width:              800,
		Height:             720,
		Depth:              580,
		TopBottomPlacement: models.PlacementInset,
		HasBack:            true,
		ShelfCount:         2,
		DoorConfig:         &models.DoorConfig{Layout: models.DoorDouble},
		Legs:               &models.LegsConfig{Enabled: true, Height: 100, Shape: models.LegSquare, Finish: "black"},
	}
	materials := models.CabinetMaterials{BodyMaterialID: "board", FrontMaterialID: "front", BackMaterialID: "hdf"}
	parts, err := generators.GenerateKitchenCabinet("cab", "f", params, materials,
		models.Material{ID: "board", Thickness: 18}, &models.Material{ID: "hdf", Thickness: 3})
	require.NoError(t, err)

	list := Build(parts, 10)

	total := 0
	for _, r := range list.Rows {
		total += r.Quantity
		assert.GreaterOrEqual(t, r.Length, r.Width, r.Name)
		assert.NotEqual(t, models.RoleLeg, r.Role)
	}
	legs := len(models.PartsByRole(parts, models.RoleLeg))
	assert.Equal(t, len(parts)-legs, total, "every board is counted once")

	doors := rowsByRole(list.Rows, models.RoleDoor)
	require.Len(t, doors, 1, "identical doors share a row")
	assert.Equal(t, 2, doors[0].Quantity)
	assert.InDelta(t, 2*doors[0].BandingPerUnit, doors[0].BandingTotal, 1e-9)

	shelves := rowsByRole(list.Rows, models.RoleShelf)
	require.Len(t, shelves, 1)
	assert.Equal(t, 2, shelves[0].Quantity)

	require.Len(t, list.Hardware, 1)
	assert.Equal(t, legs, list.Hardware[0].Quantity)
	assert.Equal(t, models.LegSquare, list.Hardware[0].Shape)
	assert.Equal(t, "black", list.Hardware[0].Finish)

	ids := []string{}
	for _, m := range list.Materials {
		ids = append(ids, m.MaterialID)
		assert.Greater(t, m.AreaM2, 0.0)
	}
	assert.Equal(t, []string{"board", "front", "hdf"}, ids)
}

func rowsByRole(rows []Row, role models.PartRole) []Row {
	var out []Row
	for _, r := range rows {
		if r.Role == role {
			out = append(out, r)
		}
	}
	return out
}

func TestWriteCSV(t *testing.T) {
	door := owner.Rect("door", models.RoleDoor, 400, 600, 18, models.Vec3{}, models.RotFront, "front", models.FullBanding())
	leg := owner.Rect("leg", models.RoleLeg, 30, 100, 30, models.Vec3{}, models.RotFront, "", models.NoBanding())
	leg.CabinetMetadata.LegMetadata = &models.LegMetadata{Shape: models.LegRound, Diameter: 30, Height: 100}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Build([]models.Part{door, door, leg}, 0)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{"cab", "door", "DOOR", "front", "RECT", "600", "400", "18", "2", "T+B+L+R", "2000", "4000"}, records[1])
	assert.Equal(t, "hardware", records[2][3])
	assert.Equal(t, "1", records[2][8])
}
