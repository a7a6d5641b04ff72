package generators

import (
	"testing"

	"furniture-configurator/internal/configurator/calc"
	"furniture-configurator/internal/configurator/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var owner = models.Owner{CabinetID: "c", FurnitureID: "f"}

func TestSideFronts(t *testing.T) {
	parts := GenerateSideFronts(SideFrontsConfig{
		Owner:         owner,
		CabinetWidth:  600,
		CabinetHeight: 720,
		CabinetDepth:  560,
		Thickness:     18,
		LegOffset:     100,
		MaterialID:    "front",
		SideFronts: models.SideFrontsConfig{
			Left:  &models.SideFrontConfig{Enabled: true, ForwardExtension: 20, BottomOffset: 10, TopOffset: 30},
			Right: &models.SideFrontConfig{Enabled: true, MaterialID: "oak"},
		},
	})
	require.Len(t, parts, 2)

	left := parts[0]
	assert.Equal(t, models.RoleSideFrontLeft, left.CabinetMetadata.Role)
	assert.InDelta(t, 680, left.Height, 1e-9)
	assert.InDelta(t, 580, left.Width, 1e-9)
	assert.Equal(t, models.Vec3{-309, 100 + 10 + 340, 10}, left.Position)
	assert.Equal(t, models.RotSide, left.Rotation)
	assert.Equal(t, "front", left.MaterialID)

	right := parts[1]
	assert.Equal(t, models.RoleSideFrontRight, right.CabinetMetadata.Role)
	assert.InDelta(t, 309, right.Position[0], 1e-9)
	assert.InDelta(t, 720, right.Height, 1e-9)
	assert.Equal(t, "oak", right.MaterialID)
}

func TestSideFronts_DisabledOrDegenerate(t *testing.T) {
	cfg := SideFrontsConfig{
		Owner:         owner,
		CabinetWidth:  600,
		CabinetHeight: 720,
		CabinetDepth:  560,
		Thickness:     18,
		SideFronts: models.SideFrontsConfig{
			Left:  &models.SideFrontConfig{Enabled: false},
			Right: &models.SideFrontConfig{Enabled: true, BottomOffset: 400, TopOffset: 310},
		},
	}
	assert.Empty(t, GenerateSideFronts(cfg))
}

func decorativeConfig(leg float64, top, bottom *models.DecorativePanelConfig) DecorativeConfig {
	return DecorativeConfig{
		Owner:         owner,
		CabinetWidth:  600,
		CabinetHeight: 720,
		CabinetDepth:  560,
		Thickness:     18,
		LegOffset:     leg,
		MaterialID:    "front",
		Panels:        models.DecorativePanelsConfig{Top: top, Bottom: bottom},
	}
}

func TestDecorativePanels_Top(t *testing.T) {
	tests := []struct {
		typ        models.DecorativeType
		height     float64
		wantHeight float64
		wantY      float64
		wantZ      float64
		wantRot    models.Vec3
	}{
		{models.DecorativeBlenda, 0, calc.DefaultBlendaHeight, 820 + 50, 271, models.RotFront},
		{models.DecorativeStrip, 0, calc.DefaultStripHeight, 820 + 15, 271, models.RotFront},
		{models.DecorativePlinth, 80, 80, 820 + 40, 271 - calc.DefaultPlinthRecess, models.RotFront},
		{models.DecorativeFullPanel, 0, 560, 820 + 9, 0, models.RotFlat},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			parts := GenerateDecorativePanels(decorativeConfig(100, &models.DecorativePanelConfig{Enabled: true, Type: tt.typ, Height: tt.height}, nil))
			require.Len(t, parts, 1)
			p := parts[0]
			assert.Equal(t, models.RoleDecorativeTop, p.CabinetMetadata.Role)
			assert.Equal(t, tt.typ, p.CabinetMetadata.DecorativeType)
			assert.InDelta(t, 600, p.Width, 1e-9)
			assert.InDelta(t, tt.wantHeight, p.Height, 1e-9)
			assert.InDelta(t, tt.wantY, p.Position[1], 1e-9)
			assert.InDelta(t, tt.wantZ, p.Position[2], 1e-9)
			assert.Equal(t, tt.wantRot, p.Rotation)
		})
	}
}

func TestDecorativePanels_Bottom(t *testing.T) {
	plinth := &models.DecorativePanelConfig{Enabled: true, Type: models.DecorativePlinth, Recess: 40}
	parts := GenerateDecorativePanels(decorativeConfig(120, nil, plinth))
	require.Len(t, parts, 1)
	assert.Equal(t, models.RoleDecorativeBot, parts[0].CabinetMetadata.Role)
	assert.InDelta(t, 120, parts[0].Height, 1e-9)
	assert.InDelta(t, 60, parts[0].Position[1], 1e-9)
	assert.InDelta(t, 271-40, parts[0].Position[2], 1e-9)

	strip := &models.DecorativePanelConfig{Enabled: true, Type: models.DecorativeStrip}
	parts = GenerateDecorativePanels(decorativeConfig(120, nil, strip))
	require.Len(t, parts, 1)
	assert.InDelta(t, 30, parts[0].Height, 1e-9)
	assert.InDelta(t, 105, parts[0].Position[1], 1e-9)

	blenda := &models.DecorativePanelConfig{Enabled: true, Type: models.DecorativeBlenda, Height: 500}
	parts = GenerateDecorativePanels(decorativeConfig(120, nil, blenda))
	require.Len(t, parts, 1)
	assert.InDelta(t, 120, parts[0].Height, 1e-9, "clamped to the leg space")

	// No legs, no room below the body.
	assert.Empty(t, GenerateDecorativePanels(decorativeConfig(0, nil, plinth)))
}

func TestLegs(t *testing.T) {
	legs := models.LegsConfig{Enabled: true, Height: 150, Shape: models.LegSquare, Finish: "black", Color: "#000000"}

	parts := GenerateLegs(owner, legs, 600, 560)
	require.Len(t, parts, 4)
	for i, p := range parts {
		assert.Equal(t, models.RoleLeg, p.CabinetMetadata.Role)
		require.NotNil(t, p.CabinetMetadata.LegIndex)
		assert.Equal(t, i, *p.CabinetMetadata.LegIndex)
		require.NotNil(t, p.CabinetMetadata.LegMetadata)
		assert.Equal(t, models.LegSquare, p.CabinetMetadata.LegMetadata.Shape)
		assert.Equal(t, "black", p.CabinetMetadata.LegMetadata.Finish)
		assert.InDelta(t, 150, p.Height, 1e-9)
		assert.InDelta(t, 75, p.Position[1], 1e-9)
	}
	// front-left first
	assert.InDelta(t, -(300 - 30 - 15), parts[0].Position[0], 1e-9)
	assert.InDelta(t, 280-30-15, parts[0].Position[2], 1e-9)

	assert.Len(t, GenerateLegs(owner, legs, 1200, 560), 6)

	legs.Count = 4
	assert.Len(t, GenerateLegs(owner, legs, 1200, 560), 4)

	legs.Enabled = false
	assert.Empty(t, GenerateLegs(owner, legs, 600, 560))
}

func TestLegs_DefaultsAndLiftedBody(t *testing.T) {
	params := kitchenParams()
	params.Legs = &models.LegsConfig{Enabled: true}
	parts, err := GenerateKitchenCabinet("c", "f", params, materials, board, nil)
	require.NoError(t, err)

	legs := models.PartsByRole(parts, models.RoleLeg)
	require.Len(t, legs, 4)
	assert.InDelta(t, calc.DefaultLegHeight, legs[0].Height, 1e-9)
	assert.Equal(t, models.LegRound, legs[0].CabinetMetadata.LegMetadata.Shape)
	assert.InDelta(t, calc.DefaultLegDiameter, legs[0].Width, 1e-9)
	assert.InDelta(t, calc.DefaultLegHeight+9, one(t, parts, models.RoleBottom).Position[1], 1e-9)
}
