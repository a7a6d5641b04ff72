package service

import (
	"testing"

	"furniture-configurator/internal/configurator/generators"
	"furniture-configurator/internal/configurator/materials"
	"furniture-configurator/internal/configurator/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogYAML = `
materials:
  - id: board-18
    thickness: 18
    category: board
  - id: front-19
    thickness: 19
    category: front
  - id: hdf-3
    thickness: 3
    category: hdf
`

func newConfigurator(t *testing.T) *Configurator {
	t.Helper()
	catalog, err := materials.Parse([]byte(catalogYAML))
	require.NoError(t, err)
	return NewConfigurator(catalog)
}

func kitchen() CabinetRequest {
	return CabinetRequest{
		Params: models.CabinetParams{
			Type:               models.CabinetKitchen,
			Width:              600,
			Height:             720,
			Depth:              560,
			TopBottomPlacement: models.PlacementInset,
			HasBack:            true,
		},
		Materials: models.CabinetMaterials{BodyMaterialID: "board-18", FrontMaterialID: "front-19", BackMaterialID: "hdf-3"},
	}
}

func TestBuild_AssignsIDs(t *testing.T) {
	asm, err := newConfigurator(t).Build(kitchen())
	require.NoError(t, err)

	_, err = uuid.Parse(asm.CabinetID)
	assert.NoError(t, err)
	assert.Equal(t, asm.CabinetID, asm.FurnitureID)
	for _, p := range asm.Parts {
		assert.Equal(t, asm.CabinetID, p.CabinetMetadata.CabinetID)
	}
	assert.Len(t, models.PartsByRole(asm.Parts, models.RoleBack), 1)
}

func TestBuild_KeepsGivenIDs(t *testing.T) {
	req := kitchen()
	req.CabinetID = "cab-1"
	req.FurnitureID = "kitchen-run"
	asm, err := newConfigurator(t).Build(req)
	require.NoError(t, err)
	assert.Equal(t, "cab-1", asm.CabinetID)
	assert.Equal(t, "kitchen-run", asm.Parts[0].FurnitureID)
}

func TestBuild_ClientErrors(t *testing.T) {
	s := newConfigurator(t)

	zero := kitchen()
	zero.Params.Width = 0
	_, err := s.Build(zero)
	assert.ErrorIs(t, err, ErrInvalidParams)
	assert.True(t, IsClientError(err))

	ratio := kitchen()
	ratio.Params.BackOverlapRatio = 1.5
	_, err = s.Build(ratio)
	assert.ErrorIs(t, err, ErrInvalidParams)

	unknown := kitchen()
	unknown.Materials.BodyMaterialID = "missing"
	_, err = s.Build(unknown)
	assert.ErrorIs(t, err, materials.ErrUnknownMaterial)
	assert.True(t, IsClientError(err))

	typ := kitchen()
	typ.Params.Type = "SOFA"
	_, err = s.Build(typ)
	assert.ErrorIs(t, err, generators.ErrUnknownCabinetType)
	assert.True(t, IsClientError(err))

	corner := kitchen()
	corner.Params.Type = models.CabinetCorner
	_, err = s.Build(corner)
	assert.ErrorIs(t, err, generators.ErrMissingCornerConfig)
	assert.True(t, IsClientError(err))

	badID := kitchen()
	badID.CabinetID = "../etc"
	_, err = s.Build(badID)
	assert.ErrorIs(t, err, ErrInvalidParams)

	assert.False(t, IsClientError(assert.AnError))
}
