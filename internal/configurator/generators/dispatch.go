package generators

import (
	"fmt"

	"furniture-configurator/internal/configurator/models"
)

type assembler func(cabinetID, furnitureID string, params models.CabinetParams, materials models.CabinetMaterials, body models.Material, back *models.Material) ([]models.Part, error)

var assemblers = map[models.CabinetType]assembler{
	models.CabinetKitchen:   GenerateKitchenCabinet,
	models.CabinetWardrobe:  GenerateWardrobeCabinet,
	models.CabinetBookshelf: GenerateBookshelfCabinet,
	models.CabinetDrawer:    GenerateDrawerCabinet,
	models.CabinetWall:      GenerateWallCabinet,
	models.CabinetCorner:    GenerateCornerCabinet,
}

// Generate runs the assembler for params.Type and tags the result with the
// coordinate frame its positions use.
func Generate(cabinetID, furnitureID string, params models.CabinetParams, materials models.CabinetMaterials, body models.Material, back *models.Material) (models.Assembly, error) {
	gen, ok := assemblers[params.Type]
	if !ok {
		return models.Assembly{}, fmt.Errorf("%w: %q", ErrUnknownCabinetType, params.Type)
	}
	parts, err := gen(cabinetID, furnitureID, params, materials, body, back)
	if err != nil {
		return models.Assembly{}, err
	}

	asm := models.Assembly{
		CabinetID:   cabinetID,
		FurnitureID: furnitureID,
		Type:        params.Type,
		Frame:       models.FrameCenterFloor,
		Width:       params.Width,
		Height:      params.Height,
		Depth:       params.Depth,
		Parts:       parts,
	}
	if params.Type == models.CabinetCorner {
		asm.Frame = models.FrameCornerFrontLeft
		if params.CornerConfig.CornerType == models.CornerTwoArm {
			c := newCorner(cabinetID, furnitureID, params, materials, body, back)
			a := c.arms()
			asm.Width, asm.Depth = a.la, a.lb
		}
	}
	return asm, nil
}
