package generators

import "furniture-configurator/internal/configurator/models"

// ============================================================
// Per-type assemblers (center-floor frame)
// ============================================================

// GenerateKitchenCabinet builds a base cabinet. Doors follow doorConfig.
func GenerateKitchenCabinet(cabinetID, furnitureID string, params models.CabinetParams, materials models.CabinetMaterials, body models.Material, back *models.Material) ([]models.Part, error) {
	if err := checkType(params, models.CabinetKitchen); err != nil {
		return nil, err
	}
	return assemble(cabinetID, furnitureID, params, materials, body, back, bodyOptions{fronts: frontsConfigured}), nil
}

// GenerateWardrobeCabinet builds a wardrobe. Without doorConfig it gets double doors.
func GenerateWardrobeCabinet(cabinetID, furnitureID string, params models.CabinetParams, materials models.CabinetMaterials, body models.Material, back *models.Material) ([]models.Part, error) {
	if err := checkType(params, models.CabinetWardrobe); err != nil {
		return nil, err
	}
	return assemble(cabinetID, furnitureID, params, materials, body, back, bodyOptions{fronts: frontsDefaultDouble}), nil
}

// GenerateBookshelfCabinet builds an open shelf unit; doors only when configured.
func GenerateBookshelfCabinet(cabinetID, furnitureID string, params models.CabinetParams, materials models.CabinetMaterials, body models.Material, back *models.Material) ([]models.Part, error) {
	if err := checkType(params, models.CabinetBookshelf); err != nil {
		return nil, err
	}
	return assemble(cabinetID, furnitureID, params, materials, body, back, bodyOptions{fronts: frontsConfigured}), nil
}

// GenerateDrawerCabinet builds a chest of drawers. It never has doors.
func GenerateDrawerCabinet(cabinetID, furnitureID string, params models.CabinetParams, materials models.CabinetMaterials, body models.Material, back *models.Material) ([]models.Part, error) {
	if err := checkType(params, models.CabinetDrawer); err != nil {
		return nil, err
	}
	return assemble(cabinetID, furnitureID, params, materials, body, back, bodyOptions{fronts: frontsNone}), nil
}

// GenerateWallCabinet builds a hanging cabinet: no legs, optional folding
// doors and hanger cutouts in the back.
func GenerateWallCabinet(cabinetID, furnitureID string, params models.CabinetParams, materials models.CabinetMaterials, body models.Material, back *models.Material) ([]models.Part, error) {
	if err := checkType(params, models.CabinetWall); err != nil {
		return nil, err
	}
	return assemble(cabinetID, furnitureID, params, materials, body, back, bodyOptions{fronts: frontsWall, wall: true}), nil
}
