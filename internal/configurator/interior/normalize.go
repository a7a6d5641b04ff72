package interior

import "furniture-configurator/internal/configurator/models"

// Normalize returns the interior tree for a cabinet. Legacy flat fields
// (shelfCount, shelfConfig, drawerConfig) are turned into an equivalent tree so
// generation only ever deals with one representation. ok is false when the
// cabinet has no interior at all.
func Normalize(params models.CabinetParams) (root models.InteriorZone, ok bool) {
	if params.InteriorConfig != nil {
		root = params.InteriorConfig.Root
		root.Depth = 0
		return root, true
	}

	shelves := legacyShelves(params)
	hasDrawers := params.DrawerConfig != nil && len(params.DrawerConfig.Zones) > 0

	switch {
	case shelves != nil && hasDrawers:
		return mixedRows(params.DrawerConfig, shelves), true
	case hasDrawers:
		return drawerLeaf(params.DrawerConfig, 0), true
	case shelves != nil:
		return shelfLeaf(shelves, 0), true
	}
	return models.InteriorZone{}, false
}

// mixedRows puts the drawers in a bottom row and the shelves in a row above,
// with no divider. Every drawer zone and every gap between shelves gets the
// same height: with z zones and n shelves the interior is cut into z+n+1
// equal slots, the bottom z of them for drawers. With no drawers this is the
// plain interior/(n+1) shelf pitch.
func mixedRows(drawers *models.DrawerConfiguration, shelves *models.ShelfConfig) models.InteriorZone {
	bottom := drawerLeaf(drawers, 1)
	bottom.HeightConfig.Ratio = float64(len(drawers.Zones))
	top := shelfLeaf(shelves, 1)
	top.HeightConfig.Ratio = float64(shelves.Count + 1)

	return models.InteriorZone{
		ContentType:       models.ZoneNested,
		HeightConfig:      models.HeightConfig{Mode: models.HeightRatio, Ratio: 1},
		DivisionDirection: models.DivisionHorizontal,
		Children:          []models.InteriorZone{bottom, top},
		Partitions:        []models.PartitionConfig{{Enabled: false}},
	}
}

func legacyShelves(params models.CabinetParams) *models.ShelfConfig {
	if params.ShelfConfig != nil && params.ShelfConfig.Count > 0 {
		sc := *params.ShelfConfig
		return &sc
	}
	if params.ShelfCount > 0 {
		return &models.ShelfConfig{
			Mode:        models.ShelfUniform,
			Count:       params.ShelfCount,
			DepthPreset: models.DepthFull,
		}
	}
	return nil
}

func drawerLeaf(cfg *models.DrawerConfiguration, depth int) models.InteriorZone {
	dc := *cfg
	return models.InteriorZone{
		ContentType:  models.ZoneDrawers,
		HeightConfig: models.HeightConfig{Mode: models.HeightRatio, Ratio: 1},
		DrawerConfig: &dc,
		Depth:        depth,
	}
}

func shelfLeaf(cfg *models.ShelfConfig, depth int) models.InteriorZone {
	return models.InteriorZone{
		ContentType:   models.ZoneShelves,
		HeightConfig:  models.HeightConfig{Mode: models.HeightRatio, Ratio: 1},
		ShelvesConfig: cfg,
		Depth:         depth,
	}
}
