package drawers

import (
	"fmt"

	"furniture-configurator/internal/configurator/calc"
	"furniture-configurator/internal/configurator/models"
)

// box builds one drawer carcass inside the vertical space [spaceStart, spaceStart+space].
// The box is shorter than its space and centered in it; its front is flush with
// the cabinet front face.
//
// A closed box has its own front panel and its bottom sits between back and
// front. An open box has no front panel and its bottom runs to the front edge.
func (g *generator) box(drawerIndex int, spaceStart, space float64, closed bool) []models.Part {
	t := g.thickness
	sideHeight := calc.BoxSideHeight(space)
	bottomY := spaceStart + (space-sideHeight)/2

	frontZ := g.cfg.CabinetDepth / 2
	backZ := frontZ - g.boxDepth
	centerZ := frontZ - g.boxDepth/2
	x := g.cfg.XOffset
	innerWidth := g.boxWidth - 2*t
	materialID := g.cfg.BodyMaterialID
	label := fmt.Sprintf("Drawer %d", drawerIndex+1)
	top := models.EdgeBanding{Type: models.EdgeBandingRect, Top: true}

	var parts []models.Part
	add := func(p models.Part) {
		p.CabinetMetadata.DrawerIndex = models.IntPtr(drawerIndex)
		parts = append(parts, p)
	}

	bottomDepth := g.boxDepth - 2*t
	bottomZ := centerZ
	if !closed {
		bottomDepth = g.boxDepth - t
		bottomZ = backZ + t + bottomDepth/2
	}
	add(g.owner.Rect(label+" bottom", models.RoleDrawerBottom,
		innerWidth, bottomDepth, t,
		models.Vec3{x, bottomY + t/2, bottomZ},
		models.RotFlat, materialID, models.NoBanding()))

	add(g.owner.Rect(label+" left side", models.RoleDrawerSideLeft,
		g.boxDepth, sideHeight, t,
		models.Vec3{x - g.boxWidth/2 + t/2, bottomY + sideHeight/2, centerZ},
		models.RotSide, materialID, top))

	add(g.owner.Rect(label+" right side", models.RoleDrawerSideRight,
		g.boxDepth, sideHeight, t,
		models.Vec3{x + g.boxWidth/2 - t/2, bottomY + sideHeight/2, centerZ},
		models.RotSide, materialID, top))

	add(g.owner.Rect(label+" back", models.RoleDrawerBack,
		innerWidth, sideHeight, t,
		models.Vec3{x, bottomY + sideHeight/2, backZ + t/2},
		models.RotFront, materialID, top))

	if closed {
		add(g.owner.Rect(label+" box front", models.RoleDrawerBoxFront,
			innerWidth, sideHeight, t,
			models.Vec3{x, bottomY + sideHeight/2, frontZ - t/2},
			models.RotFront, materialID, top))
	}

	return parts
}
