package generators

import (
	"fmt"
	"math"

	"furniture-configurator/internal/configurator/calc"
	"furniture-configurator/internal/configurator/models"

	"gonum.org/v1/gonum/spatial/r2"
)

// ============================================================
// TWO_ARM: true two-wall corner
// ============================================================
//
// For cornerOrientation LEFT the walls are the back plane Z = Lb and the left
// plane X = 0. Arm A runs along the back wall (length La on X, depth Da), arm B
// along the left wall (length Lb on Z, depth Db). RIGHT mirrors X.
// In footprint vectors (r2.Vec) X is X and Y is the corner frame's Z.

type arms struct {
	la, da float64
	lb, db float64
	right  bool
}

func (c corner) arms() arms {
	p := c.params
	a := arms{
		la:    positiveOr(c.cfg.ArmA.Length, p.Width),
		da:    positiveOr(c.cfg.ArmA.Depth, p.Depth),
		lb:    positiveOr(c.cfg.ArmB.Length, p.Width),
		db:    positiveOr(c.cfg.ArmB.Depth, p.Depth),
		right: c.cfg.CornerOrientation == models.HingeRight,
	}
	a.la = math.Max(a.la, a.db)
	a.lb = math.Max(a.lb, a.da)
	return a
}

// x maps an X coordinate of the LEFT layout into the actual orientation.
func (a arms) x(x float64) float64 {
	if a.right {
		return a.la - x
	}
	return x
}

func (a arms) hinge(h models.HingeSide) models.HingeSide {
	if a.right {
		return h.Opposite()
	}
	return h
}

// footprint returns the L outline (six points) or, with a diagonal front,
// a pentagon cutting the inner corner. xMax and zMin trim the arm ends.
// The returned indices name the edges facing the room.
func (a arms) footprint(xMax, zMin float64, diagonal bool) ([]r2.Vec, []int) {
	inner := a.lb - a.da
	if diagonal {
		return []r2.Vec{
			{X: 0, Y: zMin},
			{X: a.db, Y: zMin},
			{X: xMax, Y: inner},
			{X: xMax, Y: a.lb},
			{X: 0, Y: a.lb},
		}, []int{0, 1, 2}
	}
	return []r2.Vec{
		{X: 0, Y: zMin},
		{X: a.db, Y: zMin},
		{X: a.db, Y: inner},
		{X: xMax, Y: inner},
		{X: xMax, Y: a.lb},
		{X: 0, Y: a.lb},
	}, []int{0, 1, 2, 3}
}

func (c corner) sharedA() bool {
	m := c.cfg.WallSharingMode
	return m == models.WallSharingArmA || m == models.WallSharingBoth
}

func (c corner) sharedB() bool {
	m := c.cfg.WallSharingMode
	return m == models.WallSharingArmB || m == models.WallSharingBoth
}

func (c corner) twoArm() []models.Part {
	a := c.arms()
	t := c.t
	H := c.params.Height
	leg := c.legOffset
	diagonal := c.cfg.DiagonalFront

	var parts []models.Part

	outline, banded := a.footprint(a.la, 0, diagonal)
	parts = append(parts,
		c.flatPolygon("Bottom", models.RoleBottom, a, outline, banded, leg+t/2),
		c.flatPolygon("Top", models.RoleTop, a, outline, banded, leg+H-t/2),
	)

	// Arm ends close the open ends unless a neighbouring cabinet provides the wall.
	endHeight := H - 2*t
	if !c.sharedA() {
		parts = append(parts, c.owner.Rect("Arm A end", models.RoleCornerArmAEnd,
			a.da, endHeight, t,
			models.Vec3{a.x(a.la - t/2), leg + H/2, a.lb - a.da/2},
			models.RotSide, c.bodyMaterialID, models.FullBanding()))
	}
	if !c.sharedB() {
		parts = append(parts, c.owner.Rect("Arm B end", models.RoleCornerArmBEnd,
			a.db, endHeight, t,
			models.Vec3{a.x(a.db / 2), leg + H/2, t / 2},
			models.RotFront, c.bodyMaterialID, models.FullBanding()))
	}

	parts = append(parts, c.twoArmShelves(a)...)

	if diagonal {
		parts = append(parts, c.diagonalDoor(a)...)
	} else {
		parts = append(parts, c.armDoors(a)...)
	}

	if c.params.HasBack && c.back != nil {
		bt := c.back.Thickness
		backA := c.owner.Rect("Back A", models.RoleBack,
			a.la, H, bt,
			models.Vec3{a.la / 2, leg + H/2, a.lb + bt/2},
			models.RotFront, c.backMaterialID, models.NoBanding())
		backA.CabinetMetadata.Index = models.IntPtr(0)
		backB := c.owner.Rect("Back B", models.RoleBack,
			a.lb, H, bt,
			models.Vec3{a.x(-bt / 2), leg + H/2, a.lb / 2},
			models.RotSide, c.backMaterialID, models.NoBanding())
		backB.CabinetMetadata.Index = models.IntPtr(1)
		parts = append(parts, backA, backB)
	}

	if legs := c.params.Legs; legs != nil && legs.Enabled {
		mapped := func(x0, z0, w, d float64) func(x, z float64) (float64, float64) {
			inner := toCorner(x0, z0, w, d)
			return func(x, z float64) (float64, float64) {
				cx, cz := inner(x, z)
				return a.x(cx), cz
			}
		}
		legParts := legsAt(c.owner, *legs, a.db, a.lb, 0, mapped(0, 0, a.db, a.lb))
		if armA := a.la - a.db; armA > 0 {
			legParts = append(legParts, legsAt(c.owner, *legs, armA, a.da, len(legParts), mapped(a.db, a.lb-a.da, armA, a.da))...)
		}
		parts = append(parts, legParts...)
	}
	return parts
}

// flatPolygon lays a footprint outline flat at height y. With RotFlat the
// local Y axis points to -Z, so local points are (X, -Z).
func (c corner) flatPolygon(name string, role models.PartRole, a arms, outline []r2.Vec, banded []int, y float64) models.Part {
	local := make([]r2.Vec, len(outline))
	world := make([]models.Point, len(outline))
	for i, v := range outline {
		x := a.x(v.X)
		local[i] = r2.Vec{X: x, Y: -v.Y}
		world[i] = models.Point{X: x, Y: v.Y}
	}
	minX, minZ, maxX, maxZ := models.Bounds2D(world)

	return c.owner.Polygon(name, role, toPoints(local), c.t,
		models.Vec3{(minX + maxX) / 2, y, (minZ + maxZ) / 2},
		models.RotFlat, c.bodyMaterialID,
		models.EdgeBanding{Type: models.EdgeBandingGeneric, Edges: banded})
}

func (c corner) twoArmShelves(a arms) []models.Part {
	count := c.shelfCount()
	if count <= 0 {
		return nil
	}
	t := c.t
	xMax, zMin := a.la, 0.0
	if !c.sharedA() {
		xMax -= t
	}
	if !c.sharedB() {
		zMin = t
	}
	outline, banded := a.footprint(xMax, zMin, c.cfg.DiagonalFront)

	positions := calc.CornerShelfPositions(c.legOffset+t, c.params.Height-2*t, count)
	parts := make([]models.Part, 0, len(positions))
	for i, y := range positions {
		part := c.flatPolygon(fmt.Sprintf("Shelf %d", i+1), models.RoleShelf, a, outline, banded, y)
		part.CabinetMetadata.Index = models.IntPtr(i)
		parts = append(parts, part)
	}
	return parts
}

// armDoors hangs one door on each arm's opening, hinged at the outer end so
// the two doors never collide in the inner corner.
func (c corner) armDoors(a arms) []models.Part {
	t := c.t
	H := c.params.Height
	height := H - 2*calc.FrontMargin
	if height < calc.MinFrontHeight {
		return nil
	}
	y := c.legOffset + H/2
	inner := a.lb - a.da

	var parts []models.Part
	add := func(name string, width float64, pos, rot models.Vec3, hinge models.HingeSide) {
		if width < calc.MinDoorWidth {
			return
		}
		door := c.owner.Rect(name, models.RoleDoor, width, height, t, pos, rot, c.frontMaterialID, models.FullBanding())
		door.CabinetMetadata.Index = models.IntPtr(len(parts))
		door.CabinetMetadata.DoorMetadata = &models.DoorMetadata{
			HingeSide:        hinge,
			OpeningDirection: models.OpenHorizontal,
			Layout:           models.DoorSingle,
		}
		door.CabinetMetadata.HandleMetadata = calc.HandlePlacement(c.params.HandleConfig, width, height, models.FrontSingleDoor, hinge)
		parts = append(parts, door)
	}

	add("Door A", a.la-a.db-2*calc.FrontMargin,
		models.Vec3{a.x((a.db + a.la) / 2), y, inner - t/2},
		models.RotFront, a.hinge(models.HingeRight))
	add("Door B", inner-2*calc.FrontMargin,
		models.Vec3{a.x(a.db + t/2), y, inner / 2},
		models.RotSide, a.hinge(models.HingeLeft))
	return parts
}

// diagonalDoor hangs a single door on the diagonal between the arm fronts.
func (c corner) diagonalDoor(a arms) []models.Part {
	t := c.t
	H := c.params.Height
	height := H - 2*calc.FrontMargin

	from := r2.Vec{X: a.x(a.db), Y: 0}
	to := r2.Vec{X: a.x(a.la), Y: a.lb - a.da}
	if a.right {
		from, to = to, from
	}
	d := r2.Sub(to, from)
	width := r2.Norm(d) - 2*calc.FrontMargin
	if width < calc.MinDoorWidth || height < calc.MinFrontHeight {
		return nil
	}

	// Outward normal points away from the walls, toward the room.
	normal := r2.Unit(r2.Vec{X: d.Y, Y: -d.X})
	center := r2.Add(r2.Scale(0.5, r2.Add(from, to)), r2.Scale(t/2, normal))
	angle := math.Atan2(-d.Y, d.X)

	hinge := c.cfg.HingeSide
	if hinge == "" {
		hinge = a.hinge(models.HingeLeft)
	}
	door := c.owner.Rect("Diagonal door", models.RoleCornerDiagonal,
		width, height, t,
		models.Vec3{center.X, c.legOffset + H/2, center.Y},
		models.Vec3{0, angle, 0},
		c.frontMaterialID, models.FullBanding())
	door.CabinetMetadata.Index = models.IntPtr(0)
	door.CabinetMetadata.DoorMetadata = &models.DoorMetadata{
		HingeSide:        hinge,
		OpeningDirection: models.OpenHorizontal,
		Layout:           models.DoorSingle,
	}
	door.CabinetMetadata.HandleMetadata = calc.HandlePlacement(c.params.HandleConfig, width, height, models.FrontSingleDoor, hinge)
	return []models.Part{door}
}
