package models

import "math"

// Canonical panel orientations.
var (
	// RotFlat lays a panel parallel to the floor (local height runs along Z).
	RotFlat = Vec3{-math.Pi / 2, 0, 0}
	// RotSide stands a panel parallel to the side walls (local width runs along Z).
	RotSide = Vec3{0, math.Pi / 2, 0}
	// RotFront keeps a panel facing the front.
	RotFront = Vec3{0, 0, 0}
)

// Owner carries the identity shared by every part of one cabinet.
type Owner struct {
	CabinetID   string
	FurnitureID string
}

// Rect builds a rectangular part centered at pos.
func (o Owner) Rect(name string, role PartRole, width, height, thickness float64, pos, rot Vec3, materialID string, banding EdgeBanding) Part {
	return Part{
		Name:        name,
		FurnitureID: o.FurnitureID,
		Group:       o.CabinetID,
		ShapeType:   ShapeRect,
		ShapeParams: ShapeParams{Width: width, Height: height},
		Width:       width,
		Height:      height,
		Depth:       thickness,
		Position:    pos,
		Rotation:    rot,
		MaterialID:  materialID,
		EdgeBanding: banding,
		CabinetMetadata: CabinetMetadata{
			CabinetID: o.CabinetID,
			Role:      role,
		},
	}
}

// Polygon builds a polygon part. Points are given in the local plane and are
// re-centered on their bounding box, which also defines width and height.
func (o Owner) Polygon(name string, role PartRole, points []Point, thickness float64, pos, rot Vec3, materialID string, banding EdgeBanding) Part {
	minX, minY, maxX, maxY := Bounds2D(points)
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	local := make([]Point, len(points))
	for i, p := range points {
		local[i] = Point{X: p.X - cx, Y: p.Y - cy}
	}

	part := o.Rect(name, role, maxX-minX, maxY-minY, thickness, pos, rot, materialID, banding)
	part.ShapeType = ShapePolygon
	part.ShapeParams.Points = local
	return part
}

// Bounds2D returns the bounding box of a point list.
func Bounds2D(points []Point) (minX, minY, maxX, maxY float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = points[0].X, points[0].Y
	maxX, maxY = minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

// ============================================================
// Assembly
// ============================================================

// Assembly is the complete part list of one cabinet together with the
// coordinate frame its positions are expressed in.
type Assembly struct {
	CabinetID   string          `json:"cabinetId"`
	FurnitureID string          `json:"furnitureId"`
	Type        CabinetType     `json:"type"`
	Frame       CoordinateFrame `json:"frame"`
	Width       float64         `json:"width"`
	Height      float64         `json:"height"`
	Depth       float64         `json:"depth"`
	Parts       []Part          `json:"parts"`
}

// PartsByRole filters parts by role, preserving order.
func PartsByRole(parts []Part, role PartRole) []Part {
	var out []Part
	for _, p := range parts {
		if p.CabinetMetadata.Role == role {
			out = append(out, p)
		}
	}
	return out
}
