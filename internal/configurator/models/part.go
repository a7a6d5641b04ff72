package models

// ============================================================
// Generated parts
// ============================================================

// Vec3 is an [x, y, z] triple in millimetres (positions) or radians (rotations).
type Vec3 [3]float64

type ShapeType string

const (
	ShapeRect    ShapeType = "RECT"
	ShapePolygon ShapeType = "POLYGON"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ShapeParams describes the outline in the part's local 2D plane.
// Points are only set for polygons and are centered on the part origin.
type ShapeParams struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Points []Point `json:"points,omitempty"`
}

type EdgeBandingType string

const (
	EdgeBandingRect    EdgeBandingType = "RECT"
	EdgeBandingGeneric EdgeBandingType = "GENERIC"
)

// EdgeBanding marks finished edges. Rect banding uses the local top/bottom/left/right
// edges (their meaning follows the part rotation); generic banding lists polygon edge indices.
type EdgeBanding struct {
	Type   EdgeBandingType `json:"type"`
	Top    bool            `json:"top"`
	Bottom bool            `json:"bottom"`
	Left   bool            `json:"left"`
	Right  bool            `json:"right"`
	Edges  []int           `json:"edges,omitempty"`
}

func FullBanding() EdgeBanding {
	return EdgeBanding{Type: EdgeBandingRect, Top: true, Bottom: true, Left: true, Right: true}
}

func NoBanding() EdgeBanding {
	return EdgeBanding{Type: EdgeBandingRect}
}

// FrontEdgeBanding bands the edge that faces the cabinet front for a panel
// laid flat with a -pi/2 rotation about X (local bottom edge ends up at +Z).
func FrontEdgeBanding() EdgeBanding {
	return EdgeBanding{Type: EdgeBandingRect, Bottom: true}
}

func (e EdgeBanding) HasAny() bool {
	if e.Type == EdgeBandingGeneric {
		return len(e.Edges) > 0
	}
	return e.Top || e.Bottom || e.Left || e.Right
}

// EdgeCount returns how many edges carry banding.
func (e EdgeBanding) EdgeCount() int {
	if e.Type == EdgeBandingGeneric {
		return len(e.Edges)
	}
	n := 0
	for _, b := range []bool{e.Top, e.Bottom, e.Left, e.Right} {
		if b {
			n++
		}
	}
	return n
}

type Part struct {
	Name            string          `json:"name"`
	FurnitureID     string          `json:"furnitureId"`
	Group           string          `json:"group"`
	ShapeType       ShapeType       `json:"shapeType"`
	ShapeParams     ShapeParams     `json:"shapeParams"`
	Width           float64         `json:"width"`
	Height          float64         `json:"height"`
	Depth           float64         `json:"depth"`
	Position        Vec3            `json:"position"`
	Rotation        Vec3            `json:"rotation"`
	MaterialID      string          `json:"materialId"`
	EdgeBanding     EdgeBanding     `json:"edgeBanding"`
	CabinetMetadata CabinetMetadata `json:"cabinetMetadata"`
}

// ============================================================
// Part metadata
// ============================================================

type CabinetMetadata struct {
	CabinetID      string          `json:"cabinetId"`
	Role           PartRole        `json:"role"`
	Index          *int            `json:"index,omitempty"`
	DrawerIndex    *int            `json:"drawerIndex,omitempty"`
	LegIndex       *int            `json:"legIndex,omitempty"`
	DoorMetadata   *DoorMetadata   `json:"doorMetadata,omitempty"`
	HandleMetadata *HandleMetadata `json:"handleMetadata,omitempty"`
	LegMetadata    *LegMetadata    `json:"legMetadata,omitempty"`
	DecorativeType DecorativeType  `json:"decorativeType,omitempty"`
}

type DoorMetadata struct {
	HingeSide        HingeSide        `json:"hingeSide"`
	OpeningDirection OpeningDirection `json:"openingDirection"`
	Layout           DoorLayout       `json:"layout"`
	Section          FoldingSection   `json:"section,omitempty"`
}

// HandleMetadata holds a resolved handle placement relative to the front's center.
type HandleMetadata struct {
	Config      HandleConfig      `json:"config"`
	X           float64           `json:"x"`
	Y           float64           `json:"y"`
	Orientation HandleOrientation `json:"orientation"`
}

type LegMetadata struct {
	Shape    LegShape `json:"shape"`
	Finish   string   `json:"finish,omitempty"`
	Color    string   `json:"color,omitempty"`
	Diameter float64  `json:"diameter"`
	Height   float64  `json:"height"`
}

// IntPtr is a helper for the optional index fields.
func IntPtr(v int) *int {
	return &v
}

// FloatPtr is a helper for optional measurements.
func FloatPtr(v float64) *float64 {
	return &v
}
