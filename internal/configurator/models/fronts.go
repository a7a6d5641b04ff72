package models

// ============================================================
// Doors
// ============================================================

type DoorLayout string

const (
	DoorSingle DoorLayout = "SINGLE"
	DoorDouble DoorLayout = "DOUBLE"
)

type HingeSide string

const (
	HingeLeft  HingeSide = "LEFT"
	HingeRight HingeSide = "RIGHT"
)

// Opposite returns the other side. An empty side is treated as LEFT.
func (h HingeSide) Opposite() HingeSide {
	if h == HingeRight {
		return HingeLeft
	}
	return HingeRight
}

type OpeningDirection string

const (
	OpenHorizontal OpeningDirection = "HORIZONTAL"
	OpenLiftUp     OpeningDirection = "LIFT_UP"
	OpenFoldUp     OpeningDirection = "FOLD_UP"
	OpenDrawer     OpeningDirection = "PULL_OUT"
)

type DoorConfig struct {
	Layout           DoorLayout       `json:"layout"`
	HingeSide        HingeSide        `json:"hingeSide,omitempty"`
	OpeningDirection OpeningDirection `json:"openingDirection,omitempty"`
}

type FoldingSection string

const (
	SectionLower FoldingSection = "LOWER"
	SectionUpper FoldingSection = "UPPER"
)

// FoldingDoorConfig leaves a field nil to take its default. A split ratio
// of 0 or 1 is valid and collapses one section.
type FoldingDoorConfig struct {
	SplitRatio *float64 `json:"splitRatio,omitempty"`
	SectionGap *float64 `json:"sectionGap,omitempty"`
}

// ============================================================
// Handles
// ============================================================

type HandleType string

const (
	HandleBar     HandleType = "BAR"
	HandleKnob    HandleType = "KNOB"
	HandleProfile HandleType = "EDGE_PROFILE"
	HandleNone    HandleType = "NONE"
)

type HandlePosition string

const (
	HandleSmart        HandlePosition = ""
	HandleTopLeft      HandlePosition = "TOP_LEFT"
	HandleTopCenter    HandlePosition = "TOP_CENTER"
	HandleTopRight     HandlePosition = "TOP_RIGHT"
	HandleMiddleLeft   HandlePosition = "MIDDLE_LEFT"
	HandleMiddleRight  HandlePosition = "MIDDLE_RIGHT"
	HandleBottomLeft   HandlePosition = "BOTTOM_LEFT"
	HandleBottomCenter HandlePosition = "BOTTOM_CENTER"
	HandleBottomRight  HandlePosition = "BOTTOM_RIGHT"
	HandleCustom       HandlePosition = "CUSTOM"
)

type HandleOrientation string

const (
	HandleHorizontal HandleOrientation = "HORIZONTAL"
	HandleVertical   HandleOrientation = "VERTICAL"
)

type HandleDimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

type HandleConfig struct {
	Type           HandleType        `json:"type"`
	Position       HandlePosition    `json:"position,omitempty"`
	CustomX        float64           `json:"customX,omitempty"`
	CustomY        float64           `json:"customY,omitempty"`
	Orientation    HandleOrientation `json:"orientation,omitempty"`
	Dimensions     HandleDimensions  `json:"dimensions"`
	OffsetFromEdge float64           `json:"offsetFromEdge,omitempty"`
	Finish         string            `json:"finish,omitempty"`
}

// FrontKind tells the handle calculator what kind of front it is placing on.
type FrontKind string

const (
	FrontSingleDoor  FrontKind = "SINGLE"
	FrontDoubleDoor  FrontKind = "DOUBLE"
	FrontDrawer      FrontKind = "DRAWER"
	FrontFoldingDoor FrontKind = "FOLDING"
)
