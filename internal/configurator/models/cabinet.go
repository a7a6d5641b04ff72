package models

// ============================================================
// Materials
// ============================================================

type Material struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name,omitempty" yaml:"name"`
	Thickness float64 `json:"thickness" yaml:"thickness"`
	Category  string  `json:"category" yaml:"category"`
	Color     string  `json:"color" yaml:"color"`
}

// CabinetMaterials only references materials; resolving them is the caller's job.
type CabinetMaterials struct {
	BodyMaterialID  string `json:"bodyMaterialId"`
	FrontMaterialID string `json:"frontMaterialId"`
	BackMaterialID  string `json:"backMaterialId,omitempty"`
}

// ============================================================
// Cabinet parameters
// ============================================================

type CabinetType string

const (
	CabinetKitchen   CabinetType = "KITCHEN"
	CabinetWardrobe  CabinetType = "WARDROBE"
	CabinetBookshelf CabinetType = "BOOKSHELF"
	CabinetDrawer    CabinetType = "DRAWER"
	CabinetWall      CabinetType = "WALL"
	CabinetCorner    CabinetType = "CORNER"
)

// Placement decides whether top/bottom panels sit between the sides (inset)
// or on top of / below them (overlay).
type Placement string

const (
	PlacementInset   Placement = "inset"
	PlacementOverlay Placement = "overlay"
)

// CoordinateFrame names the origin convention a generator family uses.
type CoordinateFrame string

const (
	// FrameCenterFloor: origin at the horizontal center on the floor, +Z to the front.
	FrameCenterFloor CoordinateFrame = "CENTER_FLOOR"
	// FrameCornerFrontLeft: origin at the front-left corner on the floor, +Z to the back.
	FrameCornerFrontLeft CoordinateFrame = "CORNER_FRONT_LEFT"
)

type CabinetParams struct {
	Type               CabinetType `json:"type"`
	Width              float64     `json:"width"`
	Height             float64     `json:"height"`
	Depth              float64     `json:"depth"`
	TopBottomPlacement Placement   `json:"topBottomPlacement"`

	HasBack          bool                `json:"hasBack"`
	BackOverlapRatio float64             `json:"backOverlapRatio,omitempty"`
	HangerCutouts    *HangerCutoutConfig `json:"hangerCutouts,omitempty"`

	Legs *LegsConfig `json:"legs,omitempty"`

	InteriorConfig *InteriorConfig `json:"interiorConfig,omitempty"`

	// Legacy interior fields, normalised into an interior tree before generation.
	ShelfCount   int                  `json:"shelfCount,omitempty"`
	ShelfConfig  *ShelfConfig         `json:"shelfConfig,omitempty"`
	DrawerConfig *DrawerConfiguration `json:"drawerConfig,omitempty"`

	DoorConfig        *DoorConfig        `json:"doorConfig,omitempty"`
	HandleConfig      *HandleConfig      `json:"handleConfig,omitempty"`
	FoldingDoorConfig *FoldingDoorConfig `json:"foldingDoorConfig,omitempty"`

	SideFronts       *SideFrontsConfig       `json:"sideFronts,omitempty"`
	DecorativePanels *DecorativePanelsConfig `json:"decorativePanels,omitempty"`

	CornerConfig *CornerConfig `json:"cornerConfig,omitempty"`
}

func (p CabinetParams) IsInset() bool {
	return p.TopBottomPlacement != PlacementOverlay
}

type HangerCutoutConfig struct {
	Enabled         bool    `json:"enabled"`
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	HorizontalInset float64 `json:"horizontalInset"`
}

// ============================================================
// Legs
// ============================================================

type LegShape string

const (
	LegRound  LegShape = "ROUND"
	LegSquare LegShape = "SQUARE"
)

type LegsConfig struct {
	Enabled  bool     `json:"enabled"`
	Height   float64  `json:"height"`
	Shape    LegShape `json:"shape,omitempty"`
	Diameter float64  `json:"diameter,omitempty"`
	Inset    float64  `json:"inset,omitempty"`
	Count    int      `json:"count,omitempty"` // 4 or 6, zero picks from the cabinet width
	Finish   string   `json:"finish,omitempty"`
	Color    string   `json:"color,omitempty"`
}

// ============================================================
// Side fronts & decorative panels
// ============================================================

type SideFrontConfig struct {
	Enabled          bool    `json:"enabled"`
	MaterialID       string  `json:"materialId,omitempty"`
	ForwardExtension float64 `json:"forwardExtension,omitempty"`
	BottomOffset     float64 `json:"bottomOffset,omitempty"`
	TopOffset        float64 `json:"topOffset,omitempty"`
}

type SideFrontsConfig struct {
	Left  *SideFrontConfig `json:"left,omitempty"`
	Right *SideFrontConfig `json:"right,omitempty"`
}

type DecorativeType string

const (
	DecorativeBlenda    DecorativeType = "BLENDA"
	DecorativePlinth    DecorativeType = "PLINTH"
	DecorativeStrip     DecorativeType = "STRIP"
	DecorativeFullPanel DecorativeType = "FULL_PANEL"
)

type DecorativePanelConfig struct {
	Enabled    bool           `json:"enabled"`
	Type       DecorativeType `json:"type"`
	Height     float64        `json:"height,omitempty"`
	Recess     float64        `json:"recess,omitempty"`
	MaterialID string         `json:"materialId,omitempty"`
}

type DecorativePanelsConfig struct {
	Top    *DecorativePanelConfig `json:"top,omitempty"`
	Bottom *DecorativePanelConfig `json:"bottom,omitempty"`
}

// ============================================================
// Corner cabinets
// ============================================================

type CornerType string

const (
	// CornerLShaped is a single rectangular body with a blind front panel.
	CornerLShaped CornerType = "L_SHAPED"
	// CornerTwoArm models a true two-wall corner with two arms.
	CornerTwoArm CornerType = "TWO_ARM"
)

type WallSharingMode string

const (
	WallSharingNone WallSharingMode = "FULL_ISOLATION"
	WallSharingArmA WallSharingMode = "SHARED_ARM_A"
	WallSharingArmB WallSharingMode = "SHARED_ARM_B"
	WallSharingBoth WallSharingMode = "SHARED_BOTH"
)

type CornerArm struct {
	Length float64 `json:"length"`
	Depth  float64 `json:"depth"`
}

type CornerConfig struct {
	CornerType CornerType `json:"cornerType"`

	// L_SHAPED
	WallSide      HingeSide `json:"wallSide,omitempty"`
	BottomMount   Placement `json:"bottomMount,omitempty"`
	TopMount      Placement `json:"topMount,omitempty"`
	DoorWidth     float64   `json:"doorWidth,omitempty"`
	HingeSide     HingeSide `json:"hingeSide,omitempty"`
	AdjacentDepth float64   `json:"adjacentDepth,omitempty"`
	HasFrontPanel *bool     `json:"hasFrontPanel,omitempty"`
	ShelfCount    int       `json:"shelfCount,omitempty"`

	// TWO_ARM
	ArmA              CornerArm       `json:"armA"`
	ArmB              CornerArm       `json:"armB"`
	CornerOrientation HingeSide       `json:"cornerOrientation,omitempty"`
	WallSharingMode   WallSharingMode `json:"wallSharingMode,omitempty"`
	DiagonalFront     bool            `json:"diagonalFront,omitempty"`
}
