package models

// ============================================================
// Interior zone tree
// ============================================================

type ZoneContentType string

const (
	ZoneEmpty   ZoneContentType = "EMPTY"
	ZoneShelves ZoneContentType = "SHELVES"
	ZoneDrawers ZoneContentType = "DRAWERS"
	ZoneNested  ZoneContentType = "NESTED"
)

// Direction of a NESTED split: HORIZONTAL stacks rows bottom-to-top,
// VERTICAL places columns left-to-right.
type Direction string

const (
	DivisionHorizontal Direction = "HORIZONTAL"
	DivisionVertical   Direction = "VERTICAL"
)

type HeightMode string

const (
	HeightRatio HeightMode = "RATIO"
	HeightExact HeightMode = "EXACT"
)

type HeightConfig struct {
	Mode        HeightMode `json:"mode"`
	Ratio       float64    `json:"ratio,omitempty"`
	ExactHeight float64    `json:"exactHeight,omitempty"`
}

type WidthMode string

const (
	WidthFixed        WidthMode = "FIXED"
	WidthProportional WidthMode = "PROPORTIONAL"
)

type WidthConfig struct {
	Mode       WidthMode `json:"mode"`
	FixedWidth float64   `json:"fixedWidth,omitempty"`
	Ratio      float64   `json:"ratio,omitempty"`
}

type DepthPreset string

const (
	DepthFull   DepthPreset = "FULL"
	DepthHalf   DepthPreset = "HALF"
	DepthCustom DepthPreset = "CUSTOM"
)

type PartitionConfig struct {
	Enabled     bool        `json:"enabled"`
	DepthPreset DepthPreset `json:"depthPreset,omitempty"`
	CustomDepth float64     `json:"customDepth,omitempty"`
	MaterialID  string      `json:"materialId,omitempty"`
}

// InteriorZone is a node of the interior tree. Nodes are treated as immutable
// values; edits go through the rebuild helpers in the interior package.
type InteriorZone struct {
	ID                string               `json:"id,omitempty"`
	ContentType       ZoneContentType      `json:"contentType"`
	HeightConfig      HeightConfig         `json:"heightConfig"`
	WidthConfig       *WidthConfig         `json:"widthConfig,omitempty"`
	DivisionDirection Direction            `json:"divisionDirection,omitempty"`
	Children          []InteriorZone       `json:"children,omitempty"`
	Partitions        []PartitionConfig    `json:"partitions,omitempty"`
	ShelvesConfig     *ShelfConfig         `json:"shelvesConfig,omitempty"`
	DrawerConfig      *DrawerConfiguration `json:"drawerConfig,omitempty"`
	Depth             int                  `json:"depth"`
}

func (z InteriorZone) IsLeaf() bool {
	return z.ContentType != ZoneNested || len(z.Children) == 0
}

type InteriorConfig struct {
	Root InteriorZone `json:"root"`
}

// ============================================================
// Shelves
// ============================================================

type ShelfMode string

const (
	ShelfUniform ShelfMode = "UNIFORM"
	ShelfManual  ShelfMode = "MANUAL"
)

type ShelfItem struct {
	DepthPreset DepthPreset `json:"depthPreset,omitempty"`
	CustomDepth float64     `json:"customDepth,omitempty"`
	MaterialID  string      `json:"materialId,omitempty"`
}

type ShelfConfig struct {
	Mode        ShelfMode   `json:"mode"`
	Count       int         `json:"count"`
	DepthPreset DepthPreset `json:"depthPreset,omitempty"`
	CustomDepth float64     `json:"customDepth,omitempty"`
	MaterialID  string      `json:"materialId,omitempty"`
	Shelves     []ShelfItem `json:"shelves,omitempty"`
}

// ============================================================
// Drawers
// ============================================================

type SlideType string

const (
	SlideSideMount   SlideType = "SIDE_MOUNT"
	SlideBallBearing SlideType = "BALL_BEARING"
	SlideUndermount  SlideType = "UNDERMOUNT"
)

// DrawerFront is the visible face of a zone. A nil front means the zone is internal.
type DrawerFront struct {
	HandleConfig *HandleConfig `json:"handleConfig,omitempty"`
	MaterialID   string        `json:"materialId,omitempty"`
}

type DrawerBox struct {
	HeightRatio float64 `json:"heightRatio"`
}

type AboveBoxContent struct {
	Shelves []ShelfItem `json:"shelves,omitempty"`
}

type DrawerZone struct {
	ID              string           `json:"id,omitempty"`
	HeightRatio     float64          `json:"heightRatio"`
	Front           *DrawerFront     `json:"front"`
	Boxes           []DrawerBox      `json:"boxes"`
	BoxToFrontRatio float64          `json:"boxToFrontRatio,omitempty"`
	AboveBoxContent *AboveBoxContent `json:"aboveBoxContent,omitempty"`
}

// EffectiveBoxToFrontRatio defaults missing or out-of-range ratios to 1.
func (z DrawerZone) EffectiveBoxToFrontRatio() float64 {
	if z.BoxToFrontRatio <= 0 || z.BoxToFrontRatio > 1 {
		return 1
	}
	return z.BoxToFrontRatio
}

type DrawerConfiguration struct {
	SlideType SlideType    `json:"slideType"`
	Zones     []DrawerZone `json:"zones"`
}
