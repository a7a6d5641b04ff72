package render

import (
	"fmt"
	"io"
	"math"
	"sort"

	"furniture-configurator/internal/configurator/models"

	svg "github.com/ajstarks/svgo"
	"gonum.org/v1/gonum/spatial/r3"
)

// ============================================================
// Front elevation
// ============================================================

// Options controls the elevation drawing.
type Options struct {
	// Scale is pixels per millimetre. Zero means 0.5.
	Scale float64
	// Padding around the drawing in pixels. Zero means 40.
	Padding int
	// ShowDimensions adds overall width and height measure lines.
	ShowDimensions bool
	// HideDrawerBoxes skips drawer boxes, which sit behind their fronts.
	HideDrawerBoxes bool
}

const (
	defaultScale   = 0.5
	defaultPadding = 40
)

var roleFill = map[models.PartRole]string{
	models.RoleBack:             "#d9d2c5",
	models.RoleDoor:             "#f3e9d2",
	models.RoleDrawerFront:      "#f3e9d2",
	models.RoleCornerDiagonal:   "#f3e9d2",
	models.RoleCornerFrontPanel: "#e8dcc0",
	models.RoleShelf:            "#c9a97a",
	models.RolePartition:        "#c9a97a",
	models.RoleLeg:              "#555555",
	models.RoleSideFrontLeft:    "#e8dcc0",
	models.RoleSideFrontRight:   "#e8dcc0",
	models.RoleDecorativeTop:    "#b89b72",
	models.RoleDecorativeBot:    "#b89b72",
}

const bodyFill = "#b8956a"

func fillFor(role models.PartRole) string {
	if role.IsDrawerBox() {
		return "#e0e0e0"
	}
	if f, ok := roleFill[role]; ok {
		return f
	}
	return bodyFill
}

// view maps world millimetres to canvas pixels. Y is flipped so the floor
// ends up at the bottom of the picture.
type view struct {
	minX, maxY float64
	scale      float64
	pad        int
}

func (v view) x(wx float64) int {
	return v.pad + int(math.Round((wx-v.minX)*v.scale))
}

func (v view) y(wy float64) int {
	return v.pad + int(math.Round((v.maxY-wy)*v.scale))
}

func (v view) size(mm float64) int {
	return int(math.Round(mm * v.scale))
}

// FrontElevation writes an SVG front view of the assembly. Corner
// assemblies are converted to the center-floor frame first. Parts are
// painted back to front so fronts cover the body behind them.
func FrontElevation(w io.Writer, asm models.Assembly, opts Options) error {
	asm = ToCenterFrame(asm)
	if len(asm.Parts) == 0 {
		return fmt.Errorf("assembly %q has no parts", asm.CabinetID)
	}
	if opts.Scale <= 0 {
		opts.Scale = defaultScale
	}
	if opts.Padding <= 0 {
		opts.Padding = defaultPadding
	}

	type placed struct {
		part models.Part
		box  r3.Box
	}
	items := make([]placed, 0, len(asm.Parts))
	for _, p := range asm.Parts {
		if opts.HideDrawerBoxes && p.CabinetMetadata.Role.IsDrawerBox() {
			continue
		}
		items = append(items, placed{part: p, box: PartBounds(p)})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].box.Max.Z < items[j].box.Max.Z
	})

	all := Bounds(asm.Parts)
	v := view{minX: all.Min.X, maxY: all.Max.Y, scale: opts.Scale, pad: opts.Padding}
	width := v.size(all.Max.X-all.Min.X) + 2*opts.Padding
	height := v.size(all.Max.Y-all.Min.Y) + 2*opts.Padding

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title(fmt.Sprintf("%s %s", asm.Type, asm.CabinetID))

	canvas.Gid("parts")
	for _, it := range items {
		drawPart(canvas, v, it.part, it.box)
	}
	canvas.Gend()

	canvas.Gid("handles")
	for _, it := range items {
		drawHandle(canvas, v, it.part)
	}
	canvas.Gend()

	if opts.ShowDimensions {
		drawDimensions(canvas, v, all)
	}

	canvas.End()
	return nil
}

func drawPart(canvas *svg.SVG, v view, p models.Part, box r3.Box) {
	style := fmt.Sprintf("fill:%s;stroke:#333;stroke-width:0.5", fillFor(p.CabinetMetadata.Role))

	// Polygons facing the viewer keep their outline; everything else shows
	// the silhouette of its world box.
	if p.ShapeType == models.ShapePolygon && facesFront(p.Rotation) && len(p.ShapeParams.Points) > 2 {
		xs := make([]int, len(p.ShapeParams.Points))
		ys := make([]int, len(p.ShapeParams.Points))
		for i, pt := range p.ShapeParams.Points {
			world := r3.Add(r3.Vec{X: p.Position[0], Y: p.Position[1], Z: p.Position[2]},
				rotate(r3.Vec{X: pt.X, Y: pt.Y}, p.Rotation))
			xs[i] = v.x(world.X)
			ys[i] = v.y(world.Y)
		}
		canvas.Polygon(xs, ys, style)
		return
	}

	w := v.size(box.Max.X - box.Min.X)
	h := v.size(box.Max.Y - box.Min.Y)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	canvas.Rect(v.x(box.Min.X), v.y(box.Max.Y), w, h, style)
}

// facesFront reports whether the part's local XY plane stays parallel to
// the world XY plane.
func facesFront(rot models.Vec3) bool {
	const eps = 1e-9
	flat := func(a float64) bool {
		r := math.Mod(math.Abs(a), math.Pi)
		return r < eps || math.Pi-r < eps
	}
	return flat(rot[0]) && flat(rot[1])
}

func drawHandle(canvas *svg.SVG, v view, p models.Part) {
	h := p.CabinetMetadata.HandleMetadata
	if h == nil || h.Config.Type == models.HandleNone {
		return
	}

	center := r3.Add(r3.Vec{X: p.Position[0], Y: p.Position[1], Z: p.Position[2]},
		rotate(r3.Vec{X: h.X, Y: h.Y}, p.Rotation))
	cx, cy := v.x(center.X), v.y(center.Y)
	style := "stroke:#222;stroke-width:2;stroke-linecap:round"

	if h.Config.Type == models.HandleKnob {
		canvas.Circle(cx, cy, max(v.size(8), 2), "fill:#222")
		return
	}

	half := h.Config.Dimensions.Length / 2
	if h.Orientation == models.HandleVertical {
		canvas.Line(cx, cy-v.size(half), cx, cy+v.size(half), style)
		return
	}
	canvas.Line(cx-v.size(half), cy, cx+v.size(half), cy, style)
}

func drawDimensions(canvas *svg.SVG, v view, all r3.Box) {
	left, right := v.x(all.Min.X), v.x(all.Max.X)
	top, bottom := v.y(all.Max.Y), v.y(all.Min.Y)
	lineStyle := "stroke:#333;stroke-width:0.5"
	textStyle := "text-anchor:middle;font-size:11px;fill:#333"

	y := bottom + v.pad/2
	canvas.Line(left, y, right, y, lineStyle)
	canvas.Line(left, y-3, left, y+3, lineStyle)
	canvas.Line(right, y-3, right, y+3, lineStyle)
	canvas.Text((left+right)/2, y-4, fmt.Sprintf("%.0f mm", all.Max.X-all.Min.X), textStyle)

	x := left - v.pad/2
	canvas.Line(x, top, x, bottom, lineStyle)
	canvas.Line(x-3, top, x+3, top, lineStyle)
	canvas.Line(x-3, bottom, x+3, bottom, lineStyle)
	canvas.Text(x-4, (top+bottom)/2, fmt.Sprintf("%.0f mm", all.Max.Y-all.Min.Y),
		fmt.Sprintf("%s;writing-mode:tb", textStyle))
}
