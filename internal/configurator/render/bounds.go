// Package render turns generated assemblies into views: world-space bounds,
// frame conversion and an SVG front elevation.
package render

import (
	"math"

	"furniture-configurator/internal/configurator/models"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	axisX = r3.Vec{X: 1}
	axisY = r3.Vec{Y: 1}
	axisZ = r3.Vec{Z: 1}
)

// rotate applies Euler angles in XYZ order (the Z rotation acts first).
func rotate(v r3.Vec, rot models.Vec3) r3.Vec {
	if rot[2] != 0 {
		v = r3.NewRotation(rot[2], axisZ).Rotate(v)
	}
	if rot[1] != 0 {
		v = r3.NewRotation(rot[1], axisY).Rotate(v)
	}
	if rot[0] != 0 {
		v = r3.NewRotation(rot[0], axisX).Rotate(v)
	}
	return v
}

// PartBounds returns the axis-aligned world box of a part: its local
// width x height x depth box, rotated and moved to its position.
func PartBounds(p models.Part) r3.Box {
	hw, hh, hd := p.Width/2, p.Height/2, p.Depth/2
	center := r3.Vec{X: p.Position[0], Y: p.Position[1], Z: p.Position[2]}

	box := emptyBox()
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				corner := rotate(r3.Vec{X: sx * hw, Y: sy * hh, Z: sz * hd}, p.Rotation)
				box = extend(box, r3.Add(center, corner))
			}
		}
	}
	return snap(box)
}

// Bounds returns the box enclosing all parts. It is empty for no parts.
func Bounds(parts []models.Part) r3.Box {
	if len(parts) == 0 {
		return r3.Box{}
	}
	box := emptyBox()
	for _, p := range parts {
		pb := PartBounds(p)
		box = extend(box, pb.Min)
		box = extend(box, pb.Max)
	}
	return box
}

func emptyBox() r3.Box {
	inf := math.Inf(1)
	return r3.Box{
		Min: r3.Vec{X: inf, Y: inf, Z: inf},
		Max: r3.Vec{X: -inf, Y: -inf, Z: -inf},
	}
}

func extend(b r3.Box, v r3.Vec) r3.Box {
	b.Min = r3.Vec{X: math.Min(b.Min.X, v.X), Y: math.Min(b.Min.Y, v.Y), Z: math.Min(b.Min.Z, v.Z)}
	b.Max = r3.Vec{X: math.Max(b.Max.X, v.X), Y: math.Max(b.Max.Y, v.Y), Z: math.Max(b.Max.Z, v.Z)}
	return b
}

// snap removes rotation noise (1e-13 and the like) from box coordinates.
func snap(b r3.Box) r3.Box {
	round := func(v float64) float64 { return math.Round(v*1e6) / 1e6 }
	b.Min = r3.Vec{X: round(b.Min.X), Y: round(b.Min.Y), Z: round(b.Min.Z)}
	b.Max = r3.Vec{X: round(b.Max.X), Y: round(b.Max.Y), Z: round(b.Max.Z)}
	return b
}
