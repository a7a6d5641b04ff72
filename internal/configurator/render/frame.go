package render

import "furniture-configurator/internal/configurator/models"

// ToCenterFrame re-expresses a corner-frame assembly in the center-floor
// frame used by every other cabinet. Other assemblies are returned as is.
//
// The corner frame's Z points to the back, so the conversion mirrors Z. The
// mirror flips the sign of X and Y rotations and leaves Z rotations alone.
func ToCenterFrame(asm models.Assembly) models.Assembly {
	if asm.Frame != models.FrameCornerFrontLeft {
		return asm
	}

	out := asm
	out.Frame = models.FrameCenterFloor
	out.Parts = make([]models.Part, len(asm.Parts))
	for i, p := range asm.Parts {
		p.Position = models.Vec3{
			p.Position[0] - asm.Width/2,
			p.Position[1],
			asm.Depth/2 - p.Position[2],
		}
		p.Rotation = models.Vec3{-p.Rotation[0], -p.Rotation[1], p.Rotation[2]}
		out.Parts[i] = p
	}
	return out
}
