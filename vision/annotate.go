package vision

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"gitlab.com/tinyland/lab/nova-hud/raster"
	"gitlab.com/tinyland/lab/nova-hud/scene"
)

// outlineColor is the HUD accent used for detection outlines.
var outlineColor = color.NRGBA{R: 100, G: 220, B: 255, A: 255}

// outlineStroke is the outline thickness in frame pixels.
const outlineStroke = 2.0

// Annotate returns a copy of the frame image with every detection region
// outlined. Labels are not painted into pixels; the terminal layer
// overlays them as text so they stay crisp at cell resolution.
func Annotate(f Frame) *image.NRGBA {
	if f.Image == nil {
		return nil
	}
	if len(f.Regions) == 0 {
		return imaging.Clone(f.Image)
	}

	cmds := make([]scene.Command, 0, len(f.Regions))
	for _, r := range f.Regions {
		cmds = append(cmds, scene.Box{
			X:      float64(r.Rect.Min.X),
			Y:      float64(r.Rect.Min.Y),
			W:      float64(r.Rect.Dx()),
			H:      float64(r.Rect.Dy()),
			Stroke: outlineStroke,
			Color:  outlineColor,
		})
	}
	return raster.RenderOver(f.Image, cmds)
}
