// Package raster renders scene command lists onto an in-memory pixel
// canvas. Rendering is deterministic: no randomness and no shared state,
// so identical commands and dimensions always produce identical pixels.
// Terminal presentation of the resulting image is handled by
// display/render.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"gitlab.com/tinyland/lab/nova-hud/scene"
)

// Render rasterizes cmds onto a w x h canvas pre-filled with bg. A
// degenerate viewport returns nil; callers skip the frame rather than
// drawing a broken one.
func Render(cmds []scene.Command, w, h int, bg color.NRGBA) *image.NRGBA {
	if w <= 0 || h <= 0 {
		return nil
	}

	cv := &canvas{
		img: image.NewNRGBA(image.Rect(0, 0, w, h)),
		w:   w,
		h:   h,
	}
	cv.fill(bg)

	for _, cmd := range cmds {
		switch v := cmd.(type) {
		case scene.Glow:
			cv.drawGlow(v)
		case scene.Arc:
			cv.drawArc(v)
		case scene.Dot:
			cv.drawDot(v)
		case scene.Rect:
			cv.drawRect(v)
		case scene.Box:
			cv.drawBox(v)
		}
	}

	return cv.img
}

// RenderOver rasterizes cmds onto a copy of base, leaving base
// untouched. It is how detection outlines land on camera frames.
func RenderOver(base image.Image, cmds []scene.Command) *image.NRGBA {
	if base == nil {
		return nil
	}
	img := imaging.Clone(base)
	b := img.Bounds()
	cv := &canvas{img: img, w: b.Dx(), h: b.Dy()}

	for _, cmd := range cmds {
		switch v := cmd.(type) {
		case scene.Glow:
			cv.drawGlow(v)
		case scene.Arc:
			cv.drawArc(v)
		case scene.Dot:
			cv.drawDot(v)
		case scene.Rect:
			cv.drawRect(v)
		case scene.Box:
			cv.drawBox(v)
		}
	}

	return img
}

// RenderScaled rasterizes the commands produced by build at ss times the
// target size, then downsamples with a Lanczos filter. Supersampling is
// the antialiasing strategy: strokes keep sub-pixel detail that a direct
// render at cell resolution would lose.
func RenderScaled(build func(w, h int) []scene.Command, w, h, ss int, bg color.NRGBA) *image.NRGBA {
	if w <= 0 || h <= 0 {
		return nil
	}
	if ss < 1 {
		ss = 1
	}

	img := Render(build(w*ss, h*ss), w*ss, h*ss, bg)
	if img == nil || ss == 1 {
		return img
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// canvas wraps the target image with clipped alpha blending.
type canvas struct {
	img  *image.NRGBA
	w, h int
}

// fill sets every pixel to the opaque background color.
func (c *canvas) fill(bg color.NRGBA) {
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = bg.R
		pix[i+1] = bg.G
		pix[i+2] = bg.B
		pix[i+3] = 255
	}
}

// blend composites col over the pixel at (x, y) with the given coverage.
// The effective alpha is coverage scaled by the color's own alpha; the
// canvas stays opaque because the background fill already is.
func (c *canvas) blend(x, y int, col color.NRGBA, coverage float64) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h || coverage <= 0 {
		return
	}
	if coverage > 1 {
		coverage = 1
	}
	a := coverage * float64(col.A) / 255
	if a <= 0 {
		return
	}

	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	p[0] = blendChannel(p[0], col.R, a)
	p[1] = blendChannel(p[1], col.G, a)
	p[2] = blendChannel(p[2], col.B, a)
	p[3] = 255
}

func blendChannel(dst, src uint8, a float64) uint8 {
	return uint8(float64(src)*a + float64(dst)*(1-a) + 0.5)
}

// drawGlow paints a radial gradient across the whole canvas: Inner at the
// center fading to Outer at the glow radius and beyond.
func (c *canvas) drawGlow(g scene.Glow) {
	if g.Radius <= 0 {
		return
	}
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			d := math.Hypot(float64(x)+0.5-g.CX, float64(y)+0.5-g.CY) / g.Radius
			if d > 1 {
				d = 1
			}
			col := lerpColor(g.Inner, g.Outer, d)
			c.blend(x, y, col, 1)
		}
	}
}

// drawArc strokes a circular arc with round caps using a signed distance
// field: pixels within half a stroke of the circle and inside the sweep
// get full coverage, edges fade over one pixel, and pixels beyond the
// sweep are covered by their distance to the nearer cap center.
func (c *canvas) drawArc(a scene.Arc) {
	if a.Radius <= 0 || a.Stroke <= 0 || a.SweepDeg <= 0 {
		return
	}

	half := a.Stroke / 2
	pad := half + 1
	x0, y0, x1, y1 := c.clipBounds(a.CX, a.CY, a.Radius+pad)

	full := a.SweepDeg >= 360
	start := math.Mod(a.StartDeg, 360)
	if start < 0 {
		start += 360
	}

	startRad := start * math.Pi / 180
	endRad := (start + a.SweepDeg) * math.Pi / 180
	cap0x := a.CX + a.Radius*math.Cos(startRad)
	cap0y := a.CY + a.Radius*math.Sin(startRad)
	cap1x := a.CX + a.Radius*math.Cos(endRad)
	cap1y := a.CY + a.Radius*math.Sin(endRad)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px := float64(x) + 0.5
			py := float64(y) + 0.5
			dx := px - a.CX
			dy := py - a.CY

			radial := math.Abs(math.Hypot(dx, dy) - a.Radius)
			if radial > pad {
				continue
			}

			var cov float64
			if full || inSweep(dx, dy, start, a.SweepDeg) {
				cov = clamp01(half + 0.5 - radial)
			} else {
				capDist := math.Min(math.Hypot(px-cap0x, py-cap0y), math.Hypot(px-cap1x, py-cap1y))
				cov = clamp01(half + 0.5 - capDist)
			}
			c.blend(x, y, a.Color, cov)
		}
	}
}

// inSweep reports whether the point offset (dx, dy) from the arc center
// lies within the sweep starting at startDeg. Angles are measured
// clockwise from the positive x axis, which in y-down screen coordinates
// is plain atan2.
func inSweep(dx, dy, startDeg, sweepDeg float64) bool {
	ang := math.Atan2(dy, dx) * 180 / math.Pi
	if ang < 0 {
		ang += 360
	}
	delta := ang - startDeg
	if delta < 0 {
		delta += 360
	}
	return delta <= sweepDeg
}

// drawDot fills a circle with one pixel of edge antialiasing.
func (c *canvas) drawDot(d scene.Dot) {
	if d.Radius <= 0 {
		return
	}
	x0, y0, x1, y1 := c.clipBounds(d.CX, d.CY, d.Radius+1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dist := math.Hypot(float64(x)+0.5-d.CX, float64(y)+0.5-d.CY)
			c.blend(x, y, d.Color, clamp01(d.Radius+0.5-dist))
		}
	}
}

// drawRect fills an axis-aligned rectangle with analytic edge coverage.
func (c *canvas) drawRect(r scene.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0 := int(math.Floor(r.X))
	y0 := int(math.Floor(r.Y))
	x1 := int(math.Ceil(r.X + r.W))
	y1 := int(math.Ceil(r.Y + r.H))

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			covX := clamp01(math.Min(r.X+r.W, float64(x)+1)-math.Max(r.X, float64(x)))
			covY := clamp01(math.Min(r.Y+r.H, float64(y)+1)-math.Max(r.Y, float64(y)))
			c.blend(x, y, r.Color, covX*covY)
		}
	}
}

// drawBox strokes a rectangle outline as four filled edge rectangles.
func (c *canvas) drawBox(b scene.Box) {
	if b.W <= 0 || b.H <= 0 || b.Stroke <= 0 {
		return
	}
	s := b.Stroke
	if s*2 > b.W {
		s = b.W / 2
	}
	if s*2 > b.H {
		s = b.H / 2
	}

	c.drawRect(scene.Rect{X: b.X, Y: b.Y, W: b.W, H: s, Color: b.Color})
	c.drawRect(scene.Rect{X: b.X, Y: b.Y + b.H - s, W: b.W, H: s, Color: b.Color})
	c.drawRect(scene.Rect{X: b.X, Y: b.Y + s, W: s, H: b.H - 2*s, Color: b.Color})
	c.drawRect(scene.Rect{X: b.X + b.W - s, Y: b.Y + s, W: s, H: b.H - 2*s, Color: b.Color})
}

// clipBounds returns the pixel bounds of a circle of the given radius
// clipped to the canvas.
func (c *canvas) clipBounds(cx, cy, radius float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(cx - radius))
	y0 = int(math.Floor(cy - radius))
	x1 = int(math.Ceil(cx + radius))
	y1 = int(math.Ceil(cy + radius))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > c.w-1 {
		x1 = c.w - 1
	}
	if y1 > c.h-1 {
		y1 = c.h - 1
	}
	return x0, y0, x1, y1
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerpColor interpolates both color and alpha channels from a to b by t.
func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
