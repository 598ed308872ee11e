// Package render converts images to terminal cell output. Each cell
// carries two vertical pixels through the upper half block: the
// foreground paints the top pixel and the background the bottom, which
// doubles the effective vertical resolution.
package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
)

const halfBlock = "▀"

// Grid is a cell matrix built from an image. Text can be overlaid on
// individual cells before serialization, so captions float over the
// pixels instead of displacing them.
type Grid struct {
	w, h  int
	cells [][]gridCell
}

type gridCell struct {
	top    color.NRGBA
	bottom color.NRGBA
	// text is zero when the cell shows pixels.
	text rune
	fg   color.NRGBA
}

// NewGrid splits img into cells of two vertical pixels. An odd final
// pixel row duplicates its top pixel. Returns nil for a nil or empty
// image.
func NewGrid(img image.Image) *Grid {
	if img == nil {
		return nil
	}
	bounds := img.Bounds()
	pw, ph := bounds.Dx(), bounds.Dy()
	if pw <= 0 || ph <= 0 {
		return nil
	}

	g := &Grid{w: pw, h: (ph + 1) / 2}
	g.cells = make([][]gridCell, g.h)
	for row := 0; row < g.h; row++ {
		g.cells[row] = make([]gridCell, pw)
		for col := 0; col < pw; col++ {
			y := bounds.Min.Y + row*2
			top := toNRGBA(img.At(bounds.Min.X+col, y))
			bottom := top
			if y+1 < bounds.Max.Y {
				bottom = toNRGBA(img.At(bounds.Min.X+col, y+1))
			}
			g.cells[row][col] = gridCell{top: top, bottom: bottom}
		}
	}
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.w }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.h }

// Overlay writes text starting at (row, col) in the given foreground.
// Each glyph keeps the blended pixel colors behind it as its background.
// Out-of-range positions are clipped.
func (g *Grid) Overlay(row, col int, text string, fg color.NRGBA) {
	if row < 0 || row >= g.h {
		return
	}
	for i, r := range []rune(text) {
		c := col + i
		if c < 0 || c >= g.w {
			continue
		}
		g.cells[row][c].text = r
		g.cells[row][c].fg = fg
	}
}

// OverlayCentered writes text horizontally centered on row.
func (g *Grid) OverlayCentered(row int, text string, fg color.NRGBA) {
	g.Overlay(row, (g.w-len([]rune(text)))/2, text, fg)
}

// String serializes the grid as truecolor ANSI rows joined by newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			c := g.cells[row][col]
			if c.text != 0 {
				bg := blendNRGBA(c.top, c.bottom)
				fmt.Fprintf(&sb, "\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm%c\033[0m",
					c.fg.R, c.fg.G, c.fg.B, bg.R, bg.G, bg.B, c.text)
				continue
			}
			fmt.Fprintf(&sb, "\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm%s\033[0m",
				c.top.R, c.top.G, c.top.B, c.bottom.R, c.bottom.G, c.bottom.B, halfBlock)
		}
		if row < g.h-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Cells renders img directly, one cell per two vertical pixels.
func Cells(img image.Image) string {
	g := NewGrid(img)
	if g == nil {
		return ""
	}
	return g.String()
}

// Fit scales img into a width x height cell box, preserving aspect
// ratio, and renders it.
func Fit(img image.Image, width, height int) string {
	if img == nil || width <= 0 || height <= 0 {
		return ""
	}
	return Cells(imaging.Fit(img, width, height*2, imaging.Lanczos))
}

// toNRGBA converts any color to 8-bit non-premultiplied RGBA.
func toNRGBA(c color.Color) color.NRGBA {
	r, g, b, a := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// blendNRGBA averages two colors, used as the backdrop behind overlay
// glyphs.
func blendNRGBA(a, b color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8((int(a.R) + int(b.R)) / 2),
		G: uint8((int(a.G) + int(b.G)) / 2),
		B: uint8((int(a.B) + int(b.B)) / 2),
		A: 255,
	}
}
