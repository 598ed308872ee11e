// Package widgets renders the HUD's panel cards: telemetry gauges, the
// network summary, the clock, the ring field, and the camera view. Each
// widget returns a framed card string sized to a requested width; layout
// and input handling stay in the tui package.
package widgets

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/nova-hud/anim"
	"gitlab.com/tinyland/lab/nova-hud/display/render"
)

// Style selects a gauge fill gradient. The zero value is the spectrum
// scheme, the classic green-amber-red utilization ramp.
type Style int

const (
	// StyleSpectrum runs green through amber to red.
	StyleSpectrum Style = iota
	// StyleMagenta runs hot pink to violet.
	StyleMagenta
	// StyleEmerald runs bright green to deep green.
	StyleEmerald
	// StyleAzure runs cyan to periwinkle. Unknown names resolve here.
	StyleAzure
)

// StyleFromName maps a config name to a style, accepting the legacy
// color aliases. Unknown names fall back to azure.
func StyleFromName(name string) Style {
	switch strings.ToLower(name) {
	case "spectrum", "rainbow":
		return StyleSpectrum
	case "magenta", "pink":
		return StyleMagenta
	case "emerald", "green":
		return StyleEmerald
	default:
		return StyleAzure
	}
}

type gradientStop struct {
	pos float64
	col color.NRGBA
}

var (
	spectrumStops = []gradientStop{
		{0, color.NRGBA{R: 30, G: 220, B: 140, A: 255}},
		{0.5, color.NRGBA{R: 255, G: 200, B: 60, A: 255}},
		{1, color.NRGBA{R: 255, G: 90, B: 80, A: 255}},
	}
	magentaStops = []gradientStop{
		{0, color.NRGBA{R: 255, G: 100, B: 220, A: 255}},
		{1, color.NRGBA{R: 200, G: 50, B: 255, A: 255}},
	}
	emeraldStops = []gradientStop{
		{0, color.NRGBA{R: 40, G: 220, B: 120, A: 255}},
		{1, color.NRGBA{R: 20, G: 160, B: 100, A: 255}},
	}
	azureStops = []gradientStop{
		{0, color.NRGBA{R: 80, G: 200, B: 255, A: 255}},
		{1, color.NRGBA{R: 150, G: 120, B: 255, A: 255}},
	}
)

func styleStops(s Style) []gradientStop {
	switch s {
	case StyleSpectrum:
		return spectrumStops
	case StyleMagenta:
		return magentaStops
	case StyleEmerald:
		return emeraldStops
	default:
		return azureStops
	}
}

// GradientAt evaluates a style's gradient at position t in [0, 1],
// interpolating linearly between adjacent stops.
func GradientAt(style Style, t float64) color.NRGBA {
	stops := styleStops(style)
	t = anim.Clamp(t, 0, 1)
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].pos {
			span := stops[i].pos - stops[i-1].pos
			local := 0.0
			if span > 0 {
				local = (t - stops[i-1].pos) / span
			}
			return lerpNRGBA(stops[i-1].col, stops[i].col, local)
		}
	}
	return stops[len(stops)-1].col
}

func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
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

var (
	// trackColor fills the unfilled bar span.
	trackColor = color.NRGBA{R: 28, G: 36, B: 48, A: 255}
	// highlightColor is the faint white sheen across the bar top.
	highlightColor = color.NRGBA{R: 255, G: 255, B: 255, A: 70}
)

const minGaugeWidth = 12

// Gauge is one labeled telemetry card: an uppercase label, a neon
// gradient bar, and a numeric readout.
type Gauge struct {
	label   string
	unit    string
	style   Style
	value   float64
	focused bool
}

// NewGauge builds a gauge card. An empty unit renders as a percent sign.
func NewGauge(label, unit string, style Style, initial float64) *Gauge {
	g := &Gauge{label: strings.ToUpper(label), unit: unit, style: style}
	g.SetValue(initial)
	return g
}

// SetValue updates the gauge, clamping to the displayable 0-100 range.
func (g *Gauge) SetValue(v float64) {
	g.value = anim.Clamp(v, 0, 100)
}

// Value returns the clamped current value.
func (g *Gauge) Value() float64 { return g.value }

// Label returns the uppercase card label.
func (g *Gauge) Label() string { return g.label }

// Focus switches the card frame to the accent border.
func (g *Gauge) Focus() { g.focused = true }

// Blur restores the resting frame.
func (g *Gauge) Blur() { g.focused = false }

// Render returns the framed card at the given total width.
func (g *Gauge) Render(width int) string {
	inner := width - cardStyle.GetHorizontalFrameSize()
	if inner < minGaugeWidth {
		inner = minGaugeWidth
	}

	label := gaugeLabelStyle.Render(g.label)
	readout := readoutStyle.Render(g.readout())
	gap := inner - lipgloss.Width(label) - lipgloss.Width(readout)
	if gap < 1 {
		gap = 1
	}
	head := label + strings.Repeat(" ", gap) + readout
	bar := render.Cells(barStrip(g.value, g.style, inner))

	return card(g.focused).Render(lipgloss.JoinVertical(lipgloss.Left, head, bar))
}

// readout formats the value the way the HUD always has: truncated to an
// integer with the unit appended.
func (g *Gauge) readout() string {
	unit := g.unit
	if unit == "" {
		unit = "%"
	}
	return fmt.Sprintf("%d%s", int(g.value), unit)
}

// barStrip builds the two-pixel-tall image behind the bar row. The
// gradient spans the filled width only, the track fills the rest, and
// the highlight sheen sits on the fill's top edge.
func barStrip(value float64, style Style, widthPx int) *image.NRGBA {
	if widthPx <= 0 {
		return nil
	}

	fillPx := int(math.Round(float64(widthPx) * anim.Clamp(value, 0, 100) / 100))
	img := image.NewNRGBA(image.Rect(0, 0, widthPx, 2))
	for x := 0; x < widthPx; x++ {
		base := trackColor
		top := base
		if x < fillPx {
			t := 0.0
			if fillPx > 1 {
				t = float64(x) / float64(fillPx-1)
			}
			base = GradientAt(style, t)
			top = blendOver(base, highlightColor)
		}
		img.SetNRGBA(x, 0, top)
		img.SetNRGBA(x, 1, base)
	}
	return img
}

// blendOver composites src over dst by src's alpha.
func blendOver(dst, src color.NRGBA) color.NRGBA {
	a := float64(src.A) / 255
	return color.NRGBA{
		R: uint8(float64(src.R)*a + float64(dst.R)*(1-a) + 0.5),
		G: uint8(float64(src.G)*a + float64(dst.G)*(1-a) + 0.5),
		B: uint8(float64(src.B)*a + float64(dst.B)*(1-a) + 0.5),
		A: 255,
	}
}
