package widgets

import (
	"image/color"
	"strings"

	"gitlab.com/tinyland/lab/nova-hud/display/render"
	"gitlab.com/tinyland/lab/nova-hud/raster"
	"gitlab.com/tinyland/lab/nova-hud/scene"
)

// backdropPixel is the HUD's deep-space background behind the rings.
var backdropPixel = color.NRGBA{R: 5, G: 7, B: 10, A: 255}

// Overlay colors for the wordmark and status caption floating over the
// ring center.
var (
	titleOverlay   = color.NRGBA{R: 200, G: 240, B: 255, A: 255}
	captionOverlay = color.NRGBA{R: 160, G: 200, B: 255, A: 255}
)

// defaultSupersample balances arc smoothness against per-frame cost.
const defaultSupersample = 2

// RingPanel draws the animated orbital ring field with the HUD wordmark
// and status caption floating over the center. The field itself is a
// pure function of the animation phase; the panel only owns presentation
// state.
type RingPanel struct {
	title       string
	caption     string
	rings       []scene.RingSpec
	supersample int
	focused     bool
}

// NewRingPanel builds the centerpiece panel. The caption is displayed
// after a bullet, matching the HUD's status line.
func NewRingPanel(title, caption string) *RingPanel {
	return &RingPanel{
		title:       strings.ToUpper(title),
		caption:     strings.ToUpper(caption),
		rings:       scene.DefaultRings(),
		supersample: defaultSupersample,
	}
}

// Focus switches the card frame to the accent border.
func (r *RingPanel) Focus() { r.focused = true }

// Blur restores the resting frame.
func (r *RingPanel) Blur() { r.focused = false }

// Render draws the field at the given phase into a width x height cell
// card. A viewport too small to hold the card returns an empty string
// and the previous frame stays on screen.
func (r *RingPanel) Render(phase float64, width, height int) string {
	innerW := width - cardStyle.GetHorizontalFrameSize()
	innerH := height - cardStyle.GetVerticalFrameSize()
	if innerW <= 0 || innerH <= 0 {
		return ""
	}

	img := raster.RenderScaled(func(w, h int) []scene.Command {
		return scene.BuildRings(phase, w, h, r.rings)
	}, innerW, innerH*2, r.supersample, backdropPixel)
	if img == nil {
		return ""
	}

	grid := render.NewGrid(img)
	titleRow := grid.Height()/2 - 1
	grid.OverlayCentered(titleRow, r.title, titleOverlay)
	grid.OverlayCentered(titleRow+1, "•  "+r.caption, captionOverlay)

	return card(r.focused).Render(grid.String())
}
