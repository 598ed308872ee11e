package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"

	"gitlab.com/tinyland/lab/nova-hud/display/render"
	"gitlab.com/tinyland/lab/nova-hud/internal/format"
	"gitlab.com/tinyland/lab/nova-hud/vision"
)

// CameraPanel shows the latest camera frame with detection outlines and
// labels. A transient source error keeps the previous frame on screen
// and only downgrades the status line; the HUD itself never stalls on
// the camera.
type CameraPanel struct {
	frame   vision.Frame
	healthy bool
	status  string
	focused bool
}

// NewCameraPanel returns a panel awaiting its first frame.
func NewCameraPanel() *CameraPanel {
	return &CameraPanel{status: "connecting"}
}

// SetFrame installs a fresh frame.
func (c *CameraPanel) SetFrame(f vision.Frame) {
	c.frame = f
	c.healthy = true
	c.status = "live"
}

// SetError records a failed fetch. The previous frame stays up when one
// exists.
func (c *CameraPanel) SetError(err error) {
	c.healthy = false
	if c.frame.Image == nil {
		c.status = "offline"
	} else {
		c.status = "stalled"
	}
}

// SetPaused stops or resumes the feed display. Pausing keeps the last
// frame on screen; resuming reverts to the state the next fetch will
// confirm.
func (c *CameraPanel) SetPaused(paused bool) {
	if paused {
		c.status = "paused"
		return
	}
	if c.frame.Image == nil {
		c.status = "connecting"
	} else {
		c.status = "live"
	}
}

// Status returns the current feed state for the footer.
func (c *CameraPanel) Status() string { return c.status }

// Focus switches the card frame to the accent border.
func (c *CameraPanel) Focus() { c.focused = true }

// Blur restores the resting frame.
func (c *CameraPanel) Blur() { c.focused = false }

// Render returns the framed card filling width x height cells. The
// bottom row is the status line; the rest is the frame view.
func (c *CameraPanel) Render(width, height int) string {
	innerW := width - cardStyle.GetHorizontalFrameSize()
	innerH := height - cardStyle.GetVerticalFrameSize()
	if innerW < minGaugeWidth {
		innerW = minGaugeWidth
	}
	if innerH < 3 {
		innerH = 3
	}

	view := c.renderView(innerW, innerH-1)
	status := c.statusRow(innerW)
	return card(c.focused).Render(lipgloss.JoinVertical(lipgloss.Left, view, status))
}

// renderView fits the annotated frame into the cell box and floats the
// region labels over their boxes.
func (c *CameraPanel) renderView(cellW, cellH int) string {
	if c.frame.Image == nil {
		return c.placeholder(cellW, cellH)
	}

	annotated := vision.Annotate(c.frame)
	fitted := imaging.Fit(annotated, cellW, cellH*2, imaging.Lanczos)
	grid := render.NewGrid(fitted)
	if grid == nil {
		return c.placeholder(cellW, cellH)
	}

	bounds := c.frame.Image.Bounds()
	scale := math.Min(float64(cellW)/float64(bounds.Dx()), float64(cellH*2)/float64(bounds.Dy()))
	for _, region := range c.frame.Regions {
		if region.Label == "" {
			continue
		}
		col := int(math.Round(float64(region.Rect.Min.X-bounds.Min.X) * scale))
		row := int(math.Round(float64(region.Rect.Min.Y-bounds.Min.Y)*scale/2)) - 1
		if col < 0 {
			col = 0
		}
		label := format.TruncateWithEllipsis(strings.ToUpper(region.Label), cellW-col)
		grid.Overlay(row, col, label, titleOverlay)
	}

	return lipgloss.Place(cellW, cellH, lipgloss.Center, lipgloss.Center, grid.String())
}

func (c *CameraPanel) placeholder(cellW, cellH int) string {
	return lipgloss.Place(cellW, cellH, lipgloss.Center, lipgloss.Center,
		mutedStyle.Render("NO SIGNAL"))
}

// statusRow builds the bottom line: feed state on the left, distinct
// detection labels on the right.
func (c *CameraPanel) statusRow(width int) string {
	dot := accentStyle.Render("●")
	if !c.healthy {
		dot = mutedStyle.Render("●")
	}
	line := dot + " " + captionStyle.Render(strings.ToUpper(c.status))

	labels := c.regionLabels()
	if len(labels) > 0 {
		right := mutedStyle.Render(format.TruncateWithEllipsis(strings.Join(labels, " "), width/2))
		gap := width - lipgloss.Width(line) - lipgloss.Width(right)
		if gap >= 1 {
			line += strings.Repeat(" ", gap) + right
		}
	}
	return line
}

// regionLabels returns the distinct uppercase labels on the current
// frame.
func (c *CameraPanel) regionLabels() []string {
	if len(c.frame.Regions) == 0 {
		return nil
	}
	labels := make([]string, 0, len(c.frame.Regions))
	for _, r := range c.frame.Regions {
		if r.Label != "" {
			labels = append(labels, strings.ToUpper(r.Label))
		}
	}
	return format.UniqueStrings(labels)
}
