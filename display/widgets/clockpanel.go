package widgets

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/nova-hud/internal/format"
)

// ClockPanel shows wall-clock time over the long date line, refreshed
// once a second by the compositor.
type ClockPanel struct {
	now     time.Time
	focused bool
}

// NewClockPanel returns a panel that renders placeholders until the
// first tick.
func NewClockPanel() *ClockPanel {
	return &ClockPanel{}
}

// Update sets the displayed instant.
func (c *ClockPanel) Update(now time.Time) {
	c.now = now
}

// Focus switches the card frame to the accent border.
func (c *ClockPanel) Focus() { c.focused = true }

// Blur restores the resting frame.
func (c *ClockPanel) Blur() { c.focused = false }

// Render returns the framed card at the given total width.
func (c *ClockPanel) Render(width int) string {
	inner := width - cardStyle.GetHorizontalFrameSize()
	if inner < minGaugeWidth {
		inner = minGaugeWidth
	}

	timeRow := lipgloss.PlaceHorizontal(inner, lipgloss.Center,
		titleStyle.Render(format.ClockTime(c.now)))
	dateRow := lipgloss.PlaceHorizontal(inner, lipgloss.Center,
		captionStyle.Render(format.ClockDate(c.now)))

	return card(c.focused).Render(lipgloss.JoinVertical(lipgloss.Left, timeRow, dateRow))
}
