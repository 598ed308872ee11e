package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// NetPanel is the network summary card: local address plus current
// upload and download rates.
type NetPanel struct {
	ip       string
	upMBps   float64
	downMBps float64
	focused  bool
}

// NewNetPanel returns a panel with no address yet.
func NewNetPanel() *NetPanel {
	return &NetPanel{ip: "unknown"}
}

// Update applies the latest reading. An empty address keeps the previous
// one.
func (n *NetPanel) Update(ip string, upMBps, downMBps float64) {
	if ip != "" {
		n.ip = ip
	}
	n.upMBps = upMBps
	n.downMBps = downMBps
}

// Focus switches the card frame to the accent border.
func (n *NetPanel) Focus() { n.focused = true }

// Blur restores the resting frame.
func (n *NetPanel) Blur() { n.focused = false }

// Render returns the framed card at the given total width.
func (n *NetPanel) Render(width int) string {
	inner := width - cardStyle.GetHorizontalFrameSize()
	if inner < minGaugeWidth {
		inner = minGaugeWidth
	}

	rows := []string{
		netRow(inner, "IP ADDRESS", n.ip),
		netRow(inner, "UPLOAD", fmt.Sprintf("%.1f MB/s", n.upMBps)),
		netRow(inner, "DOWNLOAD", fmt.Sprintf("%.1f MB/s", n.downMBps)),
	}
	return card(n.focused).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// netRow lays out one name/value line with the value right aligned.
func netRow(width int, name, value string) string {
	left := gaugeLabelStyle.Render(name)
	right := readoutStyle.Render(value)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
