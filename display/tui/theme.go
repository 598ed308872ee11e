package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the HUD chrome around the panel grid.
const (
	colorAccent  = lipgloss.Color("#50DCFF") // Neon cyan
	colorHeading = lipgloss.Color("#C8F0FF") // Pale ice
	colorCaption = lipgloss.Color("#A0C8FF") // Soft blue
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorRule    = lipgloss.Color("#19212D") // Panel border tint
)

// Styles used by the compositor chrome.
var (
	styleHeader        lipgloss.Style
	styleHeaderTitle   lipgloss.Style
	styleHeaderVersion lipgloss.Style
	styleSection       lipgloss.Style
	styleFooter        lipgloss.Style
	styleHelp          lipgloss.Style
)

func init() {
	styleHeader = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(colorRule).
		MarginBottom(1)

	styleHeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorHeading)

	styleHeaderVersion = lipgloss.NewStyle().
		Foreground(colorMuted)

	styleSection = lipgloss.NewStyle().
		Foreground(colorAccent)

	styleFooter = lipgloss.NewStyle().
		Foreground(colorMuted).
		MarginTop(1)

	styleHelp = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1)
}
