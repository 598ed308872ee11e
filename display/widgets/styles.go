package widgets

import "github.com/charmbracelet/lipgloss"

// Card palette. The border tint is the HUD's glassy blue flattened over
// the dark backdrop.
const (
	colorCardBorder = "#19212D"
	colorLabel      = "#AABED2"
	colorReadout    = "#E6F0FF"
	colorTitle      = "#C8F0FF"
	colorCaption    = "#A0C8FF"
	colorAccent     = "#50DCFF"
	colorMuted      = "#6B7280"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorCardBorder)).
			Padding(0, 1)

	focusedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(colorAccent)).
				Padding(0, 1)

	gaugeLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorLabel)).
			Bold(true)

	readoutStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorReadout))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorTitle)).
			Bold(true)

	captionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorCaption))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorAccent))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted))
)

// card returns the frame style for the given focus state. Both frames
// share the same geometry, so inner sizing can always use cardStyle.
func card(focused bool) lipgloss.Style {
	if focused {
		return focusedCardStyle
	}
	return cardStyle
}
