package tui

import "strings"

// stackWidth is the narrowest terminal that still fits the three-column
// grid. Anything narrower stacks the panels vertically.
const stackWidth = 80

const (
	// profilesRows is the fixed height of the left column above the
	// camera card: two section titles plus three four-row gauge cards.
	profilesRows = 14
	// minCameraRows keeps the camera card tall enough for one frame row
	// and its status line.
	minCameraRows = 5
	// stackRingRows is the ring field height used in the stacked layout,
	// where no column height constrains it.
	stackRingRows = 12
)

// bodyColumns splits the body width into the 1:2:1 grid. The center
// column absorbs the rounding remainder so the three widths always sum
// to the full width.
func bodyColumns(width int) (left, center, right int) {
	left = width / 4
	right = width / 4
	center = width - left - right
	return left, center, right
}

// cameraHeight returns the rows left for the camera card after the
// profile section takes its fixed share of the column.
func cameraHeight(bodyHeight int) int {
	h := bodyHeight - profilesRows
	if h < minCameraRows {
		h = minCameraRows
	}
	return h
}

// sectionTitle renders a centered accent title with horizontal rules on
// either side. Format: "---- TITLE ----"
func sectionTitle(title string, width int) string {
	if width <= 0 {
		return styleSection.Render(title)
	}

	titleLen := len([]rune(title))
	// 2 spaces around the title text.
	decorLen := titleLen + 2
	if decorLen >= width {
		return styleSection.Render(title)
	}

	remaining := width - decorLen
	leftLen := remaining / 2
	rightLen := remaining - leftLen

	left := strings.Repeat("─", leftLen)
	right := strings.Repeat("─", rightLen)

	return styleSection.Render(left + " " + title + " " + right)
}
