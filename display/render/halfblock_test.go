package render

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestCells_EncodesPixelPairs(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, A: 255})

	out := Cells(img)
	if got := strings.Count(out, halfBlock); got != 2 {
		t.Errorf("expected 2 half blocks for a 2x2 image, got %d", got)
	}
	if !strings.Contains(out, "\033[38;2;255;0;0m") {
		t.Error("expected the top-left pixel in the foreground sequence")
	}
	if !strings.Contains(out, "\033[48;2;0;255;0m") {
		t.Error("expected the bottom-left pixel in the background sequence")
	}
	if strings.Contains(out, "\n") {
		t.Error("expected a single cell row for two pixel rows")
	}
}

func TestCells_OddHeightDuplicatesLastRow(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 3))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{R: 20, A: 255})
	img.SetNRGBA(0, 2, color.NRGBA{R: 30, A: 255})

	out := Cells(img)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 cell rows for 3 pixel rows, got %d", len(lines))
	}
	// The dangling pixel row mirrors itself into the background.
	if !strings.Contains(lines[1], "\033[38;2;30;0;0m\033[48;2;30;0;0m") {
		t.Error("expected the odd final row to duplicate its top pixel")
	}
}

func TestCells_NilImage(t *testing.T) {
	if out := Cells(nil); out != "" {
		t.Errorf("expected empty output for nil image, got %q", out)
	}
}

func TestFit_ScalesIntoCellBox(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	out := Fit(img, 4, 2)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 cell rows, got %d", len(lines))
	}
	if got := strings.Count(out, halfBlock); got != 8 {
		t.Errorf("expected 8 half blocks, got %d", got)
	}
}

func TestGrid_OverlayReplacesCells(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	g := NewGrid(img)
	g.Overlay(0, 1, "OK", color.NRGBA{R: 230, G: 240, B: 255, A: 255})

	out := g.String()
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[0], "O") || !strings.Contains(lines[0], "K") {
		t.Error("expected overlay glyphs in the first row")
	}
	if got := strings.Count(lines[0], halfBlock); got != 4 {
		t.Errorf("expected 4 remaining half blocks in the overlaid row, got %d", got)
	}
	if got := strings.Count(lines[1], halfBlock); got != 6 {
		t.Errorf("expected the second row untouched, got %d half blocks", got)
	}
}

func TestGrid_OverlayClips(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	g := NewGrid(img)

	g.Overlay(0, 2, "LONGTEXT", color.NRGBA{A: 255})
	g.Overlay(-1, 0, "X", color.NRGBA{A: 255})
	g.Overlay(5, 0, "X", color.NRGBA{A: 255})
	g.Overlay(0, -3, "AB", color.NRGBA{A: 255})

	out := g.String()
	if strings.Contains(out, "X") {
		t.Error("expected out-of-range rows to be clipped")
	}
	if !strings.Contains(out, "L") || !strings.Contains(out, "O") {
		t.Error("expected the in-range prefix of a long overlay")
	}
	if strings.Contains(out, "N") {
		t.Error("expected the overflow of a long overlay to be clipped")
	}
}

func TestGrid_OverlayCentered(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 2))
	g := NewGrid(img)
	g.OverlayCentered(0, "ABCD", color.NRGBA{A: 255})

	if g.cells[0][3].text != 'A' {
		t.Errorf("expected centered text to start at column 3, got %q at 3", g.cells[0][3].text)
	}
	if g.cells[0][6].text != 'D' {
		t.Errorf("expected centered text to end at column 6, got %q at 6", g.cells[0][6].text)
	}
}

func TestGrid_Dimensions(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 7, 5))
	g := NewGrid(img)
	if g.Width() != 7 {
		t.Errorf("expected width 7, got %d", g.Width())
	}
	if g.Height() != 3 {
		t.Errorf("expected height 3 for 5 pixel rows, got %d", g.Height())
	}
}
