package raster

import (
	"bytes"
	"image/color"
	"testing"

	"gitlab.com/tinyland/lab/nova-hud/scene"
)

var testBG = color.NRGBA{R: 5, G: 7, B: 10, A: 255}

func TestRender_DegenerateViewport(t *testing.T) {
	if img := Render(nil, 0, 40, testBG); img != nil {
		t.Errorf("expected nil image for zero width, got %v", img.Bounds())
	}
	if img := Render(nil, 40, 0, testBG); img != nil {
		t.Errorf("expected nil image for zero height, got %v", img.Bounds())
	}
	if img := Render(nil, -3, 40, testBG); img != nil {
		t.Errorf("expected nil image for negative width, got %v", img.Bounds())
	}
}

func TestRender_BackgroundFill(t *testing.T) {
	img := Render(nil, 20, 10, testBG)
	if img == nil {
		t.Fatal("expected image, got nil")
	}
	if got := img.Bounds(); got.Dx() != 20 || got.Dy() != 10 {
		t.Errorf("expected 20x10 bounds, got %v", got)
	}

	for _, p := range [][2]int{{0, 0}, {19, 0}, {0, 9}, {19, 9}, {10, 5}} {
		if got := img.NRGBAAt(p[0], p[1]); got != testBG {
			t.Errorf("expected background %v at (%d,%d), got %v", testBG, p[0], p[1], got)
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	cmds := []scene.Command{
		scene.Glow{CX: 50, CY: 50, Radius: 40, Inner: color.NRGBA{R: 10, G: 12, B: 16, A: 255}, Outer: color.NRGBA{R: 6, G: 8, B: 12}},
		scene.Arc{CX: 50, CY: 50, Radius: 30, StartDeg: 20, SweepDeg: 200, Stroke: 4, Color: color.NRGBA{R: 80, G: 220, B: 255, A: 220}},
		scene.Dot{CX: 70, CY: 30, Radius: 2.2, Color: color.NRGBA{R: 80, G: 220, B: 255, A: 120}},
	}

	first := Render(cmds, 100, 100, testBG)
	second := Render(cmds, 100, 100, testBG)
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("expected identical pixels for identical commands")
	}
}

func TestRender_DotCoversCenter(t *testing.T) {
	col := color.NRGBA{R: 100, G: 220, B: 255, A: 255}
	img := Render([]scene.Command{
		scene.Dot{CX: 50.5, CY: 50.5, Radius: 3, Color: col},
	}, 100, 100, testBG)

	if got := img.NRGBAAt(50, 50); got != col {
		t.Errorf("expected dot color %v at center, got %v", col, got)
	}
	if got := img.NRGBAAt(10, 10); got != testBG {
		t.Errorf("expected background far from dot, got %v", got)
	}
}

func TestRender_ArcRespectsSweep(t *testing.T) {
	col := color.NRGBA{R: 255, G: 160, B: 90, A: 255}
	img := Render([]scene.Command{
		scene.Arc{CX: 50, CY: 50, Radius: 30, StartDeg: 0, SweepDeg: 90, Stroke: 4, Color: col},
	}, 100, 100, testBG)

	// 45 degrees clockwise from the positive x axis is down-right on
	// screen, inside the sweep.
	if got := img.NRGBAAt(71, 71); got == testBG {
		t.Error("expected arc coverage at 45 degrees, got background")
	}
	// 180 degrees is outside the sweep and far from both caps.
	if got := img.NRGBAAt(20, 50); got != testBG {
		t.Errorf("expected background at 180 degrees, got %v", got)
	}
}

func TestRender_FullSweepIgnoresAngles(t *testing.T) {
	col := color.NRGBA{R: 180, G: 120, B: 255, A: 255}
	img := Render([]scene.Command{
		scene.Arc{CX: 50, CY: 50, Radius: 30, StartDeg: 0, SweepDeg: 360, Stroke: 4, Color: col},
	}, 100, 100, testBG)

	for _, p := range [][2]int{{80, 50}, {20, 50}, {50, 80}, {50, 20}} {
		if got := img.NRGBAAt(p[0], p[1]); got == testBG {
			t.Errorf("expected full circle coverage at (%d,%d), got background", p[0], p[1])
		}
	}
}

func TestRender_ArcRoundCaps(t *testing.T) {
	col := color.NRGBA{R: 100, G: 220, B: 200, A: 255}
	img := Render([]scene.Command{
		scene.Arc{CX: 50, CY: 50, Radius: 30, StartDeg: 0, SweepDeg: 90, Stroke: 4, Color: col},
	}, 100, 100, testBG)

	// Just past the start angle the round cap still covers pixels near
	// the cap center at (80, 50).
	if got := img.NRGBAAt(80, 48); got == testBG {
		t.Error("expected round cap coverage just beyond the sweep, got background")
	}
}

func TestRender_RectFillsBounds(t *testing.T) {
	col := color.NRGBA{R: 28, G: 36, B: 48, A: 255}
	img := Render([]scene.Command{
		scene.Rect{X: 10, Y: 10, W: 5, H: 3, Color: col},
	}, 40, 40, testBG)

	if got := img.NRGBAAt(12, 11); got != col {
		t.Errorf("expected fill color inside rect, got %v", got)
	}
	if got := img.NRGBAAt(9, 10); got != testBG {
		t.Errorf("expected background left of rect, got %v", got)
	}
	if got := img.NRGBAAt(15, 10); got != testBG {
		t.Errorf("expected background right of rect, got %v", got)
	}
}

func TestRender_BoxOutlineOnly(t *testing.T) {
	col := color.NRGBA{R: 100, G: 220, B: 255, A: 255}
	img := Render([]scene.Command{
		scene.Box{X: 10, Y: 10, W: 20, H: 10, Stroke: 2, Color: col},
	}, 50, 50, testBG)

	if got := img.NRGBAAt(11, 11); got != col {
		t.Errorf("expected outline color on top edge, got %v", got)
	}
	if got := img.NRGBAAt(10, 15); got != col {
		t.Errorf("expected outline color on left edge, got %v", got)
	}
	if got := img.NRGBAAt(20, 15); got != testBG {
		t.Errorf("expected background inside box, got %v", got)
	}
}

func TestRender_GlowFadesOutward(t *testing.T) {
	img := Render([]scene.Command{
		scene.Glow{CX: 50, CY: 50, Radius: 40, Inner: color.NRGBA{R: 200, G: 200, B: 200, A: 255}, Outer: color.NRGBA{A: 0}},
	}, 100, 100, testBG)

	center := img.NRGBAAt(50, 50)
	if center.R < 180 {
		t.Errorf("expected near-inner brightness at glow center, got %v", center)
	}
	// Corners sit beyond the glow radius where the gradient alpha has
	// faded to zero.
	if got := img.NRGBAAt(0, 0); got != testBG {
		t.Errorf("expected background at corner, got %v", got)
	}
	mid := img.NRGBAAt(70, 50)
	if mid.R <= testBG.R || mid.R >= center.R {
		t.Errorf("expected partial glow between center and edge, got %v", mid)
	}
}

func TestRenderOver_LeavesBaseUntouched(t *testing.T) {
	base := Render(nil, 20, 20, testBG)
	col := color.NRGBA{R: 100, G: 220, B: 255, A: 255}

	out := RenderOver(base, []scene.Command{
		scene.Box{X: 2, Y: 2, W: 10, H: 10, Stroke: 1, Color: col},
	})

	if got := base.NRGBAAt(2, 2); got != testBG {
		t.Errorf("expected base image unmodified, got %v", got)
	}
	if got := out.NRGBAAt(2, 2); got != col {
		t.Errorf("expected outline on the copy, got %v", got)
	}
}

func TestRenderOver_NilBase(t *testing.T) {
	if out := RenderOver(nil, nil); out != nil {
		t.Errorf("expected nil for nil base, got %v", out.Bounds())
	}
}

func TestRenderScaled_Dimensions(t *testing.T) {
	build := func(w, h int) []scene.Command {
		return []scene.Command{
			scene.Dot{CX: float64(w) / 2, CY: float64(h) / 2, Radius: float64(w) / 4, Color: color.NRGBA{R: 80, G: 220, B: 255, A: 255}},
		}
	}

	img := RenderScaled(build, 30, 20, 2, testBG)
	if img == nil {
		t.Fatal("expected image, got nil")
	}
	if got := img.Bounds(); got.Dx() != 30 || got.Dy() != 20 {
		t.Errorf("expected 30x20 bounds after downsampling, got %v", got)
	}
}

func TestRenderScaled_Deterministic(t *testing.T) {
	build := func(w, h int) []scene.Command {
		return scene.BuildRings(0.37, w, h, scene.DefaultRings())
	}

	first := RenderScaled(build, 60, 40, 2, testBG)
	second := RenderScaled(build, 60, 40, 2, testBG)
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("expected identical supersampled output for identical scenes")
	}
}

func TestRenderScaled_DegenerateViewport(t *testing.T) {
	build := func(w, h int) []scene.Command { return nil }
	if img := RenderScaled(build, 0, 20, 2, testBG); img != nil {
		t.Errorf("expected nil image for zero width, got %v", img.Bounds())
	}
}
