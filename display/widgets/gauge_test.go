package widgets

import (
	"image/color"
	"strings"
	"testing"
)

func TestStyleFromName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Style
	}{
		{"spectrum", "spectrum", StyleSpectrum},
		{"legacy rainbow alias", "rainbow", StyleSpectrum},
		{"magenta", "magenta", StyleMagenta},
		{"legacy pink alias", "pink", StyleMagenta},
		{"emerald", "emerald", StyleEmerald},
		{"legacy green alias", "green", StyleEmerald},
		{"azure", "azure", StyleAzure},
		{"case insensitive", "Spectrum", StyleSpectrum},
		{"unknown falls back to azure", "plasma", StyleAzure},
		{"empty falls back to azure", "", StyleAzure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StyleFromName(tt.input); got != tt.expected {
				t.Errorf("expected style %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestGradientAt_SpectrumStops(t *testing.T) {
	tests := []struct {
		pos      float64
		expected color.NRGBA
	}{
		{0, color.NRGBA{R: 30, G: 220, B: 140, A: 255}},
		{0.5, color.NRGBA{R: 255, G: 200, B: 60, A: 255}},
		{1, color.NRGBA{R: 255, G: 90, B: 80, A: 255}},
	}

	for _, tt := range tests {
		if got := GradientAt(StyleSpectrum, tt.pos); got != tt.expected {
			t.Errorf("expected %v at t=%v, got %v", tt.expected, tt.pos, got)
		}
	}
}

func TestGradientAt_SpectrumMidpoint(t *testing.T) {
	// Halfway into the first segment: the exact blend of the green and
	// amber stops.
	expected := color.NRGBA{R: 143, G: 210, B: 100, A: 255}
	if got := GradientAt(StyleSpectrum, 0.25); got != expected {
		t.Errorf("expected %v at t=0.25, got %v", expected, got)
	}
}

func TestGradientAt_TwoStopStyles(t *testing.T) {
	tests := []struct {
		name     string
		style    Style
		start    color.NRGBA
		end      color.NRGBA
	}{
		{"magenta", StyleMagenta, color.NRGBA{R: 255, G: 100, B: 220, A: 255}, color.NRGBA{R: 200, G: 50, B: 255, A: 255}},
		{"emerald", StyleEmerald, color.NRGBA{R: 40, G: 220, B: 120, A: 255}, color.NRGBA{R: 20, G: 160, B: 100, A: 255}},
		{"azure", StyleAzure, color.NRGBA{R: 80, G: 200, B: 255, A: 255}, color.NRGBA{R: 150, G: 120, B: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GradientAt(tt.style, 0); got != tt.start {
				t.Errorf("expected start %v, got %v", tt.start, got)
			}
			if got := GradientAt(tt.style, 1); got != tt.end {
				t.Errorf("expected end %v, got %v", tt.end, got)
			}
		})
	}
}

func TestGradientAt_ClampsPosition(t *testing.T) {
	if got, want := GradientAt(StyleAzure, -0.5), GradientAt(StyleAzure, 0); got != want {
		t.Errorf("expected undershoot to clamp to the start stop, got %v", got)
	}
	if got, want := GradientAt(StyleAzure, 1.5), GradientAt(StyleAzure, 1); got != want {
		t.Errorf("expected overshoot to clamp to the end stop, got %v", got)
	}
}

func TestGauge_ClampsValue(t *testing.T) {
	g := NewGauge("CPU UTILIZATION", "", StyleSpectrum, 150)
	if g.Value() != 100 {
		t.Errorf("expected overshoot clamped to 100, got %v", g.Value())
	}
	g.SetValue(-10)
	if g.Value() != 0 {
		t.Errorf("expected undershoot clamped to 0, got %v", g.Value())
	}
}

func TestGauge_ReadoutTruncatesToInteger(t *testing.T) {
	g := NewGauge("CPU UTILIZATION", "", StyleSpectrum, 65.7)
	if got := g.readout(); got != "65%" {
		t.Errorf("expected readout 65%%, got %q", got)
	}
}

func TestGauge_ReadoutCustomUnit(t *testing.T) {
	g := NewGauge("CPU TEMPERATURE", "°C", StyleSpectrum, 62.4)
	if got := g.readout(); got != "62°C" {
		t.Errorf("expected readout 62°C, got %q", got)
	}
}

func TestGauge_RenderContainsLabelAndReadout(t *testing.T) {
	g := NewGauge("memory usage", "", StyleMagenta, 50)
	result := g.Render(30)

	if !strings.Contains(result, "MEMORY USAGE") {
		t.Errorf("expected uppercase label in output, got: %q", result)
	}
	if !strings.Contains(result, "50%") {
		t.Errorf("expected readout in output, got: %q", result)
	}
}

func TestGauge_RenderBarFillsInnerWidth(t *testing.T) {
	g := NewGauge("DISK USAGE", "", StyleEmerald, 75)
	result := g.Render(30)

	inner := 30 - cardStyle.GetHorizontalFrameSize()
	if got := strings.Count(result, "▀"); got != inner {
		t.Errorf("expected %d bar cells, got %d", inner, got)
	}
}

func TestBarStrip_FillIsProportional(t *testing.T) {
	img := barStrip(50, StyleAzure, 10)

	if got := img.NRGBAAt(4, 1); got == trackColor {
		t.Error("expected the last filled pixel to carry gradient color")
	}
	if got := img.NRGBAAt(5, 1); got != trackColor {
		t.Errorf("expected track color past the fill, got %v", got)
	}
}

func TestBarStrip_FullFillSpansGradient(t *testing.T) {
	img := barStrip(100, StyleAzure, 10)

	if got, want := img.NRGBAAt(0, 1), GradientAt(StyleAzure, 0); got != want {
		t.Errorf("expected gradient start at the left edge, got %v", got)
	}
	if got, want := img.NRGBAAt(9, 1), GradientAt(StyleAzure, 1); got != want {
		t.Errorf("expected gradient end at the right edge, got %v", got)
	}
}

func TestBarStrip_EmptyShowsTrackOnly(t *testing.T) {
	img := barStrip(0, StyleSpectrum, 8)
	for x := 0; x < 8; x++ {
		if got := img.NRGBAAt(x, 1); got != trackColor {
			t.Errorf("expected track color at %d, got %v", x, got)
		}
	}
}

func TestBarStrip_HighlightOnFillOnly(t *testing.T) {
	img := barStrip(50, StyleAzure, 10)

	// The sheen brightens the filled span but leaves the track alone.
	if top, bottom := img.NRGBAAt(2, 0), img.NRGBAAt(2, 1); top == bottom {
		t.Error("expected the sheen to brighten the fill's top pixel")
	}
	if got := img.NRGBAAt(8, 0); got != trackColor {
		t.Errorf("expected bare track above the unfilled span, got %v", got)
	}
}

func TestBarStrip_DegenerateWidth(t *testing.T) {
	if img := barStrip(50, StyleAzure, 0); img != nil {
		t.Errorf("expected nil strip for zero width, got %v", img.Bounds())
	}
}
