package vision

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"gitlab.com/tinyland/lab/nova-hud/raster"
	"gitlab.com/tinyland/lab/nova-hud/scene"
)

const (
	patternWidth  = 320
	patternHeight = 240
	// emotionHold is how long each synthetic emotion label lasts.
	emotionHold = 4.0
)

// emotionLabels cycles through the classifier's vocabulary so the
// annotation path sees every label without a model loaded.
var emotionLabels = []string{"neutral", "happy", "surprise", "sad", "angry", "fear", "disgust"}

var patternBG = color.NRGBA{R: 8, G: 10, B: 14, A: 255}

// PatternSource synthesizes camera frames procedurally. Every frame is a
// pure function of elapsed time, so demo runs are reproducible and the
// annotation pipeline can be exercised without a device.
type PatternSource struct {
	start time.Time
	now   func() time.Time
}

var _ Source = (*PatternSource)(nil)

// NewPatternSource returns a source whose animation starts now.
func NewPatternSource() *PatternSource {
	p := &PatternSource{now: time.Now}
	p.start = p.now()
	return p
}

// Name implements Source.
func (p *PatternSource) Name() string { return "pattern" }

// Close implements Source.
func (p *PatternSource) Close() error { return nil }

// Frame implements Source. The single detection region drifts across the
// frame and its label walks the emotion vocabulary.
func (p *PatternSource) Frame(ctx context.Context) (Frame, error) {
	if err := ctx.Err(); err != nil {
		return Frame{}, fmt.Errorf("frame canceled: %w", err)
	}

	now := p.now()
	t := now.Sub(p.start).Seconds()
	face := faceRect(t)

	img := raster.Render(buildPattern(t, face), patternWidth, patternHeight, patternBG)
	return Frame{
		Image:   img,
		Regions: []Region{{Rect: face, Label: emotionAt(t)}},
		At:      now,
	}, nil
}

// faceRect returns the drifting detection rectangle at elapsed time t.
func faceRect(t float64) image.Rectangle {
	x := int(math.Round(120 + 60*math.Sin(t/2.7)))
	y := int(math.Round(64 + 18*math.Sin(t/3.9)))
	return image.Rect(x, y, x+80, y+96)
}

// emotionAt returns the label for elapsed time t.
func emotionAt(t float64) string {
	idx := int(t/emotionHold) % len(emotionLabels)
	if idx < 0 {
		idx = 0
	}
	return emotionLabels[idx]
}

// buildPattern composes the synthetic scene: a drifting glow, a sweeping
// arc, a sparse dot grid, and a soft disc inside the detection rect so
// the outline visibly encloses something.
func buildPattern(t float64, face image.Rectangle) []scene.Command {
	w := float64(patternWidth)
	h := float64(patternHeight)

	cmds := []scene.Command{
		scene.Glow{
			CX:     w/2 + 40*math.Sin(t/3.0),
			CY:     h/2 + 24*math.Cos(t/4.0),
			Radius: 160,
			Inner:  color.NRGBA{R: 16, G: 22, B: 30, A: 255},
			Outer:  color.NRGBA{R: 8, G: 10, B: 14, A: 0},
		},
		scene.Arc{
			CX:       w / 2,
			CY:       h / 2,
			Radius:   92,
			StartDeg: math.Mod(t*40, 360),
			SweepDeg: 200,
			Stroke:   3,
			Color:    color.NRGBA{R: 80, G: 220, B: 255, A: 150},
		},
	}

	for y := 24.0; y < h; y += 48 {
		for x := 24.0; x < w; x += 48 {
			cmds = append(cmds, scene.Dot{
				CX: x, CY: y, Radius: 1.4,
				Color: color.NRGBA{R: 60, G: 90, B: 120, A: 90},
			})
		}
	}

	cx := float64(face.Min.X+face.Max.X) / 2
	cy := float64(face.Min.Y+face.Max.Y) / 2
	cmds = append(cmds,
		scene.Dot{CX: cx, CY: cy, Radius: 34, Color: color.NRGBA{R: 48, G: 96, B: 132, A: 200}},
		scene.Dot{CX: cx, CY: cy, Radius: 16, Color: color.NRGBA{R: 90, G: 170, B: 210, A: 220}},
	)

	return cmds
}
