package scene

import (
	"image/color"
	"math"

	"gitlab.com/tinyland/lab/nova-hud/anim"
)

// Ring field geometry constants. Arc count, sweep angles and the 0.48 turn
// second-arc offset are part of the visual contract, not tunables.
const (
	// RadiusFraction of the smaller viewport dimension gives the base radius.
	RadiusFraction = 0.42

	// GlowFraction of the base radius is where the background glow fades out.
	GlowFraction = 1.8

	// ArcSweepPrimary and ArcSweepSecondary are the two arc spans per ring.
	ArcSweepPrimary   = 200.0
	ArcSweepSecondary = 120.0

	// ArcPhaseGap is the second arc's extra phase offset, in turns.
	ArcPhaseGap = 0.48

	// OrbitDots is the number of dots orbiting each ring.
	OrbitDots = 36

	// DotDriftTurns is how far the dot orbit rotates per full phase cycle.
	DotDriftTurns = 0.08

	// DotInsetStrokes is the dot orbit inset from the ring, in stroke widths.
	DotInsetStrokes = 1.6

	// DotRadius is the orbit dot radius in design units.
	DotRadius = 2.2

	// DotAlphaBase and DotAlphaRange define the pulse: opacity runs from
	// DotAlphaBase at the seam to DotAlphaBase+DotAlphaRange at the peak.
	DotAlphaBase  = 40
	DotAlphaRange = 80

	// DesignSize is the reference viewport dimension the stroke widths and
	// dot radius were tuned at. Builders scale them by min(w,h)/DesignSize.
	DesignSize = 520.0
)

// glowInner and glowOuter are the background gradient endpoints.
var (
	glowInner = color.NRGBA{R: 10, G: 12, B: 16, A: 255}
	glowOuter = color.NRGBA{R: 6, G: 8, B: 12, A: 0}
)

// dotColor is the orbit dot base color; its alpha comes from the pulse law.
var dotColor = color.NRGBA{R: 80, G: 220, B: 255}

// RingSpec is the immutable configuration of one ring. The five default
// specs define the whole field; they are configuration, not state.
type RingSpec struct {
	// RadiusFrac is the ring radius as a fraction of the base radius.
	RadiusFrac float64
	// Stroke is the arc stroke width in design units.
	Stroke float64
	// Offset is this ring's fixed phase offset, in turns.
	Offset float64
	// Color is the arc color including its base alpha.
	Color color.NRGBA
}

// DefaultRings returns the standard five rings, outer to inner.
func DefaultRings() []RingSpec {
	return []RingSpec{
		{RadiusFrac: 1.02, Stroke: 9.0, Offset: 0.00, Color: color.NRGBA{R: 80, G: 220, B: 255, A: 220}},
		{RadiusFrac: 0.86, Stroke: 6.0, Offset: 0.19, Color: color.NRGBA{R: 255, G: 160, B: 90, A: 210}},
		{RadiusFrac: 0.72, Stroke: 4.0, Offset: 0.36, Color: color.NRGBA{R: 180, G: 120, B: 255, A: 200}},
		{RadiusFrac: 0.59, Stroke: 3.0, Offset: 0.54, Color: color.NRGBA{R: 100, G: 220, B: 200, A: 200}},
		{RadiusFrac: 0.46, Stroke: 2.2, Offset: 0.72, Color: color.NRGBA{R: 255, G: 110, B: 200, A: 180}},
	}
}

// BuildRings produces the draw commands for the ring field at the given
// phase and viewport size. It is pure: the same (phase, size, specs) always
// yield the same commands, and a degenerate viewport yields none.
func BuildRings(phase float64, width, height int, rings []RingSpec) []Command {
	if width <= 0 || height <= 0 {
		return nil
	}

	cx := float64(width) / 2
	cy := float64(height) / 2
	minDim := math.Min(float64(width), float64(height))
	base := minDim * RadiusFraction
	scale := minDim / DesignSize

	cmds := make([]Command, 0, 1+len(rings)*(2+OrbitDots))

	cmds = append(cmds, Glow{
		CX:     cx,
		CY:     cy,
		Radius: base * GlowFraction,
		Inner:  glowInner,
		Outer:  glowOuter,
	})

	for _, ring := range rings {
		local := anim.WrapPhase(phase + ring.Offset)
		radius := base * ring.RadiusFrac
		stroke := ring.Stroke * scale

		cmds = append(cmds,
			Arc{
				CX: cx, CY: cy, Radius: radius,
				StartDeg: local * 360,
				SweepDeg: ArcSweepPrimary,
				Stroke:   stroke,
				Color:    ring.Color,
			},
			Arc{
				CX: cx, CY: cy, Radius: radius,
				StartDeg: anim.WrapPhase(local+ArcPhaseGap) * 360,
				SweepDeg: ArcSweepSecondary,
				Stroke:   stroke,
				Color:    ring.Color,
			},
		)

		cmds = append(cmds, orbitDots(cx, cy, radius, stroke, scale, local)...)
	}

	return cmds
}

// orbitDots lays OrbitDots dots on a circle inset from the ring. Dot
// positions drift with the ring's local phase; dot brightness pulses by
// index fraction alone, so the bright spot travels with the orbit while
// the seam stays dim.
func orbitDots(cx, cy, radius, stroke, scale, local float64) []Command {
	orbit := radius - DotInsetStrokes*stroke
	cmds := make([]Command, 0, OrbitDots)

	for k := 0; k < OrbitDots; k++ {
		ti := float64(k) / OrbitDots
		angle := anim.WrapPhase(ti+local*DotDriftTurns) * 2 * math.Pi

		col := dotColor
		col.A = DotPulseAlpha(ti)

		cmds = append(cmds, Dot{
			CX:     cx + orbit*math.Cos(angle),
			CY:     cy + orbit*math.Sin(angle),
			Radius: DotRadius * scale,
			Color:  col,
		})
	}
	return cmds
}

// DotPulseAlpha returns the orbit dot opacity for index fraction t in
// [0,1): DotAlphaBase at the seam, peaking at DotAlphaBase+DotAlphaRange
// when t is 0.5.
func DotPulseAlpha(t float64) uint8 {
	pulse := anim.Smoothstep(0, 1, 1-math.Abs(0.5-t)*2)
	return uint8(DotAlphaBase + int(DotAlphaRange*pulse))
}
