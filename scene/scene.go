// Package scene models HUD visuals as ordered lists of resolution
// independent draw commands. Builders here are pure functions of their
// inputs, so any backend that understands the primitives (the software
// rasterizer, a test inspecting geometry) can consume a command list and
// reproduce the frame exactly.
//
// Angles are in degrees, measured clockwise from the positive x axis in
// screen coordinates (y grows downward).
package scene

import "image/color"

// Command is one draw primitive. Concrete types: Glow, Arc, Dot, Rect, Box.
type Command interface {
	cmd()
}

// Glow is a radial gradient fill across the whole canvas: Inner at the
// center fading to Outer at Radius and beyond.
type Glow struct {
	CX, CY float64
	Radius float64
	Inner  color.NRGBA
	Outer  color.NRGBA
}

// Arc is a circular stroke of SweepDeg degrees starting at StartDeg, drawn
// with round caps.
type Arc struct {
	CX, CY   float64
	Radius   float64
	StartDeg float64
	SweepDeg float64
	Stroke   float64
	Color    color.NRGBA
}

// Dot is a filled circle.
type Dot struct {
	CX, CY float64
	Radius float64
	Color  color.NRGBA
}

// Rect is a filled axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
	Color      color.NRGBA
}

// Box is an axis-aligned rectangle outline of the given stroke width.
type Box struct {
	X, Y, W, H float64
	Stroke     float64
	Color      color.NRGBA
}

func (Glow) cmd() {}
func (Arc) cmd()  {}
func (Dot) cmd()  {}
func (Rect) cmd() {}
func (Box) cmd()  {}
