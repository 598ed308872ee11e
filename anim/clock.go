// Package anim provides the monotonic phase clock and easing helpers that
// drive every time-based visual in the HUD.
package anim

import (
	"math"
	"time"
)

const (
	// StepPerTick is the phase increment applied per animation tick.
	// At the 16 ms tick interval a full cycle takes about 13.3 seconds.
	StepPerTick = 0.0075

	// TickInterval is the nominal animation tick period.
	TickInterval = 16 * time.Millisecond
)

// Clock accumulates a normalized animation phase in [0,1). It has exactly
// one writer, the render loop, and is never reset after process start.
//
// The clock stores elapsed ticks rather than the wrapped phase so that the
// phase after N whole ticks is exactly (N*StepPerTick) mod 1.0 with no
// per-tick rounding accumulation.
type Clock struct {
	ticks float64
}

// NewClock returns a Clock at phase 0.
func NewClock() *Clock {
	return &Clock{}
}

// Phase returns the current phase in [0,1).
func (c *Clock) Phase() float64 {
	return WrapPhase(c.ticks * StepPerTick)
}

// Advance steps the clock forward by n whole ticks.
func (c *Clock) Advance(n int) {
	if n <= 0 {
		return
	}
	c.ticks += float64(n)
}

// AdvanceBy steps the clock by the wall-clock time elapsed since the last
// tick. Stepping by elapsed/TickInterval instead of a fixed increment keeps
// angular velocity constant when frames are dropped or delayed.
func (c *Clock) AdvanceBy(elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	c.ticks += float64(elapsed) / float64(TickInterval)
}

// WrapPhase wraps p into [0,1).
func WrapPhase(p float64) float64 {
	p = math.Mod(p, 1.0)
	if p < 0 {
		p += 1.0
	}
	return p
}

// PhaseAt derives a phase from an absolute wall-clock instant, as if a
// clock had been ticking since the Unix epoch. One-shot renders use this
// so successive invocations show a moving pattern.
func PhaseAt(t time.Time) float64 {
	ticks := float64(t.UnixMilli()) / float64(TickInterval.Milliseconds())
	return WrapPhase(ticks * StepPerTick)
}
