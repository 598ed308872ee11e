package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/nova-hud/metrics"
	"gitlab.com/tinyland/lab/nova-hud/vision"
)

// The compositor runs three named recurring ticks. Each handler does its
// work and reschedules only its own kind, so a slow camera fetch can
// never hold back the animation and a dropped animation frame never
// skews the wall clock.
type tickKind int

const (
	// tickAnimate advances the animation phase and triggers a redraw.
	tickAnimate tickKind = iota
	// tickClock refreshes the wall-clock card once a second.
	tickClock
	// tickFrame polls the vision source for a fresh camera frame.
	tickFrame
)

// clockInterval is the wall-clock refresh cadence.
const clockInterval = time.Second

// frameTimeout bounds a single vision fetch so a wedged source surfaces
// as a frame error instead of a stuck command.
const frameTimeout = 2 * time.Second

// tickMsg is one firing of a named recurring tick.
type tickMsg struct {
	kind tickKind
	at   time.Time
}

// scheduleTick returns a command that fires a tickMsg of the given kind
// after the interval elapses.
func scheduleTick(kind tickKind, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return tickMsg{kind: kind, at: t}
	})
}

// animateInterval converts a target frame rate into the animate tick
// interval. Out-of-range rates fall back to 60 fps.
func animateInterval(fps int) time.Duration {
	if fps < 1 || fps > 120 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// SampleMsg delivers a completed metric sample to the compositor. The
// sampler goroutine hands finished samples to the program via Send, so
// the UI loop only ever sees whole snapshots.
type SampleMsg struct {
	Sample metrics.Sample
}

// FrameMsg is the result of one camera frame fetch.
type FrameMsg struct {
	Frame vision.Frame
	Err   error
}

// fetchFrame returns a command that polls the vision source once. The
// fetch runs off the UI loop; its result comes back as a FrameMsg.
func fetchFrame(src vision.Source) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), frameTimeout)
		defer cancel()

		frame, err := src.Frame(ctx)
		return FrameMsg{Frame: frame, Err: err}
	}
}
