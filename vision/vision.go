// Package vision provides camera-like frame sources for the HUD: a
// deterministic procedural pattern for demo mode and still images loaded
// from disk. Frames carry detection regions that the display layer
// outlines and labels.
package vision

import (
	"context"
	"image"
	"time"
)

// Region is a labeled rectangle in frame pixel coordinates.
type Region struct {
	Rect  image.Rectangle
	Label string
}

// Frame is one image plus any regions detected in it.
type Frame struct {
	Image   image.Image
	Regions []Region
	At      time.Time
}

// Source produces frames on demand. Frame should honor ctx cancellation;
// Close releases any underlying file or device handle.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// Frame returns the current frame.
	Frame(ctx context.Context) (Frame, error)
	// Close releases the source.
	Close() error
}
