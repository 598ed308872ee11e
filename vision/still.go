package vision

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/disintegration/imaging"
)

// StillSource serves one image loaded from disk on every frame. It
// stands in for a live camera when only a snapshot is available.
type StillSource struct {
	path string
	img  image.Image
	now  func() time.Time
}

var _ Source = (*StillSource)(nil)

// NewStillSource loads the image at path.
func NewStillSource(path string) (*StillSource, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open still %s: %w", path, err)
	}
	return &StillSource{path: path, img: img, now: time.Now}, nil
}

// Name implements Source.
func (s *StillSource) Name() string { return "still" }

// Close implements Source.
func (s *StillSource) Close() error { return nil }

// Frame implements Source. Stills carry no detection regions.
func (s *StillSource) Frame(ctx context.Context) (Frame, error) {
	if err := ctx.Err(); err != nil {
		return Frame{}, fmt.Errorf("frame canceled: %w", err)
	}
	return Frame{Image: s.img, At: s.now()}, nil
}
