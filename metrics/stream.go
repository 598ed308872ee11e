package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultSampleInterval is how often the stream polls its provider.
	DefaultSampleInterval = 1 * time.Second
	// DefaultSampleTimeout bounds a single provider call so a stuck
	// probe cannot stall the cadence.
	DefaultSampleTimeout = 800 * time.Millisecond
	// DefaultStreamBuffer is the sample channel capacity.
	DefaultStreamBuffer = 8
	// DefaultStopTimeout is how long Stop waits for the sampling
	// goroutine to exit.
	DefaultStopTimeout = 5 * time.Second
)

// Stream polls a Provider on a fixed interval from a background
// goroutine and delivers samples on a buffered channel. The first sample
// is taken immediately on Start. Sends never block: a slow consumer
// loses samples rather than stalling the sampler. Provider errors are
// logged once per distinct failure and otherwise swallowed, so consumers
// simply keep their previous sample through transient outages.
type Stream struct {
	provider Provider
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger

	samples chan Sample
	stopCh  chan struct{}
	doneCh  chan struct{}

	mu      sync.Mutex
	started bool
	stopped bool
	lastErr string
}

// NewStream wires a provider to a sampling loop. A non-positive interval
// falls back to DefaultSampleInterval; a nil logger falls back to the
// process default.
func NewStream(provider Provider, interval time.Duration, logger *slog.Logger) *Stream {
	if interval <= 0 {
		interval = DefaultSampleInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Stream{
		provider: provider,
		interval: interval,
		timeout:  DefaultSampleTimeout,
		logger:   logger.With("component", "metrics"),
		samples:  make(chan Sample, DefaultStreamBuffer),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Samples returns the channel samples are delivered on.
func (s *Stream) Samples() <-chan Sample {
	return s.samples
}

// Interval returns the polling cadence.
func (s *Stream) Interval() time.Duration {
	return s.interval
}

// Start launches the sampling goroutine. Calling Start twice is a no-op.
func (s *Stream) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	go s.loop(ctx)
}

// Stop signals the sampling goroutine and waits for it to exit, up to
// DefaultStopTimeout.
func (s *Stream) Stop() {
	s.mu.Lock()
	if !s.started || s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()

	close(s.stopCh)
	select {
	case <-s.doneCh:
	case <-time.After(DefaultStopTimeout):
		s.logger.Warn("sampler did not stop in time", "provider", s.provider.Name())
	}
}

func (s *Stream) loop(ctx context.Context) {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sampleOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.sampleOnce(ctx)
		}
	}
}

// sampleOnce performs a single bounded provider call and queues the
// result. A panicking provider is treated as a failed sample so the
// loop keeps its cadence.
func (s *Stream) sampleOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.noteError(fmt.Errorf("provider panicked: %v", r))
		}
	}()

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	sample, err := s.provider.Sample(cctx)
	if err != nil {
		s.noteError(err)
		return
	}
	s.clearError()

	select {
	case s.samples <- sample:
	default:
		s.logger.Debug("sample channel full, dropping", "provider", s.provider.Name())
	}
}

// noteError logs an error only when it differs from the previous one,
// so a persistent failure produces one line instead of one per tick.
func (s *Stream) noteError(err error) {
	msg := err.Error()
	s.mu.Lock()
	changed := msg != s.lastErr
	s.lastErr = msg
	s.mu.Unlock()

	if changed {
		s.logger.Warn("sample failed", "provider", s.provider.Name(), "error", err)
	}
}

func (s *Stream) clearError() {
	s.mu.Lock()
	recovered := s.lastErr != ""
	s.lastErr = ""
	s.mu.Unlock()

	if recovered {
		s.logger.Info("sampler recovered", "provider", s.provider.Name())
	}
}
