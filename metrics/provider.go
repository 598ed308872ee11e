package metrics

import "context"

// Provider produces telemetry samples on demand. Sample should honor ctx
// cancellation for probes that can block; implementations are called
// from a single sampling goroutine at a time.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string
	// Sample returns the current telemetry reading.
	Sample(ctx context.Context) (Sample, error)
}
