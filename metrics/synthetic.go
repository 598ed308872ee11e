package metrics

import (
	"context"
	"math"
	"time"
)

// SyntheticIP is the placeholder address reported by the synthetic
// provider.
const SyntheticIP = "192.168.1.101"

// SyntheticProvider generates plausible telemetry without touching the
// host. Every field is a pure function of elapsed time and the seed, so
// two providers built with the same seed and start instant emit
// identical streams. It backs the demo mode and serves as the per-field
// fallback for failed host probes.
type SyntheticProvider struct {
	seed  float64
	start time.Time
	now   func() time.Time
}

// NewSyntheticProvider returns a provider seeded for reproducible
// output.
func NewSyntheticProvider(seed int64) *SyntheticProvider {
	p := &SyntheticProvider{seed: float64(seed), now: time.Now}
	p.start = p.now()
	return p
}

// Name implements Provider.
func (p *SyntheticProvider) Name() string { return "synthetic" }

// Sample implements Provider. It never fails.
func (p *SyntheticProvider) Sample(ctx context.Context) (Sample, error) {
	now := p.now()
	t := now.Sub(p.start).Seconds()

	return Sample{
		CPUPercent:   ClampPercent(48 + 32*math.Sin(t/4.2) + 8*p.noise(t, 1)),
		TempC:        48 + 12*math.Sin(t/6.5) + 2*p.noise(t, 2),
		BatteryPct:   ClampPercent(70 + 8*math.Sin(t/10.0) + 4*p.noise(t, 3)),
		MemPercent:   ClampPercent(54 + 28*math.Sin(t/9.1) + 4*p.noise(t, 4)),
		DiskPercent:  ClampPercent(50 + 36*math.Sin(t/41.0) + 2*p.noise(t, 5)),
		UploadMBps:   1.8 + 1.2*math.Sin(t/5.3) + 0.2*p.noise(t, 6),
		DownloadMBps: 10.8 + 6.5*math.Sin(t/4.7) + 1.0*p.noise(t, 7),
		IP:           SyntheticIP,
		TakenAt:      now,
	}, nil
}

// noise returns a deterministic pseudo-random value in [-1, 1] derived
// from time, a per-field salt, and the seed.
func (p *SyntheticProvider) noise(t, salt float64) float64 {
	v := math.Sin(t*12.9898+salt*78.233+p.seed) * 43758.5453
	return (v-math.Floor(v))*2 - 1
}
