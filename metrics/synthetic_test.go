package metrics

import (
	"context"
	"testing"
	"time"
)

// syntheticAt builds a provider pinned to a fake clock starting at base.
func syntheticAt(seed int64, base time.Time, current *time.Time) *SyntheticProvider {
	return &SyntheticProvider{
		seed:  float64(seed),
		start: base,
		now:   func() time.Time { return *current },
	}
}

func TestSyntheticProvider_Deterministic(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	for _, offset := range []time.Duration{0, 5 * time.Second, 9*time.Second + 300*time.Millisecond} {
		cur := base.Add(offset)
		a := syntheticAt(42, base, &cur)
		b := syntheticAt(42, base, &cur)

		sa, _ := a.Sample(context.Background())
		sb, _ := b.Sample(context.Background())
		if sa != sb {
			t.Errorf("expected identical samples at offset %v, got %+v and %+v", offset, sa, sb)
		}
	}
}

func TestSyntheticProvider_SeedChangesStream(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	cur := base.Add(3 * time.Second)

	a := syntheticAt(1, base, &cur)
	b := syntheticAt(2, base, &cur)

	sa, _ := a.Sample(context.Background())
	sb, _ := b.Sample(context.Background())
	if sa.CPUPercent == sb.CPUPercent && sa.DownloadMBps == sb.DownloadMBps {
		t.Error("expected different seeds to produce different samples")
	}
}

func TestSyntheticProvider_RangesHold(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	cur := base
	p := syntheticAt(7, base, &cur)

	for step := 0; step < 240; step++ {
		cur = base.Add(time.Duration(step) * 500 * time.Millisecond)
		s, err := p.Sample(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, pct := range []struct {
			name  string
			value float64
		}{
			{"cpu", s.CPUPercent},
			{"battery", s.BatteryPct},
			{"memory", s.MemPercent},
			{"disk", s.DiskPercent},
		} {
			if pct.value < 0 || pct.value > 100 {
				t.Fatalf("expected %s within [0,100] at step %d, got %v", pct.name, step, pct.value)
			}
		}
		if s.TempC < 30 || s.TempC > 66 {
			t.Fatalf("expected plausible temperature at step %d, got %v", step, s.TempC)
		}
		if s.UploadMBps < 0.3 || s.UploadMBps > 3.3 {
			t.Fatalf("expected upload within band at step %d, got %v", step, s.UploadMBps)
		}
		if s.DownloadMBps < 3.2 || s.DownloadMBps > 18.4 {
			t.Fatalf("expected download within band at step %d, got %v", step, s.DownloadMBps)
		}
		if s.IP != SyntheticIP {
			t.Fatalf("expected placeholder IP, got %q", s.IP)
		}
		if !s.TakenAt.Equal(cur) {
			t.Fatalf("expected sample timestamped %v, got %v", cur, s.TakenAt)
		}
	}
}

func TestSyntheticProvider_Name(t *testing.T) {
	if got := NewSyntheticProvider(1).Name(); got != "synthetic" {
		t.Errorf("expected name %q, got %q", "synthetic", got)
	}
}
