package metrics

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	psnet "github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/sensors"
)

// temperatureSensors lists sensor keys in preference order. The first
// key with a positive reading wins; anything positive is accepted when
// none of these are present.
var temperatureSensors = []string{
	"coretemp_package_id_0",
	"coretemp",
	"k10temp",
	"cpu_thermal",
	"soc_thermal",
	"acpitz",
}

// SystemProvider reads live telemetry through gopsutil and the kernel's
// sysfs battery interface. Probes are best-effort per field: a failed
// probe fills its field from the synthetic fallback instead of failing
// the whole sample, so the HUD keeps animating on hosts that expose only
// part of the surface.
type SystemProvider struct {
	diskPath string
	fallback *SyntheticProvider

	mu       sync.Mutex
	netReady bool
	prevSent uint64
	prevRecv uint64
	prevAt   time.Time
	lastUp   float64
	lastDown float64

	// Injection points for tests.
	now            func() time.Time
	globCapacity   func() ([]string, error)
	readFile       func(string) ([]byte, error)
	interfaceAddrs func() ([]net.Addr, error)
	netCounters    func(context.Context) ([]psnet.IOCountersStat, error)
}

// NewSystemProvider returns a provider that monitors diskPath (the root
// filesystem when empty) and falls back to synth for unavailable probes.
func NewSystemProvider(diskPath string, synth *SyntheticProvider) *SystemProvider {
	if diskPath == "" {
		diskPath = "/"
	}
	p := &SystemProvider{
		diskPath: diskPath,
		fallback: synth,
		now:      time.Now,
		globCapacity: func() ([]string, error) {
			return filepath.Glob("/sys/class/power_supply/BAT*/capacity")
		},
		readFile:       os.ReadFile,
		interfaceAddrs: net.InterfaceAddrs,
		netCounters: func(ctx context.Context) ([]psnet.IOCountersStat, error) {
			return psnet.IOCountersWithContext(ctx, false)
		},
	}
	// Prime the utilization counter so the first interval-free Percent
	// call has a baseline to diff against.
	_, _ = cpu.Percent(0, false)
	return p
}

// Name implements Provider.
func (p *SystemProvider) Name() string { return "system" }

// Sample implements Provider. Each field is probed independently; the
// synthetic fallback fills whatever the host does not expose.
func (p *SystemProvider) Sample(ctx context.Context) (Sample, error) {
	if err := ctx.Err(); err != nil {
		return Sample{}, fmt.Errorf("sample canceled: %w", err)
	}

	synth, _ := p.fallback.Sample(ctx)
	s := Sample{IP: "unknown", TakenAt: p.now()}

	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = ClampPercent(pcts[0])
	} else {
		s.CPUPercent = synth.CPUPercent
	}

	battery, batteryOK := p.batteryPercent()
	if batteryOK {
		s.BatteryPct = ClampPercent(battery)
	} else {
		s.BatteryPct = synth.BatteryPct
	}

	if temp, ok := p.cpuTemperature(ctx); ok {
		s.TempC = temp
	} else if batteryOK {
		s.TempC = pseudoTemperature(battery)
	} else {
		s.TempC = synth.TempC
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		s.MemPercent = ClampPercent(vm.UsedPercent)
	} else {
		s.MemPercent = synth.MemPercent
	}

	if du, err := disk.UsageWithContext(ctx, p.diskPath); err == nil {
		s.DiskPercent = ClampPercent(du.UsedPercent)
	} else {
		s.DiskPercent = synth.DiskPercent
	}

	s.UploadMBps, s.DownloadMBps = p.netRates(ctx, synth)

	if ip := p.localIP(); ip != "" {
		s.IP = ip
	}

	return s, nil
}

// pseudoTemperature derives a display temperature from battery charge on
// hosts with no thermal sensor, so the gauge still tracks something
// real.
func pseudoTemperature(batteryPct float64) float64 {
	return 60 + batteryPct*0.2
}

// batteryPercent reads the first charge level exposed under
// /sys/class/power_supply.
func (p *SystemProvider) batteryPercent() (float64, bool) {
	paths, err := p.globCapacity()
	if err != nil {
		return 0, false
	}
	for _, path := range paths {
		raw, err := p.readFile(path)
		if err != nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}

// cpuTemperature probes thermal sensors and picks the most CPU-like
// reading.
func (p *SystemProvider) cpuTemperature(ctx context.Context) (float64, bool) {
	readings, err := sensors.TemperaturesWithContext(ctx)
	if err != nil || len(readings) == 0 {
		return 0, false
	}
	return pickTemperature(readings)
}

func pickTemperature(readings []sensors.TemperatureStat) (float64, bool) {
	for _, key := range temperatureSensors {
		for _, r := range readings {
			if r.SensorKey == key && r.Temperature > 0 {
				return r.Temperature, true
			}
		}
	}
	for _, r := range readings {
		if r.Temperature > 0 {
			return r.Temperature, true
		}
	}
	return 0, false
}

// netRates diffs aggregated interface counters against the previous
// sample. The first reading has no baseline, so it reports the synthetic
// rates; a counter regression or failed probe keeps the previous rates.
func (p *SystemProvider) netRates(ctx context.Context, synth Sample) (float64, float64) {
	counters, err := p.netCounters(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil || len(counters) == 0 {
		if p.netReady {
			return p.lastUp, p.lastDown
		}
		return synth.UploadMBps, synth.DownloadMBps
	}

	cur := counters[0]
	now := p.now()

	if !p.netReady {
		p.netReady = true
		p.prevSent, p.prevRecv, p.prevAt = cur.BytesSent, cur.BytesRecv, now
		p.lastUp, p.lastDown = synth.UploadMBps, synth.DownloadMBps
		return p.lastUp, p.lastDown
	}

	up, down, ok := Throughput(p.prevSent, p.prevRecv, cur.BytesSent, cur.BytesRecv, now.Sub(p.prevAt))
	p.prevSent, p.prevRecv, p.prevAt = cur.BytesSent, cur.BytesRecv, now
	if ok {
		p.lastUp, p.lastDown = up, down
	}
	return p.lastUp, p.lastDown
}

// localIP returns the first global unicast IPv4 address, or empty when
// none is available.
func (p *SystemProvider) localIP() string {
	addrs, err := p.interfaceAddrs()
	if err != nil {
		return ""
	}
	for _, addr := range addrs {
		var ip net.IP
		switch v := addr.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		default:
			continue
		}
		ip4 := ip.To4()
		if ip4 == nil || ip4.IsLoopback() || ip4.IsLinkLocalUnicast() {
			continue
		}
		return ip4.String()
	}
	return ""
}
