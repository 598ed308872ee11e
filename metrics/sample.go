// Package metrics defines the telemetry sample model and the providers
// that produce samples, either from live host probes or from a
// deterministic synthetic signal generator.
package metrics

import "time"

// bytesPerMB is the divisor for converting byte counters to megabytes.
const bytesPerMB = 1048576.0

// Sample is one complete telemetry reading. Percent fields are raw
// provider values; display layers clamp them to the 0-100 gauge range.
type Sample struct {
	// CPUPercent is total CPU utilization across all cores.
	CPUPercent float64 `json:"cpu_percent"`
	// TempC is the CPU temperature in degrees Celsius.
	TempC float64 `json:"temp_c"`
	// BatteryPct is the battery charge level.
	BatteryPct float64 `json:"battery_pct"`
	// MemPercent is physical memory usage.
	MemPercent float64 `json:"mem_percent"`
	// DiskPercent is usage of the monitored filesystem.
	DiskPercent float64 `json:"disk_percent"`
	// UploadMBps and DownloadMBps are network rates in megabytes per
	// second, aggregated across interfaces.
	UploadMBps   float64 `json:"upload_mbps"`
	DownloadMBps float64 `json:"download_mbps"`
	// IP is the primary local address, or a placeholder when none is
	// known.
	IP string `json:"ip"`
	// TakenAt records when the sample was produced.
	TakenAt time.Time `json:"taken_at"`
}

// ClampPercent limits v to the displayable 0-100 range.
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Throughput converts two cumulative interface counter readings into
// upload and download rates in MB/s. ok is false when no rate can be
// derived: zero elapsed time, or a counter that moved backwards after an
// interface reset. Callers keep their previous rates in that case.
func Throughput(prevSent, prevRecv, curSent, curRecv uint64, elapsed time.Duration) (up, down float64, ok bool) {
	if elapsed <= 0 {
		return 0, 0, false
	}
	if curSent < prevSent || curRecv < prevRecv {
		return 0, 0, false
	}
	secs := elapsed.Seconds()
	up = float64(curSent-prevSent) / secs / bytesPerMB
	down = float64(curRecv-prevRecv) / secs / bytesPerMB
	return up, down, true
}
