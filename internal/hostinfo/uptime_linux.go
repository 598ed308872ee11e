//go:build linux

package hostinfo

import (
	"os"
	"time"
)

// systemUptime returns the system uptime on Linux by reading /proc/uptime.
func systemUptime() time.Duration {
	data, err := os.ReadFile("/proc/uptime")
	if err != nil {
		return 0
	}
	uptime, err := parseUptime(data)
	if err != nil {
		return 0
	}
	return uptime
}
