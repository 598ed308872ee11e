//go:build darwin

package hostinfo

import (
	"time"

	"golang.org/x/sys/unix"
)

// systemUptime returns the system uptime on macOS by reading kern.boottime.
func systemUptime() time.Duration {
	tv, err := unix.SysctlTimeval("kern.boottime")
	if err != nil {
		return 0
	}
	bootTime := time.Unix(tv.Sec, int64(tv.Usec)*1000)
	return time.Since(bootTime)
}
