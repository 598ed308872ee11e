//go:build !linux && !darwin

package hostinfo

import "time"

// systemUptime returns 0 on unsupported platforms.
func systemUptime() time.Duration {
	return 0
}
