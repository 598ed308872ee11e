// Package hostinfo reports facts about the machine and terminal the HUD
// is running on: system uptime and the usable terminal size. Everything
// here is best-effort; callers get zero values, never errors.
package hostinfo

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/term"
)

// Uptime returns how long the host has been up, or 0 when the platform
// offers no way to tell.
func Uptime() time.Duration {
	return systemUptime()
}

// parseUptime reads the first field of /proc/uptime content, the uptime
// in fractional seconds.
func parseUptime(data []byte) (time.Duration, error) {
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty uptime data")
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("parse uptime %q: %w", fields[0], err)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

// TerminalSize returns the current terminal dimensions. It attempts TTY
// detection first, then falls back to COLUMNS/LINES environment
// variables, and finally to 80x24 defaults.
func TerminalSize() (width, height int) {
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err == nil && w > 0 && h > 0 {
		return w, h
	}
	return sizeFromEnv()
}

// sizeFromEnv reads COLUMNS/LINES, defaulting to 80x24.
func sizeFromEnv() (width, height int) {
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			width = w
		}
	}
	if lines := os.Getenv("LINES"); lines != "" {
		if h, err := strconv.Atoi(lines); err == nil && h > 0 {
			height = h
		}
	}

	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}
	return width, height
}
