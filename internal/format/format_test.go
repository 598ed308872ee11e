package format

import (
	"testing"
	"time"
)

func TestClockTime(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 5, 7, 0, time.UTC)
	if got := ClockTime(at); got != "09:05:07" {
		t.Errorf("expected 09:05:07, got %q", got)
	}
	if got := ClockTime(time.Time{}); got != "--:--:--" {
		t.Errorf("expected placeholder for zero time, got %q", got)
	}
}

func TestClockDate(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 5, 7, 0, time.UTC)
	if got := ClockDate(at); got != "Saturday, 01 Mar 2025" {
		t.Errorf("expected Saturday, 01 Mar 2025, got %q", got)
	}
	if got := ClockDate(time.Time{}); got != "" {
		t.Errorf("expected empty string for zero time, got %q", got)
	}
}

func TestAge(t *testing.T) {
	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{"zero time", time.Time{}, "never"},
		{"recent", time.Now().Add(-2 * time.Second), "just now"},
		{"seconds", time.Now().Add(-45 * time.Second), "45s ago"},
		{"minutes", time.Now().Add(-30 * time.Minute), "30m ago"},
		{"hours", time.Now().Add(-5 * time.Hour), "5h ago"},
		{"days", time.Now().Add(-72 * time.Hour), "3d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Age(tt.at); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{"sub-second", 500 * time.Millisecond, "0s"},
		{"seconds", 42 * time.Second, "42s"},
		{"minutes", 5*time.Minute + 30*time.Second, "5m 30s"},
		{"hours", 2*time.Hour + 15*time.Minute, "2h 15m"},
		{"days", 76 * time.Hour, "3d 4h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.d); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{"fits", "short", 10, "short"},
		{"truncated", "a longer string", 10, "a longe..."},
		{"narrow", "abcdef", 3, "abc"},
		{"zero width", "abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateWithEllipsis(tt.input, tt.maxWidth); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUniqueStrings(t *testing.T) {
	got := UniqueStrings([]string{"happy", "neutral", "happy", "sad", "neutral"})
	expected := []string{"happy", "neutral", "sad"}
	if len(got) != len(expected) {
		t.Fatalf("expected %d entries, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("expected %q at %d, got %q", expected[i], i, got[i])
		}
	}
}
