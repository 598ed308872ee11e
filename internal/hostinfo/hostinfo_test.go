package hostinfo

import (
	"testing"
	"time"
)

func TestParseUptime(t *testing.T) {
	got, err := parseUptime([]byte("90061.50 180000.00\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 90061*time.Second + 500*time.Millisecond
	if got != want {
		t.Errorf("parseUptime = %v, want %v", got, want)
	}
}

func TestParseUptime_SingleField(t *testing.T) {
	got, err := parseUptime([]byte("42.25"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 42*time.Second + 250*time.Millisecond
	if got != want {
		t.Errorf("parseUptime = %v, want %v", got, want)
	}
}

func TestParseUptime_Invalid(t *testing.T) {
	if _, err := parseUptime([]byte("")); err == nil {
		t.Error("expected an error for empty data")
	}
	if _, err := parseUptime([]byte("up 14 days")); err == nil {
		t.Error("expected an error for non-numeric data")
	}
}

func TestUptime_NeverNegative(t *testing.T) {
	if Uptime() < 0 {
		t.Error("expected a non-negative uptime")
	}
}

func TestSizeFromEnv(t *testing.T) {
	t.Setenv("COLUMNS", "132")
	t.Setenv("LINES", "43")
	w, h := sizeFromEnv()
	if w != 132 || h != 43 {
		t.Errorf("sizeFromEnv = %dx%d, want 132x43", w, h)
	}
}

func TestSizeFromEnv_Defaults(t *testing.T) {
	t.Setenv("COLUMNS", "")
	t.Setenv("LINES", "")
	w, h := sizeFromEnv()
	if w != 80 || h != 24 {
		t.Errorf("sizeFromEnv defaults = %dx%d, want 80x24", w, h)
	}
}
