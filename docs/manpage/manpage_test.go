package manpage

import (
	"strings"
	"testing"
)

func TestGenerate_ValidRoff(t *testing.T) {
	page := Generate("0.1.0", "abc1234", "2026-02-06")

	// Must start with .TH header.
	if !strings.HasPrefix(page, ".TH NOVA-HUD 1") {
		t.Errorf("man page should start with .TH header, got: %s", page[:80])
	}

	// Must contain all required sections.
	requiredSections := []string{
		".SH NAME",
		".SH SYNOPSIS",
		".SH DESCRIPTION",
		".SH OPTIONS",
		".SH KEYBINDINGS",
		".SH CONFIGURATION",
		".SH FILES",
		".SH EXAMPLES",
		".SH ENVIRONMENT",
		".SH EXIT STATUS",
		".SH SEE ALSO",
		".SH AUTHORS",
		".SH BUGS",
		".SH VERSION",
	}

	for _, section := range requiredSections {
		if !strings.Contains(page, section) {
			t.Errorf("man page missing required section: %s", section)
		}
	}
}

func TestGenerate_ContainsVersion(t *testing.T) {
	page := Generate("1.2.3", "deadbeef", "2026-02-06")

	if !strings.Contains(page, "1.2.3") {
		t.Error("man page should contain the version string")
	}
	if !strings.Contains(page, "deadbeef") {
		t.Error("man page should contain the commit hash")
	}
}

func TestGenerate_ContainsAllFlags(t *testing.T) {
	page := Generate("0.1.0", "dev", "unknown")

	expectedFlags := []string{
		"config",
		"once",
		"sample",
		"json",
		"diagnose",
		"synthetic",
		"seed",
		"fps",
		"no\\-camera",
		"still",
		"log",
		"width",
		"height",
		"verbose",
		"version",
		"man",
	}

	for _, flag := range expectedFlags {
		if !strings.Contains(page, flag) {
			t.Errorf("man page missing flag: --%s", flag)
		}
	}
}

func TestGenerate_ContainsKeybindings(t *testing.T) {
	page := Generate("0.1.0", "dev", "unknown")

	// Keybinding descriptions pulled from the live keymap.
	expectedKeys := []string{
		"next panel",
		"prev panel",
		"toggle camera",
		"quit",
		"help",
	}

	for _, key := range expectedKeys {
		if !strings.Contains(page, key) {
			t.Errorf("man page missing keybinding description: %q", key)
		}
	}

	// Key names are roff-escaped.
	if !strings.Contains(page, `shift+tab`) {
		t.Error("man page missing shift+tab key listing")
	}
}

func TestGenerate_ContainsConfigFields(t *testing.T) {
	page := Generate("0.1.0", "dev", "unknown")

	expectedFields := []string{
		"title",
		"caption",
		"fps",
		"log_file",
		"sample_interval",
		"disk_path",
		"synthetic_seed",
		"still_path",
		"frame_interval",
	}

	for _, field := range expectedFields {
		if !strings.Contains(page, field) {
			t.Errorf("man page missing config field: %s", field)
		}
	}
}

func TestGenerate_NoEmptyOutput(t *testing.T) {
	page := Generate("0.1.0", "dev", "unknown")

	if len(page) < 1000 {
		t.Errorf("man page seems too short: %d bytes", len(page))
	}
}

func TestRoffEscape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello", "hello"},
		{"ctrl-p", `ctrl\-p`},
		{"e.g.", `e\&.g\&.`},
		{`foo\bar`, `foo\\bar`},
	}

	for _, tt := range tests {
		got := roffEscape(tt.input)
		if got != tt.expected {
			t.Errorf("roffEscape(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
