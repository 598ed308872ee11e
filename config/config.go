// Package config provides configuration parsing for nova-hud.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the nova-hud configuration.
type Config struct {
	// Hud holds presentation settings.
	Hud HudConfig `yaml:"hud"`

	// Metrics holds telemetry sampling settings.
	Metrics MetricsConfig `yaml:"metrics"`

	// Camera holds frame source settings.
	Camera CameraConfig `yaml:"camera"`
}

// HudConfig holds presentation settings.
type HudConfig struct {
	// Title is the wordmark drawn over the ring field.
	Title string `yaml:"title"`
	// Caption is the status text under the wordmark.
	Caption string `yaml:"caption"`
	// Header is the interface name shown in the top bar.
	Header string `yaml:"header"`
	// FPS caps the animation refresh rate.
	FPS int `yaml:"fps"`
	// LogFile is the path for log output. Empty discards logs, which
	// keeps the alternate screen clean.
	LogFile string `yaml:"log_file"`
}

// MetricsConfig holds telemetry sampling settings.
type MetricsConfig struct {
	// Provider selects the telemetry source: "system" or "synthetic".
	Provider string `yaml:"provider"`
	// SampleInterval is a duration string (e.g. "1s") between samples.
	SampleInterval string `yaml:"sample_interval"`
	// DiskPath is the filesystem whose usage the disk gauge tracks.
	DiskPath string `yaml:"disk_path"`
	// SyntheticSeed seeds the synthetic signal generator.
	SyntheticSeed int64 `yaml:"synthetic_seed"`
}

// CameraConfig holds frame source settings.
type CameraConfig struct {
	// Enabled controls whether the camera panel is shown.
	Enabled bool `yaml:"enabled"`
	// Source selects the frame source: "pattern" or "still".
	Source string `yaml:"source"`
	// StillPath is the image served by the still source.
	StillPath string `yaml:"still_path"`
	// FrameInterval is a duration string between frame fetches.
	FrameInterval string `yaml:"frame_interval"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Hud: HudConfig{
			Title:   "NOVA",
			Caption: "ONLINE",
			Header:  "NOVA VISION INTERFACE",
			FPS:     60,
			LogFile: "",
		},
		Metrics: MetricsConfig{
			Provider:       "system",
			SampleInterval: "1s",
			DiskPath:       "/",
			SyntheticSeed:  7,
		},
		Camera: CameraConfig{
			Enabled:       true,
			Source:        "pattern",
			StillPath:     "",
			FrameInterval: "100ms",
		},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "nova-hud", "config.yaml")
}

// LoadConfig loads configuration from a YAML file, merging with
// defaults. A missing file is not an error; the defaults apply.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration for required fields and logical
// consistency.
func (c *Config) Validate() error {
	if c.Hud.Title == "" {
		return fmt.Errorf("hud.title is required")
	}
	if c.Hud.FPS < 1 || c.Hud.FPS > 120 {
		return fmt.Errorf("hud.fps must be between 1 and 120, got %d", c.Hud.FPS)
	}

	if c.Metrics.Provider != "system" && c.Metrics.Provider != "synthetic" {
		return fmt.Errorf("metrics.provider must be 'system' or 'synthetic', got %q", c.Metrics.Provider)
	}
	if _, err := parsePositiveDuration(c.Metrics.SampleInterval); err != nil {
		return fmt.Errorf("metrics.sample_interval: %w", err)
	}
	if c.Metrics.DiskPath == "" {
		return fmt.Errorf("metrics.disk_path is required")
	}

	if c.Camera.Source != "pattern" && c.Camera.Source != "still" {
		return fmt.Errorf("camera.source must be 'pattern' or 'still', got %q", c.Camera.Source)
	}
	if c.Camera.Source == "still" && c.Camera.StillPath == "" {
		return fmt.Errorf("camera.still_path is required for the still source")
	}
	if _, err := parsePositiveDuration(c.Camera.FrameInterval); err != nil {
		return fmt.Errorf("camera.frame_interval: %w", err)
	}

	return nil
}

// SampleInterval returns the parsed metrics cadence. Call Validate
// first; an unparsable value falls back to one second.
func (c *Config) SampleInterval() time.Duration {
	d, err := parsePositiveDuration(c.Metrics.SampleInterval)
	if err != nil {
		return time.Second
	}
	return d
}

// FrameInterval returns the parsed camera cadence. Call Validate first;
// an unparsable value falls back to 100ms.
func (c *Config) FrameInterval() time.Duration {
	d, err := parsePositiveDuration(c.Camera.FrameInterval)
	if err != nil {
		return 100 * time.Millisecond
	}
	return d
}

func parsePositiveDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("duration is required")
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %q", s)
	}
	return d, nil
}

// SaveConfig saves configuration to a YAML file.
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
