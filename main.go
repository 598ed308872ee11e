// nova-hud renders a fullscreen diagnostic heads-up display.
//
// It samples host telemetry (CPU, temperature, battery, memory, disk,
// network) once a second, animates gauge and ring panels at up to 60
// frames per second, and shows an annotated camera-style feed, all
// drawn in the terminal with half-block cells.
//
// Usage:
//
//	nova-hud [flags]
//
// Flags:
//
//	-config string   Path to configuration file (default: ~/.config/nova-hud/config.yaml)
//	-once            Render one frame to stdout and exit
//	-sample          Print one telemetry sample and exit
//	-json            Output the sample as JSON (with -sample)
//	-diagnose        Run startup diagnostics and exit
//	-synthetic       Use the synthetic telemetry provider
//	-seed int        Seed for the synthetic provider (0 = config value)
//	-fps int         Animation refresh rate override, 1-120 (0 = config value)
//	-no-camera       Disable the camera panel
//	-still string    Serve this image file as the camera feed
//	-log string      Write logs to this file
//	-width int       Terminal width override (0 = auto-detect)
//	-height int      Terminal height override (0 = auto-detect)
//	-verbose         Enable debug logging
//	-version         Print version and exit
//	-man             Print man page to stdout in roff format
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/nova-hud/config"
	"gitlab.com/tinyland/lab/nova-hud/display/tui"
	"gitlab.com/tinyland/lab/nova-hud/docs/manpage"
	"gitlab.com/tinyland/lab/nova-hud/internal/hostinfo"
	"gitlab.com/tinyland/lab/nova-hud/metrics"
	"gitlab.com/tinyland/lab/nova-hud/vision"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file (default: ~/.config/nova-hud/config.yaml)")
		runOnce     = flag.Bool("once", false, "Render one frame to stdout and exit")
		runSample   = flag.Bool("sample", false, "Print one telemetry sample and exit")
		sampleJSON  = flag.Bool("json", false, "Output the sample as JSON (with -sample)")
		runDiagnose = flag.Bool("diagnose", false, "Run startup diagnostics and exit")
		synthetic   = flag.Bool("synthetic", false, "Use the synthetic telemetry provider")
		seed        = flag.Int64("seed", 0, "Seed for the synthetic provider (0 = config value)")
		fps         = flag.Int("fps", 0, "Animation refresh rate override, 1-120 (0 = config value)")
		noCamera    = flag.Bool("no-camera", false, "Disable the camera panel")
		stillPath   = flag.String("still", "", "Serve this image file as the camera feed")
		logPath     = flag.String("log", "", "Write logs to this file")
		termWidth   = flag.Int("width", 0, "Terminal width override (0 = auto-detect)")
		termHeight  = flag.Int("height", 0, "Terminal height override (0 = auto-detect)")
		verbose     = flag.Bool("verbose", false, "Enable debug logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
		showMan     = flag.Bool("man", false, "Print man page to stdout in roff format")
	)
	flag.Parse()

	// ---------------------------------------------------------------
	// Commands that don't require config
	// ---------------------------------------------------------------

	if *showVersion {
		fmt.Printf("nova-hud %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if *showMan {
		fmt.Print(manpage.Generate(version, commit, date))
		os.Exit(0)
	}

	// ---------------------------------------------------------------
	// Load configuration
	// ---------------------------------------------------------------

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nova-hud: failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Apply CLI overrides before validation.
	if *synthetic {
		cfg.Metrics.Provider = "synthetic"
	}
	if *seed != 0 {
		cfg.Metrics.SyntheticSeed = *seed
	}
	if *fps != 0 {
		cfg.Hud.FPS = *fps
	}
	if *logPath != "" {
		cfg.Hud.LogFile = *logPath
	}
	if *noCamera {
		cfg.Camera.Enabled = false
	}
	if *stillPath != "" {
		cfg.Camera.Enabled = true
		cfg.Camera.Source = "still"
		cfg.Camera.StillPath = *stillPath
	}

	// Diagnostics report validation problems instead of dying on them.
	if *runDiagnose {
		runDiagnostics(cfg, path)
		os.Exit(0)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "nova-hud: invalid config: %v\n", err)
		os.Exit(1)
	}

	provider := buildProvider(cfg)

	// ---------------------------------------------------------------
	// Sample mode
	// ---------------------------------------------------------------

	if *runSample {
		if err := printSample(provider, *sampleJSON); err != nil {
			fmt.Fprintf(os.Stderr, "nova-hud: sample failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	source, err := buildSource(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nova-hud: camera source: %v\n", err)
		os.Exit(1)
	}

	// ---------------------------------------------------------------
	// One-shot render mode
	// ---------------------------------------------------------------

	if *runOnce {
		width, height := *termWidth, *termHeight
		if width <= 0 || height <= 0 {
			detectedW, detectedH := hostinfo.TerminalSize()
			if width <= 0 {
				width = detectedW
			}
			if height <= 0 {
				height = detectedH
			}
		}

		sctx, scancel := context.WithTimeout(context.Background(), 10*time.Second)
		sample, err := provider.Sample(sctx)
		scancel()
		if err != nil {
			fmt.Fprintf(os.Stderr, "nova-hud: sample failed: %v\n", err)
			os.Exit(1)
		}

		model := tui.NewModel(cfg, source, version)
		if source != nil {
			fctx, fcancel := context.WithTimeout(context.Background(), 2*time.Second)
			frame, ferr := source.Frame(fctx)
			fcancel()
			source.Close()
			if ferr == nil {
				updated, _ := model.Update(tui.FrameMsg{Frame: frame})
				model = updated.(tui.Model)
			}
		}

		fmt.Println(model.RenderOnce(width, height, time.Now(), sample))
		os.Exit(0)
	}

	// ---------------------------------------------------------------
	// Fullscreen HUD
	// ---------------------------------------------------------------

	defer func() {
		if r := recover(); r != nil {
			// Attempt to restore terminal from alt-screen before printing error.
			fmt.Print("\x1b[?1049l\x1b[?25h")
			fmt.Fprintf(os.Stderr, "nova-hud: panic: %v\n", r)
			os.Exit(1)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	logger := buildLogger(cfg.Hud.LogFile, *verbose)

	model := tui.NewModel(cfg, source, version)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	stream := metrics.NewStream(provider, cfg.SampleInterval(), logger)
	stream.Start(ctx)

	// Bridge goroutine: convert stream samples into Bubbletea messages.
	go func() {
		for sample := range stream.Samples() {
			p.Send(tui.SampleMsg{Sample: sample})
		}
	}()

	// A termination signal quits the program loop cleanly.
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		stream.Stop()
		fmt.Fprintf(os.Stderr, "nova-hud: TUI error: %v\n", err)
		os.Exit(1)
	}

	stream.Stop()
	if source != nil {
		source.Close()
	}
}

// buildLogger returns the process logger. In fullscreen mode log lines
// would corrupt the alternate screen, so without a log file everything
// is discarded.
func buildLogger(logFile string, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	out := io.Writer(io.Discard)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "nova-hud: open log file: %v\n", err)
		} else {
			out = f
		}
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}

// buildProvider selects the telemetry provider. The system provider
// carries a synthetic fallback for fields the host cannot report.
func buildProvider(cfg *config.Config) metrics.Provider {
	synth := metrics.NewSyntheticProvider(cfg.Metrics.SyntheticSeed)
	if cfg.Metrics.Provider == "synthetic" {
		return synth
	}
	return metrics.NewSystemProvider(cfg.Metrics.DiskPath, synth)
}

// buildSource selects the camera frame source, or nil when the camera
// panel is disabled.
func buildSource(cfg *config.Config) (vision.Source, error) {
	if !cfg.Camera.Enabled {
		return nil, nil
	}
	if cfg.Camera.Source == "still" {
		return vision.NewStillSource(cfg.Camera.StillPath)
	}
	return vision.NewPatternSource(), nil
}

// printSample takes one reading and writes it to stdout.
func printSample(provider metrics.Provider, asJSON bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sample, err := provider.Sample(ctx)
	if err != nil {
		return err
	}

	if asJSON {
		data, err := json.MarshalIndent(sample, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("provider:  %s\n", provider.Name())
	fmt.Printf("cpu:       %.1f%%\n", sample.CPUPercent)
	fmt.Printf("temp:      %.1f°C\n", sample.TempC)
	fmt.Printf("battery:   %.1f%%\n", sample.BatteryPct)
	fmt.Printf("memory:    %.1f%%\n", sample.MemPercent)
	fmt.Printf("disk:      %.1f%%\n", sample.DiskPercent)
	fmt.Printf("upload:    %.2f MB/s\n", sample.UploadMBps)
	fmt.Printf("download:  %.2f MB/s\n", sample.DownloadMBps)
	fmt.Printf("ip:        %s\n", sample.IP)
	fmt.Printf("taken at:  %s\n", sample.TakenAt.Format(time.RFC3339))
	return nil
}
