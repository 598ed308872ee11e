package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"gitlab.com/tinyland/lab/nova-hud/config"
	"gitlab.com/tinyland/lab/nova-hud/internal/format"
	"gitlab.com/tinyland/lab/nova-hud/internal/hostinfo"
)

// runDiagnostics probes everything the HUD needs at startup and prints a
// report, so a blank or frozen display can be traced without launching
// the fullscreen interface.
func runDiagnostics(cfg *config.Config, configPath string) {
	fmt.Println("🔍 Nova HUD Diagnostics")
	fmt.Println("============================================================")
	fmt.Println()

	// Host environment
	fmt.Println("🖥  Host")
	fmt.Println("------------------------------------------------------------")
	width, height := hostinfo.TerminalSize()
	fmt.Printf("   Terminal: %dx%d\n", width, height)
	if width < 80 {
		fmt.Println("   Layout:   ⚠️  Narrow, panels will stack vertically")
	} else {
		fmt.Println("   Layout:   ✅ Three-column grid")
	}
	if uptime := hostinfo.Uptime(); uptime > 0 {
		fmt.Printf("   Uptime:   %s\n", format.FormatDuration(uptime))
	} else {
		fmt.Println("   Uptime:   ⚠️  Unavailable on this platform")
	}
	fmt.Println()

	// Configuration
	fmt.Println("📁 Configuration")
	fmt.Println("------------------------------------------------------------")
	if configPath == "" {
		fmt.Println("   File:     built-in defaults")
	} else {
		fmt.Printf("   File:     %s\n", configPath)
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			fmt.Println("             (not found, using built-in defaults)")
		}
	}
	fmt.Printf("   Provider: %s\n", cfg.Metrics.Provider)
	fmt.Printf("   Sampling: every %s\n", cfg.SampleInterval())
	fmt.Printf("   FPS:      %d\n", cfg.Hud.FPS)
	if cfg.Camera.Enabled {
		fmt.Printf("   Camera:   %s source, frame every %s\n", cfg.Camera.Source, cfg.FrameInterval())
	} else {
		fmt.Println("   Camera:   disabled")
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("   Check:    ❌ %v\n", err)
		fmt.Println()
		fmt.Println("💡 Solution: fix the field above, or delete the config file to restore defaults")
		return
	}
	fmt.Println("   Check:    ✅ Valid")
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Telemetry provider
	fmt.Println("📊 Telemetry")
	fmt.Println("------------------------------------------------------------")
	provider := buildProvider(cfg)

	fmt.Printf("   Probing %s provider... ", provider.Name())
	start := time.Now()
	sample, err := provider.Sample(ctx)
	if err != nil {
		fmt.Println("❌ FAILED")
		fmt.Printf("   Details: %v\n", err)
		fmt.Println()
		fmt.Println("💡 Solution: run with -synthetic to bypass host telemetry")
		return
	}
	fmt.Printf("✅ ok (%s)\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("   CPU:      %5.1f%%\n", sample.CPUPercent)
	fmt.Printf("   Temp:     %5.1f°C\n", sample.TempC)
	fmt.Printf("   Battery:  %5.1f%%\n", sample.BatteryPct)
	fmt.Printf("   Memory:   %5.1f%%\n", sample.MemPercent)
	fmt.Printf("   Disk:     %5.1f%% of %s\n", sample.DiskPercent, cfg.Metrics.DiskPath)
	fmt.Printf("   Network:  up %.2f MB/s, down %.2f MB/s\n", sample.UploadMBps, sample.DownloadMBps)
	fmt.Printf("   IP:       %s\n", sample.IP)
	fmt.Println()

	// Camera source
	fmt.Println("📷 Camera")
	fmt.Println("------------------------------------------------------------")
	if !cfg.Camera.Enabled {
		fmt.Println("   Disabled in config, the HUD shows a paused panel")
	} else {
		source, err := buildSource(cfg)
		if err != nil {
			fmt.Printf("   ❌ Source init failed: %v\n", err)
			fmt.Println()
			fmt.Println("💡 Solution: check camera.still_path, or set camera.source to \"pattern\"")
			return
		}
		fmt.Printf("   Probing %s source... ", source.Name())
		frame, err := source.Frame(ctx)
		source.Close()
		if err != nil {
			fmt.Println("❌ FAILED")
			fmt.Printf("   Details: %v\n", err)
			fmt.Println()
			fmt.Println("💡 Solution: check camera.still_path, or set camera.source to \"pattern\"")
			return
		}
		bounds := frame.Image.Bounds()
		fmt.Println("✅ ok")
		fmt.Printf("   Frame:    %dx%d px, %d region(s)\n", bounds.Dx(), bounds.Dy(), len(frame.Regions))
		for _, region := range frame.Regions {
			fmt.Printf("   Region:   %q at %v\n", region.Label, region.Rect)
		}
	}
	fmt.Println()

	fmt.Println("✨ All checks passed! nova-hud should render correctly.")
}
