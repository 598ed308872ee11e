// Package tui composes the fullscreen HUD using Bubbletea's Elm
// architecture. The compositor owns the animation clock and all panel
// state; the metric sampler and the vision source feed it through
// messages, so every piece of state keeps a single writer.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/nova-hud/anim"
	"gitlab.com/tinyland/lab/nova-hud/config"
	"gitlab.com/tinyland/lab/nova-hud/display/widgets"
	"gitlab.com/tinyland/lab/nova-hud/internal/format"
	"gitlab.com/tinyland/lab/nova-hud/metrics"
	"gitlab.com/tinyland/lab/nova-hud/vision"
)

// Panel identifies one focusable panel group in the grid.
type Panel int

const (
	// PanelProfiles is the CPU, temperature, and battery gauge stack.
	PanelProfiles Panel = iota
	// PanelCamera is the live camera feed.
	PanelCamera
	// PanelRings is the center ring field.
	PanelRings
	// PanelStorage is the memory and disk gauge stack.
	PanelStorage
	// PanelNetwork is the address and throughput card.
	PanelNetwork
	// PanelClock is the time and date card.
	PanelClock

	panelCount // sentinel, keep last
)

// zoneIDs maps each panel group to its mouse click zone.
var zoneIDs = map[Panel]string{
	PanelProfiles: "profiles",
	PanelCamera:   "camera",
	PanelRings:    "rings",
	PanelStorage:  "storage",
	PanelNetwork:  "network",
	PanelClock:    "clock",
}

// Model is the root Bubbletea model for the HUD.
type Model struct {
	cfg     *config.Config
	version string

	clock     *anim.Clock
	lastFrame time.Time // previous animate tick, for wall-delta stepping

	cpu       *widgets.Gauge
	temp      *widgets.Gauge
	battery   *widgets.Gauge
	memory    *widgets.Gauge
	disk      *widgets.Gauge
	rings     *widgets.RingPanel
	network   *widgets.NetPanel
	wallClock *widgets.ClockPanel
	camera    *widgets.CameraPanel

	source    vision.Source
	cameraOn  bool
	frameLoop bool // a frame tick is scheduled or in flight

	zones *zone.Manager
	focus Panel

	sampleAt time.Time
	width    int
	height   int
	ready    bool
	showHelp bool
	quitting bool
}

// NewModel assembles the HUD from the loaded configuration. The gauges
// start at the wake-up pose the HUD has always shown until the first
// sample lands. The vision source may be nil when the camera is
// disabled.
func NewModel(cfg *config.Config, source vision.Source, version string) Model {
	cameraOn := cfg.Camera.Enabled && source != nil
	m := Model{
		cfg:       cfg,
		version:   version,
		clock:     anim.NewClock(),
		cpu:       widgets.NewGauge("cpu utilization", "", widgets.StyleSpectrum, 65),
		temp:      widgets.NewGauge("cpu temperature", "°C", widgets.StyleSpectrum, 62),
		battery:   widgets.NewGauge("battery", "", widgets.StyleSpectrum, 72),
		memory:    widgets.NewGauge("memory usage", "", widgets.StyleMagenta, 50),
		disk:      widgets.NewGauge("disk usage", "", widgets.StyleEmerald, 75),
		rings:     widgets.NewRingPanel(cfg.Hud.Title, cfg.Hud.Caption),
		network:   widgets.NewNetPanel(),
		wallClock: widgets.NewClockPanel(),
		camera:    widgets.NewCameraPanel(),
		source:    source,
		cameraOn:  cameraOn,
		frameLoop: cameraOn,
		zones:     zone.New(),
	}
	m.setFocus(PanelProfiles)
	if !cameraOn {
		m.camera.SetPaused(true)
	}
	return m
}

// Init implements tea.Model. It starts the named tick loops.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		scheduleTick(tickAnimate, animateInterval(m.cfg.Hud.FPS)),
		scheduleTick(tickClock, clockInterval),
	}
	if m.cameraOn {
		cmds = append(cmds, scheduleTick(tickFrame, m.cfg.FrameInterval()))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model. It routes messages to the appropriate handler.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick(msg)

	case SampleMsg:
		m.applySample(msg.Sample)
		return m, nil

	case FrameMsg:
		if !m.cameraOn {
			return m, nil
		}
		if msg.Err != nil {
			m.camera.SetError(msg.Err)
		} else {
			m.camera.SetFrame(msg.Frame)
		}
		return m, nil
	}

	return m, nil
}

// handleTick runs one firing of a named loop and reschedules it. Each
// kind reschedules only itself, so the loops stay independent.
func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case tickAnimate:
		if !m.lastFrame.IsZero() {
			m.clock.AdvanceBy(msg.at.Sub(m.lastFrame))
		}
		m.lastFrame = msg.at
		return m, scheduleTick(tickAnimate, animateInterval(m.cfg.Hud.FPS))

	case tickClock:
		m.wallClock.Update(msg.at)
		return m, scheduleTick(tickClock, clockInterval)

	case tickFrame:
		if !m.cameraOn || m.source == nil {
			m.frameLoop = false
			return m, nil
		}
		return m, tea.Batch(
			fetchFrame(m.source),
			scheduleTick(tickFrame, m.cfg.FrameInterval()),
		)
	}
	return m, nil
}

// handleKey processes global keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		m.zones.Close()
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, keys.NextPanel):
		m.setFocus((m.focus + 1) % panelCount)
	case key.Matches(msg, keys.PrevPanel):
		m.setFocus((m.focus - 1 + panelCount) % panelCount)
	case key.Matches(msg, keys.Panel1):
		m.setFocus(PanelProfiles)
	case key.Matches(msg, keys.Panel2):
		m.setFocus(PanelCamera)
	case key.Matches(msg, keys.Panel3):
		m.setFocus(PanelRings)
	case key.Matches(msg, keys.Panel4):
		m.setFocus(PanelStorage)
	case key.Matches(msg, keys.Panel5):
		m.setFocus(PanelNetwork)
	case key.Matches(msg, keys.Panel6):
		m.setFocus(PanelClock)
	case key.Matches(msg, keys.Camera):
		return m.toggleCamera()
	}
	return m, nil
}

// handleMouse focuses the panel group under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for p := Panel(0); p < panelCount; p++ {
		if m.zones.Get(zoneIDs[p]).InBounds(msg) {
			m.setFocus(p)
			break
		}
	}
	return m, nil
}

// toggleCamera pauses or resumes the frame loop. The loop dies at its
// next firing when paused; resuming starts a new one only if the old
// loop already wound down.
func (m Model) toggleCamera() (tea.Model, tea.Cmd) {
	if m.source == nil {
		return m, nil
	}
	m.cameraOn = !m.cameraOn
	m.camera.SetPaused(!m.cameraOn)
	if m.cameraOn && !m.frameLoop {
		m.frameLoop = true
		return m, scheduleTick(tickFrame, m.cfg.FrameInterval())
	}
	return m, nil
}

// setFocus moves the accent border to the given panel group.
func (m *Model) setFocus(p Panel) {
	m.focus = p
	m.cpu.Blur()
	m.temp.Blur()
	m.battery.Blur()
	m.memory.Blur()
	m.disk.Blur()
	m.rings.Blur()
	m.network.Blur()
	m.wallClock.Blur()
	m.camera.Blur()

	switch p {
	case PanelProfiles:
		m.cpu.Focus()
		m.temp.Focus()
		m.battery.Focus()
	case PanelCamera:
		m.camera.Focus()
	case PanelRings:
		m.rings.Focus()
	case PanelStorage:
		m.memory.Focus()
		m.disk.Focus()
	case PanelNetwork:
		m.network.Focus()
	case PanelClock:
		m.wallClock.Focus()
	}
}

// applySample feeds one completed sample into the panels.
func (m *Model) applySample(s metrics.Sample) {
	m.cpu.SetValue(s.CPUPercent)
	m.temp.SetValue(s.TempC)
	m.battery.SetValue(s.BatteryPct)
	m.memory.SetValue(s.MemPercent)
	m.disk.SetValue(s.DiskPercent)
	m.network.Update(s.IP, s.UploadMBps, s.DownloadMBps)
	m.sampleAt = s.TakenAt
}

// View implements tea.Model. It renders the header, the panel grid or
// help overlay, and the footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	bodyHeight := m.height - 6
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	switch {
	case m.showHelp:
		body = m.renderHelp()
	case m.width < stackWidth:
		body = m.renderStacked(m.clock.Phase())
	default:
		body = m.renderGrid(m.clock.Phase(), bodyHeight)
	}

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, header, body, footer))
}

// RenderOnce composes a single frame outside the program loop: the
// sample is applied, the wall clock set, and the phase derived from the
// given instant so back-to-back invocations show a moving field.
func (m Model) RenderOnce(width, height int, now time.Time, sample metrics.Sample) string {
	m.width = width
	m.height = height
	m.ready = true
	m.applySample(sample)
	m.wallClock.Update(now)

	phase := anim.PhaseAt(now)
	bodyHeight := height - 6
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	if width < stackWidth {
		body = m.renderStacked(phase)
	} else {
		body = m.renderGrid(phase, bodyHeight)
	}

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(), body, m.renderFooter()))
}

// renderHeader renders the interface name with the version right-aligned.
func (m Model) renderHeader() string {
	title := styleHeaderTitle.Render(m.cfg.Hud.Header)
	version := styleHeaderVersion.Render(m.version)
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(version)
	if gap < 1 {
		gap = 1
	}
	return styleHeader.Width(m.width).Render(title + strings.Repeat(" ", gap) + version)
}

// renderGrid composes the three-column body: profiles and camera left,
// the ring field center, storage, network, and the clock right.
func (m Model) renderGrid(phase float64, bodyHeight int) string {
	leftW, centerW, rightW := bodyColumns(m.width)

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.zones.Mark(zoneIDs[PanelProfiles], lipgloss.JoinVertical(lipgloss.Left,
			sectionTitle("SYSTEM PROFILES", leftW),
			m.cpu.Render(leftW),
			m.temp.Render(leftW),
			m.battery.Render(leftW),
		)),
		m.zones.Mark(zoneIDs[PanelCamera], lipgloss.JoinVertical(lipgloss.Left,
			sectionTitle("LIVE CAMERA FEED", leftW),
			m.camera.Render(leftW, cameraHeight(bodyHeight)),
		)),
	)

	center := m.zones.Mark(zoneIDs[PanelRings],
		m.rings.Render(phase, centerW, bodyHeight))

	right := lipgloss.JoinVertical(lipgloss.Left,
		m.zones.Mark(zoneIDs[PanelStorage], lipgloss.JoinVertical(lipgloss.Left,
			sectionTitle("STORAGE STATS", rightW),
			m.memory.Render(rightW),
			m.disk.Render(rightW),
		)),
		m.zones.Mark(zoneIDs[PanelNetwork], lipgloss.JoinVertical(lipgloss.Left,
			sectionTitle("NETWORK STATISTICS", rightW),
			m.network.Render(rightW),
		)),
		m.zones.Mark(zoneIDs[PanelClock], m.wallClock.Render(rightW)),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, center, right)
}

// renderStacked lays the panels out in one column for narrow terminals.
func (m Model) renderStacked(phase float64) string {
	w := m.width
	return lipgloss.JoinVertical(lipgloss.Left,
		m.zones.Mark(zoneIDs[PanelRings], m.rings.Render(phase, w, stackRingRows)),
		m.zones.Mark(zoneIDs[PanelProfiles], lipgloss.JoinVertical(lipgloss.Left,
			sectionTitle("SYSTEM PROFILES", w),
			m.cpu.Render(w),
			m.temp.Render(w),
			m.battery.Render(w),
		)),
		m.zones.Mark(zoneIDs[PanelCamera], lipgloss.JoinVertical(lipgloss.Left,
			sectionTitle("LIVE CAMERA FEED", w),
			m.camera.Render(w, minCameraRows+2),
		)),
		m.zones.Mark(zoneIDs[PanelStorage], lipgloss.JoinVertical(lipgloss.Left,
			sectionTitle("STORAGE STATS", w),
			m.memory.Render(w),
			m.disk.Render(w),
		)),
		m.zones.Mark(zoneIDs[PanelNetwork], lipgloss.JoinVertical(lipgloss.Left,
			sectionTitle("NETWORK STATISTICS", w),
			m.network.Render(w),
		)),
		m.zones.Mark(zoneIDs[PanelClock], m.wallClock.Render(w)),
	)
}

// renderFooter renders the key hints, the camera state, and the age of
// the last sample.
func (m Model) renderFooter() string {
	hints := make([]string, 0, 4)
	for _, b := range keys.ShortHelp() {
		hints = append(hints, fmt.Sprintf("%s: %s", b.Help().Key, b.Help().Desc))
	}
	help := strings.Join(hints, " | ")

	status := fmt.Sprintf("  camera: %s | sample: %s",
		m.camera.Status(), format.Age(m.sampleAt))
	return styleFooter.Width(m.width).Render(help + status)
}

// renderHelp renders the expanded keybinding overlay.
func (m Model) renderHelp() string {
	lines := []string{
		styleHeaderTitle.Render("Keybindings"),
		"",
	}
	for _, group := range keys.FullHelp() {
		for _, b := range group {
			lines = append(lines, fmt.Sprintf("  %-11s %s", b.Help().Key, b.Help().Desc))
		}
		lines = append(lines, "")
	}
	return styleHelp.Render(strings.Join(lines, "\n"))
}

// Focused returns the panel group holding the accent border.
func (m Model) Focused() Panel {
	return m.focus
}

// CameraOn reports whether the frame loop is running.
func (m Model) CameraOn() bool {
	return m.cameraOn
}

// Ready returns whether the initial window size has been received.
func (m Model) Ready() bool {
	return m.ready
}

// Width returns the current terminal width.
func (m Model) Width() int {
	return m.width
}

// Height returns the current terminal height.
func (m Model) Height() int {
	return m.height
}
