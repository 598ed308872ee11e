// Package manpage generates a roff-formatted man page for nova-hud.
//
// The man page is generated at runtime from the actual keymap and
// compiled-in version information, keeping documentation in sync with
// the code automatically.
//
// Usage:
//
//	nova-hud -man | man -l -
//	nova-hud -man > ~/.local/share/man/man1/nova-hud.1
package manpage

import (
	"fmt"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/nova-hud/display/tui"
)

// Generate produces a complete roff-formatted man(1) page for nova-hud.
// The version, commit, and date parameters are passed from the build-time
// linker variables so the man page always reflects the current build.
func Generate(version, commit, date string) string {
	var b strings.Builder

	writeHeader(&b, version)
	writeName(&b)
	writeSynopsis(&b)
	writeDescription(&b)
	writeOptions(&b)
	writeKeybindings(&b)
	writeConfiguration(&b)
	writeFiles(&b)
	writeExamples(&b)
	writeEnvironment(&b)
	writeExitStatus(&b)
	writeSeeAlso(&b)
	writeAuthors(&b)
	writeBugs(&b)
	writeFooter(&b, version, commit, date)

	return b.String()
}

// roffEscape escapes special roff characters in a string.
func roffEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `-`, `\-`)
	s = strings.ReplaceAll(s, `.`, `\&.`)
	return s
}

func writeHeader(b *strings.Builder, version string) {
	month := time.Now().Format("January 2006")
	fmt.Fprintf(b, ".TH NOVA-HUD 1 \"%s\" \"nova-hud %s\" \"User Commands\"\n", month, version)
}

func writeName(b *strings.Builder) {
	b.WriteString(`.SH NAME
nova\-hud \- animated terminal telemetry heads\-up display
`)
}

func writeSynopsis(b *strings.Builder) {
	b.WriteString(`.SH SYNOPSIS
.B nova\-hud
[\fIOPTIONS\fR]
`)
}

func writeDescription(b *strings.Builder) {
	b.WriteString(`.SH DESCRIPTION
.B nova\-hud
renders a fullscreen heads\-up display in the terminal. It samples host
telemetry (CPU, temperature, battery, memory, disk, network throughput,
local IP) once a second, animates a field of rotating rings and gradient
gauge cards at up to 60 frames per second, and shows a camera\-style feed
with annotated detection regions. All pixels are produced by a software
rasterizer and presented as half\-block cells with 24\-bit color.
.PP
The tool operates in several modes:
.IP \(bu 2
.B Fullscreen mode
(default, no flags): Runs the interactive Bubbletea HUD in the alternate
screen. Panels are focusable by keyboard or mouse click.
.IP \(bu 2
.B One\-shot mode
(\fB\-\-once\fR): Composes a single HUD frame at the detected or given
terminal size, prints it to stdout, and exits. Usable in scripts and
motd\-style greetings.
.IP \(bu 2
.B Sample mode
(\fB\-\-sample\fR): Takes one telemetry reading and prints it as text or
JSON, then exits.
.IP \(bu 2
.B Diagnostic mode
(\fB\-\-diagnose\fR): Probes the terminal, configuration, telemetry
provider, and camera source, and prints a report.
`)
}

func writeOptions(b *strings.Builder) {
	b.WriteString(`.SH OPTIONS
`)

	flags := []struct {
		flag string
		arg  string
		desc string
	}{
		{"config", "PATH", "Path to the YAML configuration file. Default: ~/.config/nova\\-hud/config.yaml."},
		{"once", "", "Render one composed HUD frame to stdout and exit. The animation phase is derived from the wall clock, so successive invocations show the rings in motion."},
		{"sample", "", "Print one telemetry sample and exit."},
		{"json", "", "Output the sample as JSON. Must be used with \\fB\\-\\-sample\\fR."},
		{"diagnose", "", "Run startup diagnostics and exit. Reports terminal size, uptime, configuration validity, a telemetry probe, and a camera source probe."},
		{"synthetic", "", "Use the synthetic telemetry provider instead of reading host sensors. The synthetic signals are deterministic for a given seed."},
		{"seed", "N", "Seed for the synthetic provider. 0 (default) keeps the config value."},
		{"fps", "N", "Animation refresh rate override, 1\\-120. 0 (default) keeps the config value."},
		{"no\\-camera", "", "Disable the camera panel. The panel stays visible but paused."},
		{"still", "PATH", "Serve the image file at PATH as the camera feed. Implies enabling the camera with the still source."},
		{"log", "PATH", "Write logs to this file. Without it, fullscreen mode discards logs to keep the alternate screen clean."},
		{"width", "N", "Terminal width override for \\fB\\-\\-once\\fR. 0 (default) means auto\\-detect."},
		{"height", "N", "Terminal height override for \\fB\\-\\-once\\fR. 0 (default) means auto\\-detect."},
		{"verbose", "", "Enable verbose (debug\\-level) logging."},
		{"version", "", "Print the version, commit hash, and build date, then exit."},
		{"man", "", "Print this man page to stdout in roff format. Pipe to man(1) for formatted viewing: \\fBnova\\-hud \\-\\-man | man \\-l \\-\\fR."},
	}

	for _, f := range flags {
		b.WriteString(".TP\n")
		if f.arg != "" {
			fmt.Fprintf(b, ".BR \\-\\-%s \" \\fI%s\\fR\"\n", f.flag, f.arg)
		} else {
			fmt.Fprintf(b, ".B \\-\\-%s\n", f.flag)
		}
		b.WriteString(f.desc + "\n")
	}
}

func writeKeybindings(b *strings.Builder) {
	b.WriteString(`.SH KEYBINDINGS
Active in fullscreen mode. The keymap below is the single source of truth
for all nova\-hud input handling; panels can also be focused by clicking
them.
`)

	for _, binding := range tui.KeyHelp() {
		keysStr := strings.Join(binding.Keys(), ", ")
		fmt.Fprintf(b, ".TP\n.B %s\n%s\n", roffEscape(keysStr), binding.Help().Desc)
	}
}

func writeConfiguration(b *strings.Builder) {
	b.WriteString(`.SH CONFIGURATION
Configuration is read from a YAML file at
.B ~/.config/nova\-hud/config.yaml
by default, or from the path specified with \fB\-\-config\fR. A missing
file is not an error; built\-in defaults apply.
.SS hud
.TP
.B title
Wordmark drawn over the ring field. Default: "NOVA".
.TP
.B caption
Status text under the wordmark. Default: "ONLINE".
.TP
.B header
Interface name shown in the top bar. Default: "NOVA VISION INTERFACE".
.TP
.B fps
Animation refresh rate cap, 1\-120. Default: 60.
.TP
.B log_file
Path for log output. Empty (default) discards logs.
.SS metrics
.TP
.B provider
Telemetry source, "system" or "synthetic". Default: "system".
.TP
.B sample_interval
Duration between telemetry samples (e.g., "1s"). Default: "1s".
.TP
.B disk_path
Filesystem whose usage the disk gauge tracks. Default: "/".
.TP
.B synthetic_seed
Seed for the synthetic signal generator. Default: 7.
.SS camera
.TP
.B enabled
Whether the camera panel is live. Default: true.
.TP
.B source
Frame source, "pattern" or "still". Default: "pattern".
.TP
.B still_path
Image served by the still source. Required when source is "still".
.TP
.B frame_interval
Duration between frame fetches (e.g., "100ms"). Default: "100ms".
`)
}

func writeFiles(b *strings.Builder) {
	b.WriteString(`.SH FILES
.TP
.I ~/.config/nova\-hud/config.yaml
Primary configuration file (YAML).
`)
}

func writeExamples(b *strings.Builder) {
	b.WriteString(`.SH EXAMPLES
Launch the fullscreen HUD:
.PP
.nf
nova\-hud
.fi
.PP
Render one frame at a fixed size, for scripts:
.PP
.nf
nova\-hud \-\-once \-\-width 120 \-\-height 40
.fi
.PP
Print one telemetry sample as JSON:
.PP
.nf
nova\-hud \-\-sample \-\-json
.fi
.PP
Demo with deterministic synthetic signals:
.PP
.nf
nova\-hud \-\-synthetic \-\-seed 42
.fi
.PP
Show a snapshot as the camera feed:
.PP
.nf
nova\-hud \-\-still ~/Pictures/door.png
.fi
.PP
View this man page:
.PP
.nf
nova\-hud \-\-man | man \-l \-
.fi
.PP
Install the man page permanently:
.PP
.nf
nova\-hud \-\-man > ~/.local/share/man/man1/nova\-hud.1
.fi
`)
}

func writeEnvironment(b *strings.Builder) {
	b.WriteString(`.SH ENVIRONMENT
.TP
.B COLUMNS
Fallback terminal width when stdout is not a terminal (used by
\fB\-\-once\fR and \fB\-\-diagnose\fR).
.TP
.B LINES
Fallback terminal height when stdout is not a terminal.
`)
}

func writeExitStatus(b *strings.Builder) {
	b.WriteString(".SH EXIT STATUS\n")
	b.WriteString(".TP\n.B 0\n")
	b.WriteString("Success.\n")
	b.WriteString(".TP\n.B 1\n")
	b.WriteString("Failure: invalid configuration, a failed telemetry probe, or a TUI error.\n")
}

func writeSeeAlso(b *strings.Builder) {
	b.WriteString(`.SH SEE ALSO
.BR top (1),
.BR htop (1),
.BR man (1)
`)
}

func writeAuthors(b *strings.Builder) {
	b.WriteString(`.SH AUTHORS
Tinyland Lab <https://gitlab.com/tinyland/lab>
`)
}

func writeBugs(b *strings.Builder) {
	b.WriteString(`.SH BUGS
Report bugs at <https://gitlab.com/tinyland/lab/nova\-hud/\-/issues>.
`)
}

func writeFooter(b *strings.Builder, version, commit, date string) {
	fmt.Fprintf(b, ".SH VERSION\n%s (%s) built %s\n", version, commit, date)
}
