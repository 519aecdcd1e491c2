// Package cmdio centralizes the IO surface of the library: where diagnostics
// go, where usage text goes, and whether ANSI styling is worth emitting.
// The parser performs a single diagnostic write on failure; binding it to a
// Manager keeps that write redirectable instead of hardcoding os.Stderr.
package cmdio

import (
	stdio "io"
	"os"
	"strconv"
	"strings"
)

// Manager holds configured reader/writers and color preferences.
type Manager struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer

	forceColor bool
	noColor    bool
}

// New returns a manager bound to process stdio.
func New() *Manager {
	return &Manager{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// WithIn sets the input reader and returns the manager for chaining.
func (m *Manager) WithIn(r stdio.Reader) *Manager { m.in = r; return m }

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *Manager) WithOut(w stdio.Writer) *Manager { m.out = w; return m }

// WithErr sets the diagnostic writer and returns the manager for chaining.
func (m *Manager) WithErr(w stdio.Writer) *Manager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *Manager) ForceColor() *Manager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *Manager) NoColor() *Manager { m.noColor = true; m.forceColor = false; return m }

// ColorAuto restores environment-based color detection.
func (m *Manager) ColorAuto() *Manager { m.noColor = false; m.forceColor = false; return m }

// In returns the configured input reader.
func (m *Manager) In() stdio.Reader { return m.in }

// Out returns the configured standard output writer.
func (m *Manager) Out() stdio.Writer { return m.out }

// Err returns the configured diagnostic writer.
func (m *Manager) Err() stdio.Writer { return m.err }

// SupportsColor determines ANSI capability from explicit settings and the
// conventional NO_COLOR / FORCE_COLOR / TERM environment variables.
func (m *Manager) SupportsColor() bool {
	if m.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

// Width returns the terminal width from the COLUMNS environment variable,
// falling back to 80.
func (m *Manager) Width() int {
	if v := strings.TrimSpace(os.Getenv("COLUMNS")); v != "" {
		if w, err := strconv.Atoi(v); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// Colorize wraps s with the given ANSI SGR code (e.g. "31" for red) and a
// trailing reset. If color is not supported, it returns s unchanged.
func (m *Manager) Colorize(s, code string) string {
	if !m.SupportsColor() {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// Bold returns s in bold when color is supported; otherwise s unchanged.
func (m *Manager) Bold(s string) string { return m.Colorize(s, "1") }

// Faint returns s in faint intensity when supported; otherwise s unchanged.
func (m *Manager) Faint(s string) string { return m.Colorize(s, "2") }

// Underline returns s underlined when supported; otherwise s unchanged.
func (m *Manager) Underline(s string) string { return m.Colorize(s, "4") }
