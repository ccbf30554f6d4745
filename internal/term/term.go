// Package term owns ANSI color state and terminal detection for console
// output. [Configure] resolves the color mode once during startup; callers
// wrap text with [Paint], which is a no-op while colors are disabled.
package term

import (
	"os"
	"strings"

	"github.com/clipfit/clipfit/internal/config"
)

// ANSI escape sequences for the log levels.
const (
	Red    = "\033[1;91m"
	Green  = "\033[1;92m"
	Yellow = "\033[1;93m"
	Blue   = "\033[1;94m"
	Cyan   = "\033[1;96m"

	reset = "\033[0m"
)

var enabled bool

// Configure resolves whether ANSI colors are active, from the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func Configure(mode config.ColorMode) {
	switch mode {
	case config.ColorAlways:
		enabled = true
	case config.ColorNever:
		enabled = false
	default: // ColorAuto
		enabled = IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return enabled }

// Paint wraps s in the given color sequence, or returns it unchanged when
// colors are disabled.
func Paint(color, s string) string {
	if !enabled {
		return s
	}
	return color + s + reset
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
