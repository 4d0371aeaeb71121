package app

import (
	"os"

	"golang.org/x/term"
)

// ColorMode is the presentation policy for terminal colorization,
// resolved once at startup from the flag and ambient environment and
// passed explicitly into rendering. Rendering code never probes the
// environment itself.
type ColorMode int

const (
	// ColorAuto enables color only when the environment allows it.
	ColorAuto ColorMode = iota
	// ColorOn forces color regardless of environment.
	ColorOn
	// ColorOff disables color regardless of environment.
	ColorOff
)

// Enabled reports whether colorization should be applied. In auto mode
// color is on unless the no-color convention variable is set or stdout
// is not a terminal, so escape codes never reach pipes or files by
// default.
func (m ColorMode) Enabled() bool {
	switch m {
	case ColorOn:
		return true
	case ColorOff:
		return false
	default:
		return autoColor()
	}
}

// autoColor implements the environment-sensitive default: NO_COLOR
// (any non-empty value) suppresses color, as does a non-terminal
// stdout.
func autoColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
