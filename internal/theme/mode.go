// Package theme owns the light/dark preference: the only state relax keeps
// between runs.
package theme

import "fmt"

// Mode is a color scheme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode validates a persisted or user-supplied mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Light, Dark:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
	}
}

// Opposite is the mode a toggle switches to.
func (m Mode) Opposite() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Icon is the toggle indicator: a sun offers the way out of dark mode, a moon
// the way into it.
func (m Mode) Icon() string {
	if m == Dark {
		return "☀"
	}
	return "☾"
}

func (m Mode) String() string {
	return string(m)
}
