package theme

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Detector reports the operating environment's preferred mode; ok is false
// when it expresses none.
type Detector func() (mode Mode, ok bool)

// OverrideDetector reports whether a third party has taken over coloring.
type OverrideDetector func() bool

// SystemDetector asks the terminal behind f for its background color. A
// non-terminal expresses no preference.
func SystemDetector(f *os.File) Detector {
	return func() (Mode, bool) {
		if f == nil || !term.IsTerminal(int(f.Fd())) {
			return "", false
		}
		if termenv.NewOutput(f).HasDarkBackground() {
			return Dark, true
		}
		return Light, true
	}
}

// NoColorOverride follows the NO_COLOR convention: any non-empty value
// disables color for every program in the terminal.
func NoColorOverride(lookup func(string) (string, bool)) OverrideDetector {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return func() bool {
		value, ok := lookup("NO_COLOR")
		return ok && value != ""
	}
}
