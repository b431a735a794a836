package breathing

import (
	"fmt"
	"time"
)

// Phase is one stage of the breathing exercise.
type Phase int

const (
	Idle Phase = iota
	Inhale
	Hold
	Exhale
	Rest
	Completed
)

func (p Phase) String() string {
	switch p {
	case Inhale:
		return "inhale"
	case Hold:
		return "hold"
	case Exhale:
		return "exhale"
	case Rest:
		return "rest"
	case Completed:
		return "completed"
	default:
		return "idle"
	}
}

// Running reports whether the phase has a pending timer.
func (p Phase) Running() bool {
	return p >= Inhale && p <= Rest
}

// Instruction is the text shown to the user during the phase.
func (p Phase) Instruction() string {
	switch p {
	case Inhale:
		return "Breathe In"
	case Hold:
		return "Hold"
	case Exhale:
		return "Breathe Out"
	case Rest:
		return "Rest"
	default:
		return ""
	}
}

// Indicator is the visual class toggled on the breathing circle.
func (p Phase) Indicator() string {
	switch p {
	case Inhale:
		return "breathe-in"
	case Hold:
		return "hold"
	case Exhale:
		return "breathe-out"
	default:
		return ""
	}
}

// Durations holds how long each timed phase lasts.
type Durations struct {
	Inhale time.Duration
	Hold   time.Duration
	Exhale time.Duration
	Rest   time.Duration
}

// DefaultDurations is the 4-4-4 pattern with a one second rest.
func DefaultDurations() Durations {
	return Durations{
		Inhale: 4 * time.Second,
		Hold:   4 * time.Second,
		Exhale: 4 * time.Second,
		Rest:   time.Second,
	}
}

// For returns the duration of p, zero for untimed phases.
func (d Durations) For(p Phase) time.Duration {
	switch p {
	case Inhale:
		return d.Inhale
	case Hold:
		return d.Hold
	case Exhale:
		return d.Exhale
	case Rest:
		return d.Rest
	default:
		return 0
	}
}

// Cycle returns the length of one full Inhale-Hold-Exhale-Rest cycle.
func (d Durations) Cycle() time.Duration {
	return d.Inhale + d.Hold + d.Exhale + d.Rest
}

// CycleLabel formats the cycle counter shown next to the circle.
func CycleLabel(cycle, maxCycles int) string {
	return fmt.Sprintf("Cycle %d of %d", cycle, maxCycles)
}
