package relief

import "time"

const (
	// TriggerWindow keeps the relief trigger disabled after use.
	TriggerWindow = 2 * time.Second
	// RefreshWindow keeps the quote refresh control disabled after use.
	RefreshWindow = time.Second
)

// Gate disables a control for a window after it fires. It is a debounce, not
// a lock: the caller re-enables it by releasing the token it was given once
// the window elapses.
type Gate struct {
	window   time.Duration
	disabled bool
	token    uint64
}

// NewGate returns an enabled gate.
func NewGate(window time.Duration) Gate {
	return Gate{window: window}
}

// Window is the disable period.
func (g *Gate) Window() time.Duration {
	return g.window
}

// Acquire disables the gate and returns the token that re-enables it. ok is
// false while the gate is already disabled.
func (g *Gate) Acquire() (token uint64, ok bool) {
	if g.disabled {
		return 0, false
	}
	g.disabled = true
	g.token++
	return g.token, true
}

// Release re-enables the gate if token is the latest one issued.
func (g *Gate) Release(token uint64) bool {
	if !g.disabled || token != g.token {
		return false
	}
	g.disabled = false
	return true
}

// Disabled reports whether the control is currently disabled.
func (g *Gate) Disabled() bool {
	return g.disabled
}
