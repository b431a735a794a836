// Package breathing runs the guided breathing exercise: a fixed number of
// Inhale, Hold, Exhale, Rest cycles driven by one chained timer.
package breathing

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/relax/internal/logger"
)

// DefaultMaxCycles is the number of cycles in a session.
const DefaultMaxCycles = 3

var (
	// ErrNotIdle is returned by Start when a session is running or completed.
	ErrNotIdle = errors.New("breathing session is not idle")
	// ErrNotRunning is returned by Stop outside a running phase.
	ErrNotRunning = errors.New("breathing session is not running")
	// ErrRunning is returned by Reset while a session is running.
	ErrRunning = errors.New("breathing session is running")
)

// EventKind classifies session notifications.
type EventKind int

const (
	// EventPhase announces entry into a timed phase.
	EventPhase EventKind = iota
	// EventCompleted announces natural completion after the last cycle.
	EventCompleted
	// EventStopped announces a manual stop.
	EventStopped
)

func (k EventKind) String() string {
	switch k {
	case EventCompleted:
		return "completed"
	case EventStopped:
		return "stopped"
	default:
		return "phase"
	}
}

// Event is delivered to observers on every transition.
type Event struct {
	SessionID string
	Kind      EventKind
	Phase     Phase
	Cycle     int
	MaxCycles int
	// Duration is how long the entered phase lasts; zero when not timed.
	Duration time.Duration
	At       time.Time
}

// Label is the cycle counter text, e.g. "Cycle 2 of 3".
func (e Event) Label() string {
	return CycleLabel(e.Cycle, e.MaxCycles)
}

// Observer receives session events. Observers run while the session lock is
// held and must neither block nor call back into the Session.
type Observer func(Event)

// Snapshot is a point-in-time copy of the session state.
type Snapshot struct {
	ID         string
	Phase      Phase
	Cycle      int
	MaxCycles  int
	PhaseStart time.Time
}

// Options configures a Session.
type Options struct {
	MaxCycles int
	Durations Durations
	Clock     Clock
	Logger    *logger.Logger
}

// Session owns the breathing state and its single pending timer.
type Session struct {
	mu sync.Mutex

	id         string
	phase      Phase
	cycle      int
	maxCycles  int
	durations  Durations
	phaseStart time.Time

	clock Clock
	timer Timer
	// generation invalidates callbacks scheduled before the last Stop or completion.
	generation uint64

	observers []Observer
	log       *logger.Logger
}

// NewSession returns an idle session.
func NewSession(opts Options) *Session {
	maxCycles := opts.MaxCycles
	if maxCycles <= 0 {
		maxCycles = DefaultMaxCycles
	}
	durations := opts.Durations
	if durations == (Durations{}) {
		durations = DefaultDurations()
	}
	clock := opts.Clock
	if clock == nil {
		clock = RealClock{}
	}

	return &Session{
		phase:     Idle,
		maxCycles: maxCycles,
		durations: durations,
		clock:     clock,
		log:       opts.Logger.Component("breathing"),
	}
}

// Subscribe registers an observer for all future events.
func (s *Session) Subscribe(obs Observer) {
	if obs == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, obs)
}

// Start begins cycle 1 with an Inhale phase.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != Idle {
		return ErrNotIdle
	}

	s.id = uuid.NewString()
	s.cycle = 1
	s.log.Session(s.id).With("max_cycles", s.maxCycles).Info("breathing session started")
	s.enterLocked(Inhale)
	return nil
}

// Stop cancels the pending timer and returns the session to Idle. No event
// other than the EventStopped notification is delivered after Stop returns.
func (s *Session) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.phase.Running() {
		return ErrNotRunning
	}

	s.cancelTimerLocked()
	event := Event{
		SessionID: s.id,
		Kind:      EventStopped,
		Phase:     Idle,
		Cycle:     s.cycle,
		MaxCycles: s.maxCycles,
		At:        s.clock.Now(),
	}
	s.log.Session(s.id).WithFields(map[string]any{"cycle": s.cycle, "phase": s.phase.String()}).Info("breathing session stopped")

	s.phase = Idle
	s.cycle = 0
	s.phaseStart = time.Time{}
	s.notifyLocked(event)
	return nil
}

// Reset moves a completed session back to Idle so it can be started again.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase.Running() {
		return ErrRunning
	}
	s.phase = Idle
	s.cycle = 0
	s.phaseStart = time.Time{}
	return nil
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:         s.id,
		Phase:      s.phase,
		Cycle:      s.cycle,
		MaxCycles:  s.maxCycles,
		PhaseStart: s.phaseStart,
	}
}

// Durations returns the configured phase durations.
func (s *Session) Durations() Durations {
	return s.durations
}

// advance is the timer callback. A callback from an older generation is a no-op.
func (s *Session) advance(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation || !s.phase.Running() {
		return
	}
	s.timer = nil

	switch s.phase {
	case Inhale:
		s.enterLocked(Hold)
	case Hold:
		s.enterLocked(Exhale)
	case Exhale:
		s.enterLocked(Rest)
	case Rest:
		if s.cycle >= s.maxCycles {
			s.completeLocked()
			return
		}
		s.cycle++
		s.enterLocked(Inhale)
	}
}

func (s *Session) enterLocked(phase Phase) {
	s.phase = phase
	s.phaseStart = s.clock.Now()

	duration := s.durations.For(phase)
	generation := s.generation
	s.timer = s.clock.AfterFunc(duration, func() {
		s.advance(generation)
	})

	s.log.Session(s.id).WithFields(map[string]any{"cycle": s.cycle, "phase": phase.String()}).Debug("phase entered")
	s.notifyLocked(Event{
		SessionID: s.id,
		Kind:      EventPhase,
		Phase:     phase,
		Cycle:     s.cycle,
		MaxCycles: s.maxCycles,
		Duration:  duration,
		At:        s.phaseStart,
	})
}

func (s *Session) completeLocked() {
	s.cancelTimerLocked()
	s.phase = Completed
	s.phaseStart = s.clock.Now()

	s.log.Session(s.id).Info("breathing session completed")
	s.notifyLocked(Event{
		SessionID: s.id,
		Kind:      EventCompleted,
		Phase:     Completed,
		Cycle:     s.cycle,
		MaxCycles: s.maxCycles,
		At:        s.phaseStart,
	})
}

func (s *Session) cancelTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
}

func (s *Session) notifyLocked(event Event) {
	for _, obs := range s.observers {
		obs(event)
	}
}
