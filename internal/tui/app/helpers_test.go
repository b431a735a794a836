package app

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/relax/internal/api"
	"github.com/alexisbeaulieu97/relax/internal/breathing"
	"github.com/alexisbeaulieu97/relax/internal/relief"
	"github.com/alexisbeaulieu97/relax/internal/theme"
)

type stubQuotes struct {
	quote api.Quote
	err   error
}

func (s *stubQuotes) FetchQuote(context.Context) (api.Quote, error) {
	return s.quote, s.err
}

type stubMedia struct {
	mu      sync.Mutex
	calls   []string
	gif     api.Media
	gifErr  error
	meme    api.Media
	memeErr error
}

func (s *stubMedia) FetchGif(context.Context) (api.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "gif")
	return s.gif, s.gifErr
}

func (s *stubMedia) FetchMeme(context.Context) (api.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "meme")
	return s.meme, s.memeErr
}

// stepClock fires timers one at a time on demand.
type stepClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*stepTimer
}

type stepTimer struct {
	clock   *stepClock
	at      time.Time
	f       func()
	stopped bool
}

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) AfterFunc(d time.Duration, f func()) breathing.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &stepTimer{clock: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *stepTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Fire runs the earliest live timer and reports whether one ran.
func (c *stepClock) Fire() bool {
	c.mu.Lock()
	var next *stepTimer
	for _, t := range c.timers {
		if !t.stopped && (next == nil || t.at.Before(next.at)) {
			next = t
		}
	}
	if next == nil {
		c.mu.Unlock()
		return false
	}
	next.stopped = true
	c.now = next.at
	c.mu.Unlock()

	next.f()
	return true
}

type fixture struct {
	quotes     *stubQuotes
	media      *stubMedia
	clock      *stepClock
	store      *theme.MemoryStore
	draw       float64
	dispatches int
	override   bool
	deps       Deps
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		quotes: &stubQuotes{quote: api.Quote{Text: "Breathe.", Author: "Ada"}},
		media: &stubMedia{
			gif:  api.Media{URL: "https://g.co/calm.gif", Source: api.SourceGiphy},
			meme: api.Media{URL: "https://r.co/cat.png", Title: "Cozy cat", Source: "reddit"},
		},
		clock: newStepClock(),
		store: &theme.MemoryStore{},
		draw:  0.1,
	}
	f.deps = Deps{
		Quotes: f.quotes,
		Dispatcher: relief.NewDispatcher(relief.Options{
			Source: f.media,
			Rand: func() float64 {
				f.dispatches++
				return f.draw
			},
		}),
		Theme: theme.NewController(theme.Options{
			Store:    f.store,
			Override: func() bool { return f.override },
		}),
		NewSession: func() *breathing.Session {
			return breathing.NewSession(breathing.Options{Clock: f.clock})
		},
		CompletionOnStop: true,
	}
	return f
}

func (f *fixture) model(t *testing.T) Model {
	t.Helper()
	m := NewModel(f.deps)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = send(t, m, keyMsg(k))
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// drain forwards every queued breathing event into the model.
func drain(t *testing.T, m Model) Model {
	t.Helper()
	for {
		select {
		case event := <-m.feed.events:
			m, _ = send(t, m, breathingEventMsg{event: event})
		default:
			return m
		}
	}
}
