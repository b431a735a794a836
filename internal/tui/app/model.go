// Package app is the interactive relax dashboard: a quote card, a relief
// region and the controls that drive them.
package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/relax/internal/breathing"
	"github.com/alexisbeaulieu97/relax/internal/content"
	"github.com/alexisbeaulieu97/relax/internal/logger"
	"github.com/alexisbeaulieu97/relax/internal/metrics"
	"github.com/alexisbeaulieu97/relax/internal/relief"
	"github.com/alexisbeaulieu97/relax/internal/theme"
	"github.com/alexisbeaulieu97/relax/internal/tui/components"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	maxCardWidth  = 72
)

// Deps are the collaborators a Model is built from. They outlive any single
// Model so Start Fresh can rebuild the page from scratch.
type Deps struct {
	Quotes     QuoteSource
	Dispatcher *relief.Dispatcher
	Theme      *theme.Controller
	// NewSession builds the breathing session for a fresh page.
	NewSession func() *breathing.Session
	// CompletionOnStop shows the completion card after a manual stop.
	CompletionOnStop bool
	Logger           *logger.Logger
	Metrics          *metrics.Metrics
}

// owner is whichever content last claimed the relief region.
type owner int

const (
	ownerNone owner = iota
	ownerMedia
	ownerBreathing
	ownerCompletion
)

// control is a focusable element.
type control int

const (
	controlRefresh control = iota
	controlRelief
	controlStop
	controlTheme
	controlFeeling
	controlStartFresh
)

type fade struct {
	token  uint64
	active bool
}

// Model is the dashboard state.
type Model struct {
	deps   Deps
	ctx    context.Context
	cancel context.CancelFunc
	log    *logger.Logger

	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	viewport viewport.Model
	feeling  textinput.Model

	// Theme
	attrs   theme.Attributes
	palette components.Palette
	styles  styles

	// Quote region
	quote      content.DisplayState
	quoteToken uint64
	quoteFade  fade
	quoteView  string

	// Relief region
	relief      content.DisplayState
	reliefToken uint64
	reliefFade  fade
	owner       owner

	// Breathing
	session    *breathing.Session
	feed       *breathingFeed
	breath     breathing.Event
	breathID   string
	phaseRatio float64

	reliefGate  relief.Gate
	refreshGate relief.Gate
	focus       control

	// Scroll animation
	scroll      relief.ScrollPlan
	scrollToken uint64
	scrollStart time.Time
	reliefTop   int

	status      string
	statusToken uint64

	width  int
	height int
}

// NewModel builds a fresh page: theme loaded, quote loading, relief region
// empty, a new idle breathing session.
func NewModel(deps Deps) Model {
	ctx, cancel := context.WithCancel(context.Background())
	log := deps.Logger.Component("tui")

	deps.Theme.LoadPreference()
	deps.Theme.DetectThirdPartyOverride()

	s := spinner.New()
	s.Spinner = spinner.Dot

	feeling := textinput.New()
	feeling.Placeholder = "How do you feel?"
	feeling.CharLimit = 120
	feeling.Width = 40

	feed := newBreathingFeed(log)
	session := deps.NewSession()
	session.Subscribe(feed.observe)

	m := Model{
		deps:        deps,
		ctx:         ctx,
		cancel:      cancel,
		log:         log,
		keys:        defaultKeyMap(),
		help:        help.New(),
		spinner:     s,
		viewport:    viewport.New(defaultWidth, defaultHeight-footerHeight),
		feeling:     feeling,
		quote:       content.LoadingQuote(),
		quoteToken:  1,
		relief:      content.Empty(content.RegionRelief),
		session:     session,
		feed:        feed,
		reliefGate:  relief.NewGate(relief.TriggerWindow),
		refreshGate: relief.NewGate(relief.RefreshWindow),
		focus:       controlRelief,
		width:       defaultWidth,
		height:      defaultHeight,
	}
	m.applyTheme()
	m.syncViewport()
	return m
}

// Init fetches the first quote and starts listening for breathing events.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchQuoteCmd(m.ctx, m.deps.Quotes, m.quoteToken, m.log, m.deps.Metrics),
		waitForBreathing(m.feed),
	)
}

// teardown stops the session and abandons in-flight requests.
func (m *Model) teardown() {
	if m.session.Snapshot().Phase.Running() {
		_ = m.session.Stop()
		m.deps.Metrics.BreathingFinished("interrupted")
	}
	m.feed.close()
	m.cancel()
}

// applyTheme rebuilds everything derived from the theme attributes.
func (m *Model) applyTheme() {
	m.attrs = m.deps.Theme.Attributes()
	m.palette = components.PaletteFor(m.attrs.DataTheme == theme.Dark, m.attrs.Override)
	m.styles = newStyles(m.palette)
	m.spinner.Style = m.styles.spinner
	m.help.Styles = m.styles.help
	m.renderQuote()
}

func (m Model) cardWidth() int {
	w := m.width - 2
	if w > maxCardWidth {
		w = maxCardWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// controls lists the focusable elements in tab order for the current state.
func (m Model) controls() []control {
	c := []control{controlRefresh, controlRelief}
	if m.owner == ownerBreathing {
		c = append(c, controlStop)
	}
	c = append(c, controlTheme)
	if m.owner == ownerCompletion {
		c = append(c, controlFeeling, controlStartFresh)
	}
	return c
}

func (m Model) hasControl(target control) bool {
	for _, c := range m.controls() {
		if c == target {
			return true
		}
	}
	return false
}

// Focused reports the focused control's label; used by tests and the view.
func (m Model) Focused() string {
	return controlLabel(m.focus, m.attrs)
}

func controlLabel(c control, attrs theme.Attributes) string {
	switch c {
	case controlRefresh:
		return "New Quote"
	case controlRelief:
		return "I'm Stressed"
	case controlStop:
		return "Stop"
	case controlTheme:
		return "Theme " + attrs.Icon
	case controlFeeling:
		return "How do you feel?"
	case controlStartFresh:
		return content.StartFreshAction
	default:
		return ""
	}
}
