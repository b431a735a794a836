package app

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/relax/internal/breathing"
	"github.com/alexisbeaulieu97/relax/internal/content"
	"github.com/alexisbeaulieu97/relax/internal/relief"
)

// footerHeight is the space reserved below the page for status and help.
const footerHeight = 2

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncViewport()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-footerHeight)
		m.help.Width = msg.Width
		m.renderQuote()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case quoteLoadedMsg:
		if msg.token != m.quoteToken {
			return m, nil
		}
		m.quote = msg.state
		m.renderQuote()
		return m, m.startFade(content.RegionQuote, msg.state.Transition.FadeIn)

	case mediaLoadedMsg:
		if msg.token != m.reliefToken || m.owner != ownerMedia {
			return m, nil
		}
		m.relief = msg.state
		return m, tea.Batch(m.startFade(content.RegionRelief, msg.state.Transition.FadeIn), m.beginScroll())

	case breathingEventMsg:
		return m.handleBreathingEvent(msg.event)

	case phaseTickMsg:
		if msg.sessionID != m.breathID || m.owner != ownerBreathing || m.breath.Kind != breathing.EventPhase {
			return m, nil
		}
		if m.breath.Duration > 0 {
			m.phaseRatio = float64(msg.at.Sub(m.breath.At)) / float64(m.breath.Duration)
		}
		return m, phaseTickCmd(msg.sessionID)

	case gateReleaseMsg:
		switch msg.gate {
		case gateRelief:
			m.reliefGate.Release(msg.token)
		case gateRefresh:
			m.refreshGate.Release(msg.token)
		}
		return m, nil

	case fadeDoneMsg:
		switch msg.region {
		case content.RegionQuote:
			if msg.token == m.quoteFade.token {
				m.quoteFade.active = false
			}
		case content.RegionRelief:
			if msg.token == m.reliefFade.token {
				m.reliefFade.active = false
			}
		}
		return m, nil

	case scrollTickMsg:
		return m.stepScroll(msg)

	case clearStatusMsg:
		if msg.token == m.statusToken {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey routes keys to the text input while it has focus; shortcuts are
// suppressed there.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.focus == controlFeeling && m.feeling.Focused() {
		switch {
		case msg.Type == tea.KeyCtrlC:
			m.teardown()
			return m, tea.Quit
		case msg.Type == tea.KeyEsc:
			m.feeling.Blur()
			return m, nil
		case msg.Type == tea.KeyEnter:
			return m.submitFeeling()
		case key.Matches(msg, m.keys.Focus):
			return m.cycleFocus(msg.String() == "shift+tab")
		}
		var cmd tea.Cmd
		m.feeling, cmd = m.feeling.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.teardown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Relief):
		return m.triggerRelief()

	case key.Matches(msg, m.keys.Refresh):
		return m.refreshQuote()

	case key.Matches(msg, m.keys.Stop):
		return m.stopBreathing()

	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()

	case key.Matches(msg, m.keys.StartFresh):
		if m.owner != ownerCompletion {
			return m, nil
		}
		return m.startFresh()

	case key.Matches(msg, m.keys.Focus):
		return m.cycleFocus(msg.String() == "shift+tab")

	case key.Matches(msg, m.keys.Activate):
		return m.activate()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// activate presses the focused control.
func (m Model) activate() (Model, tea.Cmd) {
	if !m.hasControl(m.focus) {
		m.focus = controlRelief
	}
	switch m.focus {
	case controlRefresh:
		return m.refreshQuote()
	case controlRelief:
		return m.triggerRelief()
	case controlStop:
		return m.stopBreathing()
	case controlTheme:
		return m.toggleTheme()
	case controlFeeling:
		return m, m.feeling.Focus()
	case controlStartFresh:
		return m.startFresh()
	}
	return m, nil
}

func (m Model) cycleFocus(backwards bool) (Model, tea.Cmd) {
	controls := m.controls()
	idx := 0
	for i, c := range controls {
		if c == m.focus {
			idx = i
			break
		}
	}
	if backwards {
		idx = (idx - 1 + len(controls)) % len(controls)
	} else {
		idx = (idx + 1) % len(controls)
	}
	m.focus = controls[idx]

	if m.focus == controlFeeling {
		return m, m.feeling.Focus()
	}
	m.feeling.Blur()
	return m, nil
}

// triggerRelief is the "I'm stressed" action shared by the shortcut and the
// button. Both pass through the same gate.
func (m Model) triggerRelief() (Model, tea.Cmd) {
	token, ok := m.reliefGate.Acquire()
	if !ok {
		m.log.Debug("relief trigger ignored while disabled")
		return m, nil
	}
	cmds := []tea.Cmd{releaseGateCmd(gateRelief, token, m.reliefGate.Window())}

	modality := m.deps.Dispatcher.Next()
	m.claimRelief()

	if modality == relief.ModalityBreathing {
		cmds = append(cmds, m.startBreathing())
	} else {
		kind, _ := modality.MediaKind()
		m.owner = ownerMedia
		m.relief = content.LoadingMedia(kind)
		cmds = append(cmds, loadMediaCmd(m.ctx, m.deps.Dispatcher, kind, m.reliefToken))
	}

	cmds = append(cmds, m.beginScroll())
	return m, tea.Batch(cmds...)
}

// claimRelief invalidates whatever held the relief region.
func (m *Model) claimRelief() {
	m.reliefToken++
	m.reliefFade = fade{token: m.reliefFade.token + 1}
	previous := m.owner
	m.owner = ownerNone
	m.relief = content.Empty(content.RegionRelief)

	if previous == ownerBreathing && m.session.Snapshot().Phase.Running() {
		_ = m.session.Stop()
		m.deps.Metrics.BreathingFinished("interrupted")
	}
	if m.feeling.Focused() {
		m.feeling.Blur()
	}
	m.feeling.Reset()
	if !m.hasControl(m.focus) {
		m.focus = controlRelief
	}
}

func (m *Model) startBreathing() tea.Cmd {
	if m.session.Snapshot().Phase == breathing.Completed {
		_ = m.session.Reset()
	}
	if err := m.session.Start(); err != nil {
		m.log.Error(err, "failed to start breathing session")
		return nil
	}

	snap := m.session.Snapshot()
	m.owner = ownerBreathing
	m.breathID = snap.ID
	m.phaseRatio = 0
	m.breath = breathing.Event{
		SessionID: snap.ID,
		Kind:      breathing.EventPhase,
		Phase:     snap.Phase,
		Cycle:     snap.Cycle,
		MaxCycles: snap.MaxCycles,
		Duration:  m.session.Durations().For(snap.Phase),
		At:        snap.PhaseStart,
	}
	return phaseTickCmd(snap.ID)
}

func (m Model) handleBreathingEvent(event breathing.Event) (Model, tea.Cmd) {
	wait := waitForBreathing(m.feed)
	if event.SessionID != m.breathID || m.owner != ownerBreathing {
		return m, wait
	}

	switch event.Kind {
	case breathing.EventPhase:
		m.breath = event
		m.phaseRatio = 0
		return m, wait
	case breathing.EventCompleted:
		m.deps.Metrics.BreathingFinished("completed")
		return m, tea.Batch(wait, m.showCompletion())
	default:
		return m, wait
	}
}

// stopBreathing handles the stop control. The completion card follows a
// manual stop unless configured otherwise.
func (m Model) stopBreathing() (Model, tea.Cmd) {
	if m.owner != ownerBreathing {
		return m, nil
	}
	if err := m.session.Stop(); err != nil {
		return m, nil
	}
	m.deps.Metrics.BreathingFinished("stopped")

	if m.deps.CompletionOnStop {
		return m, m.showCompletion()
	}
	m.owner = ownerNone
	m.relief = content.Empty(content.RegionRelief)
	m.focus = controlRelief
	return m, nil
}

func (m *Model) showCompletion() tea.Cmd {
	m.owner = ownerCompletion
	m.relief = content.Completion()
	m.focus = controlStartFresh
	return m.startFade(content.RegionRelief, m.relief.Transition.FadeIn)
}

// startFresh reloads the whole page.
func (m Model) startFresh() (Model, tea.Cmd) {
	m.log.Info("starting fresh")
	m.teardown()

	fresh := NewModel(m.deps)
	next, _ := fresh.update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return next, next.Init()
}

func (m Model) refreshQuote() (Model, tea.Cmd) {
	token, ok := m.refreshGate.Acquire()
	if !ok {
		return m, nil
	}
	m.quoteToken++
	m.quote = content.LoadingQuote()
	m.quoteFade = fade{token: m.quoteFade.token + 1}
	m.renderQuote()
	return m, tea.Batch(
		releaseGateCmd(gateRefresh, token, m.refreshGate.Window()),
		fetchQuoteCmd(m.ctx, m.deps.Quotes, m.quoteToken, m.log, m.deps.Metrics),
		m.spinner.Tick,
	)
}

func (m Model) toggleTheme() (Model, tea.Cmd) {
	_, err := m.deps.Theme.Toggle()
	m.applyTheme()
	if err != nil {
		return m, m.setStatus("Theme changed but could not be saved.")
	}
	return m, nil
}

func (m Model) submitFeeling() (Model, tea.Cmd) {
	value := m.feeling.Value()
	m.feeling.Reset()
	m.feeling.Blur()
	if value == "" {
		return m, nil
	}
	m.log.With("feeling", value).Info("completion reflection")
	return m, m.setStatus("Thanks for sharing.")
}

func (m *Model) setStatus(status string) tea.Cmd {
	m.statusToken++
	m.status = status
	return clearStatusCmd(m.statusToken)
}

func (m *Model) startFade(region content.Region, d time.Duration) tea.Cmd {
	target := &m.quoteFade
	if region == content.RegionRelief {
		target = &m.reliefFade
	}
	target.token++
	if d <= 0 {
		target.active = false
		return nil
	}
	target.active = true
	return fadeDoneCmd(region, target.token, d)
}

// beginScroll brings the relief region into view with a small offset above it.
func (m *Model) beginScroll() tea.Cmd {
	m.syncViewport()
	maxOffset := max(0, m.viewport.TotalLineCount()-m.viewport.Height)
	m.scroll = relief.PlanScroll(m.viewport.YOffset, m.reliefTop, maxOffset)
	m.scrollToken++
	m.scrollStart = time.Time{}
	if m.scroll.From == m.scroll.To {
		return nil
	}
	return scrollTickCmd(m.scrollToken)
}

func (m Model) stepScroll(msg scrollTickMsg) (Model, tea.Cmd) {
	if msg.token != m.scrollToken {
		return m, nil
	}
	if m.scrollStart.IsZero() {
		m.scrollStart = msg.at
	}
	elapsed := msg.at.Sub(m.scrollStart)

	m.syncViewport()
	m.viewport.SetYOffset(m.scroll.At(elapsed))
	if m.scroll.Done(elapsed) {
		return m, nil
	}
	return m, scrollTickCmd(msg.token)
}

// Relief returns the relief region's current display state.
func (m Model) Relief() content.DisplayState { return m.relief }

// Quote returns the quote region's current display state.
func (m Model) Quote() content.DisplayState { return m.quote }

var _ tea.Model = Model{}
