package app

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/relax/internal/breathing"
	"github.com/alexisbeaulieu97/relax/internal/content"
	"github.com/alexisbeaulieu97/relax/internal/theme"
)

func TestNewModelStartsLoading(t *testing.T) {
	f := newFixture(t)
	m := f.model(t)

	assert.Equal(t, content.KindLoading, m.Quote().Kind)
	assert.Equal(t, content.KindEmpty, m.Relief().Kind)
	assert.Equal(t, theme.Light, m.attrs.DataTheme)
	assert.Equal(t, "I'm Stressed", m.Focused())
	assert.NotNil(t, m.Init())
}

func TestQuoteLoaded(t *testing.T) {
	f := newFixture(t)
	f.quotes.quote.Author = ""
	m := f.model(t)

	msg := fetchQuoteCmd(context.Background(), f.quotes, m.quoteToken, nil, nil)()
	m, cmd := send(t, m, msg)

	assert.Equal(t, content.KindQuote, m.Quote().Kind)
	assert.Equal(t, content.DefaultAuthor, m.Quote().Author)
	assert.True(t, m.quoteFade.active)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Breathe")

	m, _ = send(t, m, fadeDoneMsg{region: content.RegionQuote, token: m.quoteFade.token})
	assert.False(t, m.quoteFade.active)
}

func TestQuoteFailureShowsWarning(t *testing.T) {
	f := newFixture(t)
	f.quotes.err = errors.New("boom")
	m := f.model(t)

	m, _ = send(t, m, fetchQuoteCmd(context.Background(), f.quotes, m.quoteToken, nil, nil)())
	assert.Equal(t, content.KindWarning, m.Quote().Kind)
	assert.Empty(t, m.Quote().Author)
	assert.Contains(t, m.View(), "Could not load quote")
}

func TestRefreshQuoteDropsStaleResult(t *testing.T) {
	f := newFixture(t)
	m := f.model(t)
	first := m.quoteToken

	m = press(t, m, "q")
	require.Equal(t, first+1, m.quoteToken)

	m, _ = send(t, m, quoteLoadedMsg{token: first, state: content.RenderQuote(f.quotes.quote, nil)})
	assert.Equal(t, content.KindLoading, m.Quote().Kind, "result of the superseded request is dropped")

	m, _ = send(t, m, quoteLoadedMsg{token: m.quoteToken, state: content.RenderQuote(f.quotes.quote, nil)})
	assert.Equal(t, content.KindQuote, m.Quote().Kind)
}

func TestRefreshQuoteIsGated(t *testing.T) {
	f := newFixture(t)
	m := f.model(t)
	start := m.quoteToken

	m = press(t, m, "q", "Q")
	assert.Equal(t, start+1, m.quoteToken)
	assert.True(t, m.refreshGate.Disabled())

	m, _ = send(t, m, gateReleaseMsg{gate: gateRefresh, token: 1})
	m = press(t, m, "Q")
	assert.Equal(t, start+2, m.quoteToken)
}

func TestReliefGif(t *testing.T) {
	f := newFixture(t)
	m := f.model(t)

	m = press(t, m, "s")
	require.Equal(t, ownerMedia, m.owner)
	assert.Equal(t, content.KindLoading, m.Relief().Kind)
	assert.Equal(t, "Loading calming visual...", m.Relief().Text)

	msg := loadMediaCmd(m.ctx, f.deps.Dispatcher, content.Gif, m.reliefToken)()
	m, _ = send(t, m, msg)

	assert.Equal(t, content.KindMedia, m.Relief().Kind)
	view := m.View()
	assert.Contains(t, view, content.GifTitle)
	assert.Contains(t, view, content.AttributionText)
	assert.Contains(t, view, "https://g.co/calm.gif")
}

func TestReliefMemeWithoutAttribution(t *testing.T) {
	f := newFixture(t)
	f.draw = 0.5
	m := f.model(t)

	m = press(t, m, "S")
	assert.Equal(t, "Loading wholesome meme...", m.Relief().Text)

	m, _ = send(t, m, loadMediaCmd(m.ctx, f.deps.Dispatcher, content.Meme, m.reliefToken)())
	assert.Equal(t, "Cozy cat", m.Relief().Title)
	assert.NotContains(t, m.View(), content.AttributionText)
}

func TestMemeFailureLoadsGifInstead(t *testing.T) {
	f := newFixture(t)
	f.draw = 0.5
	f.media.memeErr = errors.New("reddit down")
	m := f.model(t)

	m = press(t, m, "s")
	m, _ = send(t, m, loadMediaCmd(m.ctx, f.deps.Dispatcher, content.Meme, m.reliefToken)())

	assert.Equal(t, []string{"meme", "gif"}, f.media.calls)
	assert.Equal(t, content.KindMedia, m.Relief().Kind)
	assert.Equal(t, content.GifTitle, m.Relief().Title)
	assert.NotContains(t, m.View(), "Could not load")
}

func TestStaleMediaIsDropped(t *testing.T) {
	f := newFixture(t)
	m := f.model(t)

	m = press(t, m, "s")
	stale := m.reliefToken
	m, _ = send(t, m, gateReleaseMsg{gate: gateRelief, token: 1})
	m = press(t, m, "s")

	m, _ = send(t, m, mediaLoadedMsg{token: stale, state: content.RenderMedia(content.Gif, f.media.gif, nil)})
	assert.Equal(t, content.KindLoading, m.Relief().Kind)
}

func TestKeyboardAndButtonTriggerInsideWindow(t *testing.T) {
	f := newFixture(t)
	m := f.model(t)
	require.Equal(t, controlRelief, m.focus)

	m = press(t, m, "s")
	token := m.reliefToken
	m = press(t, m, "enter")

	assert.Equal(t, 1, f.dispatches, "button press inside the window is ignored")
	assert.Equal(t, token, m.reliefToken)
	assert.True(t, m.reliefGate.Disabled())

	m, _ = send(t, m, gateReleaseMsg{gate: gateRelief, token: 1})
	assert.False(t, m.reliefGate.Disabled())

	m = press(t, m, "enter")
	assert.Equal(t, 2, f.dispatches)
	m = press(t, m, "s")
	assert.Equal(t, 2, f.dispatches)
}

func TestBreathingRunsToCompletion(t *testing.T) {
	f := newFixture(t)
	f.draw = 0.9
	m := f.model(t)

	m = press(t, m, "s")
	require.Equal(t, ownerBreathing, m.owner)
	assert.Equal(t, breathing.Inhale, m.breath.Phase)
	assert.Contains(t, m.View(), "Breathe In")
	assert.Contains(t, m.View(), "Cycle 1 of 3")

	require.True(t, f.clock.Fire())
	m = drain(t, m)
	assert.Equal(t, breathing.Hold, m.breath.Phase)

	for f.clock.Fire() {
	}
	m = drain(t, m)

	assert.Equal(t, ownerCompletion, m.owner)
	assert.Equal(t, content.KindCompletion, m.Relief().Kind)
	assert.Equal(t, content.StartFreshAction, m.Focused())
	assert.Equal(t, breathing.Completed, m.session.Snapshot().Phase)
	assert.Contains(t, m.View(), "Great Job!")
}

func TestStopShowsCompletionCard(t *testing.T) {
	f := newFixture(t)
	f.draw = 0.9
	m := f.model(t)

	m = press(t, m, "s")
	require.True(t, f.clock.Fire())
	m = press(t, m, "x")

	assert.Equal(t, content.KindCompletion, m.Relief().Kind)
	assert.Equal(t, breathing.Idle, m.session.Snapshot().Phase)
	assert.False(t, f.clock.Fire(), "no timer survives stop")

	m = drain(t, m)
	assert.Equal(t, content.KindCompletion, m.Relief().Kind)
}

func TestStopWithoutCompletionCard(t *testing.T) {
	f := newFixture(t)
	f.draw = 0.9
	f.deps.CompletionOnStop = false
	m := f.model(t)

	m = press(t, m, "s", "x")
	m = drain(t, m)

	assert.Equal(t, ownerNone, m.owner)
	assert.Equal(t, content.KindEmpty, m.Relief().Kind)
}

func TestReliefWhileBreathingStopsSession(t *testing.T) {
	f := newFixture(t)
	f.draw = 0.9
	m := f.model(t)

	m = press(t, m, "s")
	m, _ = send(t, m, gateReleaseMsg{gate: gateRelief, token: 1})
	f.draw = 0.1
	m = press(t, m, "s")

	assert.Equal(t, breathing.Idle, m.session.Snapshot().Phase)
	m = drain(t, m)
	assert.Equal(t, ownerMedia, m.owner)
	assert.Equal(t, content.KindLoading, m.Relief().Kind)
}

func TestBreathingAfterCompletionRestarts(t *testing.T) {
	f := newFixture(t)
	f.draw = 0.9
	m := f.model(t)

	m = press(t, m, "s")
	for f.clock.Fire() {
	}
	m = drain(t, m)
	firstID := m.breathID

	m, _ = send(t, m, gateReleaseMsg{gate: gateRelief, token: 1})
	m = press(t, m, "s")
	assert.Equal(t, ownerBreathing, m.owner)
	assert.NotEqual(t, firstID, m.breathID)
}

func TestPhaseTickAdvancesProgress(t *testing.T) {
	f := newFixture(t)
	f.draw = 0.9
	m := f.model(t)

	m = press(t, m, "s")
	m, cmd := send(t, m, phaseTickMsg{sessionID: m.breathID, at: m.breath.At.Add(2 * time.Second)})
	assert.InDelta(t, 0.5, m.phaseRatio, 0.001)
	assert.NotNil(t, cmd)

	_, cmd = send(t, m, phaseTickMsg{sessionID: "other", at: m.breath.At})
	assert.Nil(t, cmd)
}

func TestFeelingInputSuppressesShortcuts(t *testing.T) {
	f := newFixture(t)
	f.draw = 0.9
	m := f.model(t)

	m = press(t, m, "s", "x")
	require.Equal(t, ownerCompletion, m.owner)

	m = press(t, m, "shift+tab")
	require.Equal(t, controlFeeling, m.focus)
	require.True(t, m.feeling.Focused())

	m, _ = send(t, m, gateReleaseMsg{gate: gateRelief, token: 1})
	m = press(t, m, "s", "q")
	assert.Equal(t, 1, f.dispatches, "typing does not trigger relief")
	assert.Equal(t, "sq", m.feeling.Value())

	m = press(t, m, "enter")
	assert.Equal(t, "Thanks for sharing.", m.status)
	assert.False(t, m.feeling.Focused())

	m, _ = send(t, m, clearStatusMsg{token: m.statusToken})
	assert.Empty(t, m.status)
}

func TestStartFreshRebuildsPage(t *testing.T) {
	f := newFixture(t)
	f.draw = 0.9
	m := f.model(t)
	m, _ = send(t, m, fetchQuoteCmd(context.Background(), f.quotes, m.quoteToken, nil, nil)())

	m = press(t, m, "s", "x")
	oldFeed := m.feed
	oldSession := m.session

	m = press(t, m, "r")

	assert.Equal(t, content.KindLoading, m.Quote().Kind)
	assert.Equal(t, content.KindEmpty, m.Relief().Kind)
	assert.Equal(t, ownerNone, m.owner)
	assert.NotSame(t, oldSession, m.session)
	assert.Equal(t, 80, m.width)

	select {
	case <-oldFeed.done:
	default:
		t.Fatal("previous breathing feed left open")
	}
}

func TestStartFreshOnlyFromCompletion(t *testing.T) {
	f := newFixture(t)
	m := f.model(t)
	session := m.session

	m = press(t, m, "r")
	assert.Same(t, session, m.session)
}

func TestThemeToggle(t *testing.T) {
	f := newFixture(t)
	m := f.model(t)

	m = press(t, m, "t")
	assert.Equal(t, theme.Dark, m.attrs.DataTheme)
	assert.Contains(t, m.View(), "☀")

	saved, ok, err := f.store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, theme.Dark, saved)

	m = press(t, m, "t")
	assert.Equal(t, theme.Light, m.attrs.DataTheme)
}

func TestSavedThemeAndOverride(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Save(theme.Dark))
	f.override = true

	m := f.model(t)
	assert.Equal(t, theme.Dark, m.attrs.DataTheme)
	assert.True(t, m.attrs.Override)
	assert.True(t, m.palette.Colorless)
	assert.Equal(t, "notty", glamourStyle(m.attrs))
}

func TestFocusCycle(t *testing.T) {
	f := newFixture(t)
	m := f.model(t)

	m = press(t, m, "tab")
	assert.Equal(t, controlTheme, m.focus)
	m = press(t, m, "tab")
	assert.Equal(t, controlRefresh, m.focus)

	start := m.quoteToken
	m = press(t, m, "enter")
	assert.Equal(t, start+1, m.quoteToken)
}

func TestScrollBringsReliefIntoView(t *testing.T) {
	f := newFixture(t)
	m := NewModel(f.deps)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 8})

	m = press(t, m, "s")
	m, _ = send(t, m, loadMediaCmd(m.ctx, f.deps.Dispatcher, content.Gif, m.reliefToken)())
	require.Greater(t, m.scroll.To, 0)

	token := m.scrollToken
	start := time.Now()
	m, cmd := send(t, m, scrollTickMsg{token: token, at: start})
	assert.NotNil(t, cmd)
	assert.Equal(t, m.scroll.From, m.viewport.YOffset)

	m, _ = send(t, m, scrollTickMsg{token: token - 1, at: start.Add(time.Second)})
	assert.Equal(t, m.scroll.From, m.viewport.YOffset, "stale animation is ignored")

	m, cmd = send(t, m, scrollTickMsg{token: token, at: start.Add(500 * time.Millisecond)})
	assert.Nil(t, cmd)
	assert.Equal(t, m.scroll.To, m.viewport.YOffset)
}

func TestQuit(t *testing.T) {
	f := newFixture(t)
	f.draw = 0.9
	m := f.model(t)
	m = press(t, m, "s")

	m, cmd := send(t, m, keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, breathing.Idle, m.session.Snapshot().Phase)
	assert.Error(t, m.ctx.Err())
}
