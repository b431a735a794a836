package app

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/relax/internal/api"
	"github.com/alexisbeaulieu97/relax/internal/breathing"
	"github.com/alexisbeaulieu97/relax/internal/content"
	"github.com/alexisbeaulieu97/relax/internal/logger"
	"github.com/alexisbeaulieu97/relax/internal/metrics"
	"github.com/alexisbeaulieu97/relax/internal/relief"
)

const (
	scrollFrame   = 16 * time.Millisecond
	phaseFrame    = 100 * time.Millisecond
	statusTimeout = 3 * time.Second
	feedBuffer    = 32
)

// fetchQuoteCmd loads a quote and renders the outcome.
func fetchQuoteCmd(ctx context.Context, src QuoteSource, token uint64, log *logger.Logger, m *metrics.Metrics) tea.Cmd {
	return func() tea.Msg {
		quote, err := src.FetchQuote(ctx)
		if err != nil {
			log.Error(err, "quote fetch failed")
			m.FetchFailed("quote")
		} else {
			log.WithFields(map[string]any{"author": quote.Author, "source": quote.Source}).Debug("quote loaded")
		}
		return quoteLoadedMsg{token: token, state: content.RenderQuote(quote, err)}
	}
}

// loadMediaCmd loads a gif or meme through the dispatcher, which owns the
// meme to gif fallback.
func loadMediaCmd(ctx context.Context, d *relief.Dispatcher, kind content.MediaKind, token uint64) tea.Cmd {
	return func() tea.Msg {
		return mediaLoadedMsg{token: token, state: d.LoadMedia(ctx, kind)}
	}
}

func releaseGateCmd(gate gateKind, token uint64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return gateReleaseMsg{gate: gate, token: token}
	})
}

func fadeDoneCmd(region content.Region, token uint64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return fadeDoneMsg{region: region, token: token}
	})
}

func scrollTickCmd(token uint64) tea.Cmd {
	return tea.Tick(scrollFrame, func(t time.Time) tea.Msg {
		return scrollTickMsg{token: token, at: t}
	})
}

func phaseTickCmd(sessionID string) tea.Cmd {
	return tea.Tick(phaseFrame, func(t time.Time) tea.Msg {
		return phaseTickMsg{sessionID: sessionID, at: t}
	})
}

func clearStatusCmd(token uint64) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{token: token}
	})
}

// breathingFeed moves session events from timer goroutines into the update
// loop.
type breathingFeed struct {
	events chan breathing.Event
	done   chan struct{}
	once   sync.Once
	log    *logger.Logger
}

func newBreathingFeed(log *logger.Logger) *breathingFeed {
	return &breathingFeed{
		events: make(chan breathing.Event, feedBuffer),
		done:   make(chan struct{}),
		log:    log,
	}
}

// observe runs under the session lock and must not block.
func (f *breathingFeed) observe(event breathing.Event) {
	select {
	case f.events <- event:
	default:
		f.log.With("kind", event.Kind.String()).Warn("dropping breathing event")
	}
}

func (f *breathingFeed) close() {
	f.once.Do(func() { close(f.done) })
}

// waitForBreathing delivers the next session event, or nothing once the feed
// is closed.
func waitForBreathing(f *breathingFeed) tea.Cmd {
	return func() tea.Msg {
		select {
		case event := <-f.events:
			return breathingEventMsg{event: event}
		case <-f.done:
			return nil
		}
	}
}

// QuoteSource fetches quotes.
type QuoteSource interface {
	FetchQuote(ctx context.Context) (api.Quote, error)
}
