package app

import (
	"time"

	"github.com/alexisbeaulieu97/relax/internal/breathing"
	"github.com/alexisbeaulieu97/relax/internal/content"
)

// quoteLoadedMsg carries a rendered quote for request token.
type quoteLoadedMsg struct {
	token uint64
	state content.DisplayState
}

// mediaLoadedMsg carries a rendered gif or meme for relief token.
type mediaLoadedMsg struct {
	token uint64
	state content.DisplayState
}

// breathingEventMsg forwards a session event into the update loop.
type breathingEventMsg struct {
	event breathing.Event
}

type gateKind int

const (
	gateRelief gateKind = iota
	gateRefresh
)

// gateReleaseMsg re-enables a control once its window has elapsed.
type gateReleaseMsg struct {
	gate  gateKind
	token uint64
}

// fadeDoneMsg ends the fade-in of a region.
type fadeDoneMsg struct {
	region content.Region
	token  uint64
}

// scrollTickMsg is one frame of the scroll animation.
type scrollTickMsg struct {
	token uint64
	at    time.Time
}

// phaseTickMsg redraws the breathing progress bar.
type phaseTickMsg struct {
	sessionID string
	at        time.Time
}

// clearStatusMsg removes a transient status line.
type clearStatusMsg struct {
	token uint64
}
