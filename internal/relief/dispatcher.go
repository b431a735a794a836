// Package relief picks one of the three relief modalities for each "I'm
// stressed" request and loads image content, falling back from a failed meme
// to a gif.
package relief

import (
	"context"
	"math/rand/v2"

	"github.com/alexisbeaulieu97/relax/internal/api"
	"github.com/alexisbeaulieu97/relax/internal/content"
	"github.com/alexisbeaulieu97/relax/internal/logger"
	"github.com/alexisbeaulieu97/relax/internal/metrics"
)

// Modality is one of the relief experiences.
type Modality int

const (
	ModalityGif Modality = iota
	ModalityMeme
	ModalityBreathing
)

func (m Modality) String() string {
	switch m {
	case ModalityMeme:
		return "meme"
	case ModalityBreathing:
		return "breathing"
	default:
		return "gif"
	}
}

// MediaKind maps an image modality onto the renderer's kind.
func (m Modality) MediaKind() (content.MediaKind, bool) {
	switch m {
	case ModalityGif:
		return content.Gif, true
	case ModalityMeme:
		return content.Meme, true
	default:
		return 0, false
	}
}

// Choose maps a uniform draw in [0,1) onto a modality: 40% gif, 40% meme,
// 20% breathing.
func Choose(r float64) Modality {
	switch {
	case r < 0.4:
		return ModalityGif
	case r < 0.8:
		return ModalityMeme
	default:
		return ModalityBreathing
	}
}

// MediaSource fetches image payloads.
type MediaSource interface {
	FetchGif(ctx context.Context) (api.Media, error)
	FetchMeme(ctx context.Context) (api.Media, error)
}

// Options configures a Dispatcher.
type Options struct {
	Source MediaSource
	// Rand returns a uniform value in [0,1); math/rand/v2 when nil.
	Rand    func() float64
	Logger  *logger.Logger
	Metrics *metrics.Metrics
}

// Dispatcher draws modalities and loads media.
type Dispatcher struct {
	source  MediaSource
	rand    func() float64
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewDispatcher builds a Dispatcher.
func NewDispatcher(opts Options) *Dispatcher {
	r := opts.Rand
	if r == nil {
		r = rand.Float64
	}
	return &Dispatcher{
		source:  opts.Source,
		rand:    r,
		log:     opts.Logger.Component("relief"),
		metrics: opts.Metrics,
	}
}

// Next draws the modality for one relief request.
func (d *Dispatcher) Next() Modality {
	draw := d.rand()
	modality := Choose(draw)
	d.log.WithFields(map[string]any{"draw": draw, "modality": modality.String()}).Info("relief dispatched")
	d.metrics.ReliefDispatched(modality.String())
	return modality
}

// LoadMedia fetches and renders a gif or meme. A meme failure issues a gif
// request and renders that result instead.
func (d *Dispatcher) LoadMedia(ctx context.Context, kind content.MediaKind) content.DisplayState {
	media, err := d.fetch(ctx, kind)
	if err != nil {
		d.log.With("kind", kind.String()).Error(err, "media fetch failed")
		d.metrics.FetchFailed(kind.String())
	}

	state := content.RenderMedia(kind, media, err)
	if state.Kind == content.KindFallback {
		d.log.With("from", kind.String()).Warn("falling back to gif")
		d.metrics.FallbackUsed()
		return d.LoadMedia(ctx, state.FallbackTo)
	}
	return state
}

func (d *Dispatcher) fetch(ctx context.Context, kind content.MediaKind) (api.Media, error) {
	if kind == content.Meme {
		return d.source.FetchMeme(ctx)
	}
	return d.source.FetchGif(ctx)
}
