// Package metrics counts relief activity with Prometheus collectors. All
// recording methods are safe on a nil *Metrics.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alexisbeaulieu97/relax/internal/logger"
)

const namespace = "relax"

// Metrics owns a private registry so tests and multiple instances never clash.
type Metrics struct {
	registry      *prometheus.Registry
	dispatches    *prometheus.CounterVec
	fetchFailures *prometheus.CounterVec
	fallbacks     prometheus.Counter
	breathing     *prometheus.CounterVec
	themeToggles  prometheus.Counter
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relief_dispatches_total",
			Help:      "Relief requests by chosen modality.",
		}, []string{"modality"}),
		fetchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_failures_total",
			Help:      "Failed content requests by kind.",
		}, []string{"kind"}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "meme_fallbacks_total",
			Help:      "Meme failures answered with a gif.",
		}),
		breathing: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "breathing_sessions_total",
			Help:      "Breathing sessions by outcome.",
		}, []string{"outcome"}),
		themeToggles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "theme_toggles_total",
			Help:      "Theme toggles.",
		}),
	}

	m.registry.MustRegister(m.dispatches, m.fetchFailures, m.fallbacks, m.breathing, m.themeToggles)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ReliefDispatched counts one relief request for the chosen modality.
func (m *Metrics) ReliefDispatched(modality string) {
	if m == nil {
		return
	}
	m.dispatches.WithLabelValues(modality).Inc()
}

// FetchFailed counts a failed quote, gif or meme request.
func (m *Metrics) FetchFailed(kind string) {
	if m == nil {
		return
	}
	m.fetchFailures.WithLabelValues(kind).Inc()
}

// FallbackUsed counts a meme failure answered with a gif.
func (m *Metrics) FallbackUsed() {
	if m == nil {
		return
	}
	m.fallbacks.Inc()
}

// BreathingFinished records a session outcome: completed, stopped or interrupted.
func (m *Metrics) BreathingFinished(outcome string) {
	if m == nil {
		return
	}
	m.breathing.WithLabelValues(outcome).Inc()
}

// ThemeToggled counts one theme toggle.
func (m *Metrics) ThemeToggled() {
	if m == nil {
		return
	}
	m.themeToggles.Inc()
}

// Handler serves the registry on /metrics.
func (m *Metrics) Handler() http.Handler {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	return r
}

// Serve runs the metrics listener until ctx is cancelled.
func Serve(ctx context.Context, addr string, m *Metrics, log *logger.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           m.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.With("addr", addr).Info("metrics listener started")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
