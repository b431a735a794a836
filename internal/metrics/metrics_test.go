package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	t.Parallel()

	m := New()
	m.ReliefDispatched("gif")
	m.ReliefDispatched("gif")
	m.ReliefDispatched("breathing")
	m.FetchFailed("meme")
	m.FallbackUsed()
	m.BreathingFinished("stopped")
	m.ThemeToggled()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.dispatches.WithLabelValues("gif")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dispatches.WithLabelValues("breathing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fetchFailures.WithLabelValues("meme")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fallbacks))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.breathing.WithLabelValues("stopped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.themeToggles))
}

func TestNilMetricsIsSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	require.NotPanics(t, func() {
		m.ReliefDispatched("meme")
		m.FetchFailed("gif")
		m.FallbackUsed()
		m.BreathingFinished("completed")
		m.ThemeToggled()
	})
	require.Nil(t, m.Registry())
}

func TestHandlerExposesMetrics(t *testing.T) {
	t.Parallel()

	m := New()
	m.ReliefDispatched("meme")

	srv := httptest.NewServer(m.Handler())
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), `relax_relief_dispatches_total{modality="meme"} 1`)
}
