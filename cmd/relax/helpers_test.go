package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

func newFakeServer(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Get("/api/quote", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"text": "Slow down.", "source": "local"})
	})
	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"status": "healthy", "version": "1.0.0", "timestamp": "2024-01-01T00:00:00Z"})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// writeConfig writes a config pointing at baseURL with state under a temp dir.
// extra is appended verbatim as additional YAML.
func writeConfig(t *testing.T, baseURL string, extra ...string) (path string, stateDir string) {
	t.Helper()

	dir := t.TempDir()
	stateDir = filepath.Join(dir, "state")
	path = filepath.Join(dir, "config.yaml")
	body := fmt.Sprintf("base_url: %s\nstate_dir: %s\nlog:\n  level: error\n", baseURL, stateDir) + strings.Join(extra, "")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path, stateDir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeContext(t, context.Background(), args...)
}

func executeContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}
