package preview

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/mvhagen/patternbook/internal/config"
	"github.com/mvhagen/patternbook/internal/metrics"
)

func previewConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Output.Directory = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Output.Directory, "index.html"), []byte("<html>home</html>"), 0o644))
	return cfg
}

func TestMux_ServesGeneratedSite(t *testing.T) {
	cfg := previewConfig(t)
	hub := NewHub(nil)
	defer hub.Close()

	srv := httptest.NewServer(newMux(cfg, hub, &buildStatus{}, nil))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, 200, resp.StatusCode)
}

func TestHealthz_ReportsBuildFailure(t *testing.T) {
	cfg := previewConfig(t)
	hub := NewHub(nil)
	defer hub.Close()

	status := &buildStatus{}
	status.setError(errors.New("boom"))

	srv := httptest.NewServer(newMux(cfg, hub, status, nil))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, 503, resp.StatusCode)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "build_failed", payload["status"])

	// A later good build flips it back to ok with a 200.
	status.setSuccess()
	resp2, err := srv.Client().Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer func() { _ = resp2.Body.Close() }()
	require.Equal(t, 200, resp2.StatusCode)
}

func TestMux_MetricsEndpointOnlyWhenEnabled(t *testing.T) {
	cfg := previewConfig(t)
	hub := NewHub(nil)
	defer hub.Close()

	reg := prom.NewRegistry()
	metrics.NewPrometheusRecorder(reg)

	srv := httptest.NewServer(newMux(cfg, hub, &buildStatus{}, reg))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, 404, resp.StatusCode) // cfg.Serve.Metrics is false

	cfg.Serve.Metrics = true
	srv2 := httptest.NewServer(newMux(cfg, hub, &buildStatus{}, reg))
	defer srv2.Close()

	resp2, err := srv2.Client().Get(srv2.URL + "/metrics")
	require.NoError(t, err)
	defer func() { _ = resp2.Body.Close() }()
	require.Equal(t, 200, resp2.StatusCode)
}
