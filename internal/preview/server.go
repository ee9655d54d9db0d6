// Package preview serves the generated site locally, rebuilding on content
// changes and pushing live reloads to connected browsers.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mvhagen/patternbook/internal/config"
	"github.com/mvhagen/patternbook/internal/site"
)

// Builder rebuilds the site; satisfied by *site.Generator.
type Builder interface {
	Build(ctx context.Context) (*site.Report, error)
}

// buildStatus tracks the latest build result for /healthz.
type buildStatus struct {
	mu           sync.RWMutex
	lastError    error
	lastBuild    time.Time
	hasGoodBuild bool
}

func (bs *buildStatus) setError(err error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.lastError = err
	bs.lastBuild = time.Now()
}

func (bs *buildStatus) setSuccess() {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.lastError = nil
	bs.lastBuild = time.Now()
	bs.hasGoodBuild = true
}

func (bs *buildStatus) snapshot() (err error, last time.Time, good bool) {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	return bs.lastError, bs.lastBuild, bs.hasGoodBuild
}

func newMux(cfg *config.Config, hub *Hub, status *buildStatus, registry *prom.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(cfg.Output.Directory)))
	mux.Handle("/livereload", hub)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		err, last, good := status.snapshot()
		payload := map[string]any{
			"status":     "ok",
			"last_build": last.Format(time.RFC3339),
			"clients":    hub.ClientCount(),
		}
		code := http.StatusOK
		if err != nil {
			payload["status"] = "build_failed"
			payload["error"] = err.Error()
			if !good {
				code = http.StatusServiceUnavailable
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(payload)
	})
	if cfg.Serve.Metrics && registry != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}
	return mux
}

func startHTTP(cfg *config.Config, handler http.Handler) (*http.Server, <-chan error, error) {
	ln, err := net.Listen("tcp", cfg.Serve.Addr)
	if err != nil {
		return nil, nil, fmt.Errorf("listen on %s: %w", cfg.Serve.Addr, err)
	}

	srv := &http.Server{Handler: handler, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	slog.Info("Preview server listening", "addr", ln.Addr().String())
	return srv, errCh, nil
}
