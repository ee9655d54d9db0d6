package preview

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/mvhagen/patternbook/internal/config"
	"github.com/mvhagen/patternbook/internal/metrics"
)

// Options configures Run beyond what the config file carries.
type Options struct {
	Recorder metrics.Recorder // nil gets a noop
	Registry *prom.Registry   // backing registry for /metrics, may be nil
}

// Run builds the site, serves it, and rebuilds on content changes until ctx
// is canceled. An optional schedule from the config triggers periodic full
// rebuilds on top of the watcher.
func Run(ctx context.Context, cfg *config.Config, builder Builder, opts Options) error {
	recorder := opts.Recorder
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}

	status := &buildStatus{}
	rebuild := func() {
		if _, err := builder.Build(ctx); err != nil {
			slog.Error("Build failed", "error", err)
			status.setError(err)
			return
		}
		status.setSuccess()
	}

	// Initial build failures keep the server up so the author can fix the
	// content and get a reload.
	rebuild()

	hub := NewHub(recorder)
	defer hub.Close()

	srv, srvErr, err := startHTTP(cfg, newMux(cfg, hub, status, opts.Registry))
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	watcher, err := newWatcher(cfg.Content.Directory)
	if err != nil {
		return fmt.Errorf("watch content directory: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	deb := newDebouncer()
	defer deb.Stop()

	if interval := cfg.RebuildInterval(); interval > 0 {
		scheduler, err := gocron.NewScheduler()
		if err != nil {
			return fmt.Errorf("create scheduler: %w", err)
		}
		if _, err := scheduler.NewJob(
			gocron.DurationJob(interval),
			gocron.NewTask(func() { deb.Trigger() }),
		); err != nil {
			return fmt.Errorf("schedule periodic rebuild: %w", err)
		}
		scheduler.Start()
		defer func() { _ = scheduler.Shutdown() }()
		slog.Info("Periodic rebuild enabled", "interval", interval)
	}

	for {
		select {
		case <-ctx.Done():
			slog.Info("Preview shutting down")
			return nil
		case err, ok := <-srvErr:
			if ok && err != nil {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(ev) {
				continue
			}
			// New subdirectories need watching too.
			if ev.Op&fsnotify.Create != 0 {
				if st, err := os.Stat(ev.Name); err == nil && st.IsDir() {
					_ = addDirsRecursive(watcher, ev.Name)
				}
			}
			slog.Debug("Content change", "path", ev.Name, "op", ev.Op.String())
			deb.Trigger()
		case err, ok := <-watcher.Errors:
			if ok && err != nil {
				slog.Warn("Watcher error", "error", err)
			}
		case <-deb.C():
			slog.Info("Rebuilding site")
			rebuild()
			hub.Broadcast(fmt.Sprintf("%d", time.Now().UnixNano()))
		}
	}
}
