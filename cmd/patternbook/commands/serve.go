package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/mvhagen/patternbook/internal/cache"
	"github.com/mvhagen/patternbook/internal/metrics"
	"github.com/mvhagen/patternbook/internal/preview"
	"github.com/mvhagen/patternbook/internal/site"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Addr string `short:"a" help:"Listen address, overrides the configured one"`
}

// Run builds and serves the site until interrupted.
func (s *ServeCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if s.Addr != "" {
		cfg.Serve.Addr = s.Addr
	}
	// The preview always shows drafts; authors are usually iterating on one.
	cfg.Build.Drafts = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := preview.Options{}
	var genOpts []site.Option

	if cfg.Serve.Metrics {
		registry := prom.NewRegistry()
		recorder := metrics.NewPrometheusRecorder(registry)
		opts.Recorder = recorder
		opts.Registry = registry
		genOpts = append(genOpts, site.WithRecorder(recorder))
	}

	if cfg.Build.CachePath != "" {
		c, err := cache.Open(cfg.Build.CachePath)
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()
		genOpts = append(genOpts, site.WithCache(c))
	}

	genOpts = append(genOpts, site.WithLiveReload())
	g, err := site.NewGenerator(cfg, genOpts...)
	if err != nil {
		return err
	}

	return preview.Run(ctx, cfg, g, opts)
}
