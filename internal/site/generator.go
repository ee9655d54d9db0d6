// Package site turns discovered lectures into the published HTML book.
package site

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mvhagen/patternbook/internal/cache"
	"github.com/mvhagen/patternbook/internal/config"
	"github.com/mvhagen/patternbook/internal/gitmeta"
	"github.com/mvhagen/patternbook/internal/lecture"
	"github.com/mvhagen/patternbook/internal/metrics"
	"github.com/mvhagen/patternbook/internal/pipeline"
)

// Generator orchestrates the build stages: prepare, discover, transform,
// render, assets, indexes, redirects.
type Generator struct {
	cfg      *config.Config
	pipe     *pipeline.Pipeline
	cache    *cache.RenderCache // nil disables caching
	recorder metrics.Recorder
	theme    *theme

	// LiveReload injects the preview reload script into every page.
	LiveReload bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithCache attaches a render cache.
func WithCache(c *cache.RenderCache) Option {
	return func(g *Generator) { g.cache = c }
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) { g.recorder = r }
}

// WithLiveReload enables the preview reload script.
func WithLiveReload() Option {
	return func(g *Generator) { g.LiveReload = true }
}

// NewGenerator creates a Generator for the given configuration.
func NewGenerator(cfg *config.Config, opts ...Option) (*Generator, error) {
	th, err := loadTheme()
	if err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:      cfg,
		pipe:     pipeline.Default(),
		recorder: metrics.NoopRecorder{},
		theme:    th,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// buildState carries intermediate results between stages.
type buildState struct {
	lectures []*lecture.Lecture
	assets   []lecture.Asset
	report   *Report
}

type stage struct {
	name string
	run  func(ctx context.Context, st *buildState) error
}

// Build runs all stages and writes the site to the configured output
// directory.
func (g *Generator) Build(ctx context.Context) (*Report, error) {
	start := time.Now()
	st := &buildState{report: &Report{}}

	if err := g.prepareCache(ctx); err != nil {
		return nil, err
	}

	stages := []stage{
		{"prepare", g.stagePrepare},
		{"discover", g.stageDiscover},
		{"transform", g.stageTransform},
		{"render", g.stageRender},
		{"assets", g.stageAssets},
		{"indexes", g.stageIndexes},
		{"redirects", g.stageRedirects},
	}

	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			g.recorder.IncBuildOutcome(metrics.OutcomeCanceled)
			return nil, err
		}
		stageStart := time.Now()
		if err := s.run(ctx, st); err != nil {
			g.recorder.IncBuildOutcome(metrics.OutcomeFailed)
			return nil, fmt.Errorf("stage %s: %w", s.name, err)
		}
		d := time.Since(stageStart)
		g.recorder.ObserveStageDuration(s.name, d)
		st.report.Stages = append(st.report.Stages, StageTiming{Name: s.name, Duration: d})
		slog.Debug("Stage complete", "stage", s.name, "duration", d)
	}

	st.report.Duration = time.Since(start)
	g.recorder.ObserveBuildDuration(st.report.Duration)
	g.recorder.IncBuildOutcome(metrics.OutcomeSuccess)
	g.recorder.AddPagesRendered(st.report.PagesRendered)
	g.recorder.AddPagesFromCache(st.report.PagesFromCache)

	slog.Info("Site built",
		"lectures", st.report.Lectures,
		"rendered", st.report.PagesRendered,
		"cached", st.report.PagesFromCache,
		"assets", st.report.Assets,
		"duration", st.report.Duration)
	return st.report, nil
}

// prepareCache flushes the render cache when anything besides lecture
// content changed.
func (g *Generator) prepareCache(ctx context.Context) error {
	if g.cache == nil {
		return nil
	}
	cfgBytes, err := yaml.Marshal(g.cfg)
	if err != nil {
		return fmt.Errorf("marshal config for cache signature: %w", err)
	}
	sig := cache.SiteSignature(cfgBytes, ThemeVersion, g.pipe.Names())
	return g.cache.EnsureSignature(ctx, sig)
}

func (g *Generator) stageDiscover(_ context.Context, st *buildState) error {
	d := lecture.NewDiscovery(g.cfg.Content.Directory, g.cfg.Build.Drafts)
	lectures, assets, err := d.Discover()
	if err != nil {
		return err
	}
	st.lectures = lectures
	st.assets = assets
	st.report.Lectures = len(lectures)
	return nil
}

func (g *Generator) stageTransform(_ context.Context, st *buildState) error {
	var resolver *gitmeta.Resolver
	if g.cfg.Build.LastModFromGit {
		var err error
		resolver, err = gitmeta.NewResolver(g.cfg.Content.Directory)
		if err != nil {
			// Building outside a repository is fine; lastmod falls back
			// to file timestamps.
			slog.Debug("git metadata unavailable", "error", err)
		}
	}
	tc := pipeline.NewContext(st.lectures, resolver)
	return g.pipe.Run(tc, st.lectures)
}

func (g *Generator) siteData() siteData {
	return siteData{
		Title:       g.cfg.Site.Title,
		Author:      g.cfg.Site.Author,
		Description: g.cfg.Site.Description,
		BaseURL:     g.cfg.Site.BaseURL,
	}
}

func (g *Generator) navItems(lectures []*lecture.Lecture) []navItem {
	nav := make([]navItem, len(lectures))
	for i, l := range lectures {
		nav[i] = navItem{Title: l.Title, URL: l.URL()}
	}
	return nav
}
