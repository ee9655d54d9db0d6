package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mvhagen/patternbook/internal/cache"
	"github.com/mvhagen/patternbook/internal/linkcheck"
	"github.com/mvhagen/patternbook/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output  string `short:"o" help:"Output directory, overrides the configured one"`
	Drafts  bool   `help:"Include lectures marked draft"`
	NoCache bool   `help:"Bypass the render cache"`
	Verify  bool   `help:"Verify internal links in the rendered output"`
}

// Run executes the build command.
func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if b.Output != "" {
		cfg.Output.Directory = b.Output
	}
	if b.Drafts {
		cfg.Build.Drafts = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []site.Option
	if !b.NoCache && cfg.Build.CachePath != "" {
		c, err := cache.Open(cfg.Build.CachePath)
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()
		opts = append(opts, site.WithCache(c))
	}

	g, err := site.NewGenerator(cfg, opts...)
	if err != nil {
		return err
	}
	report, err := g.Build(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Built %d lectures (%d rendered, %d from cache) in %s\n",
		report.Lectures, report.PagesRendered, report.PagesFromCache, report.Duration.Round(time.Millisecond))

	if b.Verify {
		issues, err := linkcheck.VerifyDir(cfg.Output.Directory)
		if err != nil {
			return err
		}
		for _, issue := range issues {
			slog.Error("Broken internal link", "page", issue.Page, "destination", issue.Destination)
		}
		if len(issues) > 0 {
			return fmt.Errorf("%d broken internal links", len(issues))
		}
		fmt.Println("All internal links verified")
	}
	return nil
}
