// Package commands defines the patternbook CLI.
package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/mvhagen/patternbook/internal/config"
)

// Global carries state shared across subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI is the root command definition and global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"patternbook.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" help:"Build the lecture book into a static site"`
	Init  InitCmd  `cmd:"" help:"Write a starter configuration file"`
	New   NewCmd   `cmd:"" help:"Scaffold a new lecture"`
	Lint  LintCmd  `cmd:"" help:"Lint lecture sources"`
	Serve ServeCmd `cmd:"" help:"Serve the site locally with live reload"`
}

// AfterApply runs after flag parsing; sets up logging once.
//
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

func loadConfig(root *CLI) (*config.Config, error) {
	return config.Load(root.Config)
}
