package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/mvhagen/patternbook/internal/lint"
)

// LintCmd implements the 'lint' command.
type LintCmd struct {
	Path   string `arg:"" optional:"" help:"Path to lint (defaults to the configured content directory)"`
	Format string `short:"f" default:"text" enum:"text,json" help:"Output format (text or json)"`
	Quiet  bool   `short:"q" help:"Only show errors, suppress warnings"`
	Fix    bool   `help:"Insert missing uids automatically"`
	DryRun bool   `help:"Show what --fix would change without writing"`
}

// Run executes the lint command. A non-zero exit signals error-level issues.
func (l *LintCmd) Run(_ *Global, root *CLI) error {
	if l.DryRun && !l.Fix {
		return errors.New("--dry-run requires --fix")
	}

	path := l.Path
	if path == "" {
		cfg, err := loadConfig(root)
		if err != nil {
			return err
		}
		path = cfg.Content.Directory
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("path does not exist: %s", path)
	}

	linter := lint.NewLinter(&lint.Config{
		Quiet:  l.Quiet,
		Format: l.Format,
		Fix:    l.Fix,
		DryRun: l.DryRun,
	})

	if l.Fix {
		res, err := linter.FixUIDs(path)
		if err != nil {
			return err
		}
		for _, f := range res.UIDsInserted {
			if l.DryRun {
				fmt.Printf("would insert uid: %s\n", f)
			} else {
				fmt.Printf("inserted uid: %s\n", f)
			}
		}
	}

	result, err := linter.LintPath(path)
	if err != nil {
		return err
	}
	if err := lint.Format(os.Stdout, result, l.Format); err != nil {
		return err
	}
	if result.HasErrors() {
		return fmt.Errorf("lint found %d errors", result.Count(lint.SeverityError))
	}
	return nil
}
