package lint

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mvhagen/patternbook/internal/frontmatter"
)

// FixResult summarizes what a fix pass did.
type FixResult struct {
	UIDsInserted []string // file paths that received a uid
}

// FixUIDs inserts a uid into every lecture under path that has frontmatter
// but no uid. The rewrite preserves the file's newline style; other fields
// are re-serialized with sorted keys.
func (l *Linter) FixUIDs(path string) (*FixResult, error) {
	res := &FixResult{}

	result, err := l.LintPath(path)
	if err != nil {
		return nil, err
	}

	fixable := map[string]struct{}{}
	for _, issue := range result.Issues {
		if issue.Rule == (&UIDRule{}).Name() && issue.Severity == SeverityWarning {
			fixable[issue.FilePath] = struct{}{}
		}
	}

	for file := range fixable {
		if l.cfg.DryRun {
			res.UIDsInserted = append(res.UIDsInserted, file)
			continue
		}
		if err := insertUID(file); err != nil {
			return nil, fmt.Errorf("fix uid in %s: %w", file, err)
		}
		res.UIDsInserted = append(res.UIDsInserted, file)
		slog.Info("Inserted uid", "file", file)
	}
	return res, nil
}

func insertUID(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	fm, body, had, style, err := frontmatter.Split(content)
	if err != nil {
		return err
	}
	fields, err := frontmatter.Parse(fm)
	if err != nil {
		return err
	}

	if _, changed, err := frontmatter.EnsureUID(fields); err != nil {
		return err
	} else if !changed {
		return nil
	}

	newFM, err := frontmatter.Serialize(fields, style)
	if err != nil {
		return err
	}
	return os.WriteFile(path, frontmatter.Join(newFM, body, had, style), 0o644)
}
