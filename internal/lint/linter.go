package lint

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mvhagen/patternbook/internal/frontmatter"
)

// Config controls linter behavior.
type Config struct {
	Quiet  bool   // suppress warnings, only show errors
	Format string // "text" or "json"
	Fix    bool   // apply automatic fixes
	DryRun bool   // report fixes without writing
}

// Linter runs all rules over lecture files.
type Linter struct {
	cfg   *Config
	rules []Rule
}

// NewLinter creates a linter with the standard rule set.
func NewLinter(cfg *Config) *Linter {
	if cfg == nil {
		cfg = &Config{Format: "text"}
	}
	return &Linter{
		cfg: cfg,
		rules: []Rule{
			&FrontmatterRule{},
			&UIDRule{},
			&FilenameRule{},
			&LinkRule{},
			&CodeFenceRule{},
		},
	}
}

// LintPath lints a single file or every lecture under a directory.
func (l *Linter) LintPath(path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	result := &Result{Issues: []Issue{}}
	if !info.IsDir() {
		if err := l.lintFile(path, result); err != nil {
			return nil, err
		}
		result.FilesTotal = 1
		return result, nil
	}

	walkErr := filepath.WalkDir(path, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			name := entry.Name()
			if p != path && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !isLectureFile(entry.Name()) {
			return nil
		}
		result.FilesTotal++
		return l.lintFile(p, result)
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return result, nil
}

func (l *Linter) lintFile(path string, result *Result) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	f := &File{Path: path}
	fm, body, had, _, splitErr := frontmatter.Split(content)
	switch {
	case splitErr != nil:
		f.FMErr = splitErr
		f.Body = content
	case had:
		fields, parseErr := frontmatter.Parse(fm)
		if parseErr != nil {
			f.FMErr = parseErr
		} else {
			f.Fields = fields
		}
		f.Body = body
	default:
		f.Body = body
	}

	for _, rule := range l.rules {
		for _, issue := range rule.Check(f) {
			if l.cfg.Quiet && issue.Severity < SeverityError {
				continue
			}
			result.Issues = append(result.Issues, issue)
		}
	}
	return nil
}

func isLectureFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	switch strings.ToLower(name) {
	case "readme.md", "license.md", "contributing.md":
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".markdown"
}
