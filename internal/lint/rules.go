package lint

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// Rule checks one lecture file for issues.
type Rule interface {
	// Name returns the rule identifier.
	Name() string
	// Check inspects the file and returns any issues found.
	Check(f *File) []Issue
}

// File is a lecture source handed to rules, parsed once by the linter.
type File struct {
	Path   string
	Fields map[string]any // nil when the file has no frontmatter
	Body   []byte
	FMErr  error // frontmatter parse failure, checked by FrontmatterRule
}

// FilenameRule validates that lecture filenames keep URLs predictable.
type FilenameRule struct{}

func (r *FilenameRule) Name() string { return "filename-conventions" }

func (r *FilenameRule) Check(f *File) []Issue {
	name := filepath.Base(f.Path)
	var issues []Issue

	if strings.ContainsAny(name, " ") {
		issues = append(issues, Issue{
			FilePath: f.Path,
			Severity: SeverityError,
			Rule:     r.Name(),
			Message:  "Filename contains spaces",
			Fix:      "Rename using hyphens, e.g. \"factory method.md\" -> \"factory-method.md\"",
		})
	}

	for _, ch := range name {
		if unicode.IsUpper(ch) {
			issues = append(issues, Issue{
				FilePath: f.Path,
				Severity: SeverityWarning,
				Rule:     r.Name(),
				Message:  "Filename contains uppercase characters",
				Explanation: "Slugs are lowercased, so mixed-case names make the " +
					"source file and its URL diverge.",
				Fix: "Rename to all-lowercase",
			})
			break
		}
	}

	return issues
}

var fenceOpen = regexp.MustCompile("(?m)^```(.*)$")

// CodeFenceRule wants every fenced block to declare a language so the
// published site gets syntax classes.
type CodeFenceRule struct{}

func (r *CodeFenceRule) Name() string { return "code-fence-language" }

func (r *CodeFenceRule) Check(f *File) []Issue {
	var issues []Issue
	inFence := false
	for _, m := range fenceOpen.FindAllSubmatch(f.Body, -1) {
		if inFence {
			inFence = false // closing fence
			continue
		}
		inFence = true
		if strings.TrimSpace(string(m[1])) == "" {
			issues = append(issues, Issue{
				FilePath: f.Path,
				Severity: SeverityWarning,
				Rule:     r.Name(),
				Message:  "Fenced code block without a language",
				Fix:      "Add a language to the opening fence, e.g. ```go",
			})
		}
	}
	return issues
}
