package lint

import (
	"fmt"
	"strings"

	"github.com/mvhagen/patternbook/internal/frontmatter"
)

// FrontmatterRule requires a parseable frontmatter block with a title.
type FrontmatterRule struct{}

func (r *FrontmatterRule) Name() string { return "frontmatter" }

func (r *FrontmatterRule) Check(f *File) []Issue {
	if f.FMErr != nil {
		return []Issue{{
			FilePath: f.Path,
			Severity: SeverityError,
			Rule:     r.Name(),
			Message:  "Malformed frontmatter: " + f.FMErr.Error(),
			Fix:      "Close the frontmatter block with a --- line",
		}}
	}
	if f.Fields == nil {
		return []Issue{{
			FilePath: f.Path,
			Severity: SeverityWarning,
			Rule:     r.Name(),
			Message:  "Lecture has no frontmatter",
			Explanation: "The title is derived from the first heading and the " +
				"lecture sorts by title only, which makes book ordering fragile.",
			Fix: "Add a frontmatter block with title and weight",
		}}
	}

	var issues []Issue
	if v, ok := f.Fields["title"]; !ok || strings.TrimSpace(fmt.Sprint(v)) == "" {
		issues = append(issues, Issue{
			FilePath: f.Path,
			Severity: SeverityWarning,
			Rule:     r.Name(),
			Message:  "Frontmatter is missing a title",
		})
	}
	return issues
}

// UIDRule wants every lecture to carry a stable uid so redirects and
// cross-references survive renames.
type UIDRule struct{}

func (r *UIDRule) Name() string { return "frontmatter-uid" }

func (r *UIDRule) Check(f *File) []Issue {
	if f.Fields == nil {
		return nil // FrontmatterRule already flags this
	}

	v, ok := f.Fields["uid"]
	if !ok {
		return []Issue{{
			FilePath: f.Path,
			Severity: SeverityWarning,
			Rule:     r.Name(),
			Message:  "Lecture has no uid",
			Fix:      "Run lint --fix to insert one",
		}}
	}
	if !frontmatter.ValidUID(fmt.Sprint(v)) {
		return []Issue{{
			FilePath: f.Path,
			Severity: SeverityError,
			Rule:     r.Name(),
			Message:  fmt.Sprintf("uid %q is not a valid UUID", v),
		}}
	}
	return nil
}
