package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mvhagen/patternbook/internal/markdown"
)

// LinkRule flags relative link and image destinations that don't resolve to
// a file on disk.
type LinkRule struct{}

func (r *LinkRule) Name() string { return "broken-links" }

func (r *LinkRule) Check(f *File) []Issue {
	var issues []Issue
	for _, link := range markdown.ExtractLinks(f.Body) {
		dest := link.Destination
		if dest == "" || strings.HasPrefix(dest, "#") {
			continue
		}
		if strings.Contains(dest, "://") || strings.HasPrefix(dest, "mailto:") {
			continue
		}
		if strings.HasPrefix(dest, "/") {
			// Site-absolute URLs are checked post-build by linkcheck.
			continue
		}

		// Drop any fragment before hitting the filesystem.
		if i := strings.IndexByte(dest, '#'); i >= 0 {
			dest = dest[:i]
		}
		if dest == "" {
			continue
		}

		target := filepath.Join(filepath.Dir(f.Path), filepath.FromSlash(dest))
		if _, err := os.Stat(target); err != nil {
			issues = append(issues, Issue{
				FilePath: f.Path,
				Severity: SeverityError,
				Rule:     r.Name(),
				Message:  fmt.Sprintf("Broken relative link: %s", link.Destination),
				Fix:      "Fix the destination or remove the link",
			})
		}
	}
	return issues
}
