package lecture

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/mvhagen/patternbook/internal/frontmatter"
)

var firstH1 = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// Discovery walks a content directory and classifies its files.
type Discovery struct {
	contentDir    string
	includeDrafts bool
}

// NewDiscovery creates a discovery rooted at contentDir.
func NewDiscovery(contentDir string, includeDrafts bool) *Discovery {
	return &Discovery{contentDir: contentDir, includeDrafts: includeDrafts}
}

// Discover finds all lectures and assets under the content directory.
// Lectures are returned sorted by weight, then title.
func (d *Discovery) Discover() ([]*Lecture, []Asset, error) {
	absDir, err := filepath.Abs(d.contentDir)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve content dir: %w", err)
	}
	if st, err := os.Stat(absDir); err != nil || !st.IsDir() {
		return nil, nil, fmt.Errorf("content directory not found: %s", absDir)
	}

	var lectures []*Lecture
	var assets []Asset

	walkErr := filepath.WalkDir(absDir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := entry.Name()
		if entry.IsDir() {
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if isIgnoredFile(name) {
			return nil
		}

		rel, err := filepath.Rel(absDir, path)
		if err != nil {
			return err
		}

		if isMarkdownFile(name) {
			lec, err := d.loadLecture(path, rel)
			if err != nil {
				return fmt.Errorf("load lecture %s: %w", rel, err)
			}
			if lec.Draft && !d.includeDrafts {
				slog.Debug("Skipping draft lecture", "path", rel)
				return nil
			}
			lectures = append(lectures, lec)
			return nil
		}

		if isAssetFile(name) {
			assets = append(assets, Asset{Path: path, RelativePath: rel})
			return nil
		}

		slog.Debug("Ignoring unsupported file", "path", rel)
		return nil
	})
	if walkErr != nil {
		return nil, nil, walkErr
	}

	sort.SliceStable(lectures, func(i, j int) bool {
		if lectures[i].Weight != lectures[j].Weight {
			return lectures[i].Weight < lectures[j].Weight
		}
		return lectures[i].Title < lectures[j].Title
	})

	if err := checkSlugs(lectures); err != nil {
		return nil, nil, err
	}

	slog.Debug("Discovery complete", "lectures", len(lectures), "assets", len(assets))
	return lectures, assets, nil
}

func (d *Discovery) loadLecture(path, rel string) (*Lecture, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fm, body, had, style, err := frontmatter.Split(content)
	if err != nil {
		return nil, err
	}
	fields, err := frontmatter.Parse(fm)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	lec := &Lecture{
		Path:         path,
		RelativePath: rel,
		Name:         name,
		Fields:       fields,
		Body:         body,
		Style:        style,
		HadFM:        had,
	}
	if err := lec.applyFields(); err != nil {
		return nil, err
	}

	// A lecture without an explicit title takes it from the leading H1,
	// falling back to a title-cased file name.
	if lec.Title == "" {
		if m := firstH1.FindSubmatch(body); m != nil {
			lec.Title = strings.TrimSpace(string(m[1]))
		} else {
			lec.Title = titleFromName(name)
		}
	}
	if lec.Slug == "" {
		lec.Slug = Slugify(name)
	}
	if lec.Slug == "" {
		return nil, fmt.Errorf("lecture %s produces an empty slug", rel)
	}
	return lec, nil
}

func checkSlugs(lectures []*Lecture) error {
	seen := make(map[string]string, len(lectures))
	for _, lec := range lectures {
		if other, dup := seen[lec.Slug]; dup {
			return fmt.Errorf("duplicate slug %q: %s and %s", lec.Slug, other, lec.RelativePath)
		}
		seen[lec.Slug] = lec.RelativePath
	}
	return nil
}

func titleFromName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func isMarkdownFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".markdown"
}

func isAssetFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".css", ".js", ".ico":
		return true
	}
	return false
}

func isIgnoredFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	switch strings.ToLower(name) {
	case "readme.md", "license.md", "contributing.md":
		return true
	}
	return false
}
