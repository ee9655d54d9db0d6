// Package lecture models the lecture corpus: one markdown file per design
// pattern, plus the static assets referenced by them.
package lecture

import (
	"fmt"
	"strings"
	"time"

	"github.com/mvhagen/patternbook/internal/frontmatter"
)

// Lecture is a discovered lecture source with parsed frontmatter.
type Lecture struct {
	Path         string // absolute source path
	RelativePath string // path relative to the content directory
	Name         string // file name without extension
	Slug         string // URL slug, from frontmatter or the file name
	Title        string
	Pattern      string // pattern name, e.g. "Factory Method"
	Weight       int    // ordering within the book, lower first
	Tags         []string
	UID          string
	Draft        bool
	LastMod      time.Time
	Fields       map[string]any // full frontmatter map
	Body         []byte         // markdown body, frontmatter stripped
	Style        frontmatter.Style
	HadFM        bool
}

// Asset is a non-markdown file (image, diagram) copied through verbatim.
type Asset struct {
	Path         string
	RelativePath string
}

// URL returns the site-relative URL of the lecture's rendered page.
func (l *Lecture) URL() string {
	return "/" + l.Slug + "/"
}

// OutputPath returns the path of the rendered page relative to the output
// directory. Pretty URLs: every lecture becomes <slug>/index.html.
func (l *Lecture) OutputPath() string {
	return l.Slug + "/index.html"
}

func (l *Lecture) applyFields() error {
	if v, ok := l.Fields["title"]; ok {
		l.Title = strings.TrimSpace(fmt.Sprint(v))
	}
	if v, ok := l.Fields["pattern"]; ok {
		l.Pattern = strings.TrimSpace(fmt.Sprint(v))
	}
	if v, ok := l.Fields["slug"]; ok {
		l.Slug = strings.TrimSpace(fmt.Sprint(v))
	}
	if v, ok := l.Fields["uid"]; ok {
		l.UID = strings.TrimSpace(fmt.Sprint(v))
	}
	if v, ok := l.Fields["draft"]; ok {
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("draft must be a boolean, got %T", v)
		}
		l.Draft = b
	}
	if v, ok := l.Fields["weight"]; ok {
		switch n := v.(type) {
		case int:
			l.Weight = n
		case float64:
			l.Weight = int(n)
		default:
			return fmt.Errorf("weight must be a number, got %T", v)
		}
	}
	if v, ok := l.Fields["lastmod"]; ok {
		t, ok := v.(time.Time)
		if !ok {
			return fmt.Errorf("lastmod must be a date, got %T", v)
		}
		l.LastMod = t
	}
	if v, ok := l.Fields["tags"]; ok {
		items, ok := v.([]any)
		if !ok {
			return fmt.Errorf("tags must be a list, got %T", v)
		}
		for _, item := range items {
			l.Tags = append(l.Tags, fmt.Sprint(item))
		}
	}
	return nil
}
