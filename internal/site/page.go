package site

import (
	"html/template"
	"regexp"
	"strings"
	"time"

	"github.com/mvhagen/patternbook/internal/markdown"
)

// siteData is the site-wide metadata available to every template.
type siteData struct {
	Title       string
	Author      string
	Description string
	BaseURL     string
}

// navItem is one sidebar entry.
type navItem struct {
	Title string
	URL   string
}

// tocEntry is one entry of a page's table of contents (h2 and h3 only; the
// page title already covers h1).
type tocEntry struct {
	Level int
	Text  string
	ID    string
}

// pageData is the data model handed to the lecture and index templates.
type pageData struct {
	Site       siteData
	PageTitle  string
	CurrentURL string
	Nav        []navItem
	LiveReload bool

	// Lecture pages.
	Pattern string
	Tags    []string
	LastMod string
	Content template.HTML
	TOC     []tocEntry
	Prev    *navItem
	Next    *navItem

	// Index page.
	Summaries []lectureSummary
}

// lectureSummary is one row of the generated index page.
type lectureSummary struct {
	Title   string
	URL     string
	Pattern string
	Tags    []string
	Excerpt string
}

// redirectData drives the meta-refresh stub pages.
type redirectData struct {
	To string
}

// asHTML marks renderer output as safe. Goldmark output is trusted here the
// same way the rest of the lecture body is: authors write the content.
func asHTML(b []byte) template.HTML {
	return template.HTML(b)
}

func tocFromHeadings(hs []markdown.Heading) []tocEntry {
	toc := make([]tocEntry, 0, len(hs))
	for _, h := range hs {
		if h.Level < 2 || h.Level > 3 {
			continue
		}
		toc = append(toc, tocEntry{Level: h.Level, Text: h.Text, ID: h.ID})
	}
	return toc
}

func formatLastMod(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

var (
	mdLink     = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)
	mdEmphasis = regexp.MustCompile("[*_`]+")
)

// excerpt extracts the first paragraph of a markdown body as plain text,
// capped to keep index rows short.
func excerpt(body []byte, limit int) string {
	var para []string
	for _, line := range strings.Split(string(body), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(para) > 0 {
				break
			}
			continue
		}
		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "```") ||
			strings.HasPrefix(trimmed, ">") || strings.HasPrefix(trimmed, "---") {
			if len(para) > 0 {
				break
			}
			continue
		}
		para = append(para, trimmed)
	}

	text := strings.Join(para, " ")
	text = mdLink.ReplaceAllString(text, "$1")
	text = mdEmphasis.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)
	if len(text) > limit {
		cut := strings.LastIndex(text[:limit], " ")
		if cut <= 0 {
			cut = limit
		}
		text = text[:cut] + "…"
	}
	return text
}
