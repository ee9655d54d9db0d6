package site

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mvhagen/patternbook/internal/cache"
	"github.com/mvhagen/patternbook/internal/markdown"
)

// stagePrepare cleans (when configured) and recreates the output directory,
// then writes the theme stylesheet.
func (g *Generator) stagePrepare(_ context.Context, _ *buildState) error {
	out := g.cfg.Output.Directory
	if g.cfg.Output.Clean {
		if err := os.RemoveAll(out); err != nil {
			return fmt.Errorf("clean output directory: %w", err)
		}
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return writeFile(filepath.Join(out, "style.css"), g.theme.style)
}

// stageRender converts each lecture to HTML (or pulls it from the cache) and
// writes its page through the lecture template.
func (g *Generator) stageRender(ctx context.Context, st *buildState) error {
	nav := g.navItems(st.lectures)
	site := g.siteData()

	for i, l := range st.lectures {
		hash := cache.ContentHash(l.Body, []byte(l.Title))

		html, hit, err := g.cache.Get(ctx, l.Slug, hash)
		if err != nil {
			return err
		}
		if hit {
			st.report.PagesFromCache++
		} else {
			html, err = markdown.ToHTML(l.Body)
			if err != nil {
				return fmt.Errorf("render %s: %w", l.RelativePath, err)
			}
			if err := g.cache.Put(ctx, l.Slug, hash, html); err != nil {
				return err
			}
			st.report.PagesRendered++
		}

		data := pageData{
			Site:       site,
			PageTitle:  l.Title,
			CurrentURL: l.URL(),
			Nav:        nav,
			LiveReload: g.LiveReload,
			Pattern:    l.Pattern,
			Tags:       l.Tags,
			LastMod:    formatLastMod(l.LastMod),
			Content:    asHTML(html),
			TOC:        tocFromHeadings(markdown.ExtractHeadings(l.Body)),
		}
		if i > 0 {
			data.Prev = &nav[i-1]
		}
		if i < len(nav)-1 {
			data.Next = &nav[i+1]
		}

		var buf bytes.Buffer
		if err := g.theme.lecture.ExecuteTemplate(&buf, "base.html.tmpl", data); err != nil {
			return fmt.Errorf("execute lecture template for %s: %w", l.Slug, err)
		}
		if err := writeFile(filepath.Join(g.cfg.Output.Directory, l.OutputPath()), buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// stageAssets copies static assets through, preserving their relative paths.
func (g *Generator) stageAssets(_ context.Context, st *buildState) error {
	for _, a := range st.assets {
		data, err := os.ReadFile(a.Path)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", a.RelativePath, err)
		}
		if err := writeFile(filepath.Join(g.cfg.Output.Directory, a.RelativePath), data); err != nil {
			return err
		}
		st.report.Assets++
	}
	return nil
}

// stageIndexes writes the book's front page.
func (g *Generator) stageIndexes(_ context.Context, st *buildState) error {
	summaries := make([]lectureSummary, len(st.lectures))
	for i, l := range st.lectures {
		summaries[i] = lectureSummary{
			Title:   l.Title,
			URL:     l.URL(),
			Pattern: l.Pattern,
			Tags:    l.Tags,
			Excerpt: excerpt(l.Body, 240),
		}
	}

	data := pageData{
		Site:       g.siteData(),
		CurrentURL: "/",
		Nav:        g.navItems(st.lectures),
		LiveReload: g.LiveReload,
		Summaries:  summaries,
	}

	var buf bytes.Buffer
	if err := g.theme.index.ExecuteTemplate(&buf, "base.html.tmpl", data); err != nil {
		return fmt.Errorf("execute index template: %w", err)
	}
	return writeFile(filepath.Join(g.cfg.Output.Directory, "index.html"), buf.Bytes())
}

// stageRedirects writes a meta-refresh stub page for every configured
// redirect.
func (g *Generator) stageRedirects(_ context.Context, st *buildState) error {
	for _, r := range g.cfg.Redirects {
		rel := strings.Trim(r.From, "/")
		target := filepath.Join(g.cfg.Output.Directory, filepath.FromSlash(rel))
		if filepath.Ext(rel) == "" {
			target = filepath.Join(target, "index.html")
		}

		var buf bytes.Buffer
		if err := g.theme.redirect.ExecuteTemplate(&buf, "redirect.html.tmpl", redirectData{To: r.To}); err != nil {
			return fmt.Errorf("execute redirect template for %s: %w", r.From, err)
		}
		if err := writeFile(target, buf.Bytes()); err != nil {
			return err
		}
		st.report.Redirects++
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
