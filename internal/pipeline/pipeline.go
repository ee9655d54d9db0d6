// Package pipeline applies an ordered set of named transforms to discovered
// lectures before rendering.
package pipeline

import (
	"fmt"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/mvhagen/patternbook/internal/gitmeta"
	"github.com/mvhagen/patternbook/internal/lecture"
)

// Transform is a single named rewrite step over one lecture.
type Transform struct {
	Name string
	Fn   func(tc *Context, l *lecture.Lecture) error
}

// Context carries cross-lecture state the transforms need.
type Context struct {
	Resolver  *gitmeta.Resolver // nil disables git-derived metadata
	slugByRef map[string]string // source reference ("proxy.md", "a/b.md") -> slug
}

// NewContext indexes the lecture set for link rewriting.
func NewContext(lectures []*lecture.Lecture, resolver *gitmeta.Resolver) *Context {
	refs := make(map[string]string, len(lectures)*2)
	for _, l := range lectures {
		refs[filepath.ToSlash(l.RelativePath)] = l.Slug
		refs[path.Base(filepath.ToSlash(l.RelativePath))] = l.Slug
	}
	return &Context{Resolver: resolver, slugByRef: refs}
}

// SlugFor resolves a relative markdown reference to a lecture slug.
func (tc *Context) SlugFor(ref string) (string, bool) {
	slug, ok := tc.slugByRef[path.Clean(ref)]
	return slug, ok
}

// Pipeline is an ordered transform chain.
type Pipeline struct {
	transforms []Transform
}

// Default builds the standard lecture pipeline.
func Default() *Pipeline {
	return &Pipeline{transforms: []Transform{
		{Name: "strip-heading", Fn: stripHeading},
		{Name: "ensure-uid", Fn: ensureUID},
		{Name: "lastmod", Fn: lastMod},
		{Name: "rewrite-links", Fn: rewriteLinks},
	}}
}

// Names returns the transform names in execution order. Used for the cache
// signature.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.transforms))
	for i, t := range p.transforms {
		names[i] = t.Name
	}
	return names
}

// Run applies every transform to every lecture, in order.
func (p *Pipeline) Run(tc *Context, lectures []*lecture.Lecture) error {
	for _, t := range p.transforms {
		for _, l := range lectures {
			if err := t.Fn(tc, l); err != nil {
				return fmt.Errorf("transform %s on %s: %w", t.Name, l.RelativePath, err)
			}
		}
		slog.Debug("Transform applied", "name", t.Name, "lectures", len(lectures))
	}
	return nil
}
