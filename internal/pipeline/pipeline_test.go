package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvhagen/patternbook/internal/frontmatter"
	"github.com/mvhagen/patternbook/internal/lecture"
)

func newLecture(rel, slug, title, body string) *lecture.Lecture {
	return &lecture.Lecture{
		RelativePath: rel,
		Slug:         slug,
		Title:        title,
		Body:         []byte(body),
		Fields:       map[string]any{},
	}
}

func TestStripHeading_RemovesDuplicateH1(t *testing.T) {
	l := newLecture("proxy.md", "proxy", "Proxy", "# Proxy\n\nA stand-in object.\n")

	require.NoError(t, stripHeading(nil, l))
	require.Equal(t, "A stand-in object.\n", string(l.Body))
}

func TestStripHeading_KeepsNonMatchingH1(t *testing.T) {
	l := newLecture("proxy.md", "proxy", "Proxy", "# Something Else\n\nbody\n")

	require.NoError(t, stripHeading(nil, l))
	require.Equal(t, "# Something Else\n\nbody\n", string(l.Body))
}

func TestEnsureUID_AssignsWhenMissingOnly(t *testing.T) {
	l := newLecture("proxy.md", "proxy", "Proxy", "body")

	require.NoError(t, ensureUID(nil, l))
	require.True(t, frontmatter.ValidUID(l.UID))

	prev := l.UID
	require.NoError(t, ensureUID(nil, l))
	require.Equal(t, prev, l.UID)
}

func TestRewriteLinks_ResolvesLectureReferences(t *testing.T) {
	lectures := []*lecture.Lecture{
		newLecture("proxy.md", "proxy", "Proxy", ""),
		newLecture("structural/composite.md", "composite", "Composite", ""),
	}
	tc := NewContext(lectures, nil)

	l := newLecture("decorator.md", "decorator", "Decorator",
		"See [Proxy](proxy.md) and [Composite](structural/composite.md#intent).\n"+
			"External: [CommonMark](https://commonmark.org/spec.md) stays.\n"+
			"![diagram](img/decorator.md.png) stays too.\n"+
			"[Unknown](missing.md) stays for lint.\n")

	require.NoError(t, rewriteLinks(tc, l))
	body := string(l.Body)
	require.Contains(t, body, "[Proxy](/proxy/)")
	require.Contains(t, body, "[Composite](/composite/#intent)")
	require.Contains(t, body, "https://commonmark.org/spec.md")
	require.Contains(t, body, "[Unknown](missing.md)")
}

func TestRun_AppliesTransformsInOrder(t *testing.T) {
	lectures := []*lecture.Lecture{
		newLecture("singleton.md", "singleton", "Singleton", "# Singleton\n\nOne instance, [observer](observer.md).\n"),
		newLecture("observer.md", "observer", "Observer", "# Observer\n\nPublish, subscribe.\n"),
	}
	tc := NewContext(lectures, nil)

	p := Default()
	require.Equal(t, []string{"strip-heading", "ensure-uid", "lastmod", "rewrite-links"}, p.Names())
	require.NoError(t, p.Run(tc, lectures))

	require.Equal(t, "One instance, [observer](/observer/).\n", string(lectures[0].Body))
	require.NotEmpty(t, lectures[0].UID)
}
