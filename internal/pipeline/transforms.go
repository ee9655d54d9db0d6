package pipeline

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/mvhagen/patternbook/internal/frontmatter"
	"github.com/mvhagen/patternbook/internal/lecture"
)

var (
	leadingH1  = regexp.MustCompile(`\A\s*#\s+(.+)\r?\n`)
	inlineLink = regexp.MustCompile(`(!?)\[([^\]]*)\]\(([^)\s]+\.(?:md|markdown))(#[^)]*)?\)`)
)

// stripHeading drops a leading H1 that duplicates the lecture title; the
// layout renders the title itself.
func stripHeading(_ *Context, l *lecture.Lecture) error {
	m := leadingH1.FindSubmatch(l.Body)
	if m == nil {
		return nil
	}
	if !strings.EqualFold(strings.TrimSpace(string(m[1])), strings.TrimSpace(l.Title)) {
		return nil
	}
	l.Body = bytes.TrimLeft(l.Body[len(m[0]):], "\r\n")
	return nil
}

// ensureUID assigns an in-memory uid to lectures missing one. The source
// file is only rewritten by `lint --fix`, never by a build.
func ensureUID(_ *Context, l *lecture.Lecture) error {
	if l.UID != "" {
		return nil
	}
	uid, _, err := frontmatter.EnsureUID(l.Fields)
	if err != nil {
		return err
	}
	l.UID = uid
	return nil
}

// lastMod stamps the lecture with its git last-modified time unless the
// frontmatter already pins one.
func lastMod(tc *Context, l *lecture.Lecture) error {
	if !l.LastMod.IsZero() {
		return nil
	}
	l.LastMod = tc.Resolver.LastModified(l.Path)
	return nil
}

// rewriteLinks turns relative markdown links between lectures into their
// published URLs. Unresolvable references are left untouched for lint to
// report.
func rewriteLinks(tc *Context, l *lecture.Lecture) error {
	l.Body = inlineLink.ReplaceAllFunc(l.Body, func(match []byte) []byte {
		parts := inlineLink.FindSubmatch(match)
		bang, text, dest, frag := parts[1], parts[2], string(parts[3]), parts[4]
		if len(bang) > 0 {
			return match // image, not a page link
		}
		if strings.Contains(dest, "://") {
			return match
		}
		slug, ok := tc.SlugFor(dest)
		if !ok {
			return match
		}
		var out bytes.Buffer
		out.WriteByte('[')
		out.Write(text)
		out.WriteString("](/")
		out.WriteString(slug)
		out.WriteByte('/')
		out.Write(frag)
		out.WriteByte(')')
		return out.Bytes()
	})
	return nil
}
