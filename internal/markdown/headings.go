package markdown

import (
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Heading is a heading extracted from a markdown body, with the anchor ID the
// renderer will assign to it.
type Heading struct {
	Level int
	Text  string
	ID    string
}

// ExtractHeadings collects the headings of a markdown body in document order.
// IDs match the auto heading IDs emitted by ToHTML.
func ExtractHeadings(body []byte) []Heading {
	md := goldmark.New(goldmark.WithParserOptions(parser.WithAutoHeadingID()))
	root := md.Parser().Parse(text.NewReader(body))

	headings := make([]Heading, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}

		var id string
		if v, found := h.AttributeString("id"); found {
			if b, ok := v.([]byte); ok {
				id = string(b)
			}
		}
		headings = append(headings, Heading{
			Level: h.Level,
			Text:  string(h.Text(body)),
			ID:    id,
		})
		return gmast.WalkSkipChildren, nil
	})
	return headings
}
