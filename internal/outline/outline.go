// Package outline derives the heading tree shown in the editor's metadata
// panel from a note's markdown content.
package outline

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is one entry in the outline, in document order.
type Heading struct {
	Level int
	Text  string
}

// Extract parses the content and returns its headings. Inline markup inside
// a heading is flattened to plain text.
func Extract(content string) []Heading {
	source := []byte(content)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var headings []Heading
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		headings = append(headings, Heading{
			Level: heading.Level,
			Text:  string(flatten(heading, source)),
		})
		return ast.WalkSkipChildren, nil
	})

	return headings
}

func flatten(n ast.Node, source []byte) []byte {
	var out []byte
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if txt, ok := child.(*ast.Text); ok {
			out = append(out, txt.Segment.Value(source)...)
			continue
		}
		out = append(out, flatten(child, source)...)
	}
	return out
}
