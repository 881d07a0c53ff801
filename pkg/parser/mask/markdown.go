// Package mask hides regions of a buffer from the HTML scanner without
// moving anything: masked bytes become spaces and newlines stay put, so
// every line keeps its length and every tag keeps its position.
package mask

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Markdown blanks code blocks and code spans in Markdown lines so literal
// markup inside them is not parsed as tags. Raw HTML is left untouched.
func Markdown(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}

	src := []byte(strings.Join(lines, "\n"))
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	//nolint:errcheck // the walker never returns an error
	ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			segments := n.Lines()
			for i := range segments.Len() {
				seg := segments.At(i)
				blank(src, seg.Start, seg.Stop)
			}
			return ast.WalkSkipChildren, nil

		case *ast.CodeSpan:
			for child := n.FirstChild(); child != nil; child = child.NextSibling() {
				if t, ok := child.(*ast.Text); ok {
					blank(src, t.Segment.Start, t.Segment.Stop)
				}
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return strings.Split(string(src), "\n")
}

// blank replaces src[start:stop] with spaces, keeping line breaks.
func blank(src []byte, start, stop int) {
	if start < 0 {
		start = 0
	}
	if stop > len(src) {
		stop = len(src)
	}
	for i := start; i < stop; i++ {
		if src[i] != '\n' && src[i] != '\r' {
			src[i] = ' '
		}
	}
}
