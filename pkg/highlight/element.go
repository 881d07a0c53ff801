package highlight

import "github.com/yaklabco/breeze/pkg/dom"

// Element returns the regions covering the whole element, like Vim's "vat".
//
// A multi-line element yields the first line from '<' onward, the lines in
// between (if any) and the last line through the closing '>'. A single-line
// element yields one region. An element without a closing tag yields only
// its opening tag.
func Element(node *dom.Node) []Region {
	if node == nil {
		return nil
	}
	if !node.HasEndTag() {
		return span(node.StartTag.Start, node.StartTag.End)
	}
	return span(node.Start, node.EndTag.End)
}

// Tags returns the regions of the element's tag labels: the name in the
// opening tag and "/name" in the closing tag. Elements without a closing
// tag yield only the first.
func Tags(node *dom.Node) []Region {
	if node == nil {
		return nil
	}

	name := len(node.Tag)
	regions := []Region{
		Columns(node.Start.Line, node.Start.Column+1, node.Start.Column+name),
	}
	if node.HasEndTag() {
		end := node.EndTag.Start
		regions = append(regions, Columns(end.Line, end.Column+1, end.Column+name+1))
	}
	return regions
}

func span(from, to dom.Position) []Region {
	if from.Line == to.Line {
		return []Region{Columns(from.Line, from.Column, to.Column)}
	}

	regions := []Region{Tail(from.Line, from.Column)}
	if to.Line-from.Line > 1 {
		regions = append(regions, Lines(from.Line+1, to.Line-1))
	}
	return append(regions, Head(to.Line, to.Column))
}
