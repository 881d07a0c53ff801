package pretty

import (
	"strings"

	"github.com/yaklabco/breeze/pkg/dom"
)

// Tree guide segments.
const (
	guideBranch = "├── "
	guideLast   = "└── "
	guidePipe   = "│   "
	guideSpace  = "    "
)

// FormatTree renders a DOM tree with box-drawing guides, one element per
// line followed by its start position.
func (s *Styles) FormatTree(tree *dom.Tree) string {
	if tree == nil {
		return s.Dim.Render("no tree") + "\n"
	}

	var builder strings.Builder
	builder.WriteString(s.Dim.Render(dom.RootTag) + "\n")
	s.formatChildren(&builder, tree, tree.Root(), "")
	return builder.String()
}

func (s *Styles) formatChildren(builder *strings.Builder, tree *dom.Tree, node *dom.Node, prefix string) {
	children := tree.Children(node)
	for i, child := range children {
		last := i == len(children)-1

		guide, next := guideBranch, guidePipe
		if last {
			guide, next = guideLast, guideSpace
		}

		builder.WriteString(s.Guide.Render(prefix+guide) + s.formatNode(child) + "\n")
		s.formatChildren(builder, tree, child, prefix+next)
	}
}

func (s *Styles) formatNode(n *dom.Node) string {
	label := s.Tag.Render(n.Tag) + " " + s.Position.Render(n.Start.String())
	switch {
	case n.SelfClosing:
		label += s.Dim.Render(" (void)")
	case !n.HasEndTag():
		label += s.Warning.Render(" (unclosed)")
	default:
		label += s.Position.Render("-" + n.End.String())
	}
	return label
}
