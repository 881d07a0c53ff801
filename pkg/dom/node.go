package dom

// RootTag is the sentinel tag name of the synthetic root node.
const RootTag = "root"

// NoParent is the parent index of the root node.
const NoParent = -1

// RootIndex is the arena index of the root node.
const RootIndex = 0

// Node is one HTML element, or the synthetic root.
// Nodes live in a Tree arena and refer to each other by index.
type Node struct {
	// Tag is the lower-cased element name.
	Tag string

	// Start is the position of the opening tag's '<'.
	Start Position

	// End is the position of the closing tag's '<', or Start when the
	// element has no closing tag (void, self-closing or unterminated).
	End Position

	// StartTagText is the literal source of the opening tag.
	StartTagText string

	// StartTag spans the opening tag from '<' to '>'.
	StartTag Span

	// EndTag spans the closing tag. It is zero when there is none.
	EndTag Span

	// SelfClosing is set for "/>" tags and void elements.
	SelfClosing bool

	// Parent is the arena index of the parent, NoParent for the root.
	Parent int

	// Children are arena indices in document order.
	Children []int
}

// IsRoot returns true for the synthetic root.
func (n *Node) IsRoot() bool {
	return n.Parent == NoParent
}

// HasEndTag returns true if a closing tag was matched for this element.
func (n *Node) HasEndTag() bool {
	return !n.EndTag.IsZero()
}

// HasChildren returns true if the node has any children.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// Extent returns the last source position covered by the element:
// the closing tag's '>' when present, otherwise the opening tag's '>'.
func (n *Node) Extent() Position {
	if n.HasEndTag() {
		return n.EndTag.End
	}
	return n.StartTag.End
}

// Contains returns true if pos lies between Start and Extent inclusive.
func (n *Node) Contains(pos Position) bool {
	if n.IsRoot() {
		return false
	}
	return n.Start.Compare(pos) <= 0 && pos.Compare(n.Extent()) <= 0
}

// SameSpan compares two nodes by their (Start, End) pair.
func (n *Node) SameSpan(other *Node) bool {
	return n.Start == other.Start && n.End == other.End
}
