// Package dom provides the element tree produced by the HTML parser.
// A Tree is an arena of Nodes linked by index. It is immutable once built:
// every parse produces a new Tree.
package dom

// Tree is a rooted, ordered element tree.
type Tree struct {
	nodes []Node
}

// NewTree creates a tree holding only the root sentinel.
func NewTree() *Tree {
	return &Tree{
		nodes: []Node{{Tag: RootTag, Parent: NoParent}},
	}
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return &t.nodes[RootIndex]
}

// Len returns the number of nodes, root included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node at index idx, or nil if idx is out of range.
func (t *Tree) Node(idx int) *Node {
	if idx < 0 || idx >= len(t.nodes) {
		return nil
	}
	return &t.nodes[idx]
}

// Index returns the arena index of n, or -1 if n does not belong to t.
func (t *Tree) Index(n *Node) int {
	for i := range t.nodes {
		if &t.nodes[i] == n {
			return i
		}
	}
	return -1
}

// Parent returns the parent of n, or nil for the root.
func (t *Tree) Parent(n *Node) *Node {
	if n == nil || n.Parent == NoParent {
		return nil
	}
	return t.Node(n.Parent)
}

// Children returns the children of n in document order.
func (t *Tree) Children(n *Node) []*Node {
	if n == nil {
		return nil
	}
	children := make([]*Node, 0, len(n.Children))
	for _, idx := range n.Children {
		children = append(children, &t.nodes[idx])
	}
	return children
}

// FirstChild returns the first child of n, or nil.
func (t *Tree) FirstChild(n *Node) *Node {
	if n == nil || !n.HasChildren() {
		return nil
	}
	return &t.nodes[n.Children[0]]
}

// LastChild returns the last child of n, or nil.
func (t *Tree) LastChild(n *Node) *Node {
	if n == nil || !n.HasChildren() {
		return nil
	}
	return &t.nodes[n.Children[len(n.Children)-1]]
}

// Append adds node as the last child of the node at parent and returns
// its arena index. It is meant for tree construction only.
func (t *Tree) Append(parent int, node Node) int {
	idx := len(t.nodes)
	node.Parent = parent
	node.Children = nil
	t.nodes = append(t.nodes, node)
	t.nodes[parent].Children = append(t.nodes[parent].Children, idx)
	return idx
}

// CloseAt records the closing tag of the node at idx.
// It is meant for tree construction only.
func (t *Tree) CloseAt(idx int, endTag Span) {
	t.nodes[idx].End = endTag.Start
	t.nodes[idx].EndTag = endTag
}
