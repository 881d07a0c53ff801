// Package navigate computes cursor targets for structural movement over a
// dom.Tree: matching tags, siblings, children and parents.
//
// A requested target that does not exist is reported as one of the Err*
// values below. These are user-facing misses, not failures.
package navigate

import (
	"errors"

	"github.com/yaklabco/breeze/pkg/dom"
)

// Navigation misses.
var (
	ErrNoNode             = errors.New("nothing found")
	ErrNoSiblings         = errors.New("no siblings found")
	ErrNoMoreSiblings     = errors.New("no more siblings")
	ErrNoPreviousSiblings = errors.New("no previous siblings")
	ErrNoChildren         = errors.New("no children found")
	ErrNoParent           = errors.New("no parent found")
)

// Direction selects a sibling relative to the current node.
type Direction int

// Sibling directions.
const (
	Next Direction = iota
	Prev
	First
	Last
)

// MatchTag returns the position to jump to from cursor within node.
// Off the node's first line it goes to the opening tag. On the first line,
// inside the literal opening tag it goes to the closing tag, and anywhere
// after it back to the opening tag.
func MatchTag(node *dom.Node, cursor dom.Position) dom.Position {
	if cursor.Line != node.Start.Line {
		return node.Start
	}
	if cursor.Column < node.Start.Column+len(node.StartTagText) {
		return node.End
	}
	return node.Start
}

// Sibling returns the sibling of node in the given direction.
func Sibling(tree *dom.Tree, node *dom.Node, dir Direction) (*dom.Node, error) {
	if node == nil {
		return nil, ErrNoNode
	}

	parent := tree.Parent(node)
	if parent == nil {
		if dir == Prev {
			return nil, ErrNoPreviousSiblings
		}
		return nil, ErrNoMoreSiblings
	}

	siblings := tree.Children(parent)

	switch dir {
	case First:
		return siblings[0], nil
	case Last:
		return siblings[len(siblings)-1], nil
	}

	idx := indexOf(siblings, node)
	if idx < 0 {
		return nil, ErrNoSiblings
	}

	target := idx + 1
	if dir == Prev {
		target = idx - 1
	}
	if target < 0 || target >= len(siblings) {
		return nil, ErrNoSiblings
	}
	return siblings[target], nil
}

// indexOf locates node among siblings by its (Start, End) pair.
func indexOf(siblings []*dom.Node, node *dom.Node) int {
	for i, sibling := range siblings {
		if sibling.SameSpan(node) {
			return i
		}
	}
	return -1
}

// FirstChild returns the first child of node.
func FirstChild(tree *dom.Tree, node *dom.Node) (*dom.Node, error) {
	if node == nil {
		return nil, ErrNoNode
	}
	child := tree.FirstChild(node)
	if child == nil {
		return nil, ErrNoChildren
	}
	return child, nil
}

// LastChild returns the last child of node.
func LastChild(tree *dom.Tree, node *dom.Node) (*dom.Node, error) {
	if node == nil {
		return nil, ErrNoNode
	}
	child := tree.LastChild(node)
	if child == nil {
		return nil, ErrNoChildren
	}
	return child, nil
}

// Parent returns the parent of node unless it is the root.
func Parent(tree *dom.Tree, node *dom.Node) (*dom.Node, error) {
	if node == nil {
		return nil, ErrNoNode
	}
	parent := tree.Parent(node)
	if parent == nil || parent.IsRoot() {
		return nil, ErrNoParent
	}
	return parent, nil
}

// Target returns where the cursor lands when jumping to pos.
// With jumpToAngleBracket unset the cursor lands on the tag name, one
// column right of the '<'.
func Target(pos dom.Position, jumpToAngleBracket bool) dom.Position {
	if jumpToAngleBracket {
		return pos
	}
	return pos.Shift(1)
}
