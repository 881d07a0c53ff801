package session

import (
	"github.com/yaklabco/breeze/pkg/dom"
	"github.com/yaklabco/breeze/pkg/navigate"
)

// MatchTag jumps between the opening and closing tag of the current element.
func (s *Session) MatchTag() error {
	return s.withSavedPosition(func() error {
		return s.withFreshTree("match-tag", func(tree *dom.Tree) error {
			cursor := s.editor.Cursor()
			node := tree.NodeAt(cursor)
			if node == nil {
				s.miss(navigate.ErrNoNode)
				return nil
			}
			s.moveTo("match-tag", navigate.MatchTag(node, cursor))
			return nil
		})
	})
}

// GotoNextSibling moves to the next sibling of the current element.
func (s *Session) GotoNextSibling() error {
	return s.gotoSibling("next-sibling", navigate.Next)
}

// GotoPrevSibling moves to the previous sibling of the current element.
func (s *Session) GotoPrevSibling() error {
	return s.gotoSibling("prev-sibling", navigate.Prev)
}

// GotoFirstSibling moves to the first child of the current element's parent.
func (s *Session) GotoFirstSibling() error {
	return s.gotoSibling("first-sibling", navigate.First)
}

// GotoLastSibling moves to the last child of the current element's parent.
func (s *Session) GotoLastSibling() error {
	return s.gotoSibling("last-sibling", navigate.Last)
}

// GotoFirstChild moves to the first child of the current element.
func (s *Session) GotoFirstChild() error {
	return s.gotoRelative("first-child", navigate.FirstChild)
}

// GotoLastChild moves to the last child of the current element.
func (s *Session) GotoLastChild() error {
	return s.gotoRelative("last-child", navigate.LastChild)
}

// GotoParent moves to the parent of the current element.
func (s *Session) GotoParent() error {
	return s.gotoRelative("parent", navigate.Parent)
}

func (s *Session) gotoSibling(op string, dir navigate.Direction) error {
	return s.gotoRelative(op, func(tree *dom.Tree, node *dom.Node) (*dom.Node, error) {
		return navigate.Sibling(tree, node, dir)
	})
}

type relativeFunc func(tree *dom.Tree, node *dom.Node) (*dom.Node, error)

func (s *Session) gotoRelative(op string, relative relativeFunc) error {
	return s.withSavedPosition(func() error {
		return s.withFreshTree(op, func(tree *dom.Tree) error {
			node := tree.NodeAt(s.editor.Cursor())
			target, err := relative(tree, node)
			if err != nil {
				s.miss(err)
				return nil
			}
			s.moveTo(op, target.Start)
			return nil
		})
	})
}
