package session

import (
	"github.com/yaklabco/breeze/pkg/dom"
	"github.com/yaklabco/breeze/pkg/highlight"
	"github.com/yaklabco/breeze/pkg/jump"
	"github.com/yaklabco/breeze/pkg/navigate"
)

const jumpPrompt = "target: "

// MarkRenderer is implemented by editors that can draw mark labels over
// the buffer. Other editors only get the BreezeJumpMark highlights.
type MarkRenderer interface {
	ShowMarks(marks []jump.Mark)
}

// JumpForward labels the elements after the cursor and jumps to the one
// whose label the user types.
func (s *Session) JumpForward() error {
	return s.jump("jump-forward", false)
}

// JumpBackward labels the elements before the cursor and jumps to the one
// whose label the user types.
func (s *Session) JumpBackward() error {
	return s.jump("jump-backward", true)
}

// JumpMarks returns the marks a jump would offer, without prompting.
// Hosts that cannot block on a key use it to draw marks first and send
// the chosen label with a later jump request.
func (s *Session) JumpMarks(backward bool) ([]jump.Mark, error) {
	var marks []jump.Mark
	err := s.withFreshTree("jump-marks", func(tree *dom.Tree) error {
		marks = jump.Marks(tree, s.editor.Cursor(), backward, s.cfg.MarkAlphabet)
		if len(marks) > 0 {
			s.showMarks(s.editor.Cursor(), marks, backward)
		}
		return nil
	})
	return marks, err
}

func (s *Session) jump(op string, backward bool) error {
	return s.withSavedPosition(func() error {
		return s.withFreshTree(op, func(tree *dom.Tree) error {
			cursor := s.editor.Cursor()
			marks := jump.Marks(tree, cursor, backward, s.cfg.MarkAlphabet)
			if len(marks) == 0 {
				s.miss(navigate.ErrNoNode)
				return nil
			}

			s.showMarks(cursor, marks, backward)
			key, ok := s.editor.ReadKey(jumpPrompt)
			s.editor.ClearHighlights(highlight.GroupJumpMark, highlight.GroupShade)
			s.editor.Redraw()

			if !ok {
				return nil
			}
			mark, found := jump.Find(marks, key)
			if !found {
				s.logger.Debug("no mark for key", "key", key)
				return nil
			}
			s.moveTo(op, mark.Position())
			return nil
		})
	})
}

// showMarks shades the lines the marks span and highlights each label.
func (s *Session) showMarks(cursor dom.Position, marks []jump.Mark, backward bool) {
	farthest := marks[len(marks)-1].Position().Line
	if backward {
		s.editor.Highlight(highlight.GroupShade, highlight.Lines(farthest, cursor.Line))
	} else {
		s.editor.Highlight(highlight.GroupShade, highlight.Lines(cursor.Line, farthest))
	}

	for _, m := range marks {
		pos := m.Position()
		s.editor.Highlight(highlight.GroupJumpMark, highlight.Columns(pos.Line, pos.Column, pos.Column))
	}
	if renderer, ok := s.editor.(MarkRenderer); ok {
		renderer.ShowMarks(marks)
	}
	s.editor.Redraw()
}
