package session

import (
	"fmt"
	"strings"

	"github.com/yaklabco/breeze/pkg/config"
	"github.com/yaklabco/breeze/pkg/dom"
	"github.com/yaklabco/breeze/pkg/highlight"
)

// Init defines the breeze highlight groups from the configured colors.
func (s *Session) Init() {
	for _, cmd := range GroupCommands(s.cfg.Colors(s.editor.DarkBackground())) {
		s.editor.Command(cmd)
	}
}

// GroupCommands returns the editor commands that define the highlight
// groups. A color containing '=' is an attribute list, anything else is
// a group to link to.
func GroupCommands(colors config.GroupColors) []string {
	pairs := []struct {
		group string
		color string
	}{
		{highlight.GroupShade, colors.Shade},
		{highlight.GroupJumpMark, colors.JumpMark},
		{highlight.GroupHl, colors.Hl},
	}

	cmds := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		if strings.Contains(pair.color, "=") {
			cmds = append(cmds, fmt.Sprintf("hi %s %s", pair.group, pair.color))
		} else {
			cmds = append(cmds, fmt.Sprintf("hi link %s %s", pair.group, pair.color))
		}
	}
	return cmds
}

// HighlightCurrentElement highlights the name labels of the current
// element's opening and closing tags.
func (s *Session) HighlightCurrentElement() error {
	return s.withFreshTree("highlight-element", func(tree *dom.Tree) error {
		s.editor.ClearHighlights(highlight.GroupHl)
		node := tree.NodeAt(s.editor.Cursor())
		if node == nil {
			return nil
		}
		s.highlight(highlight.Tags(node))
		return nil
	})
}

// HighlightElementBlock highlights the whole current element, like the
// "vat" text object.
func (s *Session) HighlightElementBlock() error {
	return s.withFreshTree("highlight-block", func(tree *dom.Tree) error {
		s.editor.ClearHighlights(highlight.GroupHl)
		node := tree.NodeAt(s.editor.Cursor())
		if node == nil {
			return nil
		}
		s.highlight(highlight.Element(node))
		return nil
	})
}

func (s *Session) highlight(regions []highlight.Region) {
	for _, r := range regions {
		s.editor.Highlight(highlight.GroupHl, r)
	}
}
