package session

import (
	"strings"

	"github.com/yaklabco/breeze/pkg/dom"
)

// PrintDOM shows the parsed tree, one message per line.
func (s *Session) PrintDOM() error {
	return s.withFreshTree("print-dom", func(tree *dom.Tree) error {
		var buf strings.Builder
		if err := tree.Dump(&buf); err != nil {
			return err
		}
		for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
			s.editor.Message(line)
		}
		return nil
	})
}

// WhatsWrong reports why the last parse failed. It does not parse.
func (s *Session) WhatsWrong() {
	s.editor.Message(s.parser.ErrorMessage())
}
