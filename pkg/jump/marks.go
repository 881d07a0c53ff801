// Package jump assigns single-key labels to the elements around the cursor
// so the user can jump to any of them with one keystroke.
package jump

import (
	"slices"

	"github.com/yaklabco/breeze/pkg/dom"
)

// DefaultAlphabet supplies mark labels in order of preference.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Mark is one labelled jump target.
type Mark struct {
	Label string
	Node  *dom.Node
}

// Position returns where the mark label is shown: the opening '<'.
func (m Mark) Position() dom.Position {
	return m.Node.Start
}

// Marks labels the elements whose opening tag starts after cursor, or
// before it when backward is set. Forward marks run in document order,
// backward marks nearest-first. At most one mark per alphabet rune is made.
func Marks(tree *dom.Tree, cursor dom.Position, backward bool, alphabet string) []Mark {
	if tree == nil {
		return nil
	}

	labels := []rune(alphabet)
	if len(labels) == 0 {
		labels = []rune(DefaultAlphabet)
	}

	candidates := tree.FindAll(func(n *dom.Node) bool {
		if backward {
			return n.Start.Before(cursor)
		}
		return n.Start.After(cursor)
	})
	if backward {
		slices.Reverse(candidates)
	}

	if len(candidates) > len(labels) {
		candidates = candidates[:len(labels)]
	}

	marks := make([]Mark, len(candidates))
	for i, n := range candidates {
		marks[i] = Mark{Label: string(labels[i]), Node: n}
	}
	return marks
}

// Find returns the mark with the given label.
func Find(marks []Mark, label string) (Mark, bool) {
	for _, m := range marks {
		if m.Label == label {
			return m, true
		}
	}
	return Mark{}, false
}
