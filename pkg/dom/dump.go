package dom

import (
	"fmt"
	"io"
	"strings"
)

// dumpIndent is the indentation used per tree level.
const dumpIndent = "  "

// Dump writes an indented listing of the tree, one element per line.
// It is a diagnostic aid; nothing in navigation depends on its format.
func (t *Tree) Dump(w io.Writer) error {
	return t.dumpFunc(w, func(n *Node) string {
		return fmt.Sprintf("%s %s", n.Tag, n.Start)
	})
}

// dumpFunc writes an indented listing using label to render each node.
func (t *Tree) dumpFunc(w io.Writer, label func(n *Node) string) error {
	return t.Walk(t.Root(), func(n *Node, depth int) error {
		text := RootTag
		if !n.IsRoot() {
			text = label(n)
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat(dumpIndent, depth), text); err != nil {
			return fmt.Errorf("write dom dump: %w", err)
		}
		return nil
	})
}

// String returns the Dump output as a string.
func (t *Tree) String() string {
	var sb strings.Builder
	//nolint:errcheck // strings.Builder never fails
	t.Dump(&sb)
	return sb.String()
}
