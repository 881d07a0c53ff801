package html

import (
	"strings"

	"github.com/yaklabco/breeze/pkg/dom"
)

// builder assembles a tree from scanner events using a stack of open
// elements. The root is pre-seeded and never popped.
type builder struct {
	tree  *dom.Tree
	stack []int
}

// Build assembles a tree from scanner events.
//
// Recovery rules:
//   - a close tag pops every element above and including the nearest open
//     element with the same name; elements popped implicitly stay unclosed;
//   - a close tag with no matching open element is ignored;
//   - elements still open at the end of input stay unclosed.
//
// Unclosed elements keep End == Start.
func Build(events []Event) *dom.Tree {
	b := &builder{
		tree:  dom.NewTree(),
		stack: []int{dom.RootIndex},
	}

	for i := range events {
		switch events[i].Kind {
		case EventOpen:
			b.open(&events[i])
		case EventClose:
			b.close(&events[i])
		case EventText:
			// Text does not affect structure.
		}
	}

	return b.tree
}

func (b *builder) open(event *Event) {
	parent := b.stack[len(b.stack)-1]
	idx := b.tree.Append(parent, dom.Node{
		Tag:          event.Name,
		Start:        event.Span.Start,
		End:          event.Span.Start,
		StartTagText: event.Raw,
		StartTag:     event.Span,
		SelfClosing:  event.SelfClosing,
	})

	if !event.SelfClosing {
		b.stack = append(b.stack, idx)
	}
}

func (b *builder) close(event *Event) {
	for i := len(b.stack) - 1; i > 0; i-- {
		idx := b.stack[i]
		if strings.EqualFold(b.tree.Node(idx).Tag, event.Name) {
			b.tree.CloseAt(idx, event.Span)
			b.stack = b.stack[:i]
			return
		}
	}
}
