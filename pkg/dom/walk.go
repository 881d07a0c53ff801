package dom

// WalkFunc is the function signature for Walk callbacks.
// depth is 0 for the node Walk was started at.
// Return a non-nil error to stop the walk.
type WalkFunc func(n *Node, depth int) error

// Walk performs a pre-order traversal starting at start.
// If walkFunc returns a non-nil error, the walk stops and returns it.
func (t *Tree) Walk(start *Node, walkFunc WalkFunc) error {
	if start == nil {
		return nil
	}
	return t.walk(start, 0, walkFunc)
}

func (t *Tree) walk(n *Node, depth int, walkFunc WalkFunc) error {
	if err := walkFunc(n, depth); err != nil {
		return err
	}
	for _, idx := range n.Children {
		if err := t.walk(&t.nodes[idx], depth+1, walkFunc); err != nil {
			return err
		}
	}
	return nil
}

// Elements returns every non-root node in document order.
func (t *Tree) Elements() []*Node {
	elements := make([]*Node, 0, len(t.nodes))

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	t.Walk(t.Root(), func(n *Node, _ int) error {
		if !n.IsRoot() {
			elements = append(elements, n)
		}
		return nil
	})

	return elements
}

// FindAll returns all nodes matching the predicate, in document order.
func (t *Tree) FindAll(predicate func(n *Node) bool) []*Node {
	var result []*Node
	for _, n := range t.Elements() {
		if predicate(n) {
			result = append(result, n)
		}
	}
	return result
}

// NodeAt returns the innermost element whose extent contains pos.
// It returns nil when pos lies outside every element.
func (t *Tree) NodeAt(pos Position) *Node {
	if t == nil {
		return nil
	}

	var found *Node
	current := t.Root()
	for {
		var next *Node
		for _, idx := range current.Children {
			child := &t.nodes[idx]
			if child.Start.After(pos) {
				break
			}
			if child.Contains(pos) {
				next = child
			}
		}
		if next == nil {
			return found
		}
		found = next
		current = next
	}
}
