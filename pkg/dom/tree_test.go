package dom_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/breeze/pkg/dom"
)

// byTag returns the elements named tag in document order.
func byTag(tree *dom.Tree, tag string) []*dom.Node {
	return tree.FindAll(func(n *dom.Node) bool { return n.Tag == tag })
}

// buildSample builds the tree for:
//
//	1: <div>
//	2:   <p>hi</p>
//	3:   <br>
//	4: </div>
func buildSample() *dom.Tree {
	tree := dom.NewTree()

	div := tree.Append(dom.RootIndex, dom.Node{
		Tag:          "div",
		Start:        dom.Position{Line: 1, Column: 0},
		End:          dom.Position{Line: 1, Column: 0},
		StartTagText: "<div>",
		StartTag:     dom.Span{Start: dom.Position{Line: 1, Column: 0}, End: dom.Position{Line: 1, Column: 4}},
	})

	p := tree.Append(div, dom.Node{
		Tag:          "p",
		Start:        dom.Position{Line: 2, Column: 2},
		End:          dom.Position{Line: 2, Column: 2},
		StartTagText: "<p>",
		StartTag:     dom.Span{Start: dom.Position{Line: 2, Column: 2}, End: dom.Position{Line: 2, Column: 4}},
	})
	tree.CloseAt(p, dom.Span{Start: dom.Position{Line: 2, Column: 7}, End: dom.Position{Line: 2, Column: 10}})

	tree.Append(div, dom.Node{
		Tag:          "br",
		Start:        dom.Position{Line: 3, Column: 2},
		End:          dom.Position{Line: 3, Column: 2},
		StartTagText: "<br>",
		StartTag:     dom.Span{Start: dom.Position{Line: 3, Column: 2}, End: dom.Position{Line: 3, Column: 5}},
		SelfClosing:  true,
	})

	tree.CloseAt(div, dom.Span{Start: dom.Position{Line: 4, Column: 0}, End: dom.Position{Line: 4, Column: 5}})

	return tree
}

func TestNewTree(t *testing.T) {
	t.Parallel()

	tree := dom.NewTree()

	require.Equal(t, 1, tree.Len())
	root := tree.Root()
	assert.Equal(t, dom.RootTag, root.Tag)
	assert.True(t, root.IsRoot())
	assert.Nil(t, tree.Parent(root))
	assert.Empty(t, tree.Elements())
}

func TestTreeStructure(t *testing.T) {
	t.Parallel()

	tree := buildSample()

	root := tree.Root()
	require.Len(t, root.Children, 1)

	div := tree.FirstChild(root)
	require.NotNil(t, div)
	assert.Equal(t, "div", div.Tag)
	assert.Same(t, root, tree.Parent(div))
	assert.Equal(t, dom.Position{Line: 4, Column: 0}, div.End)
	assert.True(t, div.HasEndTag())

	children := tree.Children(div)
	require.Len(t, children, 2)
	assert.Equal(t, "p", children[0].Tag)
	assert.Equal(t, "br", children[1].Tag)
	assert.Same(t, children[1], tree.LastChild(div))

	br := children[1]
	assert.False(t, br.HasEndTag())
	assert.Equal(t, br.Start, br.End)
	assert.Equal(t, br.StartTag.End, br.Extent())

	assert.Equal(t, 1, tree.Index(div))
	assert.Equal(t, -1, tree.Index(&dom.Node{}))
	assert.Nil(t, tree.Node(99))
}

func TestElementsPreOrder(t *testing.T) {
	t.Parallel()

	tree := buildSample()

	var tags []string
	for _, n := range tree.Elements() {
		tags = append(tags, n.Tag)
	}
	assert.Equal(t, []string{"div", "p", "br"}, tags)
	assert.Len(t, byTag(tree, "p"), 1)
}

func TestNodeAt(t *testing.T) {
	t.Parallel()

	tree := buildSample()

	tests := []struct {
		name string
		pos  dom.Position
		want string
	}{
		{"on div open bracket", dom.Position{Line: 1, Column: 0}, "div"},
		{"on div name", dom.Position{Line: 1, Column: 2}, "div"},
		{"in p text", dom.Position{Line: 2, Column: 5}, "p"},
		{"on p closing bracket", dom.Position{Line: 2, Column: 10}, "p"},
		{"after p on same line", dom.Position{Line: 2, Column: 11}, "div"},
		{"on br", dom.Position{Line: 3, Column: 4}, "br"},
		{"after br", dom.Position{Line: 3, Column: 6}, "div"},
		{"on closing div", dom.Position{Line: 4, Column: 3}, "div"},
		{"after closing div", dom.Position{Line: 4, Column: 6}, ""},
		{"line above", dom.Position{Line: 0, Column: 0}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tree.NodeAt(tt.pos)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Tag)
		})
	}
}

func TestDump(t *testing.T) {
	t.Parallel()

	tree := buildSample()

	var sb strings.Builder
	require.NoError(t, tree.Dump(&sb))

	want := "root\n" +
		"  div 1:0\n" +
		"    p 2:2\n" +
		"    br 3:2\n"
	assert.Equal(t, want, sb.String())
	assert.Equal(t, want, tree.String())
}

func TestPositionCompare(t *testing.T) {
	t.Parallel()

	a := dom.Position{Line: 1, Column: 5}
	b := dom.Position{Line: 2, Column: 0}

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, dom.Position{Line: 1, Column: 6}, a.Shift(1))
	assert.Equal(t, "1:5", a.String())
	assert.False(t, dom.Position{}.IsValid())
	assert.True(t, dom.Position{Line: 1}.IsValid())
	assert.False(t, dom.Position{Line: 1, Column: -1}.IsValid())
}

func TestSpanContains(t *testing.T) {
	t.Parallel()

	span := dom.Span{Start: dom.Position{Line: 1, Column: 2}, End: dom.Position{Line: 3, Column: 1}}

	assert.True(t, span.Contains(dom.Position{Line: 2, Column: 40}))
	assert.True(t, span.Contains(dom.Position{Line: 3, Column: 1}))
	assert.False(t, span.Contains(dom.Position{Line: 3, Column: 2}))
	assert.False(t, span.IsSingleLine())
	assert.False(t, dom.Span{}.Contains(dom.Position{}))
}
