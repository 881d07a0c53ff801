package highlight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/breeze/pkg/dom"
	"github.com/yaklabco/breeze/pkg/highlight"
	"github.com/yaklabco/breeze/pkg/parser/html"
)

// byTag returns the elements named tag in document order.
func byTag(tree *dom.Tree, tag string) []*dom.Node {
	return tree.FindAll(func(n *dom.Node) bool { return n.Tag == tag })
}

func parse(t *testing.T, lines ...string) *dom.Tree {
	t.Helper()

	p := html.New()
	p.Feed(lines)
	require.True(t, p.Success())
	return p.Tree()
}

func TestElement_MultiLine(t *testing.T) {
	t.Parallel()

	tree := parse(t,
		"  <div>",
		"    <p>a</p>",
		"    <p>b</p>",
		"  </div>",
	)
	div := byTag(tree, "div")[0]

	regions := highlight.Element(div)
	assert.Equal(t, []highlight.Region{
		highlight.Tail(1, 2),
		highlight.Lines(2, 3),
		highlight.Head(4, 7),
	}, regions)
}

func TestElement_AdjacentLines(t *testing.T) {
	t.Parallel()

	tree := parse(t, "<div>", "</div>")

	regions := highlight.Element(byTag(tree, "div")[0])
	assert.Equal(t, []highlight.Region{
		highlight.Tail(1, 0),
		highlight.Head(2, 5),
	}, regions)
}

func TestElement_SingleLine(t *testing.T) {
	t.Parallel()

	tree := parse(t, "x <span>hi</span> y")

	regions := highlight.Element(byTag(tree, "span")[0])
	assert.Equal(t, []highlight.Region{highlight.Columns(1, 2, 16)}, regions)
}

func TestElement_Void(t *testing.T) {
	t.Parallel()

	tree := parse(t, "<br>")

	regions := highlight.Element(byTag(tree, "br")[0])
	require.Len(t, regions, 1)
	assert.Equal(t, highlight.Columns(1, 0, 3), regions[0])
}

func TestElement_Unclosed(t *testing.T) {
	t.Parallel()

	tree := parse(t, "<div><span class='a'></div>")

	regions := highlight.Element(byTag(tree, "span")[0])
	assert.Equal(t, []highlight.Region{highlight.Columns(1, 5, 20)}, regions)
	assert.Nil(t, highlight.Element(nil))
}

func TestTags(t *testing.T) {
	t.Parallel()

	tree := parse(t, "<div>", "  <img src='x'>", "</div>")

	regions := highlight.Tags(byTag(tree, "div")[0])
	assert.Equal(t, []highlight.Region{
		highlight.Columns(1, 1, 3),
		highlight.Columns(3, 1, 4),
	}, regions)

	regions = highlight.Tags(byTag(tree, "img")[0])
	assert.Equal(t, []highlight.Region{highlight.Columns(2, 3, 5)}, regions)

	assert.Nil(t, highlight.Tags(nil))
}

func TestRegionPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		region highlight.Region
		want   string
	}{
		{"columns", highlight.Columns(3, 4, 7), `\%3l\%>4c\%<9c`},
		{"columns from line start", highlight.Columns(3, 0, 2), `\%3l\%<4c`},
		{"tail", highlight.Tail(2, 5), `\%2l\%>5c`},
		{"head", highlight.Head(4, 6), `\%4l\%<8c`},
		{"lines", highlight.Lines(2, 6), `\%>1l\%<7l`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.region.Pattern())
		})
	}
}

func TestRegionCovers(t *testing.T) {
	t.Parallel()

	cols := highlight.Columns(2, 3, 5)
	assert.True(t, cols.Covers(dom.Position{Line: 2, Column: 3}))
	assert.True(t, cols.Covers(dom.Position{Line: 2, Column: 5}))
	assert.False(t, cols.Covers(dom.Position{Line: 2, Column: 6}))
	assert.False(t, cols.Covers(dom.Position{Line: 1, Column: 4}))

	tail := highlight.Tail(1, 2)
	assert.True(t, tail.Covers(dom.Position{Line: 1, Column: 200}))
	assert.False(t, tail.Covers(dom.Position{Line: 1, Column: 1}))

	lines := highlight.Lines(2, 3)
	assert.True(t, lines.Covers(dom.Position{Line: 3, Column: 0}))
	assert.False(t, lines.Covers(dom.Position{Line: 4, Column: 0}))

	assert.Equal(t, "1:2-1:$", tail.String())
	assert.Equal(t, "2:3-2:5", cols.String())
}
