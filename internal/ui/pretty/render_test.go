package pretty_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/breeze/internal/editor"
	"github.com/yaklabco/breeze/internal/ui/pretty"
	"github.com/yaklabco/breeze/pkg/dom"
	"github.com/yaklabco/breeze/pkg/highlight"
	"github.com/yaklabco/breeze/pkg/jump"
	"github.com/yaklabco/breeze/pkg/parser/html"
)

func TestFormatTree(t *testing.T) {
	t.Parallel()

	p := html.New()
	p.Feed([]string{"<div>", "  <p>hi</p>", "  <br>", "  <span>", "</div>"})
	require.True(t, p.Success())

	got := pretty.NewStyles(false).FormatTree(p.Tree())
	want := "root\n" +
		"└── div 1:0-5:0\n" +
		"    ├── p 2:2-2:7\n" +
		"    ├── br 3:2 (void)\n" +
		"    └── span 4:2 (unclosed)\n"
	assert.Equal(t, want, got)

	assert.Equal(t, "no tree\n", pretty.NewStyles(false).FormatTree(nil))
}

func TestFormatScanError(t *testing.T) {
	t.Parallel()

	lines := []string{"<div>", "  <!-- open"}
	_, err := html.Scan(lines)
	require.Error(t, err)

	got := pretty.NewStyles(false).FormatScanError("index.html", err, lines)
	assert.Equal(t,
		"  index.html:2:3  error  unterminated comment\n"+
			"          <!-- open\n"+
			"          ^\n",
		got)

	plain := pretty.NewStyles(false).FormatScanError("x", errors.New("boom"), nil)
	assert.Equal(t, "  x  error  boom\n", plain)
}

func TestRenderBuffer_Markers(t *testing.T) {
	t.Parallel()

	lines := []string{"<p>hi</p>", "text"}
	view := pretty.BufferView{
		Lines: lines,
		Highlights: []editor.Highlight{
			{Group: highlight.GroupHl, Region: highlight.Columns(1, 1, 1)},
			{Group: highlight.GroupHl, Region: highlight.Columns(1, 6, 7)},
		},
		Cursor: dom.Position{Line: 2, Column: 0},
	}

	got := pretty.NewStyles(false).RenderBuffer(view)
	assert.Equal(t,
		"1 │ <p>hi</p>\n"+
			"  │  ^    ^^\n"+
			"2 │ text\n",
		got)
}

func TestRenderBuffer_MarksReplaceText(t *testing.T) {
	t.Parallel()

	tree := dom.NewTree()
	tree.Append(dom.RootIndex, dom.Node{Tag: "b", Start: dom.Position{Line: 1, Column: 2}})

	view := pretty.BufferView{
		Lines:    []string{"x <b>", "y"},
		Marks:    []jump.Mark{{Label: "a", Node: tree.Node(1)}},
		FromLine: 1,
		ToLine:   1,
	}

	got := pretty.NewStyles(false).RenderBuffer(view)
	assert.Equal(t, "1 │ x ab>\n", got)
}

func TestFormatCheckSummary(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "All files parse (2 files, 7 elements)\n",
		styles.FormatCheckSummary(pretty.CheckStats{Files: 2, Elements: 7}))
	assert.Equal(t, "1 of 3 files failed to parse, 2 ok\n",
		styles.FormatCheckSummary(pretty.CheckStats{Files: 3, Failed: 1}))
	assert.Equal(t, "  ok  a.html  (html, 3 elements)\n", styles.FormatCheckLine("a.html", "html", 3))
}
