package session_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/breeze/internal/editor"
	"github.com/yaklabco/breeze/pkg/config"
	"github.com/yaklabco/breeze/pkg/dom"
	"github.com/yaklabco/breeze/pkg/highlight"
	"github.com/yaklabco/breeze/pkg/langdetect"
	"github.com/yaklabco/breeze/pkg/parser/html"
	"github.com/yaklabco/breeze/pkg/session"
)

func pos(line, col int) dom.Position {
	return dom.Position{Line: line, Column: col}
}

// sample:
//
//	1:
//	2: <ul>
//	3:   <li>one</li>
//	4:   <li>two <b>x</b></li>
//	5:   <li>three</li>
//	6: </ul>
var sample = []string{
	"",
	"<ul>",
	"  <li>one</li>",
	"  <li>two <b>x</b></li>",
	"  <li>three</li>",
	"</ul>",
}

func newSession(t *testing.T, lines []string, cursor dom.Position, opts ...editor.Option) (*session.Session, *editor.Buffer) {
	t.Helper()

	opts = append([]editor.Option{editor.WithCursor(cursor)}, opts...)
	buf := editor.NewBuffer(lines, opts...)
	return session.New(buf, config.NewConfig()), buf
}

func TestCache_HitWhenUnmodified(t *testing.T) {
	t.Parallel()

	s, buf := newSession(t, sample, pos(3, 3))

	require.NoError(t, s.HighlightCurrentElement())
	require.NoError(t, s.HighlightCurrentElement())
	assert.Equal(t, 1, s.Parser().Passes())

	buf.MarkModified()
	require.NoError(t, s.HighlightCurrentElement())
	assert.Equal(t, 2, s.Parser().Passes())
}

func TestCache_AbortClearsAndRetries(t *testing.T) {
	t.Parallel()

	s, buf := newSession(t, []string{"<div>", "<!-- open"}, pos(1, 1))
	buf.Highlight(highlight.GroupShade, highlight.Lines(1, 2))
	buf.Highlight(highlight.GroupJumpMark, highlight.Columns(1, 0, 0))
	buf.Highlight(highlight.GroupHl, highlight.Columns(1, 1, 3))

	err := s.MatchTag()
	require.ErrorIs(t, err, session.ErrOperationAborted)
	require.ErrorIs(t, err, html.ErrUnterminatedComment)

	var scanErr *html.ScanError
	require.ErrorAs(t, err, &scanErr)
	assert.Equal(t, 2, scanErr.Line)

	assert.Empty(t, buf.Highlights(""))
	assert.Equal(t, pos(1, 1), buf.Cursor())

	// Not modified, but the failed parse forces another pass.
	err = s.MatchTag()
	require.ErrorIs(t, err, session.ErrOperationAborted)
	assert.Equal(t, 2, s.Parser().Passes())

	buf.SetLines([]string{"<div>", "</div>"})
	require.NoError(t, s.MatchTag())
	assert.Equal(t, pos(2, 1), buf.Cursor())
}

func TestCache_Direct(t *testing.T) {
	t.Parallel()

	parser := html.New()
	cache := session.NewCache(parser)
	buf := editor.NewBuffer([]string{"<p></p>"})

	tree, hit, err := cache.EnsureFresh(buf)
	require.NoError(t, err)
	assert.False(t, hit)

	again, hit, err := cache.EnsureFresh(buf)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Same(t, tree, again)

	cache.Invalidate()
	_, hit, err = cache.EnsureFresh(buf)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 2, parser.Passes())
}

func TestMatchTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cursor dom.Position
		want   dom.Position
	}{
		{"on opening tag name", pos(3, 3), pos(3, 10)},
		{"after opening tag", pos(3, 8), pos(3, 3)},
		{"on closing tag", pos(3, 11), pos(3, 3)},
		{"block from first line", pos(2, 1), pos(6, 1)},
		{"block from last line", pos(6, 2), pos(2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, buf := newSession(t, sample, tt.cursor)
			require.NoError(t, s.MatchTag())
			assert.Equal(t, tt.want, buf.Cursor())
			assert.Equal(t, []dom.Position{tt.cursor}, buf.JumpList())
		})
	}
}

func TestMatchTag_AngleBracket(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.JumpToAngleBracket = true
	buf := editor.NewBuffer(sample, editor.WithCursor(pos(3, 3)))
	s := session.New(buf, cfg)

	require.NoError(t, s.MatchTag())
	assert.Equal(t, pos(3, 9), buf.Cursor())
}

func TestNavigation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		op     func(*session.Session) error
		cursor dom.Position
		want   dom.Position
		msg    string
	}{
		{"next sibling", (*session.Session).GotoNextSibling, pos(3, 3), pos(4, 3), ""},
		{"prev sibling", (*session.Session).GotoPrevSibling, pos(4, 3), pos(3, 3), ""},
		{"first sibling", (*session.Session).GotoFirstSibling, pos(5, 3), pos(3, 3), ""},
		{"last sibling", (*session.Session).GotoLastSibling, pos(3, 3), pos(5, 3), ""},
		{"first child", (*session.Session).GotoFirstChild, pos(2, 1), pos(3, 3), ""},
		{"last child", (*session.Session).GotoLastChild, pos(2, 1), pos(5, 3), ""},
		{"parent", (*session.Session).GotoParent, pos(4, 12), pos(4, 3), ""},
		{"next past end", (*session.Session).GotoNextSibling, pos(5, 3), pos(5, 3), "no siblings found"},
		{"prev before start", (*session.Session).GotoPrevSibling, pos(3, 3), pos(3, 3), "no siblings found"},
		{"no children", (*session.Session).GotoFirstChild, pos(3, 3), pos(3, 3), "no children found"},
		{"top-level parent", (*session.Session).GotoParent, pos(2, 1), pos(2, 1), "no parent found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, buf := newSession(t, sample, tt.cursor)
			require.NoError(t, tt.op(s))
			assert.Equal(t, tt.want, buf.Cursor())
			if tt.msg == "" {
				assert.Empty(t, buf.Messages())
			} else {
				assert.Equal(t, []string{tt.msg}, buf.Messages())
			}
		})
	}
}

func TestNavigation_OutsideAnyElement(t *testing.T) {
	t.Parallel()

	ops := map[string]func(*session.Session) error{
		"match":         (*session.Session).MatchTag,
		"next":          (*session.Session).GotoNextSibling,
		"prev":          (*session.Session).GotoPrevSibling,
		"first":         (*session.Session).GotoFirstSibling,
		"last":          (*session.Session).GotoLastSibling,
		"first child":   (*session.Session).GotoFirstChild,
		"last child":    (*session.Session).GotoLastChild,
		"parent":        (*session.Session).GotoParent,
		"highlight":     (*session.Session).HighlightCurrentElement,
		"highlight blk": (*session.Session).HighlightElementBlock,
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s, buf := newSession(t, sample, pos(1, 0))
			require.NoError(t, op(s))
			assert.Equal(t, pos(1, 0), buf.Cursor())
			assert.Empty(t, buf.Highlights(highlight.GroupHl))
		})
	}
}

func TestHighlightCurrentElement(t *testing.T) {
	t.Parallel()

	s, buf := newSession(t, sample, pos(3, 3))
	require.NoError(t, s.HighlightCurrentElement())

	hls := buf.Highlights(highlight.GroupHl)
	require.Len(t, hls, 2)
	assert.Equal(t, highlight.Columns(3, 3, 4), hls[0].Region)
	assert.Equal(t, highlight.Columns(3, 10, 12), hls[1].Region)

	// A second call replaces the previous highlight.
	buf.SetCursor(pos(2, 1))
	require.NoError(t, s.HighlightCurrentElement())
	hls = buf.Highlights(highlight.GroupHl)
	require.Len(t, hls, 2)
	assert.Equal(t, 2, hls[0].Region.StartLine)
}

func TestHighlightElementBlock(t *testing.T) {
	t.Parallel()

	s, buf := newSession(t, sample, pos(2, 1))
	require.NoError(t, s.HighlightElementBlock())

	hls := buf.Highlights(highlight.GroupHl)
	require.Len(t, hls, 3)
	assert.Equal(t, highlight.Tail(2, 0), hls[0].Region)
	assert.Equal(t, highlight.Lines(3, 5), hls[1].Region)
	assert.Equal(t, highlight.Head(6, 4), hls[2].Region)
}

func TestHighlightElementBlock_Void(t *testing.T) {
	t.Parallel()

	s, buf := newSession(t, []string{"<br>"}, pos(1, 1))
	require.NoError(t, s.HighlightElementBlock())

	hls := buf.Highlights(highlight.GroupHl)
	require.Len(t, hls, 1)
	assert.Equal(t, highlight.Columns(1, 0, 3), hls[0].Region)
}

func TestInit(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.HlColorDarkbg = "guifg=#ffffff gui=bold"
	cfg.ShadeColorDarkbg = "NonText"

	light := editor.NewBuffer(nil)
	session.New(light, cfg).Init()
	assert.Equal(t, []string{
		"hi link BreezeShade Comment",
		"hi link BreezeJumpMark WarningMsg",
		"hi link BreezeHl MatchParen",
	}, light.Commands())

	dark := editor.NewBuffer(nil, editor.WithDarkBackground(true))
	session.New(dark, cfg).Init()
	assert.Equal(t, []string{
		"hi link BreezeShade NonText",
		"hi link BreezeJumpMark WarningMsg",
		"hi BreezeHl guifg=#ffffff gui=bold",
	}, dark.Commands())
}

func TestJumpForward(t *testing.T) {
	t.Parallel()

	s, buf := newSession(t, sample, pos(3, 3), editor.WithKeys("b"))
	require.NoError(t, s.JumpForward())

	// Marks: a=<li> on 4, b=<b> on 4, c=<li> on 5.
	assert.Equal(t, pos(4, 11), buf.Cursor())
	assert.Empty(t, buf.Highlights(highlight.GroupShade))
	assert.Empty(t, buf.Highlights(highlight.GroupJumpMark))
	assert.Empty(t, buf.Marks())
	assert.Equal(t, []dom.Position{pos(3, 3)}, buf.JumpList())
}

func TestJumpBackward(t *testing.T) {
	t.Parallel()

	s, buf := newSession(t, sample, pos(6, 0), editor.WithKeys("b"))
	require.NoError(t, s.JumpBackward())

	// Nearest first: a=<li> on 5, b=<b> on 4.
	assert.Equal(t, pos(4, 11), buf.Cursor())
}

func TestJump_Cancelled(t *testing.T) {
	t.Parallel()

	s, buf := newSession(t, sample, pos(3, 3))
	require.NoError(t, s.JumpForward())
	assert.Equal(t, pos(3, 3), buf.Cursor())

	s, buf = newSession(t, sample, pos(3, 3), editor.WithKeys("z"))
	require.NoError(t, s.JumpForward())
	assert.Equal(t, pos(3, 3), buf.Cursor(), "unknown label is a no-op")
}

func TestJump_NothingToMark(t *testing.T) {
	t.Parallel()

	s, buf := newSession(t, sample, pos(6, 0), editor.WithKeys("a"))
	require.NoError(t, s.JumpForward())
	assert.Equal(t, []string{"nothing found"}, buf.Messages())
}

func TestPrintDOM(t *testing.T) {
	t.Parallel()

	s, buf := newSession(t, []string{"<div>", "  <p>hi</p>", "</div>"}, pos(1, 0))
	require.NoError(t, s.PrintDOM())
	assert.Equal(t, []string{"root", "  div 1:0", "    p 2:2"}, buf.Messages())
}

func TestWhatsWrong(t *testing.T) {
	t.Parallel()

	s, buf := newSession(t, []string{"<p class=\"x>"}, pos(1, 0))
	s.WhatsWrong()
	assert.Equal(t, []string{"no error"}, buf.Messages())

	err := s.HighlightCurrentElement()
	require.Error(t, err)
	assert.True(t, errors.Is(err, session.ErrOperationAborted))

	s.WhatsWrong()
	require.Len(t, buf.Messages(), 2)
	assert.Contains(t, buf.Messages()[1], "line 1")
}

func TestNewParser_MasksMarkdown(t *testing.T) {
	t.Parallel()

	lines := []string{"`<b>`", "", "<i>x</i>"}

	md := session.NewParser(langdetect.Markdown, config.NewConfig())
	md.Feed(lines)
	require.True(t, md.Success())
	assert.Len(t, md.Tree().Elements(), 1)

	cfg := config.NewConfig()
	cfg.MaskMarkdown = false
	plain := session.NewParser(langdetect.Markdown, cfg)
	plain.Feed(lines)
	assert.Len(t, plain.Tree().Elements(), 2)

	htmlParser := session.NewParser(langdetect.HTML, nil)
	htmlParser.Feed(lines)
	assert.Len(t, htmlParser.Tree().Elements(), 2)
}
