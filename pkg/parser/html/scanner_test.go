package html_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/breeze/pkg/dom"
	"github.com/yaklabco/breeze/pkg/parser/html"
)

func pos(line, col int) dom.Position {
	return dom.Position{Line: line, Column: col}
}

// tagEvents filters out text events.
func tagEvents(events []html.Event) []html.Event {
	var tags []html.Event
	for _, ev := range events {
		if ev.Kind != html.EventText {
			tags = append(tags, ev)
		}
	}
	return tags
}

func TestScan_Basic(t *testing.T) {
	t.Parallel()

	events, err := html.Scan([]string{`<div class="a>b">x</div>`})
	require.NoError(t, err)
	require.Len(t, events, 3)

	open := events[0]
	assert.Equal(t, html.EventOpen, open.Kind)
	assert.Equal(t, "div", open.Name)
	assert.Equal(t, `class="a>b"`, open.Attrs)
	assert.Equal(t, `<div class="a>b">`, open.Raw)
	assert.Equal(t, dom.Span{Start: pos(1, 0), End: pos(1, 16)}, open.Span)
	assert.False(t, open.SelfClosing)

	text := events[1]
	assert.Equal(t, html.EventText, text.Kind)
	assert.Equal(t, "x", text.Raw)

	closing := events[2]
	assert.Equal(t, html.EventClose, closing.Kind)
	assert.Equal(t, "div", closing.Name)
	assert.Equal(t, dom.Span{Start: pos(1, 18), End: pos(1, 23)}, closing.Span)
}

func TestScan_Empty(t *testing.T) {
	t.Parallel()

	events, err := html.Scan(nil)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestScan_MultiLinePositions(t *testing.T) {
	t.Parallel()

	events, err := html.Scan([]string{
		"<ul>",
		"  <li>one",
		"</ul>",
	})
	require.NoError(t, err)

	tags := tagEvents(events)
	require.Len(t, tags, 3)
	assert.Equal(t, pos(1, 0), tags[0].Span.Start)
	assert.Equal(t, pos(2, 2), tags[1].Span.Start)
	assert.Equal(t, pos(2, 5), tags[1].Span.End)
	assert.Equal(t, pos(3, 0), tags[2].Span.Start)
	assert.Equal(t, pos(3, 4), tags[2].Span.End)
}

func TestScan_MultiLineStartTag(t *testing.T) {
	t.Parallel()

	events, err := html.Scan([]string{
		`<a href="x"`,
		`   title="y">link</a>`,
	})
	require.NoError(t, err)

	tags := tagEvents(events)
	require.Len(t, tags, 2)
	assert.Equal(t, dom.Span{Start: pos(1, 0), End: pos(2, 12)}, tags[0].Span)
	assert.Equal(t, "a", tags[0].Name)
	assert.Equal(t, pos(2, 17), tags[1].Span.Start)
}

func TestScan_IgnoresNonTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{"comment", []string{"<!-- <p> -->", "<b></b>"}, []string{"b", "b"}},
		{"multi-line comment", []string{"<!--", "<p>", "-->"}, nil},
		{"doctype", []string{"<!DOCTYPE html>", "<html></html>"}, []string{"html", "html"}},
		{"processing instruction", []string{`<?xml version="1.0"?>`}, nil},
		{"lone angle bracket", []string{"a < b and c > d"}, nil},
		{"empty close", []string{"</>"}, nil},
		{"script body", []string{"<script>if (a<b) { x = '<p>' }</script>"}, []string{"script", "script"}},
		{"style body", []string{"<style>", "a > b { }", "</style>"}, []string{"style", "style"}},
		{"script close with space", []string{"<script>1</script >"}, []string{"script", "script"}},
		{"script prefix not a close", []string{"<script>'</scripts>'</script>"}, []string{"script", "script"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			events, err := html.Scan(tt.lines)
			require.NoError(t, err)

			var names []string
			for _, ev := range tagEvents(events) {
				names = append(names, ev.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestScan_SelfClosing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		line  string
		tag   string
		attrs string
		want  bool
	}{
		{"void", "<br>", "br", "", true},
		{"void uppercase", "<BR>", "br", "", true},
		{"void with attrs", `<img src="a.png">`, "img", `src="a.png"`, true},
		{"explicit", "<div/>", "div", "", true},
		{"explicit with attrs", `<my-widget a="1" />`, "my-widget", `a="1"`, true},
		{"plain", "<DIV>", "div", "", false},
		{"unquoted attr", "<td width=10>", "td", "width=10", false},
		{"slash in unquoted value", "<a href=/x/y>", "a", "href=/x/y", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			events, err := html.Scan([]string{tt.line})
			require.NoError(t, err)
			require.NotEmpty(t, events)

			assert.Equal(t, tt.tag, events[0].Name)
			assert.Equal(t, tt.attrs, events[0].Attrs)
			assert.Equal(t, tt.want, events[0].SelfClosing)
		})
	}
}

func TestScan_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		lines  []string
		kind   error
		line   int
		column int
	}{
		{"unterminated start tag", []string{"<p>", "<div", "class='x'"}, html.ErrMalformedStartTag, 2, 0},
		{"unterminated end tag", []string{"<p>", "  </p"}, html.ErrMalformedEndTag, 2, 2},
		{"unterminated comment", []string{"ok", "<!-- open"}, html.ErrUnterminatedComment, 2, 0},
		{"unterminated attribute", []string{`<a href="x>`}, html.ErrUnterminatedAttribute, 1, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := html.Scan(tt.lines)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind))

			var scanErr *html.ScanError
			require.ErrorAs(t, err, &scanErr)
			assert.Equal(t, tt.line, scanErr.Line)
			assert.Equal(t, tt.column, scanErr.Column)
			assert.Equal(t, tt.lines[tt.line-1], scanErr.Source)
			assert.Contains(t, scanErr.Error(), tt.kind.Error())
		})
	}
}

func TestScan_ErrorKeepsEarlierEvents(t *testing.T) {
	t.Parallel()

	events, err := html.Scan([]string{"<p>ok</p>", "<div"})
	require.Error(t, err)

	tags := tagEvents(events)
	require.Len(t, tags, 2)
	assert.Equal(t, "p", tags[0].Name)
}

func TestIsVoidElement(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{"br", "HR", "img", "input", "wbr", "keygen"} {
		assert.True(t, html.IsVoidElement(tag), tag)
	}
	for _, tag := range []string{"div", "p", "span", "script"} {
		assert.False(t, html.IsVoidElement(tag), tag)
	}
}
