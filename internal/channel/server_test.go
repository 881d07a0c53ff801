package channel_test

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/breeze/internal/channel"
	"github.com/yaklabco/breeze/internal/logging"
	"github.com/yaklabco/breeze/pkg/config"
	"github.com/yaklabco/breeze/pkg/highlight"
	"github.com/yaklabco/breeze/pkg/parser/html"
)

var page = []string{
	"<ul>",
	"  <li>one</li>",
	"  <li>two</li>",
	"</ul>",
}

func newServer(t *testing.T, opts ...channel.Option) *channel.Server {
	t.Helper()

	opts = append([]channel.Option{channel.WithLogger(logging.NewWriter(io.Discard, "error"))}, opts...)
	srv, err := channel.NewServer(config.NewConfig(), opts...)
	require.NoError(t, err)
	return srv
}

func TestServe_RoundTrip(t *testing.T) {
	t.Parallel()

	req, err := json.Marshal(channel.Request{
		ID: 1, Op: channel.OpMatchTag, Buffer: 3,
		Lines: page, Modified: true, Cursor: [2]int{2, 3},
	})
	require.NoError(t, err)

	in := strings.NewReader(string(req) + "\n\n")
	var out strings.Builder

	srv := newServer(t)
	require.NoError(t, srv.Serve(context.Background(), in, &out))

	scanner := bufio.NewScanner(strings.NewReader(out.String()))
	require.True(t, scanner.Scan())

	var resp channel.Response
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &resp))
	assert.Equal(t, 1, resp.ID)
	assert.Empty(t, resp.Error)
	require.NotNil(t, resp.Cursor)
	assert.Equal(t, [2]int{2, 10}, *resp.Cursor)
	assert.False(t, scanner.Scan(), "one response per request")
	assert.Equal(t, 1, srv.Sessions())
}

func TestHandle_CacheAcrossRequests(t *testing.T) {
	t.Parallel()

	var parser *html.Parser
	srv := newServer(t, channel.WithParserFactory(func(string) *html.Parser {
		parser = html.New()
		return parser
	}))

	req := channel.Request{ID: 1, Op: channel.OpHighlightElement, Buffer: 1, Lines: page, Cursor: [2]int{2, 3}}
	resp := srv.Handle(req)
	require.Empty(t, resp.Error)
	require.Len(t, resp.Highlights, 2)
	assert.Equal(t, highlight.GroupHl, resp.Highlights[0].Group)
	assert.Equal(t, `\%2l\%>3c\%<6c`, resp.Highlights[0].Pattern)
	assert.Equal(t, []string{highlight.GroupHl}, resp.Clear)

	req.ID = 2
	resp = srv.Handle(req)
	require.Empty(t, resp.Error)
	assert.Equal(t, 1, parser.Passes(), "same lines, no reparse")

	req.ID = 3
	req.Modified = true
	srv.Handle(req)
	assert.Equal(t, 2, parser.Passes())
}

func TestHandle_EditSeenByNonParsingOp(t *testing.T) {
	t.Parallel()

	srv := newServer(t)
	edited := []string{"<div>", "</div>"}

	resp := srv.Handle(channel.Request{
		ID: 1, Op: channel.OpMatchTag, Buffer: 1,
		Lines: []string{"<p>", "", "</p>"}, Cursor: [2]int{1, 1},
	})
	require.NotNil(t, resp.Cursor)
	assert.Equal(t, [2]int{3, 1}, *resp.Cursor)

	// whats-wrong does not parse, so the edit it carries stays pending.
	resp = srv.Handle(channel.Request{ID: 2, Op: channel.OpWhatsWrong, Buffer: 1, Lines: edited})
	require.Empty(t, resp.Error)

	resp = srv.Handle(channel.Request{
		ID: 3, Op: channel.OpMatchTag, Buffer: 1,
		Lines: edited, Cursor: [2]int{1, 1},
	})
	require.Empty(t, resp.Error)
	require.NotNil(t, resp.Cursor)
	assert.Equal(t, [2]int{2, 1}, *resp.Cursor)
}

func TestHandle_ModifiedFlagIsSticky(t *testing.T) {
	t.Parallel()

	var parser *html.Parser
	srv := newServer(t, channel.WithParserFactory(func(string) *html.Parser {
		parser = html.New()
		return parser
	}))

	srv.Handle(channel.Request{ID: 1, Op: channel.OpMatchTag, Buffer: 1, Lines: page, Cursor: [2]int{1, 1}})
	require.Equal(t, 1, parser.Passes())

	srv.Handle(channel.Request{ID: 2, Op: channel.OpInit, Buffer: 1, Modified: true})
	srv.Handle(channel.Request{ID: 3, Op: channel.OpMatchTag, Buffer: 1, Lines: page})
	assert.Equal(t, 2, parser.Passes(), "modified flag from init reaches the next parse")
}

func TestHandle_Jump(t *testing.T) {
	t.Parallel()

	srv := newServer(t)

	resp := srv.Handle(channel.Request{ID: 1, Op: channel.OpJumpForward, Buffer: 1, Lines: page, Cursor: [2]int{1, 1}})
	require.Empty(t, resp.Error)
	assert.Equal(t, "target: ", resp.Prompt)
	require.Len(t, resp.Marks, 2)
	assert.Equal(t, channel.Mark{Label: "a", Cursor: [2]int{2, 2}}, resp.Marks[0])
	assert.Nil(t, resp.Cursor)

	resp = srv.Handle(channel.Request{ID: 2, Op: channel.OpJumpForward, Buffer: 1, Cursor: [2]int{1, 1}, Key: "b"})
	require.Empty(t, resp.Error)
	require.NotNil(t, resp.Cursor)
	assert.Equal(t, [2]int{3, 3}, *resp.Cursor)
	assert.Contains(t, resp.Clear, highlight.GroupJumpMark)
}

func TestHandle_ParseFailure(t *testing.T) {
	t.Parallel()

	srv := newServer(t)
	resp := srv.Handle(channel.Request{ID: 7, Op: channel.OpParent, Buffer: 2, Lines: []string{"<a href=\"x"}, Cursor: [2]int{1, 0}})
	assert.Contains(t, resp.Error, "operation aborted")
	assert.ElementsMatch(t, []string{highlight.GroupJumpMark, highlight.GroupShade, highlight.GroupHl}, resp.Clear)

	resp = srv.Handle(channel.Request{ID: 8, Op: channel.OpWhatsWrong, Buffer: 2, Cursor: [2]int{1, 0}})
	require.Len(t, resp.Messages, 1)
	assert.Contains(t, resp.Messages[0], "unterminated attribute value")
}

func TestHandle_InitDarkBackground(t *testing.T) {
	t.Parallel()

	srv := newServer(t)
	resp := srv.Handle(channel.Request{ID: 1, Op: channel.OpInit, Buffer: 1, Background: channel.BackgroundDark})
	assert.Len(t, resp.Commands, 3)
}

func TestHandle_Close(t *testing.T) {
	t.Parallel()

	srv := newServer(t)
	srv.Handle(channel.Request{ID: 1, Op: channel.OpInit, Buffer: 4})
	require.Equal(t, 1, srv.Sessions())

	srv.Handle(channel.Request{ID: 2, Op: channel.OpClose, Buffer: 4})
	assert.Equal(t, 0, srv.Sessions())
}

func TestHandleLine_Invalid(t *testing.T) {
	t.Parallel()

	srv := newServer(t)

	tests := []struct {
		name string
		line string
	}{
		{"not json", `{"id":`},
		{"unknown op", `{"id":5,"op":"explode","buffer":1}`},
		{"missing buffer", `{"id":5,"op":"parent"}`},
		{"bad cursor", `{"id":5,"op":"parent","buffer":1,"cursor":[1,-1]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := srv.HandleLine([]byte(tt.line))
			assert.Contains(t, resp.Error, "invalid request")
		})
	}
}

func TestHandle_MarkdownFiletype(t *testing.T) {
	t.Parallel()

	srv := newServer(t)
	lines := []string{"```", "<div>", "```", "<p>x</p>"}

	resp := srv.Handle(channel.Request{ID: 1, Op: channel.OpPrintDOM, Buffer: 1, Lines: lines, Filetype: "markdown"})
	require.Empty(t, resp.Error)
	assert.Equal(t, []string{"root", "  p 4:0"}, resp.Messages)

	resp = srv.Handle(channel.Request{ID: 2, Op: channel.OpPrintDOM, Buffer: 2, Lines: lines, Filetype: "html"})
	require.Empty(t, resp.Error)
	assert.Equal(t, []string{"root", "  div 2:0", "    p 4:0"}, resp.Messages)
}
