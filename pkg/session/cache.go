package session

import (
	"errors"
	"fmt"

	"github.com/yaklabco/breeze/pkg/dom"
	"github.com/yaklabco/breeze/pkg/highlight"
	"github.com/yaklabco/breeze/pkg/parser/html"
)

// ErrOperationAborted is returned when the buffer could not be parsed.
// The underlying *html.ScanError is wrapped alongside it.
var ErrOperationAborted = errors.New("operation aborted")

// Cache reparses the buffer only when needed and keeps the last good tree.
//
// A failed parse clears the transient highlight groups and forces a
// reparse on the next request, whatever the modified flag says.
type Cache struct {
	parser       *html.Parser
	needsRefresh bool
	cached       *dom.Tree
}

// NewCache returns a cache that will parse on first use.
func NewCache(parser *html.Parser) *Cache {
	return &Cache{parser: parser, needsRefresh: true}
}

// EnsureFresh returns an up to date tree for the editor's buffer.
// The second result reports whether the cached tree was reused.
func (c *Cache) EnsureFresh(editor Editor) (*dom.Tree, bool, error) {
	if !c.needsRefresh && !editor.Modified() && c.cached != nil {
		return c.cached, true, nil
	}

	c.parser.Feed(editor.Lines())
	if !c.parser.Success() {
		editor.ClearHighlights(highlight.GroupJumpMark, highlight.GroupShade, highlight.GroupHl)
		c.needsRefresh = true
		return nil, false, fmt.Errorf("%w: %w", ErrOperationAborted, c.parser.Err())
	}

	c.cached = c.parser.Tree()
	c.needsRefresh = false
	return c.cached, false, nil
}

// Invalidate forces a reparse on the next EnsureFresh.
func (c *Cache) Invalidate() {
	c.needsRefresh = true
}
