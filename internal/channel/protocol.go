// Package channel serves breeze sessions to editors over a JSON-lines
// channel on stdin/stdout. Each request carries a snapshot of one buffer;
// one session is kept per buffer number so parse caching works across
// requests.
package channel

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Operation names accepted in Request.Op.
const (
	OpInit             = "init"
	OpJumpForward      = "jump-forward"
	OpJumpBackward     = "jump-backward"
	OpHighlightElement = "highlight-element"
	OpHighlightBlock   = "highlight-block"
	OpMatchTag         = "match-tag"
	OpNextSibling      = "next-sibling"
	OpPrevSibling      = "prev-sibling"
	OpFirstSibling     = "first-sibling"
	OpLastSibling      = "last-sibling"
	OpFirstChild       = "first-child"
	OpLastChild        = "last-child"
	OpParent           = "parent"
	OpPrintDOM         = "print-dom"
	OpWhatsWrong       = "whats-wrong"
	OpClose            = "close"
)

// Background values.
const (
	BackgroundLight = "light"
	BackgroundDark  = "dark"
)

// Request is one editor command with a snapshot of its buffer.
type Request struct {
	ID     int    `json:"id"`
	Op     string `json:"op"`
	Buffer int    `json:"buffer"`

	// Lines replaces the session's buffer when present.
	Lines    []string `json:"lines,omitempty"`
	Modified bool     `json:"modified"`

	// Cursor is [line, column], 1-based line and 0-based column.
	// Line 0 keeps the session's cursor.
	Cursor     [2]int `json:"cursor"`
	Background string `json:"background,omitempty"`

	// Filetype is the editor's filetype, used when the buffer is first
	// seen to decide whether Markdown masking applies.
	Filetype string `json:"filetype,omitempty"`

	// Key answers the jump prompt. A jump without a key returns the marks.
	Key string `json:"key,omitempty"`
}

// Highlight is a highlight group and the Vim pattern to apply it with.
type Highlight struct {
	Group   string `json:"group"`
	Pattern string `json:"pattern"`
}

// Mark is a jump-mark label and where to draw it.
type Mark struct {
	Label  string `json:"label"`
	Cursor [2]int `json:"cursor"`
}

// Response reports the effects of a request.
type Response struct {
	ID         int         `json:"id"`
	Cursor     *[2]int     `json:"cursor,omitempty"`
	Highlights []Highlight `json:"highlights,omitempty"`
	Clear      []string    `json:"clear,omitempty"`
	Messages   []string    `json:"messages,omitempty"`
	Commands   []string    `json:"commands,omitempty"`
	Marks      []Mark      `json:"marks,omitempty"`
	Prompt     string      `json:"prompt,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// requestSchema is the JSON schema every request line must satisfy.
const requestSchema = `{
  "type": "object",
  "required": ["id", "op", "buffer"],
  "properties": {
    "id": {"type": "integer"},
    "op": {"enum": [
      "init", "jump-forward", "jump-backward", "highlight-element",
      "highlight-block", "match-tag", "next-sibling", "prev-sibling",
      "first-sibling", "last-sibling", "first-child", "last-child",
      "parent", "print-dom", "whats-wrong", "close"
    ]},
    "buffer": {"type": "integer", "minimum": 0},
    "lines": {"type": "array", "items": {"type": "string"}},
    "modified": {"type": "boolean"},
    "cursor": {
      "type": "array",
      "items": [
        {"type": "integer", "minimum": 0},
        {"type": "integer", "minimum": 0}
      ],
      "minItems": 2,
      "maxItems": 2
    },
    "background": {"enum": ["light", "dark"]},
    "filetype": {"type": "string"},
    "key": {"type": "string", "maxLength": 8}
  }
}`

// validator checks raw request lines against requestSchema.
type validator struct {
	schema *gojsonschema.Schema
}

func newValidator() (*validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(requestSchema))
	if err != nil {
		return nil, fmt.Errorf("compile request schema: %w", err)
	}
	return &validator{schema: schema}, nil
}

// validate returns an error listing every schema violation in line.
func (v *validator) validate(line []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(line))
	if err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var b strings.Builder
	for _, e := range result.Errors() {
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.String())
	}
	return fmt.Errorf("invalid request: %s", b.String())
}
