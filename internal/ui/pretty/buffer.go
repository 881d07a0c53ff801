package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/breeze/internal/editor"
	"github.com/yaklabco/breeze/pkg/dom"
	"github.com/yaklabco/breeze/pkg/highlight"
	"github.com/yaklabco/breeze/pkg/jump"
)

// BufferView is a buffer snapshot to render.
type BufferView struct {
	Lines      []string
	Highlights []editor.Highlight
	Marks      []jump.Mark
	Cursor     dom.Position

	// FromLine and ToLine bound the rendered lines (1-based, inclusive).
	// Zero values render the whole buffer.
	FromLine int
	ToLine   int
}

// cellKind orders the styles applied to a character; later kinds win.
type cellKind int

const (
	cellPlain cellKind = iota
	cellShade
	cellHl
	cellCursor
	cellMark
)

// RenderBuffer renders lines with a line-number gutter, applying the
// highlight groups, jump-mark labels and the cursor. Without color,
// highlighted columns are marked with '^' on an extra line.
func (s *Styles) RenderBuffer(view BufferView) string {
	from, to := view.FromLine, view.ToLine
	if from < 1 {
		from = 1
	}
	if to < 1 || to > len(view.Lines) {
		to = len(view.Lines)
	}

	labels := make(map[dom.Position]string, len(view.Marks))
	for _, m := range view.Marks {
		labels[m.Position()] = m.Label
	}

	width := len(fmt.Sprint(to))
	var builder strings.Builder
	for lineNo := from; lineNo <= to; lineNo++ {
		line := view.Lines[lineNo-1]
		gutter := s.LineNumber.Render(fmt.Sprintf("%*d │ ", width, lineNo))

		builder.WriteString(gutter)
		builder.WriteString(s.renderLine(lineNo, line, view, labels))
		builder.WriteString("\n")

		if !s.colorEnabled {
			if markers := hlMarkers(lineNo, line, view.Highlights); markers != "" {
				builder.WriteString(strings.Repeat(" ", width) + " │ " + markers + "\n")
			}
		}
	}
	return builder.String()
}

func (s *Styles) renderLine(lineNo int, line string, view BufferView, labels map[dom.Position]string) string {
	var builder strings.Builder
	var run strings.Builder
	current := cellPlain

	flush := func() {
		if run.Len() == 0 {
			return
		}
		builder.WriteString(s.cellStyle(current).Render(run.String()))
		run.Reset()
	}

	for col, r := range line {
		pos := dom.Position{Line: lineNo, Column: col}
		kind := cellAt(pos, view.Highlights)
		text := string(r)

		if label, ok := labels[pos]; ok {
			kind, text = cellMark, label
		} else if pos == view.Cursor {
			kind = cellCursor
		}

		if kind != current {
			flush()
			current = kind
		}
		run.WriteString(text)
	}
	flush()

	if view.Cursor.Line == lineNo && view.Cursor.Column >= len(line) {
		builder.WriteString(s.Cursor.Render(" "))
	}
	return builder.String()
}

func (s *Styles) cellStyle(kind cellKind) lipgloss.Style {
	switch kind {
	case cellShade:
		return s.Shade
	case cellHl:
		return s.Hl
	case cellCursor:
		return s.Cursor
	case cellMark:
		return s.JumpMark
	default:
		return lipgloss.NewStyle()
	}
}

func cellAt(pos dom.Position, highlights []editor.Highlight) cellKind {
	kind := cellPlain
	for _, h := range highlights {
		if !h.Region.Covers(pos) {
			continue
		}
		switch h.Group {
		case highlight.GroupHl:
			kind = max(kind, cellHl)
		case highlight.GroupShade:
			kind = max(kind, cellShade)
		case highlight.GroupJumpMark:
			kind = max(kind, cellMark)
		}
	}
	return kind
}

// hlMarkers returns a caret row for the BreezeHl columns of a line, or "".
func hlMarkers(lineNo int, line string, highlights []editor.Highlight) string {
	marks := []byte(strings.Repeat(" ", len(line)))
	found := false
	for col := range marks {
		pos := dom.Position{Line: lineNo, Column: col}
		for _, h := range highlights {
			if h.Group == highlight.GroupHl && h.Region.Covers(pos) {
				marks[col] = '^'
				found = true
				break
			}
		}
	}
	if !found {
		return ""
	}
	return strings.TrimRight(string(marks), " ")
}
