package dom

import "fmt"

// Position is a location in a buffer.
// Line is 1-based; Column is the 0-based byte offset within the line,
// matching the editor cursor convention.
type Position struct {
	Line   int
	Column int
}

// Compare orders positions in document order.
// It returns -1 if p is before other, 1 if after, and 0 if equal.
func (p Position) Compare(other Position) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Column < other.Column:
		return -1
	case p.Column > other.Column:
		return 1
	default:
		return 0
	}
}

// Before reports whether p precedes other in document order.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After reports whether p follows other in document order.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// IsValid returns true if the position has a positive line and a non-negative column.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column >= 0
}

// Shift returns the position moved by delta columns on the same line.
func (p Position) Shift(delta int) Position {
	return Position{Line: p.Line, Column: p.Column + delta}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is an inclusive range of source characters.
// End is the position of the last character, not one past it.
type Span struct {
	Start Position
	End   Position
}

// IsZero returns true for the zero span, used for absent tags.
func (s Span) IsZero() bool {
	return s == Span{}
}

// Contains returns true if pos lies within the span.
func (s Span) Contains(pos Position) bool {
	if s.IsZero() {
		return false
	}
	return s.Start.Compare(pos) <= 0 && pos.Compare(s.End) <= 0
}

// IsSingleLine returns true if the span starts and ends on the same line.
func (s Span) IsSingleLine() bool {
	return s.Start.Line == s.End.Line
}
