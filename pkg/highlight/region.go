// Package highlight computes the buffer regions to highlight for an element
// and renders them as Vim search patterns.
package highlight

import (
	"fmt"

	"github.com/yaklabco/breeze/pkg/dom"
)

// ToEndOfLine as an EndCol extends a region to the end of its last line.
const ToEndOfLine = -1

// Highlight group names.
const (
	GroupHl       = "BreezeHl"
	GroupShade    = "BreezeShade"
	GroupJumpMark = "BreezeJumpMark"
)

// Region is a line-bounded range of buffer characters.
// Lines are 1-based; columns are 0-based and inclusive.
// A region spanning several lines covers whole lines only.
type Region struct {
	StartLine int
	EndLine   int
	StartCol  int
	EndCol    int
}

// Columns returns a region covering columns from..to on one line.
func Columns(line, from, to int) Region {
	return Region{StartLine: line, EndLine: line, StartCol: from, EndCol: to}
}

// Tail returns a region from column from to the end of line.
func Tail(line, from int) Region {
	return Region{StartLine: line, EndLine: line, StartCol: from, EndCol: ToEndOfLine}
}

// Head returns a region from the start of line through column to.
func Head(line, to int) Region {
	return Region{StartLine: line, EndLine: line, StartCol: 0, EndCol: to}
}

// Lines returns a region covering whole lines from..to.
func Lines(from, to int) Region {
	return Region{StartLine: from, EndLine: to, StartCol: 0, EndCol: ToEndOfLine}
}

// Covers reports whether the character at pos lies in the region.
func (r Region) Covers(pos dom.Position) bool {
	if pos.Line < r.StartLine || pos.Line > r.EndLine {
		return false
	}
	if r.StartLine != r.EndLine {
		return true
	}
	if pos.Column < r.StartCol {
		return false
	}
	return r.EndCol == ToEndOfLine || pos.Column <= r.EndCol
}

// Pattern renders the region as a Vim search pattern using the
// \%l and \%c position atoms (Vim columns are 1-based).
func (r Region) Pattern() string {
	if r.StartLine != r.EndLine {
		return fmt.Sprintf(`\%%>%dl\%%<%dl`, r.StartLine-1, r.EndLine+1)
	}

	pattern := fmt.Sprintf(`\%%%dl`, r.StartLine)
	if r.StartCol > 0 {
		pattern += fmt.Sprintf(`\%%>%dc`, r.StartCol)
	}
	if r.EndCol != ToEndOfLine {
		pattern += fmt.Sprintf(`\%%<%dc`, r.EndCol+2)
	}
	return pattern
}

func (r Region) String() string {
	end := "$"
	if r.EndCol != ToEndOfLine {
		end = fmt.Sprint(r.EndCol)
	}
	return fmt.Sprintf("%d:%d-%d:%s", r.StartLine, r.StartCol, r.EndLine, end)
}
