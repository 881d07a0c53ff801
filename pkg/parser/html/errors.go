package html

import (
	"errors"
	"fmt"
)

// Scan error kinds. A ScanError unwraps to one of these.
var (
	ErrMalformedStartTag     = errors.New("malformed start tag")
	ErrMalformedEndTag       = errors.New("malformed end tag")
	ErrUnterminatedComment   = errors.New("unterminated comment")
	ErrUnterminatedAttribute = errors.New("unterminated attribute value")
)

// ScanError reports lexically unrecoverable input.
// Scanning stops at the first ScanError.
type ScanError struct {
	// Kind is one of the Err* sentinels above.
	Kind error

	// Line is the 1-based line where the offending construct begins.
	Line int

	// Column is the 0-based column where the offending construct begins.
	Column int

	// Source is the offending line's text.
	Source string
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	return fmt.Sprintf("%s, at line %d, column %d", e.Kind, e.Line, e.Column+1)
}

// Unwrap returns the error kind.
func (e *ScanError) Unwrap() error {
	return e.Kind
}
