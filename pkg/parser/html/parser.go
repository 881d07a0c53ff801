// Package html implements a tolerant HTML parser for editor buffers.
//
// Parsing is split in two stages: a tag scanner that turns buffer lines
// into open/close/text events, and a tree builder that assembles those
// events into a dom.Tree, absorbing mismatched and missing closing tags.
// Only lexically unrecoverable input makes a parse fail.
package html

import (
	"fmt"
	"io"

	"github.com/yaklabco/breeze/pkg/dom"
)

// noErrorMessage is reported when the last parse succeeded.
const noErrorMessage = "no error"

// Masker rewrites buffer lines before scanning. It must preserve the
// number of lines and the length of every line.
type Masker func(lines []string) []string

// Option configures a Parser.
type Option func(*Parser)

// WithMasker installs a Masker applied before every scan.
func WithMasker(masker Masker) Option {
	return func(p *Parser) {
		p.masker = masker
	}
}

// Parser owns one scan/build pass per Feed and exposes its result.
// A Parser is not safe for concurrent use.
type Parser struct {
	masker  Masker
	tree    *dom.Tree
	success bool
	err     error
	passes  int
}

// New creates a parser with no tree.
func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Feed parses the buffer lines, replacing any previous result.
// On a scan error Success reports false, Err holds the *ScanError and Tree
// holds whatever was built from the events before the error.
func (p *Parser) Feed(lines []string) {
	p.passes++

	if p.masker != nil {
		lines = p.masker(lines)
	}

	events, err := Scan(lines)
	p.tree = Build(events)
	p.err = err
	p.success = err == nil
}

// Tree returns the tree built by the last Feed, or nil before any Feed.
func (p *Parser) Tree() *dom.Tree {
	return p.tree
}

// Success reports whether the last Feed parsed without a scan error.
func (p *Parser) Success() bool {
	return p.success
}

// Err returns the last scan error, or nil.
func (p *Parser) Err() error {
	return p.err
}

// ErrorMessage describes the last failure for the user.
func (p *Parser) ErrorMessage() string {
	if p.err == nil {
		return noErrorMessage
	}
	return p.err.Error()
}

// Passes returns how many times Feed has run.
func (p *Parser) Passes() int {
	return p.passes
}

// CurrentNode returns the innermost element containing pos, or nil.
func (p *Parser) CurrentNode(pos dom.Position) *dom.Node {
	if p.tree == nil {
		return nil
	}
	return p.tree.NodeAt(pos)
}

// PrintDOM writes the debug dump of the current tree.
func (p *Parser) PrintDOM(w io.Writer) error {
	if p.tree == nil {
		if _, err := fmt.Fprintln(w, "no tree"); err != nil {
			return fmt.Errorf("write dom dump: %w", err)
		}
		return nil
	}
	return p.tree.Dump(w)
}
