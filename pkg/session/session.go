// Package session binds the parser, navigator and highlighter to one
// editor buffer. A Session replaces the editor plugin's global state: it
// owns the parse cache and turns user commands into cursor moves,
// highlights and messages on the Editor it was created with.
//
// Operations return an error only when the buffer cannot be parsed.
// Navigation misses are reported to the user through Editor.Message.
package session

import (
	"github.com/charmbracelet/log"

	"github.com/yaklabco/breeze/internal/logging"
	"github.com/yaklabco/breeze/pkg/config"
	"github.com/yaklabco/breeze/pkg/dom"
	"github.com/yaklabco/breeze/pkg/highlight"
	"github.com/yaklabco/breeze/pkg/navigate"
	"github.com/yaklabco/breeze/pkg/parser/html"
)

// Editor is the host editor as seen by a session.
type Editor interface {
	// Lines returns the buffer contents, one entry per line.
	Lines() []string
	// Modified reports whether the buffer changed since the last call.
	Modified() bool
	Cursor() dom.Position
	SetCursor(pos dom.Position)
	// MarkJump records the cursor position in the jump list.
	MarkJump()
	Highlight(group string, r highlight.Region)
	ClearHighlights(groups ...string)
	Message(msg string)
	// Command runs an editor command, used to define highlight groups.
	Command(cmd string)
	DarkBackground() bool
	// ReadKey prompts for a single key. ok is false when the user cancels.
	ReadKey(prompt string) (key string, ok bool)
	Redraw()
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithParser replaces the default parser, e.g. to install a masker.
func WithParser(parser *html.Parser) Option {
	return func(s *Session) {
		s.parser = parser
	}
}

// Session runs breeze operations against one editor buffer.
// A Session is not safe for concurrent use.
type Session struct {
	editor Editor
	cfg    *config.Config
	parser *html.Parser
	cache  *Cache
	logger *log.Logger
}

// New creates a session for editor. A nil cfg uses the defaults.
func New(editor Editor, cfg *config.Config, opts ...Option) *Session {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	s := &Session{
		editor: editor,
		cfg:    cfg,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.parser == nil {
		s.parser = html.New()
	}
	if s.logger == nil {
		s.logger = logging.Default()
	}
	s.cache = NewCache(s.parser)

	return s
}

// Parser returns the session's parser.
func (s *Session) Parser() *html.Parser {
	return s.parser
}

// Invalidate forces the next operation to reparse the buffer.
func (s *Session) Invalidate() {
	s.cache.Invalidate()
}

// withFreshTree runs fn with an up to date tree, or aborts when the
// buffer does not parse.
func (s *Session) withFreshTree(op string, fn func(tree *dom.Tree) error) error {
	tree, hit, err := s.cache.EnsureFresh(s.editor)
	if err != nil {
		s.logger.Debug("parse failed",
			logging.FieldOp, op,
			logging.FieldPasses, s.parser.Passes(),
			logging.FieldError, err)
		return err
	}

	s.logger.Debug("tree ready",
		logging.FieldOp, op,
		logging.FieldCacheHit, hit,
		logging.FieldNodes, tree.Len()-1,
		logging.FieldPasses, s.parser.Passes())

	return fn(tree)
}

// withSavedPosition records the cursor in the jump list before fn moves it.
func (s *Session) withSavedPosition(fn func() error) error {
	s.editor.MarkJump()
	return fn()
}

// moveTo places the cursor on pos, adjusted for JumpToAngleBracket.
func (s *Session) moveTo(op string, pos dom.Position) {
	target := navigate.Target(pos, s.cfg.JumpToAngleBracket)
	s.logger.Debug("move",
		logging.FieldOp, op,
		logging.FieldCursor, s.editor.Cursor(),
		logging.FieldTarget, target)
	s.editor.SetCursor(target)
}

// miss reports a navigation miss to the user.
func (s *Session) miss(err error) {
	s.editor.Message(err.Error())
}

// Tree returns an up to date tree for the buffer.
func (s *Session) Tree() (*dom.Tree, error) {
	var result *dom.Tree
	err := s.withFreshTree("tree", func(tree *dom.Tree) error {
		result = tree
		return nil
	})
	return result, err
}
