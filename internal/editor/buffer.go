// Package editor provides editor hosts for sessions outside of a real
// editor: an in-memory buffer that records every effect an operation has,
// and a terminal key reader for interactive jumps.
package editor

import (
	"slices"

	"github.com/yaklabco/breeze/pkg/dom"
	"github.com/yaklabco/breeze/pkg/highlight"
	"github.com/yaklabco/breeze/pkg/jump"
)

// KeyReader prompts for one key. ok is false when the user cancels.
type KeyReader func(prompt string) (key string, ok bool)

// Highlight is one region applied to a highlight group.
type Highlight struct {
	Group  string
	Region highlight.Region
}

// Effects are the observable results of operations since the last
// TakeEffects call.
type Effects struct {
	Highlights []Highlight
	Cleared    []string
	Messages   []string
	Commands   []string
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithCursor sets the initial cursor.
func WithCursor(pos dom.Position) Option {
	return func(b *Buffer) {
		b.cursor = pos
	}
}

// WithDarkBackground reports a dark background to Init.
func WithDarkBackground(dark bool) Option {
	return func(b *Buffer) {
		b.dark = dark
	}
}

// WithKeyReader installs the source of ReadKey answers.
func WithKeyReader(reader KeyReader) Option {
	return func(b *Buffer) {
		b.readKey = reader
	}
}

// WithKeys answers ReadKey from a fixed list, then cancels.
func WithKeys(keys ...string) Option {
	return func(b *Buffer) {
		queue := slices.Clone(keys)
		b.readKey = func(string) (string, bool) {
			if len(queue) == 0 {
				return "", false
			}
			key := queue[0]
			queue = queue[1:]
			return key, true
		}
	}
}

// Buffer is an in-memory editor buffer.
// A Buffer is not safe for concurrent use.
type Buffer struct {
	lines    []string
	modified bool
	cursor   dom.Position
	dark     bool
	readKey  KeyReader

	jumps   []dom.Position
	marks   []jump.Mark
	redraws int

	active  []Highlight
	effects Effects
}

// NewBuffer returns a buffer holding lines with the cursor on 1:0.
// A new buffer counts as modified.
func NewBuffer(lines []string, opts ...Option) *Buffer {
	b := &Buffer{
		lines:    lines,
		modified: true,
		cursor:   dom.Position{Line: 1, Column: 0},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetLines replaces the buffer contents and flags the change.
func (b *Buffer) SetLines(lines []string) {
	b.lines = lines
	b.modified = true
}

// MarkModified flags a change made outside SetLines. The flag stays set
// until Modified consumes it.
func (b *Buffer) MarkModified() {
	b.modified = true
}

// SetDarkBackground changes the background reported to Init.
func (b *Buffer) SetDarkBackground(dark bool) {
	b.dark = dark
}

// Lines returns the buffer contents.
func (b *Buffer) Lines() []string {
	return b.lines
}

// Modified reports whether the buffer changed since the last call and
// resets the flag.
func (b *Buffer) Modified() bool {
	modified := b.modified
	b.modified = false
	return modified
}

// Cursor returns the cursor position.
func (b *Buffer) Cursor() dom.Position {
	return b.cursor
}

// SetCursor moves the cursor.
func (b *Buffer) SetCursor(pos dom.Position) {
	b.cursor = pos
}

// MarkJump pushes the cursor onto the jump list.
func (b *Buffer) MarkJump() {
	b.jumps = append(b.jumps, b.cursor)
}

// JumpList returns the recorded jump-list entries, oldest first.
func (b *Buffer) JumpList() []dom.Position {
	return b.jumps
}

// Highlight applies r to group.
func (b *Buffer) Highlight(group string, r highlight.Region) {
	h := Highlight{Group: group, Region: r}
	b.active = append(b.active, h)
	b.effects.Highlights = append(b.effects.Highlights, h)
}

// ClearHighlights removes every region of the given groups.
func (b *Buffer) ClearHighlights(groups ...string) {
	b.active = slices.DeleteFunc(b.active, func(h Highlight) bool {
		return slices.Contains(groups, h.Group)
	})
	b.effects.Highlights = slices.DeleteFunc(b.effects.Highlights, func(h Highlight) bool {
		return slices.Contains(groups, h.Group)
	})
	for _, g := range groups {
		if !slices.Contains(b.effects.Cleared, g) {
			b.effects.Cleared = append(b.effects.Cleared, g)
		}
	}
	if slices.Contains(groups, highlight.GroupJumpMark) {
		b.marks = nil
	}
}

// Highlights returns the regions currently applied to group, or to every
// group when group is empty.
func (b *Buffer) Highlights(group string) []Highlight {
	if group == "" {
		return slices.Clone(b.active)
	}
	var out []Highlight
	for _, h := range b.active {
		if h.Group == group {
			out = append(out, h)
		}
	}
	return out
}

// Message shows msg to the user.
func (b *Buffer) Message(msg string) {
	b.effects.Messages = append(b.effects.Messages, msg)
}

// Command records an editor command.
func (b *Buffer) Command(cmd string) {
	b.effects.Commands = append(b.effects.Commands, cmd)
}

// DarkBackground reports the configured background.
func (b *Buffer) DarkBackground() bool {
	return b.dark
}

// ReadKey asks the installed KeyReader; without one it cancels.
func (b *Buffer) ReadKey(prompt string) (string, bool) {
	if b.readKey == nil {
		return "", false
	}
	return b.readKey(prompt)
}

// ShowMarks records the labels drawn for a jump.
func (b *Buffer) ShowMarks(marks []jump.Mark) {
	b.marks = marks
}

// Marks returns the labels currently shown.
func (b *Buffer) Marks() []jump.Mark {
	return b.marks
}

// Redraw counts redraw requests.
func (b *Buffer) Redraw() {
	b.redraws++
}

// Redraws returns how many redraws were requested.
func (b *Buffer) Redraws() int {
	return b.redraws
}

// Messages returns the messages not yet taken.
func (b *Buffer) Messages() []string {
	return b.effects.Messages
}

// Commands returns the commands not yet taken.
func (b *Buffer) Commands() []string {
	return b.effects.Commands
}

// TakeEffects returns and resets the effects recorded so far.
// Active highlights are kept.
func (b *Buffer) TakeEffects() Effects {
	effects := b.effects
	b.effects = Effects{}
	return effects
}
