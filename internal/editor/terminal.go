package editor

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when keys cannot be read from the input.
var ErrNotTerminal = errors.New("input is not a terminal")

const (
	keyEscape = 0x1b
	keyCtrlC  = 0x03
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalKeyReader reads single keys from in, which must be a terminal,
// writing the prompt to out. Escape and Ctrl-C cancel.
func TerminalKeyReader(in *os.File, out io.Writer) (KeyReader, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	return func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		defer fmt.Fprintln(out)

		state, err := term.MakeRaw(fd)
		if err != nil {
			return "", false
		}
		defer func() { _ = term.Restore(fd, state) }()

		var buf [1]byte
		if _, err := in.Read(buf[:]); err != nil {
			return "", false
		}
		if buf[0] == keyEscape || buf[0] == keyCtrlC {
			return "", false
		}
		return string(buf[:]), true
	}, nil
}
