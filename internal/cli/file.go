package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/breeze/internal/editor"
	"github.com/yaklabco/breeze/internal/logging"
	"github.com/yaklabco/breeze/internal/ui/pretty"
	"github.com/yaklabco/breeze/pkg/config"
	"github.com/yaklabco/breeze/pkg/dom"
	"github.com/yaklabco/breeze/pkg/fsutil"
	"github.com/yaklabco/breeze/pkg/langdetect"
	"github.com/yaklabco/breeze/pkg/session"
)

// positionFlags holds the cursor flags shared by file commands.
// Both are 1-based, as editors show them.
type positionFlags struct {
	line int
	col  int
}

func addPositionFlags(cmd *cobra.Command, flags *positionFlags) {
	cmd.Flags().IntVarP(&flags.line, "line", "l", 1, "cursor line (1-based)")
	cmd.Flags().IntVarP(&flags.col, "col", "c", 1, "cursor column (1-based)")
}

func (f *positionFlags) position() (dom.Position, error) {
	pos := dom.Position{Line: f.line, Column: f.col - 1}
	if !pos.IsValid() {
		return dom.Position{}, fmt.Errorf("%w: --line and --col must be at least 1", ErrUsage)
	}
	return pos, nil
}

// fileSession is a file loaded into an editor buffer with a session on it.
type fileSession struct {
	path    string
	file    *fsutil.Buffer
	lang    langdetect.Language
	cfg     *config.Config
	buffer  *editor.Buffer
	session *session.Session
	styles  *pretty.Styles
}

// readBuffer reads path, reporting failures as I/O errors.
func readBuffer(cmd *cobra.Command, path string) (*fsutil.Buffer, error) {
	buf, err := fsutil.ReadBuffer(commandContext(cmd), path)
	if err != nil {
		return nil, errors.Join(errIO, err)
	}
	return buf, nil
}

// openFile loads path into a buffer and starts a session on it.
func openFile(cmd *cobra.Command, path string, pos positionFlags, opts ...editor.Option) (*fileSession, error) {
	cursor, err := pos.position()
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	file, err := readBuffer(cmd, path)
	if err != nil {
		return nil, err
	}
	lines := file.Lines
	if cursor.Line > len(lines) {
		return nil, fmt.Errorf("%w: line %d is past the end of %s (%d lines)", ErrUsage, cursor.Line, path, len(lines))
	}

	logger := commandLogger(cmd)
	lang := langdetect.Detect(path, file.Content)
	if !lang.IsMarkup() {
		logger.Warn("file does not look like markup", logging.FieldPath, path, logging.FieldLanguage, lang)
	}
	logger.Debug("opened file",
		logging.FieldPath, path,
		logging.FieldLanguage, lang,
		logging.FieldLines, len(lines),
		logging.FieldCursor, cursor.String())

	opts = append([]editor.Option{editor.WithCursor(cursor)}, opts...)
	buffer := editor.NewBuffer(lines, opts...)

	return &fileSession{
		path:   path,
		file:   file,
		lang:   lang,
		cfg:    cfg,
		buffer: buffer,
		session: session.New(buffer, cfg,
			session.WithLogger(logger),
			session.WithParser(session.NewParser(lang, cfg))),
		styles: stylesFor(cmd),
	}, nil
}

// fail reports an aborted operation with the offending line and returns
// ErrParseFailed. Other errors are returned unchanged.
func (f *fileSession) fail(w io.Writer, err error) error {
	if !errors.Is(err, session.ErrOperationAborted) {
		return err
	}
	fmt.Fprint(w, f.styles.FormatScanError(f.path, err, f.buffer.Lines()))
	return ErrParseFailed
}

// printMessages writes the session's messages to w.
func (f *fileSession) printMessages(w io.Writer) {
	for _, msg := range f.buffer.Messages() {
		fmt.Fprint(w, f.styles.FormatMessage(msg))
	}
}

// location formats the cursor as path:line:col with a 1-based column.
func (f *fileSession) location() string {
	cursor := f.buffer.Cursor()
	return f.styles.FilePath.Render(f.path) + ":" +
		f.styles.Location.Render(fmt.Sprintf("%d:%d", cursor.Line, cursor.Column+1))
}

// printCursor writes the cursor location and its line to w.
func (f *fileSession) printCursor(w io.Writer) {
	cursor := f.buffer.Cursor()
	fmt.Fprintln(w, f.location())
	fmt.Fprint(w, f.styles.RenderBuffer(pretty.BufferView{
		Lines:    f.buffer.Lines(),
		Cursor:   cursor,
		FromLine: cursor.Line,
		ToLine:   cursor.Line,
	}))
}

// run executes op and prints the outcome of a cursor movement.
func (f *fileSession) run(cmd *cobra.Command, op func() error) error {
	if err := op(); err != nil {
		return f.fail(cmd.ErrOrStderr(), err)
	}
	f.printMessages(cmd.ErrOrStderr())
	f.printCursor(cmd.OutOrStdout())
	return nil
}
