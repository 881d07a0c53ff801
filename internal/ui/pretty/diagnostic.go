package pretty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/breeze/pkg/parser/html"
)

// FormatScanError formats a parse failure with the offending source line.
// lines is the buffer the error was reported against and may be nil.
func (s *Styles) FormatScanError(path string, err error, lines []string) string {
	var scanErr *html.ScanError
	if !errors.As(err, &scanErr) {
		return fmt.Sprintf("  %s  %s  %s\n",
			s.FilePath.Render(path), s.Error.Render("error"), s.Message.Render(err.Error()))
	}

	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(path),
		scanErr.Line,
		scanErr.Column+1,
	)

	builder.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		location,
		s.Error.Render("error"),
		s.Message.Render(scanErr.Kind.Error()),
	))

	if scanErr.Line >= 1 && scanErr.Line <= len(lines) {
		builder.WriteString(s.FormatSourceContext(lines[scanErr.Line-1], scanErr.Column+1))
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret marker under
// the 1-based column.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatMessage formats a session message such as a navigation miss.
func (s *Styles) FormatMessage(msg string) string {
	return s.Info.Render("breeze:") + " " + s.Message.Render(msg) + "\n"
}
