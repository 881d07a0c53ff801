package pretty

import (
	"fmt"
	"strings"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// CheckStats summarizes a check run.
type CheckStats struct {
	Files    int
	Failed   int
	Elements int
}

// FormatCheckLine formats the result for one file.
func (s *Styles) FormatCheckLine(path, language string, elements int) string {
	return fmt.Sprintf("  %s  %s  %s\n",
		s.Success.Render("ok"),
		s.FilePath.Render(path),
		s.Dim.Render(fmt.Sprintf("(%s, %d elements)", language, elements)),
	)
}

// FormatCheckSummary formats check statistics as a single line.
// Example: "1 of 3 files failed to parse".
func (s *Styles) FormatCheckSummary(stats CheckStats) string {
	fileWord := wordFiles
	if stats.Files == 1 {
		fileWord = wordFile
	}

	if stats.Failed == 0 {
		return s.Success.Render("All files parse") +
			s.Dim.Render(fmt.Sprintf(" (%d %s, %d elements)", stats.Files, fileWord, stats.Elements)) + "\n"
	}

	parts := []string{
		s.Failure.Render(fmt.Sprintf("%d of %d %s failed to parse", stats.Failed, stats.Files, fileWord)),
	}
	if ok := stats.Files - stats.Failed; ok > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d ok", ok)))
	}
	return strings.Join(parts, ", ") + "\n"
}
