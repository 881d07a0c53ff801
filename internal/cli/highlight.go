package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/breeze/internal/editor"
	"github.com/yaklabco/breeze/internal/ui/pretty"
	"github.com/yaklabco/breeze/pkg/highlight"
)

type highlightFlags struct {
	pos     positionFlags
	block   bool
	context int
}

func newHighlightCommand() *cobra.Command {
	flags := &highlightFlags{}

	cmd := &cobra.Command{
		Use:   "highlight FILE",
		Short: "Show the highlight of the element under the cursor",
		Long: `Highlight the tags of the element under the cursor, or with --block the
whole element, and print the affected lines.

Examples:
  breeze highlight index.html --line 5
  breeze highlight index.html --line 5 --block`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHighlight(cmd, args[0], flags)
		},
	}

	addPositionFlags(cmd, &flags.pos)
	cmd.Flags().BoolVarP(&flags.block, "block", "b", false, "highlight the whole element")
	cmd.Flags().IntVar(&flags.context, "context", 1, "lines of context around the element")

	return cmd
}

func runHighlight(cmd *cobra.Command, path string, flags *highlightFlags) error {
	file, err := openFile(cmd, path, flags.pos)
	if err != nil {
		return err
	}

	op := file.session.HighlightCurrentElement
	if flags.block {
		op = file.session.HighlightElementBlock
	}
	if err := op(); err != nil {
		return file.fail(cmd.ErrOrStderr(), err)
	}

	highlights := file.buffer.Highlights(highlight.GroupHl)
	if len(highlights) == 0 {
		fmt.Fprint(cmd.ErrOrStderr(), file.styles.FormatMessage("no element under the cursor"))
		return nil
	}

	from, to := highlightLines(highlights)
	fmt.Fprint(cmd.OutOrStdout(), file.styles.RenderBuffer(pretty.BufferView{
		Lines:      file.buffer.Lines(),
		Highlights: highlights,
		Cursor:     file.buffer.Cursor(),
		FromLine:   max(from-flags.context, 1),
		ToLine:     min(to+flags.context, len(file.buffer.Lines())),
	}))
	return nil
}

// highlightLines returns the first and last line touched by highlights.
func highlightLines(highlights []editor.Highlight) (int, int) {
	from, to := highlights[0].Region.StartLine, highlights[0].Region.EndLine
	for _, h := range highlights[1:] {
		from = min(from, h.Region.StartLine)
		to = max(to, h.Region.EndLine)
	}
	return from, to
}
