package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/breeze/internal/editor"
	"github.com/yaklabco/breeze/internal/ui/pretty"
	"github.com/yaklabco/breeze/pkg/jump"
)

type jumpFlags struct {
	pos      positionFlags
	backward bool
	key      string
}

func newJumpCommand() *cobra.Command {
	flags := &jumpFlags{}

	cmd := &cobra.Command{
		Use:   "jump FILE",
		Short: "Label nearby elements and jump to one",
		Long: `Label the elements after the cursor (before it with --backward) and move
to the one whose label is typed. On a terminal the labelled buffer is shown
and one key is read; Escape cancels. Elsewhere pass the label with --key,
or omit it to list the labels.

Examples:
  breeze jump index.html --line 3
  breeze jump index.html --line 9 --backward --key c`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJump(cmd, args[0], flags)
		},
	}

	addPositionFlags(cmd, &flags.pos)
	cmd.Flags().BoolVarP(&flags.backward, "backward", "B", false, "label elements before the cursor")
	cmd.Flags().StringVarP(&flags.key, "key", "k", "", "label to jump to")

	return cmd
}

func runJump(cmd *cobra.Command, path string, flags *jumpFlags) error {
	var file *fileSession
	var opts []editor.Option

	interactive := flags.key == "" && editor.IsTerminal(os.Stdin)
	switch {
	case flags.key != "":
		opts = append(opts, editor.WithKeys(flags.key))
	case interactive:
		reader, err := editor.TerminalKeyReader(os.Stdin, cmd.ErrOrStderr())
		if err != nil {
			return errors.Join(errIO, err)
		}
		opts = append(opts, editor.WithKeyReader(func(prompt string) (string, bool) {
			// The marks are on the buffer by the time the key is asked for.
			renderMarks(cmd.ErrOrStderr(), file, file.buffer.Marks())
			return reader(prompt)
		}))
	}

	file, err := openFile(cmd, path, flags.pos, opts...)
	if err != nil {
		return err
	}

	if flags.key == "" && !interactive {
		marks, err := file.session.JumpMarks(flags.backward)
		if err != nil {
			return file.fail(cmd.ErrOrStderr(), err)
		}
		if len(marks) == 0 {
			fmt.Fprint(cmd.ErrOrStderr(), file.styles.FormatMessage("nothing found"))
			return nil
		}
		renderMarks(cmd.OutOrStdout(), file, marks)
		return nil
	}

	op := file.session.JumpForward
	if flags.backward {
		op = file.session.JumpBackward
	}
	return file.run(cmd, op)
}

// renderMarks writes the lines carrying marks with their labels.
func renderMarks(w io.Writer, file *fileSession, marks []jump.Mark) {
	if len(marks) == 0 {
		return
	}

	from, to := marks[0].Position().Line, marks[0].Position().Line
	for _, m := range marks[1:] {
		from = min(from, m.Position().Line)
		to = max(to, m.Position().Line)
	}

	fmt.Fprint(w, file.styles.RenderBuffer(pretty.BufferView{
		Lines:      file.buffer.Lines(),
		Highlights: file.buffer.Highlights(""),
		Marks:      marks,
		Cursor:     file.buffer.Cursor(),
		FromLine:   from,
		ToLine:     to,
	}))
}
