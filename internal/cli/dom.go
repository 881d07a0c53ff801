package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDOMCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "dom FILE",
		Short: "Print the element tree of a file",
		Long: `Parse a file and print its element tree with the span of every element.

Examples:
  breeze dom index.html
  breeze dom --plain index.html   Print the dump editors show`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := openFile(cmd, args[0], positionFlags{line: 1, col: 1})
			if err != nil {
				return err
			}

			if plain {
				if err := file.session.PrintDOM(); err != nil {
					return file.fail(cmd.ErrOrStderr(), err)
				}
				for _, line := range file.buffer.Messages() {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
				return nil
			}

			tree, err := file.session.Tree()
			if err != nil {
				return file.fail(cmd.ErrOrStderr(), err)
			}
			fmt.Fprint(cmd.OutOrStdout(), file.styles.FormatTree(tree))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the plain dump instead of a styled tree")

	return cmd
}
