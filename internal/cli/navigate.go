package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/breeze/pkg/session"
)

func newMatchCommand() *cobra.Command {
	var pos positionFlags

	cmd := &cobra.Command{
		Use:   "match FILE",
		Short: "Move from a tag to its matching tag",
		Long: `Move the cursor from the start tag of the element under it to the end
tag, or from the end tag back to the start tag, and print where it lands.

Examples:
  breeze match index.html --line 12 --col 5`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := openFile(cmd, args[0], pos)
			if err != nil {
				return err
			}
			return file.run(cmd, file.session.MatchTag)
		},
	}

	addPositionFlags(cmd, &pos)

	return cmd
}

// gotoTargets maps goto directions to session operations.
//
//nolint:gochecknoglobals // Read-only lookup table.
var gotoTargets = map[string]func(*session.Session) error{
	"next":        (*session.Session).GotoNextSibling,
	"prev":        (*session.Session).GotoPrevSibling,
	"first":       (*session.Session).GotoFirstSibling,
	"last":        (*session.Session).GotoLastSibling,
	"first-child": (*session.Session).GotoFirstChild,
	"last-child":  (*session.Session).GotoLastChild,
	"parent":      (*session.Session).GotoParent,
}

func gotoDirections() []string {
	names := make([]string, 0, len(gotoTargets))
	for name := range gotoTargets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func newGotoCommand() *cobra.Command {
	var pos positionFlags

	cmd := &cobra.Command{
		Use:   "goto DIRECTION FILE",
		Short: "Move to a sibling, child or parent element",
		Long: `Move the cursor to a related element of the element under it.

Directions: ` + strings.Join(gotoDirections(), ", ") + `.

Examples:
  breeze goto next index.html --line 4
  breeze goto parent index.html --line 7 --col 9`,
		Args:      exactArgs(2),
		ValidArgs: gotoDirections(),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, ok := gotoTargets[args[0]]
			if !ok {
				return fmt.Errorf("%w: unknown direction %q (want one of %s)",
					ErrUsage, args[0], strings.Join(gotoDirections(), ", "))
			}

			file, err := openFile(cmd, args[1], pos)
			if err != nil {
				return err
			}
			return file.run(cmd, func() error {
				return target(file.session)
			})
		},
	}

	addPositionFlags(cmd, &pos)

	return cmd
}
