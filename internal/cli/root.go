// Package cli provides the Cobra command structure for breeze.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/breeze/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root breeze command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "breeze",
		Short: "Navigate and highlight HTML elements by structure",
		Long: `breeze understands the element structure of HTML buffers.

It parses a buffer into a tree of elements and moves the cursor between
matching tags, siblings, parents and children, highlights the element
under the cursor, and labels nearby elements for one-key jumps.

Editors talk to breeze through "breeze serve", a line-oriented JSON
channel. The remaining commands run the same operations on files.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(usageError)

	rootCmd.AddCommand(newDOMCommand())
	rootCmd.AddCommand(newMatchCommand())
	rootCmd.AddCommand(newGotoCommand())
	rootCmd.AddCommand(newHighlightCommand())
	rootCmd.AddCommand(newJumpCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
