package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/breeze/internal/logging"
	"github.com/yaklabco/breeze/internal/ui/pretty"
	"github.com/yaklabco/breeze/pkg/runner"
)

type checkFlags struct {
	jobs     int
	exclude  []string
	symlinks bool
}

func newCheckCommand() *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "check PATH...",
		Short: "Report whether files parse",
		Long: `Parse each file and report the first error that stops it from parsing:
an unterminated comment, tag, attribute value or script body.

Directories are walked for markup files (.html, .vue, .md, .xml and similar).
Files named on the command line are parsed whatever their extension.

Examples:
  breeze check index.html
  breeze check site/ --exclude 'vendor/**'
  breeze check templates/*.html --jobs 4`,
		Args: minimumArgs(1),
		RunE: func(cmd *cobra.Command, paths []string) error {
			return runCheck(cmd, paths, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "parallel workers (0 = number of CPUs)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns of paths to skip")
	cmd.Flags().BoolVar(&flags.symlinks, "follow-symlinks", false, "walk symlinked directories")

	return cmd
}

func runCheck(cmd *cobra.Command, paths []string, flags checkFlags) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return errors.Join(errIO, err)
	}

	ctx := logging.WithFields(commandContext(cmd), logging.FieldOp, cmd.Name())
	logger := logging.FromContext(ctx)
	styles := stylesFor(cmd)
	out := cmd.OutOrStdout()

	result, err := runner.New(nil).Run(ctx, runner.Options{
		Paths:          paths,
		WorkingDir:     workDir,
		ExcludeGlobs:   flags.exclude,
		FollowSymlinks: flags.symlinks,
		Jobs:           flags.jobs,
		Config:         cfg,
	})
	if err != nil {
		return errors.Join(errIO, err)
	}

	var stats pretty.CheckStats
	var ioErrs []error

	for _, outcome := range result.Files {
		path := displayPath(workDir, outcome.Path)

		switch {
		case outcome.Error != nil:
			ioErrs = append(ioErrs, outcome.Error)
			continue
		case outcome.ParseErr != nil:
			stats.Files++
			stats.Failed++
			fmt.Fprint(out, styles.FormatScanError(path, outcome.ParseErr, outcome.Lines))
			continue
		}

		if !outcome.Language.IsMarkup() {
			logger.Warn("file does not look like markup", logging.FieldPath, path, logging.FieldLanguage, outcome.Language)
		}
		stats.Files++
		stats.Elements += outcome.Elements
		fmt.Fprint(out, styles.FormatCheckLine(path, string(outcome.Language), outcome.Elements))
	}

	if stats.Files > 0 {
		fmt.Fprintln(out)
		fmt.Fprint(out, styles.FormatCheckSummary(stats))
	} else if len(ioErrs) == 0 {
		fmt.Fprint(out, styles.FormatMessage("no markup files found"))
	}

	if len(ioErrs) > 0 {
		return errors.Join(append([]error{errIO}, ioErrs...)...)
	}
	if result.HasFailures() {
		return ErrParseFailed
	}
	return nil
}

// displayPath shows path relative to workDir when it lies beneath it.
func displayPath(workDir, path string) string {
	rel, err := filepath.Rel(workDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
