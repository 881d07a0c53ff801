package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/breeze/internal/logging"
	"github.com/yaklabco/breeze/internal/watch"
	"github.com/yaklabco/breeze/pkg/fsutil"
	"github.com/yaklabco/breeze/pkg/session"
)

func newWatchCommand() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-parse a file whenever it changes",
		Long: `Print the element tree of a file, then print it again each time the file
is saved. Parse errors are shown with the offending line. Stop with Ctrl-C.

Examples:
  breeze watch index.html
  breeze watch --debounce 500ms index.html`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0], debounce)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "wait this long after a change before re-parsing")

	return cmd
}

func runWatch(cmd *cobra.Command, path string, debounce time.Duration) error {
	file, err := openFile(cmd, path, positionFlags{line: 1, col: 1})
	if err != nil {
		return err
	}

	logger := logging.NewInteractive(file.cfg.LogLevel)

	watcher, err := watch.New(path, watch.Options{Debounce: debounce, Logger: logger})
	if err != nil {
		return errors.Join(errIO, err)
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	show := func() {
		tree, err := file.session.Tree()
		if errors.Is(err, session.ErrOperationAborted) {
			logger.Error("parse failed", logging.FieldPath, path)
			fmt.Fprint(cmd.OutOrStdout(), file.styles.FormatScanError(path, err, file.buffer.Lines()))
			return
		}
		logger.Info("parsed", logging.FieldPath, path, logging.FieldNodes, len(tree.Elements()))
		fmt.Fprint(cmd.OutOrStdout(), file.styles.FormatTree(tree))
	}

	show()
	logger.Info("watching for changes", logging.FieldPath, watcher.Path())

	current := file.file
	return watcher.Run(ctx, func() error {
		if !current.Changed() {
			logger.Debug("content unchanged", logging.FieldPath, path)
			return nil
		}
		next, err := fsutil.ReadBuffer(ctx, path)
		if err != nil {
			// Editors that save by rename briefly remove the file.
			logger.Warn("cannot read file", logging.FieldPath, path, logging.FieldError, err)
			return nil
		}
		current = next
		file.buffer.SetLines(next.Lines)
		show()
		return nil
	})
}
