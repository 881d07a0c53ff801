package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/breeze/pkg/session"
)

// Exit codes for breeze.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitParseFailure indicates a buffer could not be parsed.
	ExitParseFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrParseFailed is returned when at least one file failed to parse.
	// The failure has already been reported.
	ErrParseFailed = errors.New("parse failed")

	// ErrUsage marks invalid arguments or flags.
	ErrUsage = errors.New("invalid usage")

	errConfig = errors.New("failed to load configuration")
	errIO     = errors.New("i/o failure")
)

// usageError wraps flag and argument errors so they map to ExitInvalidUsage.
func usageError(_ *cobra.Command, err error) error {
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError(cmd, err)
		}
		return nil
	}
}

// minimumArgs is cobra.MinimumNArgs reporting a usage error.
func minimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return usageError(cmd, err)
		}
		return nil
	}
}

// ExitCode maps an error returned by the root command to an exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrParseFailed), errors.Is(err, session.ErrOperationAborted):
		return ExitParseFailure
	case errors.Is(err, ErrUsage), strings.HasPrefix(err.Error(), "unknown command"):
		return ExitInvalidUsage
	case errors.Is(err, errConfig):
		return ExitConfigError
	case errors.Is(err, errIO), errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitIOError
	default:
		return ExitParseFailure
	}
}

// Silent reports whether err was already shown to the user.
func Silent(err error) bool {
	return errors.Is(err, ErrParseFailed)
}
