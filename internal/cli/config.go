package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/breeze/internal/configloader"
	"github.com/yaklabco/breeze/internal/logging"
	"github.com/yaklabco/breeze/internal/ui/pretty"
	"github.com/yaklabco/breeze/pkg/config"
	"github.com/yaklabco/breeze/pkg/fsutil"
)

// loadConfig resolves the configuration for cmd and applies its log level.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	ctx := commandContext(cmd)

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	debug, _ := cmd.Flags().GetBool("debug")

	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(errIO, fmt.Errorf("get working directory: %w", err))
	}

	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	}
	if debug {
		loadOpts.Overrides = append(loadOpts.Overrides, func(cfg *config.Config) {
			cfg.LogLevel = "debug"
		})
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return nil, errors.Join(errConfig, err)
	}

	logging.SetLevel(loadResult.Config.LogLevel)
	logger := logging.Default()

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// stylesFor returns output styles honoring the --color flag for cmd's output.
func stylesFor(cmd *cobra.Command) *pretty.Styles {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	return pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
}

// commandLogger returns the logger for cmd, with the command name attached.
func commandLogger(cmd *cobra.Command) *log.Logger {
	return logging.Default().With(logging.FieldOp, cmd.Name())
}

// commandContext returns cmd's context, or a background context when the
// command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// backupExisting backs up path before it is overwritten.
func backupExisting(cmd *cobra.Command, logger *log.Logger, path string) error {
	backup, err := fsutil.CreateBackup(commandContext(cmd), path)
	if err != nil {
		return errors.Join(errIO, err)
	}
	if backup != "" {
		logger.Info("saved previous file", logging.FieldPath, backup)
	}
	return nil
}
