package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/breeze/internal/logging"
	"github.com/yaklabco/breeze/pkg/config"
	"github.com/yaklabco/breeze/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// defaultConfigFile is the project configuration file init and migrate write.
const defaultConfigFile = ".breeze.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new breeze configuration file",
		Long: `Create a .breeze.yml configuration file in the current directory holding
the default highlight colors, mark alphabet and options.

Examples:
  breeze init                        Create .breeze.yml
  breeze init --output custom.yml    Write to a custom file path`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "Output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	debug, _ := cmd.Flags().GetBool("debug")
	level := "info"
	if debug {
		level = "debug"
	}
	logger := logging.NewInteractive(level)

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
		if err := backupExisting(cmd, logger, absPath); err != nil {
			return err
		}
	}

	content, err := config.GenerateTemplate()
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(commandContext(cmd), absPath, content, configFilePermissions); err != nil {
		return errors.Join(errIO, fmt.Errorf("write file: %w", err))
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("customize your configuration by editing the file")

	return nil
}
