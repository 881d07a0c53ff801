package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/breeze/internal/configloader"
	"github.com/yaklabco/breeze/internal/logging"
)

// migrateFlags holds the flags for the migrate command.
type migrateFlags struct {
	force  bool
	output string
	input  string
}

func newMigrateCommand() *cobra.Command {
	flags := &migrateFlags{}

	cmd := &cobra.Command{
		Use:   "migrate [vimrc]",
		Short: "Convert g:breeze_* Vim settings to a breeze configuration",
		Long: `Read the "let g:breeze_..." settings of a Vim script and write them as a
.breeze.yml configuration file, so the CLI and "breeze serve" use the same
colors and options as the editor.

If no script is given, ~/.vimrc, ~/.vim/vimrc and the Neovim init.vim are
searched in that order.

Examples:
  breeze migrate                        Convert settings from your vimrc
  breeze migrate ~/.vim/plugin/ui.vim   Convert a specific script
  breeze migrate --output config.yml    Write to a custom output path`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.input = args[0]
			}
			return runMigrate(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing output file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "Output file path")

	return cmd
}

func runMigrate(cmd *cobra.Command, flags *migrateFlags) error {
	debug, _ := cmd.Flags().GetBool("debug")
	level := "info"
	if debug {
		level = "debug"
	}
	logger := logging.NewInteractive(level)

	inputPath := flags.input
	if inputPath == "" {
		inputPath = configloader.FindVimrc()
		if inputPath == "" {
			return errors.Join(errIO, errors.New("no vimrc found; pass the script to convert"))
		}
		logger.Info("found vimrc", logging.FieldPath, inputPath)
	}

	settings, err := configloader.ParseVimSettings(inputPath)
	if err != nil {
		return errors.Join(errIO, err)
	}
	if len(settings.Values) == 0 {
		return fmt.Errorf("%w: no g:breeze_* settings in %s", errConfig, inputPath)
	}

	absOutput, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	if _, err := os.Stat(absOutput); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: output file %q already exists; use --force to overwrite", ErrUsage, flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
		if err := backupExisting(cmd, logger, absOutput); err != nil {
			return err
		}
	}

	result, err := configloader.ConvertVimSettings(inputPath)
	if err != nil {
		return fmt.Errorf("convert settings: %w", err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	if validation := configloader.ValidateWithFile(result.Config, inputPath); !validation.Valid() {
		for _, msg := range validation.AllMessages() {
			logger.Warn(msg)
		}
		return fmt.Errorf("%w: migrated settings are invalid", errConfig)
	}

	header := configloader.GenerateMigrationHeader(inputPath)
	if err := configloader.WriteConfig(commandContext(cmd), result.Config, absOutput, header); err != nil {
		return errors.Join(errIO, err)
	}

	logger.Info("migration complete", logging.FieldPath, flags.output, logging.FieldConfig, inputPath)

	if len(result.Warnings) > 0 {
		logger.Warn("review warnings above and verify the migrated configuration")
	}

	return nil
}
