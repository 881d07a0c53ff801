// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, layered loading,
// environment variable support, validation, and migration of Vim
// g:breeze_* settings.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/breeze/pkg/config"
	"github.com/yaklabco/breeze/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// IgnoreVimrc skips looking for unmigrated Vim settings.
	IgnoreVimrc bool

	// Overrides are applied last, after every file and the environment.
	// The CLI uses them for flags the user set explicitly.
	Overrides []func(cfg *config.Config)
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by layering all sources.
// Precedence (highest to lowest):
//  1. Overrides (CLI flags)
//  2. Environment variables (BREEZE_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.breeze.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/breeze/config.yaml)
//  6. System config (/etc/breeze/config.yaml)
//  7. Defaults
//
// Each file is applied onto the result of the previous layers, so a file
// only changes the keys it mentions.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		name   string
		path   string
		ignore bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig},
		{"explicit", paths.Explicit, false},
	}
	for _, layer := range layers {
		if layer.ignore || layer.path == "" {
			continue
		}
		if err := applyConfigFile(cfg, layer.path); err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreVimrc && len(result.LoadedFrom) == 0 && paths.Vimrc != "" {
		if settings, err := ParseVimSettings(paths.Vimrc); err == nil && len(settings.Values) > 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("found g:breeze_* settings in %s but no breeze config; run 'breeze migrate' to convert", paths.Vimrc))
		}
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	for _, override := range opts.Overrides {
		override(cfg)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// applyConfigFile layers a YAML file onto cfg.
func applyConfigFile(cfg *config.Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	if err := cfg.ApplyYAML(content); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// WriteConfig atomically writes a configuration to a YAML file with a
// header comment.
func WriteConfig(ctx context.Context, cfg *config.Config, path, header string) error {
	content, err := cfg.ToYAML()
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, path, append([]byte(header), content...), configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
