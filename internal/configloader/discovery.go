package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigPaths lists the configuration sources found for a working
// directory, lowest precedence first. Empty fields were not found.
type ConfigPaths struct {
	System   string // /etc/breeze/config.yaml
	User     string // $XDG_CONFIG_HOME/breeze/config.yaml
	Project  string // nearest .breeze.yml above the working directory
	Explicit string // --config

	// Vimrc is the Vim startup file that may still hold g:breeze_* settings.
	Vimrc string
}

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	projectConfigNames = []string{".breeze.yml", ".breeze.yaml", "breeze.yml", "breeze.yaml"}
	dirConfigNames     = []string{"config.yaml", "config.yml"}
	vimrcNames         = []string{".vimrc", filepath.Join(".vim", "vimrc"), filepath.Join(".config", "nvim", "init.vim")}
	vcsMarkers         = []string{".git", ".hg", ".svn"}
)

// DiscoverPaths finds every configuration source that applies to workDir.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	home, _ := os.UserHomeDir()
	return &ConfigPaths{
		System:  firstFile(systemConfigDir(), dirConfigNames),
		User:    firstFile(UserConfigDir(), dirConfigNames),
		Project: project,
		Vimrc:   firstFile(home, vimrcNames),
	}, nil
}

func systemConfigDir() string {
	if runtime.GOOS != "windows" {
		return "/etc/breeze"
	}
	programData := os.Getenv("ProgramData")
	if programData == "" {
		programData = `C:\ProgramData`
	}
	return filepath.Join(programData, "breeze")
}

// UserConfigDir returns $XDG_CONFIG_HOME/breeze, or ~/.config/breeze.
// It returns "" when neither can be determined.
func UserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "breeze")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "breeze")
}

// FindProjectConfig walks up from startDir to the nearest project config.
// The walk ends at a VCS root, the home directory or the filesystem root;
// nothing found is reported as "".
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}

		if path := firstFile(dir, projectConfigNames); path != "" {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if isVCSRoot(dir) || dir == home || parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// FindVimrc returns the first Vim startup file in the home directory.
func FindVimrc() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return firstFile(home, vimrcNames)
}

// firstFile returns the first of names that is a regular file in dir.
func firstFile(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}
