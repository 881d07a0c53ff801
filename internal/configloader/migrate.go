package configloader

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/yaklabco/breeze/pkg/config"
)

// vimLetPattern matches "let g:breeze_<name> = <value>" assignments.
//
//nolint:gochecknoglobals // Compiled once.
var vimLetPattern = regexp.MustCompile(`^\s*let\s+g:breeze_(\w+)\s*=\s*(.+)$`)

// vimBoolFields are settings Vim stores as 0/1.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vimBoolFields = map[string]bool{
	"jump_to_angle_bracket": true,
	"mask_markdown":         true,
}

// VimSettings holds the g:breeze_* assignments found in a Vim script.
type VimSettings struct {
	// Values maps setting names (without the g:breeze_ prefix) to their
	// unquoted values. The last assignment wins.
	Values map[string]string

	// Lines maps setting names to the line of their last assignment.
	Lines map[string]int
}

// MigrationResult contains the result of converting Vim settings.
type MigrationResult struct {
	// Config is the converted breeze configuration.
	Config *config.Config

	// Warnings contains non-fatal issues encountered during conversion.
	Warnings []string

	// SourcePath is the path to the Vim script.
	SourcePath string
}

// ParseVimSettings collects g:breeze_* assignments from a Vim script.
func ParseVimSettings(path string) (*VimSettings, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	settings := &VimSettings{
		Values: make(map[string]string),
		Lines:  make(map[string]int),
	}

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		match := vimLetPattern.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}
		settings.Values[match[1]] = vimValue(match[2])
		settings.Lines[match[1]] = lineNo
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return settings, nil
}

// vimValue extracts a string or number literal, dropping trailing comments.
func vimValue(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	switch quote := raw[0]; quote {
	case '\'':
		// Single-quoted: '' is a literal quote.
		var sb strings.Builder
		for i := 1; i < len(raw); i++ {
			if raw[i] == '\'' {
				if i+1 < len(raw) && raw[i+1] == '\'' {
					sb.WriteByte('\'')
					i++
					continue
				}
				break
			}
			sb.WriteByte(raw[i])
		}
		return sb.String()
	case '"':
		var sb strings.Builder
		for i := 1; i < len(raw); i++ {
			switch raw[i] {
			case '\\':
				if i+1 < len(raw) {
					i++
					sb.WriteByte(raw[i])
				}
			case '"':
				return sb.String()
			default:
				sb.WriteByte(raw[i])
			}
		}
		return sb.String()
	}

	if fields := strings.Fields(raw); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// ConvertVimSettings converts the g:breeze_* settings of a Vim script to
// a breeze configuration.
func ConvertVimSettings(path string) (*MigrationResult, error) {
	settings, err := ParseVimSettings(path)
	if err != nil {
		return nil, err
	}

	result := &MigrationResult{
		Config:     config.NewConfig(),
		SourcePath: path,
	}

	names := make([]string, 0, len(settings.Values))
	for name := range settings.Values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := settings.Values[name]
		if vimBoolFields[name] {
			value = vimBool(value)
		}
		if err := SetField(result.Config, name, value); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s:%d: skipping g:breeze_%s: %v", path, settings.Lines[name], name, err))
		}
	}

	return result, nil
}

// vimBool maps Vim's numeric truth to strconv.ParseBool input.
func vimBool(value string) string {
	switch value {
	case "0", "v:false":
		return "false"
	case "v:true":
		return "true"
	}
	if value != "" && strings.Trim(value, "0123456789") == "" {
		return "true"
	}
	return value
}

// GenerateMigrationHeader returns the header comment for a migrated config.
func GenerateMigrationHeader(sourcePath string) string {
	return fmt.Sprintf("# breeze configuration\n# Migrated from g:breeze_* settings in %s\n\n", sourcePath)
}
