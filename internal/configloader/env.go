package configloader

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/yaklabco/breeze/pkg/config"
)

// envVarPrefix is the prefix for all breeze environment variables.
const envVarPrefix = "BREEZE_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"JUMP_TO_ANGLE_BRACKET": {"jump_to_angle_bracket", envTypeBool, "Land jumps on '<' instead of the tag name: true or false"},
	"SHADE_COLOR":           {"shade_color", envTypeString, "Highlight for the shaded buffer during jumps"},
	"JUMPMARK_COLOR":        {"jumpmark_color", envTypeString, "Highlight for jump-mark labels"},
	"HL_COLOR":              {"hl_color", envTypeString, "Highlight for the current element"},
	"SHADE_COLOR_DARKBG":    {"shade_color_darkbg", envTypeString, "Shade highlight on dark backgrounds"},
	"JUMPMARK_COLOR_DARKBG": {"jumpmark_color_darkbg", envTypeString, "Jump-mark highlight on dark backgrounds"},
	"HL_COLOR_DARKBG":       {"hl_color_darkbg", envTypeString, "Element highlight on dark backgrounds"},
	"MARK_ALPHABET":         {"mark_alphabet", envTypeString, "Characters used as jump-mark labels"},
	"MASK_MARKDOWN":         {"mask_markdown", envTypeBool, "Ignore code in Markdown buffers: true or false"},
	"LOG_LEVEL":             {"log_level", envTypeString, "Log level: debug, info, warn, or error"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with BREEZE_ (e.g., BREEZE_HL_COLOR).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return SetField(cfg, mapping.field, value)
	case envTypeBool:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return SetField(cfg, mapping.field, value)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// SetField sets a config field by its YAML key from a string value.
// Boolean fields accept anything strconv.ParseBool does.
func SetField(cfg *config.Config, field, value string) error {
	switch field {
	case "jump_to_angle_bracket", "mask_markdown":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q", field, value)
		}
		if field == "jump_to_angle_bracket" {
			cfg.JumpToAngleBracket = b
		} else {
			cfg.MaskMarkdown = b
		}
	case "shade_color":
		cfg.ShadeColor = value
	case "jumpmark_color":
		cfg.JumpmarkColor = value
	case "hl_color":
		cfg.HlColor = value
	case "shade_color_darkbg":
		cfg.ShadeColorDarkbg = value
	case "jumpmark_color_darkbg":
		cfg.JumpmarkColorDarkbg = value
	case "hl_color_darkbg":
		cfg.HlColorDarkbg = value
	case "mark_alphabet":
		cfg.MarkAlphabet = value
	case "log_level":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.description
	}
	return vars
}

// EnvVarNames returns the supported environment variables, sorted.
func EnvVarNames() []string {
	names := make([]string, 0, len(envMappings))
	for suffix := range envMappings {
		names = append(names, envVarPrefix+suffix)
	}
	slices.Sort(names)
	return names
}
