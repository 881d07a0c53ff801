package configloader

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/yaklabco/breeze/internal/logging"
	"github.com/yaklabco/breeze/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the YAML key of the invalid field (e.g., "hl_color").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel),
		})
	}

	colors := []struct {
		field string
		value string
	}{
		{"shade_color", cfg.ShadeColor},
		{"jumpmark_color", cfg.JumpmarkColor},
		{"hl_color", cfg.HlColor},
		{"shade_color_darkbg", cfg.ShadeColorDarkbg},
		{"jumpmark_color_darkbg", cfg.JumpmarkColorDarkbg},
		{"hl_color_darkbg", cfg.HlColorDarkbg},
	}
	for _, c := range colors {
		validateColor(c.field, c.value, result)
	}

	validateAlphabet(cfg.MarkAlphabet, result)

	return result
}

// validateColor checks a highlight value: either a group name to link to
// or an attribute list such as "guifg=#fff gui=bold".
func validateColor(field, value string, result *ValidationResult) {
	if strings.TrimSpace(value) == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Value:   value,
			Message: "must name a highlight group or list highlight attributes",
		})
		return
	}

	if strings.Contains(value, "=") {
		for _, attr := range strings.Fields(value) {
			key, val, ok := strings.Cut(attr, "=")
			if !ok || key == "" || val == "" {
				result.Errors = append(result.Errors, ValidationError{
					Field:   field,
					Value:   value,
					Message: fmt.Sprintf("malformed highlight attribute %q", attr),
				})
				return
			}
		}
		return
	}

	if strings.ContainsFunc(value, unicode.IsSpace) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Value:   value,
			Message: fmt.Sprintf("group name %q contains whitespace", value),
		})
	}
}

// validateAlphabet requires distinct, printable, non-space labels.
func validateAlphabet(alphabet string, result *ValidationResult) {
	if alphabet == "" {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "mark_alphabet",
			Message: "empty; the default alphabet is used",
		})
		return
	}

	seen := make(map[rune]bool, len(alphabet))
	for _, r := range alphabet {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "mark_alphabet",
				Value:   alphabet,
				Message: fmt.Sprintf("label %q is not a printable character", r),
			})
			return
		}
		if seen[r] {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "mark_alphabet",
				Value:   alphabet,
				Message: fmt.Sprintf("label %q appears more than once", r),
			})
			return
		}
		seen[r] = true
	}
}

// ValidateWithFile validates and attaches filePath to every finding.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}
