// Package config defines the typed settings for breeze.
// These types are pure data structures; loading lives in internal/configloader.
package config

// Default highlight colors. A value containing '=' is a highlight
// attribute list; anything else names a group to link to.
const (
	DefaultShadeColor    = "Comment"
	DefaultJumpmarkColor = "WarningMsg"
	DefaultHlColor       = "MatchParen"
)

// DefaultMarkAlphabet supplies jump-mark labels in order of preference.
const DefaultMarkAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Config is the root configuration structure for breeze.
type Config struct {
	// JumpToAngleBracket lands jumps on the tag's '<' instead of its name.
	JumpToAngleBracket bool `yaml:"jump_to_angle_bracket"`

	// ShadeColor dims the buffer while jump marks are shown.
	ShadeColor string `yaml:"shade_color"`

	// JumpmarkColor styles the jump-mark labels.
	JumpmarkColor string `yaml:"jumpmark_color"`

	// HlColor styles highlighted elements.
	HlColor string `yaml:"hl_color"`

	// The *Darkbg variants apply when the editor background is dark.
	ShadeColorDarkbg    string `yaml:"shade_color_darkbg"`
	JumpmarkColorDarkbg string `yaml:"jumpmark_color_darkbg"`
	HlColorDarkbg       string `yaml:"hl_color_darkbg"`

	// MarkAlphabet supplies the jump-mark labels.
	MarkAlphabet string `yaml:"mark_alphabet"`

	// MaskMarkdown hides code blocks and code spans from the parser in
	// Markdown buffers.
	MaskMarkdown bool `yaml:"mask_markdown"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// GroupColors holds the color values for the three highlight groups.
type GroupColors struct {
	Shade    string
	JumpMark string
	Hl       string
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		JumpToAngleBracket:  false,
		ShadeColor:          DefaultShadeColor,
		JumpmarkColor:       DefaultJumpmarkColor,
		HlColor:             DefaultHlColor,
		ShadeColorDarkbg:    DefaultShadeColor,
		JumpmarkColorDarkbg: DefaultJumpmarkColor,
		HlColorDarkbg:       DefaultHlColor,
		MarkAlphabet:        DefaultMarkAlphabet,
		MaskMarkdown:        true,
		LogLevel:            "info",
	}
}

// Colors returns the highlight colors for a light or dark background.
func (c *Config) Colors(darkBackground bool) GroupColors {
	if darkBackground {
		return GroupColors{
			Shade:    c.ShadeColorDarkbg,
			JumpMark: c.JumpmarkColorDarkbg,
			Hl:       c.HlColorDarkbg,
		}
	}
	return GroupColors{
		Shade:    c.ShadeColor,
		JumpMark: c.JumpmarkColor,
		Hl:       c.HlColor,
	}
}
