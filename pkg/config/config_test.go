package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/breeze/pkg/config"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	assert.False(t, cfg.JumpToAngleBracket)
	assert.Equal(t, config.DefaultShadeColor, cfg.ShadeColor)
	assert.Equal(t, config.DefaultHlColor, cfg.HlColorDarkbg)
	assert.Equal(t, config.DefaultMarkAlphabet, cfg.MarkAlphabet)
	assert.True(t, cfg.MaskMarkdown)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestColors(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.HlColor = "Search"
	cfg.HlColorDarkbg = "guibg=#303030"

	assert.Equal(t, "Search", cfg.Colors(false).Hl)
	assert.Equal(t, "guibg=#303030", cfg.Colors(true).Hl)
	assert.Equal(t, config.DefaultShadeColor, cfg.Colors(true).Shade)
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	t.Run("overlays present keys", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML([]byte("jump_to_angle_bracket: true\nhl_color: Visual\n"))
		require.NoError(t, err)

		assert.True(t, cfg.JumpToAngleBracket)
		assert.Equal(t, "Visual", cfg.HlColor)
		assert.Equal(t, config.DefaultShadeColor, cfg.ShadeColor)
		assert.True(t, cfg.MaskMarkdown)
	})

	t.Run("explicit false overrides default true", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML([]byte("mask_markdown: false\n"))
		require.NoError(t, err)
		assert.False(t, cfg.MaskMarkdown)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, err := config.FromYAML([]byte("hl_color: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse yaml")
	})
}

func TestToYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	original := config.NewConfig()
	original.JumpToAngleBracket = true
	original.MarkAlphabet = "asdf"

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "mark_alphabet: asdf")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestClone(t *testing.T) {
	t.Parallel()

	var nilCfg *config.Config
	assert.Nil(t, nilCfg.Clone())

	original := config.NewConfig()
	clone := original.Clone()
	require.NotNil(t, clone)
	assert.NotSame(t, original, clone)

	clone.HlColor = "Other"
	assert.Equal(t, config.DefaultHlColor, original.HlColor)
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	data, err := config.GenerateTemplate()
	require.NoError(t, err)

	assert.Contains(t, string(data), "# breeze configuration")
	assert.Contains(t, string(data), "jump_to_angle_bracket: false")

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, config.NewConfig(), cfg)
}
