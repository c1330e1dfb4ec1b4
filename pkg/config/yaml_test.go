package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/blockwrap/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		clone := c.Clone()
		assert.Nil(t, clone)
	})

	t.Run("empty config", func(t *testing.T) {
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
	})

	t.Run("deep copies pointers and slices", func(t *testing.T) {
		original := config.NewConfig()

		clone := original.Clone()
		require.NotNil(t, clone)

		assert.NotSame(t, original.LineBreaks, clone.LineBreaks)
		assert.NotSame(t, original.BreakOnHyphens, clone.BreakOnHyphens)

		*clone.LineBreaks = 7
		*clone.BreakOnHyphens = false
		clone.BreakCharacters[0] = ";"

		assert.Equal(t, 2, original.LineBreakCount())
		assert.True(t, original.HyphenBreaking())
		assert.Equal(t, ".", original.BreakCharacters[0])
	})

	t.Run("preserves all fields", func(t *testing.T) {
		original := config.NewConfig()
		original.Width = 40
		original.Height = 5
		original.Justify = true
		original.Jobs = 3
		original.Format = config.FormatJSON
		original.Output = "out.txt"
		original.Input.Flavor = config.FlavorGFM
		original.Render.Transparent = true
		original.Render.SingleBlock = true
		original.Render.FontPath = "font.ttf"

		clone := original.Clone()
		require.NotNil(t, clone)

		assert.Equal(t, original, clone)
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var cfg *config.Config
		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("basic config serializes", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Width = 42
		cfg.Output = "ignored.txt"

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Contains(t, string(data), "width: 42")
		assert.Contains(t, string(data), "line_breaks: 2")
		assert.Contains(t, string(data), "font_size: 48")
		assert.NotContains(t, string(data), "ignored.txt")
	})

	t.Run("header is prepended", func(t *testing.T) {
		cfg := config.NewConfig()
		data, err := cfg.ToYAMLWithHeader(config.DefaultTemplateHeader())
		require.NoError(t, err)
		assert.Contains(t, string(data), "# blockwrap configuration\n")
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("parses valid YAML", func(t *testing.T) {
		yaml := []byte(`
width: 30
height: 4
line_breaks: 0
break_characters: [".", ";"]
break_on_hyphens: false
render:
  transparent: true
  canvas:
    width: 1080
`)
		cfg, err := config.FromYAML(yaml)
		require.NoError(t, err)
		assert.Equal(t, 30, cfg.Width)
		assert.Equal(t, 4, cfg.Height)
		assert.Equal(t, 0, cfg.LineBreakCount())
		assert.Equal(t, []string{".", ";"}, cfg.BreakCharacters)
		assert.False(t, cfg.HyphenBreaking())
		assert.True(t, cfg.Render.Transparent)
		assert.Equal(t, 1080, cfg.Render.Canvas.Width)
		assert.Zero(t, cfg.Render.Canvas.Height)
	})

	t.Run("unset pointers stay nil", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte(`width: 10`))
		require.NoError(t, err)
		assert.Nil(t, cfg.LineBreaks)
		assert.Nil(t, cfg.BreakOnHyphens)
		assert.Equal(t, config.DefaultLineBreaks, cfg.LineBreakCount())
		assert.True(t, cfg.HyphenBreaking())
	})

	t.Run("invalid YAML", func(t *testing.T) {
		_, err := config.FromYAML([]byte("width: [unclosed"))
		require.Error(t, err)
	})

	t.Run("round trip", func(t *testing.T) {
		original := config.NewConfig()
		original.Height = 3

		data, err := original.ToYAML()
		require.NoError(t, err)

		parsed, err := config.FromYAML(data)
		require.NoError(t, err)

		original.Format = ""
		assert.Equal(t, original, parsed)
	})
}

func TestWrapOptions(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Width = 20
	cfg.Justify = true
	no := false
	cfg.BreakOnHyphens = &no

	opts := cfg.WrapOptions()
	assert.Equal(t, 20, opts.Width)
	assert.Equal(t, config.DefaultHeight, opts.Height)
	assert.True(t, opts.Justify)
	assert.False(t, opts.BreakOnHyphens)
	assert.Equal(t, []string{".", "!", "?"}, opts.BreakCharacters)
}
