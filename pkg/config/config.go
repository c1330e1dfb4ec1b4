// Package config defines core configuration types for blockwrap.
// These types are pure data structures with no dependency on how they are loaded.
package config

import "github.com/yaklabco/blockwrap/pkg/wrap"

// Flavor specifies the Markdown flavor used when the input is Markdown.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// Default values mirroring the stock quote-card settings.
const (
	DefaultWidth        = wrap.DefaultWidth
	DefaultHeight       = wrap.DefaultHeight
	DefaultLineBreaks   = 2
	DefaultFontSize     = 48.0
	DefaultCanvasWidth  = 1920
	DefaultCanvasHeight = 1080
	DefaultOutputDir    = "."
	DefaultTextColor    = "white"
)

// CanvasConfig holds the output image dimensions in pixels.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// InputConfig controls how the input text is read.
type InputConfig struct {
	// Format is "auto", "plain" or "markdown". Auto picks by file extension.
	Format InputFormat `yaml:"format"`

	// Flavor selects the Markdown dialect ("commonmark" or "gfm").
	Flavor Flavor `yaml:"flavor"`
}

// RenderConfig controls image rendering.
type RenderConfig struct {
	FontSize    float64      `yaml:"font_size"`
	FontPath    string       `yaml:"font_path"`
	TextColor   string       `yaml:"text_color"`
	Background  string       `yaml:"background"`
	Transparent bool         `yaml:"transparent"`
	SingleBlock bool         `yaml:"single_block"`
	Canvas      CanvasConfig `yaml:"canvas"`
	OutputDir   string       `yaml:"output_dir"`
}

// Config is the root configuration structure for blockwrap.
type Config struct {
	// Width is the maximum line length in characters.
	Width int `yaml:"width"`

	// Height is the target number of lines per block.
	Height int `yaml:"height"`

	// LineBreaks is the number of blank lines printed between blocks.
	// Nil means unset so that an explicit 0 survives merging.
	LineBreaks *int `yaml:"line_breaks"`

	// BreakCharacters are the marks that may close a block early.
	BreakCharacters []string `yaml:"break_characters"`

	// BreakOnHyphens splits hyphenated words across lines. Nil means unset.
	BreakOnHyphens *bool `yaml:"break_on_hyphens"`

	// Justify pads lines to full width.
	Justify bool `yaml:"justify"`

	// Jobs is the number of parallel render workers (0 = NumCPU).
	Jobs int `yaml:"jobs"`

	// Backup keeps the previous output file as <name>.bak before overwriting.
	Backup bool `yaml:"backup"`

	Input  InputConfig  `yaml:"input"`
	Render RenderConfig `yaml:"render"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format of the wrap command.
	Format OutputFormat `yaml:"-"`

	// Output is the destination file; empty means stdout or the default name.
	Output string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	lineBreaks := DefaultLineBreaks
	hyphens := true

	return &Config{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		LineBreaks:      &lineBreaks,
		BreakCharacters: wrap.DefaultBreakCharacters(),
		BreakOnHyphens:  &hyphens,
		Jobs:            0,
		Input: InputConfig{
			Format: InputAuto,
			Flavor: FlavorCommonMark,
		},
		Render: RenderConfig{
			FontSize:  DefaultFontSize,
			TextColor: DefaultTextColor,
			Canvas: CanvasConfig{
				Width:  DefaultCanvasWidth,
				Height: DefaultCanvasHeight,
			},
			OutputDir: DefaultOutputDir,
		},
		Format: FormatText,
	}
}

// LineBreakCount returns the configured blank-line count or the default.
func (c *Config) LineBreakCount() int {
	if c.LineBreaks == nil {
		return DefaultLineBreaks
	}
	return *c.LineBreaks
}

// HyphenBreaking reports whether hyphenated words may be split.
func (c *Config) HyphenBreaking() bool {
	if c.BreakOnHyphens == nil {
		return true
	}
	return *c.BreakOnHyphens
}

// WrapOptions converts the configuration into wrapper options.
func (c *Config) WrapOptions() wrap.Options {
	return wrap.Options{
		Width:           c.Width,
		Height:          c.Height,
		BreakCharacters: c.BreakCharacters,
		BreakOnHyphens:  c.HyphenBreaking(),
		Justify:         c.Justify,
	}
}
