package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full documents every option with its default value.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// templateField documents one option in the full template.
type templateField struct {
	key         string
	value       string
	description string
}

//nolint:gochecknoglobals // Read-only documentation table.
var templateFields = []templateField{
	{"width", "65", "Maximum characters per line. Lines only exceed it when a single word is longer."},
	{"height", "8", "Target lines per block. A block may close one line early on a break character."},
	{"line_breaks", "2", "Blank lines printed between blocks in text output."},
	{"break_characters", `[".", "!", "?"]`, "Punctuation that may close a block early when it lands near the end of a block."},
	{"break_on_hyphens", "true", "Allow line breaks after the hyphen of a hyphenated word."},
	{"justify", "false", "Pad every line but the last of each block to the full width."},
	{"jobs", "0", "Number of parallel render workers (0 = auto based on CPU cores)."},
	{"backup", "false", "Keep the previous output file as <name>.bak before overwriting it."},
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON()
	}
	if opts.Full {
		return generateFullTemplate(), nil
	}
	return generateMinimalTemplate(), nil
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

# Maximum characters per line
width: 65

# Target lines per block
height: 8

# Blank lines between blocks in text output
# line_breaks: 2

# Punctuation that may close a block early
# break_characters: [".", "!", "?"]

# Image rendering
# render:
#   font_size: 48
#   transparent: false
#   single_block: false
`)

	return buf.Bytes()
}

// generateFullTemplate creates a full template with every option documented.
func generateFullTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n#\n# This template lists every option with its default value.\n")

	for _, field := range templateFields {
		buf.WriteString(fmt.Sprintf("\n# %s\n", wrapComment(field.description, commentWrapWidth)))
		buf.WriteString(fmt.Sprintf("%s: %s\n", field.key, field.value))
	}

	buf.WriteString(`
# Input handling
input:
  # auto, plain or markdown (auto picks markdown for .md and .markdown files)
  format: auto
  # Markdown flavor: commonmark or gfm
  flavor: commonmark

# Image rendering
render:
  # Font size in points
  font_size: 48
  # TrueType/OpenType font file (empty = built-in Go Bold)
  font_path: ""
  # Text color: an SVG color name or #rrggbb
  text_color: white
  # Background image (empty = generated black or transparent canvas)
  background: ""
  # Transparent generated background instead of black
  transparent: false
  # Draw all text on one image instead of one image per block
  single_block: false
  canvas:
    width: 1920
    height: 1080
  # Directory for result.png / result.zip
  output_dir: "."
`)

	return buf.Bytes()
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n# ")
}

// templateToJSON renders the default configuration as JSON.
func templateToJSON() ([]byte, error) {
	cfg := NewConfig()

	doc := map[string]any{
		"width":            cfg.Width,
		"height":           cfg.Height,
		"line_breaks":      cfg.LineBreakCount(),
		"break_characters": cfg.BreakCharacters,
		"break_on_hyphens": cfg.HyphenBreaking(),
		"justify":          cfg.Justify,
		"jobs":             cfg.Jobs,
		"backup":           cfg.Backup,
		"input": map[string]any{
			"format": cfg.Input.Format,
			"flavor": cfg.Input.Flavor,
		},
		"render": map[string]any{
			"font_size":    cfg.Render.FontSize,
			"text_color":   cfg.Render.TextColor,
			"transparent":  cfg.Render.Transparent,
			"single_block": cfg.Render.SingleBlock,
			"canvas": map[string]any{
				"width":  cfg.Render.Canvas.Width,
				"height": cfg.Render.Canvas.Height,
			},
			"output_dir": cfg.Render.OutputDir,
		},
	}

	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return append(jsonBytes, '\n'), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# blockwrap configuration
# See: https://github.com/yaklabco/blockwrap`
}
