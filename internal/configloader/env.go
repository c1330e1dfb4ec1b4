package configloader

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/blockwrap/pkg/config"
)

// envVarPrefix is the prefix for all blockwrap environment variables.
const envVarPrefix = "BLOCKWRAP_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeFloat
	envTypeChars
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
	"WIDTH":            {"width", envTypeInt, "Maximum characters per line"},
	"HEIGHT":           {"height", envTypeInt, "Target lines per block"},
	"LINE_BREAKS":      {"line_breaks", envTypeInt, "Blank lines between blocks in text output"},
	"BREAK_CHARACTERS": {"break_characters", envTypeChars, "Space-separated break characters (e.g. \". ! ?\")"},
	"BREAK_ON_HYPHENS": {"break_on_hyphens", envTypeBool, "Split hyphenated words: true or false"},
	"JUSTIFY":          {"justify", envTypeBool, "Justify lines to full width: true or false"},
	"JOBS":             {"jobs", envTypeInt, "Number of parallel render workers (0 = auto)"},
	"BACKUP":           {"backup", envTypeBool, "Keep the previous output as <name>.bak: true or false"},
	"FORMAT":           {"format", envTypeString, "Output format: text, json, or pretty"},
	"INPUT_FORMAT":     {"input.format", envTypeString, "Input format: auto, plain, or markdown"},
	"FLAVOR":           {"input.flavor", envTypeString, "Markdown flavor: commonmark or gfm"},
	"FONT_SIZE":        {"render.font_size", envTypeFloat, "Font size in points"},
	"FONT_PATH":        {"render.font_path", envTypeString, "TrueType/OpenType font file"},
	"TEXT_COLOR":       {"render.text_color", envTypeString, "Text color: SVG color name or #rrggbb"},
	"BACKGROUND":       {"render.background", envTypeString, "Background image file"},
	"TRANSPARENT":      {"render.transparent", envTypeBool, "Transparent generated background: true or false"},
	"SINGLE_BLOCK":     {"render.single_block", envTypeBool, "Render one composed image: true or false"},
	"CANVAS_WIDTH":     {"render.canvas.width", envTypeInt, "Image width in pixels"},
	"CANVAS_HEIGHT":    {"render.canvas.height", envTypeInt, "Image height in pixels"},
	"OUTPUT_DIR":       {"render.output_dir", envTypeString, "Directory for rendered output"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with BLOCKWRAP_ (e.g., BLOCKWRAP_WIDTH).
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
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid number for %s: %q", envVar, value)
		}
		return setFloatField(cfg, mapping.field, f)
	case envTypeChars:
		// Commas are valid break characters, so the list is space-separated.
		cfg.BreakCharacters = strings.Fields(value)
		return nil
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "input.format":
		cfg.Input.Format = config.InputFormat(value)
	case "input.flavor":
		cfg.Input.Flavor = config.Flavor(value)
	case "render.font_path":
		cfg.Render.FontPath = value
	case "render.background":
		cfg.Render.Background = value
	case "render.text_color":
		cfg.Render.TextColor = value
	case "render.output_dir":
		cfg.Render.OutputDir = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "break_on_hyphens":
		cfg.BreakOnHyphens = &value
	case "justify":
		cfg.Justify = value
	case "backup":
		cfg.Backup = value
	case "render.transparent":
		cfg.Render.Transparent = value
	case "render.single_block":
		cfg.Render.SingleBlock = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "width":
		cfg.Width = value
	case "height":
		cfg.Height = value
	case "line_breaks":
		cfg.LineBreaks = &value
	case "jobs":
		cfg.Jobs = value
	case "render.canvas.width":
		cfg.Render.Canvas.Width = value
	case "render.canvas.height":
		cfg.Render.Canvas.Height = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setFloatField(cfg *config.Config, field string, value float64) error {
	switch field {
	case "render.font_size":
		cfg.Render.FontSize = value
	default:
		return fmt.Errorf("unknown number field: %s", field)
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

// ListEnvVars returns every supported environment variable with its
// description.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.description
	}
	return vars
}

// SortedEnvVars returns the supported environment variable names in order.
func SortedEnvVars() []string {
	names := make([]string, 0, len(envMappings))
	for suffix := range envMappings {
		names = append(names, envVarPrefix+suffix)
	}
	slices.Sort(names)
	return names
}
