package configloader

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/blockwrap/pkg/config"
	"github.com/yaklabco/blockwrap/pkg/render"
)

// narrowWidth is the width below which most words no longer fit a line.
const narrowWidth = 10

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "render.font_size").
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

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warn(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	validateWrap(cfg, result)
	validateInput(cfg, result)
	validateRender(cfg, result)

	if cfg.Jobs < 0 {
		result.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}
	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.fail("format", cfg.Format, "invalid format %q; must be one of: text, json, pretty", cfg.Format)
	}

	return result
}

func validateWrap(cfg *config.Config, result *ValidationResult) {
	switch {
	case cfg.Width <= 0:
		result.fail("width", cfg.Width, "width must be > 0")
	case cfg.Width < narrowWidth:
		result.warn("width", cfg.Width, "width %d is very narrow; most words will overflow", cfg.Width)
	}

	if cfg.Height < 1 {
		result.fail("height", cfg.Height, "height must be >= 1")
	}

	if cfg.LineBreaks != nil && *cfg.LineBreaks < 0 {
		result.fail("line_breaks", *cfg.LineBreaks, "line_breaks must be >= 0")
	}

	for i, mark := range cfg.BreakCharacters {
		field := fmt.Sprintf("break_characters[%d]", i)
		switch {
		case mark == "":
			result.fail(field, mark, "break characters must not be empty")
		case utf8.RuneCountInString(mark) > 1:
			result.warn(field, mark, "%q is matched as a substring of each word", mark)
		}
	}
}

func validateInput(cfg *config.Config, result *ValidationResult) {
	if cfg.Input.Format != "" && !cfg.Input.Format.IsValid() {
		result.fail("input.format", cfg.Input.Format,
			"invalid input format %q; must be one of: auto, plain, markdown", cfg.Input.Format)
	}
	if cfg.Input.Flavor != "" && !IsValidFlavor(cfg.Input.Flavor) {
		result.fail("input.flavor", cfg.Input.Flavor,
			"invalid flavor %q; must be one of: commonmark, gfm", cfg.Input.Flavor)
	}
}

func validateRender(cfg *config.Config, result *ValidationResult) {
	r := cfg.Render

	if r.FontSize <= 0 {
		result.fail("render.font_size", r.FontSize, "font_size must be > 0")
	}
	if _, err := render.ParseColor(r.TextColor); err != nil {
		result.fail("render.text_color", r.TextColor, "%v", err)
	}
	if r.Canvas.Width <= 0 || r.Canvas.Height <= 0 {
		result.fail("render.canvas", fmt.Sprintf("%dx%d", r.Canvas.Width, r.Canvas.Height),
			"canvas width and height must be > 0")
	}

	for _, file := range []struct{ field, path string }{
		{"render.font_path", r.FontPath},
		{"render.background", r.Background},
	} {
		if file.path != "" && !fileExists(file.path) {
			result.warn(file.field, file.path, "file %s does not exist", file.path)
		}
	}

	if r.Background != "" && r.Transparent {
		result.warn("render.transparent", true, "ignored because a background image is set")
	}

	if r.OutputDir != "" {
		if info, err := os.Stat(r.OutputDir); err == nil && !info.IsDir() {
			result.fail("render.output_dir", r.OutputDir, "%s is not a directory", r.OutputDir)
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
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

// IsValidFlavor returns true if the flavor is valid.
func IsValidFlavor(f config.Flavor) bool {
	return f == config.FlavorCommonMark || f == config.FlavorGFM
}
