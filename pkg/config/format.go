package config

import "fmt"

// OutputFormat specifies how wrapped blocks are printed.
type OutputFormat string

const (
	FormatText   OutputFormat = "text"
	FormatJSON   OutputFormat = "json"
	FormatPretty OutputFormat = "pretty"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatPretty:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a format string. Empty selects text.
func ParseOutputFormat(s string) (OutputFormat, error) {
	if s == "" {
		return FormatText, nil
	}
	f := OutputFormat(s)
	if !f.IsValid() {
		return "", fmt.Errorf("unknown format %q; valid formats: text, json, pretty", s)
	}
	return f, nil
}

// InputFormat specifies how input text is interpreted.
type InputFormat string

const (
	InputAuto     InputFormat = "auto"
	InputPlain    InputFormat = "plain"
	InputMarkdown InputFormat = "markdown"
)

// IsValid returns true if the input format is known.
func (f InputFormat) IsValid() bool {
	switch f {
	case InputAuto, InputPlain, InputMarkdown:
		return true
	default:
		return false
	}
}
