package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/blockwrap/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format config.OutputFormat

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// LineBreaks is the number of blank lines between blocks in text output.
	LineBreaks int

	// ShowSummary displays aggregate statistics after the blocks (pretty only).
	ShowSummary bool

	// Compact uses minified JSON.
	Compact bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      config.FormatText,
		Color:       "auto",
		LineBreaks:  config.DefaultLineBreaks,
		ShowSummary: true,
	}
}
