// Package reporter writes wrapped blocks in the supported output formats.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/blockwrap/pkg/config"
	"github.com/yaklabco/blockwrap/pkg/source"
	"github.com/yaklabco/blockwrap/pkg/wrap"
)

// Reporter formats and writes a wrap result.
type Reporter interface {
	// Report writes formatted output for the given result.
	Report(ctx context.Context, result *Result) error
}

// Result is everything a reporter may show about one wrapped input.
type Result struct {
	// Input is the document that was wrapped. It may be nil.
	Input *source.Document

	// Blocks are the wrapped blocks in order.
	Blocks []wrap.Block

	// Stats summarizes Blocks.
	Stats wrap.Stats

	// Width is the line width the blocks were wrapped to.
	Width int
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	// Default writer to stdout if not specified
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = config.FormatText
	}

	switch format {
	case config.FormatText:
		return NewTextReporter(opts), nil
	case config.FormatJSON:
		return NewJSONReporter(opts), nil
	case config.FormatPretty:
		return NewPrettyReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
