package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/blockwrap/internal/ui/pretty"
)

// PrettyReporter draws each block in a box, followed by a summary line.
type PrettyReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewPrettyReporter creates a new pretty reporter.
func NewPrettyReporter(opts Options) *PrettyReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &PrettyReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *PrettyReporter) Report(_ context.Context, result *Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		result = &Result{}
	}

	if doc := result.Input; doc != nil && doc.Path != "" {
		fmt.Fprintln(r.bw, r.styles.FilePath.Render(doc.Path))
	}

	fmt.Fprint(r.bw, r.styles.RenderBlocks(result.Blocks, result.Width))

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, "\n"+r.styles.FormatSummaryOneLine(result.Stats))
	}

	return nil
}
