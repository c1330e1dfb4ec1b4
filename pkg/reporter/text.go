package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/blockwrap/pkg/wrap"
)

// TextReporter writes blocks as plain lines separated by blank lines.
type TextReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return nil
	}

	if _, err := fmt.Fprint(r.bw, wrap.FormatBlocks(result.Blocks, r.opts.LineBreaks)); err != nil {
		return fmt.Errorf("write blocks: %w", err)
	}
	return nil
}
