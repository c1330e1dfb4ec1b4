package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/blockwrap/pkg/wrap"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string       `json:"version"`
	Input   *JSONInput   `json:"input,omitempty"`
	Blocks  []wrap.Block `json:"blocks"`
	Summary wrap.Stats   `json:"summary"`
}

// JSONInput describes where the text came from.
type JSONInput struct {
	Path   string `json:"path"`
	Format string `json:"format"`
	Bytes  int    `json:"bytes"`
	Hash   string `json:"hash,omitempty"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(buildOutput(result)); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func buildOutput(result *Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Blocks:  make([]wrap.Block, 0),
	}

	if result == nil {
		return output
	}

	if len(result.Blocks) > 0 {
		output.Blocks = result.Blocks
	}
	output.Summary = result.Stats

	if doc := result.Input; doc != nil {
		output.Input = &JSONInput{
			Path:   doc.Path,
			Format: string(doc.Format),
			Bytes:  doc.Size,
			Hash:   doc.Hash,
		}
	}

	return output
}
