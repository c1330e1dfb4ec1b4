package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/blockwrap/pkg/config"
	"github.com/yaklabco/blockwrap/pkg/reporter"
	"github.com/yaklabco/blockwrap/pkg/source"
	"github.com/yaklabco/blockwrap/pkg/wrap"
)

func sampleResult() *reporter.Result {
	return &reporter.Result{
		Input: &source.Document{
			Path:   "quote.txt",
			Format: config.InputPlain,
			Size:   42,
			Hash:   "abcdef012345",
		},
		Blocks: []wrap.Block{
			{"Alpha beta.", "Gamma delta."},
			{"Epsilon zeta", "eta."},
		},
		Stats: wrap.Stats{Blocks: 2, Lines: 4, MaxLineLength: 12},
		Width: 12,
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		format  config.OutputFormat
		wantErr bool
	}{
		{name: "text reporter", format: config.FormatText},
		{name: "json reporter", format: config.FormatJSON},
		{name: "pretty reporter", format: config.FormatPretty},
		{name: "empty defaults to text", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := reporter.DefaultOptions()
			opts.Writer = &bytes.Buffer{}
			opts.Format = tt.format

			rep, err := reporter.New(opts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer

	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.LineBreaks = 1

	err := reporter.NewTextReporter(opts).Report(context.Background(), sampleResult())
	require.NoError(t, err)

	assert.Equal(t, "Alpha beta.\nGamma delta.\n\nEpsilon zeta\neta.\n\n", buf.String())
}

func TestTextReporter_NoLineBreaks(t *testing.T) {
	var buf bytes.Buffer

	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.LineBreaks = 0

	err := reporter.NewTextReporter(opts).Report(context.Background(), sampleResult())
	require.NoError(t, err)

	assert.Equal(t, "Alpha beta.\nGamma delta.\nEpsilon zeta\neta.\n", buf.String())
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer

	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.Format = config.FormatJSON

	rep, err := reporter.New(opts)
	require.NoError(t, err)
	require.NoError(t, rep.Report(context.Background(), sampleResult()))

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0.0", output.Version)
	require.Len(t, output.Blocks, 2)
	assert.Equal(t, wrap.Block{"Epsilon zeta", "eta."}, output.Blocks[1])
	assert.Equal(t, 4, output.Summary.Lines)
	require.NotNil(t, output.Input)
	assert.Equal(t, "quote.txt", output.Input.Path)
	assert.Equal(t, "plain", output.Input.Format)
	assert.Equal(t, "abcdef012345", output.Input.Hash)
}

func TestJSONReporter_EmptyResult(t *testing.T) {
	var buf bytes.Buffer

	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.Compact = true

	err := reporter.NewJSONReporter(opts).Report(context.Background(), &reporter.Result{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"blocks":[]`)
	assert.NotContains(t, out, `"input"`)
	assert.Equal(t, 1, strings.Count(out, "\n"), "compact output is a single line")
}

func TestPrettyReporter(t *testing.T) {
	var buf bytes.Buffer

	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.Color = "never"

	err := reporter.NewPrettyReporter(opts).Report(context.Background(), sampleResult())
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "quote.txt\n"))
	assert.Contains(t, out, "block 1/2")
	assert.Contains(t, out, "│ Gamma delta. │")
	assert.Contains(t, out, "2 blocks, 4 lines")
}

func TestPrettyReporter_NoSummary(t *testing.T) {
	var buf bytes.Buffer

	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.Color = "never"
	opts.ShowSummary = false

	err := reporter.NewPrettyReporter(opts).Report(context.Background(), &reporter.Result{})
	require.NoError(t, err)

	assert.Equal(t, "(no blocks)\n", buf.String())
}
