package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/blockwrap/internal/logging"
	"github.com/yaklabco/blockwrap/pkg/config"
	"github.com/yaklabco/blockwrap/pkg/fsutil"
	"github.com/yaklabco/blockwrap/pkg/reporter"
)

func newWrapCommand() *cobra.Command {
	flags := &wrapFlags{}
	var format string
	var noSummary bool

	cmd := &cobra.Command{
		Use:   "wrap [file]",
		Short: "Wrap text into blocks and print them",
		Long: `Wrap the text of a file (or standard input) into blocks of lines.

Markdown input is reduced to its visible text before wrapping. Output is the
wrapped lines with blank lines between blocks, a JSON document, or a boxed
preview of every block.`,
		Example: `  blockwrap wrap quote.txt
  blockwrap wrap --width 40 --height 4 quote.txt
  cat notes.md | blockwrap wrap --format pretty
  blockwrap wrap --format json -o blocks.json essay.md
  blockwrap wrap --watch -o blocks.txt draft.md`,
		Args: maxOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrap(cmd, args, flags, format, !noSummary)
		},
	}

	bindWrapFlags(cmd, flags)
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json, pretty")
	cmd.Flags().BoolVar(&noSummary, "no-summary", false, "omit the summary line in pretty output")

	return cmd
}

func runWrap(cmd *cobra.Command, args []string, flags *wrapFlags, format string, summary bool) error {
	ctx := cmd.Context()

	cli, err := flags.cliConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		outputFormat, err := config.ParseOutputFormat(format)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		cli.Format = outputFormat
	}

	cfg, err := loadConfig(ctx, cmd, cli)
	if err != nil {
		return err
	}

	path := inputArg(args)
	return runWatched(cmd, flags, path, func(ctx context.Context) error {
		return emitBlocks(ctx, cmd, cfg, path, summary)
	})
}

// emitBlocks wraps the input once and writes the report.
func emitBlocks(ctx context.Context, cmd *cobra.Command, cfg *config.Config, path string, summary bool) error {
	logger := logging.FromContext(ctx)

	result, err := assemble(ctx, cfg, path)
	if err != nil {
		return err
	}

	color, _ := cmd.Flags().GetString("color")

	var buf bytes.Buffer
	var writer io.Writer = cmd.OutOrStdout()
	if cfg.Output != "" {
		writer = &buf
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      writer,
		Format:      cfg.Format,
		Color:       color,
		LineBreaks:  cfg.LineBreakCount(),
		ShowSummary: summary,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if cfg.Output == "" {
		return nil
	}

	if err := fsutil.WriteOutput(ctx, cfg.Output, buf.Bytes(), cfg.Backup); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	logger.Info("wrote blocks",
		logging.FieldOutput, cfg.Output,
		logging.FieldBlocks, result.Stats.Blocks,
		logging.FieldBytes, buf.Len(),
	)

	return nil
}
