package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/yaklabco/blockwrap/internal/configloader"
	"github.com/yaklabco/blockwrap/internal/logging"
	"github.com/yaklabco/blockwrap/internal/watch"
	"github.com/yaklabco/blockwrap/pkg/config"
	"github.com/yaklabco/blockwrap/pkg/reporter"
	"github.com/yaklabco/blockwrap/pkg/source"
	"github.com/yaklabco/blockwrap/pkg/wrap"
)

// wrapFlags holds the wrapping flags shared by wrap and render.
type wrapFlags struct {
	width       int
	height      int
	lineBreaks  int
	breakChars  string
	noHyphens   bool
	justify     bool
	inputFormat string
	flavor      string
	backup      bool
	output      string
	watch       bool
}

func bindWrapFlags(cmd *cobra.Command, flags *wrapFlags) {
	cmd.Flags().IntVarP(&flags.width, "width", "w", config.DefaultWidth, "maximum characters per line")
	cmd.Flags().IntVarP(&flags.height, "height", "H", config.DefaultHeight, "target lines per block")
	cmd.Flags().IntVar(&flags.lineBreaks, "line-breaks", config.DefaultLineBreaks, "blank lines between blocks")
	cmd.Flags().StringVar(&flags.breakChars, "break-chars", ".!?",
		"characters that may close a block early (each character is one mark)")
	cmd.Flags().BoolVar(&flags.noHyphens, "no-hyphens", false, "never break lines inside hyphenated words")
	cmd.Flags().BoolVar(&flags.justify, "justify", false, "pad lines to the full width")
	cmd.Flags().StringVar(&flags.inputFormat, "input-format", "", "input format: auto, plain, markdown")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "markdown flavor: commonmark, gfm")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep the previous output file as <name>.bak")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write output to this file")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "run again whenever the input file changes")
}

// cliConfig builds the CLI override layer. Only flags the user changed
// take part, so config files and environment keep their say otherwise.
func (f *wrapFlags) cliConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("width") {
		if f.width <= 0 {
			return nil, fmt.Errorf("%w: --width must be > 0, got %d", ErrUsage, f.width)
		}
		cfg.Width = f.width
	}
	if changed("height") {
		if f.height < 1 {
			return nil, fmt.Errorf("%w: --height must be >= 1, got %d", ErrUsage, f.height)
		}
		cfg.Height = f.height
	}
	if changed("line-breaks") {
		if f.lineBreaks < 0 {
			return nil, fmt.Errorf("%w: --line-breaks must be >= 0, got %d", ErrUsage, f.lineBreaks)
		}
		lineBreaks := f.lineBreaks
		cfg.LineBreaks = &lineBreaks
	}
	if changed("break-chars") {
		cfg.BreakCharacters = splitMarks(f.breakChars)
	}
	if changed("no-hyphens") {
		hyphens := !f.noHyphens
		cfg.BreakOnHyphens = &hyphens
	}
	if changed("input-format") {
		format := config.InputFormat(f.inputFormat)
		if !format.IsValid() {
			return nil, fmt.Errorf("%w: unknown input format %q", ErrUsage, f.inputFormat)
		}
		cfg.Input.Format = format
	}
	if changed("flavor") {
		if !configloader.IsValidFlavor(config.Flavor(f.flavor)) {
			return nil, fmt.Errorf("%w: unknown flavor %q", ErrUsage, f.flavor)
		}
		cfg.Input.Flavor = config.Flavor(f.flavor)
	}

	cfg.Justify = f.justify
	cfg.Backup = f.backup
	cfg.Output = f.output

	return cfg, nil
}

// splitMarks turns "-.!?" into one mark per character.
func splitMarks(s string) []string {
	marks := make([]string, 0, len(s))
	for _, r := range s {
		marks = append(marks, string(r))
	}
	return marks
}

// loadConfig resolves the layered configuration with cli on top.
func loadConfig(ctx context.Context, cmd *cobra.Command, cli *config.Config) (*config.Config, error) {
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
		CLIConfig:    cli,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldFiles, result.LoadedFrom)
	}

	return result.Config, nil
}

// assemble reads the input and wraps it into blocks.
func assemble(ctx context.Context, cfg *config.Config, path string) (*reporter.Result, error) {
	logger := logging.FromContext(ctx)

	doc, err := source.Read(ctx, path, source.Options{
		Format: cfg.Input.Format,
		Flavor: cfg.Input.Flavor,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("read input",
		logging.FieldInput, doc.Path,
		logging.FieldFormat, doc.Format,
		logging.FieldBytes, doc.Size,
		logging.FieldHash, doc.Hash,
	)

	wrapper, err := wrap.New(cfg.WrapOptions())
	if err != nil {
		return nil, fmt.Errorf("create wrapper: %w", err)
	}

	blocks := wrapper.Assemble(doc.Text)
	stats := wrapper.Stats(blocks)

	logger.Debug("wrapped text",
		logging.FieldWidth, cfg.Width,
		logging.FieldHeight, cfg.Height,
		logging.FieldBreakChars, cfg.BreakCharacters,
		logging.FieldJustify, cfg.Justify,
		logging.FieldBlocks, stats.Blocks,
		logging.FieldLines, stats.Lines,
		logging.FieldShortBlocks, stats.ShortBlocks,
		logging.FieldOversizeLines, stats.OversizeLines,
	)

	return &reporter.Result{
		Input:  doc,
		Blocks: blocks,
		Stats:  stats,
		Width:  cfg.Width,
	}, nil
}

// runWatched runs fn once, or with --watch on every change to path until
// interrupted. Errors inside the watch loop are logged, not returned.
func runWatched(cmd *cobra.Command, flags *wrapFlags, path string, fn func(context.Context) error) error {
	ctx := cmd.Context()
	if !flags.watch {
		return fn(ctx)
	}
	if path == "" || path == source.StdinPath {
		return fmt.Errorf("%w: %w", ErrUsage, watch.ErrNoFile)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	logger := logging.FromContext(ctx)
	logger.Info("watching for changes, press Ctrl+C to stop", logging.FieldInput, path)

	return watch.Run(ctx, path, watch.Options{
		OnError: func(err error) {
			logger.Error("run failed", logging.FieldError, err)
		},
	}, fn)
}

// inputArg returns the optional input file argument.
func inputArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// maxOneFile rejects more than one positional argument as a usage error.
func maxOneFile(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts at most one input file, received %d", ErrUsage, len(args))
	}
	return nil
}
