package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/blockwrap/internal/logging"
	"github.com/yaklabco/blockwrap/internal/ui/pretty"
	"github.com/yaklabco/blockwrap/pkg/config"
	"github.com/yaklabco/blockwrap/pkg/fsutil"
	"github.com/yaklabco/blockwrap/pkg/render"
	"github.com/yaklabco/blockwrap/pkg/reporter"
	"github.com/yaklabco/blockwrap/pkg/wrap"
)

// Default output names inside the output directory.
const (
	archiveName = "result.zip"
	imageName   = "result.png"
)

// renderFlags holds the flags for the render command.
type renderFlags struct {
	single      bool
	fontSize    float64
	fontPath    string
	textColor   string
	background  string
	transparent bool
	canvas      string
	jobs        int
	outputDir   string
}

func newRenderCommand() *cobra.Command {
	flags := &wrapFlags{}
	rflags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render wrapped blocks to PNG images",
		Long: `Wrap the input and draw it onto images.

By default every block becomes one centered image and the images are packed
into result.zip as 1.png, 2.png and so on. With --single all blocks are drawn
left-aligned onto one image, result.png.

The canvas is black unless --background names an image (scaled to fit) or
--transparent is given. Text uses Go Bold unless --font names a TrueType or
OpenType file.`,
		Example: `  blockwrap render quote.txt
  blockwrap render --single --font-size 36 quote.txt
  blockwrap render --background paper.jpg --output-dir cards essay.md
  blockwrap render --canvas 1080x1080 -o square.zip quote.txt`,
		Args: maxOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags, rflags)
		},
	}

	bindWrapFlags(cmd, flags)
	cmd.Flags().BoolVar(&rflags.single, "single", false, "draw all blocks onto one image")
	cmd.Flags().Float64Var(&rflags.fontSize, "font-size", config.DefaultFontSize, "font size in points")
	cmd.Flags().StringVar(&rflags.fontPath, "font", "", "TrueType or OpenType font file")
	cmd.Flags().StringVar(&rflags.textColor, "text-color", "", "text color: SVG color name or #rrggbb (default white)")
	cmd.Flags().StringVar(&rflags.background, "background", "", "background image (png, jpeg, gif, bmp, webp)")
	cmd.Flags().BoolVar(&rflags.transparent, "transparent", false, "use a transparent canvas")
	cmd.Flags().StringVar(&rflags.canvas, "canvas", "", "canvas size as WIDTHxHEIGHT (default 1920x1080)")
	cmd.Flags().IntVarP(&rflags.jobs, "jobs", "j", 0, "parallel render workers (0 = number of CPUs)")
	cmd.Flags().StringVar(&rflags.outputDir, "output-dir", "", "directory for result.zip or result.png")

	return cmd
}

// apply copies changed render flags onto the CLI override layer.
func (f *renderFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed

	if changed("font-size") {
		if f.fontSize <= 0 {
			return fmt.Errorf("%w: --font-size must be > 0, got %v", ErrUsage, f.fontSize)
		}
		cfg.Render.FontSize = f.fontSize
	}
	if changed("canvas") {
		width, height, err := parseCanvas(f.canvas)
		if err != nil {
			return err
		}
		cfg.Render.Canvas = config.CanvasConfig{Width: width, Height: height}
	}
	if changed("jobs") {
		if f.jobs < 0 {
			return fmt.Errorf("%w: --jobs must be >= 0, got %d", ErrUsage, f.jobs)
		}
		cfg.Jobs = f.jobs
	}

	cfg.Render.FontPath = f.fontPath
	cfg.Render.TextColor = f.textColor
	cfg.Render.Background = f.background
	cfg.Render.OutputDir = f.outputDir
	cfg.Render.Transparent = f.transparent
	cfg.Render.SingleBlock = f.single

	return nil
}

// parseCanvas parses "1920x1080".
func parseCanvas(s string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: --canvas must look like 1920x1080, got %q", ErrUsage, s)
	}

	width, errW := strconv.Atoi(strings.TrimSpace(w))
	height, errH := strconv.Atoi(strings.TrimSpace(h))
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: invalid canvas size %q", ErrUsage, s)
	}

	return width, height, nil
}

func runRender(cmd *cobra.Command, args []string, flags *wrapFlags, rflags *renderFlags) error {
	ctx := cmd.Context()

	cli, err := flags.cliConfig(cmd)
	if err != nil {
		return err
	}
	if err := rflags.apply(cmd, cli); err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, cmd, cli)
	if err != nil {
		return err
	}

	// Font and background load once; watch reruns only re-wrap and redraw.
	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	path := inputArg(args)
	return runWatched(cmd, flags, path, func(ctx context.Context) error {
		return renderImages(ctx, cmd, cfg, renderer, path)
	})
}

// renderImages wraps the input once, draws it and writes the result file.
func renderImages(
	ctx context.Context,
	cmd *cobra.Command,
	cfg *config.Config,
	renderer *render.Renderer,
	path string,
) error {
	logger := logging.FromContext(ctx)

	result, err := assemble(ctx, cfg, path)
	if err != nil {
		return err
	}
	if len(result.Blocks) == 0 {
		logger.Warn("no text to render", logging.FieldInput, result.Input.Path)
		return nil
	}

	outputPath := cfg.Output
	if outputPath == "" {
		name := archiveName
		if cfg.Render.SingleBlock {
			name = imageName
		}
		if err := fsutil.EnsureDir(cfg.Render.OutputDir); err != nil {
			return fmt.Errorf("prepare output directory: %w", err)
		}
		outputPath = filepath.Join(cfg.Render.OutputDir, name)
	}

	logger.Debug("rendering",
		logging.FieldMode, renderMode(cfg),
		logging.FieldFontSize, cfg.Render.FontSize,
		logging.FieldCanvas, fmt.Sprintf("%dx%d", cfg.Render.Canvas.Width, cfg.Render.Canvas.Height),
		logging.FieldJobs, cfg.Jobs,
		logging.FieldOutput, outputPath,
	)

	data, images, err := renderOutput(ctx, renderer, cfg, result)
	if err != nil {
		return err
	}

	if err := fsutil.WriteOutput(ctx, outputPath, data, cfg.Backup); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	logger.Debug("wrote images",
		logging.FieldOutput, outputPath,
		logging.FieldImages, images,
		logging.FieldBytes, len(data),
	)

	color, _ := cmd.Flags().GetString("color")
	styles := pretty.NewStyles(pretty.IsColorEnabled(color, cmd.OutOrStdout()))
	fmt.Fprint(cmd.OutOrStdout(), styles.FormatRenderResult(images, outputPath, len(data)))

	return nil
}

func renderMode(cfg *config.Config) string {
	if cfg.Render.SingleBlock {
		return "single"
	}
	return "blocks"
}

// newRenderer loads the font and background named by cfg.
func newRenderer(cfg *config.Config) (*render.Renderer, error) {
	fontData, err := render.LoadFont(cfg.Render.FontPath)
	if err != nil {
		return nil, err
	}
	background, err := render.LoadImage(cfg.Render.Background)
	if err != nil {
		return nil, err
	}
	textColor, err := render.ParseColor(cfg.Render.TextColor)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	opts := render.DefaultOptions()
	opts.Width = cfg.Render.Canvas.Width
	opts.Height = cfg.Render.Canvas.Height
	opts.FontSize = cfg.Render.FontSize
	opts.Font = fontData
	opts.Background = background
	opts.Transparent = cfg.Render.Transparent
	opts.TextColor = textColor

	renderer, err := render.New(opts)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	return renderer, nil
}

// renderOutput produces the encoded file and the number of images in it.
func renderOutput(
	ctx context.Context,
	renderer *render.Renderer,
	cfg *config.Config,
	result *reporter.Result,
) ([]byte, int, error) {
	if cfg.Render.SingleBlock {
		img, err := renderer.RenderText(wrap.FormatBlocks(result.Blocks, cfg.LineBreakCount()))
		if err != nil {
			return nil, 0, fmt.Errorf("render text: %w", err)
		}
		data, err := render.EncodePNG(img)
		if err != nil {
			return nil, 0, err
		}
		return data, 1, nil
	}

	batch, err := renderer.RenderAll(ctx, result.Blocks, cfg.Jobs)
	if err != nil {
		return nil, 0, err
	}
	if err := batch.Err(); err != nil {
		return nil, 0, err
	}

	data, err := render.Archive(batch.Pages)
	if err != nil {
		return nil, 0, err
	}
	return data, batch.Stats.Rendered, nil
}
