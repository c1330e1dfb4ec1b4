// Package render draws wrapped blocks onto images.
//
// A Renderer owns a parsed font and a prepared background. Each call creates
// its own font face, so one Renderer can serve several goroutines.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/yaklabco/blockwrap/pkg/wrap"
)

// Defaults for the stock 1080p quote card.
const (
	DefaultWidth    = 1920
	DefaultHeight   = 1080
	DefaultFontSize = 48
	DefaultDPI      = 72
)

// DefaultMargin is where single-image text starts.
//
//nolint:gochecknoglobals // Read-only default.
var DefaultMargin = image.Point{X: 58, Y: 300}

// ErrEmptyBlock is returned when asked to draw a block without lines.
var ErrEmptyBlock = errors.New("block has no lines")

// Options configures a Renderer.
type Options struct {
	// Width and Height are the canvas size in pixels.
	Width  int
	Height int

	// FontSize is the font size in points.
	FontSize float64

	// DPI scales FontSize to pixels.
	DPI float64

	// Font is a TrueType/OpenType font. Nil selects Go Bold.
	Font []byte

	// Background is scaled to the canvas. Nil generates a solid canvas.
	Background image.Image

	// Transparent makes the generated canvas transparent instead of black.
	Transparent bool

	// TextColor defaults to white.
	TextColor color.Color

	// Margin is the top-left origin for RenderText.
	Margin image.Point
}

// DefaultOptions returns Options for a black 1920x1080 card.
func DefaultOptions() Options {
	return Options{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		FontSize:  DefaultFontSize,
		DPI:       DefaultDPI,
		TextColor: color.White,
		Margin:    DefaultMargin,
	}
}

// Renderer draws text onto copies of a prepared background.
type Renderer struct {
	opts       Options
	font       *opentype.Font
	background *image.RGBA
	ink        image.Image
}

// New parses the font and prepares the background.
func New(opts Options) (*Renderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}
	if opts.FontSize <= 0 {
		return nil, fmt.Errorf("invalid font size %v", opts.FontSize)
	}
	if opts.DPI <= 0 {
		opts.DPI = DefaultDPI
	}
	if opts.TextColor == nil {
		opts.TextColor = color.White
	}

	ttf := opts.Font
	if ttf == nil {
		ttf = gobold.TTF
	}
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	return &Renderer{
		opts:       opts,
		font:       parsed,
		background: prepareBackground(opts),
		ink:        image.NewUniform(opts.TextColor),
	}, nil
}

// Bounds returns the canvas rectangle.
func (r *Renderer) Bounds() image.Rectangle {
	return r.background.Bounds()
}

// RenderBlock draws the block's lines centered on the canvas, each line
// centered on its own width.
func (r *Renderer) RenderBlock(block wrap.Block) (*image.RGBA, error) {
	if len(block) == 0 {
		return nil, ErrEmptyBlock
	}

	face, err := r.newFace()
	if err != nil {
		return nil, err
	}
	defer face.Close()

	dst := r.canvas()
	drawer := &font.Drawer{Dst: dst, Src: r.ink, Face: face}

	lineHeight, ascent := lineMetrics(face)
	width := fixed.I(r.opts.Width)
	top := (fixed.I(r.opts.Height) - lineHeight*fixed.Int26_6(len(block))) / 2

	for i, line := range block {
		advance := drawer.MeasureString(line)
		drawer.Dot = fixed.Point26_6{
			X: (width - advance) / 2,
			Y: top + ascent + lineHeight*fixed.Int26_6(i),
		}
		drawer.DrawString(line)
	}

	return dst, nil
}

// RenderText draws newline-separated text left-aligned from the margin.
// Blank lines advance the pen without drawing.
func (r *Renderer) RenderText(text string) (*image.RGBA, error) {
	face, err := r.newFace()
	if err != nil {
		return nil, err
	}
	defer face.Close()

	dst := r.canvas()
	drawer := &font.Drawer{Dst: dst, Src: r.ink, Face: face}

	lineHeight, ascent := lineMetrics(face)
	origin := fixed.P(r.opts.Margin.X, r.opts.Margin.Y)

	for i, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if line == "" {
			continue
		}
		drawer.Dot = fixed.Point26_6{
			X: origin.X,
			Y: origin.Y + ascent + lineHeight*fixed.Int26_6(i),
		}
		drawer.DrawString(line)
	}

	return dst, nil
}

// MeasureBlock returns the pixel size of the block's text box.
func (r *Renderer) MeasureBlock(block wrap.Block) (image.Point, error) {
	face, err := r.newFace()
	if err != nil {
		return image.Point{}, err
	}
	defer face.Close()

	lineHeight, _ := lineMetrics(face)
	var widest fixed.Int26_6
	for _, line := range block {
		widest = max(widest, font.MeasureString(face, line))
	}

	return image.Point{
		X: widest.Ceil(),
		Y: (lineHeight * fixed.Int26_6(len(block))).Ceil(),
	}, nil
}

func (r *Renderer) newFace() (font.Face, error) {
	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    r.opts.FontSize,
		DPI:     r.opts.DPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

// canvas returns a fresh copy of the background.
func (r *Renderer) canvas() *image.RGBA {
	dst := image.NewRGBA(r.background.Bounds())
	draw.Copy(dst, image.Point{}, r.background, r.background.Bounds(), draw.Src, nil)
	return dst
}

func lineMetrics(face font.Face) (height, ascent fixed.Int26_6) {
	m := face.Metrics()
	height = max(m.Height, m.Ascent+m.Descent)
	return height, m.Ascent
}

func prepareBackground(opts Options) *image.RGBA {
	bounds := image.Rect(0, 0, opts.Width, opts.Height)
	dst := image.NewRGBA(bounds)

	if opts.Background != nil {
		draw.CatmullRom.Scale(dst, bounds, opts.Background, opts.Background.Bounds(), draw.Src, nil)
		return dst
	}

	fill := image.Black
	if opts.Transparent {
		fill = image.Transparent
	}
	draw.Draw(dst, bounds, fill, image.Point{}, draw.Src)
	return dst
}
