// Package wrap implements the vertical wrapper: it fills lines greedily up to a
// maximum width and groups them into blocks of a target height, closing a block
// early on a break character once the block is close to full.
package wrap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/blockwrap/pkg/chunk"
)

// ErrInvalidConfiguration is returned by New when the options cannot produce output.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Default settings.
const (
	DefaultWidth  = 65
	DefaultHeight = 8
)

// DefaultBreakCharacters returns the marks that may close a block early.
func DefaultBreakCharacters() []string {
	return []string{".", "!", "?"}
}

// Block is an ordered group of wrapped lines rendered together.
type Block []string

// Options configures a Wrapper.
type Options struct {
	// Width is the maximum line length in runes.
	Width int

	// Height is the target number of lines per block.
	Height int

	// BreakCharacters are the marks that may close a block early.
	// A nil slice selects DefaultBreakCharacters.
	BreakCharacters []string

	// BreakOnHyphens splits hyphenated words into separate tokens.
	BreakOnHyphens bool

	// Justify pads every line but the last of each block to full width.
	Justify bool

	// Indent and Placeholder are reserved prefix/suffix strings; together
	// they must fit on a line.
	Indent      string
	Placeholder string
}

// DefaultOptions returns Options matching the stock settings.
func DefaultOptions() Options {
	return Options{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		BreakCharacters: DefaultBreakCharacters(),
		BreakOnHyphens:  true,
	}
}

// Wrapper turns token sequences into blocks. It is immutable after New and
// safe for concurrent use.
type Wrapper struct {
	opts Options
}

// New validates opts and returns a Wrapper.
func New(opts Options) (*Wrapper, error) {
	if opts.Width <= 0 {
		return nil, fmt.Errorf("%w: width %d must be > 0", ErrInvalidConfiguration, opts.Width)
	}
	if opts.Height < 1 {
		return nil, fmt.Errorf("%w: height %d must be >= 1", ErrInvalidConfiguration, opts.Height)
	}
	if chunk.Len(opts.Indent)+chunk.Len(strings.TrimLeft(opts.Placeholder, " ")) > opts.Width {
		return nil, fmt.Errorf("%w: indent and placeholder exceed width %d", ErrInvalidConfiguration, opts.Width)
	}

	if opts.BreakCharacters == nil {
		opts.BreakCharacters = DefaultBreakCharacters()
	}
	breaks := make([]string, len(opts.BreakCharacters))
	for i, bc := range opts.BreakCharacters {
		if bc == "" {
			return nil, fmt.Errorf("%w: break character %d is empty", ErrInvalidConfiguration, i)
		}
		breaks[i] = bc
	}
	opts.BreakCharacters = breaks

	return &Wrapper{opts: opts}, nil
}

// Options returns a copy of the wrapper's configuration.
func (w *Wrapper) Options() Options {
	opts := w.opts
	opts.BreakCharacters = append([]string(nil), w.opts.BreakCharacters...)
	return opts
}

// Split tokenizes text with the wrapper's hyphen setting.
func (w *Wrapper) Split(text string) []string {
	return chunk.Split(text, chunk.Options{BreakOnHyphens: w.opts.BreakOnHyphens})
}

// Assemble splits text and wraps it into blocks, justifying each block when enabled.
func (w *Wrapper) Assemble(text string) []Block {
	blocks := w.Wrap(w.Split(text))
	if !w.opts.Justify {
		return blocks
	}

	for i, block := range blocks {
		blocks[i] = Block(Justify(block, w.opts.Width))
	}
	return blocks
}

// Wrap groups tokens into blocks of lines.
//
// Lines fill greedily. A block closes when it reaches Height lines, or earlier
// when a token containing a break character is accepted while the block already
// holds at least Height-2 completed lines; that line then ends the block. The
// punctuation check runs per accepted token, the height check per completed line.
// A token longer than Width is placed alone on its own line.
func (w *Wrapper) Wrap(tokens []string) []Block {
	f := &filler{w: w, tokens: tokens}
	return f.run()
}

// filler holds the per-call state of the line-filling state machine.
type filler struct {
	w      *Wrapper
	tokens []string
	pos    int

	blocks []Block
	block  Block
	full   bool

	line   []string
	length int
}

func (f *filler) run() []Block {
	width := f.w.opts.Width

	for f.pos < len(f.tokens) {
		tok := f.tokens[f.pos]
		size := chunk.Len(tok)

		switch {
		case len(f.line) == 0 && chunk.IsSpace(tok):
			f.pos++

		case size > width:
			if len(f.line) > 0 {
				f.finishLine()
				continue
			}
			f.accept(tok, size)

		case f.length+size <= width:
			f.accept(tok, size)

		default:
			f.finishLine()
		}
	}

	f.finishLine()
	f.finishBlock()

	return f.blocks
}

// accept places tok on the current line and applies the early-break policy.
func (f *filler) accept(tok string, size int) {
	f.line = append(f.line, tok)
	f.length += size
	f.pos++

	if f.w.hasBreak(tok) && len(f.block) >= f.w.opts.Height-2 {
		f.full = true
		f.finishLine()
	}
}

// finishLine closes the current line and, once the block is full, the block.
func (f *filler) finishLine() {
	line := strings.TrimSpace(strings.Join(f.line, ""))
	f.line = f.line[:0]
	f.length = 0

	if line != "" {
		f.block = append(f.block, line)
	}
	if len(f.block) >= f.w.opts.Height {
		f.full = true
	}
	if f.full {
		f.finishBlock()
	}
}

func (f *filler) finishBlock() {
	if len(f.block) > 0 {
		f.blocks = append(f.blocks, f.block)
	}
	f.block = nil
	f.full = false
}

// hasBreak reports whether tok contains any break character.
func (w *Wrapper) hasBreak(tok string) bool {
	for _, bc := range w.opts.BreakCharacters {
		if strings.Contains(tok, bc) {
			return true
		}
	}
	return false
}
