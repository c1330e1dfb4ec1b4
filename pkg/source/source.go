// Package source reads the text that gets wrapped into blocks.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/yaklabco/blockwrap/pkg/config"
	"github.com/yaklabco/blockwrap/pkg/fsutil"
	"github.com/yaklabco/blockwrap/pkg/langdetect"
)

// StdinPath selects standard input.
const StdinPath = "-"

// ErrInteractiveStdin is returned when input would be read from a terminal.
var ErrInteractiveStdin = errors.New("no input file given and stdin is a terminal")

// Document is a loaded input.
type Document struct {
	// Path is the file the text came from, or "-" for stdin.
	Path string

	// Format is the resolved input format (plain or markdown).
	Format config.InputFormat

	// Text is the paragraph text handed to the wrapper.
	Text string

	// Size is the number of raw bytes read.
	Size int

	// Hash is a short content hash for files; empty for stdin.
	Hash string
}

// Options controls reading.
type Options struct {
	// Format forces an input format. Auto (or empty) detects it from the
	// file name, or from the content for stdin and unknown names.
	Format config.InputFormat

	// Flavor selects the Markdown dialect.
	Flavor config.Flavor

	// Stdin overrides standard input. Nil means os.Stdin.
	Stdin io.Reader
}

// Read loads path (or stdin for "" and "-") and extracts its text.
func Read(ctx context.Context, path string, opts Options) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("read cancelled: %w", err)
	}

	if path == "" {
		path = StdinPath
	}

	content, info, err := readAll(ctx, path, opts.Stdin)
	if err != nil {
		return nil, err
	}

	format := resolveFormat(path, content, opts.Format)

	doc := &Document{
		Path:   path,
		Format: format,
		Size:   len(content),
		Hash:   info.HashString(),
	}

	switch format {
	case config.InputMarkdown:
		doc.Text = MarkdownText(content, opts.Flavor)
	default:
		doc.Text = string(content)
	}

	return doc, nil
}

func readAll(ctx context.Context, path string, stdin io.Reader) ([]byte, *fsutil.FileInfo, error) {
	if path != StdinPath {
		content, info, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			return nil, nil, fmt.Errorf("read input: %w", err)
		}
		return content, info, nil
	}

	if stdin == nil {
		stdin = os.Stdin
	}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, nil, ErrInteractiveStdin
	}

	content, err := io.ReadAll(stdin)
	if err != nil {
		return nil, nil, fmt.Errorf("read stdin: %w", err)
	}
	return content, nil, nil
}

// resolveFormat picks the input format for content read from path.
func resolveFormat(path string, content []byte, format config.InputFormat) config.InputFormat {
	if format != "" && format != config.InputAuto {
		return format
	}
	return langdetect.Detect(path, content)
}
