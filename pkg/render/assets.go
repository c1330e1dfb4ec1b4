package render

import (
	"fmt"
	"image"
	"os"

	// Decoders for backgrounds.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// LoadFont reads a TrueType or OpenType font file. An empty path returns
// nil, which selects the built-in font.
func LoadFont(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return data, nil
}

// LoadImage decodes a PNG, JPEG, GIF, BMP or WebP background. An empty path
// returns nil, which selects a generated background.
func LoadImage(path string) (image.Image, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open background: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode background %s: %w", path, err)
	}
	return img, nil
}
