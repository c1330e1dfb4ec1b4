package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer

	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	return buf.Bytes(), nil
}

// Archive packs pages into a zip archive, one entry per page named by its
// one-based block number. Pages with errors are skipped.
func Archive(pages []Page) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, page := range pages {
		if page.Error != nil {
			continue
		}

		// PNG data is already deflated.
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:   page.Name(),
			Method: zip.Store,
		})
		if err != nil {
			return nil, fmt.Errorf("add %s: %w", page.Name(), err)
		}
		if _, err := w.Write(page.PNG); err != nil {
			return nil, fmt.Errorf("write %s: %w", page.Name(), err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}

	return buf.Bytes(), nil
}
