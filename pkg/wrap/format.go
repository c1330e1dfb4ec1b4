package wrap

import (
	"strings"

	"github.com/yaklabco/blockwrap/pkg/chunk"
)

// FormatBlocks joins all lines with newlines and follows each block with
// blankLines extra newlines. Negative blankLines is treated as zero.
func FormatBlocks(blocks []Block, blankLines int) string {
	blankLines = max(blankLines, 0)

	var b strings.Builder
	for _, block := range blocks {
		for _, line := range block {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat("\n", blankLines))
	}
	return b.String()
}

// Flatten returns every line of every block in order.
func Flatten(blocks []Block) []string {
	var lines []string
	for _, block := range blocks {
		lines = append(lines, block...)
	}
	return lines
}

// Stats summarizes a wrap result.
type Stats struct {
	Blocks        int `json:"blocks"`
	Lines         int `json:"lines"`
	OversizeLines int `json:"oversizeLines"`
	ShortBlocks   int `json:"shortBlocks"`
	MaxLineLength int `json:"maxLineLength"`
}

// Stats reports counts for blocks produced by this wrapper. Short blocks are
// blocks, other than the last, that closed early on a break character.
func (w *Wrapper) Stats(blocks []Block) Stats {
	stats := Stats{Blocks: len(blocks)}

	for i, block := range blocks {
		stats.Lines += len(block)
		if i < len(blocks)-1 && len(block) < w.opts.Height {
			stats.ShortBlocks++
		}
		for _, line := range block {
			n := chunk.Len(line)
			stats.MaxLineLength = max(stats.MaxLineLength, n)
			if n > w.opts.Width {
				stats.OversizeLines++
			}
		}
	}

	return stats
}
