package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/blockwrap/internal/ui/pretty"
	"github.com/yaklabco/blockwrap/pkg/wrap"
)

func TestRenderBlocks(t *testing.T) {
	styles := pretty.NewStyles(false)

	blocks := []wrap.Block{
		{"Alpha beta.", "Gamma delta."},
		{"eta."},
	}

	out := styles.RenderBlocks(blocks, 12)

	assert.Contains(t, out, "block 1/2 · 2 lines")
	assert.Contains(t, out, "block 2/2 · 1 line")
	assert.Contains(t, out, "│ Alpha beta.  │")
	assert.Contains(t, out, "│ eta.         │")
	assert.Equal(t, 2, strings.Count(out, "╭"))
}

func TestRenderBlocks_OversizeWidensBox(t *testing.T) {
	styles := pretty.NewStyles(false)

	out := styles.RenderBlocks([]wrap.Block{{"abcdefghij", "ab"}}, 5)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5) // header, top border, 2 lines, bottom border
	assert.Equal(t, "│ abcdefghij │", lines[2])
	assert.Equal(t, "│ ab         │", lines[3])
}

func TestRenderBlocks_Empty(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "(no blocks)\n", styles.RenderBlocks(nil, 10))
}

func TestFormatBlockHeader(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "block 3/7 · 8 lines", styles.FormatBlockHeader(2, 7, 8))
}
