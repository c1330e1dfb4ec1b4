package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/blockwrap/pkg/chunk"
	"github.com/yaklabco/blockwrap/pkg/wrap"
)

// RenderBlocks draws each block in a rounded box under a header like
// "block 2/5 · 8 lines". Boxes are at least width columns wide so short
// blocks line up; lines longer than width are highlighted.
func (s *Styles) RenderBlocks(blocks []wrap.Block, width int) string {
	if len(blocks) == 0 {
		return s.Dim.Render("(no blocks)") + "\n"
	}

	var builder strings.Builder

	for i, block := range blocks {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(s.FormatBlockHeader(i, len(blocks), len(block)))
		builder.WriteString("\n")
		builder.WriteString(s.renderBlock(block, width))
		builder.WriteString("\n")
	}

	return builder.String()
}

// FormatBlockHeader formats the caption shown above a block.
func (s *Styles) FormatBlockHeader(index, total, lines int) string {
	lineWord := "lines"
	if lines == 1 {
		lineWord = "line"
	}
	return s.BlockHeader.Render(fmt.Sprintf("block %d/%d · %d %s", index+1, total, lines, lineWord))
}

func (s *Styles) renderBlock(block wrap.Block, width int) string {
	inner := width
	for _, line := range block {
		inner = max(inner, chunk.Len(line))
	}

	rows := make([]string, len(block))
	for i, line := range block {
		n := chunk.Len(line)
		padding := strings.Repeat(" ", inner-n)

		style := s.BlockLine
		if n > width {
			style = s.Oversize
		}
		rows[i] = style.Render(line) + padding
	}

	return s.BlockBorder.Render(strings.Join(rows, "\n"))
}
