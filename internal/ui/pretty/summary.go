package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/blockwrap/pkg/wrap"
)

const summaryDividerWidth = 40

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats wrap statistics as a single line.
// Example: "3 blocks, 20 lines (1 short block, 2 oversized lines)".
func (s *Styles) FormatSummaryOneLine(stats wrap.Stats) string {
	if stats.Blocks == 0 {
		return s.Dim.Render("No text to wrap") + "\n"
	}

	msg := s.Success.Render(fmt.Sprintf("%d %s", stats.Blocks, plural(stats.Blocks, "block", "blocks"))) +
		fmt.Sprintf(", %d %s", stats.Lines, plural(stats.Lines, "line", "lines"))

	var notes []string
	if stats.ShortBlocks > 0 {
		notes = append(notes, s.Info.Render(fmt.Sprintf("%d short %s",
			stats.ShortBlocks, plural(stats.ShortBlocks, "block", "blocks"))))
	}
	if stats.OversizeLines > 0 {
		notes = append(notes, s.Warning.Render(fmt.Sprintf("%d oversized %s",
			stats.OversizeLines, plural(stats.OversizeLines, "line", "lines"))))
	}
	if len(notes) > 0 {
		msg += " (" + strings.Join(notes, ", ") + ")"
	}

	return msg + "\n"
}

// FormatSummary formats wrap statistics as a summary block.
func (s *Styles) FormatSummary(stats wrap.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Blocks:            " + s.SummaryValue.Render(strconv.Itoa(stats.Blocks)) + "\n")
	builder.WriteString("  Lines:             " + s.SummaryValue.Render(strconv.Itoa(stats.Lines)) + "\n")
	builder.WriteString("  Longest line:      " + s.SummaryValue.Render(strconv.Itoa(stats.MaxLineLength)) + "\n")

	if stats.ShortBlocks > 0 {
		builder.WriteString("  Short blocks:      " + s.Info.Render(strconv.Itoa(stats.ShortBlocks)) + "\n")
	}
	if stats.OversizeLines > 0 {
		builder.WriteString("  Oversized lines:   " + s.Warning.Render(strconv.Itoa(stats.OversizeLines)) + "\n")
	}

	return builder.String()
}

// FormatRenderResult reports where rendered output was written.
// Example: "Rendered 4 images to out/result.zip (312 KB)".
func (s *Styles) FormatRenderResult(images int, path string, size int) string {
	return s.Success.Render(fmt.Sprintf("Rendered %d %s", images, plural(images, "image", "images"))) +
		" to " + s.FilePath.Render(path) +
		s.Dim.Render(" ("+FormatBytes(size)+")") + "\n"
}

// FormatBytes formats a byte count with a binary unit.
func FormatBytes(n int) string {
	const unit = 1024
	switch {
	case n < unit:
		return fmt.Sprintf("%d B", n)
	case n < unit*unit:
		return fmt.Sprintf("%.1f KB", float64(n)/unit)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(unit*unit))
	}
}
