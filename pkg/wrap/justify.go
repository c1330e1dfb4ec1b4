package wrap

import (
	"strings"

	"github.com/yaklabco/blockwrap/pkg/chunk"
)

// Justify pads every line except the last to exactly width by widening its
// spaces. Slack is spread evenly and the leftmost spaces get the remainder.
// Lines without a space, lines longer than width and the last line are only
// stripped of trailing whitespace or left alone. The input is not modified.
func Justify(lines []string, width int) []string {
	out := make([]string, len(lines))
	copy(out, lines)

	for i := 0; i < len(out)-1; i++ {
		line := out[i]
		if chunk.Len(line) > width || !strings.Contains(line, " ") {
			continue
		}
		out[i] = strings.TrimRight(justifyLine(line, width), " ")
	}

	return out
}

func justifyLine(line string, width int) string {
	spaces := strings.Count(line, " ")
	total := width - chunk.Len(line) + spaces
	gap, extra := total/spaces, total%spaces

	var b strings.Builder
	b.Grow(len(line) + total)

	seen := 0
	for _, r := range line {
		if r != ' ' {
			b.WriteRune(r)
			continue
		}
		n := gap
		if seen < extra {
			n++
		}
		b.WriteString(strings.Repeat(" ", n))
		seen++
	}

	return b.String()
}
