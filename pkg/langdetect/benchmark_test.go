package langdetect

import (
	"strings"
	"testing"
)

func BenchmarkLooksLikeMarkdownProse(b *testing.B) {
	content := []byte(strings.Repeat("A plain sentence without any markup at all. ", 200))
	b.ResetTimer()
	for range b.N {
		LooksLikeMarkdown(content)
	}
}

func BenchmarkDetectByName(b *testing.B) {
	for range b.N {
		Detect("chapter-one.md", nil)
	}
}
