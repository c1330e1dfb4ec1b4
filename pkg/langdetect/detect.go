// Package langdetect decides whether input text is Markdown or plain prose.
// File names are resolved with go-enry's language tables; content without a
// telling name is scored on common Markdown constructs.
package langdetect

import (
	"bufio"
	"bytes"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/blockwrap/pkg/config"
)

// markdownScore is the score at which content counts as Markdown.
const markdownScore = 2

// Languages that are read as Markdown.
//
//nolint:gochecknoglobals // Read-only lookup table.
var markdownLanguages = map[string]bool{
	"Markdown":  true,
	"RMarkdown": true,
	"MDX":       true,
}

//nolint:gochecknoglobals // Compiled once.
var (
	headingRe  = regexp.MustCompile(`^#{1,6}\s+\S`)
	fenceRe    = regexp.MustCompile("^(```|~~~)")
	linkRe     = regexp.MustCompile(`!?\[[^\]]+\]\([^)\s]+\)`)
	emphasisRe = regexp.MustCompile(`(\*\*|__)\S[^*_]*\S(\*\*|__)`)
	listRe     = regexp.MustCompile(`^\s{0,3}([-*+]|\d+[.)])\s+\S`)
	quoteRe    = regexp.MustCompile(`^\s{0,3}>\s`)
)

// Detect returns the input format for content read from path. An empty
// path or "-" means the content came from stdin.
func Detect(path string, content []byte) config.InputFormat {
	if lang, ok := ByName(path); ok {
		if markdownLanguages[lang] {
			return config.InputMarkdown
		}
		return config.InputPlain
	}

	if LooksLikeMarkdown(content) {
		return config.InputMarkdown
	}
	return config.InputPlain
}

// ByName returns the language go-enry associates with the file name. An
// extension shared by several languages resolves to Markdown when Markdown
// is one of them (".md" is also GCC Machine Description).
func ByName(path string) (string, bool) {
	if path == "" || path == "-" {
		return "", false
	}

	base := filepath.Base(path)
	if lang, safe := enry.GetLanguageByFilename(base); safe && lang != "" {
		return lang, true
	}

	langs := enry.GetLanguagesByExtension(strings.ToLower(base), nil, nil)
	for _, lang := range langs {
		if markdownLanguages[lang] {
			return lang, true
		}
	}
	if len(langs) > 0 {
		return langs[0], true
	}
	return "", false
}

// LooksLikeMarkdown scores content on Markdown constructs. Headings, fences
// and links are strong signals; emphasis, lists and quotes are weak ones.
func LooksLikeMarkdown(content []byte) bool {
	score := 0
	seen := make(map[*regexp.Regexp]bool)

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() && score < markdownScore {
		line := scanner.Text()

		for _, sig := range []struct {
			re     *regexp.Regexp
			weight int
		}{
			{headingRe, 2},
			{fenceRe, 2},
			{linkRe, 2},
			{emphasisRe, 1},
			{listRe, 1},
			{quoteRe, 1},
		} {
			// Each construct counts once so a long list stays plain.
			if !seen[sig.re] && sig.re.MatchString(line) {
				seen[sig.re] = true
				score += sig.weight
			}
		}
	}

	return score >= markdownScore
}
