// Package chunk splits raw text into the indivisible tokens consumed by the wrapper.
//
// A token is either a run of whitespace or a "word". Words may carry trailing
// punctuation and, when hyphen breaking is enabled, end in a hyphen. Joining the
// tokens in order reproduces the input after whitespace munging and punctuation
// spacing.
package chunk

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SpacedPunctuation lists the marks that always get a following space.
const SpacedPunctuation = ".,!?:;"

// Options controls tokenization.
type Options struct {
	// BreakOnHyphens splits hyphenated words after the hyphen and isolates em-dashes.
	BreakOnHyphens bool
}

// DefaultOptions returns Options with hyphen breaking enabled.
func DefaultOptions() Options {
	return Options{BreakOnHyphens: true}
}

// Split breaks text into tokens. It never fails; empty input yields nil.
func Split(text string, opts Options) []string {
	if text == "" {
		return nil
	}

	text = SpacePunctuation(MungeWhitespace(text))

	var tokens []string
	for len(text) > 0 {
		r, _ := utf8.DecodeRuneInString(text)
		end := runEnd(text, r == ' ')
		run := text[:end]
		text = text[end:]

		if r == ' ' || !opts.BreakOnHyphens {
			tokens = append(tokens, run)
			continue
		}
		tokens = append(tokens, splitHyphens(run)...)
	}

	return tokens
}

// MungeWhitespace replaces every whitespace rune with a single space.
func MungeWhitespace(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, text)
}

// SpacePunctuation inserts a space after any mark in SpacedPunctuation that is
// not already followed by whitespace or the end of the text.
func SpacePunctuation(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/8)

	for i, r := range text {
		b.WriteRune(r)
		if !strings.ContainsRune(SpacedPunctuation, r) {
			continue
		}
		next, size := utf8.DecodeRuneInString(text[i+utf8.RuneLen(r):])
		if size > 0 && !unicode.IsSpace(next) {
			b.WriteByte(' ')
		}
	}

	return b.String()
}

// Len returns the display length of a token in runes.
func Len(token string) int {
	return utf8.RuneCountInString(token)
}

// IsSpace reports whether the token is whitespace only.
func IsSpace(token string) bool {
	return strings.TrimSpace(token) == ""
}

// runEnd returns the byte offset where the current space or non-space run ends.
func runEnd(text string, space bool) int {
	for i, r := range text {
		if (r == ' ') != space {
			return i
		}
	}
	return len(text)
}

// splitHyphens splits a word after hyphens sitting between two letters and
// isolates em-dashes (two or more hyphens) that sit between word characters.
func splitHyphens(word string) []string {
	runes := []rune(word)
	var parts []string
	start := 0

	for i := 0; i < len(runes); i++ {
		if runes[i] != '-' {
			continue
		}

		j := i
		for j < len(runes) && runes[j] == '-' {
			j++
		}
		dashes := j - i

		switch {
		case dashes == 1 && i > 0 && j < len(runes) &&
			unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[j]):
			parts = append(parts, string(runes[start:j]))
			start = j
		case dashes >= 2 && i > 0 && j < len(runes) &&
			isWordPunct(runes[i-1]) && isWordRune(runes[j]):
			parts = append(parts, string(runes[start:i]), string(runes[i:j]))
			start = j
		}

		i = j - 1
	}

	if start < len(runes) {
		parts = append(parts, string(runes[start:]))
	}

	return parts
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isWordPunct(r rune) bool {
	return isWordRune(r) || strings.ContainsRune(`!"'&.,?`, r)
}
