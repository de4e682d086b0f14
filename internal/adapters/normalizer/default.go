package normalizer

import (
	"strings"
	"unicode"

	"github.com/baditaflorin/go_speech_similarity/internal/ports"
)

// PassthroughNormalizer returns text unchanged. Numeral folding already
// lower-cases and trims, so this keeps scores identical to the plain
// algorithm.
type PassthroughNormalizer struct{}

// NewPassthroughNormalizer creates a normalizer that does nothing.
func NewPassthroughNormalizer() ports.Normalizer {
	return PassthroughNormalizer{}
}

// Normalize returns text as is.
func (PassthroughNormalizer) Normalize(text string) string {
	return text
}

// PunctuationNormalizer replaces punctuation with spaces and collapses
// whitespace runs. Useful when a transcriber appends "." or "?".
type PunctuationNormalizer struct{}

// NewPunctuationNormalizer creates a punctuation-folding normalizer.
func NewPunctuationNormalizer() ports.Normalizer {
	return PunctuationNormalizer{}
}

// Normalize converts punctuation to spaces and joins the remaining fields
// with single spaces.
func (PunctuationNormalizer) Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if unicode.IsPunct(r) {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
