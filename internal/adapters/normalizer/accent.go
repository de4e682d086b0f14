package normalizer

import (
	"unicode"

	"github.com/baditaflorin/go_speech_similarity/internal/ports"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// AccentNormalizer strips combining marks so "café" and "cafe" compare
// equal.
type AccentNormalizer struct{}

// NewAccentNormalizer creates an accent-folding normalizer.
func NewAccentNormalizer() ports.Normalizer {
	return AccentNormalizer{}
}

// Normalize decomposes text, drops nonspacing marks and recomposes it.
func (AccentNormalizer) Normalize(text string) string {
	// transform.Chain keeps state, so build a fresh chain per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}
