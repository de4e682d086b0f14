package normalizer

import (
	"fmt"

	"github.com/baditaflorin/go_speech_similarity/internal/ports"
)

// NormalizerType selects a normalizer implementation.
type NormalizerType int

const (
	// PassthroughNormalizerType leaves text untouched.
	PassthroughNormalizerType NormalizerType = iota
	// PunctuationNormalizerType folds punctuation into spaces.
	PunctuationNormalizerType
	// AccentNormalizerType strips diacritics.
	AccentNormalizerType
)

// ParseType maps a configuration name to a NormalizerType.
func ParseType(name string) (NormalizerType, error) {
	switch name {
	case "", "none", "passthrough":
		return PassthroughNormalizerType, nil
	case "punctuation":
		return PunctuationNormalizerType, nil
	case "accent":
		return AccentNormalizerType, nil
	default:
		return 0, fmt.Errorf("unknown normalizer %q", name)
	}
}

// NormalizerFactory creates normalizers by type.
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory.
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// CreateNormalizer creates a normalizer of the specified type.
func (f *NormalizerFactory) CreateNormalizer(t NormalizerType) ports.Normalizer {
	switch t {
	case PunctuationNormalizerType:
		return NewPunctuationNormalizer()
	case AccentNormalizerType:
		return NewAccentNormalizer()
	default:
		return NewPassthroughNormalizer()
	}
}

// Chain applies normalizers in order.
type Chain []ports.Normalizer

// Normalize runs text through every normalizer in the chain.
func (c Chain) Normalize(text string) string {
	for _, n := range c {
		text = n.Normalize(text)
	}
	return text
}
