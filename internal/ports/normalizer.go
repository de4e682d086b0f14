package ports

// Normalizer defines the interface for text normalization applied before
// numeral folding.
type Normalizer interface {
	Normalize(text string) string
}
