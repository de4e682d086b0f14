// Package answer checks typed quiz answers against the expected word.
package answer

import "strings"

// Normalize trims surrounding whitespace and lower-cases s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Matches reports whether input equals answer after normalization. It is
// an exact check; spoken answers should be scored instead.
func Matches(input, answer string) bool {
	return Normalize(input) == Normalize(answer)
}
