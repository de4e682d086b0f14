// Package jarowinkler implements Jaro–Winkler string similarity over runes.
package jarowinkler

const (
	// PrefixScale is the Winkler bonus applied per common leading rune.
	PrefixScale = 0.1
	// MaxPrefix caps the common prefix considered for the bonus.
	MaxPrefix = 4
)

// Similarity returns the Jaro–Winkler similarity of a and b in [0, 1].
//
// Two empty strings are identical (1.0); an empty and a non-empty string
// share nothing (0.0). When no runes match inside the window the result is
// 0 and no prefix bonus is added.
func Similarity(a, b string) float64 {
	s1 := []rune(a)
	s2 := []rune(b)
	len1, len2 := len(s1), len(s2)

	if len1 == 0 || len2 == 0 {
		if len1 == 0 && len2 == 0 {
			return 1.0
		}
		return 0.0
	}

	window := max(len1, len2)/2 - 1
	if window < 0 {
		window = 0
	}

	s1Matches := make([]bool, len1)
	s2Matches := make([]bool, len2)
	matches := 0
	for i := 0; i < len1; i++ {
		start := max(0, i-window)
		end := min(i+window+1, len2)
		for j := start; j < end; j++ {
			if s2Matches[j] || s1[i] != s2[j] {
				continue
			}
			s1Matches[i] = true
			s2Matches[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0.0
	}

	transpositions := 0
	k := 0
	for i := 0; i < len1; i++ {
		if !s1Matches[i] {
			continue
		}
		for k < len2 && !s2Matches[k] {
			k++
		}
		if k < len2 && s1[i] != s2[k] {
			transpositions++
		}
		k++
	}

	m := float64(matches)
	jaro := (m/float64(len1) + m/float64(len2) + (m-float64(transpositions)/2.0)/m) / 3.0

	prefix := 0
	for i := 0; i < min(MaxPrefix, len1, len2); i++ {
		if s1[i] != s2[i] {
			break
		}
		prefix++
	}

	// Explicit conversion: no fused multiply-add.
	bonus := float64(PrefixScale * float64(prefix) * (1.0 - jaro))
	return jaro + bonus
}

// Percent returns floor(Similarity(a, b) * 100).
func Percent(a, b string) int {
	return int(Similarity(a, b) * 100)
}
