// Package metaphone provides Double Metaphone codes for diagnostics. The
// codes are reported next to a score but never change it.
package metaphone

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// Codes holds the Double Metaphone encodings of every token in a phrase.
type Codes struct {
	Primary   []string `json:"primary"`
	Alternate []string `json:"alternate"`
}

// Encode returns the Double Metaphone codes for each whitespace-separated
// token of text. Tokens that produce no code are skipped.
func Encode(text string) Codes {
	var c Codes
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		p, s := matchr.DoubleMetaphone(tok)
		if p == "" && s == "" {
			continue
		}
		c.Primary = append(c.Primary, p)
		c.Alternate = append(c.Alternate, s)
	}
	return c
}

// Overlap reports whether any code of a equals any code of b.
func Overlap(a, b Codes) bool {
	set := make(map[string]struct{}, len(a.Primary)*2)
	for _, code := range append(append([]string(nil), a.Primary...), a.Alternate...) {
		if code != "" {
			set[code] = struct{}{}
		}
	}
	for _, code := range append(append([]string(nil), b.Primary...), b.Alternate...) {
		if _, ok := set[code]; ok && code != "" {
			return true
		}
	}
	return false
}
