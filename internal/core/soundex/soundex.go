// Package soundex computes a four-character English Soundex code.
//
// Adjacent duplicates are collapsed by comparing each letter's code with the
// code of the letter immediately before it, where vowels and h, w, y count
// as '0'. There is no special h/w bridging and the first letter's own code
// does not seed the comparison, so "Pfister" encodes as "P123" rather than
// the textbook "P236".
package soundex

import (
	"strings"
	"unicode"
)

// Length is the size of every non-empty code.
const Length = 4

var codes = map[rune]byte{
	'b': '1', 'f': '1', 'p': '1', 'v': '1',
	'c': '2', 'g': '2', 'j': '2', 'k': '2', 'q': '2', 's': '2', 'x': '2', 'z': '2',
	'd': '3', 't': '3',
	'l': '4',
	'm': '5', 'n': '5',
	'r': '6',
}

func code(r rune) byte {
	if c, ok := codes[r]; ok {
		return c
	}
	return '0'
}

// Code returns the Soundex code for s. Input with no letters yields "".
func Code(s string) string {
	var letters []rune
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteRune(unicode.ToUpper(letters[0]))

	// n counts runes, not bytes; the first letter may be multi-byte.
	n := 1
	prev := byte('0')
	for _, r := range letters[1:] {
		if n == Length {
			break
		}
		c := code(r)
		if c != '0' && c != prev {
			sb.WriteByte(c)
			n++
		}
		prev = c
	}
	for ; n < Length; n++ {
		sb.WriteByte('0')
	}
	return sb.String()
}

// Match reports whether a and b have the same non-empty code.
func Match(a, b string) bool {
	ca := Code(a)
	return ca != "" && ca == Code(b)
}
