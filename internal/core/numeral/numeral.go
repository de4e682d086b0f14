// Package numeral folds English cardinal number words and their digit
// strings into a common form so that "nine" and "9" compare equal.
//
// The default folding is a plain substring replace-all per table entry.
// That means a number word embedded in an unrelated word is also replaced
// ("tenant" becomes "10ant"). WordBoundaryMode restricts replacement to
// whole tokens for callers that want to avoid this.
package numeral

import (
	"sort"
	"strings"
	"unicode"
)

// Entry is one row of the number-word table.
type Entry struct {
	Word   string
	Digits string
}

// table is the fixed bidirectional number-word mapping.
var table = []Entry{
	{"zero", "0"}, {"one", "1"}, {"two", "2"}, {"three", "3"}, {"four", "4"},
	{"five", "5"}, {"six", "6"}, {"seven", "7"}, {"eight", "8"}, {"nine", "9"},
	{"ten", "10"}, {"eleven", "11"}, {"twelve", "12"}, {"thirteen", "13"}, {"fourteen", "14"},
	{"fifteen", "15"}, {"sixteen", "16"}, {"seventeen", "17"}, {"eighteen", "18"}, {"nineteen", "19"},
	{"twenty", "20"}, {"thirty", "30"}, {"forty", "40"}, {"fifty", "50"}, {"sixty", "60"},
	{"seventy", "70"}, {"eighty", "80"}, {"ninety", "90"}, {"hundred", "100"},
}

var (
	wordToDigits map[string]string
	digitsToWord map[string]string

	// byWord is the table ordered longest word first so that "eighteen"
	// is folded before "eight" gets a chance to split it.
	byWord []Entry
	// byDigits is the table ordered longest digit string first
	// ("100" before "10" before "1").
	byDigits []Entry
)

func init() {
	wordToDigits = make(map[string]string, len(table))
	digitsToWord = make(map[string]string, len(table))
	for _, e := range table {
		if _, dup := wordToDigits[e.Word]; dup {
			panic("numeral: duplicate word " + e.Word)
		}
		if _, dup := digitsToWord[e.Digits]; dup {
			panic("numeral: duplicate digits " + e.Digits)
		}
		wordToDigits[e.Word] = e.Digits
		digitsToWord[e.Digits] = e.Word
	}

	byWord = append([]Entry(nil), table...)
	sort.SliceStable(byWord, func(i, j int) bool {
		if len(byWord[i].Word) != len(byWord[j].Word) {
			return len(byWord[i].Word) > len(byWord[j].Word)
		}
		return byWord[i].Word < byWord[j].Word
	})

	byDigits = append([]Entry(nil), table...)
	sort.SliceStable(byDigits, func(i, j int) bool {
		if len(byDigits[i].Digits) != len(byDigits[j].Digits) {
			return len(byDigits[i].Digits) > len(byDigits[j].Digits)
		}
		return byDigits[i].Digits < byDigits[j].Digits
	})
}

// Table returns a copy of the number-word table in its canonical order.
func Table() []Entry {
	return append([]Entry(nil), table...)
}

// Digits returns the digit string for a number word.
func Digits(word string) (string, bool) {
	d, ok := wordToDigits[word]
	return d, ok
}

// Word returns the number word for a digit string.
func Word(digits string) (string, bool) {
	w, ok := digitsToWord[digits]
	return w, ok
}

// Mode selects how table entries are located in the input.
type Mode int

const (
	// SubstringMode replaces every occurrence, including those inside
	// other words.
	SubstringMode Mode = iota
	// WordBoundaryMode replaces only whole tokens delimited by runes that
	// are neither letters nor digits.
	WordBoundaryMode
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case SubstringMode:
		return "substring"
	case WordBoundaryMode:
		return "word_boundary"
	default:
		return "unknown"
	}
}

// Folder applies numeral folding in a fixed mode. The zero value folds in
// SubstringMode.
type Folder struct {
	Mode Mode
}

// NewFolder returns a Folder for the given mode.
func NewFolder(mode Mode) Folder {
	return Folder{Mode: mode}
}

// WordsToNumbers lower-cases and trims text, then replaces number words
// with their digit strings.
func (f Folder) WordsToNumbers(text string) string {
	t := prepare(text)
	if f.Mode == WordBoundaryMode {
		return replaceTokens(t, wordToDigits)
	}
	for _, e := range byWord {
		t = strings.ReplaceAll(t, e.Word, e.Digits)
	}
	return t
}

// NumbersToWords lower-cases and trims text, then replaces digit strings
// with their number words.
func (f Folder) NumbersToWords(text string) string {
	t := prepare(text)
	if f.Mode == WordBoundaryMode {
		return replaceTokens(t, digitsToWord)
	}
	for _, e := range byDigits {
		t = strings.ReplaceAll(t, e.Digits, e.Word)
	}
	return t
}

// WordsToNumbers folds with the default substring semantics.
func WordsToNumbers(text string) string {
	return Folder{}.WordsToNumbers(text)
}

// NumbersToWords folds with the default substring semantics.
func NumbersToWords(text string) string {
	return Folder{}.NumbersToWords(text)
}

func prepare(text string) string {
	return strings.TrimSpace(strings.ToLower(text))
}

// replaceTokens rewrites each maximal run of letters and digits that is an
// exact key of lookup. Separators are copied through unchanged.
func replaceTokens(text string, lookup map[string]string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		tok := text[start:end]
		if r, ok := lookup[tok]; ok {
			sb.WriteString(r)
		} else {
			sb.WriteString(tok)
		}
		start = -1
	}
	for i, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
		sb.WriteRune(r)
	}
	flush(len(text))
	return sb.String()
}
