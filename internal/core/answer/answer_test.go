package answer

import "testing"

func TestMatches(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		answer string
		want   bool
	}{
		{name: "exact", input: "apple", answer: "apple", want: true},
		{name: "case insensitive", input: "Apple", answer: "APPLE", want: true},
		{name: "surrounding whitespace", input: "  apple\n", answer: "apple", want: true},
		{name: "inner whitespace matters", input: "ap ple", answer: "apple", want: false},
		{name: "different word", input: "apply", answer: "apple", want: false},
		{name: "both empty", input: " ", answer: "", want: true},
		{name: "numerals are not folded", input: "9", answer: "nine", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Matches(tc.input, tc.answer); got != tc.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tc.input, tc.answer, got, tc.want)
			}
		})
	}
}
