package normalizer

import "testing"

func TestNormalizers(t *testing.T) {
	tests := []struct {
		name string
		typ  NormalizerType
		in   string
		want string
	}{
		{name: "passthrough keeps text", typ: PassthroughNormalizerType, in: " Nine. ", want: " Nine. "},
		{name: "punctuation stripped", typ: PunctuationNormalizerType, in: "Nine.", want: "Nine"},
		{name: "punctuation collapses spaces", typ: PunctuationNormalizerType, in: "one,  two... three!", want: "one two three"},
		{name: "accent stripped", typ: AccentNormalizerType, in: "café", want: "cafe"},
		{name: "accent keeps case", typ: AccentNormalizerType, in: "Élan Über", want: "Elan Uber"},
		{name: "accent leaves ascii", typ: AccentNormalizerType, in: "hello", want: "hello"},
	}

	f := NewNormalizerFactory()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := f.CreateNormalizer(tc.typ)
			if got := n.Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		name    string
		want    NormalizerType
		wantErr bool
	}{
		{name: "", want: PassthroughNormalizerType},
		{name: "none", want: PassthroughNormalizerType},
		{name: "punctuation", want: PunctuationNormalizerType},
		{name: "accent", want: AccentNormalizerType},
		{name: "bogus", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseType(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseType(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseType(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestChain(t *testing.T) {
	c := Chain{NewAccentNormalizer(), NewPunctuationNormalizer()}
	if got := c.Normalize("Café, s'il vous plaît."); got != "Cafe s il vous plait" {
		t.Errorf("Chain.Normalize = %q", got)
	}
}
