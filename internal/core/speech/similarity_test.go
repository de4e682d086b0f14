package speech

import (
	"context"
	"sync"
	"testing"

	"github.com/baditaflorin/go_speech_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_speech_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_speech_similarity/internal/core/metaphone"
	"github.com/baditaflorin/go_speech_similarity/internal/core/numeral"
	"github.com/baditaflorin/go_speech_similarity/internal/ports"
	"github.com/google/go-cmp/cmp"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		spoken   string
		want     int
	}{
		{name: "nine digit", expected: "nine", spoken: "9", want: 100},
		{name: "eleven digit", expected: "eleven", spoken: "11", want: 100},
		{name: "thirty digit", expected: "thirty", spoken: "30", want: 100},
		{name: "forty digit", expected: "forty", spoken: "40", want: 100},
		{name: "twenty digit", expected: "twenty", spoken: "20", want: 100},
		{name: "twelve digit", expected: "twelve", spoken: "12", want: 100},
		{name: "hundred digit", expected: "hundred", spoken: "100", want: 100},
		{name: "digit both ways", expected: "9", spoken: "nine", want: 100},
		{name: "both empty", expected: "", spoken: "", want: 100},
		{name: "expected empty", expected: "", spoken: "abc", want: 0},
		{name: "spoken empty", expected: "abc", spoken: "", want: 0},
		{name: "case and space", expected: "Apple", spoken: "  apple ", want: 100},
		{name: "jaro winkler only", expected: "nice", spoken: "nine", want: 86},
		{name: "phonetic floor", expected: "Robert", spoken: "Rupert", want: 85},
		{name: "phonetic floor short word", expected: "cat", spoken: "cut", want: 85},
		{name: "jaro winkler above floor", expected: "flower", spoken: "flour", want: 87},
		{name: "different soundex", expected: "knight", spoken: "night", want: 94},
		{name: "unrelated", expected: "hello", spoken: "world", want: 46},
		{name: "embedded number word", expected: "tenant", spoken: "10ant", want: 100},
		{name: "no shared runes", expected: "eight", spoken: "ate", want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Percent(tc.expected, tc.spoken); got != tc.want {
				t.Errorf("Percent(%q, %q) = %d, want %d", tc.expected, tc.spoken, got, tc.want)
			}
		})
	}
}

func TestPercentTwoTo(t *testing.T) {
	got := Percent("two", "to")
	if got < 50 || got >= 100 {
		t.Errorf("Percent(two, to) = %d, want in [50, 100)", got)
	}
}

func TestPercentReflexive(t *testing.T) {
	inputs := []string{"a", "flashcard", "nine", "9", "Hundred Acre Wood", "日本語", "  padded  ", "tenant"}
	for _, s := range inputs {
		if got := Percent(s, s); got != 100 {
			t.Errorf("Percent(%q, %q) = %d, want 100", s, s, got)
		}
	}
}

func TestPercentRange(t *testing.T) {
	words := []string{"", "a", "to", "two", "2", "eight", "ate", "vocabulary", "hundred", "café", "x y z", "ninety nine"}
	for _, a := range words {
		for _, b := range words {
			got := Percent(a, b)
			if got < 0 || got > 100 {
				t.Errorf("Percent(%q, %q) = %d, out of range", a, b, got)
			}
		}
	}
}

func TestScoreBreakdown(t *testing.T) {
	got := Score(numeral.Folder{}, DefaultPhoneticFloor, "Robert", "Rupert")
	want := Breakdown{
		ExpectedNumerals: "robert",
		SpokenNumerals:   "rupert",
		ExpectedWords:    "robert",
		SpokenWords:      "rupert",
		NumeralPercent:   80,
		WordPercent:      80,
		ExpectedSoundex:  "R163",
		SpokenSoundex:    "R163",
		PhoneticMatch:    true,
		Percent:          85,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Score mismatch (-want +got):\n%s", diff)
	}
}

func TestScoreCustomFloor(t *testing.T) {
	if got := Score(numeral.Folder{}, 0, "Robert", "Rupert").Percent; got != 80 {
		t.Errorf("Score with floor 0 = %d, want 80", got)
	}
	if got := Score(numeral.Folder{}, 100, "Robert", "Rupert").Percent; got != 100 {
		t.Errorf("Score with floor 100 = %d, want 100", got)
	}
}

func TestScoreWordBoundary(t *testing.T) {
	f := numeral.NewFolder(numeral.WordBoundaryMode)
	if got := Score(f, DefaultPhoneticFloor, "tenant", "10ant").Percent; got == 100 {
		t.Errorf("word boundary folding still equates tenant and 10ant")
	}
	if got := Score(f, DefaultPhoneticFloor, "nine", "9").Percent; got != 100 {
		t.Errorf("word boundary Score(nine, 9) = %d, want 100", got)
	}
}

func newTestCalculator(t *testing.T, cfg SimilarityConfig, n ports.Normalizer) (*Calculator, *logger.Recorder) {
	t.Helper()
	rec := logger.NewRecorder()
	if n == nil {
		n = normalizer.NewPassthroughNormalizer()
	}
	calc, err := NewCalculator(cfg, rec, n)
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	return calc, rec
}

func TestCalculatorCompute(t *testing.T) {
	calc, rec := newTestCalculator(t, DefaultConfig(), nil)

	tests := []struct {
		name         string
		expected     string
		spoken       string
		wantPercent  int
		wantPassed   bool
		wantExact    bool
		wantPhonetic bool
	}{
		{name: "numeral match", expected: "nine", spoken: "9", wantPercent: 100, wantPassed: true, wantExact: true},
		{name: "close spelling passes", expected: "vocabulary", spoken: "vocabulery", wantPercent: 96, wantPassed: true, wantPhonetic: true},
		{name: "floor does not pass at threshold", expected: "two", spoken: "too", wantPercent: 80, wantPassed: false},
		{name: "phonetic floor passes", expected: "cat", spoken: "cut", wantPercent: 85, wantPassed: true, wantPhonetic: true},
		{name: "miss", expected: "hello", spoken: "world", wantPercent: 46},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := calc.Compute(context.Background(), tc.expected, tc.spoken)
			if res.Name != MetricName {
				t.Errorf("Name = %q, want %q", res.Name, MetricName)
			}
			if res.Percent != tc.wantPercent {
				t.Errorf("Percent = %d, want %d (details %v)", res.Percent, tc.wantPercent, res.Details)
			}
			if res.Passed != tc.wantPassed {
				t.Errorf("Passed = %v, want %v", res.Passed, tc.wantPassed)
			}
			if res.ExactMatch != tc.wantExact {
				t.Errorf("ExactMatch = %v, want %v", res.ExactMatch, tc.wantExact)
			}
			if res.PhoneticMatch != tc.wantPhonetic {
				t.Errorf("PhoneticMatch = %v, want %v", res.PhoneticMatch, tc.wantPhonetic)
			}
			if res.Score != float64(res.Percent)/100 {
				t.Errorf("Score = %f, want %f", res.Score, float64(res.Percent)/100)
			}
			if res.Threshold != DefaultThreshold {
				t.Errorf("Threshold = %d, want %d", res.Threshold, DefaultThreshold)
			}
		})
	}

	if rec.Count("debug") != 2*len(tests) {
		t.Errorf("recorded %d debug entries, want %d", rec.Count("debug"), 2*len(tests))
	}
}

func TestCalculatorDetails(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Metaphone = true
	calc, _ := newTestCalculator(t, cfg, nil)

	res := calc.Compute(context.Background(), "Robert", "Rupert")
	want := map[string]interface{}{
		"expected_numerals":  "robert",
		"spoken_numerals":    "rupert",
		"expected_words":     "robert",
		"spoken_words":       "rupert",
		"folding_mode":       "substring",
		"numeral_percent":    80,
		"word_percent":       80,
		"expected_soundex":   "R163",
		"spoken_soundex":     "R163",
		"expected_metaphone": metaphone.Encode("robert"),
		"spoken_metaphone":   metaphone.Encode("rupert"),
	}
	if diff := cmp.Diff(want, res.Details); diff != "" {
		t.Errorf("Details mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculatorNormalizer(t *testing.T) {
	plain, _ := newTestCalculator(t, DefaultConfig(), nil)
	if got := plain.Compute(context.Background(), "nine", "Nine.").Percent; got == 100 {
		t.Fatalf("passthrough normalizer unexpectedly folded punctuation")
	}

	punct, _ := newTestCalculator(t, DefaultConfig(), normalizer.NewPunctuationNormalizer())
	if got := punct.Compute(context.Background(), "nine", "Nine.").Percent; got != 100 {
		t.Errorf("punctuation normalizer Percent = %d, want 100", got)
	}

	accent, _ := newTestCalculator(t, DefaultConfig(), normalizer.NewAccentNormalizer())
	if got := accent.Compute(context.Background(), "café", "cafe").Percent; got != 100 {
		t.Errorf("accent normalizer Percent = %d, want 100", got)
	}
}

func TestCalculatorCancelled(t *testing.T) {
	calc, rec := newTestCalculator(t, DefaultConfig(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := calc.Compute(ctx, "nine", "9")
	if res.Percent != 0 || res.Passed {
		t.Errorf("cancelled Compute = %+v, want zero score", res)
	}
	if res.Details["error"] != "computation cancelled" {
		t.Errorf("Details[error] = %v", res.Details["error"])
	}
	if rec.Count("error") != 1 {
		t.Errorf("recorded %d error entries, want 1", rec.Count("error"))
	}
}

func TestCalculatorConcurrent(t *testing.T) {
	calc, _ := newTestCalculator(t, DefaultConfig(), nil)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := calc.Compute(context.Background(), "Robert", "Rupert").Percent; got != 85 {
					t.Errorf("concurrent Percent = %d, want 85", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestSimilarityConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SimilarityConfig)
		wantErr bool
	}{
		{name: "default", mutate: func(*SimilarityConfig) {}},
		{name: "negative threshold", mutate: func(c *SimilarityConfig) { c.Threshold = -1 }, wantErr: true},
		{name: "threshold above 100", mutate: func(c *SimilarityConfig) { c.Threshold = 101 }, wantErr: true},
		{name: "floor above 100", mutate: func(c *SimilarityConfig) { c.PhoneticFloor = 120 }, wantErr: true},
		{name: "bad mode", mutate: func(c *SimilarityConfig) { c.FoldingMode = numeral.Mode(7) }, wantErr: true},
		{name: "word boundary", mutate: func(c *SimilarityConfig) { c.FoldingMode = numeral.WordBoundaryMode }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewCalculatorRequiresCollaborators(t *testing.T) {
	if _, err := NewCalculator(DefaultConfig(), nil, normalizer.NewPassthroughNormalizer()); err == nil {
		t.Error("NewCalculator with nil logger: want error")
	}
	if _, err := NewCalculator(DefaultConfig(), logger.NewNop(), nil); err == nil {
		t.Error("NewCalculator with nil normalizer: want error")
	}
}
