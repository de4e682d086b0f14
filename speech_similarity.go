// speech_similarity.go
// Package speechsimilarity grades how well a spoken utterance matches the
// expected word or phrase of a flashcard. The score is an integer between
// 0 and 100 computed as follows:
//
//  1. Both texts are lower-cased, trimmed and folded so that number words
//     become digits ("nine" -> "9"). Equal results score 100.
//  2. The same is done in the other direction ("9" -> "nine").
//  3. Otherwise the score is the best floor(Jaro–Winkler * 100) of the two
//     folded forms, raised to 85 when the Soundex codes of the
//     digit-folded forms agree.
//
// Number folding is a plain substring replacement, so a number word inside
// another word is also folded ("tenant" -> "10ant"). Use the pkg/speech
// package and its WithWordBoundaryFolding option to avoid this.
package speechsimilarity

import (
	"context"

	"github.com/baditaflorin/go_speech_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_speech_similarity/internal/core/answer"
	"github.com/baditaflorin/go_speech_similarity/internal/core/domain"
	"github.com/baditaflorin/go_speech_similarity/internal/core/jarowinkler"
	"github.com/baditaflorin/go_speech_similarity/internal/core/numeral"
	"github.com/baditaflorin/go_speech_similarity/internal/core/soundex"
	"github.com/baditaflorin/go_speech_similarity/internal/core/speech"
)

// Result holds the outcome of a scoring run.
type Result = domain.Result

// Default configuration values.
const (
	DefaultThreshold     = speech.DefaultThreshold
	DefaultPhoneticFloor = speech.DefaultPhoneticFloor
)

// SimilarityPercent returns the confidence in [0, 100] that spoken is an
// acceptable utterance of expected. It never fails.
func SimilarityPercent(expected, spoken string) int {
	return speech.Percent(expected, spoken)
}

// WordsToNumbers lower-cases and trims text, then replaces every number
// word with its digits.
func WordsToNumbers(text string) string {
	return numeral.WordsToNumbers(text)
}

// NumbersToWords lower-cases and trims text, then replaces digit strings
// with number words, longest first.
func NumbersToWords(text string) string {
	return numeral.NumbersToWords(text)
}

// JaroWinkler returns the Jaro–Winkler similarity of a and b in [0, 1].
func JaroWinkler(a, b string) float64 {
	return jarowinkler.Similarity(a, b)
}

// Soundex returns the four-character Soundex code of s, or "" when s
// contains no letters.
func Soundex(s string) string {
	return soundex.Code(s)
}

// AnswerMatches reports whether a typed quiz answer equals the expected
// answer, ignoring case and surrounding whitespace.
func AnswerMatches(input, expected string) bool {
	return answer.Matches(input, expected)
}

// ComputeWithDefaults scores spoken against expected with the default
// threshold. Steps are logged through the default logger when it can be
// created.
func ComputeWithDefaults(expected, spoken string) Result {
	lg, err := createDefaultLogger()
	if err != nil {
		lg = newNopLogger()
	}
	defer lg.Close()

	calc, err := speech.NewCalculator(speech.DefaultConfig(), lg, normalizer.NewPassthroughNormalizer())
	if err != nil {
		return Result{Name: speech.MetricName, Details: map[string]interface{}{"error": err.Error()}}
	}
	return calc.Compute(context.Background(), expected, spoken)
}
