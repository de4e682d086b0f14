// Package speech scores how close a spoken utterance is to the expected
// text. The score combines numeral folding, Jaro–Winkler similarity and a
// Soundex phonetic floor.
package speech

import (
	"context"
	"errors"

	"github.com/baditaflorin/go_speech_similarity/internal/core/domain"
	"github.com/baditaflorin/go_speech_similarity/internal/core/jarowinkler"
	"github.com/baditaflorin/go_speech_similarity/internal/core/metaphone"
	"github.com/baditaflorin/go_speech_similarity/internal/core/numeral"
	"github.com/baditaflorin/go_speech_similarity/internal/core/soundex"
	"github.com/baditaflorin/go_speech_similarity/internal/ports"
)

// MetricName identifies results produced by this package.
const MetricName = "speech_similarity"

const (
	// DefaultThreshold is the percentage a score must exceed to pass.
	DefaultThreshold = 80
	// DefaultPhoneticFloor is the minimum score when Soundex codes agree.
	DefaultPhoneticFloor = 85
)

// Breakdown is every intermediate value of one scoring run.
type Breakdown struct {
	ExpectedNumerals string
	SpokenNumerals   string
	ExpectedWords    string
	SpokenWords      string
	NumeralPercent   int
	WordPercent      int
	ExpectedSoundex  string
	SpokenSoundex    string
	ExactMatch       bool
	PhoneticMatch    bool
	Percent          int
}

// Score runs the scoring algorithm with the given folder and phonetic floor.
func Score(folder numeral.Folder, phoneticFloor int, expected, spoken string) Breakdown {
	b := Breakdown{
		ExpectedNumerals: folder.WordsToNumbers(expected),
		SpokenNumerals:   folder.WordsToNumbers(spoken),
		ExpectedWords:    folder.NumbersToWords(expected),
		SpokenWords:      folder.NumbersToWords(spoken),
	}
	if b.ExpectedNumerals == b.SpokenNumerals || b.ExpectedWords == b.SpokenWords {
		b.ExactMatch = true
		b.Percent = 100
		return b
	}

	b.NumeralPercent = jarowinkler.Percent(b.ExpectedNumerals, b.SpokenNumerals)
	b.WordPercent = jarowinkler.Percent(b.ExpectedWords, b.SpokenWords)
	b.Percent = max(b.NumeralPercent, b.WordPercent)

	b.ExpectedSoundex = soundex.Code(b.ExpectedNumerals)
	b.SpokenSoundex = soundex.Code(b.SpokenNumerals)
	if b.ExpectedSoundex != "" && b.ExpectedSoundex == b.SpokenSoundex {
		b.PhoneticMatch = true
		b.Percent = max(b.Percent, phoneticFloor)
	}

	b.Percent = clamp(b.Percent)
	return b
}

// Percent returns the similarity of spoken to expected in [0, 100] using
// the default substring numeral folding and a phonetic floor of 85.
func Percent(expected, spoken string) int {
	return Score(numeral.Folder{}, DefaultPhoneticFloor, expected, spoken).Percent
}

func clamp(p int) int {
	return min(max(p, 0), 100)
}

// SimilarityConfig holds configuration for the speech similarity calculator.
type SimilarityConfig struct {
	Threshold     int
	PhoneticFloor int
	FoldingMode   numeral.Mode
	// Metaphone adds Double Metaphone codes to the result details.
	Metaphone bool
}

// DefaultConfig returns a default configuration.
func DefaultConfig() SimilarityConfig {
	return SimilarityConfig{
		Threshold:     DefaultThreshold,
		PhoneticFloor: DefaultPhoneticFloor,
		FoldingMode:   numeral.SubstringMode,
	}
}

// Validate checks if the configuration is valid.
func (c SimilarityConfig) Validate() error {
	if c.Threshold < 0 || c.Threshold > 100 {
		return errors.New("threshold must be between 0 and 100")
	}
	if c.PhoneticFloor < 0 || c.PhoneticFloor > 100 {
		return errors.New("phonetic floor must be between 0 and 100")
	}
	if c.FoldingMode != numeral.SubstringMode && c.FoldingMode != numeral.WordBoundaryMode {
		return errors.New("unknown folding mode")
	}
	return nil
}

// Calculator scores utterances. It is read-only after construction and
// safe for concurrent use.
type Calculator struct {
	config     SimilarityConfig
	folder     numeral.Folder
	logger     ports.Logger
	normalizer ports.Normalizer
}

// NewCalculator creates a new speech similarity calculator.
func NewCalculator(config SimilarityConfig, logger ports.Logger, normalizer ports.Normalizer) (*Calculator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if normalizer == nil {
		return nil, errors.New("normalizer is required")
	}

	return &Calculator{
		config:     config,
		folder:     numeral.NewFolder(config.FoldingMode),
		logger:     logger,
		normalizer: normalizer,
	}, nil
}

// Config returns the calculator configuration.
func (c *Calculator) Config() SimilarityConfig {
	return c.config
}

// Breakdown normalizes both inputs and returns every intermediate value.
func (c *Calculator) Breakdown(expected, spoken string) Breakdown {
	return Score(c.folder, c.config.PhoneticFloor,
		c.normalizer.Normalize(expected), c.normalizer.Normalize(spoken))
}

// Compute scores spoken against expected.
func (c *Calculator) Compute(ctx context.Context, expected, spoken string) domain.Result {
	c.logger.Debug("Starting speech similarity computation",
		"expected", expected,
		"spoken", spoken,
	)

	details := make(map[string]interface{})

	select {
	case <-ctx.Done():
		c.logger.Error("Computation cancelled", "error", ctx.Err())
		details["error"] = "computation cancelled"
		return domain.Result{
			Name:      MetricName,
			Threshold: c.config.Threshold,
			Details:   details,
		}
	default:
	}

	b := c.Breakdown(expected, spoken)

	details["expected_numerals"] = b.ExpectedNumerals
	details["spoken_numerals"] = b.SpokenNumerals
	details["expected_words"] = b.ExpectedWords
	details["spoken_words"] = b.SpokenWords
	details["folding_mode"] = c.config.FoldingMode.String()
	if !b.ExactMatch {
		details["numeral_percent"] = b.NumeralPercent
		details["word_percent"] = b.WordPercent
		details["expected_soundex"] = b.ExpectedSoundex
		details["spoken_soundex"] = b.SpokenSoundex
	}
	if c.config.Metaphone {
		details["expected_metaphone"] = metaphone.Encode(b.ExpectedNumerals)
		details["spoken_metaphone"] = metaphone.Encode(b.SpokenNumerals)
	}

	passed := b.Percent > c.config.Threshold

	c.logger.Debug("Computed speech similarity",
		"percent", b.Percent,
		"passed", passed,
		"exact", b.ExactMatch,
		"phonetic", b.PhoneticMatch,
	)

	return domain.Result{
		Name:          MetricName,
		Percent:       b.Percent,
		Score:         float64(b.Percent) / 100,
		Passed:        passed,
		Threshold:     c.config.Threshold,
		ExactMatch:    b.ExactMatch,
		PhoneticMatch: b.PhoneticMatch,
		Details:       details,
	}
}
