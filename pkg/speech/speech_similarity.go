package speech

import (
	"context"

	"github.com/baditaflorin/go_speech_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_speech_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_speech_similarity/internal/core/domain"
	"github.com/baditaflorin/go_speech_similarity/internal/core/jarowinkler"
	"github.com/baditaflorin/go_speech_similarity/internal/core/metaphone"
	"github.com/baditaflorin/go_speech_similarity/internal/core/numeral"
	"github.com/baditaflorin/go_speech_similarity/internal/core/soundex"
	speechcore "github.com/baditaflorin/go_speech_similarity/internal/core/speech"
	"github.com/baditaflorin/go_speech_similarity/internal/ports"
	"github.com/baditaflorin/go_speech_similarity/internal/warmup"
	"github.com/baditaflorin/l"
)

// Scoring defaults.
const (
	DefaultThreshold     = speechcore.DefaultThreshold
	DefaultPhoneticFloor = speechcore.DefaultPhoneticFloor
)

// Result is the outcome of a scoring run.
type Result = domain.Result

// Normalizer transforms text before numeral folding.
type Normalizer = ports.Normalizer

// SpeechSimilarity scores spoken utterances against expected text.
type SpeechSimilarity struct {
	calculator *speechcore.Calculator
	logger     ports.Logger
	normalizer ports.Normalizer
	warmed     bool
}

// SpeechSimilarityOption defines a functional option for configuring SpeechSimilarity.
type SpeechSimilarityOption func(*speechSimilarityConfig)

type speechSimilarityConfig struct {
	Threshold     int
	PhoneticFloor int
	FoldingMode   numeral.Mode
	Metaphone     bool
	Logger        ports.Logger
	Normalizers   []ports.Normalizer
	WarmUp        bool
	WarmUpConfig  warmup.WarmupConfig
}

// WithThreshold sets the percentage a score must exceed to pass.
func WithThreshold(th int) SpeechSimilarityOption {
	return func(cfg *speechSimilarityConfig) {
		cfg.Threshold = th
	}
}

// WithPhoneticFloor sets the minimum score granted when Soundex codes agree.
func WithPhoneticFloor(floor int) SpeechSimilarityOption {
	return func(cfg *speechSimilarityConfig) {
		cfg.PhoneticFloor = floor
	}
}

// WithWordBoundaryFolding only folds whole number words, so "tenant" is
// left alone.
func WithWordBoundaryFolding() SpeechSimilarityOption {
	return func(cfg *speechSimilarityConfig) {
		cfg.FoldingMode = numeral.WordBoundaryMode
	}
}

// WithMetaphoneDetails adds Double Metaphone codes to result details.
func WithMetaphoneDetails() SpeechSimilarityOption {
	return func(cfg *speechSimilarityConfig) {
		cfg.Metaphone = true
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) SpeechSimilarityOption {
	return func(cfg *speechSimilarityConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithPortsLogger sets a logger that already implements the internal
// logging interface.
func WithPortsLogger(lg ports.Logger) SpeechSimilarityOption {
	return func(cfg *speechSimilarityConfig) {
		cfg.Logger = lg
	}
}

// WithNormalizer appends a custom normalizer. Normalizers run in the order
// they are added.
func WithNormalizer(n Normalizer) SpeechSimilarityOption {
	return func(cfg *speechSimilarityConfig) {
		cfg.Normalizers = append(cfg.Normalizers, n)
	}
}

// WithPunctuationFolding strips punctuation such as a trailing "." added by
// a transcriber.
func WithPunctuationFolding() SpeechSimilarityOption {
	return func(cfg *speechSimilarityConfig) {
		cfg.Normalizers = append(cfg.Normalizers,
			normalizer.NewNormalizerFactory().CreateNormalizer(normalizer.PunctuationNormalizerType))
	}
}

// WithAccentFolding strips diacritics so "café" matches "cafe".
func WithAccentFolding() SpeechSimilarityOption {
	return func(cfg *speechSimilarityConfig) {
		cfg.Normalizers = append(cfg.Normalizers,
			normalizer.NewNormalizerFactory().CreateNormalizer(normalizer.AccentNormalizerType))
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) SpeechSimilarityOption {
	return func(cfg *speechSimilarityConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config warmup.WarmupConfig) SpeechSimilarityOption {
	return func(cfg *speechSimilarityConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new SpeechSimilarity instance.
func New(opts ...SpeechSimilarityOption) (*SpeechSimilarity, error) {
	defaultConfig := speechcore.DefaultConfig()

	config := &speechSimilarityConfig{
		Threshold:     defaultConfig.Threshold,
		PhoneticFloor: defaultConfig.PhoneticFloor,
		FoldingMode:   defaultConfig.FoldingMode,
		WarmUpConfig:  warmup.DefaultWarmupConfig(),
	}

	for _, opt := range opts {
		opt(config)
	}

	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	var norm ports.Normalizer
	switch len(config.Normalizers) {
	case 0:
		norm = normalizer.NewPassthroughNormalizer()
	case 1:
		norm = config.Normalizers[0]
	default:
		norm = normalizer.Chain(config.Normalizers)
	}

	coreConfig := speechcore.SimilarityConfig{
		Threshold:     config.Threshold,
		PhoneticFloor: config.PhoneticFloor,
		FoldingMode:   config.FoldingMode,
		Metaphone:     config.Metaphone,
	}
	calculator, err := speechcore.NewCalculator(coreConfig, config.Logger, norm)
	if err != nil {
		return nil, err
	}

	ss := &SpeechSimilarity{
		calculator: calculator,
		logger:     config.Logger,
		normalizer: norm,
	}

	if config.WarmUp {
		ss.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return ss, nil
}

// Compute scores spoken against expected.
func (ss *SpeechSimilarity) Compute(ctx context.Context, expected, spoken string) Result {
	return ss.calculator.Compute(ctx, expected, spoken)
}

// Percent returns only the score in [0, 100].
func (ss *SpeechSimilarity) Percent(expected, spoken string) int {
	return ss.calculator.Breakdown(expected, spoken).Percent
}

// Threshold returns the configured pass threshold.
func (ss *SpeechSimilarity) Threshold() int {
	return ss.calculator.Config().Threshold
}

// Close releases the logger.
func (ss *SpeechSimilarity) Close() error {
	return ss.logger.Close()
}

// Diagnosis lists every intermediate value behind a score.
type Diagnosis struct {
	Expected           string          `json:"expected"`
	Spoken             string          `json:"spoken"`
	ExpectedNumerals   string          `json:"expected_numerals"`
	SpokenNumerals     string          `json:"spoken_numerals"`
	ExpectedWords      string          `json:"expected_words"`
	SpokenWords        string          `json:"spoken_words"`
	NumeralJaroWinkler float64         `json:"numeral_jaro_winkler"`
	WordJaroWinkler    float64         `json:"word_jaro_winkler"`
	ExpectedSoundex    string          `json:"expected_soundex"`
	SpokenSoundex      string          `json:"spoken_soundex"`
	ExpectedMetaphone  metaphone.Codes `json:"expected_metaphone"`
	SpokenMetaphone    metaphone.Codes `json:"spoken_metaphone"`
	MetaphoneOverlap   bool            `json:"metaphone_overlap"`
	ExactMatch         bool            `json:"exact_match"`
	PhoneticMatch      bool            `json:"phonetic_match"`
	Percent            int             `json:"percent"`
	Passed             bool            `json:"passed"`
}

// Diagnose returns the full breakdown of how spoken scores against
// expected. Unlike Compute it always reports Jaro–Winkler and Soundex
// values, even for exact matches.
func (ss *SpeechSimilarity) Diagnose(expected, spoken string) Diagnosis {
	b := ss.calculator.Breakdown(expected, spoken)
	em := metaphone.Encode(b.ExpectedNumerals)
	sm := metaphone.Encode(b.SpokenNumerals)
	return Diagnosis{
		Expected:           expected,
		Spoken:             spoken,
		ExpectedNumerals:   b.ExpectedNumerals,
		SpokenNumerals:     b.SpokenNumerals,
		ExpectedWords:      b.ExpectedWords,
		SpokenWords:        b.SpokenWords,
		NumeralJaroWinkler: jarowinkler.Similarity(b.ExpectedNumerals, b.SpokenNumerals),
		WordJaroWinkler:    jarowinkler.Similarity(b.ExpectedWords, b.SpokenWords),
		ExpectedSoundex:    soundex.Code(b.ExpectedNumerals),
		SpokenSoundex:      soundex.Code(b.SpokenNumerals),
		ExpectedMetaphone:  em,
		SpokenMetaphone:    sm,
		MetaphoneOverlap:   metaphone.Overlap(em, sm),
		ExactMatch:         b.ExactMatch,
		PhoneticMatch:      b.PhoneticMatch,
		Percent:            b.Percent,
		Passed:             b.Percent > ss.Threshold(),
	}
}

// WarmUp performs system warm-up to optimize performance.
func (ss *SpeechSimilarity) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	if ss.warmed {
		ss.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(ss.logger, config)
	warmupMgr.RegisterCalculator(ss.calculator)
	warmupMgr.RegisterNormalizer(ss.normalizer)

	warmupMgr.WarmUp(ctx)
	ss.warmed = true
}
