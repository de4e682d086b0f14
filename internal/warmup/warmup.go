package warmup

import (
	"context"
	"runtime"
	"time"

	"github.com/baditaflorin/go_speech_similarity/internal/ports"
	"golang.org/x/sync/errgroup"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency: runtime.NumCPU(),
		Iterations:  200,
		Duration:    2 * time.Second,
		ForceGC:     true,
	}
}

// Pair is one expected/spoken sample.
type Pair struct {
	Expected string
	Spoken   string
}

// SamplePairs covers every scoring branch: numeral match, word match,
// phonetic floor, plain Jaro–Winkler and empty input.
var SamplePairs = []Pair{
	{"nine", "9"},
	{"100", "hundred"},
	{"Robert", "Rupert"},
	{"vocabulary", "vocabulery"},
	{"two", "to"},
	{"eight", "ate"},
	{"flashcard", "flash card"},
	{"", ""},
	{"pronunciation", ""},
}

// Stats summarises a warmup run.
type Stats struct {
	Computations int64
	Duration     time.Duration
}

// Manager handles system warmup operations
type Manager struct {
	logger      ports.Logger
	calculators []ports.SimilarityCalculator
	normalizers []ports.Normalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterCalculator adds a calculator to be warmed up
func (wm *Manager) RegisterCalculator(calc ports.SimilarityCalculator) {
	wm.calculators = append(wm.calculators, calc)
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// WarmUp runs the warmup process for all registered components. It stops
// early when ctx is done or the configured duration elapses.
func (wm *Manager) WarmUp(ctx context.Context) Stats {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.calculators)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	counts := make([]int64, wm.config.Concurrency)
	g, gctx := errgroup.WithContext(warmupCtx)
	g.SetLimit(wm.config.Concurrency)
	for i := 0; i < wm.config.Concurrency; i++ {
		g.Go(func() error {
			for j := 0; j < wm.config.Iterations; j++ {
				if gctx.Err() != nil {
					return nil
				}
				p := SamplePairs[(i+j)%len(SamplePairs)]
				for _, n := range wm.normalizers {
					_ = n.Normalize(p.Expected)
					_ = n.Normalize(p.Spoken)
				}
				for _, c := range wm.calculators {
					_ = c.Compute(gctx, p.Expected, p.Spoken)
					counts[i]++
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	var stats Stats
	for _, c := range counts {
		stats.Computations += c
	}
	stats.Duration = time.Since(startTime)

	wm.logger.Info("System warmup completed",
		"duration", stats.Duration,
		"computations", stats.Computations,
	)
	return stats
}
