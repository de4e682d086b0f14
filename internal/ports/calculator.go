package ports

import (
	"context"

	"github.com/baditaflorin/go_speech_similarity/internal/core/domain"
)

// SimilarityCalculator defines the interface for scoring a spoken utterance
// against the expected text.
type SimilarityCalculator interface {
	Compute(ctx context.Context, expected, spoken string) domain.Result
}
