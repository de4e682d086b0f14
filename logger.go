// logger.go
// Package speechsimilarity provides shared utilities for the go_speech_similarity package.
package speechsimilarity

import (
	"github.com/baditaflorin/go_speech_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_speech_similarity/internal/ports"
)

// createDefaultLogger creates and returns a default logger instance.
func createDefaultLogger() (ports.Logger, error) {
	return logger.NewStdLogger()
}

// newNopLogger returns a logger that discards everything.
func newNopLogger() ports.Logger {
	return logger.NewNop()
}
