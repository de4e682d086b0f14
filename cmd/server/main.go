package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/baditaflorin/go_speech_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_speech_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_speech_similarity/internal/ports"
	"github.com/baditaflorin/go_speech_similarity/pkg/speech"
	"github.com/valyala/fasthttp"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	log, err := createLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting speech similarity HTTP server",
		"port", cfg.Port,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"concurrency", cfg.Concurrency,
		"threshold", cfg.Threshold,
		"word_boundary", cfg.WordBoundary,
	)

	scorer, err := newScorer(cfg, log)
	if err != nil {
		log.Error("Failed to initialize speech similarity", "error", err)
		os.Exit(1)
	}
	log.Info("Speech similarity initialized successfully",
		"warm_up", cfg.WarmUp,
		"cpus", runtime.NumCPU(),
	)

	srv := NewServer(scorer, log, cfg.MaxBatch)

	server := &fasthttp.Server{
		Handler:               srv.Handle,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		MaxRequestBodySize:    cfg.MaxRequestSize,
		Concurrency:           cfg.Concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
		Logger:                nil, // we'll handle logging ourselves
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			log.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info("Server listening", "address", addr)
	if err := server.ListenAndServe(addr); err != nil {
		log.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	log.Info("Server stopped")
}

// newScorer builds the scorer described by cfg.
func newScorer(cfg Config, log ports.Logger) (*speech.SpeechSimilarity, error) {
	opts := []speech.SpeechSimilarityOption{
		speech.WithPortsLogger(log),
		speech.WithThreshold(cfg.Threshold),
		speech.WithPhoneticFloor(cfg.PhoneticFloor),
		speech.WithWarmUp(cfg.WarmUp),
	}
	if cfg.WordBoundary {
		opts = append(opts, speech.WithWordBoundaryFolding())
	}
	if cfg.Metaphone {
		opts = append(opts, speech.WithMetaphoneDetails())
	}

	factory := normalizer.NewNormalizerFactory()
	for _, name := range cfg.Normalizers {
		t, err := normalizer.ParseType(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, speech.WithNormalizer(factory.CreateNormalizer(t)))
	}

	return speech.New(opts...)
}

// createLogger creates a JSON logger writing to logFile, or stdout when
// logFile is empty.
func createLogger(logFile string) (ports.Logger, error) {
	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	log, err := logger.NewJSONLogger(output)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}
