package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/baditaflorin/go_speech_similarity/internal/adapters/normalizer"
	"gopkg.in/yaml.v3"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 10 * time.Second
	DefaultWriteTimeout   = 10 * time.Second
	DefaultMaxRequestSize = 1024 * 1024 // 1MB
	DefaultConcurrency    = 0           // 0 means fasthttp default
	DefaultMaxBatch       = 256
)

// Config is the server configuration. It can be loaded from YAML and any
// flag given on the command line overrides the file.
type Config struct {
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	MaxRequestSize int           `yaml:"max_request_size"`
	Concurrency    int           `yaml:"concurrency"`
	WarmUp         bool          `yaml:"warm_up"`
	LogFile        string        `yaml:"log_file"`

	Threshold     int      `yaml:"threshold"`
	PhoneticFloor int      `yaml:"phonetic_floor"`
	WordBoundary  bool     `yaml:"word_boundary"`
	Metaphone     bool     `yaml:"metaphone"`
	Normalizers   []string `yaml:"normalizers"`
	MaxBatch      int      `yaml:"max_batch"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Port:           DefaultPort,
		ReadTimeout:    DefaultReadTimeout,
		WriteTimeout:   DefaultWriteTimeout,
		MaxRequestSize: DefaultMaxRequestSize,
		Concurrency:    DefaultConcurrency,
		WarmUp:         true,
		Threshold:      80,
		PhoneticFloor:  85,
		MaxBatch:       DefaultMaxBatch,
	}
}

// Validate checks the configuration for values the server cannot use.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.MaxRequestSize <= 0 {
		return errors.New("max_request_size must be positive")
	}
	if c.MaxBatch <= 0 {
		return errors.New("max_batch must be positive")
	}
	for _, n := range c.Normalizers {
		if _, err := normalizer.ParseType(n); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile reads a YAML configuration on top of base.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// stringList is a repeatable flag.
type stringList []string

func (s *stringList) String() string { return fmt.Sprint([]string(*s)) }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// parseConfig builds the configuration from args. Values come from the
// defaults, then the -config file, then explicitly set flags.
func parseConfig(args []string) (Config, error) {
	def := DefaultConfig()
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	configPath := fs.String("config", "", "Path to a YAML configuration file")
	port := fs.Int("port", def.Port, "HTTP server port")
	readTimeout := fs.Duration("read-timeout", def.ReadTimeout, "HTTP read timeout")
	writeTimeout := fs.Duration("write-timeout", def.WriteTimeout, "HTTP write timeout")
	maxRequestSize := fs.Int("max-request-size", def.MaxRequestSize, "Maximum request size in bytes")
	concurrency := fs.Int("concurrency", def.Concurrency, "Maximum number of concurrent requests (0 = fasthttp default)")
	warmUp := fs.Bool("warm-up", def.WarmUp, "Perform system warm-up on startup")
	logFile := fs.String("log-file", def.LogFile, "Log file path (empty = stdout)")
	threshold := fs.Int("threshold", def.Threshold, "Percentage a score must exceed to pass")
	floor := fs.Int("phonetic-floor", def.PhoneticFloor, "Minimum score when Soundex codes agree")
	wordBoundary := fs.Bool("word-boundary", def.WordBoundary, "Fold only whole number words")
	metaphone := fs.Bool("metaphone", def.Metaphone, "Include Double Metaphone codes in result details")
	maxBatch := fs.Int("max-batch", def.MaxBatch, "Maximum pairs per /batch request")
	var normalizers stringList
	fs.Var(&normalizers, "normalizer", "Pre-normalizer to apply: punctuation or accent (repeatable)")

	if err := fs.Parse(args); err != nil {
		return def, err
	}

	cfg := def
	if *configPath != "" {
		var err error
		cfg, err = LoadFile(*configPath, def)
		if err != nil {
			return def, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = *port
		case "read-timeout":
			cfg.ReadTimeout = *readTimeout
		case "write-timeout":
			cfg.WriteTimeout = *writeTimeout
		case "max-request-size":
			cfg.MaxRequestSize = *maxRequestSize
		case "concurrency":
			cfg.Concurrency = *concurrency
		case "warm-up":
			cfg.WarmUp = *warmUp
		case "log-file":
			cfg.LogFile = *logFile
		case "threshold":
			cfg.Threshold = *threshold
		case "phonetic-floor":
			cfg.PhoneticFloor = *floor
		case "word-boundary":
			cfg.WordBoundary = *wordBoundary
		case "metaphone":
			cfg.Metaphone = *metaphone
		case "max-batch":
			cfg.MaxBatch = *maxBatch
		case "normalizer":
			cfg.Normalizers = normalizers
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
