package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"surveyinsights/internal/pkg/retry"
)

// Config holds the application configuration
type Config struct {
	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis memo cache, disabled when REDIS_URI is empty
	RedisURI     string        `env:"REDIS_URI"`
	RedisTTL     time.Duration `env:"REDIS_TTL" envDefault:"24h"`
	RedisConnect retry.Config  `envPrefix:"REDIS_CONNECT_"`

	// In-process memo size (number of reports)
	MemoSize int `env:"MEMO_SIZE" envDefault:"128"`

	// Analyzer tables and keyword matching
	LexiconFile string `env:"LEXICON_FILE"`
	Matcher     string `env:"MATCHER" envDefault:"substring"`
}

// Load reads the optional env files, then parses and validates the environment.
// Missing env files are not an error.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// RedisEnabled reports whether a Redis address is configured
func (c *Config) RedisEnabled() bool {
	return c.RedisAddress() != ""
}

// RedisAddress returns the host:port form of REDIS_URI
func (c *Config) RedisAddress() string {
	return strings.TrimPrefix(strings.TrimSpace(c.RedisURI), "redis://")
}

func validateConfig(cfg *Config) error {
	var problems []string

	if cfg.MemoSize < 0 || cfg.MemoSize > 100000 {
		problems = append(problems, fmt.Sprintf("MEMO_SIZE must be between 0 and 100000, got %d", cfg.MemoSize))
	}

	if cfg.RedisTTL < 0 {
		problems = append(problems, fmt.Sprintf("REDIS_TTL must not be negative, got %s", cfg.RedisTTL))
	}

	if cfg.RedisConnect.Attempts < 1 || cfg.RedisConnect.Attempts > 20 {
		problems = append(problems, fmt.Sprintf("REDIS_CONNECT_ATTEMPTS must be between 1 and 20, got %d", cfg.RedisConnect.Attempts))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Matcher)) {
	case "", "substring", "word":
	default:
		problems = append(problems, fmt.Sprintf("MATCHER must be substring or word, got %q", cfg.Matcher))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}
