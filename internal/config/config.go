// Package config loads rpsterm settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/samdwyer/rpsterm/internal/session"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Config holds game configuration options.
type Config struct {
	// Store selects the score persistence backend.
	Store       string `env:"RPS_STORE" envDefault:"sqlite"`
	SQLitePath  string `env:"RPS_SQLITE_PATH" envDefault:"rpsterm.db"`
	RedisAddr   string `env:"RPS_REDIS_ADDR"`
	RedisPass   string `env:"RPS_REDIS_PASSWORD"`
	RedisDB     int    `env:"RPS_REDIS_DB" envDefault:"0"`
	RedisPrefix string `env:"RPS_REDIS_PREFIX" envDefault:"rpsterm:"`
	ScoreKey    string `env:"RPS_SCORE_KEY" envDefault:"rpsScore"`

	// Seed for random number generation. A seed of 0 means a random seed
	// will be generated.
	Seed int64 `env:"RPS_SEED" envDefault:"0"`

	AutoPlayInterval time.Duration `env:"RPS_AUTOPLAY_INTERVAL" envDefault:"1500ms"`
	RevealPlayer     time.Duration `env:"RPS_REVEAL_PLAYER" envDefault:"300ms"`
	RevealComputer   time.Duration `env:"RPS_REVEAL_COMPUTER" envDefault:"800ms"`
	RevealOutcome    time.Duration `env:"RPS_REVEAL_OUTCOME" envDefault:"1300ms"`

	LogLevel string `env:"RPS_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"RPS_LOG_FILE"`
	LogJSON  bool   `env:"RPS_LOG_JSON" envDefault:"false"`

	// MetricsAddr enables the Prometheus endpoint when set, e.g. ":9464".
	MetricsAddr string `env:"RPS_METRICS_ADDR"`

	// OTelEndpoint enables OTLP/HTTP trace export when set.
	OTelEndpoint string `env:"RPS_OTEL_ENDPOINT"`
	OTelHeaders  string `env:"RPS_OTEL_HEADERS"`
}

// Load reads an optional .env file and parses the environment.
func Load() (Config, error) {
	// Not fatal - env vars might be set directly
	_ = godotenv.Load()

	return Parse()
}

// Parse reads the environment into a Config and validates it.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings for consistency.
func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreSQLite, StoreRedis:
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}
	if c.AutoPlayInterval <= 0 {
		return errors.New("auto-play interval must be positive")
	}
	if c.RevealPlayer < 0 || c.RevealComputer <= c.RevealPlayer || c.RevealOutcome <= c.RevealComputer {
		return errors.New("reveal offsets must be strictly increasing")
	}
	return nil
}

// Timing returns the reveal offsets and auto-play cadence.
func (c Config) Timing() session.Timing {
	return session.Timing{
		RevealPlayer:     c.RevealPlayer,
		RevealComputer:   c.RevealComputer,
		RevealOutcome:    c.RevealOutcome,
		AutoPlayInterval: c.AutoPlayInterval,
	}
}
