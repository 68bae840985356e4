package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/mazenLavey/rock-paper-scissors-game/internal/game"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/logger"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// Round
	KeyBytes      int           `env:"RPS_KEY_BYTES" envDefault:"16"`
	HelpPolicy    string        `env:"RPS_HELP_POLICY" envDefault:"terminate"`
	ChoiceTimeout time.Duration `env:"RPS_CHOICE_TIMEOUT" envDefault:"0s"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"LOG_JSON" envDefault:"false"`

	// Round archive, optional
	DatabaseURL string `env:"DATABASE_URL"`

	// Verifier daemon
	AppPort       string        `env:"APP_PORT" envDefault:"8080"`
	Version       string        `env:"APP_VERSION" envDefault:"dev"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	APIRateLimit  int           `env:"API_RATE_LIMIT" envDefault:"30"`
	APIRateWindow time.Duration `env:"API_RATE_WINDOW" envDefault:"1m"`
	AllowedOrigin string        `env:"ALLOWED_ORIGIN"`
	FeedInterval  time.Duration `env:"FEED_POLL_INTERVAL" envDefault:"2s"`

	helpPolicy game.HelpPolicy
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is Load for entry points: any error is fatal.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}
	return cfg
}

func (c *Config) validate() error {
	if c.KeyBytes <= 0 {
		return errors.New("RPS_KEY_BYTES must be greater than zero")
	}
	if c.ChoiceTimeout < 0 {
		return errors.New("RPS_CHOICE_TIMEOUT must not be negative")
	}
	p, err := game.ParseHelpPolicy(c.HelpPolicy)
	if err != nil {
		return fmt.Errorf("RPS_HELP_POLICY: %w", err)
	}
	c.helpPolicy = p

	// лимиты API
	if c.APIRateLimit <= 0 {
		return errors.New("API_RATE_LIMIT must be greater than zero")
	}
	if c.APIRateWindow <= 0 {
		return errors.New("API_RATE_WINDOW must be greater than zero")
	}
	if c.FeedInterval <= 0 {
		return errors.New("FEED_POLL_INTERVAL must be greater than zero")
	}
	return nil
}

// Help returns the parsed help policy.
func (c *Config) Help() game.HelpPolicy {
	return c.helpPolicy
}

// ArchiveEnabled reports whether resolved rounds should be stored.
func (c *Config) ArchiveEnabled() bool {
	return c.DatabaseURL != ""
}
