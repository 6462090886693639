package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	CatalogSource string `env:"CATALOG_SOURCE" envDefault:"file" validate:"oneof=file postgres"`
	CatalogPath   string `env:"CATALOG_PATH" envDefault:"catalog.yaml" validate:"required_if=CatalogSource file"`
	DatabaseURL   string `env:"DATABASE_URL" validate:"required_if=CatalogSource postgres"`

	CacheProvider         string        `env:"CACHE_PROVIDER" envDefault:"memory" validate:"omitempty,oneof=memory redis"`
	RedisConnectionString string        `env:"REDIS_CONNECTION_STRING" envDefault:"redis://localhost:6379/0" validate:"required_if=CacheProvider redis"`
	CatalogCacheTTL       time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m" validate:"gt=0"`

	QuoteToleranceCents int `env:"QUOTE_TOLERANCE_CENTS" envDefault:"1" validate:"gte=0"`

	BaseURL string `env:"BASE_URL" validate:"omitempty,url"`

	SentryDSN              string  `env:"SENTRY_DSN"`
	SentryEnvironment      string  `env:"SENTRY_ENVIRONMENT" envDefault:"development"`
	SentryTracesSampleRate float64 `env:"SENTRY_TRACES_SAMPLE_RATE" envDefault:"0" validate:"gte=0,lte=1"`

	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text" validate:"omitempty,oneof=text json"`
	Port      string     `env:"PORT" envDefault:"8080"`
}

var configValidator = validator.New()

func Load() (*Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if err := configValidator.Struct(c); err != nil {
		return err
	}

	if c.CatalogSource == "postgres" {
		parsed, err := url.Parse(strings.TrimSpace(c.DatabaseURL))
		if err != nil || (parsed.Scheme != "postgres" && parsed.Scheme != "postgresql") {
			return fmt.Errorf("DATABASE_URL must be a postgres:// URL")
		}
	}

	if baseURL := strings.TrimSpace(c.BaseURL); baseURL != "" {
		parsed, err := url.Parse(baseURL)
		if err != nil || parsed.Hostname() == "" {
			return fmt.Errorf("BASE_URL must be a valid absolute URL")
		}
		if !isLocalHost(parsed.Hostname()) && !strings.EqualFold(parsed.Scheme, "https") {
			return fmt.Errorf("BASE_URL must use https outside local development")
		}
	}

	if dsn := strings.TrimSpace(c.SentryDSN); dsn != "" {
		parsed, err := url.Parse(dsn)
		if err != nil || parsed.Hostname() == "" {
			return fmt.Errorf("SENTRY_DSN must be a valid URL")
		}
	}

	return nil
}

// QuoteTolerance is the largest client/server total difference accepted, in dollars.
func (c *Config) QuoteTolerance() float64 {
	return float64(c.QuoteToleranceCents) / 100
}

func isLocalHost(host string) bool {
	switch strings.ToLower(strings.TrimSpace(host)) {
	case "localhost", "127.0.0.1", "::1":
		return true
	default:
		return false
	}
}
