// Package config loads SDK credentials and tuning from the process
// environment for applications that embed the client. The SDK itself only
// takes constructor inputs; this package is the conventional way to source
// them.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"

	centavo "github.com/centavopay/centavo-go"
)

type Config struct {
	APIKey      string        `koanf:"api_key" validate:"required"`
	MerchantID  string        `koanf:"merchant_id" validate:"required"`
	BaseURL     string        `koanf:"base_url"`
	HTTPTimeout time.Duration `koanf:"http_timeout"`
	Logger      LoggerConfig  `koanf:"logger"`
}

type LoggerConfig struct {
	Level string `koanf:"level"`
}

// NewLogger builds a text slog.Logger at the configured level.
func (c LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// Load reads CENTAVO_-prefixed environment variables (a local .env file is
// honored via godotenv) and validates the result. Nested keys use double
// underscores: CENTAVO_LOGGER__LEVEL=debug.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider("CENTAVO_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CENTAVO_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewClient constructs a gateway client from the loaded configuration.
func (c *Config) NewClient(logger *slog.Logger) (*centavo.Client, error) {
	opts := []centavo.Option{}
	if c.BaseURL != "" {
		opts = append(opts, centavo.WithBaseURL(c.BaseURL))
	}
	if c.HTTPTimeout > 0 {
		opts = append(opts, centavo.WithTimeout(c.HTTPTimeout))
	}
	if logger != nil {
		opts = append(opts, centavo.WithLogger(logger))
	}
	return centavo.NewClient(c.APIKey, c.MerchantID, opts...)
}
