package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Catalog CatalogConfig `yaml:"catalog"`
	Events  EventsConfig  `yaml:"events"`
	Scoring ScoringConfig `yaml:"scoring"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port              int `yaml:"port"`
	MetricsPort       int `yaml:"metrics_port"`
	RateLimit         int `yaml:"rate_limit_per_minute"`
	ShutdownTimeoutMs int `yaml:"shutdown_timeout_ms"`
}

// CatalogConfig selects where neighborhoods come from. DatabaseURL takes
// precedence over Path; with neither set the builtin catalog is used.
type CatalogConfig struct {
	Path        string `yaml:"path"`
	DatabaseURL string `yaml:"database_url"`
	SeedBuiltin bool   `yaml:"seed_builtin"`
}

type EventsConfig struct {
	NATSURL string `yaml:"nats_url"`
}

type ScoringConfig struct {
	TopDriverCount int `yaml:"top_driver_count"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeoutMs) * time.Millisecond
}

// SlogLevel maps Logging.Level to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:              8700,
			MetricsPort:       8701,
			RateLimit:         120,
			ShutdownTimeoutMs: 10000,
		},
		Scoring: ScoringConfig{
			TopDriverCount: 3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Server.MetricsPort <= 0 || c.Server.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port %d", c.Server.MetricsPort)
	}
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("rate_limit_per_minute must be positive, got %d", c.Server.RateLimit)
	}
	if c.Scoring.TopDriverCount < 1 || c.Scoring.TopDriverCount > 5 {
		return fmt.Errorf("top_driver_count must be 1-5, got %d", c.Scoring.TopDriverCount)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("RENTWISE_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("RENTWISE_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("RENTWISE_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimit = n
		}
	}
	if v := os.Getenv("RENTWISE_CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("RENTWISE_DATABASE_URL"); v != "" {
		cfg.Catalog.DatabaseURL = v
	}
	if v := os.Getenv("RENTWISE_SEED_BUILTIN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Catalog.SeedBuiltin = b
		}
	}
	if v := os.Getenv("RENTWISE_NATS_URL"); v != "" {
		cfg.Events.NATSURL = v
	}
	if v := os.Getenv("RENTWISE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("RENTWISE_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
