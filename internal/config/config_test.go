package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envVars = []string{
	"RENTWISE_PORT", "RENTWISE_METRICS_PORT", "RENTWISE_RATE_LIMIT",
	"RENTWISE_CATALOG_PATH", "RENTWISE_DATABASE_URL", "RENTWISE_SEED_BUILTIN",
	"RENTWISE_NATS_URL", "RENTWISE_LOG_LEVEL", "RENTWISE_LOG_FORMAT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.RateLimit != 120 {
		t.Errorf("expected rate limit 120, got %d", cfg.Server.RateLimit)
	}
	if cfg.Catalog.Path != "" || cfg.Catalog.DatabaseURL != "" {
		t.Errorf("expected builtin catalog by default, got %+v", cfg.Catalog)
	}
	if cfg.Events.NATSURL != "" {
		t.Errorf("expected events disabled, got %q", cfg.Events.NATSURL)
	}
	if cfg.Scoring.TopDriverCount != 3 {
		t.Errorf("expected 3 top drivers, got %d", cfg.Scoring.TopDriverCount)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}
	if cfg.ShutdownTimeout() != 10*time.Second {
		t.Errorf("expected ShutdownTimeout 10s, got %v", cfg.ShutdownTimeout())
	}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.SlogLevel())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RENTWISE_PORT", "9000")
	t.Setenv("RENTWISE_METRICS_PORT", "9001")
	t.Setenv("RENTWISE_RATE_LIMIT", "30")
	t.Setenv("RENTWISE_CATALOG_PATH", "/etc/rentwise/catalog.yaml")
	t.Setenv("RENTWISE_DATABASE_URL", "postgres://localhost/rentwise_test")
	t.Setenv("RENTWISE_SEED_BUILTIN", "true")
	t.Setenv("RENTWISE_NATS_URL", "nats://nats:4222")
	t.Setenv("RENTWISE_LOG_LEVEL", "debug")
	t.Setenv("RENTWISE_LOG_FORMAT", "text")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9001 {
		t.Errorf("expected metrics port 9001, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.RateLimit != 30 {
		t.Errorf("expected rate limit 30, got %d", cfg.Server.RateLimit)
	}
	if cfg.Catalog.Path != "/etc/rentwise/catalog.yaml" {
		t.Errorf("expected catalog path, got '%s'", cfg.Catalog.Path)
	}
	if cfg.Catalog.DatabaseURL != "postgres://localhost/rentwise_test" {
		t.Errorf("expected database URL, got '%s'", cfg.Catalog.DatabaseURL)
	}
	if !cfg.Catalog.SeedBuiltin {
		t.Error("expected seed_builtin enabled")
	}
	if cfg.Events.NATSURL != "nats://nats:4222" {
		t.Errorf("expected nats URL, got '%s'", cfg.Events.NATSURL)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.SlogLevel())
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected text format, got '%s'", cfg.Logging.Format)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "rentwise.yaml")
	data := []byte(`
server:
  port: 8080
catalog:
  path: ./catalog.yaml
scoring:
  top_driver_count: 2
logging:
  level: warn
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected default metrics port kept, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Catalog.Path != "./catalog.yaml" {
		t.Errorf("expected catalog path, got '%s'", cfg.Catalog.Path)
	}
	if cfg.Scoring.TopDriverCount != 2 {
		t.Errorf("expected 2 top drivers, got %d", cfg.Scoring.TopDriverCount)
	}
	if cfg.SlogLevel() != slog.LevelWarn {
		t.Errorf("expected warn level, got %v", cfg.SlogLevel())
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("server: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}

	t.Setenv("RENTWISE_RATE_LIMIT", "0")
	if _, err := Load(""); err == nil {
		t.Error("expected validation error for zero rate limit")
	}
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	cfg.Scoring.TopDriverCount = 6
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for driver count 6")
	}
	cfg.Scoring.TopDriverCount = 3
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for xml log format")
	}
}
