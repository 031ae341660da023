package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MikeSquared-Agency/RentWise/internal/config"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Logging: config.LoggingConfig{Level: "warn", Format: "json"}}
	logger := newLogger(&buf, cfg)

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("expected JSON record, got %q", out)
	}

	buf.Reset()
	cfg.Logging.Format = "text"
	newLogger(&buf, cfg).Warn("plain")
	if !strings.Contains(buf.String(), "msg=plain") {
		t.Errorf("expected text record, got %q", buf.String())
	}
}

func TestLoadCatalogBuiltin(t *testing.T) {
	cat, err := loadCatalog(context.Background(), &config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if cat.Len() != 3 {
		t.Errorf("expected builtin catalog, got %d entries", cat.Len())
	}
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := []byte("neighborhoods:\n  - name: Solo\n    objective: {safety: 50}\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{Catalog: config.CatalogConfig{Path: path}}
	cat, err := loadCatalog(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if cat.Names()[0] != "Solo" {
		t.Errorf("names = %v", cat.Names())
	}
}
