package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/remaimber-it/clozeit/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("DB_PATH", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ORIGIN", "")
	t.Setenv("MARKDOWN_GFM", "")
	t.Setenv("MARKDOWN_HARD_WRAPS", "")

	cfg := config.Load()

	if cfg.ServerAddress != ":9090" {
		t.Errorf("expected address %q, got %q", ":9090", cfg.ServerAddress)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("expected 5s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.DBPath != "clozeit.db" {
		t.Errorf("expected default DB path, got %q", cfg.DBPath)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
	if cfg.CORSOrigin != "*" {
		t.Errorf("expected wildcard CORS origin, got %q", cfg.CORSOrigin)
	}
	if !cfg.Markdown.GFM || !cfg.Markdown.HardWraps {
		t.Errorf("expected GFM and hard wraps on by default, got %+v", cfg.Markdown)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":8080")
	t.Setenv("SHUTDOWN_TIMEOUT", "1m")
	t.Setenv("DB_PATH", ":memory:")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("MARKDOWN_GFM", "false")
	t.Setenv("MARKDOWN_HARD_WRAPS", "0")

	cfg := config.Load()

	if cfg.DBPath != ":memory:" {
		t.Errorf("expected :memory:, got %q", cfg.DBPath)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
	if cfg.Markdown.GFM || cfg.Markdown.HardWraps {
		t.Errorf("expected markdown features off, got %+v", cfg.Markdown)
	}
}
