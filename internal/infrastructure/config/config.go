package config

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/remaimber-it/clozeit/internal/markdown"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	DBPath     string // SQLite file, ":memory:" for a throwaway database
	LogLevel   slog.Level
	CORSOrigin string

	// Card rendering
	Markdown markdown.Options
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		DBPath:          getenvDefault("DB_PATH", "clozeit.db"),
		LogLevel:        getLevelDefault("LOG_LEVEL", slog.LevelInfo),
		CORSOrigin:      getenvDefault("CORS_ORIGIN", "*"),
		Markdown: markdown.Options{
			GFM:       getBoolDefault("MARKDOWN_GFM", true),
			HardWraps: getBoolDefault("MARKDOWN_HARD_WRAPS", true),
		},
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := mustGetenv(k)
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getBoolDefault(k string, fallback bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid boolean: %v", k, v, err)
	}
	return b
}

func getLevelDefault(k string, fallback slog.Level) slog.Level {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	level, err := parseLevel(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid log level: %v", k, v, err)
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}
