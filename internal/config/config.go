package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Config holds all client settings, populated from environment variables.
type Config struct {
	// Knowledge engine access.
	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration

	// History persistence. RedisAddr, when set, selects the Redis store;
	// otherwise the list lives in HistoryFile.
	HistoryFile string
	RedisAddr   string

	// MetricsAddr enables the debug HTTP listener when non-empty. The
	// default configuration opens no network listener at all.
	MetricsAddr string

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	timeoutStr := envOrDefault("GEMINI_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, errors.New("invalid GEMINI_TIMEOUT")
	}

	cfg := &Config{
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   envOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiTimeout: timeout,
		HistoryFile:   envOrDefault("HISTORY_FILE", defaultHistoryFile()),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		MetricsAddr:   os.Getenv("METRICS_ADDR"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "text"),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is required")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "history.json"
	}
	return filepath.Join(home, ".hackathon-scout", "history.json")
}
