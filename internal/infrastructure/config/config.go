// Package config loads Polaris configuration from the environment, with
// optional .env support for local development.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration.
type Config struct {
	Server   ServerConfig
	Analyzer AnalyzerConfig
	History  HistoryConfig
	LogLevel string
}

// ServerConfig configures the analyzer HTTP service.
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

// AnalyzerConfig configures the submission client.
type AnalyzerConfig struct {
	BaseURL string
	Timeout time.Duration
}

// HistoryConfig configures the in-memory submission archive.
type HistoryConfig struct {
	Capacity int
}

// Load reads configuration from environment variables. A .env file is
// loaded first when present; a missing file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Addr: getEnvWithDefault("POLARIS_ADDR", ":8000"),
			AllowedOrigins: splitAndTrim(getEnvWithDefault(
				"POLARIS_ALLOWED_ORIGINS",
				"http://localhost,http://localhost:3000")),
		},
		Analyzer: AnalyzerConfig{
			BaseURL: getEnvWithDefault("POLARIS_ANALYZER_URL", "http://127.0.0.1:8000"),
			Timeout: getDurationEnv("POLARIS_ANALYZER_TIMEOUT", 10*time.Second),
		},
		History: HistoryConfig{
			Capacity: getIntEnv("POLARIS_HISTORY_CAPACITY", 32),
		},
		LogLevel: getEnvWithDefault("POLARIS_LOG_LEVEL", "info"),
	}
}

func getEnvWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
