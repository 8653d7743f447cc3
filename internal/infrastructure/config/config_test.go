package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8000", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost", "http://localhost:3000"},
		cfg.Server.AllowedOrigins)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.Analyzer.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Analyzer.Timeout)
	assert.Equal(t, 32, cfg.History.Capacity)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("POLARIS_ADDR", ":9001")
	t.Setenv("POLARIS_ANALYZER_TIMEOUT", "2s")
	t.Setenv("POLARIS_HISTORY_CAPACITY", "5")
	t.Setenv("POLARIS_ALLOWED_ORIGINS", "https://polaris.dev, https://staging.polaris.dev")

	cfg := Load()
	assert.Equal(t, ":9001", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Analyzer.Timeout)
	assert.Equal(t, 5, cfg.History.Capacity)
	assert.Equal(t, []string{"https://polaris.dev", "https://staging.polaris.dev"},
		cfg.Server.AllowedOrigins)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("POLARIS_HISTORY_CAPACITY", "lots")
	t.Setenv("POLARIS_ANALYZER_TIMEOUT", "soon")

	cfg := Load()
	assert.Equal(t, 32, cfg.History.Capacity)
	assert.Equal(t, 10*time.Second, cfg.Analyzer.Timeout)
}
