package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "CHAT_DEBUG", "OPENROUTER_API_KEY", "LLM_API_KEY",
		"LLM_MODEL", "LLM_TEMPERATURE", "LLM_MAX_OUTPUT_TOKENS", "PROVIDER_TIMEOUT",
		"PROVIDER_RPS", "LLM_PROVIDER",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "openrouter", cfg.Provider.Name)
	assert.Equal(t, "openai/gpt-4o-mini", cfg.Provider.Model)
	assert.Equal(t, 0.7, cfg.Provider.Temperature)
	assert.Equal(t, 1000, cfg.Provider.MaxOutputTokens)
	assert.Equal(t, 30*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, 0.0, cfg.Provider.RequestsPerSecond)
	assert.False(t, cfg.Provider.Configured(), "missing key must not be treated as configured")
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "  sk-test  ")
	t.Setenv("LLM_MODEL", "anthropic/claude-3-haiku")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("LLM_MAX_OUTPUT_TOKENS", "256")
	t.Setenv("PROVIDER_TIMEOUT", "5")
	t.Setenv("CHAT_DEBUG", "true")
	t.Setenv("LLM_PROVIDER", "OpenAI")

	cfg := Load()

	assert.Equal(t, "sk-test", cfg.Provider.APIKey)
	assert.True(t, cfg.Provider.Configured())
	assert.Equal(t, "anthropic/claude-3-haiku", cfg.Provider.Model)
	assert.Equal(t, 0.2, cfg.Provider.Temperature)
	assert.Equal(t, 256, cfg.Provider.MaxOutputTokens)
	assert.Equal(t, 5*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, "openai", cfg.Provider.Name)
	assert.True(t, cfg.Debug)
}

func TestLoad_FallbackKeyAndBadValues(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("LLM_API_KEY", "fallback")
	t.Setenv("LLM_MAX_OUTPUT_TOKENS", "lots")
	t.Setenv("PROVIDER_TIMEOUT", "1m30s")

	cfg := Load()

	assert.Equal(t, "fallback", cfg.Provider.APIKey)
	assert.Equal(t, 1000, cfg.Provider.MaxOutputTokens)
	assert.Equal(t, 90*time.Second, cfg.Provider.Timeout)
}
