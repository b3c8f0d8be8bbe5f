package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, 20*time.Second, cfg.Ai.OracleTimeout)
	assert.Equal(t, "memory", cfg.Diagnosis.SessionStore)
	assert.Equal(t, "memory", cfg.Diagnosis.Index)
	assert.Equal(t, "local", cfg.Diagnosis.Lock)
	assert.Equal(t, 24*time.Hour, cfg.Diagnosis.SessionTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ORACLE_TIMEOUT", "5s")
	t.Setenv("SESSION_TTL", "60")
	t.Setenv("SESSION_STORE", "postgres")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg := Load()

	assert.Equal(t, 5*time.Second, cfg.Ai.OracleTimeout)
	assert.Equal(t, time.Minute, cfg.Diagnosis.SessionTTL)
	assert.Equal(t, "postgres", cfg.Diagnosis.SessionStore)
	assert.True(t, cfg.App.OtelEnabled)
	assert.Equal(t, "sk-ant", cfg.LLMAPIKey())
}

func TestGetEnvAsDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_DURATION", "soon")
	assert.Equal(t, time.Second, getEnvAsDuration("SOME_DURATION", time.Second))
}
