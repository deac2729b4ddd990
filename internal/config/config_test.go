package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("LLM_TIMEOUT", "12s")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("CHAT_RATE_LIMIT_PER_MINUTE", "7")
	t.Setenv("LLM_RATE_PER_SECOND", "2.5")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 12*time.Second, cfg.Ai.LLMTimeout)
	assert.True(t, cfg.Storage.UseSSL)
	assert.Equal(t, 7, cfg.Ai.ChatRatePerMinute)
	assert.Equal(t, 2.5, cfg.Ai.LLMRatePerSecond)
}

func TestLoadFallsBackOnMalformedValues(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")
	t.Setenv("JWT_TTL", "forever")
	t.Setenv("OTEL_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.JWTTTL)
	assert.False(t, cfg.App.OtelEnabled)
}
