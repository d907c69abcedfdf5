package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_AllowsWithinLimit(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, Limit: 5, Window: time.Minute})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		info := limiter.Allow("client-a")
		assert.True(t, info.Allowed, "request %d should be allowed", i+1)
	}
}

func TestLimiter_BlocksOverLimit(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, Limit: 3, Window: time.Hour})
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		limiter.Allow("client-a")
	}

	info := limiter.Allow("client-a")
	assert.False(t, info.Allowed)
	assert.Equal(t, 3, info.Limit)
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, Limit: 1, Window: time.Hour})
	defer limiter.Stop()

	assert.True(t, limiter.Allow("client-a").Allowed)
	assert.False(t, limiter.Allow("client-a").Allowed)
	assert.True(t, limiter.Allow("client-b").Allowed)
}

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false, Limit: 1, Window: time.Hour})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		assert.True(t, limiter.Allow("client-a").Allowed)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "99")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 99, cfg.Limit)
}
