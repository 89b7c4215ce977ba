package config_test

import (
	"testing"
	"time"

	"github.com/okanara/markov/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServe_Defaults(t *testing.T) {
	cfg, err := config.LoadServe()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, config.StoreMemory, cfg.Store)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoadServe_FromEnvironment(t *testing.T) {
	t.Setenv("MARKOV_PORT", "9090")
	t.Setenv("MARKOV_STORE", "redis")
	t.Setenv("MARKOV_REDIS_ADDR", "redis.internal:6380")
	t.Setenv("MARKOV_RUN_TTL", "48h")

	cfg, err := config.LoadServe()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, config.StoreRedis, cfg.Store)
	assert.Equal(t, "redis.internal:6380", cfg.RedisAddr)
	assert.Equal(t, 48*time.Hour, cfg.RunTTL)
}

func TestLoadServe_UnknownStore(t *testing.T) {
	t.Setenv("MARKOV_STORE", "postgres")

	_, err := config.LoadServe()
	assert.Error(t, err)
}
