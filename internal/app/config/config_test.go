package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4, cfg.EventWorkers)
	assert.False(t, cfg.EnforceCapacity)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "activities.events", cfg.Redis.Channel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("ENFORCE_CAPACITY", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_CHANNEL", "roster")

	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.True(t, cfg.EnforceCapacity)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "roster", cfg.Redis.Channel)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "log_level: debug\nevent_workers: 8\nredis:\n  addr: cache:6379\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := load(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8, cfg.EventWorkers)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("EVENT_WORKERS", "0")

	_, err := load(viper.New(), t.TempDir())
	assert.ErrorContains(t, err, "event_workers")
}
