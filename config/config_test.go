package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("prestabanco", flag.ContinueOnError)
}

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("PRESTABANCO_SESSION_SECRET", "0123456789abcdef")

	cfg, err := ParseConfig(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "http://localhost:8090", cfg.BaseURL())
	assert.Equal(t, 30*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 8*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 10*time.Minute, cfg.SimulationTTL)
	assert.Equal(t, 60, cfg.RateLimitCapacity)
	assert.Empty(t, cfg.RedisAddr)
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("PRESTABANCO_SESSION_SECRET", "0123456789abcdef")
	t.Setenv("PRESTABANCO_BACKEND_SERVER", "backend")
	t.Setenv("PRESTABANCO_BACKEND_PORT", "9000")
	t.Setenv("PRESTABANCO_REDIS_ADDR", "redis:6379")

	cfg, err := ParseConfig(newFlagSet(), []string{"-backend-port", "9100", "-rate-limit", "5"})
	require.NoError(t, err)
	assert.Equal(t, "http://backend:9100", cfg.BaseURL())
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 5, cfg.RateLimitCapacity)
}

func TestParseConfigBackendURL(t *testing.T) {
	t.Setenv("PRESTABANCO_SESSION_SECRET", "0123456789abcdef")
	t.Setenv("PRESTABANCO_BACKEND_URL", "https://api.prestabanco.cl")

	cfg, err := ParseConfig(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, "https://api.prestabanco.cl", cfg.BaseURL())
}

func TestParseConfigErrors(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("PRESTABANCO_SESSION_SECRET", "")
		_, err := ParseConfig(newFlagSet(), nil)
		assert.ErrorContains(t, err, "PRESTABANCO_SESSION_SECRET")
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("PRESTABANCO_SESSION_SECRET", "0123456789abcdef")
		t.Setenv("PRESTABANCO_BACKEND_TIMEOUT", "soon")
		_, err := ParseConfig(newFlagSet(), nil)
		assert.ErrorContains(t, err, "parse env:")
	})

	t.Run("bad rate limit", func(t *testing.T) {
		t.Setenv("PRESTABANCO_SESSION_SECRET", "0123456789abcdef")
		_, err := ParseConfig(newFlagSet(), []string{"-rate-limit", "0"})
		assert.Error(t, err)
	})
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PRESTABANCO_TEST_DOTENV=from-file\n"), 0o600))
	t.Setenv("PRESTABANCO_TEST_DOTENV", "")
	os.Unsetenv("PRESTABANCO_TEST_DOTENV")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("PRESTABANCO_TEST_DOTENV"))

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}
