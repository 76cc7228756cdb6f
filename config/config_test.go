package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ADDR", "DB_DSN", "JWT_SECRET", "TOKEN_TTL_SEC", "DB_AUTO_MIGRATE", "DEBUG"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DSN", "postgres://localhost/spendtrack_test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.True(t, cfg.AutoMigrate)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "dev-insecure-secret-change", cfg.JWTSecret)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_DSN", "postgres://localhost/spendtrack_test")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("TOKEN_TTL_SEC", "120")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "prod-secret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Minute, cfg.TokenTTL)
	assert.False(t, cfg.AutoMigrate)
	assert.True(t, cfg.Debug)
}

func TestLoadMissingDSN(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DSN")
}

func TestLoadInvalidTTL(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DSN", "postgres://localhost/spendtrack_test")
	t.Setenv("TOKEN_TTL_SEC", "-5")

	_, err := Load()
	assert.Error(t, err)
}
