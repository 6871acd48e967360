package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesStructuredConfig(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "super-secret")
	t.Setenv("APP_TOKEN_ISSUER", "issuer-from-env")
	t.Setenv("APP_TOKEN_DURATION", "24h")
	t.Setenv("APP_ENVIRONMENT", "production")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/board")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9090")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "super-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer-from-env", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "postgres://localhost/board", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Zero(t, cfg.App.TokenDuration)
}
