package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFrom merges the given configs in priority order, exactly as the
// production builder does, without touching the process flag set.
func buildFrom(t *testing.T, configs ...*StructuredConfig) (*StructuredConfig, error) {
	t.Helper()
	b := newConfigBuilder()
	b.configs = append(b.configs, configs...)
	return b.build()
}

func TestBuild_FirstSourceWins(t *testing.T) {
	high := &StructuredConfig{
		App:     App{TokenSignKey: "from-flags"},
		Storage: Storage{DB: DB{DSN: "postgres://flags"}},
	}
	low := &StructuredConfig{
		App:     App{TokenSignKey: "from-env", TokenIssuer: "env-issuer"},
		Storage: Storage{DB: DB{DSN: "postgres://env"}},
	}

	cfg, err := buildFrom(t, high, low)
	require.NoError(t, err)

	assert.Equal(t, "from-flags", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://flags", cfg.Storage.DB.DSN)
	// fields absent in the higher-priority source fall through
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	cfg, err := buildFrom(t, &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/board"}},
	})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "article-board", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
	assert.False(t, cfg.IsProduction())
}

func TestBuild_MissingSignKeyFails(t *testing.T) {
	_, err := buildFrom(t, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/board"}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoTokenSignKey))
}

func TestBuild_MissingDSNFails(t *testing.T) {
	_, err := buildFrom(t, &StructuredConfig{
		App: App{TokenSignKey: "secret"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoDatabaseDSN))
}

func TestWithJSON_MergesFileAsLowestPriority(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{
		"app": {"token_sign_key": "json-secret", "token_duration": "1h"},
		"storage": {"db": {"dsn": "postgres://json"}},
		"server": {"http_address": "localhost:7000"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:          App{TokenSignKey: "flag-secret"},
		JSONFilePath: path,
	})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, "flag-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://json", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
}

func TestWithJSON_BadFileSurfacesError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

func TestNetAddress_SetAndString(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:8081"))
	assert.Equal(t, "localhost:8081", a.String())

	require.Error(t, a.Set("no-port"))
	require.Error(t, a.Set("localhost:0"))
	require.Error(t, a.Set("not-an-ip:80"))
}
