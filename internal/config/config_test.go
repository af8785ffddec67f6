package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppMode)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, BackendFile, cfg.StoreBackend)
	assert.Equal(t, 60, cfg.JWT.AccessTokenMins)
	assert.True(t, cfg.IsDev())
}

func TestLoadRejectsInvalidAppMode(t *testing.T) {
	t.Setenv("APP_MODE", "staging")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsInvalidStoreBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadFallsBackOnBadTokenMinutes(t *testing.T) {
	cases := map[string]string{
		"non-numeric": "banana",
		"negative":    "-5",
		"zero":        "0",
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("ACCESS_TOKEN_MINUTES", value)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, 60, cfg.JWT.AccessTokenMins, "bad values must not produce instantly-expired tokens")
		})
	}
}

func TestGetAllowedOriginsDevWildcard(t *testing.T) {
	cfg := &Config{AppMode: "dev"}
	assert.Equal(t, "*", cfg.GetAllowedOrigins())

	prod := &Config{AppMode: "prod"}
	assert.Equal(t, "", prod.GetAllowedOrigins())
}
