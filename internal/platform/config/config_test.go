package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invenko/inventory_management_app/internal/platform/config"
)

func TestLoadConfig_DevDefaultsSecretsWhenUnset(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "false")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.NotEmpty(t, cfg.JWTRefreshSecret)
	assert.NotEqual(t, cfg.JWTSecret, cfg.JWTRefreshSecret)
}

func TestLoadConfig_ProductionRequiresAccessSecret(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")

	cfg, err := config.LoadConfig()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadConfig_ProductionRequiresRefreshSecret(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "")

	cfg, err := config.LoadConfig()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "JWT_REFRESH_SECRET")
}

func TestLoadConfig_ProductionWithSecretsSucceeds(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "access-secret", cfg.JWTSecret)
	assert.Equal(t, "refresh-secret", cfg.JWTRefreshSecret)
}
