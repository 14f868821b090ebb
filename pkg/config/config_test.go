package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "./data/parts-tracker.json", cfg.Storage.Path)
	assert.False(t, cfg.SMTP.Enabled())
	assert.Equal(t, "parts_tracker_session", cfg.Session.CookieName)
	assert.Equal(t, 24, cfg.Session.TTLHours)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("SMTP_HOST", "smtp.example.org")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.True(t, cfg.SMTP.Enabled())
}
