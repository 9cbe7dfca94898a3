package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizsuite/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Business Suite Pro", cfg.App.Name)
	assert.Equal(t, 5000, cfg.App.Port)
	assert.Equal(t, "data/business_data.json", cfg.Data.File)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATA_FILE", "/tmp/test.json")
	t.Setenv("SERVER_TIMEOUT", "5s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "/tmp/test.json", cfg.Data.File)
	assert.Equal(t, 5*time.Second, cfg.Server.Timeout)
}
