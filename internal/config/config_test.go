package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigAppliesDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8420", cfg.Port)
	assert.Equal(t, "gitmentor", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "test", cfg.Env)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("PORT", "9000")
	t.Setenv("DB_NAME", "gitmentor_test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "gitmentor_test", cfg.DBName)
}

func TestValidateRequiredFields(t *testing.T) {
	cfg := &Config{DBName: "db"}
	assert.EqualError(t, cfg.Validate(), "PORT is required")

	cfg = &Config{Port: "8420"}
	assert.EqualError(t, cfg.Validate(), "DB_NAME is required")
}

func TestValidateProductionRejectsDefaultPassword(t *testing.T) {
	cfg := &Config{
		Port:       "8420",
		DBName:     "gitmentor",
		Env:        "production",
		DBPassword: "password",
	}
	assert.Error(t, cfg.Validate())

	cfg.DBPassword = "s0mething-actually-secret"
	assert.NoError(t, cfg.Validate())
}
