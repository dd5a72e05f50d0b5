package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.holidaysri.com", cfg.API.BaseURL)
	assert.Equal(t, "https://api.cloudinary.com", cfg.Cloudinary.BaseURL)
	assert.Equal(t, "holidaysri_unsigned", cfg.Cloudinary.UploadPreset)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "8091", cfg.Stub.Port)
	assert.Equal(t, "release", cfg.Stub.GinMode)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Stub.AllowedOrigins)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("API_BASE_URL", "http://localhost:8091")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8091", cfg.API.BaseURL)
	assert.Equal(t, "demo", cfg.Cloudinary.CloudName)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_TokenFileDefaultsUnderHome(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, strings.Contains(cfg.Session.TokenFile, ".holidaysri"))
}

func TestLoad_TokenFileOverride(t *testing.T) {
	t.Setenv("SESSION_TOKEN_FILE", "/tmp/holidaysri-token")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/holidaysri-token", cfg.Session.TokenFile)
}

func TestLoad_AllowedOriginsSplitAndTrimmed(t *testing.T) {
	t.Setenv("STUB_ALLOWED_ORIGINS", "http://localhost:3000, https://holidaysri.com ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:3000", "https://holidaysri.com"}, cfg.Stub.AllowedOrigins)
}

func TestValidate_MissingRequiredValues(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		message string
	}{
		{"missing base url", func(c *Config) { c.API.BaseURL = "" }, "API_BASE_URL"},
		{"missing upload preset", func(c *Config) { c.Cloudinary.UploadPreset = "" }, "CLOUDINARY_UPLOAD_PRESET"},
		{"missing token file", func(c *Config) { c.Session.TokenFile = "" }, "SESSION_TOKEN_FILE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)

			tc.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}
