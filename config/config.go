package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all client configuration
type Config struct {
	API        APIConfig
	Cloudinary CloudinaryConfig
	Session    SessionConfig
	Logging    LoggingConfig
	Stub       StubConfig
	AppEnv     string
}

type APIConfig struct {
	BaseURL string
}

type CloudinaryConfig struct {
	CloudName    string
	UploadPreset string
	BaseURL      string
}

type SessionConfig struct {
	TokenFile string
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type StubConfig struct {
	Port           string
	GinMode        string
	JWTSecret      string
	JWTIssuer      string
	AllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("API_BASE_URL", "https://api.holidaysri.com")
	v.SetDefault("CLOUDINARY_BASE_URL", "https://api.cloudinary.com")
	v.SetDefault("CLOUDINARY_UPLOAD_PRESET", "holidaysri_unsigned")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("STUB_PORT", "8091")
	v.SetDefault("STUB_GIN_MODE", "release")
	v.SetDefault("STUB_JWT_ISSUER", "holidaysri-stub")
	v.SetDefault("STUB_ALLOWED_ORIGINS", "http://localhost:3000")

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	tokenFile := v.GetString("SESSION_TOKEN_FILE")
	if tokenFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		tokenFile = filepath.Join(home, ".holidaysri", "token")
	}

	allowedOrigins := []string{}
	for _, origin := range strings.Split(v.GetString("STUB_ALLOWED_ORIGINS"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins = append(allowedOrigins, origin)
		}
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL: v.GetString("API_BASE_URL"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName:    v.GetString("CLOUDINARY_CLOUD_NAME"),
			UploadPreset: v.GetString("CLOUDINARY_UPLOAD_PRESET"),
			BaseURL:      v.GetString("CLOUDINARY_BASE_URL"),
		},
		Session: SessionConfig{
			TokenFile: tokenFile,
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Stub: StubConfig{
			Port:           v.GetString("STUB_PORT"),
			GinMode:        v.GetString("STUB_GIN_MODE"),
			JWTSecret:      v.GetString("STUB_JWT_SECRET"),
			JWTIssuer:      v.GetString("STUB_JWT_ISSUER"),
			AllowedOrigins: allowedOrigins,
		},
		AppEnv: v.GetString("APP_ENV"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if c.Cloudinary.UploadPreset == "" {
		return fmt.Errorf("CLOUDINARY_UPLOAD_PRESET is required")
	}
	if c.Session.TokenFile == "" {
		return fmt.Errorf("SESSION_TOKEN_FILE is required")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
