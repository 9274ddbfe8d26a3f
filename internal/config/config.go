package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Remote catalog service
	BaseURL            string `mapstructure:"CATALOG_BASE_URL"`
	HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`

	// Credentials for the CLI bootstrap; interactive callers pass their own.
	Username string `mapstructure:"CATALOG_USERNAME"`
	Password string `mapstructure:"CATALOG_PASSWORD"`

	Env string `mapstructure:"APP_ENV"` // development | production
}

// HTTPTimeout returns the transport-level timeout as a duration. There is
// deliberately no retry or backoff policy anywhere in this layer; this
// single timeout is the only bound on a hung call.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("CATALOG_BASE_URL", "https://d3v3ai4t8a3aev.cloudfront.net/")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 30)
	viper.SetDefault("APP_ENV", "development")

	// AutomaticEnv only resolves keys viper has seen, so the credential
	// keys (which have no default) must be bound explicitly.
	_ = viper.BindEnv("CATALOG_USERNAME")
	_ = viper.BindEnv("CATALOG_PASSWORD")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
