// Package config loads application configuration from an optional YAML
// file with SOLBANK_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	API APIConfig
	Log LogConfig
}

// APIConfig points the client at the placeholder backend.
type APIConfig struct {
	BaseURL string
	UserID  string
}

// LogConfig controls the zap file logger. An empty file path disables
// logging entirely (the TUI owns stdout).
type LogConfig struct {
	File  string
	Level string
}

// DefaultUserID is sent when no user id is configured.
const DefaultUserID = "default_user"

// Load reads configuration. When path is empty only defaults and
// environment overrides apply; a named file that cannot be read is an
// error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.user_id", DefaultUserID)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("SOLBANK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL: v.GetString("api.base_url"),
			UserID:  v.GetString("api.user_id"),
		},
		Log: LogConfig{
			File:  v.GetString("log.file"),
			Level: v.GetString("log.level"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, _ := Load("")
	return cfg
}

func (c *Config) validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url must not be empty")
	}
	return nil
}
