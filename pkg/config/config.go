// Package config loads application settings from an optional config file
// and TECHTRIAGE_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all techtriage settings.
type Config struct {
	// RulesDir points at a directory with computer_rules / mobile_rules
	// files. Empty means the catalogs embedded in the binary.
	RulesDir string `mapstructure:"rules_dir"`

	// Language is the conversation language, "en" or "ar".
	Language string `mapstructure:"language"`

	// LogLevel is a zap level string (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from the given file, or searches the usual
// locations when path is empty. A missing config file is fine; a broken
// one is not.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("rules_dir", "")
	v.SetDefault("language", "en")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("TECHTRIAGE")
	v.AutomaticEnv()
	// Explicit binds so env-only values survive Unmarshal.
	for _, key := range []string{"rules_dir", "language", "log_level"} {
		_ = v.BindEnv(key)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("techtriage")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/techtriage")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
