// Package config holds the tool configuration assembled by viper from
// flags, PWA2NATIVE_* environment variables, and .pwa2native.yml.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved tool configuration for one invocation.
type Config struct {
	Name      string        `mapstructure:"name"`
	Platforms string        `mapstructure:"platforms"`
	Output    string        `mapstructure:"output"`
	Timeout   time.Duration `mapstructure:"timeout"`
	SkipIcons bool          `mapstructure:"skip_icons"`
	LogLevel  string        `mapstructure:"log_level"`
	LogFormat string        `mapstructure:"log_format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Platforms: "all",
		Output:    "./dist",
		Timeout:   10 * time.Second,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// SetDefaults registers the defaults with viper so file and environment
// values merge on top of them.
func SetDefaults() {
	d := DefaultConfig()
	viper.SetDefault("platforms", d.Platforms)
	viper.SetDefault("output", d.Output)
	viper.SetDefault("timeout", d.Timeout)
	viper.SetDefault("skip_icons", d.SkipIcons)
	viper.SetDefault("log_level", d.LogLevel)
	viper.SetDefault("log_format", d.LogFormat)
}

// Load unmarshals the merged viper state and validates it.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values no run could proceed with.
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log_format must be \"text\" or \"json\", got %q", c.LogFormat)
	}

	return nil
}
