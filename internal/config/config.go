// Package config holds the CLI configuration. Values come from an optional
// config file and environment variables via viper, with flag bindings
// layered on top by the command setup.
package config

import (
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/hadron43/pgn-manager/internal/errors"
)

// Config collects the settings of a pgn-manager run.
type Config struct {
	// Workers is the number of games processed concurrently by check.
	Workers int `mapstructure:"workers"`

	// Strict disables the permissive notation fallback when replaying
	// source moves.
	Strict bool `mapstructure:"strict"`

	// Format selects CLI output: "text" or "json".
	Format string `mapstructure:"format"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Workers:  runtime.NumCPU(),
		Format:   "text",
		LogLevel: "warn",
	}
}

// Load reads the configuration from the given file (optional) and the
// PGN_MANAGER_* environment, on top of the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	cfg := Default()
	v.SetDefault("workers", cfg.Workers)
	v.SetDefault("strict", cfg.Strict)
	v.SetDefault("format", cfg.Format)
	v.SetDefault("log_level", cfg.LogLevel)

	v.SetEnvPrefix("PGN_MANAGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshalling config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must be >= 1, got %d", c.Workers)
	}
	switch c.Format {
	case "text", "json":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown format %q", c.Format)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown log level %q", c.LogLevel)
	}
	return nil
}
