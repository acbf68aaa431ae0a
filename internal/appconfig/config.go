// Package appconfig resolves the engine's configuration from CLI flags and
// defaults held in a viper instance, then validates it before any file I/O
// is attempted. LoadLocalEnv loads an optional local .env file into the
// process environment; Load itself does not read environment variables.
package appconfig

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	validator "gopkg.in/go-playground/validator.v9"
)

// Config is the fully resolved, validated engine configuration.
type Config struct {
	InputPath           string `mapstructure:"input" validate:"required"`
	MaxRecordLength     int    `mapstructure:"max-record-length" validate:"gt=0"`
	ToleranceMultiplier int    `mapstructure:"tolerance-multiplier" validate:"gt=0"`
	LogLevel            string `mapstructure:"log-level" validate:"oneof=debug info warn error"`
	OutputPath          string `mapstructure:"output"`
}

// Tolerance returns the bounded-chunk reader tolerance derived from the
// configured max record length and multiplier, per §6's "max record
// length x a small constant (e.g. 5)".
func (c Config) Tolerance() int {
	return c.MaxRecordLength * c.ToleranceMultiplier
}

var (
	envOnce sync.Once
)

// LoadLocalEnv loads a local .env file into the process environment, at
// most once per process. A missing .env file is not an error — it simply
// means there is nothing to override.
func LoadLocalEnv() {
	envOnce.Do(func() {
		_ = godotenv.Load()
	})
}

// Load reads a Config out of v and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("appconfig: unmarshal: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("appconfig: invalid configuration: %w", err)
	}

	return cfg, nil
}

// Defaults populates v with the engine's default values, which apply to any
// key not set by a bound flag or an explicit Set.
func Defaults(v *viper.Viper) {
	v.SetDefault("max-record-length", 4096)
	v.SetDefault("tolerance-multiplier", 5)
	v.SetDefault("log-level", "info")
	v.SetDefault("output", "")
}
