// Package config loads run settings and puzzle layouts.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/hailam/queensweep/internal/store"
)

// EnvPrefix prefixes every environment variable the solver reads.
const EnvPrefix = "QUEENSWEEP"

// Keys
const (
	KeyLayout    = "layout"
	KeyWorkers   = "workers"
	KeyStore     = "store"
	KeyBoards    = "boards"
	KeyLimit     = "limit"
	KeyWidth     = "width"
	KeyHistogram = "histogram"
	KeyASCII     = "ascii"
	KeyPNGDir    = "png_dir"
	KeyVerify    = "verify"
	KeyLogLevel  = "log_level"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of one solver run.
type Config struct {
	// Layout is the path of a layout file; empty means the built-in puzzle.
	Layout  string `mapstructure:"layout"`
	Workers int    `mapstructure:"workers"`
	Store   string `mapstructure:"store"`

	// Boards prints every intermediate board of each solution.
	Boards bool `mapstructure:"boards"`
	// Limit caps the number of solutions printed; 0 prints all.
	Limit int `mapstructure:"limit"`
	// Width is the output width in columns; 0 detects the terminal.
	Width     int    `mapstructure:"width"`
	Histogram bool   `mapstructure:"histogram"`
	ASCII     bool   `mapstructure:"ascii"`
	PNGDir    string `mapstructure:"png_dir"`
	Verify    bool   `mapstructure:"verify"`
	LogLevel  string `mapstructure:"log_level"`
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLayout, "")
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeyStore, store.KindMemory)
	v.SetDefault(KeyBoards, true)
	v.SetDefault(KeyLimit, 0)
	v.SetDefault(KeyWidth, 0)
	v.SetDefault(KeyHistogram, true)
	v.SetDefault(KeyASCII, false)
	v.SetDefault(KeyPNGDir, "")
	v.SetDefault(KeyVerify, false)
	v.SetDefault(KeyLogLevel, "info")
}

// ReadFile merges a YAML config file into v.
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the solver cannot run with.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if !lo.Contains(store.Kinds(), c.Store) {
		return fmt.Errorf("%w: store %q, want one of %s", ErrInvalidConfig, c.Store, strings.Join(store.Kinds(), ", "))
	}
	if c.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative, got %d", ErrInvalidConfig, c.Limit)
	}
	if c.Width < 0 {
		return fmt.Errorf("%w: width must not be negative, got %d", ErrInvalidConfig, c.Width)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the configured zerolog level.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
