// Package config loads polydraw settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name: POLYDRAW_WIDTH, ...
const Prefix = "polydraw"

// Config holds the settings shared by every polydraw host.
type Config struct {
	Width    int     `envconfig:"WIDTH" default:"800"`
	Height   int     `envconfig:"HEIGHT" default:"600"`
	Extent   float64 `envconfig:"EXTENT" default:"10"`
	FontPath string  `envconfig:"FONT"`
	FontSize float64 `envconfig:"FONT_SIZE" default:"14"`
	Strict   bool    `envconfig:"STRICT_COMPLETION" default:"false"`
	LogLevel string  `envconfig:"LOG_LEVEL" default:"warn"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	if c.Extent <= 0 {
		return fmt.Errorf("config: extent must be positive, got %v", c.Extent)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("config: font size must be positive, got %v", c.FontSize)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
