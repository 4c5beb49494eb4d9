// Package config loads dirplot settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ukaji3/dirplot-go/pkg/dirplot"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when none is given explicitly.
const DefaultPath = "dirplot.yaml"

// Config holds run settings. None of them affect how plots look.
type Config struct {
	// Dir is the input directory; empty means the working directory.
	Dir             string      `yaml:"dir"`
	ContinueOnError bool        `yaml:"continue_on_error"`
	IncludeXLSX     bool        `yaml:"include_xlsx"`
	SkipHeader      bool        `yaml:"skip_header"`
	LogLevel        string      `yaml:"log_level"` // debug, info, warn, error
	Watch           WatchConfig `yaml:"watch"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	Debounce string `yaml:"debounce"` // e.g. "250ms"
}

// DefaultConfig returns the zero-argument behavior: working directory,
// CSV only, fail fast.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Watch: WatchConfig{
			Debounce: dirplot.DefaultDebounce.String(),
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the log level and debounce values.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Debounce(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// Debounce returns the parsed watch debounce period.
func (c *Config) Debounce() (time.Duration, error) {
	if c.Watch.Debounce == "" {
		return dirplot.DefaultDebounce, nil
	}
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, fmt.Errorf("watch.debounce: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("watch.debounce: must be positive, got %s", d)
	}
	return d, nil
}

// Options converts the config into plotter options.
func (c *Config) Options() dirplot.Options {
	return dirplot.Options{
		ContinueOnError: c.ContinueOnError,
		IncludeXLSX:     c.IncludeXLSX,
		SkipHeader:      c.SkipHeader,
	}
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
