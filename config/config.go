// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

// Package config loads the optional axtrust configuration file. All
// settings have sensible defaults; the CLI works with no file present.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/axtrust/axtrust/security"
)

// DefaultFileName is the configuration file looked up in the home
// directory when no explicit path is given.
const DefaultFileName = ".axtrust.yaml"

var (
	// ErrInvalidConfig indicates the configuration file failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config is the axtrust configuration.
type Config struct {
	// BundleIDs are the bundle identifiers queried by default when the
	// CLI or the monitor is run without explicit identifiers.
	BundleIDs []string `yaml:"bundleIds"`

	// Prompt controls whether a failed permission check may show the
	// OS grant dialog.
	Prompt bool `yaml:"prompt"`

	// Output selects the CLI output format ("default" or "json").
	Output string `yaml:"output"`

	Watch WatchConfig `yaml:"watch"`
}

// WatchConfig tunes the monitor subcommand.
type WatchConfig struct {
	Interval        time.Duration `yaml:"interval"`
	MetricsPort     int           `yaml:"metricsPort"`
	BreakerFailures int           `yaml:"breakerFailures"`
	RateLimit       int           `yaml:"rateLimit"`
}

// UnmarshalYAML decodes the watch section, parsing interval from a
// duration string like "30s". yaml.v3 has no native time.Duration
// support. Fields absent from the document keep their current values.
func (w *WatchConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Interval        string `yaml:"interval"`
		MetricsPort     *int   `yaml:"metricsPort"`
		BreakerFailures *int   `yaml:"breakerFailures"`
		RateLimit       *int   `yaml:"rateLimit"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Interval != "" {
		d, err := time.ParseDuration(raw.Interval)
		if err != nil {
			return fmt.Errorf("invalid watch interval %q: %w", raw.Interval, err)
		}
		w.Interval = d
	}
	if raw.MetricsPort != nil {
		w.MetricsPort = *raw.MetricsPort
	}
	if raw.BreakerFailures != nil {
		w.BreakerFailures = *raw.BreakerFailures
	}
	if raw.RateLimit != nil {
		w.RateLimit = *raw.RateLimit
	}
	return nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		BundleIDs: []string{"com.apple.Safari"},
		Prompt:    true,
		Output:    "default",
		Watch: WatchConfig{
			Interval:        15 * time.Second,
			MetricsPort:     9832,
			BreakerFailures: 3,
		},
	}
}

// Load reads the configuration from path, or from the home-directory
// default when path is empty. A missing file yields Default(), not an
// error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil
		}
		path = filepath.Join(home, DefaultFileName)
	}

	if err := security.ValidatePath(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// #nosec G304 -- Path validated by security.ValidatePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	switch c.Output {
	case "", "default", "json":
	default:
		return fmt.Errorf("%w: output must be \"default\" or \"json\", got %q", ErrInvalidConfig, c.Output)
	}
	if c.Watch.Interval < 0 {
		return fmt.Errorf("%w: watch interval cannot be negative", ErrInvalidConfig)
	}
	if c.Watch.MetricsPort < 0 || c.Watch.MetricsPort > 65535 {
		return fmt.Errorf("%w: metrics port %d out of range", ErrInvalidConfig, c.Watch.MetricsPort)
	}
	if c.Watch.RateLimit < 0 {
		return fmt.Errorf("%w: rate limit cannot be negative", ErrInvalidConfig)
	}
	for _, id := range c.BundleIDs {
		if id == "" {
			return fmt.Errorf("%w: bundle identifiers cannot be empty", ErrInvalidConfig)
		}
	}
	return nil
}
