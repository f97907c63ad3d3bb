// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axtrust/axtrust/testutil"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", testutil.TempDir(t))

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(testutil.TempDir(t), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(testutil.TempDir(t), "axtrust.yaml")
	content := []byte(`
bundleIds:
  - org.mozilla.firefox
  - com.apple.Terminal
prompt: false
output: json
watch:
  interval: 30s
  metricsPort: 9999
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"org.mozilla.firefox", "com.apple.Terminal"}, cfg.BundleIDs)
	assert.False(t, cfg.Prompt)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 30*time.Second, cfg.Watch.Interval)
	assert.Equal(t, 9999, cfg.Watch.MetricsPort)
	// Unset fields keep their defaults.
	assert.Equal(t, 3, cfg.Watch.BreakerFailures)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(testutil.TempDir(t), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bundleIds: [unclosed"), 0o600))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"json output", func(c *Config) { c.Output = "json" }, false},
		{"bad output", func(c *Config) { c.Output = "xml" }, true},
		{"negative interval", func(c *Config) { c.Watch.Interval = -time.Second }, true},
		{"port out of range", func(c *Config) { c.Watch.MetricsPort = 70000 }, true},
		{"negative rate limit", func(c *Config) { c.Watch.RateLimit = -1 }, true},
		{"empty bundle id", func(c *Config) { c.BundleIDs = []string{""} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
