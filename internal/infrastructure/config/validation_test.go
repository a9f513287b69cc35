package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{name: "zero splitter width", mutate: func(c *Config) { c.Dock.SplitterWidth = 0 }, wantKey: "dock.splitter_width"},
		{name: "huge splitter width", mutate: func(c *Config) { c.Dock.SplitterWidth = 65 }, wantKey: "dock.splitter_width"},
		{name: "negative min ratio", mutate: func(c *Config) { c.Dock.MinSplitRatio = -0.1 }, wantKey: "dock.min_split_ratio"},
		{name: "min ratio half", mutate: func(c *Config) { c.Dock.MinSplitRatio = 0.5 }, wantKey: "dock.min_split_ratio"},
		{name: "default below min", mutate: func(c *Config) { c.Dock.DefaultSplitRatio = 0.04 }, wantKey: "dock.default_split_ratio"},
		{name: "default above max", mutate: func(c *Config) { c.Dock.DefaultSplitRatio = 0.96 }, wantKey: "dock.default_split_ratio"},
		{name: "zero resize step", mutate: func(c *Config) { c.Dock.ResizeStepPercent = 0 }, wantKey: "dock.resize_step_percent"},
		{name: "unknown level", mutate: func(c *Config) { c.Logging.Level = "verbose" }, wantKey: "logging.level"},
		{name: "unknown format", mutate: func(c *Config) { c.Logging.Format = "text" }, wantKey: "logging.format"},
		{name: "negative backups", mutate: func(c *Config) { c.Logging.MaxBackups = -1 }, wantKey: "logging.max_backups"},
		{name: "named colour", mutate: func(c *Config) { c.Appearance.BorderColor = "red" }, wantKey: "appearance.border_color"},
		{name: "ansi index out of range", mutate: func(c *Config) { c.Appearance.SplitterColor = "256" }, wantKey: "appearance.splitter_color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestValidateConfig_CollectsEveryError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dock.SplitterWidth = -1
	cfg.Logging.Format = "xml"

	err := validateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dock.splitter_width")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestIsValidColor(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"#fff", true},
		{"#45475a", true},
		{"#45475", false},
		{"0", true},
		{"255", true},
		{"-1", false},
		{"", false},
		{"blue", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, isValidColor(tt.value))
		})
	}
}
