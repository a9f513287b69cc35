// Package logging wires zerolog for the docking tools.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Environment variables read by NewFromEnv.
const (
	EnvLogLevel  = "DOCKING_LOG_LEVEL"
	EnvLogFormat = "DOCKING_LOG_FORMAT"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel maps a config or env level name to a zerolog level.
// An empty name means info.
func ParseLevel(name string) (zerolog.Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "":
		return zerolog.InfoLevel, nil
	case "trace", "debug", "info", "warn", "error", "fatal", "disabled":
		return zerolog.ParseLevel(normalized)
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// New creates a zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter creates a zerolog logger writing to w in the configured format.
func NewWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	output := w
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
			NoColor:    w != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromEnv creates a logger based on environment variables
// DOCKING_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// DOCKING_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return New(ConfigFromEnv(DefaultConfig()))
}

// ConfigFromEnv overrides cfg with the DOCKING_LOG_* variables that hold
// valid values.
func ConfigFromEnv(cfg Config) Config {
	if name := os.Getenv(EnvLogLevel); name != "" {
		if level, err := ParseLevel(name); err == nil {
			cfg.Level = level
		}
	}

	switch format := os.Getenv(EnvLogFormat); format {
	case "json", "console":
		cfg.Format = format
	}

	return cfg
}

// FileConfig describes the rotated log file used by NewWithFile.
type FileConfig struct {
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// NewWithFile creates a logger writing to a size-rotated file in
// fileCfg.Dir. The terminal UI uses it so log lines never reach the screen.
// The returned closer flushes and closes the current file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(fileCfg.Dir, 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	rotator, err := NewLogRotator(RotatorConfig{
		Dir:        fileCfg.Dir,
		FileName:   "docking.log",
		MaxSizeMB:  fileCfg.MaxSizeMB,
		MaxBackups: fileCfg.MaxBackups,
		MaxAgeDays: fileCfg.MaxAgeDays,
		Compress:   fileCfg.Compress,
	})
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	return NewWithWriter(cfg, rotator), rotator, nil
}
