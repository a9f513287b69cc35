package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bnema/docking/internal/logging"
)

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateDock(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateDock(config *Config) []string {
	var validationErrors []string
	dock := config.Dock

	if dock.SplitterWidth <= 0 || dock.SplitterWidth > 64 {
		validationErrors = append(validationErrors, "dock.splitter_width must be greater than 0 and at most 64")
	}
	if dock.MinSplitRatio < 0 || dock.MinSplitRatio >= 0.5 {
		validationErrors = append(validationErrors, "dock.min_split_ratio must be between 0 and 0.5 (exclusive)")
	}
	if dock.DefaultSplitRatio <= dock.MinSplitRatio || dock.DefaultSplitRatio >= 1-dock.MinSplitRatio {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"dock.default_split_ratio must be between %.2f and %.2f (exclusive)",
			dock.MinSplitRatio, 1-dock.MinSplitRatio,
		))
	}
	if dock.ResizeStepPercent <= 0 || dock.ResizeStepPercent > 50 {
		validationErrors = append(validationErrors, "dock.resize_step_percent must be greater than 0 and at most 50")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level: %v", err))
	}
	switch config.Logging.Format {
	case "json", "console":
	default:
		validationErrors = append(validationErrors, "logging.format must be one of: json, console")
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	colors := []struct {
		key   string
		value string
	}{
		{"appearance.splitter_color", config.Appearance.SplitterColor},
		{"appearance.splitter_active_color", config.Appearance.SplitterActiveColor},
		{"appearance.preview_color", config.Appearance.PreviewColor},
		{"appearance.border_color", config.Appearance.BorderColor},
		{"appearance.focus_color", config.Appearance.FocusColor},
	}

	var validationErrors []string
	for _, c := range colors {
		if !isValidColor(c.value) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s must be a hex colour or an ANSI index 0-255, got %q", c.key, c.value))
		}
	}
	return validationErrors
}

func isValidColor(value string) bool {
	if hexColorPattern.MatchString(value) {
		return true
	}
	n, err := strconv.Atoi(value)
	return err == nil && n >= 0 && n <= 255
}
