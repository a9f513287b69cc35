package config

import (
	"fmt"

	"github.com/bnema/docking/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionDock       = entity.ConfigSectionDock
	SectionLogging    = entity.ConfigSectionLogging
	SectionAppearance = entity.ConfigSectionAppearance
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 16)
	keys = append(keys, p.getDockKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getAppearanceKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getDockKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "dock.splitter_width",
			Type:        "float64",
			Default:     fmt.Sprintf("%g", defaults.Dock.SplitterWidth),
			Description: "Width of the grabbable strip centred on each split boundary, in cells",
			Range:       ">0-64",
			Section:     SectionDock,
		},
		{
			Key:         "dock.min_split_ratio",
			Type:        "float64",
			Default:     fmt.Sprintf("%g", defaults.Dock.MinSplitRatio),
			Description: "Smallest share either side of a split may shrink to",
			Range:       "0-<0.5",
			Section:     SectionDock,
		},
		{
			Key:         "dock.default_split_ratio",
			Type:        "float64",
			Default:     fmt.Sprintf("%g", defaults.Dock.DefaultSplitRatio),
			Description: "Share given to the first child when a docked widget splits a leaf",
			Range:       "min_split_ratio-(1-min_split_ratio)",
			Section:     SectionDock,
		},
		{
			Key:         "dock.resize_step_percent",
			Type:        "float64",
			Default:     fmt.Sprintf("%g", defaults.Dock.ResizeStepPercent),
			Description: "Splitter movement per keyboard resize, in percent of the split",
			Range:       ">0-50",
			Section:     SectionDock,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "fatal", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size_mb",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxSizeMB),
			Description: "Rotate the log file once it grows past this size (0 disables rotation)",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_backups",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxBackups),
			Description: "Number of rotated log files to keep (0 keeps all)",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_age_days",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxAgeDays),
			Description: "Maximum age of rotated log files in days (0 keeps all)",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.compress",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Logging.Compress),
			Description: "Gzip rotated log files",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.log_dir",
			Type:        "string",
			Default:     "$XDG_STATE_HOME/docking/logs",
			Description: "Directory for log files",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getAppearanceKeys(defaults *Config) []entity.ConfigKeyInfo {
	color := func(key, def, desc string) entity.ConfigKeyInfo {
		return entity.ConfigKeyInfo{
			Key:         key,
			Type:        "string",
			Default:     def,
			Description: desc,
			Range:       "#rgb, #rrggbb or 0-255",
			Section:     SectionAppearance,
		}
	}
	return []entity.ConfigKeyInfo{
		color("appearance.splitter_color", defaults.Appearance.SplitterColor, "Idle splitter colour"),
		color("appearance.splitter_active_color", defaults.Appearance.SplitterActiveColor, "Hovered or dragged splitter colour"),
		color("appearance.preview_color", defaults.Appearance.PreviewColor, "Drop preview polygon colour"),
		color("appearance.border_color", defaults.Appearance.BorderColor, "Panel border colour"),
		color("appearance.focus_color", defaults.Appearance.FocusColor, "Focused panel border colour"),
	}
}
