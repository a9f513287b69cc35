// Package config loads, validates, watches and writes the docking
// configuration file.
package config

// Config represents the complete configuration for docking.
type Config struct {
	// Dock controls splitter geometry and split ratios.
	Dock DockConfig `mapstructure:"dock" toml:"dock" json:"dock"`
	// Logging controls log verbosity and the rotated log file.
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Appearance holds the colours used by the terminal editor.
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
}

// DockConfig controls splitter geometry and split ratios.
type DockConfig struct {
	// SplitterWidth is the hit-test width of a splitter strip, in cells.
	SplitterWidth float64 `mapstructure:"splitter_width" toml:"splitter_width" json:"splitter_width" jsonschema:"exclusiveMinimum=0,maximum=64,default=1"`
	// MinSplitRatio keeps both sides of a split at least this fraction wide.
	MinSplitRatio float64 `mapstructure:"min_split_ratio" toml:"min_split_ratio" json:"min_split_ratio" jsonschema:"minimum=0,exclusiveMaximum=0.5,default=0.05"`
	// DefaultSplitRatio is the share given to the first child of a new split.
	DefaultSplitRatio float64 `mapstructure:"default_split_ratio" toml:"default_split_ratio" json:"default_split_ratio" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=1,default=0.5"`
	// ResizeStepPercent is how far one keyboard resize moves a splitter.
	ResizeStepPercent float64 `mapstructure:"resize_step_percent" toml:"resize_step_percent" json:"resize_step_percent" jsonschema:"exclusiveMinimum=0,maximum=50,default=5"`
}

// LoggingConfig controls log verbosity and the rotated log file.
type LoggingConfig struct {
	Level      string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=fatal,enum=disabled"`
	Format     string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=0"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
	Compress   bool   `mapstructure:"compress" toml:"compress" json:"compress"`
	// LogDir overrides the XDG state directory for log files.
	LogDir string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir,omitempty"`
}

// AppearanceConfig holds terminal colours. Each value is a hex colour
// ("#rgb" or "#rrggbb") or an ANSI 256 palette index.
type AppearanceConfig struct {
	SplitterColor       string `mapstructure:"splitter_color" toml:"splitter_color" json:"splitter_color"`
	SplitterActiveColor string `mapstructure:"splitter_active_color" toml:"splitter_active_color" json:"splitter_active_color"`
	PreviewColor        string `mapstructure:"preview_color" toml:"preview_color" json:"preview_color"`
	BorderColor         string `mapstructure:"border_color" toml:"border_color" json:"border_color"`
	FocusColor          string `mapstructure:"focus_color" toml:"focus_color" json:"focus_color"`
}
