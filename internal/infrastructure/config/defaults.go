package config

const (
	defaultSplitterWidth     = 1.0
	defaultMinSplitRatio     = 0.05
	defaultSplitRatio        = 0.5
	defaultResizeStepPercent = 5.0

	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 14
)

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() *Config {
	return &Config{
		Dock: DockConfig{
			SplitterWidth:     defaultSplitterWidth,
			MinSplitRatio:     defaultMinSplitRatio,
			DefaultSplitRatio: defaultSplitRatio,
			ResizeStepPercent: defaultResizeStepPercent,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
			Compress:   true,
		},
		Appearance: AppearanceConfig{
			SplitterColor:       "#45475a",
			SplitterActiveColor: "#89b4fa",
			PreviewColor:        "#a6e3a1",
			BorderColor:         "#6c7086",
			FocusColor:          "#f9e2af",
		},
	}
}
