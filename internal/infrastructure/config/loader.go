package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading from the XDG config dir.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(configDir)
}

// NewManagerAt creates a configuration manager reading config.toml from configDir.
func NewManagerAt(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// DOCKING_DOCK_SPLITTER_WIDTH overrides dock.splitter_width, and so on.
	v.SetEnvPrefix("DOCKING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The logging package reads these names directly; keep them in sync.
	if err := v.BindEnv("logging.level", "DOCKING_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DOCKING_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DOCKING_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DOCKING_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables. A
// missing config file is created from the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.ConfigPath()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if err := m.createDefaultConfig(); err != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			err,
		)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

// decode unmarshals, normalizes and validates the current viper state.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}

	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}

	colors := []*string{
		&config.Appearance.SplitterColor,
		&config.Appearance.SplitterActiveColor,
		&config.Appearance.PreviewColor,
		&config.Appearance.BorderColor,
		&config.Appearance.FocusColor,
	}
	for _, c := range colors {
		*c = strings.ToLower(strings.TrimSpace(*c))
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := ensureDir(m.configDir); err != nil {
		return err
	}
	if err := WriteConfigOrdered(cfg, m.ConfigPath()); err != nil {
		return err
	}

	// With Watch active the fsnotify callback reloads.
	if !m.watching {
		return m.reload()
	}
	return nil
}

// ConfigPath returns the config file path this manager reads and writes.
func (m *Manager) ConfigPath() string {
	return filepath.Join(m.configDir, configFileName)
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults and their JSON schema next to each other.
func (m *Manager) createDefaultConfig() error {
	if err := ensureDir(m.configDir); err != nil {
		return err
	}

	path := m.ConfigPath()
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := WriteConfigOrdered(DefaultConfig(), path); err != nil {
		return err
	}
	return WriteSchemaFile(filepath.Join(m.configDir, schemaFileName))
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setDockDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setAppearanceDefaults(defaults)
}

func (m *Manager) setDockDefaults(defaults *Config) {
	m.viper.SetDefault("dock.splitter_width", defaults.Dock.SplitterWidth)
	m.viper.SetDefault("dock.min_split_ratio", defaults.Dock.MinSplitRatio)
	m.viper.SetDefault("dock.default_split_ratio", defaults.Dock.DefaultSplitRatio)
	m.viper.SetDefault("dock.resize_step_percent", defaults.Dock.ResizeStepPercent)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.splitter_color", defaults.Appearance.SplitterColor)
	m.viper.SetDefault("appearance.splitter_active_color", defaults.Appearance.SplitterActiveColor)
	m.viper.SetDefault("appearance.preview_color", defaults.Appearance.PreviewColor)
	m.viper.SetDefault("appearance.border_color", defaults.Appearance.BorderColor)
	m.viper.SetDefault("appearance.focus_color", defaults.Appearance.FocusColor)
}

var globalManager *Manager

// Init initializes the global configuration manager and loads the config.
func Init() error {
	if globalManager != nil {
		return nil
	}
	manager, err := NewManager()
	if err != nil {
		return err
	}
	if err := manager.Load(); err != nil {
		return err
	}
	globalManager = manager
	return nil
}

// Get returns the global configuration, or the defaults before Init.
func Get() *Config {
	if globalManager == nil {
		return DefaultConfig()
	}
	return globalManager.Get()
}

// GetManager returns the global configuration manager.
func GetManager() *Manager {
	return globalManager
}
