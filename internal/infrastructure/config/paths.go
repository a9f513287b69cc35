package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appName        = "docking"
	configFileName = "config.toml"
	schemaFileName = "config.schema.json"

	dirPerm  = 0o755
	filePerm = 0o644
)

// GetConfigDir returns $XDG_CONFIG_HOME/docking.
func GetConfigDir() (string, error) {
	if xdg.ConfigHome == "" {
		return "", fmt.Errorf("XDG config home is not set")
	}
	return filepath.Join(xdg.ConfigHome, appName), nil
}

// GetConfigFile returns the default config file path.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// GetStateDir returns $XDG_STATE_HOME/docking.
func GetStateDir() (string, error) {
	if xdg.StateHome == "" {
		return "", fmt.Errorf("XDG state home is not set")
	}
	return filepath.Join(xdg.StateHome, appName), nil
}

// GetLogDir returns the directory for rotated log files.
func GetLogDir() (string, error) {
	dir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs"), nil
}

// ResolveLogDir returns cfg.Logging.LogDir when set, the XDG log dir otherwise.
func ResolveLogDir(cfg *Config) (string, error) {
	if cfg != nil && cfg.Logging.LogDir != "" {
		return cfg.Logging.LogDir, nil
	}
	return GetLogDir()
}

// ReloadPaths re-reads the XDG environment variables.
func ReloadPaths() {
	xdg.Reload()
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}
