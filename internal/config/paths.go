package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDir returns the directory for files the app writes on its own
// (exports with relative paths, the default debug log).
// Uses XDG_DATA_HOME or defaults to ~/.local/share/gantt-tui/
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	dataDir := filepath.Join(dataHome, appName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dataDir, nil
}

// ResolvePath expands a leading ~ and anchors relative paths in the data directory.
func ResolvePath(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	if p == "~" || len(p) > 1 && p[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, p[1:]), nil
	}
	if filepath.IsAbs(p) {
		return p, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, p), nil
}

// ExportPath returns the resolved target for ctrl+s exports.
func (c *Config) ExportPath() (string, error) {
	return ResolvePath(c.Export.Path)
}

// LogPath returns the resolved debug log path, or "" when logging is off.
func (c *Config) LogPath() (string, error) {
	return ResolvePath(c.Debug.LogFile)
}
