// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hy4ri/gantt-tui/internal/gantt"
	"gopkg.in/yaml.v3"
)

const appName = "gantt-tui"

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "GANTT_TUI_CONFIG"

// ErrInvalidWidth is returned by Validate for non-positive column widths.
var ErrInvalidWidth = errors.New("column widths must be positive")

// Config represents the application configuration.
type Config struct {
	Chart  ChartConfig  `yaml:"chart"`
	UI     UIConfig     `yaml:"ui"`
	Input  InputConfig  `yaml:"input"`
	Export ExportConfig `yaml:"export"`
	Debug  DebugConfig  `yaml:"debug"`
}

// ChartConfig holds grid computation and painting settings.
type ChartConfig struct {
	// WeekStart is "monday" or "sunday". The start day also carries the week marker.
	WeekStart string `yaml:"week_start"`
	NameWidth int    `yaml:"name_width"`
	CellWidth int    `yaml:"cell_width"`
	// Strict reports lines that do not follow the notation instead of skipping them.
	Strict bool `yaml:"strict"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	LivePreview    bool `yaml:"live_preview"`
	PreviewDelayMS int  `yaml:"preview_delay_ms"`
	EditorHeight   int  `yaml:"editor_height"`
}

// InputConfig holds where the editor content comes from on startup.
type InputConfig struct {
	File string `yaml:"file,omitempty"`
}

// ExportConfig holds chart export settings.
type ExportConfig struct {
	Path   string `yaml:"path"`
	Notify bool   `yaml:"notify"`
}

// DebugConfig holds debug logging settings.
type DebugConfig struct {
	LogFile string `yaml:"log_file,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Chart: ChartConfig{
			WeekStart: "monday",
			NameWidth: 24,
			CellWidth: 2,
		},
		UI: UIConfig{
			LivePreview:    true,
			PreviewDelayMS: 300,
			EditorHeight:   8,
		},
		Export: ExportConfig{
			Path:   "gantt.txt",
			Notify: true,
		},
	}
}

// Week returns the configured week convention.
func (c *Config) Week() (gantt.Week, error) {
	return gantt.ParseWeekday(c.Chart.WeekStart)
}

// Validate checks the values that cannot be corrected silently.
func (c *Config) Validate() error {
	if _, err := c.Week(); err != nil {
		return fmt.Errorf("invalid chart.week_start %q: %w", c.Chart.WeekStart, err)
	}
	if c.Chart.NameWidth <= 0 || c.Chart.CellWidth <= 0 {
		return ErrInvalidWidth
	}
	return nil
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", appName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	if override := os.Getenv(EnvConfigPath); override != "" {
		return override, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration at path, falling back to defaults when it is missing.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveFile writes the configuration to path.
func SaveFile(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
