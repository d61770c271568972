package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Template is written by --init.
const Template = `# Gantt TUI Configuration
# Location: ~/.config/gantt-tui/config.yaml

chart:
  # First day of the week: monday or sunday.
  # The first day is also the column that carries the date label.
  week_start: monday
  # Width of the task name column, in terminal cells
  name_width: 24
  # Terminal cells per day
  cell_width: 2
  # Report lines that are not tasks instead of skipping them
  strict: false

ui:
  # Re-render while typing
  live_preview: true
  preview_delay_ms: 300
  editor_height: 8

input:
  # Optional file loaded into the editor on startup
  # file: "~/plans/q1.txt"

export:
  # ctrl+s target; the extension picks the format (.txt .json .yaml .html)
  # Relative paths are kept under ~/.local/share/gantt-tui/
  path: "gantt.txt"
  # Desktop notification after export
  notify: true

debug:
  # log_file: "debug.log"
`

// WriteTemplate writes the config template to path, creating its directory.
func WriteTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(Template), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
