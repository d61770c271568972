// Package export writes grids in the formats offered by the CLI and TUI.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/hy4ri/gantt-tui/internal/gantt"
	"github.com/hy4ri/gantt-tui/internal/tui/ui"
	"gopkg.in/yaml.v3"
)

// Format is an export format name.
type Format string

const (
	FormatText  Format = "text"
	FormatANSI  Format = "ansi"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatHTML  Format = "html"
	FormatTasks Format = "tasks"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatANSI, FormatJSON, FormatYAML, FormatHTML, FormatTasks}

// ErrUnknownFormat is returned for format names that are not supported.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat returns the format named s.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (one of %s)", ErrUnknownFormat, s, formatList())
}

// FormatForPath picks a format from the file extension, defaulting to text.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".html", ".htm":
		return FormatHTML
	case ".ans":
		return FormatANSI
	}
	return FormatText
}

// Options controls the painted formats.
type Options struct {
	NameWidth int
	CellWidth int
	// Color keeps terminal styling in the tasks table.
	Color bool
}

// Write encodes g to w in format f.
func Write(w io.Writer, g gantt.Grid, f Format, opts Options) error {
	switch f {
	case FormatText:
		_, err := fmt.Fprintln(w, PlainText(g, opts))
		return err
	case FormatANSI:
		_, err := fmt.Fprintln(w, paint(g, opts))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(g); err != nil {
			return err
		}
		return enc.Close()
	case FormatHTML:
		return writeHTML(w, g)
	case FormatTasks:
		return writeTasks(w, g.Tasks(), opts)
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, f)
}

// ToFile writes g to path, creating or truncating it.
func ToFile(path string, g gantt.Grid, f Format, opts Options) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close export file: %w", cerr)
		}
	}()

	if err := Write(file, g, f, opts); err != nil {
		return fmt.Errorf("failed to write %s export: %w", f, err)
	}
	return nil
}

// PlainText paints g without terminal escape sequences.
func PlainText(g gantt.Grid, opts Options) string {
	return ansi.Strip(paint(g, opts))
}

func paint(g gantt.Grid, opts Options) string {
	return ui.NewChartRenderer(opts.NameWidth, opts.CellWidth).Render(g)
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
