// Package main is the entry point for the Gantt TUI application.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/gantt-tui/internal/config"
	"github.com/hy4ri/gantt-tui/internal/export"
	"github.com/hy4ri/gantt-tui/internal/gantt"
	"github.com/hy4ri/gantt-tui/internal/logging"
	"github.com/hy4ri/gantt-tui/internal/tui"
	"github.com/mattn/go-isatty"
	goversion "go.hein.dev/go-version"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const helpText = `gantt-tui - Weekly Gantt charts from plain text

USAGE:
    gantt-tui [OPTIONS] [FILE]

    FILE is loaded into the editor. Use - or a pipe to read standard input.

OPTIONS:
    -h, --help              Show this help message
    -v, --version           Show version information
    --version-output FMT    Version output format: json or yaml
    --init                  Create a template config file
    -p, --print             Render once to stdout instead of starting the TUI
    -f, --format FMT        text, ansi, json, yaml, html or tasks
    -o, --out PATH          Write the rendered chart to PATH
    --clipboard             Read the input from the clipboard
    --week-start DAY        monday or sunday
    --strict                Fail on lines that are not tasks

NOTATION:
    2024/01/10：Kickoff                    one-day task
    2024/01/10 - 2024/01/12：Design        date range
      2024/01/11：Review                   two spaces per nesting level

    The separator before the description is the full-width colon (：).

KEYBINDINGS:
    Ctrl+r      Render now
    Tab         Switch between editor and chart
    Ctrl+y      Copy chart to clipboard
    Ctrl+s      Export chart to the configured path
    Ctrl+l      Toggle live preview
    ?           Show help (chart pane)
    h/l, H/L    Scroll by day / week (chart pane)
    Ctrl+c      Quit

CONFIGURATION:
    Config file: ~/.config/gantt-tui/config.yaml (override with GANTT_TUI_CONFIG)
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	var (
		showHelp      bool
		showVersion   bool
		versionOutput string
		initConfig    bool
		printMode     bool
		formatName    string
		outPath       string
		fromClipboard bool
		weekStart     string
		strict        bool
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.StringVar(&versionOutput, "version-output", "json", "Version output format")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&printMode, "print", false, "Render once to stdout")
	flag.BoolVar(&printMode, "p", false, "Render once to stdout (shorthand)")
	flag.StringVar(&formatName, "format", "", "Output format")
	flag.StringVar(&formatName, "f", "", "Output format (shorthand)")
	flag.StringVar(&outPath, "out", "", "Output file")
	flag.StringVar(&outPath, "o", "", "Output file (shorthand)")
	flag.BoolVar(&fromClipboard, "clipboard", false, "Read input from the clipboard")
	flag.StringVar(&weekStart, "week-start", "", "First day of the week")
	flag.BoolVar(&strict, "strict", false, "Fail on lines that are not tasks")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	// Handle flags
	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Print(goversion.FuncWithOutput(false, version, commit, date, versionOutput))
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if weekStart != "" {
		cfg.Chart.WeekStart = weekStart
	}
	if strict {
		cfg.Chart.Strict = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	week, err := cfg.Week()
	if err != nil {
		return err
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	if err := logging.Open(logPath, "GANTT: "); err != nil {
		return err
	}
	defer logging.Close()

	stdinPiped := !isTerminal(os.Stdin)
	input, err := readInput(flag.Args(), fromClipboard, cfg, os.Stdin, stdinPiped)
	if err != nil {
		return err
	}

	if printMode || outPath != "" {
		color := outPath == "" && isTerminal(os.Stdout)
		return renderOnce(os.Stdout, cfg, week, input, formatName, outPath, color)
	}

	return runApp(cfg, week, input, stdinPiped)
}

// readInput picks the editor text: FILE, "-" or piped stdin, the clipboard,
// then the configured input file.
func readInput(args []string, fromClipboard bool, cfg *config.Config, stdin io.Reader, stdinPiped bool) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("expected at most one input file, got %d", len(args))
	}

	switch {
	case len(args) == 1 && args[0] == "-":
		return readAll(stdin)
	case len(args) == 1:
		return readFile(args[0])
	case fromClipboard:
		text, err := clipboard.ReadAll()
		if err != nil {
			return "", fmt.Errorf("failed to read clipboard: %w", err)
		}
		return text, nil
	case stdinPiped:
		return readAll(stdin)
	case cfg.Input.File != "":
		path, err := config.ResolvePath(cfg.Input.File)
		if err != nil {
			return "", err
		}
		return readFile(path)
	}
	return "", nil
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read standard input: %w", err)
	}
	return string(data), nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

// renderOnce renders input and writes it to w, or to outPath when set.
// In strict mode malformed lines fail the run before anything is written.
func renderOnce(w io.Writer, cfg *config.Config, week gantt.Week, input, formatName, outPath string, color bool) error {
	engine := gantt.Engine{Week: week, Strict: cfg.Chart.Strict}
	grid, err := engine.RenderStrict(input)
	if err != nil {
		return fmt.Errorf("malformed input: %w", err)
	}

	format, err := pickFormat(formatName, outPath, color)
	if err != nil {
		return err
	}
	opts := export.Options{
		NameWidth: cfg.Chart.NameWidth,
		CellWidth: cfg.Chart.CellWidth,
		Color:     color,
	}

	if outPath != "" {
		if err := export.ToFile(outPath, grid, format, opts); err != nil {
			return err
		}
		logging.Printf("exported %d tasks as %s to %s", len(grid.Rows), format, outPath)
		return nil
	}
	return export.Write(w, grid, format, opts)
}

// pickFormat resolves the output format: the explicit name, else the output
// file extension, else styled text on a terminal and plain text otherwise.
func pickFormat(name, outPath string, terminal bool) (export.Format, error) {
	switch {
	case name != "":
		return export.ParseFormat(name)
	case outPath != "":
		return export.FormatForPath(outPath), nil
	case terminal:
		return export.FormatANSI, nil
	}
	return export.FormatText, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if err := config.WriteTemplate(path); err != nil {
		return err
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp(cfg *config.Config, week gantt.Week, input string, stdinPiped bool) error {
	app := tui.NewApp(cfg, week, input)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if stdinPiped {
		// Stdin held the input text; read keys from the terminal instead.
		opts = append(opts, tea.WithInputTTY())
	}

	p := tea.NewProgram(app, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
