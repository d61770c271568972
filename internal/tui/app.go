// Package tui provides the terminal user interface: a notation editor on top
// and the painted grid below.
package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/gantt-tui/internal/config"
	"github.com/hy4ri/gantt-tui/internal/gantt"
	"github.com/hy4ri/gantt-tui/internal/tui/components"
	"github.com/hy4ri/gantt-tui/internal/tui/state"
	"github.com/hy4ri/gantt-tui/internal/tui/styles"
)

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	config *config.Config
	engine gantt.Engine

	// View state
	focusedPane components.Pane
	showHelp    bool

	// Render sequencing. A result is applied only if it carries the latest seq.
	renderSeq int
	rendering bool
	lastTasks int
	lastDrops int
	preview   *components.PreviewTimer

	// UI state
	err       error
	statusMsg string
	width     int
	height    int

	// Components
	keyState state.KeyState
	keymap   state.KeymapData
	editor   *components.EditorModel
	chart    *components.ChartModel
	helpComp *components.HelpModel
	help     help.Model

	// Side effects, replaced in tests
	writeClipboard func(string) error
	notify         func(title, message string) error
}

// NewApp creates a new App instance with the editor preloaded with input.
func NewApp(cfg *config.Config, week gantt.Week, input string) *App {
	h := help.New()
	h.Styles.ShortKey = styles.StatusBarKey
	h.Styles.ShortDesc = styles.StatusBarText
	h.Styles.ShortSeparator = styles.StatusBarText

	delay := time.Duration(cfg.UI.PreviewDelayMS) * time.Millisecond

	app := &App{
		config:      cfg,
		engine:      gantt.Engine{Week: week, Strict: cfg.Chart.Strict},
		focusedPane: components.PaneEditor,
		preview:     components.NewPreviewTimer(delay, cfg.UI.LivePreview),
		keymap:      state.DefaultKeymap(),
		editor:      components.NewEditor(input),
		chart:       components.NewChart(cfg.Chart.NameWidth, cfg.Chart.CellWidth),
		helpComp:    components.NewHelp(),
		help:        h,

		writeClipboard: clipboard.WriteAll,
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}

	app.helpComp.SetKeymap(app.keymap.HelpItems())
	app.editor.Focus()

	return app
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.editor.Init(),
		a.triggerRender(),
	)
}

// Grid returns the grid currently on display.
func (a *App) Grid() gantt.Grid {
	return a.chart.Grid()
}

// setFocus moves keyboard focus to pane p.
func (a *App) setFocus(p components.Pane) tea.Cmd {
	a.focusedPane = p
	a.keyState.Reset()
	if p == components.PaneChart {
		a.editor.Blur()
		return a.chart.Focus()
	}
	a.chart.Blur()
	return a.editor.Focus()
}
