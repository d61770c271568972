package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/gantt-tui/internal/export"
	"github.com/hy4ri/gantt-tui/internal/gantt"
	"github.com/hy4ri/gantt-tui/internal/logging"
)

type errMsg struct{ err error }
type statusMsg struct{ msg string }

// renderedMsg carries a finished render run.
type renderedMsg struct {
	seq     int
	grid    gantt.Grid
	err     error
	dropped int
	took    time.Duration
}

type exportedMsg struct {
	path   string
	format export.Format
}

// triggerRender starts a render of the current editor text. Any run still in
// flight is superseded: its result will carry an older seq and be dropped.
func (a *App) triggerRender() tea.Cmd {
	a.renderSeq++
	a.rendering = true
	seq := a.renderSeq
	text := a.editor.Value()
	strict := a.engine.Strict
	// Always parse strictly so skipped lines can be counted; the error is
	// only surfaced in strict mode.
	engine := gantt.Engine{Week: a.engine.Week, Strict: true}

	return func() tea.Msg {
		start := time.Now()
		grid, err := engine.RenderStrict(text)
		msg := renderedMsg{seq: seq, grid: grid, took: time.Since(start)}
		if perr, ok := gantt.IsParseError(err); ok {
			msg.dropped = len(perr.Lines)
			if strict {
				msg.err = perr
			}
		}
		return msg
	}
}

// applyRender installs a render result unless a newer render was triggered.
func (a *App) applyRender(msg renderedMsg) {
	if msg.seq != a.renderSeq {
		logging.Printf("render %d superseded by %d, dropped", msg.seq, a.renderSeq)
		return
	}

	a.rendering = false
	a.chart.SetData(msg.grid)
	a.lastTasks = len(msg.grid.Rows)
	a.lastDrops = msg.dropped
	a.err = msg.err
	a.statusMsg = ""

	if msg.grid.Empty() {
		logging.Printf("render %d: no tasks, %d lines skipped", msg.seq, msg.dropped)
		return
	}
	logging.Printf("render %d: %d tasks, window %s - %s, %d lines skipped in %v",
		msg.seq, len(msg.grid.Rows), msg.grid.Window.Start, msg.grid.Window.End, msg.dropped, msg.took)
}

func (a *App) exportOptions() export.Options {
	return export.Options{
		NameWidth: a.config.Chart.NameWidth,
		CellWidth: a.config.Chart.CellWidth,
	}
}

// copyChart copies the whole chart, as plain text, to the clipboard.
func (a *App) copyChart() tea.Cmd {
	g := a.chart.Grid()
	if g.Empty() {
		a.statusMsg = "Nothing to copy"
		return nil
	}

	text := export.PlainText(g, a.exportOptions())
	write := a.writeClipboard
	return func() tea.Msg {
		if err := write(text); err != nil {
			return statusMsg{msg: "Failed to copy: " + err.Error()}
		}
		return statusMsg{msg: fmt.Sprintf("Copied chart (%d tasks)", len(g.Rows))}
	}
}

// exportChart writes the chart to the configured export path. The format
// follows the file extension.
func (a *App) exportChart() tea.Cmd {
	g := a.chart.Grid()
	path, err := a.config.ExportPath()
	if err != nil {
		a.err = err
		return nil
	}
	format := export.FormatForPath(path)
	opts := a.exportOptions()

	return func() tea.Msg {
		if err := export.ToFile(path, g, format, opts); err != nil {
			return errMsg{err}
		}
		return exportedMsg{path: path, format: format}
	}
}

// notifyExported sends the desktop notification for a finished export.
func (a *App) notifyExported(msg exportedMsg) tea.Cmd {
	if !a.config.Export.Notify {
		return nil
	}
	notify := a.notify
	return func() tea.Msg {
		if err := notify("Gantt chart exported", msg.path); err != nil {
			logging.Printf("Failed to send notification for %s: %v", msg.path, err)
		}
		return nil
	}
}
