package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/gantt-tui/internal/tui/components"
	"github.com/hy4ri/gantt-tui/internal/tui/state"
	"github.com/hy4ri/gantt-tui/internal/tui/styles"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.MouseMsg:
		if a.focusedPane == components.PaneChart {
			_, cmd := a.chart.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case components.EditorChangedMsg:
		return a, a.preview.Reset()

	case components.PreviewTickMsg:
		if a.preview.Fired(msg) {
			return a, a.triggerRender()
		}
		return a, nil

	case components.HelpClosedMsg:
		a.showHelp = false
		return a, nil

	case renderedMsg:
		a.applyRender(msg)
		return a, nil

	case exportedMsg:
		a.err = nil
		a.statusMsg = "Exported " + string(msg.format) + " to " + msg.path
		return a, a.notifyExported(msg)

	case errMsg:
		a.err = msg.err
		return a, nil

	case statusMsg:
		a.statusMsg = msg.msg
		return a, nil
	}

	// Cursor blink and other editor internals.
	_, cmd := a.editor.Update(msg)
	return a, cmd
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.showHelp {
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		_, cmd := a.helpComp.Update(msg)
		return a, cmd
	}

	action, ok := a.keyState.HandleKey(msg, a.keymap, a.focusedPane == components.PaneChart)
	if !ok {
		if a.focusedPane == components.PaneEditor {
			_, cmd := a.editor.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, a.handleAction(action)
}

func (a *App) handleAction(action string) tea.Cmd {
	switch action {
	case state.ActionQuit:
		return tea.Quit
	case state.ActionRender:
		a.statusMsg = "Rendering..."
		return a.triggerRender()
	case state.ActionSwitchFocus:
		return a.setFocus(a.focusedPane.Next())
	case state.ActionBack:
		return a.setFocus(components.PaneEditor)
	case state.ActionCopy:
		return a.copyChart()
	case state.ActionExport:
		return a.exportChart()
	case state.ActionLive:
		if a.preview.Toggle() {
			a.statusMsg = "Live preview on"
			return a.triggerRender()
		}
		a.statusMsg = "Live preview off"
	case state.ActionHelp:
		a.showHelp = true
	case state.ActionUp:
		a.chart.ScrollRows(-1)
	case state.ActionDown:
		a.chart.ScrollRows(1)
	case state.ActionLeft:
		a.chart.ScrollDays(-1)
	case state.ActionRight:
		a.chart.ScrollDays(1)
	case state.ActionPrevWeek:
		a.chart.ScrollDays(-7)
	case state.ActionNextWeek:
		a.chart.ScrollDays(7)
	case state.ActionFirstDay:
		a.chart.ScrollToDay(0)
	case state.ActionLastDay:
		a.chart.ScrollToDay(-1)
	}
	return nil
}

// layout sizes the panes: title line, editor, chart, status bar.
func (a *App) layout() {
	frame := styles.App.GetHorizontalFrameSize()
	width := a.width - frame

	editorHeight := a.config.UI.EditorHeight + 2
	chartHeight := a.height - editorHeight - lipgloss.Height(a.renderTitle()) - 1
	if chartHeight < 4 {
		chartHeight = 4
	}

	a.editor.SetSize(width, editorHeight)
	a.chart.SetSize(width, chartHeight)
	a.helpComp.SetSize(a.width, a.height)
	a.help.Width = width / 2
}
