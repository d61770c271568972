package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/gantt-tui/internal/tui/components"
	"github.com/hy4ri/gantt-tui/internal/tui/styles"
)

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}
	if a.showHelp {
		return a.helpComp.View()
	}

	return styles.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		a.renderTitle(),
		a.editor.View(),
		a.chart.View(),
		a.renderStatusBar(),
	))
}

func (a *App) renderTitle() string {
	title := styles.Title.Render("Gantt")
	g := a.chart.Grid()
	if g.Empty() {
		return title
	}
	span := fmt.Sprintf("  %s - %s  %d days  %s weeks",
		g.Window.Start, g.Window.End, g.Window.Days(), g.Week)
	return title + styles.Subtitle.Render(span)
}

// renderStatusBar renders the bottom status bar.
func (a *App) renderStatusBar() string {
	// Left side: error, status message or render summary
	var left string
	switch {
	case a.err != nil:
		errStr := strings.ReplaceAll(a.err.Error(), "\n", " ")
		left = styles.StatusBarError.Render("Error: " + errStr)
	case a.statusMsg != "":
		left = styles.StatusBarSuccess.Render(strings.ReplaceAll(a.statusMsg, "\n", " "))
	case a.lastDrops > 0:
		left = styles.StatusBarWarning.Render(a.summary())
	default:
		left = styles.StatusBarText.Render(a.summary())
	}

	mode := a.focusedPane.String()
	if a.preview.Enabled() {
		mode += " · live"
	}
	right := styles.StatusBarKey.Render(mode) + "  " + a.help.View(a.keymap)

	padding := styles.StatusBar.GetHorizontalFrameSize()
	width := a.width - styles.App.GetHorizontalFrameSize()

	// Ensure left doesn't overwhelm right
	maxLeftWidth := width - lipgloss.Width(right) - padding - 2
	if lipgloss.Width(left) > maxLeftWidth && maxLeftWidth > 10 {
		left = lipgloss.NewStyle().MaxWidth(maxLeftWidth).Render(left)
	}

	spacing := width - lipgloss.Width(left) - lipgloss.Width(right) - padding
	if spacing < 0 {
		spacing = 0
	}
	return styles.StatusBar.Width(width - padding).Render(left + strings.Repeat(" ", spacing) + right)
}

func (a *App) summary() string {
	switch {
	case a.rendering:
		return "Rendering..."
	case a.lastTasks == 0:
		return "No tasks"
	case a.lastDrops > 0:
		return fmt.Sprintf("%d tasks, %d lines skipped", a.lastTasks, a.lastDrops)
	}
	return fmt.Sprintf("%d tasks", a.lastTasks)
}

// Focused returns the focused pane.
func (a *App) Focused() components.Pane {
	return a.focusedPane
}
