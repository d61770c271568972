package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/gantt-tui/internal/tui/styles"
)

// HelpModel renders the help view with keyboard shortcuts.
type HelpModel struct {
	width, height int
	keymap        [][]string
}

// NewHelp creates a new HelpModel.
func NewHelp() *HelpModel {
	return &HelpModel{}
}

// Init implements Component.
func (h *HelpModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (h *HelpModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?", "f1", "q":
			return h, func() tea.Msg {
				return HelpClosedMsg{}
			}
		}
	}
	return h, nil
}

// View implements Component.
func (h *HelpModel) View() string {
	if len(h.keymap) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	// Column 1: General, column 2: Chart
	var col1Content, col2Content strings.Builder
	currentColumn := &col1Content

	for _, item := range h.keymap {
		if len(item) < 2 {
			continue
		}
		key, desc := item[0], item[1]

		if desc == "" && key != "" {
			if key != "General" {
				currentColumn = &col2Content
			}
			currentColumn.WriteString("\n" + styles.SectionHeader.Render(" "+key+" ") + "\n")
			continue
		}
		if key == "" && desc == "" {
			continue
		}

		keyStyle := styles.HelpKey.Copy().Width(12).Align(lipgloss.Right).PaddingRight(2)
		currentColumn.WriteString(keyStyle.Render(key) + styles.HelpDesc.Render(desc) + "\n")
	}

	colWidth := h.width / 2
	if colWidth > 50 {
		colWidth = 50
	}
	columnStyle := lipgloss.NewStyle().Width(colWidth).PaddingLeft(2).PaddingRight(2)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		columnStyle.Render(col1Content.String()),
		columnStyle.Render(col2Content.String()),
	))
	b.WriteString("\n\n")

	notation := []string{
		styles.SectionHeader.Render(" Notation "),
		styles.HelpDesc.Render("YYYY/MM/DD：description            one-day task"),
		styles.HelpDesc.Render("YYYY/MM/DD - YYYY/MM/DD：description  date range"),
		styles.HelpDesc.Render("indent by two spaces per level to nest a task"),
	}
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(strings.Join(notation, "\n")))
	b.WriteString("\n\n")

	footer := styles.HelpDesc.Render("Press ESC or ? to close")
	b.WriteString(lipgloss.NewStyle().Width(h.width).Align(lipgloss.Center).Render(footer))

	return b.String()
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// SetKeymap sets custom help items.
func (h *HelpModel) SetKeymap(items [][]string) {
	h.keymap = items
}
