package components

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/gantt-tui/internal/tui/styles"
)

const (
	editorPlaceholder = "2024/01/10 - 2024/01/12：Design\n  2024/01/11：Review"
	editorMaxLines    = 999
)

// EditorModel is the input text box holding the task notation.
type EditorModel struct {
	textarea      textarea.Model
	width, height int
}

// NewEditor creates an editor preloaded with text.
func NewEditor(text string) *EditorModel {
	ta := textarea.New()
	ta.Placeholder = editorPlaceholder
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = editorMaxLines
	ta.Prompt = ""
	ta.SetValue(text)

	return &EditorModel{textarea: ta}
}

// Init implements Component.
func (e *EditorModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements Component. It emits EditorChangedMsg when the text changes.
func (e *EditorModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	before := e.textarea.Value()

	var cmd tea.Cmd
	e.textarea, cmd = e.textarea.Update(msg)

	if after := e.textarea.Value(); after != before {
		changed := func() tea.Msg { return EditorChangedMsg{Text: after} }
		return e, tea.Batch(cmd, changed)
	}
	return e, cmd
}

// View implements Component.
func (e *EditorModel) View() string {
	style := styles.Pane
	if e.textarea.Focused() {
		style = styles.PaneFocused
	}
	return style.Width(e.width - 2).Render(e.textarea.View())
}

// SetSize implements Component.
func (e *EditorModel) SetSize(width, height int) {
	e.width = width
	e.height = height
	// Border and padding take two columns each side and two rows.
	e.textarea.SetWidth(max(width-4, 10))
	e.textarea.SetHeight(max(height-2, 1))
}

// Focus implements Focusable.
func (e *EditorModel) Focus() tea.Cmd {
	return e.textarea.Focus()
}

// Blur implements Focusable.
func (e *EditorModel) Blur() {
	e.textarea.Blur()
}

// Focused implements Focusable.
func (e *EditorModel) Focused() bool {
	return e.textarea.Focused()
}

// Value returns the current text.
func (e *EditorModel) Value() string {
	return e.textarea.Value()
}

// SetValue replaces the text.
func (e *EditorModel) SetValue(text string) {
	e.textarea.SetValue(text)
}
