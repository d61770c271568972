package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/gantt-tui/internal/gantt"
)

func TestPreviewTimer(t *testing.T) {
	timer := NewPreviewTimer(time.Millisecond, true)

	if cmd := timer.Reset(); cmd == nil {
		t.Fatal("Expected tick command")
	}
	timer.Reset()

	if timer.Fired(PreviewTickMsg{ID: 1}) {
		t.Error("Expected superseded tick not to fire")
	}
	if !timer.Fired(PreviewTickMsg{ID: 2}) {
		t.Error("Expected latest tick to fire")
	}

	if timer.Toggle() {
		t.Fatal("Expected timer disabled")
	}
	if timer.Fired(PreviewTickMsg{ID: 2}) {
		t.Error("Expected toggle to invalidate pending ticks")
	}
	if cmd := timer.Reset(); cmd != nil {
		t.Error("Expected no tick while disabled")
	}
}

func TestPreviewTimer_TickCarriesID(t *testing.T) {
	timer := NewPreviewTimer(time.Millisecond, true)
	msg := timer.Reset()()

	tick, ok := msg.(PreviewTickMsg)
	if !ok {
		t.Fatalf("Expected PreviewTickMsg, got %T", msg)
	}
	if !timer.Fired(tick) {
		t.Error("Expected tick to match the timer")
	}
}

func TestEditor_ChangeNotification(t *testing.T) {
	e := NewEditor("")
	e.Focus()

	_, cmd := e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if e.Value() != "x" {
		t.Fatalf("Expected x, got %q", e.Value())
	}
	if cmd == nil {
		t.Fatal("Expected change command")
	}

	e.Blur()
	_, _ = e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if e.Value() != "x" {
		t.Errorf("Expected blurred editor to ignore keys, got %q", e.Value())
	}
}

func TestEditor_Preload(t *testing.T) {
	text := "2024/01/10：A\n  2024/01/11：B"
	e := NewEditor(text)
	if e.Value() != text {
		t.Errorf("Expected preloaded text, got %q", e.Value())
	}
}

func TestChart_SetDataAndScroll(t *testing.T) {
	c := NewChart(6, 2)
	c.SetSize(6+1+14+4, 10)

	g := gantt.NewEngine(gantt.MondayWeek).Render("2024/01/01 - 2024/01/21：Three weeks")
	c.SetData(g)
	if !strings.Contains(c.View(), "Three") {
		t.Error("Expected task name in view")
	}

	c.ScrollDays(7)
	if c.Offset() != 7 {
		t.Errorf("Expected offset 7, got %d", c.Offset())
	}
	c.ScrollDays(100)
	if c.Offset() != 14 {
		t.Errorf("Expected offset clamped to 14, got %d", c.Offset())
	}
	c.ScrollDays(-100)
	if c.Offset() != 0 {
		t.Errorf("Expected offset clamped to 0, got %d", c.Offset())
	}
	c.ScrollToDay(-1)
	if c.Offset() != 14 {
		t.Errorf("Expected last offset 14, got %d", c.Offset())
	}

	// A shorter grid pulls the offset back in range.
	c.SetData(gantt.NewEngine(gantt.MondayWeek).Render("2024/01/01：One week"))
	if c.Offset() != 0 {
		t.Errorf("Expected offset reset for a single week, got %d", c.Offset())
	}
}

func TestChart_Empty(t *testing.T) {
	c := NewChart(10, 2)
	c.SetSize(60, 10)
	if !c.Grid().Empty() {
		t.Fatal("Expected empty grid")
	}
	if !strings.Contains(c.View(), "No tasks") {
		t.Error("Expected empty chart text")
	}
}

func TestHelp_Close(t *testing.T) {
	h := NewHelp()
	h.SetKeymap([][]string{{"General", ""}, {"ctrl+r", "render"}})
	h.SetSize(80, 24)

	if !strings.Contains(h.View(), "render") {
		t.Error("Expected binding in help view")
	}

	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("Expected close command")
	}
	if _, ok := cmd().(HelpClosedMsg); !ok {
		t.Error("Expected HelpClosedMsg")
	}
}

func TestPane_Next(t *testing.T) {
	if PaneEditor.Next() != PaneChart || PaneChart.Next() != PaneEditor {
		t.Error("Expected panes to alternate")
	}
	if PaneChart.String() != "chart" {
		t.Errorf("Unexpected pane name %q", PaneChart.String())
	}
}
