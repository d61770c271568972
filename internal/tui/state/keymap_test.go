package state

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHandleKey_Global(t *testing.T) {
	km := DefaultKeymap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want string
	}{
		{"render", tea.KeyMsg{Type: tea.KeyCtrlR}, ActionRender},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, ActionSwitchFocus},
		{"copy", tea.KeyMsg{Type: tea.KeyCtrlY}, ActionCopy},
		{"export", tea.KeyMsg{Type: tea.KeyCtrlS}, ActionExport},
		{"live", tea.KeyMsg{Type: tea.KeyCtrlL}, ActionLive},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
	}

	for _, tt := range tests {
		for _, chart := range []bool{false, true} {
			var ks KeyState
			got, ok := ks.HandleKey(tt.msg, km, chart)
			if !ok || got != tt.want {
				t.Errorf("%s (chart=%v): expected %q, got %q (consumed=%v)", tt.name, chart, tt.want, got, ok)
			}
		}
	}
}

func TestHandleKey_EditorPassesThrough(t *testing.T) {
	km := DefaultKeymap()
	for _, k := range []string{"q", "j", "g", "?", "h"} {
		var ks KeyState
		if action, ok := ks.HandleKey(runeKey(k), km, false); ok {
			t.Errorf("Expected %q to reach the editor, got action %q", k, action)
		}
	}
}

func TestHandleKey_Chart(t *testing.T) {
	km := DefaultKeymap()
	tests := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{runeKey("j"), ActionDown},
		{tea.KeyMsg{Type: tea.KeyUp}, ActionUp},
		{runeKey("h"), ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, ActionRight},
		{runeKey("L"), ActionNextWeek},
		{runeKey("["), ActionPrevWeek},
		{runeKey("G"), ActionLastDay},
		{runeKey("?"), ActionHelp},
		{tea.KeyMsg{Type: tea.KeyF1}, ActionHelp},
		{tea.KeyMsg{Type: tea.KeyEsc}, ActionBack},
		{runeKey("q"), ActionQuit},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			var ks KeyState
			got, ok := ks.HandleKey(tt.msg, km, true)
			if !ok || got != tt.want {
				t.Errorf("Expected %q, got %q (consumed=%v)", tt.want, got, ok)
			}
		})
	}
}

func TestHandleKey_GGSequence(t *testing.T) {
	km := DefaultKeymap()
	var ks KeyState

	action, ok := ks.HandleKey(runeKey("g"), km, true)
	if !ok || action != "" || !ks.WaitingG {
		t.Fatalf("Expected first g to be consumed and pending, got %q %v", action, ok)
	}
	action, _ = ks.HandleKey(runeKey("g"), km, true)
	if action != ActionFirstDay {
		t.Errorf("Expected %q, got %q", ActionFirstDay, action)
	}

	ks.HandleKey(runeKey("g"), km, true)
	action, _ = ks.HandleKey(runeKey("j"), km, true)
	if action != ActionDown {
		t.Errorf("Expected interrupted sequence to handle j normally, got %q", action)
	}
	if ks.WaitingG {
		t.Error("Expected sequence to be cleared")
	}
}

func TestHelpItems(t *testing.T) {
	items := DefaultKeymap().HelpItems()
	if len(items) == 0 || items[0][0] != "General" || items[0][1] != "" {
		t.Fatalf("Expected General section first, got %v", items)
	}
	for _, item := range items {
		if len(item) != 2 {
			t.Errorf("Expected key/description pair, got %v", item)
		}
	}
}
