// Package state holds the key bindings and key sequence tracking of the TUI.
package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action names returned by KeyState.HandleKey.
const (
	ActionRender      = "render"
	ActionSwitchFocus = "switch_focus"
	ActionCopy        = "copy"
	ActionExport      = "export"
	ActionLive        = "toggle_live"
	ActionHelp        = "help"
	ActionBack        = "back"
	ActionQuit        = "quit"
	ActionUp          = "up"
	ActionDown        = "down"
	ActionLeft        = "left"
	ActionRight       = "right"
	ActionPrevWeek    = "prev_week"
	ActionNextWeek    = "next_week"
	ActionFirstDay    = "first_day"
	ActionLastDay     = "last_day"
)

// KeymapData contains all key bindings for the application.
type KeymapData struct {
	// Global, active in both panes
	Render      key.Binding
	SwitchFocus key.Binding
	Copy        key.Binding
	Export      key.Binding
	Live        key.Binding
	ForceQuit   key.Binding

	// Chart pane
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PrevWeek key.Binding
	NextWeek key.Binding
	Last     key.Binding
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// DefaultKeymap returns the default key bindings.
func DefaultKeymap() KeymapData {
	return KeymapData{
		Render:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "render")),
		SwitchFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "editor/chart")),
		Copy:        key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy chart")),
		Export:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "export")),
		Live:        key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "live preview")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Left:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "previous day")),
		Right:    key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next day")),
		PrevWeek: key.NewBinding(key.WithKeys("H", "["), key.WithHelp("H/[", "previous week")),
		NextWeek: key.NewBinding(key.WithKeys("L", "]"), key.WithHelp("L/]", "next week")),
		Last:     key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "last day")),
		Help:     key.NewBinding(key.WithKeys("?", "f1"), key.WithHelp("?", "help")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeymapData) ShortHelp() []key.Binding {
	return []key.Binding{k.Render, k.SwitchFocus, k.Copy, k.Export, k.Help, k.ForceQuit}
}

// FullHelp implements help.KeyMap.
func (k KeymapData) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Render, k.SwitchFocus, k.Copy, k.Export, k.Live, k.ForceQuit},
		{k.Up, k.Down, k.Left, k.Right, k.PrevWeek, k.NextWeek, k.Last, k.Help, k.Back, k.Quit},
	}
}

// KeyState tracks multi-key sequences (like 'gg').
type KeyState struct {
	LastKey  string
	WaitingG bool // Waiting for second 'g' in 'gg'
}

// HandleKey maps a key press to an action. Global bindings always apply;
// the chart bindings only when chartFocused is set, so typing in the editor
// is never swallowed. It returns the action name and whether the key was
// consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, keymap KeymapData, chartFocused bool) (string, bool) {
	switch {
	case key.Matches(msg, keymap.ForceQuit):
		ks.Reset()
		return ActionQuit, true
	case key.Matches(msg, keymap.Render):
		return ActionRender, true
	case key.Matches(msg, keymap.SwitchFocus):
		ks.Reset()
		return ActionSwitchFocus, true
	case key.Matches(msg, keymap.Copy):
		return ActionCopy, true
	case key.Matches(msg, keymap.Export):
		return ActionExport, true
	case key.Matches(msg, keymap.Live):
		return ActionLive, true
	}

	if !chartFocused {
		return "", false
	}

	k := msg.String()

	// Handle 'gg' sequence (go to first day)
	if ks.WaitingG {
		ks.WaitingG = false
		if k == "g" {
			return ActionFirstDay, true
		}
	}
	if k == "g" {
		ks.WaitingG = true
		ks.LastKey = k
		return "", true
	}

	switch {
	case key.Matches(msg, keymap.Up):
		return ActionUp, true
	case key.Matches(msg, keymap.Down):
		return ActionDown, true
	case key.Matches(msg, keymap.Left):
		return ActionLeft, true
	case key.Matches(msg, keymap.Right):
		return ActionRight, true
	case key.Matches(msg, keymap.PrevWeek):
		return ActionPrevWeek, true
	case key.Matches(msg, keymap.NextWeek):
		return ActionNextWeek, true
	case key.Matches(msg, keymap.Last):
		return ActionLastDay, true
	case key.Matches(msg, keymap.Help):
		return ActionHelp, true
	case key.Matches(msg, keymap.Back):
		return ActionBack, true
	case key.Matches(msg, keymap.Quit):
		return ActionQuit, true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.LastKey = ""
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k KeymapData) HelpItems() [][]string {
	items := [][]string{{"General", ""}}
	for _, b := range []key.Binding{k.Render, k.SwitchFocus, k.Copy, k.Export, k.Live, k.ForceQuit} {
		items = append(items, []string{b.Help().Key, b.Help().Desc})
	}
	items = append(items, []string{"", ""}, []string{"Chart", ""})
	for _, b := range []key.Binding{k.Up, k.Down, k.Left, k.Right, k.PrevWeek, k.NextWeek} {
		items = append(items, []string{b.Help().Key, b.Help().Desc})
	}
	items = append(items,
		[]string{"gg/" + k.Last.Help().Key, "first/last day"},
		[]string{k.Help.Help().Key + "/f1", "toggle help"},
		[]string{k.Back.Help().Key, "back to editor"},
		[]string{k.Quit.Help().Key, "quit"},
	)
	return items
}
