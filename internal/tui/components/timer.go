package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PreviewTickMsg is sent when a preview delay elapses.
type PreviewTickMsg struct {
	ID int
}

// PreviewTimer debounces live preview. Every Reset starts a new delay and
// invalidates the previous ones, so only the last edit of a burst fires.
type PreviewTimer struct {
	id      int
	delay   time.Duration
	enabled bool
}

// NewPreviewTimer creates a timer that fires delay after the last Reset.
func NewPreviewTimer(delay time.Duration, enabled bool) *PreviewTimer {
	return &PreviewTimer{delay: delay, enabled: enabled}
}

// Reset starts a new delay. It returns nil while the timer is disabled.
func (m *PreviewTimer) Reset() tea.Cmd {
	m.id++
	if !m.enabled {
		return nil
	}
	id := m.id
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return PreviewTickMsg{ID: id}
	})
}

// Fired reports whether msg belongs to the latest Reset.
func (m *PreviewTimer) Fired(msg PreviewTickMsg) bool {
	return m.enabled && msg.ID == m.id
}

// Toggle flips live preview and returns the new state.
func (m *PreviewTimer) Toggle() bool {
	m.enabled = !m.enabled
	m.id++
	return m.enabled
}

// Enabled reports whether live preview is on.
func (m *PreviewTimer) Enabled() bool {
	return m.enabled
}
