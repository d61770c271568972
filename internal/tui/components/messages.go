package components

// EditorChangedMsg is emitted when the editor text changes.
type EditorChangedMsg struct {
	Text string
}

// FocusPaneMsg is emitted to request focus change between panes.
type FocusPaneMsg struct {
	Pane Pane
}

// HelpClosedMsg is emitted when the help overlay is dismissed.
type HelpClosedMsg struct{}
