package components

// Pane represents which pane is currently focused.
type Pane int

const (
	PaneEditor Pane = iota
	PaneChart
)

// String returns the pane name shown in the status bar.
func (p Pane) String() string {
	if p == PaneChart {
		return "chart"
	}
	return "editor"
}

// Next returns the other pane.
func (p Pane) Next() Pane {
	if p == PaneChart {
		return PaneEditor
	}
	return PaneChart
}
