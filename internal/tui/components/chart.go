package components

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/gantt-tui/internal/gantt"
	"github.com/hy4ri/gantt-tui/internal/tui/styles"
	"github.com/hy4ri/gantt-tui/internal/tui/ui"
)

// ChartModel shows the painted grid. Rows scroll in the viewport; days
// scroll in the painter so the name column stays in place.
type ChartModel struct {
	grid     gantt.Grid
	renderer *ui.ChartRenderer
	viewport viewport.Model
	focused  bool
	width    int
	height   int
}

// NewChart creates a chart pane with the given column widths.
func NewChart(nameWidth, cellWidth int) *ChartModel {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle()
	vp.MouseWheelEnabled = true

	c := &ChartModel{
		renderer: ui.NewChartRenderer(nameWidth, cellWidth),
		viewport: vp,
	}
	c.refresh()
	return c
}

// Init implements Component.
func (c *ChartModel) Init() tea.Cmd {
	return nil
}

// Update implements Component. Only mouse wheel events reach the viewport;
// keys are mapped to scroll calls by the app.
func (c *ChartModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if _, ok := msg.(tea.MouseMsg); !ok {
		return c, nil
	}
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return c, cmd
}

// View implements Component.
func (c *ChartModel) View() string {
	style := styles.Pane
	if c.focused {
		style = styles.PaneFocused
	}
	return style.Width(c.width - 2).Render(c.viewport.View())
}

// SetSize implements Component.
func (c *ChartModel) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.viewport.Width = max(width-4, 1)
	c.viewport.Height = max(height-2, 1)
	c.renderer.MaxWidth = c.viewport.Width
	c.refresh()
}

// SetData implements DataReceiver. The new grid replaces the old one wholesale;
// the day offset is kept when it still fits.
func (c *ChartModel) SetData(g gantt.Grid) {
	c.grid = g
	c.refresh()
}

// Grid returns the grid on display.
func (c *ChartModel) Grid() gantt.Grid {
	return c.grid
}

// Focus implements Focusable.
func (c *ChartModel) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// Blur implements Focusable.
func (c *ChartModel) Blur() {
	c.focused = false
}

// Focused implements Focusable.
func (c *ChartModel) Focused() bool {
	return c.focused
}

// ScrollDays moves the first visible day by n, clamped to the grid.
func (c *ChartModel) ScrollDays(n int) {
	c.renderer.Offset += n
	c.refresh()
}

// ScrollToDay moves the first visible day to the start (0) or as far right
// as possible (a negative day).
func (c *ChartModel) ScrollToDay(day int) {
	if day < 0 {
		day = c.renderer.MaxOffset(len(c.grid.Dates))
	}
	c.renderer.Offset = day
	c.refresh()
}

// ScrollRows moves the viewport by n task rows.
func (c *ChartModel) ScrollRows(n int) {
	if n < 0 {
		c.viewport.LineUp(-n)
		return
	}
	c.viewport.LineDown(n)
}

// Offset returns the index of the first visible day.
func (c *ChartModel) Offset() int {
	return c.renderer.Offset
}

// YOffset returns the first visible row.
func (c *ChartModel) YOffset() int {
	return c.viewport.YOffset
}

func (c *ChartModel) refresh() {
	maxOffset := c.renderer.MaxOffset(len(c.grid.Dates))
	if c.renderer.Offset > maxOffset {
		c.renderer.Offset = maxOffset
	}
	if c.renderer.Offset < 0 {
		c.renderer.Offset = 0
	}
	c.viewport.SetContent(c.renderer.Render(c.grid))
}
