// Package ui paints grids produced by the gantt engine.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/gantt-tui/internal/gantt"
	"github.com/hy4ri/gantt-tui/internal/tui/styles"
	"github.com/mattn/go-runewidth"
)

// EmptyChartText is painted for a grid without tasks.
const EmptyChartText = "No tasks. Write lines like 2024/01/10 - 2024/01/12：Design"

// ChartRenderer paints a grid as terminal text.
type ChartRenderer struct {
	// NameWidth is the width of the frozen task name column.
	NameWidth int
	// CellWidth is the number of terminal columns per day.
	CellWidth int
	// Offset is the index of the first visible day.
	Offset int
	// MaxWidth limits the painted width; 0 paints every day.
	MaxWidth int
}

// NewChartRenderer returns a renderer with the given column widths.
func NewChartRenderer(nameWidth, cellWidth int) *ChartRenderer {
	return &ChartRenderer{NameWidth: nameWidth, CellWidth: cellWidth}
}

// VisibleDays returns how many of total days fit from Offset on.
func (c *ChartRenderer) VisibleDays(total int) int {
	n := total - c.clampOffset(total)
	if c.MaxWidth <= 0 {
		return n
	}
	fit := (c.MaxWidth - c.NameWidth - 1) / c.cellWidth()
	if fit < 1 {
		fit = 1
	}
	if fit < n {
		return fit
	}
	return n
}

// MaxOffset returns the largest useful offset for total days.
func (c *ChartRenderer) MaxOffset(total int) int {
	saved := c.Offset
	c.Offset = 0
	fit := c.VisibleDays(total)
	c.Offset = saved
	if total-fit < 0 {
		return 0
	}
	return total - fit
}

// Render paints the header line and one line per task.
func (c *ChartRenderer) Render(g gantt.Grid) string {
	if g.Empty() {
		return styles.ChartEmpty.Render(EmptyChartText)
	}

	total := len(g.Dates)
	from := c.clampOffset(total)
	to := from + c.VisibleDays(total)

	lines := make([]string, 0, len(g.Rows)+1)
	lines = append(lines, c.renderHeader(g.Header, from, to))
	for _, row := range g.Rows {
		lines = append(lines, c.renderRow(row, from, to))
	}
	return strings.Join(lines, "\n")
}

func (c *ChartRenderer) renderHeader(header gantt.Row, from, to int) string {
	cw := c.cellWidth()
	width := (to - from) * cw
	line := []rune(strings.Repeat(" ", width))

	for i, cell := range header.DateCells()[from:to] {
		if !cell.WeekBoundary || cell.Text == "" {
			continue
		}
		pos := i * cw
		for _, r := range cell.Text {
			if pos >= width {
				break
			}
			line[pos] = r
			pos++
		}
	}

	return strings.Repeat(" ", c.NameWidth) + " " + styles.ChartHeader.Render(string(line))
}

func (c *ChartRenderer) renderRow(row gantt.Row, from, to int) string {
	var b strings.Builder
	b.WriteString(c.renderName(row.Name()))
	b.WriteString(" ")
	for _, cell := range row.DateCells()[from:to] {
		b.WriteString(c.renderCell(cell))
	}
	return b.String()
}

func (c *ChartRenderer) renderName(cell gantt.Cell) string {
	text := strings.Repeat(" ", cell.Indent*gantt.IndentWidth) + cell.Text
	text = truncateString(text, c.NameWidth)
	text = runewidth.FillRight(text, c.NameWidth)
	if cell.TopLevel {
		return styles.ChartNameTop.Render(text)
	}
	return styles.ChartName.Render(text)
}

func (c *ChartRenderer) renderCell(cell gantt.Cell) string {
	cw := c.cellWidth()
	var (
		text  string
		style lipgloss.Style
	)
	switch {
	case cell.TopLevelHighlighted:
		text, style = strings.Repeat(styles.GlyphTopBar, cw), styles.ChartTopHighlight
	case cell.Highlighted:
		text, style = strings.Repeat(styles.GlyphNestedBar, cw), styles.ChartHighlight
	case cell.WeekBoundary:
		text, style = styles.GlyphWeekRule+strings.Repeat(" ", cw-1), styles.ChartWeekRule
	case cell.TopLevel:
		text, style = styles.GlyphTopEmpty+strings.Repeat(" ", cw-1), styles.ChartCellTop
	default:
		text, style = styles.GlyphEmpty+strings.Repeat(" ", cw-1), styles.ChartCell
	}
	return style.Render(text)
}

func (c *ChartRenderer) cellWidth() int {
	if c.CellWidth < 1 {
		return 1
	}
	return c.CellWidth
}

func (c *ChartRenderer) clampOffset(total int) int {
	switch {
	case c.Offset < 0 || total == 0:
		return 0
	case c.Offset >= total:
		return total - 1
	}
	return c.Offset
}
