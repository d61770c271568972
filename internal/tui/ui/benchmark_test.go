package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hy4ri/gantt-tui/internal/gantt"
)

func BenchmarkChartRenderer(b *testing.B) {
	// A quarter of work, one task per line with alternating nesting
	var text strings.Builder
	for i := 0; i < 200; i++ {
		indent := ""
		if i%3 != 0 {
			indent = "  "
		}
		fmt.Fprintf(&text, "%s2024/%02d/%02d - 2024/%02d/%02d：Task %d\n", indent, 1+i%3, 1+i%28, 1+i%3, 1+(i+5)%28, i)
	}
	g := gantt.NewEngine(gantt.MondayWeek).Render(text.String())
	c := &ChartRenderer{NameWidth: 24, CellWidth: 2, MaxWidth: 160}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Render(g)
	}
}
