package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/hy4ri/gantt-tui/internal/gantt"
)

func writeTasks(w io.Writer, tasks []gantt.Task, opts Options) error {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	if !opts.Color {
		bold.DisableColor()
		faint.DisableColor()
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("START"), bold.Sprint("END"), bold.Sprint("DAYS"), bold.Sprint("TASK"))
	for _, t := range tasks {
		days := fmt.Sprint(t.Start.DaysUntil(t.End) + 1)
		if t.Inverted() {
			days = faint.Sprint("inverted")
		}
		tbl.AddRow(t.Start, t.End, days, strings.Repeat("  ", t.Indent)+t.Description)
	}
	tbl.RightAlign(2)

	_, err := fmt.Fprintln(w, tbl)
	return err
}
