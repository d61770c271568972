package gantt

import "strconv"

// CellKind identifies what a cell represents.
type CellKind string

const (
	CellHeader CellKind = "header"
	CellName   CellKind = "name"
	CellDate   CellKind = "date"
)

// RowKind identifies the header row and task rows.
type RowKind string

const (
	RowHeader RowKind = "header"
	RowTask   RowKind = "task"
)

// Cell is a render instruction for one row/column intersection.
type Cell struct {
	Kind CellKind `json:"kind" yaml:"kind"`
	Text string   `json:"text,omitempty" yaml:"text,omitempty"`

	// Date is set for header and date cells.
	Date    *Date  `json:"date,omitempty" yaml:"date,omitempty"`
	DateKey string `json:"dateKey,omitempty" yaml:"date_key,omitempty"`

	// Indent is the nesting level of the owning task (name cells).
	Indent int `json:"indent,omitempty" yaml:"indent,omitempty"`

	TopLevel            bool `json:"topLevel,omitempty" yaml:"top_level,omitempty"`
	Highlighted         bool `json:"highlighted,omitempty" yaml:"highlighted,omitempty"`
	TopLevelHighlighted bool `json:"topLevelHighlighted,omitempty" yaml:"top_level_highlighted,omitempty"`
	WeekBoundary        bool `json:"weekBoundary,omitempty" yaml:"week_boundary,omitempty"`
}

// Classes returns the style class names for the cell flags, in a stable order.
func (c Cell) Classes() []string {
	classes := []string{"cell"}
	if c.TopLevel {
		classes = append(classes, "top-level")
	}
	if c.Highlighted {
		classes = append(classes, "highlight")
	}
	if c.TopLevelHighlighted {
		classes = append(classes, "top-level-highlight")
	}
	if c.WeekBoundary {
		classes = append(classes, "week-boundary")
	}
	return classes
}

// Row is the header row or one task row.
type Row struct {
	Kind  RowKind `json:"kind" yaml:"kind"`
	Cells []Cell  `json:"cells" yaml:"cells"`
	Task  *Task   `json:"task,omitempty" yaml:"task,omitempty"`
}

// Classes returns the class names of the i-th cell. Task name cells also
// carry their nesting level.
func (r Row) Classes(i int) []string {
	c := r.Cells[i]
	classes := c.Classes()
	if r.Kind == RowTask && c.Kind == CellName {
		named := []string{"cell", "task-name", "indent-" + strconv.Itoa(c.Indent)}
		return append(named, classes[1:]...)
	}
	return classes
}

// Name returns the leading name cell.
func (r Row) Name() Cell {
	return r.Cells[0]
}

// DateCells returns the cells after the name cell.
func (r Row) DateCells() []Cell {
	return r.Cells[1:]
}

// Grid is the header row plus one row per task.
type Grid struct {
	Window Window `json:"window" yaml:"window"`
	Week   string `json:"weekStart" yaml:"week_start"`
	Dates  []Date `json:"dates" yaml:"dates"`
	Header Row    `json:"header" yaml:"header"`
	Rows   []Row  `json:"rows" yaml:"rows"`
}

// Empty reports whether the grid has no task rows.
func (g Grid) Empty() bool {
	return len(g.Rows) == 0
}

// Tasks returns the tasks of the grid rows, in order.
func (g Grid) Tasks() []Task {
	tasks := make([]Task, 0, len(g.Rows))
	for _, r := range g.Rows {
		if r.Task != nil {
			tasks = append(tasks, *r.Task)
		}
	}
	return tasks
}

// BuildGrid lays tasks out against dates. Every task gets a row even if its
// range falls outside the dates.
func BuildGrid(tasks []Task, dates []Date, w Week) Grid {
	g := Grid{
		Week:   w.String(),
		Dates:  dates,
		Header: headerRow(dates, w),
		Rows:   make([]Row, 0, len(tasks)),
	}
	if len(dates) > 0 {
		g.Window = Window{Start: dates[0], End: dates[len(dates)-1]}
	}
	for i := range tasks {
		g.Rows = append(g.Rows, taskRow(tasks[i], dates, w))
	}
	return g
}

func headerRow(dates []Date, w Week) Row {
	cells := make([]Cell, 0, len(dates)+1)
	cells = append(cells, Cell{Kind: CellName})
	for i := range dates {
		d := dates[i]
		c := Cell{Kind: CellHeader, Date: &d, DateKey: d.Key()}
		if w.IsBoundary(d) {
			c.WeekBoundary = true
			c.Text = d.Label()
		}
		cells = append(cells, c)
	}
	return Row{Kind: RowHeader, Cells: cells}
}

func taskRow(t Task, dates []Date, w Week) Row {
	top := t.TopLevel()
	cells := make([]Cell, 0, len(dates)+1)
	cells = append(cells, Cell{
		Kind:     CellName,
		Text:     t.Description,
		Indent:   t.Indent,
		TopLevel: top,
	})
	for i := range dates {
		d := dates[i]
		active := t.Contains(d)
		cells = append(cells, Cell{
			Kind:                CellDate,
			Date:                &d,
			DateKey:             d.Key(),
			TopLevel:            top,
			Highlighted:         active,
			TopLevelHighlighted: top && active,
			WeekBoundary:        w.IsBoundary(d),
		})
	}
	return Row{Kind: RowTask, Cells: cells, Task: &t}
}
