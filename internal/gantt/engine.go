package gantt

// Engine runs the whole pipeline: parse, resolve the window, expand the
// dates and build the grid. It holds no state between runs.
type Engine struct {
	Week   Week
	Strict bool
}

// NewEngine returns an engine for the given week convention.
func NewEngine(w Week) *Engine {
	return &Engine{Week: w}
}

// Render builds the grid for raw. Lines that do not follow the notation are
// skipped; no tasks yields an empty grid.
func (e *Engine) Render(raw string) Grid {
	return e.build(ParseTasks(raw))
}

// RenderStrict is Render with strict parsing when the engine is strict. The
// grid always covers the lines that matched; the error lists the others.
func (e *Engine) RenderStrict(raw string) (Grid, error) {
	tasks, err := Parser{Strict: e.Strict}.Parse(raw)
	return e.build(tasks), err
}

func (e *Engine) build(tasks []Task) Grid {
	window, ok := ResolveWindow(tasks, e.Week)
	if !ok {
		return Grid{Week: e.Week.String()}
	}
	g := BuildGrid(tasks, window.Dates(), e.Week)
	g.Window = window
	return g
}
