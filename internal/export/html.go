package export

import (
	"html/template"
	"io"
	"strings"

	"github.com/hy4ri/gantt-tui/internal/gantt"
)

var htmlTemplate = template.Must(template.New("gantt").Funcs(template.FuncMap{
	"classes": func(r gantt.Row, i int) string { return strings.Join(r.Classes(i), " ") },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Gantt{{with .Grid}}{{if .Dates}} {{.Window.Start}} - {{.Window.End}}{{end}}{{end}}</title>
<style>
.table { display: table; border-collapse: collapse; font-family: sans-serif; font-size: 12px; }
.row { display: table-row; }
.cell { display: table-cell; min-width: 14px; height: 20px; border-bottom: 1px solid #eee; white-space: nowrap; }
.task-name { padding-right: 12px; }
.top-level { font-weight: bold; }
.week-boundary { border-left: 1px dashed #bbb; }
.highlight { background: #8fb6f0; }
.top-level-highlight { background: #296fdf; }
{{range $i, $_ := .Indents}}.indent-{{$i}} { padding-left: {{$i}}em; }
{{end}}</style>
</head>
<body>
<div class="table">
{{- with .Grid}}{{if .Rows}}
<div class="row">{{$h := .Header}}{{range $i, $c := .Header.Cells}}<div class="{{classes $h $i}}"{{with $c.DateKey}} data-date="{{.}}"{{end}}>{{$c.Text}}</div>{{end}}</div>
{{- range $r := .Rows}}
<div class="row">{{range $i, $c := $r.Cells}}<div class="{{classes $r $i}}"{{with $c.DateKey}} data-date="{{.}}"{{end}}>{{$c.Text}}</div>{{end}}</div>
{{- end}}{{end}}{{end}}
</div>
</body>
</html>
`))

type htmlData struct {
	Grid    gantt.Grid
	Indents []struct{}
}

func writeHTML(w io.Writer, g gantt.Grid) error {
	deepest := 0
	for _, r := range g.Rows {
		if r.Task != nil && r.Task.Indent > deepest {
			deepest = r.Task.Indent
		}
	}
	return htmlTemplate.Execute(w, htmlData{Grid: g, Indents: make([]struct{}, deepest+1)})
}
