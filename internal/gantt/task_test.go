package gantt

import (
	"errors"
	"testing"
	"time"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantOK   bool
		start    Date
		end      Date
		desc     string
		indent   int
		inverted bool
	}{
		{
			name:   "single date",
			line:   "2024/01/10：Design",
			wantOK: true,
			start:  NewDate(2024, time.January, 10),
			end:    NewDate(2024, time.January, 10),
			desc:   "Design",
		},
		{
			name:   "two spaces indent one level",
			line:   "  2024/01/12：Docs",
			wantOK: true,
			start:  NewDate(2024, time.January, 12),
			end:    NewDate(2024, time.January, 12),
			desc:   "Docs",
			indent: 1,
		},
		{
			name:   "odd indent rounds down",
			line:   "   2024/01/12：Docs",
			wantOK: true,
			start:  NewDate(2024, time.January, 12),
			end:    NewDate(2024, time.January, 12),
			desc:   "Docs",
			indent: 1,
		},
		{
			name:   "single space is top level",
			line:   " 2024/01/12：Docs",
			wantOK: true,
			start:  NewDate(2024, time.January, 12),
			end:    NewDate(2024, time.January, 12),
			desc:   "Docs",
		},
		{
			name:   "tabs count as whitespace",
			line:   "\t\t\t\t2024/01/12：Deep",
			wantOK: true,
			start:  NewDate(2024, time.January, 12),
			end:    NewDate(2024, time.January, 12),
			desc:   "Deep",
			indent: 2,
		},
		{
			name:   "ideographic spaces count as whitespace",
			line:   "　　2024/01/12：全角",
			wantOK: true,
			start:  NewDate(2024, time.January, 12),
			end:    NewDate(2024, time.January, 12),
			desc:   "全角",
			indent: 1,
		},
		{
			name:   "date range",
			line:   "2024/01/10 - 2024/01/15：Build",
			wantOK: true,
			start:  NewDate(2024, time.January, 10),
			end:    NewDate(2024, time.January, 15),
			desc:   "Build",
		},
		{
			name:   "range without separator text and padded description",
			line:   "2024/01/102024/01/15：  Build  ",
			wantOK: true,
			start:  NewDate(2024, time.January, 10),
			end:    NewDate(2024, time.January, 15),
			desc:   "Build",
		},
		{
			name:   "last date before separator is the end",
			line:   "2024/01/10 2024/01/12 2024/01/14：Three",
			wantOK: true,
			start:  NewDate(2024, time.January, 10),
			end:    NewDate(2024, time.January, 14),
			desc:   "Three",
		},
		{
			name:   "date after separator belongs to description",
			line:   "2024/01/10：until 2024/01/20",
			wantOK: true,
			start:  NewDate(2024, time.January, 10),
			end:    NewDate(2024, time.January, 10),
			desc:   "until 2024/01/20",
		},
		{
			name:     "inverted range is preserved",
			line:     "2024/01/15～2024/01/10：Backwards",
			wantOK:   true,
			start:    NewDate(2024, time.January, 15),
			end:      NewDate(2024, time.January, 10),
			desc:     "Backwards",
			inverted: true,
		},
		{
			name:   "non-calendar date rolls over",
			line:   "2024/02/30：Leap",
			wantOK: true,
			start:  NewDate(2024, time.March, 1),
			end:    NewDate(2024, time.March, 1),
			desc:   "Leap",
		},
		{
			name:   "blank description after trim",
			line:   "2024/01/10：   ",
			wantOK: true,
			start:  NewDate(2024, time.January, 10),
			end:    NewDate(2024, time.January, 10),
		},
		{name: "ascii colon", line: "2024/01/10: Design"},
		{name: "no separator", line: "2024/01/10 Design"},
		{name: "nothing after separator", line: "2024/01/10："},
		{name: "no date", line: "Design：soon"},
		{name: "short month", line: "2024/1/10：Design"},
		{name: "empty", line: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, ok := ParseLine(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%v, got %v (%+v)", tt.wantOK, ok, task)
			}
			if !ok {
				return
			}
			if !task.Start.Equal(tt.start) {
				t.Errorf("Expected start %s, got %s", tt.start, task.Start)
			}
			if !task.End.Equal(tt.end) {
				t.Errorf("Expected end %s, got %s", tt.end, task.End)
			}
			if task.Description != tt.desc {
				t.Errorf("Expected description %q, got %q", tt.desc, task.Description)
			}
			if task.Indent != tt.indent {
				t.Errorf("Expected indent %d, got %d", tt.indent, task.Indent)
			}
			if task.Inverted() != tt.inverted {
				t.Errorf("Expected inverted=%v", tt.inverted)
			}
		})
	}
}

func TestParseTasks(t *testing.T) {
	input := "2024/01/10：Design\n  2024/01/12：Docs"
	tasks := ParseTasks(input)
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(tasks))
	}

	want := []Task{
		{Start: NewDate(2024, 1, 10), End: NewDate(2024, 1, 10), Description: "Design", Indent: 0},
		{Start: NewDate(2024, 1, 12), End: NewDate(2024, 1, 12), Description: "Docs", Indent: 1},
	}
	for i := range want {
		if tasks[i] != want[i] {
			t.Errorf("Task %d: expected %+v, got %+v", i, want[i], tasks[i])
		}
	}
}

func TestParseTasks_SkipsGarbageAndKeepsOrder(t *testing.T) {
	input := "# plan\r\n2024/03/01：B\r\n\r\nrandom text\n2024/02/01 - 2024/02/05：A\n"
	tasks := ParseTasks(input)
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Description != "B" || tasks[1].Description != "A" {
		t.Errorf("Expected encounter order [B A], got [%s %s]", tasks[0].Description, tasks[1].Description)
	}
}

func TestParseTasks_Empty(t *testing.T) {
	tasks := ParseTasks("")
	if tasks == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(tasks) != 0 {
		t.Errorf("Expected no tasks, got %d", len(tasks))
	}
}

func TestParser_Strict(t *testing.T) {
	input := "2024/01/10：Design\n\nnot a task\n  \n2024/01/11 Docs\n2024/01/12：Build"

	tasks, err := Parser{}.Parse(input)
	if err != nil {
		t.Fatalf("Permissive parse should not fail, got %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(tasks))
	}

	tasks, err = Parser{Strict: true}.Parse(input)
	if len(tasks) != 2 {
		t.Errorf("Strict parse should still return matching tasks, got %d", len(tasks))
	}
	pe, ok := IsParseError(err)
	if !ok {
		t.Fatalf("Expected *ParseError, got %v", err)
	}
	if len(pe.Lines) != 2 {
		t.Fatalf("Expected 2 rejected lines, got %d", len(pe.Lines))
	}
	if pe.Lines[0].Line != 3 || pe.Lines[0].Text != "not a task" {
		t.Errorf("Unexpected first rejected line: %+v", pe.Lines[0])
	}
	if pe.Lines[1].Line != 5 {
		t.Errorf("Expected second rejected line 5, got %d", pe.Lines[1].Line)
	}

	var le *LineError
	if !errors.As(err, &le) {
		t.Error("Expected errors.As to find a *LineError")
	}
}

func TestTask_Contains(t *testing.T) {
	task := Task{Start: NewDate(2024, 1, 10), End: NewDate(2024, 1, 12)}
	tests := []struct {
		day  int
		want bool
	}{
		{9, false},
		{10, true},
		{11, true},
		{12, true},
		{13, false},
	}
	for _, tt := range tests {
		if got := task.Contains(NewDate(2024, 1, tt.day)); got != tt.want {
			t.Errorf("Contains(1/%d): expected %v, got %v", tt.day, tt.want, got)
		}
	}

	inverted := Task{Start: NewDate(2024, 1, 12), End: NewDate(2024, 1, 10)}
	for day := 9; day <= 13; day++ {
		if inverted.Contains(NewDate(2024, 1, day)) {
			t.Errorf("Inverted task should contain no date, contains 1/%d", day)
		}
	}
}
