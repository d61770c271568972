package gantt

import (
	"testing"
	"time"
)

func TestDatesBetween(t *testing.T) {
	d := NewDate(2024, 1, 10)
	if got := DatesBetween(d, d); len(got) != 1 || !got[0].Equal(d) {
		t.Fatalf("Expected exactly [%s], got %v", d, got)
	}

	start, end := NewDate(2024, 2, 26), NewDate(2024, 3, 3)
	got := DatesBetween(start, end)
	if len(got) != start.DaysUntil(end)+1 {
		t.Fatalf("Expected %d dates, got %d", start.DaysUntil(end)+1, len(got))
	}
	for i := 1; i < len(got); i++ {
		if !got[i].Equal(got[i-1].AddDays(1)) {
			t.Errorf("Gap between %s and %s", got[i-1], got[i])
		}
	}
	if !got[3].Equal(NewDate(2024, 2, 29)) {
		t.Errorf("Expected leap day at index 3, got %s", got[3])
	}

	if got := DatesBetween(end, start); len(got) != 0 {
		t.Errorf("Expected no dates for inverted bounds, got %d", len(got))
	}
}

func TestResolveWindow(t *testing.T) {
	tests := []struct {
		name  string
		week  Week
		tasks []Task
		start Date
		end   Date
	}{
		{
			name: "midweek tasks expand to monday through sunday",
			week: MondayWeek,
			tasks: []Task{
				{Start: NewDate(2024, 1, 10), End: NewDate(2024, 1, 10)},
				{Start: NewDate(2024, 1, 12), End: NewDate(2024, 1, 12)},
			},
			start: NewDate(2024, 1, 8),
			end:   NewDate(2024, 1, 14),
		},
		{
			name:  "sunday start goes back six days",
			week:  MondayWeek,
			tasks: []Task{{Start: NewDate(2024, 1, 14), End: NewDate(2024, 1, 14)}},
			start: NewDate(2024, 1, 8),
			end:   NewDate(2024, 1, 14),
		},
		{
			name:  "already aligned",
			week:  MondayWeek,
			tasks: []Task{{Start: NewDate(2024, 1, 8), End: NewDate(2024, 1, 21)}},
			start: NewDate(2024, 1, 8),
			end:   NewDate(2024, 1, 21),
		},
		{
			name: "min and max come from different tasks",
			week: MondayWeek,
			tasks: []Task{
				{Start: NewDate(2024, 1, 20), End: NewDate(2024, 2, 2)},
				{Start: NewDate(2024, 1, 3), End: NewDate(2024, 1, 5)},
			},
			start: NewDate(2024, 1, 1),
			end:   NewDate(2024, 2, 4),
		},
		{
			name:  "sunday week",
			week:  SundayWeek,
			tasks: []Task{{Start: NewDate(2024, 1, 10), End: NewDate(2024, 1, 12)}},
			start: NewDate(2024, 1, 7),
			end:   NewDate(2024, 1, 13),
		},
		{
			name:  "crosses year boundary",
			week:  MondayWeek,
			tasks: []Task{{Start: NewDate(2023, 12, 31), End: NewDate(2024, 1, 1)}},
			start: NewDate(2023, 12, 25),
			end:   NewDate(2024, 1, 7),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := ResolveWindow(tt.tasks, tt.week)
			if !ok {
				t.Fatal("Expected a window")
			}
			if !w.Start.Equal(tt.start) || !w.End.Equal(tt.end) {
				t.Errorf("Expected %s..%s, got %s..%s", tt.start, tt.end, w.Start, w.End)
			}
			if w.Days()%7 != 0 {
				t.Errorf("Expected whole weeks, got %d days", w.Days())
			}
		})
	}
}

func TestResolveWindow_AlwaysAligned(t *testing.T) {
	for _, week := range []Week{MondayWeek, SundayWeek} {
		base := NewDate(2024, 1, 1)
		for i := 0; i < 30; i++ {
			for span := 0; span < 10; span++ {
				task := Task{Start: base.AddDays(i), End: base.AddDays(i + span)}
				w, _ := ResolveWindow([]Task{task}, week)
				if w.Start.Weekday() != week.Start {
					t.Fatalf("%s week: window %s starts on %s", week, w.Start, w.Start.Weekday())
				}
				if w.End.Weekday() != week.End() {
					t.Fatalf("%s week: window %s ends on %s", week, w.End, w.End.Weekday())
				}
				if w.Start.After(task.Start) || w.End.Before(task.End) {
					t.Fatalf("%s week: window %s..%s clips task %s..%s", week, w.Start, w.End, task.Start, task.End)
				}
				if task.Start.DaysUntil(w.Start) <= -7 || w.End.DaysUntil(task.End) <= -7 {
					t.Fatalf("%s week: window %s..%s extends more than a week", week, w.Start, w.End)
				}
			}
		}
	}
}

func TestResolveWindow_Empty(t *testing.T) {
	if _, ok := ResolveWindow(nil, MondayWeek); ok {
		t.Error("Expected no window for zero tasks")
	}
}

func TestWeek(t *testing.T) {
	if MondayWeek.End() != time.Sunday {
		t.Errorf("Expected monday week to end on sunday, got %s", MondayWeek.End())
	}
	if SundayWeek.End() != time.Saturday {
		t.Errorf("Expected sunday week to end on saturday, got %s", SundayWeek.End())
	}

	tests := []struct {
		in      string
		want    Week
		wantErr bool
	}{
		{"monday", MondayWeek, false},
		{"Mon", MondayWeek, false},
		{"", MondayWeek, false},
		{" SUNDAY ", SundayWeek, false},
		{"sun", SundayWeek, false},
		{"friday", Week{}, true},
	}
	for _, tt := range tests {
		got, err := ParseWeekday(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseWeekday(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWeekday(%q): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}
