package gantt

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidWeekStart is returned by ParseWeekday for unsupported names.
var ErrInvalidWeekStart = errors.New("week start must be monday or sunday")

// Week is a week convention. The start weekday anchors the window and
// is also the column that carries the week-boundary marker.
type Week struct {
	Start time.Weekday
}

var (
	// MondayWeek runs Monday to Sunday. It is the default.
	MondayWeek = Week{Start: time.Monday}
	// SundayWeek runs Sunday to Saturday.
	SundayWeek = Week{Start: time.Sunday}
)

// End returns the last weekday of the week.
func (w Week) End() time.Weekday {
	return (w.Start + 6) % 7
}

// IsBoundary reports whether d is the first day of its week.
func (w Week) IsBoundary(d Date) bool {
	return d.Weekday() == w.Start
}

// StartOf returns the first day of the week containing d.
func (w Week) StartOf(d Date) Date {
	return d.AddDays(-int((d.Weekday() - w.Start + 7) % 7))
}

// EndOf returns the last day of the week containing d.
func (w Week) EndOf(d Date) Date {
	return d.AddDays(int((w.End() - d.Weekday() + 7) % 7))
}

// String returns the lower-case name of the start weekday.
func (w Week) String() string {
	return strings.ToLower(w.Start.String())
}

// ParseWeekday returns the week convention named by s.
func ParseWeekday(s string) (Week, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monday", "mon", "":
		return MondayWeek, nil
	case "sunday", "sun":
		return SundayWeek, nil
	}
	return Week{}, ErrInvalidWeekStart
}

// Window is the inclusive, week-aligned span of dates shown in the grid.
type Window struct {
	Start Date `json:"start" yaml:"start"`
	End   Date `json:"end" yaml:"end"`
}

// Days returns the number of days in the window.
func (w Window) Days() int {
	if w.End.Before(w.Start) {
		return 0
	}
	return w.Start.DaysUntil(w.End) + 1
}

// Dates returns every day of the window in order.
func (w Window) Dates() []Date {
	return DatesBetween(w.Start, w.End)
}

// ResolveWindow computes the span covering every task, extended backward to
// the week start and forward to the week end. It returns false for no tasks.
func ResolveWindow(tasks []Task, w Week) (Window, bool) {
	if len(tasks) == 0 {
		return Window{}, false
	}

	rawStart, rawEnd := tasks[0].Start, tasks[0].End
	for _, t := range tasks[1:] {
		if t.Start.Before(rawStart) {
			rawStart = t.Start
		}
		if t.End.After(rawEnd) {
			rawEnd = t.End
		}
	}

	return Window{Start: w.StartOf(rawStart), End: w.EndOf(rawEnd)}, true
}

// DatesBetween returns each day from start to end inclusive.
// It returns an empty slice when start is after end.
func DatesBetween(start, end Date) []Date {
	if start.After(end) {
		return []Date{}
	}
	dates := make([]Date, 0, start.DaysUntil(end)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates
}
