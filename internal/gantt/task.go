package gantt

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Separator is the fullwidth colon between the dates and the description.
const Separator = "："

// IndentWidth is the number of leading whitespace characters per nesting level.
const IndentWidth = 2

var lineRegex = regexp.MustCompile(`(\d{4}/\d{2}/\d{2}).*?(\d{4}/\d{2}/\d{2})?` + Separator + `(.+)`)

// Task is one parsed line of the notation.
type Task struct {
	Start       Date   `json:"start" yaml:"start"`
	End         Date   `json:"end" yaml:"end"`
	Description string `json:"description" yaml:"description"`
	Indent      int    `json:"indent" yaml:"indent"`
}

// TopLevel reports whether the task has no nesting.
func (t Task) TopLevel() bool {
	return t.Indent == 0
}

// Contains reports whether d lies in [Start, End]. Inverted tasks contain no date.
func (t Task) Contains(d Date) bool {
	return !d.Before(t.Start) && !d.After(t.End)
}

// Inverted reports whether the written end date precedes the start date.
func (t Task) Inverted() bool {
	return t.End.Before(t.Start)
}

// ParseLine extracts a task from a single line.
// It returns false when the line does not follow the notation.
func ParseLine(line string) (Task, bool) {
	m := lineRegex.FindStringSubmatch(line)
	if m == nil {
		return Task{}, false
	}

	start := parseDate(m[1])
	end := start
	if m[2] != "" {
		end = parseDate(m[2])
	}

	return Task{
		Start:       start,
		End:         end,
		Description: strings.TrimSpace(m[3]),
		Indent:      indentLevel(line),
	}, true
}

// ParseTasks parses every line of text and keeps the ones that match, in order.
func ParseTasks(text string) []Task {
	tasks, _ := Parser{}.Parse(text)
	return tasks
}

// Parser parses a whole text blob.
type Parser struct {
	// Strict makes Parse report non-blank lines that do not match.
	Strict bool
}

// Parse returns the tasks found in text. In strict mode the returned error is
// a *ParseError listing the rejected lines; the matching tasks are still returned.
func (p Parser) Parse(text string) ([]Task, error) {
	tasks := make([]Task, 0)
	var rejected []LineError

	for i, line := range strings.Split(text, "\n") {
		if task, ok := ParseLine(line); ok {
			tasks = append(tasks, task)
			continue
		}
		if p.Strict && strings.TrimSpace(line) != "" {
			rejected = append(rejected, LineError{Line: i + 1, Text: strings.TrimRight(line, "\r")})
		}
	}

	if len(rejected) > 0 {
		return tasks, &ParseError{Lines: rejected}
	}
	return tasks, nil
}

// parseDate converts a YYYY/MM/DD token. The regex guarantees the digits.
func parseDate(token string) Date {
	year, _ := strconv.Atoi(token[0:4])
	month, _ := strconv.Atoi(token[5:7])
	day, _ := strconv.Atoi(token[8:10])
	return NewDate(year, time.Month(month), day)
}

func indentLevel(line string) int {
	n := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n / IndentWidth
}
