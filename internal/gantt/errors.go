package gantt

import (
	"errors"
	"fmt"
	"strings"
)

// LineError describes a line that does not follow the notation.
type LineError struct {
	Line int
	Text string
}

// Error implements the error interface.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: no task found in %q", e.Line, e.Text)
}

// ParseError aggregates the lines rejected by a strict parse.
type ParseError struct {
	Lines []LineError
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if len(e.Lines) == 1 {
		return e.Lines[0].Error()
	}
	msgs := make([]string, len(e.Lines))
	for i := range e.Lines {
		msgs[i] = e.Lines[i].Error()
	}
	return fmt.Sprintf("%d lines rejected:\n%s", len(e.Lines), strings.Join(msgs, "\n"))
}

// Unwrap exposes each rejected line to errors.Is and errors.As.
func (e *ParseError) Unwrap() []error {
	errs := make([]error, len(e.Lines))
	for i := range e.Lines {
		errs[i] = &e.Lines[i]
	}
	return errs
}

// IsParseError checks if an error is a ParseError and returns it.
func IsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	ok := errors.As(err, &pe)
	return pe, ok
}
