package core

import (
	"fmt"
	"strings"
)

// ParseError reports an input line that does not match its expected format.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Line is one non-blank input line with its 1-based position in the source.
type Line struct {
	No   int
	Text string
}

// Lines splits input on newlines, trims trailing carriage returns and
// surrounding blanks, and drops empty lines.
func Lines(input []byte) []Line {
	raw := strings.Split(string(input), "\n")
	out := make([]Line, 0, len(raw))
	for i, l := range raw {
		l = strings.TrimSpace(strings.TrimSuffix(l, "\r"))
		if l == "" {
			continue
		}
		out = append(out, Line{No: i + 1, Text: l})
	}
	return out
}

// Wrap builds a ParseError for l around err.
func (l Line) Wrap(err error) error {
	return &ParseError{Line: l.No, Text: l.Text, Err: err}
}
