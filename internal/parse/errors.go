package parse

import (
	"fmt"
)

// ParseError reports a line that does not have the shape a day expects.
// Line is 1-based; zero means the error is not tied to a single line.
type ParseError struct {
	Line   int
	Text   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := e.Reason
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d %q: %s", e.Line, e.Text, e.Reason)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return "parse error: " + msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError builds a ParseError for a 1-based line number.
func NewParseError(line int, text, reason string, err error) *ParseError {
	return &ParseError{
		Line:   line,
		Text:   text,
		Reason: reason,
		Err:    err,
	}
}

// SemanticError reports a token that was extracted fine but is not part of
// the recognised vocabulary (a digit word, a cube color).
type SemanticError struct {
	Token  string
	Reason string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("semantic error: token %q: %s", e.Token, e.Reason)
}
