package internal

import (
	"fmt"
	"os"
)

type parseError struct {
	err  error
	line int
}

// interpreterState stores the diagnostics collected while parsing a unit
type interpreterState struct {
	errors []parseError
	source string
}

func newInterpreterState(source string) *interpreterState {
	return &interpreterState{source: source, errors: make([]parseError, 0)}
}

func (s *interpreterState) setError(err error, line int) {
	s.errors = append(s.errors, parseError{
		err:  err,
		line: line,
	})
}

// Valid returns true if no diagnostics were recorded
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// Messages returns the diagnostics in the order they were found
func (s *interpreterState) Messages() []string {
	out := make([]string, len(s.errors))
	for i, e := range s.errors {
		out[i] = e.err.Error()
	}
	return out
}

// PrintErrors prints all errors in the order they were found
func (s *interpreterState) PrintErrors(p IPrinter) {
	for _, e := range s.errors {
		p.Fprintf(os.Stderr, "Error on line %d\n\t%s\n", e.line, e.err.Error())
	}
}

type unexpectedTokenError struct {
	expected tokenType
	got      tokenType
}

func (e *unexpectedTokenError) Error() string {
	return fmt.Sprintf("expected next token to be %s, got %s instead", e.expected, e.got)
}

type invalidAssignmentError struct {
	target string
}

func (e *invalidAssignmentError) Error() string {
	return fmt.Sprintf("cannot assign to %s", e.target)
}
