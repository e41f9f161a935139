// Package diag holds the error values produced while compiling a moonlet
// program and the report that accumulates recoverable ones.
package diag

import (
	"errors"
	"fmt"
	"strings"
)

type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// LexicalError describes an ERROR token.
type LexicalError struct {
	Pos     Position
	Lexeme  string
	Message string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at %v: %s `%s`", e.Pos, e.Message, e.Lexeme)
}

// SyntaxError is a violated expectation of the grammar. Expected and Found
// are lexical texts and may be empty.
type SyntaxError struct {
	Pos      Position
	Message  string
	Expected string
	Found    string
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "syntax error at %v: %s", e.Pos, e.Message)
	if e.Expected != "" && e.Found != "" {
		fmt.Fprintf(&b, ": expected '%s', found '%s'", e.Expected, e.Found)
	}
	return b.String()
}

// SemanticError aborts a whole parse. Err is the underlying cause, if any.
type SemanticError struct {
	Pos     Position
	Message string
	Err     error
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("semantic error at %v: %s", e.Pos, e.Message)
}

func (e *SemanticError) Unwrap() error {
	return e.Err
}

// Report collects the syntax errors recovered from during a parse, in the
// order they were found.
type Report struct {
	errs []*SyntaxError
}

func (r *Report) Add(err *SyntaxError) {
	r.errs = append(r.errs, err)
}

func (r *Report) Errors() []*SyntaxError {
	return r.errs
}

func (r *Report) Len() int {
	return len(r.errs)
}

func (r *Report) HasErrors() bool {
	return len(r.errs) > 0
}

// Err joins every recorded error, or returns nil for an empty report.
func (r *Report) Err() error {
	errs := make([]error, len(r.errs))
	for i, err := range r.errs {
		errs[i] = err
	}
	return errors.Join(errs...)
}

func (r *Report) String() string {
	var b strings.Builder
	for i, err := range r.errs {
		fmt.Fprintf(&b, "%d. %v\n", i+1, err)
	}
	return b.String()
}
