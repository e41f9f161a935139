package diag_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/moonlet/diag"
)

func TestSyntaxError(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		err      *diag.SyntaxError
		expected string
	}{
		{
			&diag.SyntaxError{Pos: diag.Position{Line: 2, Column: 5}, Message: "unexpected token", Expected: "then", Found: "do"},
			"syntax error at 2:5: unexpected token: expected 'then', found 'do'",
		},
		{
			&diag.SyntaxError{Pos: diag.Position{Line: 1, Column: 1}, Message: "unexpected token"},
			"syntax error at 1:1: unexpected token",
		},
	}
	for _, tc := range testcases {
		if diff := cmp.Diff(tc.expected, tc.err.Error()); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestSemanticErrorUnwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("cause")
	err := error(&diag.SemanticError{Pos: diag.Position{Line: 3, Column: 1}, Message: "boom", Err: cause})
	if !errors.Is(err, cause) {
		t.Error("SemanticError does not unwrap to its cause")
	}
	if err.Error() != "semantic error at 3:1: boom" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestReport(t *testing.T) {
	t.Parallel()
	var r diag.Report
	if r.HasErrors() || r.Err() != nil {
		t.Fatal("empty report has errors")
	}
	r.Add(&diag.SyntaxError{Pos: diag.Position{Line: 1, Column: 2}, Message: "first"})
	r.Add(&diag.SyntaxError{Pos: diag.Position{Line: 3, Column: 4}, Message: "second"})

	if r.Len() != 2 || !r.HasErrors() {
		t.Fatalf("expected 2 errors, got %d", r.Len())
	}
	expected := "1. syntax error at 1:2: first\n2. syntax error at 3:4: second\n"
	if diff := cmp.Diff(expected, r.String()); diff != "" {
		t.Errorf("String mismatch (-want +got):\n%s", diff)
	}
	var syntaxErr *diag.SyntaxError
	if !errors.As(r.Err(), &syntaxErr) || syntaxErr.Message != "first" {
		t.Errorf("Err does not expose the first error: %v", r.Err())
	}
}
