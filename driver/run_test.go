package driver_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/moonlet/ast"
	"github.com/takoeight0821/moonlet/diag"
	"github.com/takoeight0821/moonlet/driver"
	"github.com/takoeight0821/moonlet/logs"
	"github.com/takoeight0821/moonlet/parser"
	"github.com/takoeight0821/moonlet/symtab"
	"github.com/takoeight0821/moonlet/token"
)

func TestRunSource(t *testing.T) {
	t.Parallel()
	runner := driver.NewPassRunner(logs.Discard())
	counter := driver.NewNodeCounter()
	runner.AddPass(counter)

	out, err := runner.RunSource("-- note\nlocal a = 1 a = a + 2")
	if err != nil {
		t.Fatalf("RunSource returned error: %v", err)
	}
	if out.LexErr != nil {
		t.Errorf("unexpected lexical error: %v", out.LexErr)
	}
	if out.Tokens[0].Kind != token.COMMENT || out.Tokens[len(out.Tokens)-1].Kind != token.EOF {
		t.Errorf("token stream must keep comments and end with EOF: %v", out.Tokens)
	}

	expected := map[ast.Kind]int{
		ast.KindProgram: 1,
		ast.KindVarDecl: 1,
		ast.KindAssign:  1,
		ast.KindBinary:  1,
		ast.KindVar:     2,
		ast.KindLiteral: 2,
	}
	if diff := cmp.Diff(expected, counter.Counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
}

func TestSemanticErrorStopsPasses(t *testing.T) {
	t.Parallel()
	runner := driver.NewPassRunner(logs.Discard())
	counter := driver.NewNodeCounter()
	runner.AddPass(counter)

	out, err := runner.RunSource("x = 1")
	if !errors.Is(err, symtab.ErrUndeclared) {
		t.Fatalf("expected ErrUndeclared, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "parse: ") {
		t.Errorf("error is not wrapped: %v", err)
	}
	if out.Result != nil {
		t.Error("a result was produced next to a semantic error")
	}
	if len(counter.Counts) != 0 {
		t.Error("passes ran after a semantic error")
	}
}

type failing struct{}

var errFailing = errors.New("failing")

func (failing) Name() string             { return "failing" }
func (failing) Run(*parser.Result) error { return errFailing }

func TestFailingPass(t *testing.T) {
	t.Parallel()
	runner := driver.NewPassRunner(logs.Discard())
	runner.AddPass(failing{})

	out, err := runner.RunSource("local a")
	if !errors.Is(err, errFailing) {
		t.Fatalf("expected errFailing, got %v", err)
	}
	if err.Error() != "failing: failing" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if out.Result == nil {
		t.Error("the parse result is kept when a pass fails")
	}
}

func TestDiagnosticsAreLogged(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	runner := driver.NewPassRunner(logs.New(logs.Options{Level: slog.LevelWarn, Writer: &buf}))

	out, err := runner.RunSource("local a = 1 @ ) a = 2")
	if err != nil {
		t.Fatalf("RunSource returned error: %v", err)
	}
	var lexErr *diag.LexicalError
	if !errors.As(out.LexErr, &lexErr) {
		t.Errorf("expected a lexical error, got %v", out.LexErr)
	}
	if out.Result.Diagnostics.Len() != 1 {
		t.Errorf("expected 1 diagnostic, got %d", out.Result.Diagnostics.Len())
	}

	logged := buf.String()
	for _, want := range []string{"lexical errors", "recovered", "found ')'"} {
		if !strings.Contains(logged, want) {
			t.Errorf("log does not mention %q:\n%s", want, logged)
		}
	}
}
