package ast_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/moonlet/ast"
	"github.com/takoeight0821/moonlet/parser"
)

func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	result, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("Parse %q returned error: %v", input, err)
	}
	if result.Diagnostics.HasErrors() {
		t.Fatalf("Parse %q reported:\n%v", input, result.Diagnostics)
	}
	return result.Program
}

func TestString(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		input    string
		expected string
	}{
		{
			"local x = 1 + 2 while x < 3 do x = x + 1 end",
			"(program (local x (binary (literal 1) + (literal 2))) (while (binary (var x) < (literal 3)) (block (assign (var x) (binary (var x) + (literal 1))))))",
		},
		{
			"if true then elseif false then else end",
			"(program (if (clause (literal true) (block)) (clause (literal false) (block)) (else (block))))",
		},
		{
			"local t = {} print(t.a, t[1])",
			"(program (local t (table)) (call print (field (var t) (var a)) (index (var t) (literal 1))))",
		},
		{
			"local function f(a, b) return a, -b end",
			"(program (local function f (params a b) (block (return (var a) (unary - (var b))))))",
		},
		{
			"for i = 1, 10, 2 do break end",
			"(program (for i (literal 1) (literal 10) (literal 2) (block (break))))",
		},
		{
			"::top:: goto top",
			"(program (label top) (goto top))",
		},
	}
	for _, tc := range testcases {
		program := parse(t, tc.input)
		if diff := cmp.Diff(tc.expected, program.String()); diff != "" {
			t.Errorf("String of %q mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestUniverseAndWalk(t *testing.T) {
	t.Parallel()
	program := parse(t, "local x = 1 + 2 while x < 3 do x = x + 1 end")

	if got := len(ast.Universe(program)); got != 15 {
		t.Errorf("Universe returned %d nodes, want 15", got)
	}

	counts := map[ast.Kind]int{}
	var order []ast.Kind
	ast.Walk(program, ast.NopVisitor{Default: func(n ast.Node) {
		counts[n.Kind()]++
		order = append(order, n.Kind())
	}})

	expected := map[ast.Kind]int{
		ast.KindProgram: 1,
		ast.KindVarDecl: 1,
		ast.KindBinary:  3,
		ast.KindLiteral: 4,
		ast.KindWhile:   1,
		ast.KindVar:     3,
		ast.KindBlock:   1,
		ast.KindAssign:  1,
	}
	if diff := cmp.Diff(expected, counts); diff != "" {
		t.Errorf("kind counts mismatch (-want +got):\n%s", diff)
	}
	if order[0] != ast.KindProgram || order[1] != ast.KindVarDecl {
		t.Errorf("Walk is not pre-order: %v", order)
	}
}

// declCollector handles declarations only; the rest falls through to the
// embedded NopVisitor.
type declCollector struct {
	ast.NopVisitor
	names []string
}

func (c *declCollector) VisitVarDecl(n *ast.VarDecl) {
	c.names = append(c.names, n.Name.Lexeme)
}

func TestNopVisitorEmbedding(t *testing.T) {
	t.Parallel()
	program := parse(t, "local a local b = 2 a = b")
	c := &declCollector{}
	for _, decl := range program.Decls {
		decl.Accept(c)
	}
	if diff := cmp.Diff([]string{"a", "b"}, c.names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()
	if ast.KindForIn.String() != "ForIn" || ast.KindProgram.String() != "Program" {
		t.Errorf("unexpected kind names %v %v", ast.KindForIn, ast.KindProgram)
	}
}
