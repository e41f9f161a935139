package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/moonlet/config"
	"github.com/takoeight0821/moonlet/logs"
	"github.com/takoeight0821/moonlet/symtab"
)

func TestRunner(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.ShowTokens = true
	var out bytes.Buffer
	r := NewRunner(cfg, logs.Discard(), &out)

	if err := r.Run("local a = 1"); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	expected := strings.Join([]string{
		"== tokens",
		`KEYWORD "local"@1:1`,
		`IDENT "a"@1:7`,
		`OPERATOR "="@1:9`,
		`NUMBER "1"@1:11`,
		`EOF ""@1:12`,
		"== ast",
		"PROGRAM",
		"  local DECLARATION: a",
		"    VALUE:",
		"    LITERAL (number): 1",
		"== code",
		"CRCT 1",
		"ARMZ 0",
		"",
	}, "\n")
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunnerDiagnostics(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.ShowAST = false
	cfg.ShowCode = false
	var out bytes.Buffer
	r := NewRunner(cfg, logs.Discard(), &out)

	err := r.Run("local a )")
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax, got %v", err)
	}
	expected := "== diagnostics\n1. syntax error at 1:9: unexpected token: expected 'statement', found ')'\n"
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunnerSemanticError(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	r := NewRunner(config.Default(), logs.Discard(), &out)

	if err := r.Run("b = 2"); !errors.Is(err, symtab.ErrUndeclared) {
		t.Fatalf("expected ErrUndeclared, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be printed, got %q", out.String())
	}
}
