package code_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/moonlet/code"
)

func TestListing(t *testing.T) {
	t.Parallel()
	var l code.Listing
	l.EmitConst(1)
	l.EmitAddr(code.ARMZ, 0)
	l.Label("W0")
	l.Emit(code.SOMA, "")
	l.Emit(code.DSVS, "W0")

	expected := []string{"CRCT 1", "ARMZ 0", "W0:", "SOMA", "DSVS W0"}
	if diff := cmp.Diff(expected, l.Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("CRCT 1\nARMZ 0\nW0:\nSOMA\nDSVS W0\n", l.String()); diff != "" {
		t.Errorf("String mismatch (-want +got):\n%s", diff)
	}
	if l.Len() != 5 {
		t.Errorf("expected 5 lines, got %d", l.Len())
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		value    any
		expected string
	}{
		{10, "10"},
		{3.0, "3.0"},
		{2.5, "2.5"},
		{0.125, "0.125"},
		{new(big.Int).Lsh(big.NewInt(1), 80), "1208925819614629174706176"},
	}
	for _, tc := range testcases {
		if got := code.FormatNumber(tc.value); got != tc.expected {
			t.Errorf("FormatNumber(%v) = %q, want %q", tc.value, got, tc.expected)
		}
	}
}

func TestOperators(t *testing.T) {
	t.Parallel()
	arith := map[string]code.Op{
		"+": code.SOMA, "-": code.SUBT, "*": code.MULT,
		"/": code.DIVI, "%": code.MODI, "^": code.POTI,
	}
	for op, want := range arith {
		if got, ok := code.Arithmetic(op); !ok || got != want {
			t.Errorf("Arithmetic(%q) = %v, %v", op, got, ok)
		}
	}
	rel := map[string]code.Op{
		"<": code.CMME, ">": code.CMMA, "<=": code.CMEG,
		">=": code.CMAG, "==": code.CMIG, "~=": code.CMDG,
	}
	for op, want := range rel {
		if got, ok := code.Relational(op); !ok || got != want {
			t.Errorf("Relational(%q) = %v, %v", op, got, ok)
		}
	}
	if _, ok := code.Arithmetic(".."); ok {
		t.Error("concatenation has no instruction")
	}
}
