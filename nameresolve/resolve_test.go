package nameresolve_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/moonlet/nameresolve"
	"github.com/takoeight0821/moonlet/parser"
)

func TestResolve(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		label    string
		input    string
		expected []string
	}{
		{"clean", "::top:: while true do break end goto top", nil},
		{"forward goto", "goto done ::done::", nil},
		{"missing label", "goto nowhere", []string{
			"semantic error at 1:6: no visible label for goto 'nowhere'",
		}},
		{"duplicate label", "::a:: ::a::", []string{
			"semantic error at 1:9: label already defined 'a'",
		}},
		{"break at top level", "break", []string{
			"semantic error at 1:1: break outside a loop 'break'",
		}},
		{"break in function inside loop", "while true do function f() break end end", []string{
			"semantic error at 1:28: break outside a loop 'break'",
		}},
		{"labels are per function", "::a:: function f() goto a end", []string{
			"semantic error at 1:25: no visible label for goto 'a'",
		}},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.label, func(t *testing.T) {
			t.Parallel()
			result, err := parser.Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse %q returned error: %v", tc.input, err)
			}
			r := nameresolve.NewResolver()
			if err := r.Run(result); err != nil {
				t.Fatalf("Run returned error: %v", err)
			}
			var actual []string
			for _, w := range r.Warnings {
				actual = append(actual, w.Error())
			}
			if diff := cmp.Diff(tc.expected, actual); diff != "" {
				t.Errorf("Resolve %s mismatch (-want +got):\n%s", tc.label, diff)
			}
		})
	}
}

func TestWarningCause(t *testing.T) {
	t.Parallel()
	result, err := parser.Parse("goto x")
	if err != nil {
		t.Fatal(err)
	}
	r := nameresolve.NewResolver()
	r.Resolve(result.Program)
	if len(r.Warnings) != 1 || !errors.Is(r.Warnings[0], nameresolve.ErrNoLabel) {
		t.Errorf("expected ErrNoLabel, got %v", r.Warnings)
	}
}
