package utils_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/moonlet/utils"
)

func TestReadTestData(t *testing.T) {
	t.Parallel()
	data := utils.ReadTestData([]byte(`
- label: on
  enable: true
  input: local a
  expected:
    ast: "(program (local a))"
- label: off
  enable: false
  input: nothing
`))
	expected := []utils.TestData{{
		Label:    "on",
		Enable:   true,
		Input:    "local a",
		Expected: map[string]string{"ast": "(program (local a))"},
	}}
	if diff := cmp.Diff(expected, data); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFindSourceFiles(t *testing.T) {
	t.Parallel()
	files, err := utils.FindSourceFiles("../testdata")
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{
		filepath.Join("..", "testdata", "complete.moonlet"),
		filepath.Join("..", "testdata", "loops.moonlet"),
		filepath.Join("..", "testdata", "simple.moonlet"),
	}
	if diff := cmp.Diff(expected, files); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
