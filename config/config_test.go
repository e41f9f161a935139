package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/moonlet/config"
)

func TestParse(t *testing.T) {
	t.Parallel()
	cfg, err := config.Parse([]byte("indent: \"\\t\"\nshow_tokens: true\nshow_code: false\nlog_level: debug\n"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	expected := config.Default()
	expected.Indent = "\t"
	expected.ShowTokens = true
	expected.ShowCode = false
	expected.LogLevel = "debug"
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	level, err := cfg.Level()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("Level() = %v, %v", level, err)
	}
}

func TestParseRejectsBadLevel(t *testing.T) {
	t.Parallel()
	if _, err := config.Parse([]byte("log_level: loud\n")); err == nil {
		t.Error("expected an error for an unknown log level")
	}
	if _, err := config.Parse([]byte("show_ast: [\n")); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	cfg, err := config.LoadFile(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadFile of a missing file returned error: %v", err)
	}
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Errorf("missing file must yield defaults (-want +got):\n%s", diff)
	}

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("show_ast: false\nlog_file: moonlet.log\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if cfg.ShowAST || cfg.LogFile != "moonlet.log" || !cfg.ShowCode {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestDefaultLevel(t *testing.T) {
	t.Parallel()
	level, err := config.Config{}.Level()
	if err != nil || level != slog.LevelWarn {
		t.Errorf("Level() = %v, %v", level, err)
	}
}
