// Package config loads the moonlet settings file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// RelPath is the settings file location below the XDG config directories.
const RelPath = "moonlet/config.yaml"

type Config struct {
	// Indent is the unit of indentation of the tree printer.
	Indent     string `yaml:"indent"`
	ShowTokens bool   `yaml:"show_tokens"`
	ShowAST    bool   `yaml:"show_ast"`
	ShowCode   bool   `yaml:"show_code"`

	LogLevel string `yaml:"log_level"`
	// LogFile, if set, receives JSON log records in addition to stderr.
	LogFile string `yaml:"log_file"`

	HistoryFile string `yaml:"history_file"`
}

func Default() Config {
	return Config{
		Indent:      "  ",
		ShowTokens:  false,
		ShowAST:     true,
		ShowCode:    true,
		LogLevel:    "warn",
		HistoryFile: filepath.Join(xdg.DataHome, "moonlet", ".moonlet_history"),
	}
}

// Load reads the settings file from the XDG config directories. A missing
// file yields Default.
func Load() (Config, error) {
	path, err := xdg.SearchConfigFile(RelPath)
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default, so absent keys keep their defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level parses LogLevel. An empty level means warn.
func (c Config) Level() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
