package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/peterh/liner"
	"github.com/takoeight0821/moonlet/config"
	"github.com/takoeight0821/moonlet/logs"
)

func main() {
	const (
		inputUsage = "input file path"
	)
	var inputPath, configPath string
	flag.StringVar(&inputPath, "input", "", inputUsage)
	flag.StringVar(&inputPath, "i", "", inputUsage+" (shorthand)")
	flag.StringVar(&configPath, "config", "", "settings file (default: $XDG_CONFIG_HOME/"+config.RelPath+")")
	showTokens := flag.Bool("tokens", false, "print the token stream")
	showAST := flag.Bool("ast", false, "print the syntax tree")
	showCode := flag.Bool("code", false, "print the instruction listing")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	logFile := flag.String("log-file", "", "also write JSON logs to this file")

	flag.Parse()

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Flags given on the command line win over the settings file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tokens":
			cfg.ShowTokens = *showTokens
		case "ast":
			cfg.ShowAST = *showAST
		case "code":
			cfg.ShowCode = *showCode
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-file":
			cfg.LogFile = *logFile
		}
	})

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	r := NewRunner(cfg, logger, os.Stdout)
	if inputPath == "" {
		err = RunPrompt(r, cfg.HistoryFile)
	} else {
		err = RunFile(r, inputPath)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	opts := logs.Options{Level: level}
	closeLog := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		opts.JSON = f
		closeLog = func() { f.Close() }
	}
	return logs.New(opts), closeLog, nil
}

func RunPrompt(r *Runner, history string) error {
	line := liner.NewLiner()
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if f, err := os.Create(history); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	for {
		input, err := line.Prompt("> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line.AppendHistory(input)
		if err := r.Run(input); err != nil {
			if errs, ok := err.(interface{ Unwrap() []error }); ok {
				for _, err := range errs.Unwrap() {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				}
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}

func RunFile(r *Runner, path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return r.Run(string(bytes))
}
