package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/takoeight0821/moonlet/config"
	"github.com/takoeight0821/moonlet/driver"
	"github.com/takoeight0821/moonlet/nameresolve"
	"github.com/takoeight0821/moonlet/printer"
)

// ErrSyntax is returned by Runner.Run when the diagnostics report is not
// empty.
var ErrSyntax = errors.New("syntax errors found")

// Runner compiles one source text at a time and prints what the settings ask
// for.
type Runner struct {
	cfg    config.Config
	logger *slog.Logger
	out    io.Writer
}

func NewRunner(cfg config.Config, logger *slog.Logger, out io.Writer) *Runner {
	return &Runner{cfg: cfg, logger: logger, out: out}
}

func (r *Runner) Run(source string) error {
	runner := driver.NewPassRunner(r.logger)
	counter := driver.NewNodeCounter()
	resolver := nameresolve.NewResolver()
	runner.AddPass(counter)
	runner.AddPass(resolver)

	out, err := runner.RunSource(source)
	if r.cfg.ShowTokens {
		r.section("tokens")
		for _, t := range out.Tokens {
			fmt.Fprintln(r.out, t)
		}
	}
	if err != nil {
		return err
	}
	result := out.Result

	for kind, n := range counter.Counts {
		r.logger.Debug("nodes", "kind", kind, "count", n)
	}
	for _, w := range resolver.Warnings {
		r.logger.Warn(w.Error())
	}

	if r.cfg.ShowAST {
		r.section("ast")
		p := printer.New(r.cfg.Indent)
		result.Program.Accept(p)
		fmt.Fprint(r.out, p.String())
	}
	if r.cfg.ShowCode {
		r.section("code")
		fmt.Fprint(r.out, result.Code)
	}
	if result.Diagnostics.HasErrors() {
		r.section("diagnostics")
		fmt.Fprint(r.out, result.Diagnostics)
		return fmt.Errorf("%w: %d", ErrSyntax, result.Diagnostics.Len())
	}
	return nil
}

func (r *Runner) section(name string) {
	fmt.Fprintf(r.out, "== %s\n", name)
}
