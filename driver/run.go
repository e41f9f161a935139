// Package driver runs the moonlet front end over a source text and the
// passes that inspect its result.
package driver

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/takoeight0821/moonlet/ast"
	"github.com/takoeight0821/moonlet/lexer"
	"github.com/takoeight0821/moonlet/parser"
	"github.com/takoeight0821/moonlet/token"
)

// Pass inspects a successful parse.
type Pass interface {
	Name() string
	Run(*parser.Result) error
}

// Output is everything RunSource produced.
type Output struct {
	// Tokens is the full token stream, comments included.
	Tokens []token.Token
	// LexErr joins every lexical error. It never stops the parse.
	LexErr error
	Result *parser.Result
}

type PassRunner struct {
	passes []Pass
	logger *slog.Logger
}

func NewPassRunner(logger *slog.Logger) *PassRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &PassRunner{logger: logger}
}

// AddPass adds a pass to the end of the pass list.
func (r *PassRunner) AddPass(pass Pass) {
	r.passes = append(r.passes, pass)
}

// Run executes passes in order.
// If an error occurs, it stops the execution.
func (r *PassRunner) Run(result *parser.Result) error {
	for _, pass := range r.passes {
		begin := time.Now()
		if err := pass.Run(result); err != nil {
			return fmt.Errorf("%s: %w", pass.Name(), err)
		}
		r.logger.Debug("pass finished", "pass", pass.Name(), "elapsed", time.Since(begin))
	}
	return nil
}

// RunSource tokenizes and parses source, then executes passes in order.
// Syntax errors are left in the diagnostics report of the result; only a
// semantic error or a failing pass is returned as an error.
func (r *PassRunner) RunSource(source string) (*Output, error) {
	out := &Output{}

	begin := time.Now()
	out.Tokens, out.LexErr = lexer.Lex(source)
	r.logger.Debug("lex finished", "tokens", len(out.Tokens), "elapsed", time.Since(begin))
	if out.LexErr != nil {
		r.logger.Warn("lexical errors", "error", out.LexErr)
	}

	begin = time.Now()
	result, err := parser.Parse(source)
	if err != nil {
		return out, fmt.Errorf("parse: %w", err)
	}
	out.Result = result
	r.logger.Debug("parse finished",
		"decls", len(result.Program.Decls),
		"instructions", result.Code.Len(),
		"symbols", result.Symbols.Len(),
		"elapsed", time.Since(begin))
	for _, e := range result.Diagnostics.Errors() {
		r.logger.Warn("recovered", "error", e)
	}

	return out, r.Run(result)
}

// NodeCounter counts the nodes of each kind in the program tree.
type NodeCounter struct {
	Counts map[ast.Kind]int
}

func NewNodeCounter() *NodeCounter {
	return &NodeCounter{Counts: map[ast.Kind]int{}}
}

func (c *NodeCounter) Name() string { return "count" }

func (c *NodeCounter) Run(result *parser.Result) error {
	ast.Walk(result.Program, ast.NopVisitor{Default: func(n ast.Node) {
		c.Counts[n.Kind()]++
	}})
	return nil
}
