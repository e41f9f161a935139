// Package nameresolve resolves goto statements against the labels of the
// program and checks that every break sits inside a loop.
//
// Labels share one flat namespace per function body, the same way variables
// share the symbol table. Problems found here are warnings: the emitted code
// is not affected by them.
package nameresolve

import (
	"errors"

	"github.com/takoeight0821/moonlet/ast"
	"github.com/takoeight0821/moonlet/diag"
	"github.com/takoeight0821/moonlet/parser"
	"github.com/takoeight0821/moonlet/token"
)

var (
	ErrNoLabel        = errors.New("no visible label for goto")
	ErrDuplicateLabel = errors.New("label already defined")
	ErrBreakOutside   = errors.New("break outside a loop")
)

type Resolver struct {
	env      *env
	loops    int
	Warnings []*diag.SemanticError
}

func NewResolver() *Resolver {
	return &Resolver{env: newEnv()}
}

// env is the label namespace of one function body.
type env struct {
	labels map[string]token.Token
	gotos  []token.Token
}

func newEnv() *env {
	return &env{labels: make(map[string]token.Token)}
}

func (r *Resolver) Name() string {
	return "nameresolve.Resolver"
}

func (r *Resolver) Run(result *parser.Result) error {
	r.Resolve(result.Program)
	return nil
}

// Resolve checks n and appends what it finds to Warnings.
func (r *Resolver) Resolve(n ast.Node) {
	r.solve(n)
	r.close()
}

func (r *Resolver) warn(at token.Token, err error) {
	r.Warnings = append(r.Warnings, &diag.SemanticError{
		Pos:     diag.Position{Line: at.Line, Column: at.Column},
		Message: err.Error() + " '" + at.Lexeme + "'",
		Err:     err,
	})
}

// close reports the gotos of the current body whose label never appeared.
func (r *Resolver) close() {
	for _, g := range r.env.gotos {
		if _, ok := r.env.labels[g.Lexeme]; !ok {
			r.warn(g, ErrNoLabel)
		}
	}
}

func (r *Resolver) solve(n ast.Node) {
	switch n := n.(type) {
	case *ast.Label:
		if _, ok := r.env.labels[n.Name.Lexeme]; ok {
			r.warn(n.Name, ErrDuplicateLabel)
			return
		}
		r.env.labels[n.Name.Lexeme] = n.Name
	case *ast.Goto:
		r.env.gotos = append(r.env.gotos, n.Label)
	case *ast.Break:
		if r.loops == 0 {
			r.warn(n.Keyword, ErrBreakOutside)
		}
	case *ast.While, *ast.Repeat, *ast.For, *ast.ForIn:
		r.loops++
		r.solveChildren(n)
		r.loops--
	case *ast.FuncDecl, *ast.Lambda:
		outerEnv, outerLoops := r.env, r.loops
		r.env, r.loops = newEnv(), 0
		r.solveChildren(n)
		r.close()
		r.env, r.loops = outerEnv, outerLoops
	default:
		r.solveChildren(n)
	}
}

func (r *Resolver) solveChildren(n ast.Node) {
	for _, child := range ast.Children(n) {
		r.solve(child)
	}
}
