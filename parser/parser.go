// Package parser is a recursive-descent parser for moonlet, a small Lua
// subset. Stack-machine code is emitted while each construct is recognized,
// so one pass yields the tree, the symbol table and the instruction listing.
package parser

import (
	"errors"
	"fmt"

	"github.com/takoeight0821/moonlet/ast"
	"github.com/takoeight0821/moonlet/code"
	"github.com/takoeight0821/moonlet/diag"
	"github.com/takoeight0821/moonlet/lexer"
	"github.com/takoeight0821/moonlet/symtab"
	"github.com/takoeight0821/moonlet/token"
)

// ErrBoundedFor is the cause of the semantic error raised by a
// `for v in ...` header without a stop expression.
var ErrBoundedFor = errors.New("bounded for requires at least a start and a stop expression")

// Result is everything a successful parse produces.
type Result struct {
	Program     *ast.Program
	Code        *code.Listing
	Diagnostics *diag.Report
	Symbols     *symtab.Table
}

// Parser holds the state of a single parse. It must not be reused.
type Parser struct {
	lexer   *lexer.Lexer
	current token.Token
	// pulled counts the tokens taken from the lexer, comments excluded.
	pulled int

	symbols *symtab.Table
	code    *code.Listing
	report  *diag.Report

	labels int
	// suppressLoad is set while parsing the target of an assignment.
	suppressLoad bool
}

func New(source string) *Parser {
	p := &Parser{
		lexer:   lexer.New(source),
		symbols: symtab.New(),
		code:    &code.Listing{},
		report:  &diag.Report{},
	}
	p.next()
	return p
}

// Parse parses source with a fresh Parser.
func Parse(source string) (*Result, error) {
	return New(source).Parse()
}

// bailout unwinds the recursive descent. It never leaves this package.
type bailout struct {
	err error
}

// Parse parses the whole input. Syntax errors are recorded in the
// diagnostics report and parsing resumes at the next statement boundary.
// A semantic error stops the parse; it is returned as a *diag.SemanticError
// and no result is produced.
func (p *Parser) Parse() (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			result, err = nil, b.err
		}
	}()

	program := &ast.Program{}
	for !p.check(token.EOF) {
		if decl := p.topLevel(); decl != nil {
			program.Decls = append(program.Decls, decl)
		}
	}

	return &Result{
		Program:     program,
		Code:        p.code,
		Diagnostics: p.report,
		Symbols:     p.symbols,
	}, nil
}

// topLevel parses one top-level declaration, recovering from syntax errors.
func (p *Parser) topLevel() (node ast.Node) {
	mark := p.pulled
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			var syntaxErr *diag.SyntaxError
			if !errors.As(b.err, &syntaxErr) {
				panic(r)
			}
			p.report.Add(syntaxErr)
			p.suppressLoad = false
			p.synchronize(mark)
			node = nil
		}
	}()

	return p.declaration()
}

// synchronize discards tokens until a keyword, an identifier or the end of
// input. If the failed declaration consumed nothing, its first token is
// discarded anyway so that parsing always moves forward.
func (p *Parser) synchronize(mark int) {
	if p.pulled == mark && !p.check(token.EOF) {
		p.next()
	}
	for {
		switch p.current.Kind {
		case token.EOF, token.KEYWORD, token.IDENT:
			return
		}
		p.next()
	}
}

func (p *Parser) next() {
	p.current = p.lexer.NextToken()
	for p.current.Kind == token.COMMENT {
		p.current = p.lexer.NextToken()
	}
	p.pulled++
}

func (p *Parser) advance() token.Token {
	t := p.current
	if t.Kind != token.EOF {
		p.next()
	}
	return t
}

func (p *Parser) check(kind token.Kind) bool {
	return p.current.Kind == kind
}

func (p *Parser) checkKeyword(word string) bool {
	return p.current.Is(token.KEYWORD, word)
}

func (p *Parser) checkOperator(op string) bool {
	return p.current.Is(token.OPERATOR, op)
}

func (p *Parser) checkSpecial(sym string) bool {
	return p.current.Is(token.SPECIAL, sym)
}

// matchOperator consumes the current token if it is one of ops.
func (p *Parser) matchOperator(ops ...string) (token.Token, bool) {
	for _, op := range ops {
		if p.checkOperator(op) {
			return p.advance(), true
		}
	}
	return token.Token{}, false
}

func (p *Parser) expect(kind token.Kind, lexeme string) token.Token {
	if p.current.Is(kind, lexeme) {
		return p.advance()
	}
	p.fail(p.expected(lexeme))
	panic("unreachable")
}

func (p *Parser) expectKeyword(word string) token.Token {
	return p.expect(token.KEYWORD, word)
}

func (p *Parser) expectSpecial(sym string) token.Token {
	return p.expect(token.SPECIAL, sym)
}

// expectKind consumes a token of the given kind; what names it in the error.
func (p *Parser) expectKind(kind token.Kind, what string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.fail(p.expected(what))
	panic("unreachable")
}

func position(t token.Token) diag.Position {
	return diag.Position{Line: t.Line, Column: t.Column}
}

// expected builds the error for a current token that is not what.
func (p *Parser) expected(what string) *diag.SyntaxError {
	if p.check(token.EOF) {
		return &diag.SyntaxError{
			Pos:      position(p.current),
			Message:  "unexpected end of input",
			Expected: what,
			Found:    "EOF",
		}
	}
	return &diag.SyntaxError{
		Pos:      position(p.current),
		Message:  "unexpected token",
		Expected: what,
		Found:    p.current.Lexeme,
	}
}

func (p *Parser) fail(err error) {
	panic(bailout{err: err})
}

func (p *Parser) semantic(at token.Token, err error) {
	p.fail(&diag.SemanticError{Pos: position(at), Message: err.Error(), Err: err})
}

// declare registers a new source name; a second declaration is fatal.
func (p *Parser) declare(name token.Token) symtab.Entry {
	e, err := p.symbols.Declare(name.Lexeme)
	if err != nil {
		p.semantic(name, err)
	}
	return e
}

// resolve looks up a name that must already be declared.
func (p *Parser) resolve(name token.Token) symtab.Entry {
	e, err := p.symbols.Resolve(name.Lexeme)
	if err != nil {
		p.semantic(name, err)
	}
	return e
}

// newLabel mints a label that is unique for the whole parse.
func (p *Parser) newLabel(prefix byte) string {
	label := fmt.Sprintf("%c%d", prefix, p.labels)
	p.labels++
	return label
}
