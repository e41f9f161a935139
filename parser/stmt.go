package parser

import (
	"github.com/takoeight0821/moonlet/ast"
	"github.com/takoeight0821/moonlet/code"
	"github.com/takoeight0821/moonlet/diag"
	"github.com/takoeight0821/moonlet/symtab"
	"github.com/takoeight0821/moonlet/token"
)

// declaration = localDecl | funcDecl | label | statement ;
//
// An ERROR token in declaration position is dropped and nil is returned.
func (p *Parser) declaration() ast.Node {
	switch {
	case p.check(token.ERROR):
		p.next()
		return nil
	case p.checkKeyword("local"):
		return p.localDecl()
	case p.checkKeyword("function"):
		return p.funcDecl(false)
	case p.checkSpecial("::"):
		return p.label()
	default:
		return p.statement()
	}
}

// localDecl = "local" IDENT ("=" expr)? | "local" funcDecl ;
func (p *Parser) localDecl() ast.Node {
	p.expectKeyword("local")
	if p.checkKeyword("function") {
		return p.funcDecl(true)
	}

	name := p.expectKind(token.IDENT, "identifier")
	entry := p.declare(name)

	decl := &ast.VarDecl{Name: name, Local: true}
	if p.checkOperator("=") {
		p.advance()
		decl.Expr = p.expr()
		p.code.EmitAddr(code.ARMZ, entry.Address)
	}
	return decl
}

// funcDecl = "function" IDENT params block "end" ;
func (p *Parser) funcDecl(local bool) *ast.FuncDecl {
	p.expectKeyword("function")
	name := p.expectKind(token.IDENT, "identifier")
	p.symbols.Ensure(name.Lexeme)
	params := p.params()
	body := p.block()
	p.expectKeyword("end")
	return &ast.FuncDecl{Name: name, Params: params, Body: body, Local: local}
}

// params = "(" (IDENT ("," IDENT)*)? ")" ;
//
// Parameters share the flat symbol table and are registered on sight.
func (p *Parser) params() []token.Token {
	p.expectSpecial("(")
	params := []token.Token{}
	if !p.checkSpecial(")") {
		for {
			param := p.expectKind(token.IDENT, "identifier")
			p.symbols.Ensure(param.Lexeme)
			params = append(params, param)
			if !p.checkSpecial(",") {
				break
			}
			p.advance()
		}
	}
	p.expectSpecial(")")
	return params
}

// label = "::" IDENT "::" ;
func (p *Parser) label() *ast.Label {
	p.expectSpecial("::")
	name := p.expectKind(token.IDENT, "identifier")
	p.expectSpecial("::")
	return &ast.Label{Name: name}
}

// statement = if | while | repeat | for | "break" | goto | return | identStmt ;
func (p *Parser) statement() ast.Node {
	switch {
	case p.checkKeyword("if"):
		return p.ifStmt()
	case p.checkKeyword("while"):
		return p.whileStmt()
	case p.checkKeyword("repeat"):
		return p.repeatStmt()
	case p.checkKeyword("for"):
		return p.forStmt()
	case p.checkKeyword("break"):
		return &ast.Break{Keyword: p.advance()}
	case p.checkKeyword("goto"):
		return p.gotoStmt()
	case p.checkKeyword("return"):
		return p.returnStmt()
	case p.check(token.IDENT):
		return p.identStmt()
	default:
		p.fail(p.expected("statement"))
		panic("unreachable")
	}
}

// atBlockEnd reports whether the current token closes a block.
func (p *Parser) atBlockEnd() bool {
	return p.check(token.EOF) ||
		p.checkKeyword("end") ||
		p.checkKeyword("else") ||
		p.checkKeyword("elseif") ||
		p.checkKeyword("until")
}

// block = declaration* ;
func (p *Parser) block() *ast.Block {
	b := &ast.Block{Stmts: []ast.Node{}}
	for !p.atBlockEnd() {
		if stmt := p.declaration(); stmt != nil {
			b.Stmts = append(b.Stmts, stmt)
		}
	}
	return b
}

// softKeyword consumes word if present. A missing word is recorded in the
// report and parsing goes on as if it were there.
func (p *Parser) softKeyword(word string) {
	if p.checkKeyword(word) {
		p.advance()
		return
	}
	p.report.Add(p.expected(word))
}

// if = "if" expr "then" block ("elseif" expr "then" block)* ("else" block)? "end" ;
func (p *Parser) ifStmt() *ast.If {
	stmt := &ast.If{Keyword: p.expectKeyword("if")}
	end := p.newLabel('I')

	stmt.Clauses = append(stmt.Clauses, p.ifClause(end))
	for p.checkKeyword("elseif") {
		p.advance()
		stmt.Clauses = append(stmt.Clauses, p.ifClause(end))
	}

	if p.checkKeyword("else") {
		p.advance()
		stmt.Else = p.block()
	}

	p.softKeyword("end")
	p.code.Label(end)
	return stmt
}

// ifClause parses `expr "then" block` and jumps to end once the block ran.
func (p *Parser) ifClause(end string) *ast.IfClause {
	cond := p.expr()
	next := p.newLabel('I')
	p.code.Emit(code.DSVF, next)
	p.softKeyword("then")
	body := p.block()
	p.code.Emit(code.DSVS, end)
	p.code.Label(next)
	return &ast.IfClause{Cond: cond, Body: body}
}

// while = "while" expr "do" block "end" ;
func (p *Parser) whileStmt() *ast.While {
	kw := p.expectKeyword("while")
	start := p.newLabel('W')
	end := p.newLabel('W')

	p.code.Label(start)
	cond := p.expr()
	p.code.Emit(code.DSVF, end)
	p.expectKeyword("do")
	body := p.block()
	p.code.Emit(code.DSVS, start)
	p.code.Label(end)
	p.expectKeyword("end")
	return &ast.While{Keyword: kw, Cond: cond, Body: body}
}

// repeat = "repeat" block "until" expr ;
func (p *Parser) repeatStmt() *ast.Repeat {
	kw := p.expectKeyword("repeat")
	start := p.newLabel('R')

	p.code.Label(start)
	body := p.block()
	p.expectKeyword("until")
	cond := p.expr()
	p.code.Emit(code.DSVF, start)
	return &ast.Repeat{Keyword: kw, Body: body, Cond: cond}
}

// for = "for" IDENT "=" bounds "do" block "end"
//     | "for" IDENT "in" bounds "do" block "end" ;
func (p *Parser) forStmt() ast.Node {
	p.expectKeyword("for")
	name := p.expectKind(token.IDENT, "identifier")

	switch {
	case p.checkOperator("="):
		p.advance()
		start, stop, step, slots := p.bounds(name, false)
		body := p.countedLoop('F', slots)
		return &ast.For{Var: name, Start: start, Stop: stop, Step: step, Body: body}
	case p.checkKeyword("in"):
		p.advance()
		start, stop, step, slots := p.bounds(name, true)
		body := p.countedLoop('G', slots)
		return &ast.ForIn{Vars: []token.Token{name}, Start: start, Stop: stop, Step: step, Body: body}
	default:
		p.fail(p.expected("'=' or 'in'"))
		panic("unreachable")
	}
}

// loopSlots are the addresses a counted loop reads on every iteration.
type loopSlots struct {
	variable symtab.Entry
	stop     symtab.Entry
	step     symtab.Entry
}

// bounds = expr "," expr ("," expr)? ;
//
// The start value is stored into the loop variable, which is declared on
// first use. Stop and step go to fresh temporaries; a missing step is 1.
// For the bounded form a missing comma is a semantic error.
func (p *Parser) bounds(name token.Token, bounded bool) (start, stop, step ast.Node, slots loopSlots) {
	start = p.expr()
	slots.variable = p.symbols.Ensure(name.Lexeme)
	p.code.EmitAddr(code.ARMZ, slots.variable.Address)

	if bounded && !p.checkSpecial(",") {
		p.semantic(p.current, ErrBoundedFor)
	}
	p.expectSpecial(",")

	stop = p.expr()
	slots.stop = p.symbols.AllocTemp("stop")
	p.code.EmitAddr(code.ARMZ, slots.stop.Address)

	if p.checkSpecial(",") {
		p.advance()
		step = p.expr()
		slots.step = p.symbols.AllocTemp("step")
	} else {
		slots.step = p.symbols.AllocTemp("step")
		p.code.EmitConst(1)
	}
	p.code.EmitAddr(code.ARMZ, slots.step.Address)

	return start, stop, step, slots
}

// countedLoop parses `"do" block "end"` and emits the guard and increment
// around the body.
func (p *Parser) countedLoop(prefix byte, slots loopSlots) *ast.Block {
	p.expectKeyword("do")
	start := p.newLabel(prefix)
	end := p.newLabel(prefix)

	p.code.Label(start)
	p.code.EmitAddr(code.CRVL, slots.variable.Address)
	p.code.EmitAddr(code.CRVL, slots.stop.Address)
	p.code.Emit(code.CMEG, "")
	p.code.Emit(code.DSVF, end)

	body := p.block()

	p.code.EmitAddr(code.CRVL, slots.variable.Address)
	p.code.EmitAddr(code.CRVL, slots.step.Address)
	p.code.Emit(code.SOMA, "")
	p.code.EmitAddr(code.ARMZ, slots.variable.Address)
	p.code.Emit(code.DSVS, start)
	p.code.Label(end)

	p.expectKeyword("end")
	return body
}

// goto = "goto" IDENT ;
func (p *Parser) gotoStmt() *ast.Goto {
	p.expectKeyword("goto")
	return &ast.Goto{Label: p.expectKind(token.IDENT, "identifier")}
}

// return = "return" (expr ("," expr)*)? ";"? ;
func (p *Parser) returnStmt() *ast.Return {
	stmt := &ast.Return{Keyword: p.expectKeyword("return"), Values: []ast.Node{}}
	if !p.atBlockEnd() && !p.checkSpecial(";") {
		stmt.Values = append(stmt.Values, p.expr())
		for p.checkSpecial(",") {
			p.advance()
			stmt.Values = append(stmt.Values, p.expr())
		}
	}
	if p.checkSpecial(";") {
		p.advance()
	}
	return stmt
}

// identStmt = expr ("=" expr)? ;
//
// The leading expression is parsed without loading the identifier it names.
// Only an assignment to a plain identifier stores a value.
func (p *Parser) identStmt() ast.Node {
	saved := p.suppressLoad
	p.suppressLoad = true
	target := p.expr()
	p.suppressLoad = saved

	if !p.checkOperator("=") {
		return target
	}

	eq := p.advance()
	switch target.(type) {
	case *ast.Var, *ast.Access:
	default:
		p.fail(&diag.SyntaxError{
			Pos:      position(eq),
			Message:  "cannot assign",
			Expected: "variable",
			Found:    target.String(),
		})
	}

	value := p.expr()
	if v, ok := target.(*ast.Var); ok {
		p.code.EmitAddr(code.ARMZ, p.resolve(v.Name).Address)
	}
	return &ast.Assign{Target: target, Value: value}
}
