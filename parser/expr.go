package parser

import (
	"github.com/takoeight0821/moonlet/ast"
	"github.com/takoeight0821/moonlet/code"
	"github.com/takoeight0821/moonlet/token"
)

// expr = or ;
func (p *Parser) expr() ast.Node {
	return p.or()
}

// or = and ("or" and)* ;
func (p *Parser) or() ast.Node {
	left := p.and()
	for p.checkKeyword("or") {
		op := p.advance()
		right := p.and()
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left
}

// and = relational ("and" relational)* ;
func (p *Parser) and() ast.Node {
	left := p.relational()
	for p.checkKeyword("and") {
		op := p.advance()
		right := p.relational()
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left
}

// relational = concat (relop concat)? ;
//
// Comparisons do not chain: `a < b < c` stops after `a < b`.
func (p *Parser) relational() ast.Node {
	left := p.concat()
	if op, ok := p.matchOperator("<", ">", "<=", ">=", "==", "~="); ok {
		right := p.concat()
		left = &ast.Binary{Left: left, Op: op, Right: right}
		instr, _ := code.Relational(op.Lexeme)
		p.code.Emit(instr, "")
	}
	return left
}

// concat = additive (".." additive)* ;
func (p *Parser) concat() ast.Node {
	left := p.additive()
	for p.checkOperator("..") {
		op := p.advance()
		right := p.additive()
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left
}

// additive = multiplicative (("+" | "-") multiplicative)* ;
func (p *Parser) additive() ast.Node {
	left := p.multiplicative()
	for {
		op, ok := p.matchOperator("+", "-")
		if !ok {
			return left
		}
		right := p.multiplicative()
		left = &ast.Binary{Left: left, Op: op, Right: right}
		instr, _ := code.Arithmetic(op.Lexeme)
		p.code.Emit(instr, "")
	}
}

// multiplicative = unary (("*" | "/" | "%" | "^") unary)? ;
func (p *Parser) multiplicative() ast.Node {
	left := p.unary()
	if op, ok := p.matchOperator("*", "/", "%", "^"); ok {
		right := p.unary()
		left = &ast.Binary{Left: left, Op: op, Right: right}
		instr, _ := code.Arithmetic(op.Lexeme)
		p.code.Emit(instr, "")
	}
	return left
}

// unary = ("not" | "-" | "#") unary | primary ;
func (p *Parser) unary() ast.Node {
	switch {
	case p.checkKeyword("not"), p.checkSpecial("#"):
		op := p.advance()
		return &ast.Unary{Op: op, Operand: p.unary()}
	case p.checkOperator("-"):
		op := p.advance()
		operand := p.unary()
		p.code.Emit(code.INVR, "")
		return &ast.Unary{Op: op, Operand: operand}
	default:
		return p.primary()
	}
}

// primary = NUMBER | STRING | "true" | "false" | "nil"
//         | IDENT | call | access
//         | "(" expr ")" | lambda | "{" "}" ;
func (p *Parser) primary() ast.Node {
	switch {
	case p.check(token.NUMBER):
		t := p.advance()
		p.code.EmitConst(t.Literal)
		return &ast.Literal{Token: t}
	case p.check(token.STRING),
		p.checkKeyword("true"),
		p.checkKeyword("false"),
		p.checkKeyword("nil"):
		return &ast.Literal{Token: p.advance()}
	case p.check(token.IDENT):
		name := p.advance()
		if p.checkSpecial("(") {
			return p.call(name)
		}
		if p.checkSpecial("[") || p.checkOperator(".") {
			return p.access(name)
		}
		entry := p.resolve(name)
		if !p.suppressLoad {
			p.code.EmitAddr(code.CRVL, entry.Address)
		}
		return &ast.Var{Name: name}
	case p.checkSpecial("("):
		p.advance()
		e := p.expr()
		p.expectSpecial(")")
		return e
	case p.checkKeyword("function"):
		return p.lambda()
	case p.checkSpecial("{"):
		brace := p.advance()
		p.expectSpecial("}")
		return &ast.Table{Brace: brace}
	default:
		p.fail(p.expected("expression"))
		panic("unreachable")
	}
}

// subexpr parses an expression that always loads its variables, even
// inside an assignment target.
func (p *Parser) subexpr() ast.Node {
	saved := p.suppressLoad
	p.suppressLoad = false
	defer func() { p.suppressLoad = saved }()
	return p.expr()
}

// call = IDENT "(" (expr ("," expr)*)? ")" ;
func (p *Parser) call(name token.Token) *ast.Call {
	p.expectSpecial("(")
	args := []ast.Node{}
	if !p.checkSpecial(")") {
		args = append(args, p.subexpr())
		for p.checkSpecial(",") {
			p.advance()
			args = append(args, p.subexpr())
		}
	}
	p.expectSpecial(")")
	return &ast.Call{Name: name, Args: args}
}

// access = IDENT ("[" expr "]" | "." IDENT)+ ;
//
// The table itself is only checked for declaration, never loaded.
func (p *Parser) access(name token.Token) ast.Node {
	p.resolve(name)
	var receiver ast.Node = &ast.Var{Name: name}
	for {
		switch {
		case p.checkSpecial("["):
			p.advance()
			key := p.subexpr()
			p.expectSpecial("]")
			receiver = &ast.Access{Receiver: receiver, Key: key}
		case p.checkOperator("."):
			p.advance()
			field := p.expectKind(token.IDENT, "identifier")
			receiver = &ast.Access{Receiver: receiver, Key: &ast.Var{Name: field}, Dot: true}
		default:
			return receiver
		}
	}
}

// lambda = "function" params block "end" ;
func (p *Parser) lambda() *ast.Lambda {
	kw := p.expectKeyword("function")
	params := p.params()
	body := p.block()
	p.expectKeyword("end")
	return &ast.Lambda{Keyword: kw, Params: params, Body: body}
}
