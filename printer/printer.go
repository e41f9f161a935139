// Package printer renders a moonlet syntax tree as indented text.
package printer

import (
	"fmt"
	"strings"

	"github.com/takoeight0821/moonlet/ast"
	"github.com/takoeight0821/moonlet/token"
)

const DefaultIndent = "  "

// Printer is an ast.Visitor that writes one line per construct, nesting
// children one indent level deeper. It never modifies the tree.
type Printer struct {
	b      strings.Builder
	indent string
	depth  int
}

var _ ast.Visitor = &Printer{}

func New(indent string) *Printer {
	if indent == "" {
		indent = DefaultIndent
	}
	return &Printer{indent: indent}
}

// Print renders n with the default indent.
func Print(n ast.Node) string {
	p := New(DefaultIndent)
	n.Accept(p)
	return p.String()
}

func (p *Printer) String() string {
	return p.b.String()
}

func (p *Printer) line(format string, args ...any) {
	p.b.WriteString(strings.Repeat(p.indent, p.depth))
	fmt.Fprintf(&p.b, format, args...)
	p.b.WriteString("\n")
}

// nested prints header and then runs f one level deeper.
func (p *Printer) nested(header string, f func()) {
	p.line("%s", header)
	p.depth++
	f()
	p.depth--
}

func (p *Printer) stmts(nodes []ast.Node) {
	for _, n := range nodes {
		n.Accept(p)
	}
}

func names(ts []token.Token) string {
	s := make([]string, len(ts))
	for i, t := range ts {
		s[i] = t.Lexeme
	}
	return strings.Join(s, ", ")
}

func (p *Printer) VisitProgram(n *ast.Program) {
	p.nested("PROGRAM", func() { p.stmts(n.Decls) })
}

func (p *Printer) VisitBlock(n *ast.Block) {
	p.nested("BLOCK", func() { p.stmts(n.Stmts) })
}

func (p *Printer) VisitLiteral(n *ast.Literal) {
	switch v := n.Value().(type) {
	case nil:
		p.line("LITERAL (nil): nil")
	case bool:
		p.line("LITERAL (boolean): %t", v)
	case string:
		p.line("LITERAL (string): %s", v)
	default:
		p.line("LITERAL (number): %s", n.Token.Lexeme)
	}
}

func (p *Printer) VisitTable(*ast.Table) {
	p.line("LITERAL (table): {}")
}

func (p *Printer) VisitVar(n *ast.Var) {
	p.line("IDENTIFIER: %s", n.Name.Lexeme)
}

func (p *Printer) VisitBinary(n *ast.Binary) {
	p.nested("OPERATION: "+n.Op.Lexeme, func() {
		p.line("LEFT:")
		n.Left.Accept(p)
		p.line("RIGHT:")
		n.Right.Accept(p)
	})
}

func (p *Printer) VisitUnary(n *ast.Unary) {
	p.nested("UNARY OPERATION: "+n.Op.Lexeme, func() {
		p.line("OPERAND:")
		n.Operand.Accept(p)
	})
}

func (p *Printer) VisitCall(n *ast.Call) {
	p.line("CALL: %s", n.Name.Lexeme)
	if len(n.Args) == 0 {
		return
	}
	p.depth++
	p.nested("ARGUMENTS:", func() { p.stmts(n.Args) })
	p.depth--
}

func (p *Printer) VisitAccess(n *ast.Access) {
	p.nested("TABLE ACCESS", func() {
		p.line("TABLE:")
		n.Receiver.Accept(p)
		p.line("KEY:")
		n.Key.Accept(p)
	})
}

func (p *Printer) VisitVarDecl(n *ast.VarDecl) {
	prefix := ""
	if n.Local {
		prefix = "local "
	}
	p.line("%sDECLARATION: %s", prefix, n.Name.Lexeme)
	if n.Expr == nil {
		return
	}
	p.depth++
	p.line("VALUE:")
	n.Expr.Accept(p)
	p.depth--
}

func (p *Printer) VisitAssign(n *ast.Assign) {
	p.nested("ASSIGNMENT:", func() {
		p.line("VARIABLE:")
		n.Target.Accept(p)
		p.line("VALUE:")
		n.Value.Accept(p)
	})
}

func (p *Printer) VisitIf(n *ast.If) {
	p.nested("IF-STATEMENT", func() {
		for i, clause := range n.Clauses {
			header := "IF:"
			if i > 0 {
				header = fmt.Sprintf("ELSEIF %d:", i)
			}
			p.nested(header, func() {
				p.line("CONDITION:")
				clause.Cond.Accept(p)
				p.line("BLOCK:")
				p.stmts(clause.Body.Stmts)
			})
		}
		if n.Else != nil {
			p.nested("ELSE:", func() { p.stmts(n.Else.Stmts) })
		}
	})
}

func (p *Printer) VisitWhile(n *ast.While) {
	p.nested("WHILE-LOOP", func() {
		p.line("CONDITION:")
		n.Cond.Accept(p)
		p.line("BODY:")
		p.stmts(n.Body.Stmts)
	})
}

func (p *Printer) VisitRepeat(n *ast.Repeat) {
	p.nested("REPEAT-LOOP", func() {
		p.line("BODY:")
		p.stmts(n.Body.Stmts)
		p.line("CONDITION:")
		n.Cond.Accept(p)
	})
}

func (p *Printer) bounds(start, stop, step ast.Node, body *ast.Block) {
	p.line("START:")
	start.Accept(p)
	p.line("STOP:")
	stop.Accept(p)
	if step != nil {
		p.line("STEP:")
		step.Accept(p)
	}
	p.line("BODY:")
	p.stmts(body.Stmts)
}

func (p *Printer) VisitFor(n *ast.For) {
	p.nested("FOR-LOOP: "+n.Var.Lexeme, func() {
		p.bounds(n.Start, n.Stop, n.Step, n.Body)
	})
}

func (p *Printer) VisitForIn(n *ast.ForIn) {
	p.nested("FOR-IN-LOOP: "+names(n.Vars), func() {
		p.bounds(n.Start, n.Stop, n.Step, n.Body)
	})
}

func (p *Printer) VisitBreak(*ast.Break) {
	p.line("BREAK")
}

func (p *Printer) VisitGoto(n *ast.Goto) {
	p.line("GOTO: %s", n.Label.Lexeme)
}

func (p *Printer) VisitLabel(n *ast.Label) {
	p.line("LABEL: %s", n.Name.Lexeme)
}

func (p *Printer) VisitReturn(n *ast.Return) {
	p.nested("RETURN", func() { p.stmts(n.Values) })
}

func (p *Printer) function(header string, params []token.Token, body *ast.Block) {
	p.nested(header, func() {
		if len(params) > 0 {
			p.line("PARAMETERS: %s", names(params))
		}
		p.line("BODY:")
		p.stmts(body.Stmts)
	})
}

func (p *Printer) VisitFuncDecl(n *ast.FuncDecl) {
	prefix := ""
	if n.Local {
		prefix = "local "
	}
	p.function(prefix+"FUNCTION: "+n.Name.Lexeme, n.Params, n.Body)
}

func (p *Printer) VisitLambda(n *ast.Lambda) {
	p.function("ANONYMOUS FUNCTION", n.Params, n.Body)
}
