package ast

import (
	"fmt"

	"github.com/takoeight0821/moonlet/token"
)

// AST

type Node interface {
	fmt.Stringer
	Kind() Kind
	Base() token.Token
	// Accept calls the method of v that handles this node.
	Accept(v Visitor)
	// Plate applies the given function to each child node.
	// If f returns an error, f also must return the original argument n.
	Plate(error, func(Node, error) (Node, error)) (Node, error)
}

// Literal is a number, string, boolean or nil literal.
type Literal struct {
	Token token.Token
}

// Value is the decoded literal: int, float64, string, bool or nil.
func (l Literal) Value() any {
	switch {
	case l.Token.IsKeyword("true"):
		return true
	case l.Token.IsKeyword("false"):
		return false
	case l.Token.IsKeyword("nil"):
		return nil
	default:
		return l.Token.Literal
	}
}

func (l Literal) String() string {
	return parenthesize("literal", leaf(l.Token.Lexeme)).String()
}

func (l *Literal) Kind() Kind { return KindLiteral }

func (l *Literal) Base() token.Token {
	return l.Token
}

func (l *Literal) Accept(v Visitor) { v.VisitLiteral(l) }

func (l *Literal) Plate(err error, _ func(Node, error) (Node, error)) (Node, error) {
	return l, err
}

var _ Node = &Literal{}

// Table is the empty table constructor `{}`.
type Table struct {
	Brace token.Token
}

func (t Table) String() string {
	return "(table)"
}

func (t *Table) Kind() Kind { return KindTable }

func (t *Table) Base() token.Token {
	return t.Brace
}

func (t *Table) Accept(v Visitor) { v.VisitTable(t) }

func (t *Table) Plate(err error, _ func(Node, error) (Node, error)) (Node, error) {
	return t, err
}

var _ Node = &Table{}

type Var struct {
	Name token.Token
}

func (v Var) String() string {
	return parenthesize("var", leaf(v.Name.Lexeme)).String()
}

func (v *Var) Kind() Kind { return KindVar }

func (v *Var) Base() token.Token {
	return v.Name
}

func (v *Var) Accept(vis Visitor) { vis.VisitVar(v) }

func (v *Var) Plate(err error, _ func(Node, error) (Node, error)) (Node, error) {
	return v, err
}

var _ Node = &Var{}

type Binary struct {
	Left  Node
	Op    token.Token
	Right Node
}

func (b Binary) String() string {
	return parenthesize("binary", b.Left, leaf(b.Op.Lexeme), b.Right).String()
}

func (b *Binary) Kind() Kind { return KindBinary }

func (b *Binary) Base() token.Token {
	return b.Op
}

func (b *Binary) Accept(v Visitor) { v.VisitBinary(b) }

func (b *Binary) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	b.Left, err = f(b.Left, err)
	b.Right, err = f(b.Right, err)
	return b, err
}

var _ Node = &Binary{}

type Unary struct {
	Op      token.Token
	Operand Node
}

func (u Unary) String() string {
	return parenthesize("unary", leaf(u.Op.Lexeme), u.Operand).String()
}

func (u *Unary) Kind() Kind { return KindUnary }

func (u *Unary) Base() token.Token {
	return u.Op
}

func (u *Unary) Accept(v Visitor) { v.VisitUnary(u) }

func (u *Unary) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	u.Operand, err = f(u.Operand, err)
	return u, err
}

var _ Node = &Unary{}

// Call is a call of a function by name.
type Call struct {
	Name token.Token
	Args []Node
}

func (c Call) String() string {
	return parenthesize("call", leaf(c.Name.Lexeme), concat(c.Args)).String()
}

func (c *Call) Kind() Kind { return KindCall }

func (c *Call) Base() token.Token {
	return c.Name
}

func (c *Call) Accept(v Visitor) { v.VisitCall(c) }

func (c *Call) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	for i, arg := range c.Args {
		c.Args[i], err = f(arg, err)
	}
	return c, err
}

var _ Node = &Call{}

// Access is `t[k]`, or `t.k` when Dot is set (Key is then a *Var).
type Access struct {
	Receiver Node
	Key      Node
	Dot      bool
}

func (a Access) String() string {
	head := "index"
	if a.Dot {
		head = "field"
	}
	return parenthesize(head, a.Receiver, a.Key).String()
}

func (a *Access) Kind() Kind { return KindAccess }

func (a *Access) Base() token.Token {
	return a.Receiver.Base()
}

func (a *Access) Accept(v Visitor) { v.VisitAccess(a) }

func (a *Access) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	a.Receiver, err = f(a.Receiver, err)
	a.Key, err = f(a.Key, err)
	return a, err
}

var _ Node = &Access{}

// VarDecl is `local name [= expr]`. Expr may be nil.
type VarDecl struct {
	Name  token.Token
	Expr  Node
	Local bool
}

func (v VarDecl) String() string {
	if v.Expr == nil {
		return parenthesize("local", leaf(v.Name.Lexeme)).String()
	}
	return parenthesize("local", leaf(v.Name.Lexeme), v.Expr).String()
}

func (v *VarDecl) Kind() Kind { return KindVarDecl }

func (v *VarDecl) Base() token.Token {
	return v.Name
}

func (v *VarDecl) Accept(vis Visitor) { vis.VisitVarDecl(v) }

func (v *VarDecl) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	if v.Expr != nil {
		v.Expr, err = f(v.Expr, err)
	}
	return v, err
}

var _ Node = &VarDecl{}

type Assign struct {
	Target Node
	Value  Node
}

func (a Assign) String() string {
	return parenthesize("assign", a.Target, a.Value).String()
}

func (a *Assign) Kind() Kind { return KindAssign }

func (a *Assign) Base() token.Token {
	return a.Target.Base()
}

func (a *Assign) Accept(v Visitor) { v.VisitAssign(a) }

func (a *Assign) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	a.Target, err = f(a.Target, err)
	a.Value, err = f(a.Value, err)
	return a, err
}

var _ Node = &Assign{}

// IfClause is one `if` or `elseif` branch.
type IfClause struct {
	Cond Node
	Body *Block
}

func (c IfClause) String() string {
	return parenthesize("clause", c.Cond, c.Body).String()
}

// If is an if/elseif chain. Clauses has at least one element; Else may be nil.
type If struct {
	Keyword token.Token
	Clauses []*IfClause
	Else    *Block
}

func (i If) String() string {
	if i.Else == nil {
		return parenthesize("if", concat(i.Clauses)).String()
	}
	return parenthesize("if", concat(i.Clauses), parenthesize("else", i.Else)).String()
}

func (i *If) Kind() Kind { return KindIf }

func (i *If) Base() token.Token {
	return i.Keyword
}

func (i *If) Accept(v Visitor) { v.VisitIf(i) }

func (i *If) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	for _, clause := range i.Clauses {
		clause.Cond, err = f(clause.Cond, err)
		clause.Body, err = plateBlock(clause.Body, err, f)
	}
	if i.Else != nil {
		i.Else, err = plateBlock(i.Else, err, f)
	}
	return i, err
}

var _ Node = &If{}

type While struct {
	Keyword token.Token
	Cond    Node
	Body    *Block
}

func (w While) String() string {
	return parenthesize("while", w.Cond, w.Body).String()
}

func (w *While) Kind() Kind { return KindWhile }

func (w *While) Base() token.Token {
	return w.Keyword
}

func (w *While) Accept(v Visitor) { v.VisitWhile(w) }

func (w *While) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	w.Cond, err = f(w.Cond, err)
	w.Body, err = plateBlock(w.Body, err, f)
	return w, err
}

var _ Node = &While{}

type Repeat struct {
	Keyword token.Token
	Body    *Block
	Cond    Node
}

func (r Repeat) String() string {
	return parenthesize("repeat", r.Body, r.Cond).String()
}

func (r *Repeat) Kind() Kind { return KindRepeat }

func (r *Repeat) Base() token.Token {
	return r.Keyword
}

func (r *Repeat) Accept(v Visitor) { v.VisitRepeat(r) }

func (r *Repeat) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	r.Body, err = plateBlock(r.Body, err, f)
	r.Cond, err = f(r.Cond, err)
	return r, err
}

var _ Node = &Repeat{}

// For is `for v = start, stop[, step] do ... end`. Step may be nil.
type For struct {
	Var   token.Token
	Start Node
	Stop  Node
	Step  Node
	Body  *Block
}

func (f For) String() string {
	return parenthesize("for", leaf(f.Var.Lexeme), f.Start, f.Stop, optional(f.Step), f.Body).String()
}

func (f *For) Kind() Kind { return KindFor }

func (f *For) Base() token.Token {
	return f.Var
}

func (f *For) Accept(v Visitor) { v.VisitFor(f) }

func (f *For) Plate(err error, g func(Node, error) (Node, error)) (Node, error) {
	f.Start, err = g(f.Start, err)
	f.Stop, err = g(f.Stop, err)
	if f.Step != nil {
		f.Step, err = g(f.Step, err)
	}
	f.Body, err = plateBlock(f.Body, err, g)
	return f, err
}

var _ Node = &For{}

// ForIn is the bounded `for v in start, stop[, step] do ... end` loop. It
// counts like For; there is no iterator protocol. Step may be nil.
type ForIn struct {
	Vars  []token.Token
	Start Node
	Stop  Node
	Step  Node
	Body  *Block
}

func (f ForIn) String() string {
	names := make([]leaf, len(f.Vars))
	for i, v := range f.Vars {
		names[i] = leaf(v.Lexeme)
	}
	return parenthesize("forin", parenthesize("", concat(names)), f.Start, f.Stop, optional(f.Step), f.Body).String()
}

func (f *ForIn) Kind() Kind { return KindForIn }

func (f *ForIn) Base() token.Token {
	return f.Vars[0]
}

func (f *ForIn) Accept(v Visitor) { v.VisitForIn(f) }

func (f *ForIn) Plate(err error, g func(Node, error) (Node, error)) (Node, error) {
	f.Start, err = g(f.Start, err)
	f.Stop, err = g(f.Stop, err)
	if f.Step != nil {
		f.Step, err = g(f.Step, err)
	}
	f.Body, err = plateBlock(f.Body, err, g)
	return f, err
}

var _ Node = &ForIn{}

type Break struct {
	Keyword token.Token
}

func (b Break) String() string {
	return "(break)"
}

func (b *Break) Kind() Kind { return KindBreak }

func (b *Break) Base() token.Token {
	return b.Keyword
}

func (b *Break) Accept(v Visitor) { v.VisitBreak(b) }

func (b *Break) Plate(err error, _ func(Node, error) (Node, error)) (Node, error) {
	return b, err
}

var _ Node = &Break{}

type Goto struct {
	Label token.Token
}

func (g Goto) String() string {
	return parenthesize("goto", leaf(g.Label.Lexeme)).String()
}

func (g *Goto) Kind() Kind { return KindGoto }

func (g *Goto) Base() token.Token {
	return g.Label
}

func (g *Goto) Accept(v Visitor) { v.VisitGoto(g) }

func (g *Goto) Plate(err error, _ func(Node, error) (Node, error)) (Node, error) {
	return g, err
}

var _ Node = &Goto{}

// Label is `::name::`.
type Label struct {
	Name token.Token
}

func (l Label) String() string {
	return parenthesize("label", leaf(l.Name.Lexeme)).String()
}

func (l *Label) Kind() Kind { return KindLabel }

func (l *Label) Base() token.Token {
	return l.Name
}

func (l *Label) Accept(v Visitor) { v.VisitLabel(l) }

func (l *Label) Plate(err error, _ func(Node, error) (Node, error)) (Node, error) {
	return l, err
}

var _ Node = &Label{}

type Return struct {
	Keyword token.Token
	Values  []Node
}

func (r Return) String() string {
	return parenthesize("return", concat(r.Values)).String()
}

func (r *Return) Kind() Kind { return KindReturn }

func (r *Return) Base() token.Token {
	return r.Keyword
}

func (r *Return) Accept(v Visitor) { v.VisitReturn(r) }

func (r *Return) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	for i, value := range r.Values {
		r.Values[i], err = f(value, err)
	}
	return r, err
}

var _ Node = &Return{}

// FuncDecl is a named function definition.
type FuncDecl struct {
	Name   token.Token
	Params []token.Token
	Body   *Block
	Local  bool
}

func (f FuncDecl) String() string {
	head := "function"
	if f.Local {
		head = "local function"
	}
	return parenthesize(head, leaf(f.Name.Lexeme), params(f.Params), f.Body).String()
}

func (f *FuncDecl) Kind() Kind { return KindFuncDecl }

func (f *FuncDecl) Base() token.Token {
	return f.Name
}

func (f *FuncDecl) Accept(v Visitor) { v.VisitFuncDecl(f) }

func (f *FuncDecl) Plate(err error, g func(Node, error) (Node, error)) (Node, error) {
	f.Body, err = plateBlock(f.Body, err, g)
	return f, err
}

var _ Node = &FuncDecl{}

// Lambda is an anonymous `function (...) ... end` expression.
type Lambda struct {
	Keyword token.Token
	Params  []token.Token
	Body    *Block
}

func (l Lambda) String() string {
	return parenthesize("lambda", params(l.Params), l.Body).String()
}

func (l *Lambda) Kind() Kind { return KindLambda }

func (l *Lambda) Base() token.Token {
	return l.Keyword
}

func (l *Lambda) Accept(v Visitor) { v.VisitLambda(l) }

func (l *Lambda) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	l.Body, err = plateBlock(l.Body, err, f)
	return l, err
}

var _ Node = &Lambda{}

type Block struct {
	Stmts []Node
}

func (b Block) String() string {
	return parenthesize("block", concat(b.Stmts)).String()
}

func (b *Block) Kind() Kind { return KindBlock }

func (b *Block) Base() token.Token {
	if len(b.Stmts) == 0 {
		return token.Token{}
	}
	return b.Stmts[0].Base()
}

func (b *Block) Accept(v Visitor) { v.VisitBlock(b) }

func (b *Block) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	for i, stmt := range b.Stmts {
		b.Stmts[i], err = f(stmt, err)
	}
	return b, err
}

var _ Node = &Block{}

// Program is the root of the tree. Decls holds the top-level statements.
type Program struct {
	Decls []Node
}

func (p Program) String() string {
	return parenthesize("program", concat(p.Decls)).String()
}

func (p *Program) Kind() Kind { return KindProgram }

func (p *Program) Base() token.Token {
	if len(p.Decls) == 0 {
		return token.Token{}
	}
	return p.Decls[0].Base()
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }

func (p *Program) Plate(err error, f func(Node, error) (Node, error)) (Node, error) {
	for i, decl := range p.Decls {
		p.Decls[i], err = f(decl, err)
	}
	return p, err
}

var _ Node = &Program{}

func plateBlock(b *Block, err error, f func(Node, error) (Node, error)) (*Block, error) {
	n, err := f(b, err)
	if blk, ok := n.(*Block); ok {
		return blk, err
	}
	return b, err
}
