package ast

// Visitor has one method per node kind. Node.Accept selects the method
// matching the node.
type Visitor interface {
	VisitLiteral(*Literal)
	VisitTable(*Table)
	VisitVar(*Var)
	VisitBinary(*Binary)
	VisitUnary(*Unary)
	VisitCall(*Call)
	VisitAccess(*Access)
	VisitVarDecl(*VarDecl)
	VisitAssign(*Assign)
	VisitIf(*If)
	VisitWhile(*While)
	VisitRepeat(*Repeat)
	VisitFor(*For)
	VisitForIn(*ForIn)
	VisitBreak(*Break)
	VisitGoto(*Goto)
	VisitLabel(*Label)
	VisitReturn(*Return)
	VisitFuncDecl(*FuncDecl)
	VisitLambda(*Lambda)
	VisitBlock(*Block)
	VisitProgram(*Program)
}

// NopVisitor is meant to be embedded in visitors that only handle some kinds.
// Every kind the embedding type does not override is passed to Default, or
// ignored when Default is nil.
type NopVisitor struct {
	Default func(Node)
}

var _ Visitor = NopVisitor{}

func (v NopVisitor) generic(n Node) {
	if v.Default != nil {
		v.Default(n)
	}
}

func (v NopVisitor) VisitLiteral(n *Literal)   { v.generic(n) }
func (v NopVisitor) VisitTable(n *Table)       { v.generic(n) }
func (v NopVisitor) VisitVar(n *Var)           { v.generic(n) }
func (v NopVisitor) VisitBinary(n *Binary)     { v.generic(n) }
func (v NopVisitor) VisitUnary(n *Unary)       { v.generic(n) }
func (v NopVisitor) VisitCall(n *Call)         { v.generic(n) }
func (v NopVisitor) VisitAccess(n *Access)     { v.generic(n) }
func (v NopVisitor) VisitVarDecl(n *VarDecl)   { v.generic(n) }
func (v NopVisitor) VisitAssign(n *Assign)     { v.generic(n) }
func (v NopVisitor) VisitIf(n *If)             { v.generic(n) }
func (v NopVisitor) VisitWhile(n *While)       { v.generic(n) }
func (v NopVisitor) VisitRepeat(n *Repeat)     { v.generic(n) }
func (v NopVisitor) VisitFor(n *For)           { v.generic(n) }
func (v NopVisitor) VisitForIn(n *ForIn)       { v.generic(n) }
func (v NopVisitor) VisitBreak(n *Break)       { v.generic(n) }
func (v NopVisitor) VisitGoto(n *Goto)         { v.generic(n) }
func (v NopVisitor) VisitLabel(n *Label)       { v.generic(n) }
func (v NopVisitor) VisitReturn(n *Return)     { v.generic(n) }
func (v NopVisitor) VisitFuncDecl(n *FuncDecl) { v.generic(n) }
func (v NopVisitor) VisitLambda(n *Lambda)     { v.generic(n) }
func (v NopVisitor) VisitBlock(n *Block)       { v.generic(n) }
func (v NopVisitor) VisitProgram(n *Program)   { v.generic(n) }
