package ast

//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=Kind -trimprefix=Kind
type Kind int

// The set of node kinds is closed: every Node returns one of these.
const (
	KindLiteral Kind = iota
	KindTable
	KindVar
	KindBinary
	KindUnary
	KindCall
	KindAccess
	KindVarDecl
	KindAssign
	KindIf
	KindWhile
	KindRepeat
	KindFor
	KindForIn
	KindBreak
	KindGoto
	KindLabel
	KindReturn
	KindFuncDecl
	KindLambda
	KindBlock
	KindProgram
)
