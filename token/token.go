package token

import "fmt"

//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=Kind
type Kind int

const (
	ERROR Kind = iota
	IDENT
	KEYWORD
	NUMBER
	STRING
	OPERATOR
	SPECIAL
	COMMENT
	EOF
)

// Token is a single lexical unit. Literal holds the decoded value:
// int for NUMBER (*big.Int when it overflows int) or float64 with a point,
// the unquoted body for STRING, the lexeme for IDENT and KEYWORD, and a
// message for ERROR tokens produced by an unterminated string or block
// comment.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal any
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("%v %q@%d:%d", t.Kind, t.Lexeme, t.Line, t.Column)
}

// Is reports whether t has the given kind and lexeme.
func (t Token) Is(kind Kind, lexeme string) bool {
	return t.Kind == kind && t.Lexeme == lexeme
}

func (t Token) IsKeyword(word string) bool {
	return t.Is(KEYWORD, word)
}
