// Package code holds the text instruction listing of the stack machine.
package code

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

type Op string

const (
	CRCT Op = "CRCT" // push constant
	CRVL Op = "CRVL" // push variable
	ARMZ Op = "ARMZ" // store top into variable

	SOMA Op = "SOMA"
	SUBT Op = "SUBT"
	MULT Op = "MULT"
	DIVI Op = "DIVI"
	MODI Op = "MODI"
	POTI Op = "POTI"
	INVR Op = "INVR" // negate

	CMME Op = "CMME" // <
	CMMA Op = "CMMA" // >
	CMEG Op = "CMEG" // <=
	CMAG Op = "CMAG" // >=
	CMIG Op = "CMIG" // ==
	CMDG Op = "CMDG" // ~=

	DSVF Op = "DSVF" // jump if false
	DSVS Op = "DSVS" // jump
)

var arithmetic = map[string]Op{
	"+": SOMA,
	"-": SUBT,
	"*": MULT,
	"/": DIVI,
	"%": MODI,
	"^": POTI,
}

var relational = map[string]Op{
	"<":  CMME,
	">":  CMMA,
	"<=": CMEG,
	">=": CMAG,
	"==": CMIG,
	"~=": CMDG,
}

// Arithmetic returns the instruction for a binary arithmetic operator.
func Arithmetic(op string) (Op, bool) {
	o, ok := arithmetic[op]
	return o, ok
}

// Relational returns the instruction for a comparison operator.
func Relational(op string) (Op, bool) {
	o, ok := relational[op]
	return o, ok
}

// Listing is an append-only sequence of instructions and label markers.
type Listing struct {
	lines []string
}

func (l *Listing) Emit(op Op, operand string) {
	if operand == "" {
		l.lines = append(l.lines, string(op))
		return
	}
	l.lines = append(l.lines, string(op)+" "+operand)
}

func (l *Listing) EmitAddr(op Op, addr int) {
	l.Emit(op, strconv.Itoa(addr))
}

// EmitConst pushes a numeric constant.
func (l *Listing) EmitConst(value any) {
	l.Emit(CRCT, FormatNumber(value))
}

func (l *Listing) Label(name string) {
	l.lines = append(l.lines, name+":")
}

func (l *Listing) Lines() []string {
	return l.lines
}

func (l *Listing) Len() int {
	return len(l.lines)
}

func (l *Listing) String() string {
	var b strings.Builder
	for _, line := range l.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatNumber renders an int as is and a float with at least one
// fractional digit.
func FormatNumber(value any) string {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case *big.Int:
		return v.String()
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s
	default:
		return fmt.Sprint(v)
	}
}
