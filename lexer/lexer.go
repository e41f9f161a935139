package lexer

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/takoeight0821/moonlet/diag"
	"github.com/takoeight0821/moonlet/token"
)

// Lexer produces tokens on demand. Once the input is exhausted every call to
// NextToken returns an EOF token.
type Lexer struct {
	source []rune

	start   int // start of current lexeme
	current int // current position in source
	line    int // line of source[current]
	column  int // column of source[current]

	startLine   int
	startColumn int
}

func New(source string) *Lexer {
	return &Lexer{
		source: []rune(source),
		line:   1,
		column: 1,
	}
}

// Lex scans the whole source, comments included. The returned slice always
// ends with an EOF token. Every ERROR token is also reported in err.
func Lex(source string) ([]token.Token, error) {
	l := New(source)

	var tokens []token.Token
	var err error

	for {
		t := l.NextToken()
		tokens = append(tokens, t)
		if t.Kind == token.ERROR {
			err = errors.Join(err, lexicalError(t))
		}
		if t.Kind == token.EOF {
			return tokens, err
		}
	}
}

func lexicalError(t token.Token) error {
	msg := "unexpected character"
	if s, ok := t.Literal.(string); ok {
		msg = s
	}
	return &diag.LexicalError{
		Pos:     diag.Position{Line: t.Line, Column: t.Column},
		Lexeme:  t.Lexeme,
		Message: msg,
	}
}

// sentinel is returned by peek past the end of the source.
const sentinel = '\x00'

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return sentinel
	}
	return l.source[l.current]
}

func (l *Lexer) peekNext() rune {
	if l.current+1 >= len(l.source) {
		return sentinel
	}
	return l.source[l.current+1]
}

func (l *Lexer) advance() rune {
	r := l.source[l.current]
	l.current++
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) makeToken(kind token.Kind, literal any) token.Token {
	return token.Token{
		Kind:    kind,
		Lexeme:  string(l.source[l.start:l.current]),
		Literal: literal,
		Line:    l.startLine,
		Column:  l.startColumn,
	}
}

func (l *Lexer) NextToken() token.Token {
	for {
		l.start = l.current
		l.startLine, l.startColumn = l.line, l.column

		if l.isAtEnd() {
			return token.Token{Kind: token.EOF, Lexeme: "", Line: l.line, Column: l.column}
		}

		c := l.advance()
		switch {
		case c == ' ', c == '\t', c == '\r', c == '\n':
			// newlines are counted by advance
			continue
		case c == '-':
			if l.peek() == '-' {
				return l.comment()
			}
			return l.makeToken(token.OPERATOR, nil)
		case isAlpha(c):
			return l.identifier()
		case isDigit(c):
			return l.number()
		case c == '"', c == '\'':
			return l.string(c)
		default:
			return l.operator(c)
		}
	}
}

func (l *Lexer) comment() token.Token {
	l.advance() // second '-'

	if l.peek() == '[' && l.peekNext() == '[' {
		l.advance()
		l.advance()
		for !(l.peek() == ']' && l.peekNext() == ']') {
			if l.isAtEnd() {
				return l.makeToken(token.ERROR, "unterminated block comment")
			}
			l.advance()
		}
		l.advance()
		l.advance()
		return l.makeToken(token.COMMENT, nil)
	}

	for l.peek() != '\n' && !l.isAtEnd() {
		l.advance()
	}
	return l.makeToken(token.COMMENT, nil)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func (l *Lexer) identifier() token.Token {
	for isAlpha(l.peek()) || unicode.IsDigit(l.peek()) {
		l.advance()
	}

	value := string(l.source[l.start:l.current])
	if _, ok := keywords[value]; ok {
		return l.makeToken(token.KEYWORD, value)
	}
	return l.makeToken(token.IDENT, value)
}

var keywords = map[string]struct{}{
	"and": {}, "break": {}, "do": {}, "else": {}, "elseif": {}, "end": {},
	"false": {}, "for": {}, "function": {}, "goto": {}, "if": {}, "in": {},
	"local": {}, "nil": {}, "not": {}, "or": {}, "repeat": {}, "return": {},
	"then": {}, "true": {}, "until": {}, "while": {},
}

// number accepts digits with at most one decimal point. There are no
// exponents and no hexadecimal literals. Integers too large for int are
// kept exact as *big.Int.
func (l *Lexer) number() token.Token {
	seenPoint := false
	for {
		if isDigit(l.peek()) {
			l.advance()
		} else if l.peek() == '.' && !seenPoint {
			seenPoint = true
			l.advance()
		} else {
			break
		}
	}

	text := string(l.source[l.start:l.current])
	if seenPoint {
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return l.makeToken(token.ERROR, err.Error())
		}
		return l.makeToken(token.NUMBER, value)
	}

	value, err := strconv.Atoi(text)
	if errors.Is(err, strconv.ErrRange) {
		if n, ok := new(big.Int).SetString(text, 10); ok {
			return l.makeToken(token.NUMBER, n)
		}
	}
	if err != nil {
		return l.makeToken(token.ERROR, err.Error())
	}
	return l.makeToken(token.NUMBER, value)
}

func (l *Lexer) string(quote rune) token.Token {
	for l.peek() != quote && !l.isAtEnd() {
		l.advance()
	}

	if l.isAtEnd() {
		return l.makeToken(token.ERROR, "unterminated string")
	}

	l.advance()
	value := string(l.source[l.start+1 : l.current-1])
	return l.makeToken(token.STRING, value)
}

var doubleOperators = map[string]struct{}{
	"==": {}, "~=": {}, "<=": {}, ">=": {}, "..": {},
}

const (
	singleOperators = "+-*/%^<>=~."
	specialSymbols  = "()[]{}#;:,\\"
)

func (l *Lexer) operator(c rune) token.Token {
	if c == ':' && l.peek() == ':' {
		l.advance()
		return l.makeToken(token.SPECIAL, nil)
	}

	if _, ok := doubleOperators[string([]rune{c, l.peek()})]; ok {
		l.advance()
		return l.makeToken(token.OPERATOR, nil)
	}

	if strings.ContainsRune(singleOperators, c) {
		return l.makeToken(token.OPERATOR, nil)
	}

	if strings.ContainsRune(specialSymbols, c) {
		return l.makeToken(token.SPECIAL, nil)
	}

	return l.makeToken(token.ERROR, nil)
}
