package syntax

import (
	"fmt"
	"strings"
)

// Scanner splits a type signature into tokens. Each '>' is its own token,
// so nested closers like ">>" need no special handling.
type Scanner struct {
	source

	tok    Token
	lit    string
	tokPos Pos

	litBuf strings.Builder
}

// NewScanner creates a Scanner over src. The errh function is called for
// each lexical error; if nil, errors are silently ignored.
func NewScanner(name, src string, errh func(line, col uint32, msg string)) *Scanner {
	return &Scanner{source: *newSource(name, src, errh)}
}

// Next advances to the next token.
func (s *Scanner) Next() {
redo:
	for isWhitespace(s.ch) {
		s.nextch()
	}

	s.tokPos = s.pos()
	s.lit = ""

	switch {
	case s.ch < 0:
		s.tok = _EOF

	case isIdentStart(s.ch):
		s.scanIdent()

	default:
		tok, ok := delimiters[s.ch]
		if !ok {
			s.error(fmt.Sprintf("unexpected character %q", s.ch))
			s.nextch()
			goto redo
		}
		s.tok = tok
		s.nextch()
	}
}

var delimiters = map[rune]Token{
	'.': _Dot,
	',': _Comma,
	'<': _Lss,
	'>': _Gtr,
	'[': _Lbrack,
	']': _Rbrack,
	'?': _Question,
	'&': _And,
	'@': _At,
	'#': _Hash,
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the identifier text of the current _Name token.
func (s *Scanner) Literal() string {
	return s.lit
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

func (s *Scanner) scanIdent() {
	s.litBuf.Reset()
	for isIdentPart(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()
	s.tok = LookupKeyword(s.lit)
}
