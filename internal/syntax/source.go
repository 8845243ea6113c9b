package syntax

import (
	"unicode"
	"unicode/utf8"
)

// source is a character reader with position tracking.
type source struct {
	buf  string
	name string
	line uint32
	col  uint32

	ch   rune // current character, -1 at EOF
	offs int  // byte offset of the next character

	errh func(line, col uint32, msg string)
}

func newSource(name, src string, errh func(line, col uint32, msg string)) *source {
	s := &source{
		buf:  src,
		name: name,
		line: 1,
		ch:   -1, // before first char, so nextch does not bump the line
		errh: errh,
	}
	s.nextch()
	return s
}

// nextch advances to the next character. After it returns, (line, col)
// is the position of s.ch.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	r, width := utf8.DecodeRuneInString(s.buf[s.offs:])
	if r == utf8.RuneError && width == 1 {
		s.error("invalid UTF-8 encoding")
	}
	s.ch = r
	s.offs += width
}

func (s *source) pos() Pos {
	return NewPos(s.name, s.line, s.col)
}

func (s *source) error(msg string) {
	if s.errh != nil {
		s.errh(s.line, s.col, msg)
	}
}

// Java identifiers may contain letters, digits, '_' and '$'.
func isIdentStart(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_' || r == '$' ||
		r >= utf8.RuneSelf && unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || '0' <= r && r <= '9' ||
		r >= utf8.RuneSelf && unicode.IsDigit(r)
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
