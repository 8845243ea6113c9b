// Package syntax scans and parses Java type signatures such as
// java.util.Map<K, ? extends java.util.List<V>>[].
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	_EOF Token = iota

	_Name // identifier: java, List, T

	// Delimiters
	_Dot      // .
	_Comma    // ,
	_Lss      // <
	_Gtr      // >
	_Lbrack   // [
	_Rbrack   // ]
	_Question // ?
	_And      // &
	_At       // @
	_Hash     // #

	// Keywords
	_Extends
	_Super

	tokenCount
)

var tokenNames = [...]string{
	_EOF:  "EOF",
	_Name: "NAME",

	_Dot:      ".",
	_Comma:    ",",
	_Lss:      "<",
	_Gtr:      ">",
	_Lbrack:   "[",
	_Rbrack:   "]",
	_Question: "?",
	_And:      "&",
	_At:       "@",
	_Hash:     "#",

	_Extends: "extends",
	_Super:   "super",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t == _Extends || t == _Super
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

var keywords = map[string]Token{
	"extends": _Extends,
	"super":   _Super,
}

// LookupKeyword returns the keyword token for ident, or _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}
