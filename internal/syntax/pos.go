package syntax

import "fmt"

// Pos is a position within a signature. The zero value is invalid.
type Pos struct {
	source string // name of the signature's origin, may be empty
	line   uint32 // 1-based line number
	col    uint32 // 1-based column number (byte offset in line)
}

// NewPos creates a new Pos. Line and column numbers are 1-based.
func NewPos(source string, line, col uint32) Pos {
	return Pos{source: source, line: line, col: col}
}

// String formats the position as "source:line:col", or "line:col" when
// the source is unnamed.
func (p Pos) String() string {
	if p.source != "" {
		return fmt.Sprintf("%s:%d:%d", p.source, p.line, p.col)
	}
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position is valid.
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 {
	return p.line
}

// Col returns the 1-based column number.
func (p Pos) Col() uint32 {
	return p.col
}

// Source returns the name of the signature's origin.
func (p Pos) Source() string {
	return p.source
}
