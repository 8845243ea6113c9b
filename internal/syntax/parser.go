package syntax

import "strings"

// SyntaxError represents a syntax error.
type SyntaxError struct {
	Pos Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Parser parses type signatures. Parsing stops reporting after the first
// error; the returned tree is then incomplete.
type Parser struct {
	scanner *Scanner

	tok Token
	lit string
	pos Pos

	errh   func(pos Pos, msg string)
	errcnt int
	first  error
}

// NewParser creates a Parser for src. name labels positions in errors.
func NewParser(name, src string, errh func(pos Pos, msg string)) *Parser {
	p := &Parser{errh: errh}
	scanErrh := func(line, col uint32, msg string) {
		p.syntaxErrorAt(NewPos(name, line, col), msg)
	}
	p.scanner = NewScanner(name, src, scanErrh)
	p.next()
	return p
}

// ParseType parses a complete type signature.
func ParseType(src string) (Expr, error) {
	p := NewParser("", src, nil)
	x := p.ParseType()
	return x, p.Err()
}

// ParseTypeParam parses a complete type parameter declaration.
func ParseTypeParam(src string) (*TypeParam, error) {
	p := NewParser("", src, nil)
	x := p.ParseTypeParam()
	return x, p.Err()
}

// Err returns the first error encountered, or nil.
func (p *Parser) Err() error {
	return p.first
}

// ErrorCount returns the number of errors reported.
func (p *Parser) ErrorCount() int {
	return p.errcnt
}

// ----------------------------------------------------------------------------
// Token navigation

func (p *Parser) next() {
	p.scanner.Next()
	p.tok = p.scanner.Token()
	p.lit = p.scanner.Literal()
	p.pos = p.scanner.Pos()
}

func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.syntaxError("expected " + tok.String() + ", found " + p.tokString())
	}
}

func (p *Parser) tokString() string {
	if p.tok == _Name {
		return "name " + p.lit
	}
	return p.tok.String()
}

// ----------------------------------------------------------------------------
// Error handling

func (p *Parser) syntaxError(msg string) {
	p.syntaxErrorAt(p.pos, msg)
}

func (p *Parser) syntaxErrorAt(pos Pos, msg string) {
	p.errcnt++
	if p.errcnt > 1 {
		return
	}
	p.first = &SyntaxError{Pos: pos, Msg: msg}
	if p.errh != nil {
		p.errh(pos, msg)
	}
}

// ----------------------------------------------------------------------------
// Signatures

// ParseType parses a type signature followed by end of input.
//
//	Type     = ( QualName [ "@" QualName ] | [ "#" ] QualName [ TypeArgs ] ) { "[" "]" }
//	TypeArgs = "<" TypeArg { "," TypeArg } ">"
//	TypeArg  = Type | "?" [ ( "extends" | "super" ) Type ]
func (p *Parser) ParseType() Expr {
	x := p.typ()
	p.wantEOF()
	return x
}

// ParseTypeParam parses a type parameter declaration followed by end of
// input.
//
//	TypeParam = Name [ "extends" Type { "&" Type } ]
func (p *Parser) ParseTypeParam() *TypeParam {
	tp := &TypeParam{}
	tp.pos = p.pos
	tp.Name = p.simpleName()
	if p.got(_Extends) {
		tp.Bounds = append(tp.Bounds, p.typ())
		for p.got(_And) {
			tp.Bounds = append(tp.Bounds, p.typ())
		}
	}
	p.wantEOF()
	return tp
}

func (p *Parser) wantEOF() {
	if p.tok != _EOF {
		p.syntaxError("unexpected " + p.tokString() + " after type")
	}
}

func (p *Parser) typ() Expr {
	pos := p.pos
	var x Expr
	switch p.tok {
	case _Name:
		x = p.classOrVar()
	case _Hash:
		p.next()
		ct := p.classType()
		ct.pos = pos
		ct.Decl = true
		if ct.Args != nil {
			p.syntaxErrorAt(pos, "generic declaration "+ct.Name.Value+" takes no type arguments")
		}
		x = ct
	default:
		p.syntaxError("expected type, found " + p.tokString())
		n := &Name{Value: "_"}
		n.pos = pos
		return n
	}

	dims := 0
	for p.got(_Lbrack) {
		p.want(_Rbrack)
		dims++
	}
	if dims > 0 {
		a := &ArrayType{Elem: x, Dims: dims}
		a.pos = pos
		return a
	}
	return x
}

func (p *Parser) classOrVar() Expr {
	pos := p.pos
	name := p.qualifiedName()
	if p.got(_At) {
		v := &TypeVarRef{Name: name, Owner: p.qualifiedName()}
		v.pos = pos
		if strings.Contains(name.Value, ".") {
			p.syntaxErrorAt(pos, "type variable name "+name.Value+" must be simple")
		}
		return v
	}
	ct := &ClassType{Name: name}
	ct.pos = pos
	if p.tok == _Lss {
		ct.Args = p.typeArgs()
	}
	return ct
}

func (p *Parser) classType() *ClassType {
	ct := &ClassType{Name: p.qualifiedName()}
	ct.pos = ct.Name.pos
	if p.tok == _Lss {
		ct.Args = p.typeArgs()
	}
	return ct
}

func (p *Parser) typeArgs() []Expr {
	p.want(_Lss)
	args := []Expr{p.typeArg()}
	for p.got(_Comma) {
		args = append(args, p.typeArg())
	}
	p.want(_Gtr)
	return args
}

func (p *Parser) typeArg() Expr {
	if p.tok != _Question {
		return p.typ()
	}
	w := &Wildcard{}
	w.pos = p.pos
	p.next()
	switch p.tok {
	case _Extends:
		p.next()
		w.Bound = p.typ()
		w.Upper = true
	case _Super:
		p.next()
		w.Bound = p.typ()
	}
	return w
}

func (p *Parser) qualifiedName() *Name {
	n := &Name{}
	n.pos = p.pos
	var b strings.Builder
	b.WriteString(p.ident())
	for p.got(_Dot) {
		b.WriteByte('.')
		b.WriteString(p.ident())
	}
	n.Value = b.String()
	return n
}

func (p *Parser) simpleName() *Name {
	n := &Name{}
	n.pos = p.pos
	n.Value = p.ident()
	return n
}

func (p *Parser) ident() string {
	if p.tok != _Name {
		p.syntaxError("expected name, found " + p.tokString())
		return "_"
	}
	lit := p.lit
	p.next()
	return lit
}
