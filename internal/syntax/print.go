package syntax

import (
	"fmt"
	"io"
	"strings"
)

// String returns the signature text of a node in canonical spacing.
func String(n Node) string {
	var buf strings.Builder
	writeNode(&buf, n)
	return buf.String()
}

func writeNode(buf *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Name:
		buf.WriteString(n.Value)
	case *ClassType:
		if n.Decl {
			buf.WriteByte('#')
		}
		buf.WriteString(n.Name.Value)
		if n.Args != nil {
			buf.WriteByte('<')
			for i, a := range n.Args {
				if i > 0 {
					buf.WriteString(", ")
				}
				writeNode(buf, a)
			}
			buf.WriteByte('>')
		}
	case *ArrayType:
		writeNode(buf, n.Elem)
		buf.WriteString(strings.Repeat("[]", n.Dims))
	case *Wildcard:
		buf.WriteByte('?')
		if n.Bound != nil {
			if n.Upper {
				buf.WriteString(" extends ")
			} else {
				buf.WriteString(" super ")
			}
			writeNode(buf, n.Bound)
		}
	case *TypeVarRef:
		buf.WriteString(n.Name.Value)
		buf.WriteByte('@')
		buf.WriteString(n.Owner.Value)
	case *TypeParam:
		buf.WriteString(n.Name.Value)
		for i, b := range n.Bounds {
			if i == 0 {
				buf.WriteString(" extends ")
			} else {
				buf.WriteString(" & ")
			}
			writeNode(buf, b)
		}
	}
}

// Fprint writes an indented tree representation of the node to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Name:
		p.printf("Name %q %s\n", n.Value, n.pos)

	case *ClassType:
		kind := "ClassType"
		if n.Decl {
			kind = "GenericDecl"
		}
		p.printf("%s %q %s\n", kind, n.Name.Value, n.pos)
		if n.Args != nil {
			p.indent++
			p.printf("Args:\n")
			p.indent++
			for _, a := range n.Args {
				p.print(a)
			}
			p.indent -= 2
		}

	case *ArrayType:
		p.printf("ArrayType dims=%d %s\n", n.Dims, n.pos)
		p.indent++
		p.print(n.Elem)
		p.indent--

	case *Wildcard:
		switch {
		case n.Bound == nil:
			p.printf("Wildcard ? %s\n", n.pos)
		case n.Upper:
			p.printf("Wildcard extends %s\n", n.pos)
		default:
			p.printf("Wildcard super %s\n", n.pos)
		}
		if n.Bound != nil {
			p.indent++
			p.print(n.Bound)
			p.indent--
		}

	case *TypeVarRef:
		p.printf("TypeVarRef %q owner=%q %s\n", n.Name.Value, n.Owner.Value, n.pos)

	case *TypeParam:
		p.printf("TypeParam %q %s\n", n.Name.Value, n.pos)
		p.indent++
		for _, b := range n.Bounds {
			p.print(b)
		}
		p.indent--

	default:
		p.printf("%T\n", n)
	}
}
