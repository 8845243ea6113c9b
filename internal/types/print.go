package types

import (
	"fmt"
	"strings"
)

// writeType writes the pretty signature of t to buf. Type variables nested
// inside another type are written plain, by name only; this keeps
// recursive bounds like E extends Enum<E> finite.
func writeType(buf *strings.Builder, t Type, plain bool) {
	switch t := t.(type) {
	case *NullType, *VoidType, *PrimitiveType, *StandardType, *RawType, *UnboundWildcardType:
		buf.WriteString(t.String())

	case *ArrayType:
		writeType(buf, t.elem, true)
		for i := 0; i < t.dims; i++ {
			buf.WriteString("[]")
		}

	case *GenericType:
		buf.WriteString(t.name)
		if len(t.params) == 0 {
			return
		}
		buf.WriteByte('<')
		for i, p := range t.params {
			if i > 0 {
				buf.WriteString(", ")
			}
			writeType(buf, p, false)
		}
		buf.WriteByte('>')

	case *ParameterizedType:
		buf.WriteString(t.decl.name)
		buf.WriteByte('<')
		writeList(buf, t.args)
		buf.WriteByte('>')

	case *TypeVariable:
		buf.WriteString(t.name)
		if plain || trivialBounds(t) {
			return
		}
		buf.WriteString(" extends ")
		writeList(buf, t.bounds)

	case *ExtendsWildcardType:
		buf.WriteString("? extends ")
		writeType(buf, t.bound, true)

	case *SuperWildcardType:
		buf.WriteString("? super ")
		writeType(buf, t.bound, true)

	default:
		panic(fmt.Sprintf("types.writeType: unexpected type %T", t))
	}
}

func writeList(buf *strings.Builder, list []Type) {
	for i, t := range list {
		if i > 0 {
			buf.WriteString(", ")
		}
		writeType(buf, t, true)
	}
}

// trivialBounds reports whether v has no bound worth printing.
func trivialBounds(v *TypeVariable) bool {
	switch len(v.bounds) {
	case 0:
		return true
	case 1:
		return isObject(v.bounds[0])
	}
	return false
}

// isObject reports whether t is java.lang.Object.
func isObject(t Type) bool {
	s, ok := t.(*StandardType)
	return ok && s.IsJavaLangObject()
}
