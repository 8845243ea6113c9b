package types

import "strings"

// TypeVariable is a declared type parameter such as T in
// <T extends Number & Comparable<T>>.
type TypeVariable struct {
	typ
	name   string
	bounds []Type
}

// Name returns the simple name of the variable.
func (v *TypeVariable) Name() string {
	return v.name
}

// Bounds returns the declared bounds in order. The first bound determines
// the erasure.
func (v *TypeVariable) Bounds() []Type {
	return v.bounds
}

// reaches reports whether target is found by walking the bound chain of v.
func (v *TypeVariable) reaches(target *TypeVariable) bool {
	for _, b := range v.bounds {
		if b == target {
			return true
		}
		if bv, ok := b.(*TypeVariable); ok && bv.reaches(target) {
			return true
		}
	}
	return false
}

func (v *TypeVariable) String() string {
	var buf strings.Builder
	writeType(&buf, v, false)
	return buf.String()
}

// WildcardType is implemented by the three wildcard kinds.
type WildcardType interface {
	Type

	// Bound returns the wildcard bound, or nil for "?".
	Bound() Type
}

// UnboundWildcardType is "?". There is one per environment.
type UnboundWildcardType struct {
	typ
}

func (*UnboundWildcardType) Bound() Type { return nil }

func (*UnboundWildcardType) String() string {
	return "?"
}

// ExtendsWildcardType is "? extends B".
type ExtendsWildcardType struct {
	typ
	bound Type
}

func (w *ExtendsWildcardType) Bound() Type { return w.bound }

func (w *ExtendsWildcardType) String() string {
	var buf strings.Builder
	writeType(&buf, w, false)
	return buf.String()
}

// SuperWildcardType is "? super B".
type SuperWildcardType struct {
	typ
	bound Type
}

func (w *SuperWildcardType) Bound() Type { return w.bound }

func (w *SuperWildcardType) String() string {
	var buf strings.Builder
	writeType(&buf, w, false)
	return buf.String()
}
