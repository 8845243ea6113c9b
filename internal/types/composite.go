package types

import "strings"

// ArrayType represents Elem[]...[] with Dims pairs of brackets.
// The element type is never itself an array.
type ArrayType struct {
	typ
	elem Type
	dims int
}

// Elem returns the innermost element type.
func (a *ArrayType) Elem() Type {
	return a.elem
}

// Dims returns the number of dimensions, at least 1.
func (a *ArrayType) Dims() int {
	return a.dims
}

// ComponentType returns the type one dimension down: for int[][] that is
// int[], for int[] it is int.
func (a *ArrayType) ComponentType() Type {
	if a.dims == 1 {
		return a.elem
	}
	return a.env.NewArray(a.elem, a.dims-1)
}

func (a *ArrayType) String() string {
	var buf strings.Builder
	writeType(&buf, a, false)
	return buf.String()
}
