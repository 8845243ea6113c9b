package types

import "fmt"

// Identical reports whether x and y denote the same type. Within one
// environment this is reference equality; across environments declared
// types compare by identity key.
func Identical(x, y Type) bool {
	return identical(x, y, byIdentity)
}

func identical(x, y Type, mode comparison) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil || x.Kind() != y.Kind() {
		return false
	}

	switch x := x.(type) {
	case *NullType, *VoidType, *UnboundWildcardType:
		return true
	case *PrimitiveType:
		return x.id == y.(*PrimitiveType).id
	case *ArrayType:
		y := y.(*ArrayType)
		return x.dims == y.dims && identical(x.elem, y.elem, mode)
	case *StandardType, *GenericType, *RawType, *TypeVariable:
		return x.Key() == y.Key()
	case *ParameterizedType:
		y := y.(*ParameterizedType)
		if !identical(x.decl, y.decl, mode) {
			return false
		}
		if mode == byIdentity {
			return x.key == y.key
		}
		if len(x.args) != len(y.args) {
			return false
		}
		for i := range x.args {
			if !identical(x.args[i], y.args[i], mode) {
				return false
			}
		}
		return true
	case *ExtendsWildcardType:
		return identical(x.bound, y.(*ExtendsWildcardType).bound, mode)
	case *SuperWildcardType:
		return identical(x.bound, y.(*SuperWildcardType).bound, mode)
	}
	panic(fmt.Sprintf("types.Identical: unexpected type %T", x))
}

// Equivalent reports whether x and y are the same type for assignment
// purposes. It is Identical except that a generic declaration, its raw
// type and its parameterizations are equivalent to each other:
// List, List<String> and List<E> all compare by their erasure. Two
// parameterized types are equivalent only if identical.
func Equivalent(x, y Type) bool {
	if isGenericFamily(x) && isGenericFamily(y) &&
		!(x.Kind() == ParameterizedKind && y.Kind() == ParameterizedKind) {
		return Erasure(x) == Erasure(y)
	}
	return Identical(x, y)
}

func isGenericFamily(t Type) bool {
	switch t.Kind() {
	case GenericKind, RawKind, ParameterizedKind:
		return true
	}
	return false
}

// AssignableTo reports whether a value of type rhs can be assigned to a
// variable of type lhs. It is total: any pair of types that no rule
// covers is simply not assignable.
func AssignableTo(rhs, lhs Type) bool {
	if Equivalent(rhs, lhs) {
		return true
	}
	return assignable(rhs, lhs)
}

func assignable(rhs, lhs Type) bool {
	switch r := rhs.(type) {
	case *NullType:
		return IsReference(lhs)
	case *VoidType:
		return false
	case *PrimitiveType:
		return primitiveAssignable(r, lhs)
	case *ArrayType:
		return arrayAssignable(r, lhs)
	case *StandardType, *GenericType, *ParameterizedType, *RawType:
		return hierarchyAssignable(rhs.(HierarchyType), lhs)
	case *TypeVariable:
		return typeVariableAssignable(r, lhs)
	case *UnboundWildcardType, *ExtendsWildcardType, *SuperWildcardType:
		// Wildcards are only ever compared as type arguments.
		return false
	}
	panic(fmt.Sprintf("types.AssignableTo: unexpected type %T", rhs))
}

func primitiveAssignable(p *PrimitiveType, lhs Type) bool {
	switch l := lhs.(type) {
	case *PrimitiveType:
		return p.WidensTo(l)
	case *StandardType:
		boxed, err := p.env.Boxed(p, l.handle)
		if err != nil {
			return false
		}
		return AssignableTo(boxed, l)
	case WildcardType:
		return wildcardAccepts(l, p)
	}
	return false
}

func arrayAssignable(a *ArrayType, lhs Type) bool {
	switch l := lhs.(type) {
	case *ArrayType:
		if a.dims == l.dims {
			// Primitive arrays do not widen: byte[] is not a short[].
			if a.elem.Kind() == PrimitiveKind || l.elem.Kind() == PrimitiveKind {
				return Equivalent(a.elem, l.elem)
			}
			return AssignableTo(a.elem, l.elem)
		}
		if a.dims < l.dims {
			return false
		}
		// The excess dimensions form an array, which only Object,
		// Cloneable and Serializable elements can hold.
		return isArraySupertype(Erasure(l.elem))
	case *StandardType:
		return isArraySupertype(l)
	}
	return false
}

// isArraySupertype reports whether every array is assignable to t.
func isArraySupertype(t Type) bool {
	s, ok := t.(*StandardType)
	return ok && (s.IsJavaLangObject() || s.IsJavaLangCloneable() || s.IsJavaLangSerializable())
}

func hierarchyAssignable(h HierarchyType, lhs Type) bool {
	switch l := lhs.(type) {
	case *StandardType:
		return l.IsJavaLangObject() || IsSubType(h, l)
	case *ParameterizedType:
		return assignableToParameterized(h, l)
	case *RawType:
		return IsSubType(h, l)
	case WildcardType:
		return wildcardAccepts(l, h)
	}
	return false
}

// assignableToParameterized finds the supertype of h that instantiates the
// declaration of lhs and compares type arguments pairwise.
func assignableToParameterized(h HierarchyType, lhs *ParameterizedType) bool {
	view := findSupertype(h, lhs.decl, make(map[HierarchyType]bool))
	switch v := view.(type) {
	case nil:
		return false
	case *ParameterizedType:
		return typeArgumentsMatch(lhs.args, v.args)
	}
	// Raw or generic view: unchecked conversion.
	return true
}

// findSupertype returns h or the first supertype of h whose erasure is
// decl, searching the superclass before the interfaces.
func findSupertype(h HierarchyType, decl *GenericType, seen map[HierarchyType]bool) HierarchyType {
	if Erasure(h) == decl {
		return h
	}
	if seen[h] {
		return nil
	}
	seen[h] = true
	if s := h.Superclass(); s != nil {
		if v := findSupertype(s, decl, seen); v != nil {
			return v
		}
	}
	for _, i := range h.Interfaces() {
		if v := findSupertype(i, decl, seen); v != nil {
			return v
		}
	}
	return nil
}

func typeArgumentsMatch(lhsArgs, rhsArgs []Type) bool {
	if len(lhsArgs) != len(rhsArgs) {
		return false
	}
	for i := range lhsArgs {
		if !checkTypeArgument(lhsArgs[i], rhsArgs[i]) {
			return false
		}
	}
	return true
}

func typeVariableAssignable(v *TypeVariable, lhs Type) bool {
	switch l := lhs.(type) {
	case HierarchyType:
		if len(v.bounds) == 0 {
			return isObject(l)
		}
		for _, b := range v.bounds {
			if AssignableTo(b, l) {
				return true
			}
		}
		return false
	case *TypeVariable:
		return v.reaches(l)
	}
	return false
}

// wildcardAccepts reports whether a value of type rhs can be assigned to a
// variable whose type is the wildcard w.
func wildcardAccepts(w WildcardType, rhs Type) bool {
	if rhs.Kind() == NullKind {
		return true
	}
	switch w := w.(type) {
	case *UnboundWildcardType:
		return false
	case *ExtendsWildcardType:
		return AssignableTo(rhs, w.bound)
	case *SuperWildcardType:
		// Nothing but null is statically known to fit "? super L".
		return false
	}
	panic(fmt.Sprintf("types.wildcardAccepts: unexpected type %T", w))
}

// checkTypeArgument reports whether the type argument rhs is contained in
// the type argument arg, as when comparing List<rhs> against List<arg>.
func checkTypeArgument(arg, rhs Type) bool {
	switch a := arg.(type) {
	case *UnboundWildcardType:
		return true
	case *ExtendsWildcardType:
		switch r := rhs.(type) {
		case *ExtendsWildcardType:
			return AssignableTo(r.bound, a.bound)
		case *UnboundWildcardType:
			return isObject(a.bound)
		case *SuperWildcardType:
			return false
		}
		return AssignableTo(rhs, a.bound)
	case *SuperWildcardType:
		switch r := rhs.(type) {
		case *SuperWildcardType:
			return AssignableTo(a.bound, r.bound)
		case *UnboundWildcardType:
			return isObject(a.bound)
		}
		return false
	case *NullType, *VoidType, *PrimitiveType, *ArrayType,
		*StandardType, *GenericType, *ParameterizedType, *RawType, *TypeVariable:
		// Type arguments are invariant.
		return Identical(arg, rhs)
	}
	panic(fmt.Sprintf("types.checkTypeArgument: unexpected type %T", arg))
}
