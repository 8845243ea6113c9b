package types

import "fmt"

// IsSubType reports whether sub is a proper subtype of super, found by
// walking superclasses and interfaces. When both types share an
// environment the result is memoized in its subtype cache.
func IsSubType(sub, super HierarchyType) bool {
	e := sub.Env()
	if e == nil || e != super.Env() {
		return isSubType(sub, super)
	}
	key := typePair{sub, super}
	if v, ok := e.subtypes.Get(key); ok {
		return v
	}
	v := isSubType(sub, super)
	e.subtypes.Add(key, v)
	return v
}

func isSubType(sub, super HierarchyType) bool {
	h := sub.hier()
	if s := h.super; s != nil && (Equivalent(super, s) || IsSubType(s, super)) {
		return true
	}
	for _, i := range h.ifaces {
		if Equivalent(super, i) || IsSubType(i, super) {
			return true
		}
	}
	return false
}

// DirectSupertypes returns the immediate supertypes of t: the superclass
// and interfaces of a hierarchy type, the bounds of a type variable, and
// Object, Cloneable and Serializable for arrays (those the environment
// can find). Other kinds have no supertypes in this model and yield an
// *UnsupportedError.
func DirectSupertypes(t Type) ([]Type, error) {
	switch t := t.(type) {
	case *StandardType, *GenericType, *ParameterizedType, *RawType:
		h := t.(HierarchyType).hier()
		out := make([]Type, 0, 1+len(h.ifaces))
		if h.super != nil {
			out = append(out, h.super)
		}
		for _, i := range h.ifaces {
			out = append(out, i)
		}
		return out, nil
	case *TypeVariable:
		if len(t.bounds) == 0 {
			if o := t.env.Object(); o != nil {
				return []Type{o}, nil
			}
			return nil, nil
		}
		out := make([]Type, len(t.bounds))
		copy(out, t.bounds)
		return out, nil
	case *ArrayType:
		var out []Type
		for _, name := range []string{javaLangObject, javaLangCloneable, javaIoSerializable} {
			if s, err := t.env.lookupStandard(name, nil); err == nil {
				out = append(out, s)
			}
		}
		return out, nil
	case *NullType, *VoidType, *PrimitiveType,
		*UnboundWildcardType, *ExtendsWildcardType, *SuperWildcardType:
		return nil, &UnsupportedError{Op: "DirectSupertypes", Kind: t.Kind()}
	}
	panic(fmt.Sprintf("types.DirectSupertypes: unexpected type %T", t))
}

// DirectSubtypes returns the types created so far whose superclass or
// one of whose interfaces is t, in creation order. Only hierarchy types
// have subtypes in this model; other kinds yield an *UnsupportedError.
func (e *Environment) DirectSubtypes(t Type) ([]Type, error) {
	target, ok := t.(HierarchyType)
	if !ok {
		return nil, &UnsupportedError{Op: "DirectSubtypes", Kind: t.Kind()}
	}
	var out []Type
	for _, c := range e.all {
		h, ok := c.(HierarchyType)
		if !ok {
			continue
		}
		if directlyExtends(h.hier(), target) {
			out = append(out, c)
		}
	}
	return out, nil
}

func directlyExtends(h *hierarchy, target HierarchyType) bool {
	if h.super == target {
		return true
	}
	for _, i := range h.ifaces {
		if i == target {
			return true
		}
	}
	return false
}
