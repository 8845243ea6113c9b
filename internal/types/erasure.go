package types

import (
	"fmt"
	"hash/fnv"
)

// Erasure returns the type left after discarding type arguments. Arrays
// erase their element type, type variables erase to their first bound and
// wildcards to their bound; "?" and unbounded variables erase to
// java.lang.Object when the environment knows it.
func Erasure(t Type) Type {
	switch t := t.(type) {
	case *NullType, *VoidType, *PrimitiveType, *StandardType, *GenericType:
		return t
	case *ParameterizedType:
		return t.decl
	case *RawType:
		return t.decl
	case *ArrayType:
		elem := Erasure(t.elem)
		if elem == t.elem {
			return t
		}
		return t.env.NewArray(elem, t.dims)
	case *TypeVariable:
		if len(t.bounds) > 0 {
			return Erasure(t.bounds[0])
		}
		return objectOr(t)
	case *UnboundWildcardType:
		return objectOr(t)
	case *ExtendsWildcardType:
		return Erasure(t.bound)
	case *SuperWildcardType:
		return Erasure(t.bound)
	}
	panic(fmt.Sprintf("types.Erasure: unexpected type %T", t))
}

// objectOr returns java.lang.Object from t's environment, or t itself if
// the environment cannot produce it.
func objectOr(t Type) Type {
	if o := t.Env().Object(); o != nil {
		return o
	}
	return t
}

const (
	arrayShift    = 5
	wildcardShift = 3
)

// Hash returns a hash consistent with Identical. Parameterized types hash
// their arguments as well as their declaration; raw and generic types hash
// the declaration only.
func Hash(t Type) uint32 {
	return hash(t)
}

func hash(t Type) uint32 {
	b := t.base()
	if b.hashed {
		return b.hash
	}
	var h uint32
	switch t := t.(type) {
	case *NullType:
		h = 1
	case *VoidType:
		h = 2
	case *UnboundWildcardType:
		h = 3
	case *PrimitiveType:
		h = 16 + uint32(t.id)
	case *ArrayType:
		h = hash(t.elem)<<arrayShift + uint32(t.dims)
	case *StandardType, *GenericType, *TypeVariable:
		h = hashKey(t.Key())
	case *RawType:
		h = hash(t.decl)
	case *ParameterizedType:
		h = hash(t.decl)
		for _, a := range t.args {
			h += hash(a)
		}
	case *ExtendsWildcardType:
		h = hash(t.bound) << wildcardShift
	case *SuperWildcardType:
		h = hash(t.bound)<<wildcardShift + 1
	default:
		panic(fmt.Sprintf("types.Hash: unexpected type %T", t))
	}
	b.hash, b.hashed = h, true
	return h
}

func hashKey(key string) uint32 {
	f := fnv.New32a()
	f.Write([]byte(key))
	return f.Sum32()
}
