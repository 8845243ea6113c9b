// Package descriptor defines the facts a compiler front end supplies about
// a type. The type environment consumes descriptors and never looks behind
// them, so any symbol resolver can feed it.
package descriptor

import (
	"errors"
	"fmt"
)

// Kind discriminates descriptors.
type Kind int

const (
	Invalid Kind = iota
	Primitive
	Null
	Void
	Array
	Class // non-generic class or interface
	Generic
	Parameterized
	Raw
	TypeVariable
	Wildcard
)

var kindNames = [...]string{
	Invalid:       "invalid",
	Primitive:     "primitive",
	Null:          "null",
	Void:          "void",
	Array:         "array",
	Class:         "class",
	Generic:       "generic",
	Parameterized: "parameterized",
	Raw:           "raw",
	TypeVariable:  "type variable",
	Wildcard:      "wildcard",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Modifiers holds declaration modifiers.
type Modifiers uint16

const (
	Public Modifiers = 1 << iota
	Protected
	Private
	StaticModifier
	Final
	Abstract
)

// Flags classifies a declared type.
type Flags uint16

const (
	IsClass Flags = 1 << iota
	IsInterface
	IsEnum
	IsAnnotation
	IsTopLevel
	IsNested
	IsMember
	IsLocal
	IsAnonymous
)

// Descriptor is the minimal view of a type that the environment needs.
//
// Accessors that do not apply to a descriptor's kind return zero values.
type Descriptor interface {
	Kind() Kind

	// Key is stable for the declaration (or, for parameterized types, for
	// the declaration plus its arguments).
	Key() string

	// Name is the fully qualified name for declared types, the keyword for
	// primitives and the simple name for type variables.
	Name() string

	Modifiers() Modifiers
	Flags() Flags

	// Handle is an opaque declaration handle; the environment passes it
	// back to the Resolver as a scope hint.
	Handle() any

	// Arrays. Element is never an array descriptor.
	Element() Descriptor
	Dimensions() int

	// Hierarchy kinds.
	Superclass() Descriptor
	Interfaces() []Descriptor

	// Generic declarations.
	TypeParameters() []Descriptor

	// Parameterized and raw types.
	Declaration() Descriptor
	TypeArguments() []Descriptor

	// Type variables and wildcards. A wildcard has at most one bound.
	Bounds() []Descriptor
	IsUpperBound() bool
}

// ErrNotFound is returned by resolvers for unknown names.
var ErrNotFound = errors.New("type not found")

// Resolver looks up declared types by qualified name.
type Resolver interface {
	ResolveType(qualifiedName string, scope any) (Descriptor, error)
}
