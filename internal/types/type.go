// Package types models a Java-like type universe and answers assignability,
// erasure, equivalence and subtype questions about it.
//
// Types are created and interned by an Environment. Every kind is a
// distinct concrete type; the set of kinds is closed and each operation in
// this package switches over all of them.
package types

import (
	"fmt"

	"github.com/you-not-fish/jtypes/internal/descriptor"
)

// Kind identifies the concrete variant of a Type.
type Kind int

const (
	NullKind Kind = iota
	VoidKind
	PrimitiveKind
	ArrayKind
	StandardKind
	GenericKind
	ParameterizedKind
	RawKind
	TypeVariableKind
	UnboundWildcardKind
	ExtendsWildcardKind
	SuperWildcardKind

	kindCount
)

var kindNames = [...]string{
	NullKind:            "null",
	VoidKind:            "void",
	PrimitiveKind:       "primitive",
	ArrayKind:           "array",
	StandardKind:        "standard",
	GenericKind:         "generic",
	ParameterizedKind:   "parameterized",
	RawKind:             "raw",
	TypeVariableKind:    "type variable",
	UnboundWildcardKind: "unbound wildcard",
	ExtendsWildcardKind: "extends wildcard",
	SuperWildcardKind:   "super wildcard",
}

func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Type is the interface implemented by all types.
type Type interface {
	// Kind returns the variant discriminant.
	Kind() Kind

	// Env returns the environment that created the type.
	Env() *Environment

	// Key returns the identity key taken from the type's descriptor.
	Key() string

	Modifiers() descriptor.Modifiers
	Flags() descriptor.Flags

	// String returns the pretty signature of the type.
	String() string

	// base restricts implementations to this package.
	base() *typ
}

// typ holds the fields shared by every kind.
type typ struct {
	env   *Environment
	kind  Kind
	key   string
	mods  descriptor.Modifiers
	flags descriptor.Flags
	id    uint64 // creation order within env

	hash   uint32
	hashed bool
}

func (t *typ) Kind() Kind                      { return t.kind }
func (t *typ) Env() *Environment               { return t.env }
func (t *typ) Key() string                     { return t.key }
func (t *typ) Modifiers() descriptor.Modifiers { return t.mods }
func (t *typ) Flags() descriptor.Flags         { return t.flags }
func (t *typ) base() *typ                      { return t }

func (t *typ) IsClass() bool      { return t.flags&descriptor.IsClass != 0 }
func (t *typ) IsInterface() bool  { return t.flags&descriptor.IsInterface != 0 }
func (t *typ) IsEnum() bool       { return t.flags&descriptor.IsEnum != 0 }
func (t *typ) IsAnnotation() bool { return t.flags&descriptor.IsAnnotation != 0 }
func (t *typ) IsTopLevel() bool   { return t.flags&descriptor.IsTopLevel != 0 }
func (t *typ) IsNested() bool     { return t.flags&descriptor.IsNested != 0 }
func (t *typ) IsMember() bool     { return t.flags&descriptor.IsMember != 0 }
func (t *typ) IsLocal() bool      { return t.flags&descriptor.IsLocal != 0 }
func (t *typ) IsAnonymous() bool  { return t.flags&descriptor.IsAnonymous != 0 }

// IsFinal reports whether the type was declared final.
func (t *typ) IsFinal() bool { return t.mods&descriptor.Final != 0 }

// IsReference reports whether t is a reference type, i.e. anything other
// than a primitive or void.
func IsReference(t Type) bool {
	switch t.Kind() {
	case PrimitiveKind, VoidKind:
		return false
	}
	return true
}

// IsWildcard reports whether t is one of the three wildcard kinds.
func IsWildcard(t Type) bool {
	switch t.Kind() {
	case UnboundWildcardKind, ExtendsWildcardKind, SuperWildcardKind:
		return true
	}
	return false
}

// IsHierarchy reports whether t takes part in extends/implements
// relationships: standard, generic, parameterized and raw types.
func IsHierarchy(t Type) bool {
	_, ok := t.(HierarchyType)
	return ok
}
