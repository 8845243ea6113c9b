package types

import "strings"

// HierarchyType is implemented by the kinds that take part in class and
// interface inheritance: *StandardType, *GenericType, *ParameterizedType
// and *RawType.
type HierarchyType interface {
	Type

	// Name returns the fully qualified name of the declaration.
	Name() string

	// Superclass returns the direct superclass, or nil for java.lang.Object
	// and interfaces.
	Superclass() HierarchyType

	// Interfaces returns the directly implemented or extended interfaces.
	Interfaces() []HierarchyType

	// Handle returns the declaration handle supplied by the descriptor.
	Handle() any

	hier() *hierarchy
}

// hierarchy holds the fields shared by the hierarchy kinds.
type hierarchy struct {
	typ
	name   string
	handle any
	super  HierarchyType
	ifaces []HierarchyType
}

func (h *hierarchy) Name() string                { return h.name }
func (h *hierarchy) Superclass() HierarchyType   { return h.super }
func (h *hierarchy) Interfaces() []HierarchyType { return h.ifaces }
func (h *hierarchy) Handle() any                 { return h.handle }
func (h *hierarchy) hier() *hierarchy            { return h }

const (
	javaLangObject     = "java.lang.Object"
	javaLangCloneable  = "java.lang.Cloneable"
	javaIoSerializable = "java.io.Serializable"
)

// StandardType is a class or interface that is not generic.
type StandardType struct {
	hierarchy
}

// IsJavaLangObject reports whether s is java.lang.Object.
func (s *StandardType) IsJavaLangObject() bool {
	return s.name == javaLangObject
}

// IsJavaLangCloneable reports whether s is java.lang.Cloneable.
func (s *StandardType) IsJavaLangCloneable() bool {
	return s.name == javaLangCloneable
}

// IsJavaLangSerializable reports whether s is java.io.Serializable.
func (s *StandardType) IsJavaLangSerializable() bool {
	return s.name == javaIoSerializable
}

func (s *StandardType) String() string {
	return s.name
}

// GenericType is the declaration of a generic class or interface, such as
// List<E> seen from inside its own declaration.
type GenericType struct {
	hierarchy
	params []*TypeVariable
}

// TypeParameters returns the declared type parameters in order.
func (g *GenericType) TypeParameters() []*TypeVariable {
	return g.params
}

func (g *GenericType) String() string {
	var buf strings.Builder
	writeType(&buf, g, false)
	return buf.String()
}

// ParameterizedType is an instantiation of a generic declaration such as
// List<String>.
type ParameterizedType struct {
	hierarchy
	decl *GenericType
	args []Type
}

// Declaration returns the generic declaration being instantiated.
func (p *ParameterizedType) Declaration() *GenericType {
	return p.decl
}

// TypeArguments returns the type arguments in order.
func (p *ParameterizedType) TypeArguments() []Type {
	return p.args
}

func (p *ParameterizedType) String() string {
	var buf strings.Builder
	writeType(&buf, p, false)
	return buf.String()
}

// RawType is a generic declaration used without type arguments.
type RawType struct {
	hierarchy
	decl *GenericType
}

// Declaration returns the generic declaration.
func (r *RawType) Declaration() *GenericType {
	return r.decl
}

func (r *RawType) String() string {
	return r.name
}
