package universe

import (
	"github.com/you-not-fish/jtypes/internal/descriptor"
	"github.com/you-not-fish/jtypes/internal/syntax"
)

// Object is a named entity in a universe scope: a declared type, a type
// parameter or a predeclared name such as int.
type Object interface {
	Name() string   // name under which the object is declared
	Parent() *Scope // enclosing scope

	setParent(*Scope) // internal: set parent scope
	aObject()         // marker method to restrict implementations
}

// object is the base struct for all objects.
type object struct {
	name   string
	parent *Scope
}

func (o *object) Name() string       { return o.name }
func (o *object) Parent() *Scope     { return o.parent }
func (o *object) setParent(s *Scope) { o.parent = s }
func (*object) aObject()             {}

// TypeName is a declared class, interface, enum or annotation.
type TypeName struct {
	object
	mods  descriptor.Modifiers
	flags descriptor.Flags

	params     []*TypeParam
	extends    syntax.Expr // nil if none was written
	implements []syntax.Expr

	scope *Scope // type parameters; parent is the universe scope
}

// Modifiers returns the declared modifiers.
func (t *TypeName) Modifiers() descriptor.Modifiers { return t.mods }

// Flags returns the declaration flags.
func (t *TypeName) Flags() descriptor.Flags { return t.flags }

// Params returns the type parameters in declaration order.
func (t *TypeName) Params() []*TypeParam { return t.params }

// IsGeneric reports whether t declares type parameters.
func (t *TypeName) IsGeneric() bool { return len(t.params) > 0 }

// IsInterface reports whether t is an interface or annotation.
func (t *TypeName) IsInterface() bool { return t.flags&descriptor.IsInterface != 0 }

// Scope returns the scope holding t's type parameters.
func (t *TypeName) Scope() *Scope { return t.scope }

// TypeParam is a type parameter of a generic declaration.
type TypeParam struct {
	object
	owner  *TypeName
	index  int
	bounds []syntax.Expr
}

// Owner returns the declaring type.
func (p *TypeParam) Owner() *TypeName { return p.owner }

// Index returns the position of p in its owner's parameter list.
func (p *TypeParam) Index() int { return p.index }

// Predeclared is a primitive keyword, null or void.
type Predeclared struct {
	object
	kind descriptor.Kind
}

// Kind returns descriptor.Primitive, descriptor.Null or descriptor.Void.
func (p *Predeclared) Kind() descriptor.Kind { return p.kind }
