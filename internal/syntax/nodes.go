package syntax

// Node is the interface implemented by all signature nodes.
type Node interface {
	Pos() Pos
	aNode()
}

// Expr is a node that denotes a type.
type Expr interface {
	Node
	aExpr()
}

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

type expr struct{ node }

func (*expr) aExpr() {}

// Name is a possibly qualified identifier: int, T, java.util.List.
type Name struct {
	expr
	Value string
}

// ClassType names a declared type, optionally with type arguments.
// With Decl set ("#java.util.List") it denotes the generic declaration
// itself rather than its raw type.
type ClassType struct {
	expr
	Name *Name
	Args []Expr // nil when no <...> was written
	Decl bool
}

// ArrayType is Elem followed by Dims pairs of brackets.
type ArrayType struct {
	expr
	Elem Expr
	Dims int
}

// Wildcard is "?", "? extends Bound" or "? super Bound".
type Wildcard struct {
	expr
	Bound Expr // nil for "?"
	Upper bool
}

// TypeVarRef names a type parameter of a declaration: T@java.util.List.
type TypeVarRef struct {
	expr
	Name  *Name
	Owner *Name
}

// TypeParam is a type parameter declaration: T extends A & B.
type TypeParam struct {
	node
	Name   *Name
	Bounds []Expr
}
