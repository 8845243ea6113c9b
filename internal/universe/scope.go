package universe

import (
	"fmt"
	"sort"
	"strings"

	"github.com/you-not-fish/jtypes/internal/descriptor"
)

// Scope maps names to objects. Scopes form a tree rooted at the
// predeclared scope; a universe's declarations live in its child, and each
// declaration's type parameters in a grandchild.
type Scope struct {
	parent   *Scope
	children []*Scope
	elems    map[string]Object
	comment  string // debugging comment (e.g., "universe", "type java.util.List")
}

// NewScope creates a new scope with the given parent.
func NewScope(parent *Scope, comment string) *Scope {
	s := &Scope{
		parent:  parent,
		elems:   make(map[string]Object),
		comment: comment,
	}
	if parent != nil {
		parent.children = append(parent.children, s)
	}
	return s
}

// Parent returns the parent scope, or nil for the predeclared scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Children returns the list of child scopes.
func (s *Scope) Children() []*Scope {
	return s.children
}

// Comment returns the scope's comment (for debugging).
func (s *Scope) Comment() string {
	return s.comment
}

// Lookup returns the object with the given name in the current scope.
// Returns nil if not found in this scope (does not search parent scopes).
func (s *Scope) Lookup(name string) Object {
	return s.elems[name]
}

// LookupParent returns the object with the given name by searching
// from the current scope up through all parent scopes.
// Returns the object and the scope in which it was found.
// Returns (nil, nil) if not found.
func (s *Scope) LookupParent(name string) (Object, *Scope) {
	for scope := s; scope != nil; scope = scope.parent {
		if obj := scope.elems[name]; obj != nil {
			return obj, scope
		}
	}
	return nil, nil
}

// Insert inserts an object into the scope.
// If an object with the same name already exists, returns the existing object.
// Otherwise, returns nil.
func (s *Scope) Insert(obj Object) Object {
	name := obj.Name()
	if existing := s.elems[name]; existing != nil {
		return existing
	}
	s.elems[name] = obj
	obj.setParent(s)
	return nil
}

// Names returns the names of all objects in the scope, sorted alphabetically.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.elems))
	for name := range s.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of objects in the scope.
func (s *Scope) Len() int {
	return len(s.elems)
}

// String returns a string representation of the scope for debugging.
func (s *Scope) String() string {
	var buf strings.Builder
	s.writeTo(&buf, 0)
	return buf.String()
}

func (s *Scope) writeTo(buf *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(buf, "%sscope %s {\n", prefix, s.comment)
	for _, name := range s.Names() {
		fmt.Fprintf(buf, "%s  %s: %s\n", prefix, name, describe(s.elems[name]))
	}
	for _, child := range s.children {
		child.writeTo(buf, indent+1)
	}
	fmt.Fprintf(buf, "%s}\n", prefix)
}

func describe(obj Object) string {
	switch obj := obj.(type) {
	case *TypeName:
		switch {
		case obj.flags&descriptor.IsAnnotation != 0:
			return "annotation"
		case obj.flags&descriptor.IsEnum != 0:
			return "enum"
		case obj.IsInterface():
			return "interface"
		}
		return "class"
	case *TypeParam:
		return "type parameter of " + obj.owner.name
	case *Predeclared:
		return obj.kind.String()
	}
	return fmt.Sprintf("%T", obj)
}
