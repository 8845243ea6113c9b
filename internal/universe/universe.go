// Package universe describes a set of Java-like type declarations in YAML
// and turns type signatures over them into descriptors.
//
// A universe file looks like:
//
//	schema: "1.0"
//	types:
//	  - name: java.lang.Object
//	  - name: java.util.List
//	    kind: interface
//	    params: [E]
//	    implements: ["java.util.Collection<E>"]
//
// Signatures use Java syntax with three additions: a generic name written
// without arguments denotes its raw type, "#Name" denotes the generic
// declaration itself, and "T@Owner" names the type parameter T of Owner.
// Names may be written unqualified when the simple name is unambiguous.
package universe

import (
	"fmt"

	"github.com/you-not-fish/jtypes/internal/descriptor"
	"github.com/you-not-fish/jtypes/internal/syntax"
)

// Universe is a loaded set of declarations. Descriptors built from it are
// memoized, so a declaration always yields the same descriptor value.
//
// A Universe is not safe for concurrent use.
type Universe struct {
	name   string
	scope  *Scope
	decls  []*TypeName
	simple map[string][]*TypeName

	declDescs  map[*TypeName]*descriptor.Static
	rawDescs   map[*TypeName]*descriptor.Static
	varDescs   map[*TypeParam]*descriptor.Static
	paramDescs map[string]*descriptor.Static
}

func newUniverse(name string) *Universe {
	return &Universe{
		name:       name,
		scope:      NewScope(predeclared, "universe "+name),
		simple:     make(map[string][]*TypeName),
		declDescs:  make(map[*TypeName]*descriptor.Static),
		rawDescs:   make(map[*TypeName]*descriptor.Static),
		varDescs:   make(map[*TypeParam]*descriptor.Static),
		paramDescs: make(map[string]*descriptor.Static),
	}
}

// Name returns the name the universe was loaded under.
func (u *Universe) Name() string { return u.name }

// Scope returns the scope of the universe's declarations.
func (u *Universe) Scope() *Scope { return u.scope }

// Types returns the declarations in file order.
func (u *Universe) Types() []*TypeName { return u.decls }

// Lookup returns the declaration with the given qualified or unambiguous
// simple name, or nil.
func (u *Universe) Lookup(name string) *TypeName {
	obj, err := u.lookup(name, u.scope)
	if err != nil {
		return nil
	}
	tn, _ := obj.(*TypeName)
	return tn
}

// lookup resolves name from scope, falling back to the simple names of
// the universe's declarations.
func (u *Universe) lookup(name string, scope *Scope) (Object, error) {
	if obj, _ := scope.LookupParent(name); obj != nil {
		return obj, nil
	}
	switch cands := u.simple[name]; len(cands) {
	case 0:
		return nil, fmt.Errorf("unknown type %s: %w", name, descriptor.ErrNotFound)
	case 1:
		return cands[0], nil
	default:
		return nil, fmt.Errorf("ambiguous type %s: %s or %s", name, cands[0].name, cands[1].name)
	}
}

// Descriptor parses sig and returns the descriptor it denotes.
func (u *Universe) Descriptor(sig string) (descriptor.Descriptor, error) {
	x, err := syntax.ParseType(sig)
	if err != nil {
		return nil, fmt.Errorf("universe: signature %q: %w", sig, err)
	}
	d, err := u.resolve(x, u.scope, nil)
	if err != nil {
		return nil, fmt.Errorf("universe: signature %q: %w", sig, err)
	}
	return d, nil
}

// ResolveType implements descriptor.Resolver. If scope is a *TypeName of
// this universe, its type parameters are visible to the lookup.
func (u *Universe) ResolveType(qualifiedName string, scope any) (descriptor.Descriptor, error) {
	s := u.scope
	if tn, ok := scope.(*TypeName); ok && tn.scope != nil && tn.scope.parent == u.scope {
		s = tn.scope
	}
	obj, err := u.lookup(qualifiedName, s)
	if err != nil {
		return nil, err
	}
	tn, ok := obj.(*TypeName)
	if !ok {
		return nil, fmt.Errorf("%s is not a declared type: %w", qualifiedName, descriptor.ErrNotFound)
	}
	return u.declaration(tn)
}

// check resolves every name written in the declarations and builds their
// descriptors, so that errors surface when the file is loaded.
func (u *Universe) check() error {
	for _, tn := range u.decls {
		exprs := append([]syntax.Expr{}, tn.implements...)
		if tn.extends != nil {
			exprs = append(exprs, tn.extends)
		}
		for _, p := range tn.params {
			exprs = append(exprs, p.bounds...)
		}
		for _, x := range exprs {
			if err := u.checkNames(x, tn.scope); err != nil {
				return fmt.Errorf("type %s: %w", tn.name, err)
			}
		}
	}
	for _, tn := range u.decls {
		if _, err := u.declaration(tn); err != nil {
			return fmt.Errorf("type %s: %w", tn.name, err)
		}
	}
	return nil
}

// checkNames reports the first name in x that does not resolve.
func (u *Universe) checkNames(x syntax.Expr, scope *Scope) error {
	var err error
	syntax.Walk(x, func(n syntax.Node) bool {
		if err != nil {
			return false
		}
		switch n := n.(type) {
		case *syntax.ClassType:
			if _, lerr := u.lookup(n.Name.Value, scope); lerr != nil {
				err = fmt.Errorf("%s: %w", n.Pos(), lerr)
			}
		case *syntax.TypeVarRef:
			if _, lerr := u.typeParam(n); lerr != nil {
				err = fmt.Errorf("%s: %w", n.Pos(), lerr)
			}
		}
		return err == nil
	})
	return err
}
