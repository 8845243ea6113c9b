package universe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/you-not-fish/jtypes/internal/descriptor"
	"github.com/you-not-fish/jtypes/internal/syntax"
)

const javaLangObject = "java.lang.Object"

// subst maps type parameters to the arguments replacing them.
type subst map[*TypeParam]descriptor.Descriptor

// resolve builds the descriptor denoted by x. Names are looked up from
// scope; type parameters bound in sm are replaced by their arguments.
func (u *Universe) resolve(x syntax.Expr, scope *Scope, sm subst) (descriptor.Descriptor, error) {
	switch x := x.(type) {
	case *syntax.ClassType:
		return u.resolveClass(x, scope, sm)

	case *syntax.ArrayType:
		elem, err := u.resolve(x.Elem, scope, sm)
		if err != nil {
			return nil, err
		}
		switch elem.Kind() {
		case descriptor.Null, descriptor.Void, descriptor.Generic, descriptor.Wildcard:
			return nil, fmt.Errorf("%s: invalid array element %s", x.Pos(), elem.Key())
		}
		a := descriptor.NewArray(elem, x.Dims)
		a.DKey = a.Elem.Key() + strings.Repeat("[]", a.Dims)
		return a, nil

	case *syntax.TypeVarRef:
		p, err := u.typeParam(x)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", x.Pos(), err)
		}
		if d, ok := sm[p]; ok {
			return d, nil
		}
		return u.typeVar(p)

	case *syntax.Wildcard:
		return nil, fmt.Errorf("%s: wildcard is only allowed as a type argument", x.Pos())
	}
	return nil, fmt.Errorf("%s: invalid type %s", x.Pos(), syntax.String(x))
}

func (u *Universe) resolveClass(x *syntax.ClassType, scope *Scope, sm subst) (descriptor.Descriptor, error) {
	name := x.Name.Value
	obj, err := u.lookup(name, scope)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", x.Pos(), err)
	}

	switch obj := obj.(type) {
	case *Predeclared:
		if x.Decl || x.Args != nil {
			return nil, fmt.Errorf("%s: %s is not generic", x.Pos(), name)
		}
		switch obj.kind {
		case descriptor.Null:
			return descriptor.NewNull(), nil
		case descriptor.Void:
			return descriptor.NewVoid(), nil
		}
		return descriptor.NewPrimitive(name), nil

	case *TypeParam:
		if x.Decl || x.Args != nil {
			return nil, fmt.Errorf("%s: type parameter %s is not generic", x.Pos(), name)
		}
		if d, ok := sm[obj]; ok {
			return d, nil
		}
		return u.typeVar(obj)

	case *TypeName:
		switch {
		case x.Decl:
			if !obj.IsGeneric() {
				return nil, fmt.Errorf("%s: %s is not generic", x.Pos(), obj.name)
			}
			return u.declaration(obj)
		case x.Args == nil:
			if obj.IsGeneric() {
				return u.raw(obj)
			}
			return u.declaration(obj)
		}
		if !obj.IsGeneric() {
			return nil, fmt.Errorf("%s: %s is not generic", x.Pos(), obj.name)
		}
		if len(x.Args) != len(obj.params) {
			return nil, fmt.Errorf("%s: wrong number of type arguments for %s: have %d, want %d",
				x.Pos(), obj.name, len(x.Args), len(obj.params))
		}
		args := make([]descriptor.Descriptor, len(x.Args))
		for i, a := range x.Args {
			d, err := u.resolveArg(a, scope, sm)
			if err != nil {
				return nil, err
			}
			args[i] = d
		}
		return u.parameterized(obj, args)
	}
	return nil, fmt.Errorf("%s: %s is not a type", x.Pos(), name)
}

// resolveArg is resolve for type arguments: wildcards are allowed and
// primitive types are not.
func (u *Universe) resolveArg(x syntax.Expr, scope *Scope, sm subst) (descriptor.Descriptor, error) {
	w, ok := x.(*syntax.Wildcard)
	if !ok {
		d, err := u.resolve(x, scope, sm)
		if err != nil {
			return nil, err
		}
		// A type parameter substituted by a wildcard argument stays a
		// wildcard, as in the Collection<? extends Number> supertype of
		// List<? extends Number>.
		if d.Kind() != descriptor.Wildcard && !isReference(d) {
			return nil, fmt.Errorf("%s: type argument %s is not a reference type", x.Pos(), d.Key())
		}
		return d, nil
	}

	if w.Bound == nil {
		d := descriptor.NewWildcard(nil, false)
		d.DKey = "?"
		return d, nil
	}
	b, err := u.resolve(w.Bound, scope, sm)
	if err != nil {
		return nil, err
	}
	if !isReference(b) {
		return nil, fmt.Errorf("%s: wildcard bound %s is not a reference type", w.Pos(), b.Key())
	}
	d := descriptor.NewWildcard(b, w.Upper)
	if w.Upper {
		d.DKey = "? extends " + b.Key()
	} else {
		d.DKey = "? super " + b.Key()
	}
	return d, nil
}

func isReference(d descriptor.Descriptor) bool {
	switch d.Kind() {
	case descriptor.Array, descriptor.Class, descriptor.Parameterized,
		descriptor.Raw, descriptor.TypeVariable:
		return true
	}
	return false
}

func isHierarchy(d descriptor.Descriptor) bool {
	switch d.Kind() {
	case descriptor.Class, descriptor.Parameterized, descriptor.Raw:
		return true
	}
	return false
}

func (u *Universe) typeParam(x *syntax.TypeVarRef) (*TypeParam, error) {
	obj, err := u.lookup(x.Owner.Value, u.scope)
	if err != nil {
		return nil, err
	}
	owner, ok := obj.(*TypeName)
	if !ok {
		return nil, fmt.Errorf("%s is not a declared type", x.Owner.Value)
	}
	p, ok := owner.scope.Lookup(x.Name.Value).(*TypeParam)
	if !ok {
		return nil, fmt.Errorf("%s has no type parameter %s: %w", owner.name, x.Name.Value, descriptor.ErrNotFound)
	}
	return p, nil
}

// declaration returns the class descriptor of tn, or its generic
// declaration descriptor if tn has type parameters.
func (u *Universe) declaration(tn *TypeName) (*descriptor.Static, error) {
	if d := u.declDescs[tn]; d != nil {
		return d, nil
	}
	d := &descriptor.Static{
		DKind:      descriptor.Class,
		DKey:       tn.name,
		DName:      tn.name,
		DModifiers: tn.mods,
		DFlags:     tn.flags,
		DHandle:    tn,
	}
	if tn.IsGeneric() {
		d.DKind = descriptor.Generic
	}
	// Cached before the supertypes are built: declarations may refer to
	// themselves, as in Enum<E extends Enum<E>>.
	u.declDescs[tn] = d

	for _, p := range tn.params {
		v, err := u.typeVar(p)
		if err != nil {
			delete(u.declDescs, tn)
			return nil, err
		}
		d.Params = append(d.Params, v)
	}
	if err := u.supertypes(d, tn, nil); err != nil {
		delete(u.declDescs, tn)
		return nil, err
	}
	return d, nil
}

// raw returns the raw type descriptor of the generic declaration tn. Its
// supertypes are the erasures of the declared ones.
func (u *Universe) raw(tn *TypeName) (*descriptor.Static, error) {
	if d := u.rawDescs[tn]; d != nil {
		return d, nil
	}
	decl, err := u.declaration(tn)
	if err != nil {
		return nil, err
	}
	d := &descriptor.Static{
		DKind:      descriptor.Raw,
		DKey:       tn.name,
		DName:      tn.name,
		DModifiers: tn.mods,
		DFlags:     tn.flags,
		DHandle:    tn,
		Decl:       decl,
	}
	u.rawDescs[tn] = d

	// Built from the declaration's clauses rather than from decl, which
	// may still be incomplete when a type mentions its own raw type.
	if err := u.supertypes(d, tn, nil); err != nil {
		delete(u.rawDescs, tn)
		return nil, err
	}
	if d.Super != nil {
		if d.Super, err = u.erase(d.Super); err != nil {
			delete(u.rawDescs, tn)
			return nil, err
		}
	}
	for i, x := range d.Ifaces {
		if d.Ifaces[i], err = u.erase(x); err != nil {
			delete(u.rawDescs, tn)
			return nil, err
		}
	}
	return d, nil
}

// parameterized returns the descriptor of tn applied to args. Its
// supertypes are the declared ones with the arguments substituted.
func (u *Universe) parameterized(tn *TypeName, args []descriptor.Descriptor) (*descriptor.Static, error) {
	keys := make([]string, len(args))
	for i, a := range args {
		keys[i] = a.Key()
	}
	key := tn.name + "<" + strings.Join(keys, ",") + ">"
	if d := u.paramDescs[key]; d != nil {
		return d, nil
	}
	decl, err := u.declaration(tn)
	if err != nil {
		return nil, err
	}
	d := &descriptor.Static{
		DKind:      descriptor.Parameterized,
		DKey:       key,
		DName:      tn.name,
		DModifiers: tn.mods,
		DFlags:     tn.flags,
		DHandle:    tn,
		Decl:       decl,
		Args:       args,
	}
	u.paramDescs[key] = d

	sm := make(subst, len(args))
	for i, p := range tn.params {
		sm[p] = args[i]
	}
	if err := u.supertypes(d, tn, sm); err != nil {
		delete(u.paramDescs, key)
		return nil, err
	}
	return d, nil
}

func (u *Universe) typeVar(p *TypeParam) (*descriptor.Static, error) {
	if d := u.varDescs[p]; d != nil {
		return d, nil
	}
	d := &descriptor.Static{
		DKind:   descriptor.TypeVariable,
		DKey:    p.name + "@" + p.owner.name,
		DName:   p.name,
		DHandle: p.owner,
	}
	u.varDescs[p] = d

	for _, x := range p.bounds {
		b, err := u.resolve(x, p.owner.scope, nil)
		if err == nil && !isHierarchy(b) && b.Kind() != descriptor.TypeVariable {
			err = fmt.Errorf("%s: invalid bound %s for %s", x.Pos(), b.Key(), p.name)
		}
		if err != nil {
			delete(u.varDescs, p)
			return nil, err
		}
		d.DBounds = append(d.DBounds, b)
	}
	return d, nil
}

// supertypes fills in the superclass and interfaces of d from the
// declaration tn. Classes without an extends clause get java.lang.Object
// when the universe declares it.
func (u *Universe) supertypes(d *descriptor.Static, tn *TypeName, sm subst) error {
	if tn.extends != nil {
		s, err := u.resolve(tn.extends, tn.scope, sm)
		if err != nil {
			return err
		}
		if !isHierarchy(s) {
			return fmt.Errorf("%s: %s cannot extend %s", tn.extends.Pos(), tn.name, s.Key())
		}
		d.Super = s
	} else if !tn.IsInterface() && tn.name != javaLangObject {
		if obj, ok := u.scope.Lookup(javaLangObject).(*TypeName); ok {
			o, err := u.declaration(obj)
			if err != nil {
				return err
			}
			d.Super = o
		}
	}

	d.Ifaces = nil
	for _, x := range tn.implements {
		i, err := u.resolve(x, tn.scope, sm)
		if err != nil {
			return err
		}
		if !isHierarchy(i) {
			return fmt.Errorf("%s: %s cannot implement %s", x.Pos(), tn.name, i.Key())
		}
		d.Ifaces = append(d.Ifaces, i)
	}
	return nil
}

// erase returns the erasure of a supertype descriptor.
func (u *Universe) erase(d descriptor.Descriptor) (descriptor.Descriptor, error) {
	switch d.Kind() {
	case descriptor.Parameterized, descriptor.Generic:
		decl := d
		if d.Kind() == descriptor.Parameterized {
			decl = d.Declaration()
		}
		tn, ok := decl.Handle().(*TypeName)
		if !ok {
			return nil, errors.New("erase: declaration without a type name")
		}
		return u.raw(tn)
	case descriptor.TypeVariable:
		if b := d.Bounds(); len(b) > 0 {
			return u.erase(b[0])
		}
		if obj, ok := u.scope.Lookup(javaLangObject).(*TypeName); ok {
			return u.declaration(obj)
		}
	case descriptor.Array:
		elem, err := u.erase(d.Element())
		if err != nil {
			return nil, err
		}
		a := descriptor.NewArray(elem, d.Dimensions())
		a.DKey = elem.Key() + strings.Repeat("[]", a.Dims)
		return a, nil
	}
	return d, nil
}
