package types

import (
	"fmt"

	"github.com/you-not-fish/jtypes/internal/descriptor"
	"github.com/you-not-fish/jtypes/internal/lru"
)

// Config configures an Environment. The zero value is usable.
type Config struct {
	// Resolver finds declared types by name. It is used to box primitives
	// and to find java.lang.Object when no type has mentioned it yet.
	// If nil, only types already created can be found by name.
	Resolver descriptor.Resolver

	// CacheSize bounds the subtype cache. Zero means lru.DefaultCapacity.
	CacheSize int
}

// typePair is an ordered (subtype, supertype) key.
type typePair struct {
	sub, super Type
}

// comparison selects how parameterized types are compared.
type comparison int

const (
	// byIdentity compares parameterized types by descriptor key.
	byIdentity comparison = iota
	// byStructure compares declaration and type arguments element-wise.
	// Only interning uses it.
	byStructure
)

// Environment creates and owns types. Within one environment every
// declaration maps to a single Type value, and parameterized types with
// the same declaration and arguments map to a single *ParameterizedType.
//
// An Environment is not safe for concurrent use.
type Environment struct {
	resolver descriptor.Resolver

	null       *NullType
	void       *VoidType
	primitives [numPrimitives]*PrimitiveType
	unbound    *UnboundWildcardType

	arrays        []map[Type]*ArrayType // indexed by dims-1
	standard      map[string]*StandardType
	generic       map[string]*GenericType
	raw           map[string]*RawType // keyed by declaration key
	parameterized map[uint32][]*ParameterizedType
	typeVars      map[string]*TypeVariable
	extends       map[Type]*ExtendsWildcardType
	super         map[Type]*SuperWildcardType

	byName map[string]*StandardType // standard types by qualified name
	all    []Type                   // creation order

	subtypes *lru.Cache[typePair, bool]
}

// NewEnvironment returns an empty environment. conf may be nil.
func NewEnvironment(conf *Config) *Environment {
	if conf == nil {
		conf = &Config{}
	}
	e := &Environment{
		resolver:      conf.Resolver,
		standard:      make(map[string]*StandardType),
		generic:       make(map[string]*GenericType),
		raw:           make(map[string]*RawType),
		parameterized: make(map[uint32][]*ParameterizedType),
		typeVars:      make(map[string]*TypeVariable),
		extends:       make(map[Type]*ExtendsWildcardType),
		super:         make(map[Type]*SuperWildcardType),
		byName:        make(map[string]*StandardType),
		subtypes:      lru.New[typePair, bool](conf.CacheSize),
	}

	e.null = &NullType{}
	e.register(e.null, NullKind, "null")
	e.void = &VoidType{}
	e.register(e.void, VoidKind, "void")
	for id := Boolean; id < numPrimitives; id++ {
		p := &PrimitiveType{id: id}
		e.register(p, PrimitiveKind, primitives[id].name)
		e.primitives[id] = p
	}
	e.unbound = &UnboundWildcardType{}
	e.register(e.unbound, UnboundWildcardKind, "?")
	return e
}

// register fills in the common fields of a new type and records it.
func (e *Environment) register(t Type, kind Kind, key string) {
	b := t.base()
	b.env = e
	b.kind = kind
	b.key = key
	b.id = uint64(len(e.all))
	e.all = append(e.all, t)
}

// Create returns the canonical type for d, creating it on first use.
// A malformed descriptor is a programming error and panics.
func (e *Environment) Create(d descriptor.Descriptor) Type {
	if d == nil {
		panic("types.Environment.Create: nil descriptor")
	}
	switch d.Kind() {
	case descriptor.Primitive:
		id, ok := LookupPrimitive(d.Name())
		if !ok {
			panic(fmt.Sprintf("types.Environment.Create: unknown primitive %q", d.Name()))
		}
		return e.primitives[id]
	case descriptor.Null:
		return e.null
	case descriptor.Void:
		return e.void
	case descriptor.Array:
		return e.createArray(d)
	case descriptor.Class:
		return e.createStandard(d)
	case descriptor.Generic:
		return e.createGeneric(d)
	case descriptor.Parameterized:
		return e.createParameterized(d)
	case descriptor.Raw:
		return e.createRaw(d)
	case descriptor.TypeVariable:
		return e.createTypeVariable(d)
	case descriptor.Wildcard:
		return e.createWildcard(d)
	}
	panic(fmt.Sprintf("types.Environment.Create: unexpected descriptor kind %v", d.Kind()))
}

// Null returns the null type.
func (e *Environment) Null() *NullType { return e.null }

// Void returns the void type.
func (e *Environment) Void() *VoidType { return e.void }

// Primitive returns the primitive type with the given id.
func (e *Environment) Primitive(id PrimitiveID) *PrimitiveType {
	return e.primitives[id]
}

// UnboundWildcard returns "?".
func (e *Environment) UnboundWildcard() *UnboundWildcardType { return e.unbound }

// NewArray returns the array type elem[]... with dims dimensions. If elem
// is itself an array its dimensions are added.
func (e *Environment) NewArray(elem Type, dims int) *ArrayType {
	if a, ok := elem.(*ArrayType); ok {
		elem, dims = a.elem, dims+a.dims
	}
	if dims < 1 {
		panic(fmt.Sprintf("types.Environment.NewArray: invalid dimension count %d", dims))
	}
	for len(e.arrays) < dims {
		e.arrays = append(e.arrays, make(map[Type]*ArrayType))
	}
	m := e.arrays[dims-1]
	if a := m[elem]; a != nil {
		return a
	}
	a := &ArrayType{elem: elem, dims: dims}
	m[elem] = a
	e.register(a, ArrayKind, elem.Key()+brackets(dims))
	return a
}

func brackets(dims int) string {
	b := make([]byte, 0, 2*dims)
	for i := 0; i < dims; i++ {
		b = append(b, '[', ']')
	}
	return string(b)
}

// NewExtendsWildcard returns "? extends bound".
func (e *Environment) NewExtendsWildcard(bound Type) *ExtendsWildcardType {
	if w := e.extends[bound]; w != nil {
		return w
	}
	w := &ExtendsWildcardType{bound: bound}
	e.extends[bound] = w
	e.register(w, ExtendsWildcardKind, "+"+bound.Key())
	return w
}

// NewSuperWildcard returns "? super bound".
func (e *Environment) NewSuperWildcard(bound Type) *SuperWildcardType {
	if w := e.super[bound]; w != nil {
		return w
	}
	w := &SuperWildcardType{bound: bound}
	e.super[bound] = w
	e.register(w, SuperWildcardKind, "-"+bound.Key())
	return w
}

func (e *Environment) createArray(d descriptor.Descriptor) *ArrayType {
	if d.Element() == nil {
		panic("types.Environment.Create: array descriptor without element")
	}
	return e.NewArray(e.Create(d.Element()), d.Dimensions())
}

func (e *Environment) createStandard(d descriptor.Descriptor) *StandardType {
	key := d.Key()
	if s := e.standard[key]; s != nil {
		return s
	}
	s := &StandardType{}
	s.name = d.Name()
	s.handle = d.Handle()
	s.mods, s.flags = d.Modifiers(), d.Flags()
	e.standard[key] = s
	e.register(s, StandardKind, key)
	if _, ok := e.byName[s.name]; !ok {
		e.byName[s.name] = s
	}
	e.initHierarchy(&s.hierarchy, d)
	return s
}

func (e *Environment) createGeneric(d descriptor.Descriptor) *GenericType {
	if d == nil || d.Kind() != descriptor.Generic {
		panic(fmt.Sprintf("types.Environment.Create: expected generic declaration, got %v", kindOf(d)))
	}
	key := d.Key()
	if g := e.generic[key]; g != nil {
		return g
	}
	g := &GenericType{}
	g.name = d.Name()
	g.handle = d.Handle()
	g.mods, g.flags = d.Modifiers(), d.Flags()
	e.generic[key] = g
	e.register(g, GenericKind, key)

	params := d.TypeParameters()
	g.params = make([]*TypeVariable, len(params))
	for i, p := range params {
		v, ok := e.Create(p).(*TypeVariable)
		if !ok {
			panic(fmt.Sprintf("types.Environment.Create: type parameter %d of %s is a %v", i, g.name, p.Kind()))
		}
		g.params[i] = v
	}
	e.initHierarchy(&g.hierarchy, d)
	return g
}

func (e *Environment) createRaw(d descriptor.Descriptor) *RawType {
	decl := e.createGeneric(d.Declaration())
	if r := e.raw[decl.key]; r != nil {
		return r
	}
	r := &RawType{decl: decl}
	r.name = decl.name
	r.handle = decl.handle
	r.mods, r.flags = decl.mods, decl.flags
	e.raw[decl.key] = r
	e.register(r, RawKind, d.Key())
	e.initHierarchy(&r.hierarchy, d)
	return r
}

func (e *Environment) createParameterized(d descriptor.Descriptor) *ParameterizedType {
	decl := e.createGeneric(d.Declaration())
	targs := d.TypeArguments()
	args := make([]Type, len(targs))
	for i, a := range targs {
		args[i] = e.Create(a)
	}

	// The key instance is only complete enough to be compared; it becomes
	// the canonical instance if the lookup misses.
	key := &ParameterizedType{decl: decl, args: args}
	key.kind = ParameterizedKind
	key.key = d.Key()
	h := hash(key)
	for _, p := range e.parameterized[h] {
		if identical(p, key, byStructure) {
			return p
		}
	}

	key.name = decl.name
	key.handle = decl.handle
	key.mods, key.flags = decl.mods, decl.flags
	e.parameterized[h] = append(e.parameterized[h], key)
	e.register(key, ParameterizedKind, d.Key())
	e.initHierarchy(&key.hierarchy, d)
	return key
}

func (e *Environment) createTypeVariable(d descriptor.Descriptor) *TypeVariable {
	key := d.Key()
	if v := e.typeVars[key]; v != nil {
		return v
	}
	v := &TypeVariable{name: d.Name()}
	v.mods, v.flags = d.Modifiers(), d.Flags()
	e.typeVars[key] = v
	e.register(v, TypeVariableKind, key)

	bounds := d.Bounds()
	v.bounds = make([]Type, len(bounds))
	for i, b := range bounds {
		v.bounds[i] = e.Create(b)
	}
	return v
}

func (e *Environment) createWildcard(d descriptor.Descriptor) Type {
	bounds := d.Bounds()
	switch len(bounds) {
	case 0:
		return e.unbound
	case 1:
	default:
		panic(fmt.Sprintf("types.Environment.Create: wildcard with %d bounds", len(bounds)))
	}
	bound := e.Create(bounds[0])
	if d.IsUpperBound() {
		return e.NewExtendsWildcard(bound)
	}
	return e.NewSuperWildcard(bound)
}

// initHierarchy creates the supertypes of a freshly registered type.
// Registration happens first so that self-referential declarations such
// as class Foo implements Comparable<Foo> find the type being built.
func (e *Environment) initHierarchy(h *hierarchy, d descriptor.Descriptor) {
	if sd := d.Superclass(); sd != nil {
		h.super = e.createSupertype(h.name, sd)
	}
	ifaces := d.Interfaces()
	if len(ifaces) == 0 {
		return
	}
	h.ifaces = make([]HierarchyType, len(ifaces))
	for i, id := range ifaces {
		h.ifaces[i] = e.createSupertype(h.name, id)
	}
}

func (e *Environment) createSupertype(owner string, d descriptor.Descriptor) HierarchyType {
	t := e.Create(d)
	h, ok := t.(HierarchyType)
	if !ok {
		panic(fmt.Sprintf("types.Environment.Create: supertype %s of %s is a %v", t, owner, t.Kind()))
	}
	return h
}

func kindOf(d descriptor.Descriptor) string {
	if d == nil {
		return "nil descriptor"
	}
	return d.Kind().String()
}

// Object returns java.lang.Object, or nil if it was never created and the
// resolver cannot find it.
func (e *Environment) Object() *StandardType {
	s, _ := e.lookupStandard(javaLangObject, nil)
	return s
}

// lookupStandard finds a standard type by qualified name, first among the
// types already created and then through the resolver.
func (e *Environment) lookupStandard(name string, scope any) (*StandardType, error) {
	if s := e.byName[name]; s != nil {
		return s, nil
	}
	if e.resolver == nil {
		return nil, fmt.Errorf("%s: %w", name, descriptor.ErrNotFound)
	}
	d, err := e.resolver.ResolveType(name, scope)
	if err != nil {
		return nil, err
	}
	s, ok := e.Create(d).(*StandardType)
	if !ok {
		return nil, fmt.Errorf("%s: resolved to a %v type, want standard", name, d.Kind())
	}
	return s, nil
}

// Types returns every type created so far in creation order.
func (e *Environment) Types() []Type {
	out := make([]Type, len(e.all))
	copy(out, e.all)
	return out
}

// CacheStats reports subtype cache traffic.
func (e *Environment) CacheStats() lru.Stats {
	return e.subtypes.Stats()
}

// CacheLen returns the number of cached subtype results.
func (e *Environment) CacheLen() int {
	return e.subtypes.Len()
}
