package descriptor

// Static is a Descriptor backed by plain fields. Loaders and tests build
// descriptor graphs out of Static values.
type Static struct {
	DKind      Kind
	DKey       string
	DName      string
	DModifiers Modifiers
	DFlags     Flags
	DHandle    any

	Elem Descriptor
	Dims int

	Super  Descriptor
	Ifaces []Descriptor

	Params []Descriptor

	Decl Descriptor
	Args []Descriptor

	DBounds []Descriptor
	Upper   bool
}

func (s *Static) Kind() Kind                   { return s.DKind }
func (s *Static) Name() string                 { return s.DName }
func (s *Static) Modifiers() Modifiers         { return s.DModifiers }
func (s *Static) Flags() Flags                 { return s.DFlags }
func (s *Static) Handle() any                  { return s.DHandle }
func (s *Static) Element() Descriptor          { return s.Elem }
func (s *Static) Dimensions() int              { return s.Dims }
func (s *Static) Superclass() Descriptor       { return s.Super }
func (s *Static) Interfaces() []Descriptor     { return s.Ifaces }
func (s *Static) TypeParameters() []Descriptor { return s.Params }
func (s *Static) Declaration() Descriptor      { return s.Decl }
func (s *Static) TypeArguments() []Descriptor  { return s.Args }
func (s *Static) Bounds() []Descriptor         { return s.DBounds }
func (s *Static) IsUpperBound() bool           { return s.Upper }

// Key returns DKey, falling back to DName.
func (s *Static) Key() string {
	if s.DKey != "" {
		return s.DKey
	}
	return s.DName
}

// NewPrimitive returns a primitive descriptor for the given keyword.
func NewPrimitive(name string) *Static {
	return &Static{DKind: Primitive, DName: name}
}

// NewNull returns the null type descriptor.
func NewNull() *Static {
	return &Static{DKind: Null, DName: "null"}
}

// NewVoid returns the void descriptor.
func NewVoid() *Static {
	return &Static{DKind: Void, DName: "void"}
}

// NewArray returns an array descriptor over elem. If elem is itself an
// array, its dimensions are folded in.
func NewArray(elem Descriptor, dims int) *Static {
	for elem.Kind() == Array {
		dims += elem.Dimensions()
		elem = elem.Element()
	}
	return &Static{DKind: Array, Elem: elem, Dims: dims}
}

// NewWildcard returns a wildcard descriptor. A nil bound yields the
// unbound wildcard.
func NewWildcard(bound Descriptor, upper bool) *Static {
	s := &Static{DKind: Wildcard, DName: "?", Upper: upper}
	if bound != nil {
		s.DBounds = []Descriptor{bound}
	}
	return s
}
