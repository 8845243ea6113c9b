package types

// PrimitiveID identifies one of the eight primitive types.
type PrimitiveID int

const (
	Boolean PrimitiveID = iota
	Byte
	Short
	Char
	Int
	Long
	Float
	Double

	numPrimitives
)

// primitiveInfo describes a primitive and its boxed class.
type primitiveInfo struct {
	name  string
	boxed string
	// widensTo has bit j set when the primitive widens to PrimitiveID(j).
	widensTo uint8
}

func bitsOf(ids ...PrimitiveID) uint8 {
	var b uint8
	for _, id := range ids {
		b |= 1 << id
	}
	return b
}

// primitives is indexed by PrimitiveID. Widening follows
// byte < short < int < long < float < double and char < int.
var primitives = [numPrimitives]primitiveInfo{
	Boolean: {"boolean", "java.lang.Boolean", bitsOf(Boolean)},
	Byte:    {"byte", "java.lang.Byte", bitsOf(Byte, Short, Int, Long, Float, Double)},
	Short:   {"short", "java.lang.Short", bitsOf(Short, Int, Long, Float, Double)},
	Char:    {"char", "java.lang.Character", bitsOf(Char, Int, Long, Float, Double)},
	Int:     {"int", "java.lang.Integer", bitsOf(Int, Long, Float, Double)},
	Long:    {"long", "java.lang.Long", bitsOf(Long, Float, Double)},
	Float:   {"float", "java.lang.Float", bitsOf(Float, Double)},
	Double:  {"double", "java.lang.Double", bitsOf(Double)},
}

// LookupPrimitive returns the primitive with the given keyword.
func LookupPrimitive(name string) (PrimitiveID, bool) {
	for id := Boolean; id < numPrimitives; id++ {
		if primitives[id].name == name {
			return id, true
		}
	}
	return 0, false
}

func (id PrimitiveID) String() string {
	if id >= 0 && id < numPrimitives {
		return primitives[id].name
	}
	return "invalid"
}

// PrimitiveType represents int, char, boolean, short, long, float, double
// and byte. There is one instance per kind and environment.
type PrimitiveType struct {
	typ
	id PrimitiveID
}

// ID returns which primitive p is.
func (p *PrimitiveType) ID() PrimitiveID {
	return p.id
}

// Name returns the primitive keyword.
func (p *PrimitiveType) Name() string {
	return primitives[p.id].name
}

// BoxedName returns the qualified name of the wrapper class.
func (p *PrimitiveType) BoxedName() string {
	return primitives[p.id].boxed
}

// WidensTo reports whether p converts to q by identity or widening
// primitive conversion.
func (p *PrimitiveType) WidensTo(q *PrimitiveType) bool {
	return primitives[p.id].widensTo&(1<<q.id) != 0
}

func (p *PrimitiveType) String() string {
	return p.Name()
}

// NullType is the type of the null literal.
type NullType struct {
	typ
}

func (*NullType) String() string {
	return "null"
}

// VoidType is the result type of methods that return nothing.
type VoidType struct {
	typ
}

func (*VoidType) String() string {
	return "void"
}
