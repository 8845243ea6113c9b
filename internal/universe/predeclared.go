package universe

import "github.com/you-not-fish/jtypes/internal/descriptor"

// predeclared is the root scope holding the primitive keywords, null and
// void. Every universe scope is a child of it.
var predeclared *Scope

func init() {
	predeclared = NewScope(nil, "predeclared")
	for _, name := range []string{"boolean", "byte", "short", "char", "int", "long", "float", "double"} {
		predeclared.Insert(&Predeclared{object: object{name: name}, kind: descriptor.Primitive})
	}
	predeclared.Insert(&Predeclared{object: object{name: "null"}, kind: descriptor.Null})
	predeclared.Insert(&Predeclared{object: object{name: "void"}, kind: descriptor.Void})
}

// PredeclaredScope returns the scope of names every universe knows.
func PredeclaredScope() *Scope { return predeclared }
