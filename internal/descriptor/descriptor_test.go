package descriptor

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Primitive, "primitive"},
		{Parameterized, "parameterized"},
		{TypeVariable, "type variable"},
		{Kind(99), "Kind(99)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestStaticKeyFallsBackToName(t *testing.T) {
	s := &Static{DKind: Class, DName: "java.lang.Object"}
	if s.Key() != "java.lang.Object" {
		t.Errorf("Key() = %q, want name", s.Key())
	}
	s.DKey = "Ljava/lang/Object;"
	if s.Key() != "Ljava/lang/Object;" {
		t.Errorf("Key() = %q, want explicit key", s.Key())
	}
}

func TestNewArrayFoldsDimensions(t *testing.T) {
	inner := NewArray(NewPrimitive("int"), 2)
	outer := NewArray(inner, 1)
	if outer.Dimensions() != 3 {
		t.Errorf("Dimensions() = %d, want 3", outer.Dimensions())
	}
	if outer.Element().Kind() != Primitive {
		t.Errorf("Element().Kind() = %v, want primitive", outer.Element().Kind())
	}
}

func TestNewWildcard(t *testing.T) {
	if w := NewWildcard(nil, true); len(w.Bounds()) != 0 {
		t.Errorf("unbound wildcard has %d bounds", len(w.Bounds()))
	}
	w := NewWildcard(NewPrimitive("int"), false)
	if len(w.Bounds()) != 1 || w.IsUpperBound() {
		t.Errorf("super wildcard: bounds=%d upper=%v", len(w.Bounds()), w.IsUpperBound())
	}
}

func TestModifierBits(t *testing.T) {
	all := []Modifiers{Public, Protected, Private, StaticModifier, Final, Abstract}
	var seen Modifiers
	for _, m := range all {
		if m == 0 || m&(m-1) != 0 {
			t.Errorf("modifier %#x is not a single bit", m)
		}
		if seen&m != 0 {
			t.Errorf("modifier %#x shares a bit with another modifier", m)
		}
		seen |= m
	}
	s := &Static{DKind: Class, DName: "p.Outer.Inner", DModifiers: Public | StaticModifier}
	if s.Modifiers()&StaticModifier == 0 {
		t.Errorf("Modifiers() = %#x, want static set", s.Modifiers())
	}
}
