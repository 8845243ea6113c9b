package types

import (
	"errors"
	"testing"
)

func TestIsSubType(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		sub, super string
		want       bool
	}{
		{"Integer", "Number", true},
		{"Number", "Integer", false},
		{"Integer", "Object", true},
		{"Object", "Object", false},
		{"Integer", "Integer", false},
		{"String", "CharSequence", true},
		{"ArrayList<String>", "Collection<String>", true},
		{"ArrayList<String>", "java.lang.Iterable", true},
		{"java.util.ArrayList", "java.util.Collection", true},
		{"java.util.List", "java.util.ArrayList", false},
		{"HashMap<String, Integer>", "java.util.Map", true},
	}
	for _, tt := range tests {
		sub, super := f.hier(tt.sub), f.hier(tt.super)
		if got := IsSubType(sub, super); got != tt.want {
			t.Errorf("IsSubType(%s, %s) = %v, want %v", sub, super, got, tt.want)
		}
	}
}

func TestSubtypeCache(t *testing.T) {
	f := newFixture(t)
	integer, number := f.hier("Integer"), f.hier("Number")

	if !IsSubType(integer, number) {
		t.Fatal("Integer is not a subtype of Number")
	}
	s1 := f.env.CacheStats()
	if s1.Misses == 0 || f.env.CacheLen() == 0 {
		t.Fatalf("first query did not populate the cache: %+v, len %d", s1, f.env.CacheLen())
	}
	if !IsSubType(integer, number) {
		t.Fatal("cached query changed its answer")
	}
	s2 := f.env.CacheStats()
	if s2.Hits != s1.Hits+1 || s2.Misses != s1.Misses {
		t.Errorf("second query: stats %+v after %+v, want exactly one more hit", s2, s1)
	}

	// The key is ordered: the reverse pair is a separate entry.
	if IsSubType(number, integer) {
		t.Error("Number is a subtype of Integer")
	}
	if s3 := f.env.CacheStats(); s3.Misses == s2.Misses {
		t.Error("reverse query was answered from the cache")
	}
}

func TestSubtypeCacheEviction(t *testing.T) {
	u := newFixture(t).u
	env := NewEnvironment(&Config{Resolver: u, CacheSize: 2})
	f := &fixture{t: t, u: u, env: env}

	pairs := [][2]string{
		{"Integer", "Number"},
		{"Number", "Integer"},
		{"ArrayList<String>", "Collection<String>"},
		{"String", "CharSequence"},
		{"java.util.List", "java.util.ArrayList"},
		{"Long", "java.io.Serializable"},
	}
	first := make([]bool, len(pairs))
	for i, p := range pairs {
		first[i] = IsSubType(f.hier(p[0]), f.hier(p[1]))
	}
	for round := 0; round < 3; round++ {
		for i, p := range pairs {
			if got := IsSubType(f.hier(p[0]), f.hier(p[1])); got != first[i] {
				t.Errorf("round %d: IsSubType(%s, %s) = %v, first answer %v", round, p[0], p[1], got, first[i])
			}
		}
	}
	if env.CacheLen() > 2 {
		t.Errorf("cache holds %d entries, capacity 2", env.CacheLen())
	}
	if env.CacheStats().Evictions == 0 {
		t.Error("no evictions with capacity 2")
	}
}

func TestIsSubTypeAcrossEnvironments(t *testing.T) {
	f := newFixture(t)
	g := newFixture(t)
	if !IsSubType(f.hier("Integer"), g.hier("Number")) {
		t.Error("Integer is not a subtype of Number from another environment")
	}
	if f.env.CacheLen() != 0 || g.env.CacheLen() != 0 {
		t.Error("cross-environment query was cached")
	}
}

func typeStrings(list []Type) []string {
	out := make([]string, len(list))
	for i, t := range list {
		out[i] = t.String()
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDirectSupertypes(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		sig  string
		want []string
	}{
		{"Integer", []string{"java.lang.Number", "java.lang.Comparable<java.lang.Integer>"}},
		{"Object", []string{}},
		{"CharSequence", []string{}},
		{"ArrayList<String>", []string{
			"java.util.AbstractList<java.lang.String>",
			"java.util.List<java.lang.String>",
			"java.lang.Cloneable",
			"java.io.Serializable",
		}},
		{"java.util.ArrayList", []string{"java.util.AbstractList", "java.util.List", "java.lang.Cloneable", "java.io.Serializable"}},
		{"int[]", []string{"java.lang.Object", "java.lang.Cloneable", "java.io.Serializable"}},
		{"E@java.util.List", []string{"java.lang.Object"}},
		{"E@java.lang.Enum", []string{"java.lang.Enum<E>"}},
	}
	for _, tt := range tests {
		got, err := DirectSupertypes(f.typ(tt.sig))
		if err != nil {
			t.Errorf("DirectSupertypes(%s): %v", tt.sig, err)
			continue
		}
		if s := typeStrings(got); !equalStrings(s, tt.want) {
			t.Errorf("DirectSupertypes(%s) = %v, want %v", tt.sig, s, tt.want)
		}
	}
}

func TestDirectSupertypesUnsupported(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		t    Type
		kind Kind
	}{
		{f.typ("int"), PrimitiveKind},
		{f.typ("void"), VoidKind},
		{f.typ("null"), NullKind},
		{f.env.UnboundWildcard(), UnboundWildcardKind},
		{f.env.NewExtendsWildcard(f.typ("Number")), ExtendsWildcardKind},
		{f.env.NewSuperWildcard(f.typ("Number")), SuperWildcardKind},
	}
	for _, tt := range tests {
		_, err := DirectSupertypes(tt.t)
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("DirectSupertypes(%s): err = %v, want ErrUnsupported", tt.t, err)
			continue
		}
		var ue *UnsupportedError
		if !errors.As(err, &ue) || ue.Kind != tt.kind || ue.Op != "DirectSupertypes" {
			t.Errorf("DirectSupertypes(%s): err = %#v", tt.t, err)
		}
	}

	_, err := DirectSupertypes(f.typ("int"))
	if want := "DirectSupertypes: unsupported operation on primitive type"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestDirectSubtypes(t *testing.T) {
	f := newFixture(t)
	integer, long, str := f.typ("Integer"), f.typ("Long"), f.typ("String")

	subs, err := f.env.DirectSubtypes(f.typ("Number"))
	if err != nil {
		t.Fatal(err)
	}
	has := func(list []Type, x Type) bool {
		for _, c := range list {
			if c == x {
				return true
			}
		}
		return false
	}
	if !has(subs, integer) || !has(subs, long) {
		t.Errorf("DirectSubtypes(Number) = %v, want Integer and Long", subs)
	}
	if has(subs, str) {
		t.Errorf("DirectSubtypes(Number) includes String")
	}

	al := f.typ("ArrayList<String>")
	subs, err = f.env.DirectSubtypes(f.typ("java.util.AbstractList<String>"))
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 1 || subs[0] != al {
		t.Errorf("DirectSubtypes(AbstractList<String>) = %v, want [ArrayList<String>]", subs)
	}

	if _, err := f.env.DirectSubtypes(f.typ("void")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("DirectSubtypes(void): err = %v, want ErrUnsupported", err)
	}
	if _, err := f.env.DirectSubtypes(f.typ("int[]")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("DirectSubtypes(int[]): err = %v, want ErrUnsupported", err)
	}
}
