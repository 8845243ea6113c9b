package universe

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/jtypes/internal/descriptor"
)

func mustDescriptor(t *testing.T, u *Universe, sig string) descriptor.Descriptor {
	t.Helper()
	d, err := u.Descriptor(sig)
	if err != nil {
		t.Fatalf("Descriptor(%q): %v", sig, err)
	}
	return d
}

func TestBuiltin(t *testing.T) {
	u := Builtin()
	if u.Name() != "builtin.yaml" {
		t.Errorf("Name() = %q", u.Name())
	}
	for _, name := range []string{
		"java.lang.Object", "java.lang.Integer", "java.lang.String",
		"java.lang.Enum", "java.util.List", "java.util.HashMap",
	} {
		if u.Lookup(name) == nil {
			t.Errorf("Lookup(%q) = nil", name)
		}
	}
	if got := len(u.Types()); got != u.Scope().Len() {
		t.Errorf("Types() has %d entries, scope has %d", got, u.Scope().Len())
	}
}

func TestDescriptorKinds(t *testing.T) {
	u := Builtin()
	tests := []struct {
		sig  string
		kind descriptor.Kind
		key  string
	}{
		{"int", descriptor.Primitive, "int"},
		{"null", descriptor.Null, "null"},
		{"void", descriptor.Void, "void"},
		{"java.lang.String", descriptor.Class, "java.lang.String"},
		{"String", descriptor.Class, "java.lang.String"},
		{"java.util.List", descriptor.Raw, "java.util.List"},
		{"#java.util.List", descriptor.Generic, "java.util.List"},
		{"List<String>", descriptor.Parameterized, "java.util.List<java.lang.String>"},
		{"List<? extends Number>", descriptor.Parameterized, "java.util.List<? extends java.lang.Number>"},
		{"List<? super Integer>", descriptor.Parameterized, "java.util.List<? super java.lang.Integer>"},
		{"Map<String, ?>", descriptor.Parameterized, "java.util.Map<java.lang.String,?>"},
		{"E@java.util.List", descriptor.TypeVariable, "E@java.util.List"},
		{"int[][]", descriptor.Array, "int[][]"},
		{"List<String[]>", descriptor.Parameterized, "java.util.List<java.lang.String[]>"},
		{"java.lang.Thread.State", descriptor.Class, "java.lang.Thread.State"},
		{"State", descriptor.Class, "java.lang.Thread.State"},
	}
	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			d := mustDescriptor(t, u, tt.sig)
			if d.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", d.Kind(), tt.kind)
			}
			if d.Key() != tt.key {
				t.Errorf("Key() = %q, want %q", d.Key(), tt.key)
			}
		})
	}
}

func TestDescriptorMemoized(t *testing.T) {
	u := Builtin()
	for _, sig := range []string{"String", "java.util.List", "#java.util.List", "List<String>", "E@java.util.List"} {
		a := mustDescriptor(t, u, sig)
		b := mustDescriptor(t, u, sig)
		if a != b {
			t.Errorf("%s: descriptors differ between calls", sig)
		}
	}
}

func TestParameterizedSupertypes(t *testing.T) {
	u := Builtin()
	d := mustDescriptor(t, u, "java.util.ArrayList<java.lang.String>")

	if got := d.Superclass().Key(); got != "java.util.AbstractList<java.lang.String>" {
		t.Errorf("superclass = %s", got)
	}
	var ifaces []string
	for _, i := range d.Interfaces() {
		ifaces = append(ifaces, i.Key())
	}
	want := "java.util.List<java.lang.String> java.lang.Cloneable java.io.Serializable"
	if got := strings.Join(ifaces, " "); got != want {
		t.Errorf("interfaces = %s, want %s", got, want)
	}
	if d.Declaration() != mustDescriptor(t, u, "#java.util.ArrayList") {
		t.Error("declaration is not the generic descriptor")
	}
}

func TestWildcardArgumentSupertypes(t *testing.T) {
	u := Builtin()
	tests := []struct {
		sig  string
		want string // first direct supertype
	}{
		{"java.util.List<? extends java.lang.Number>", "java.util.Collection<? extends java.lang.Number>"},
		{"java.util.List<? super Integer>", "java.util.Collection<? super java.lang.Integer>"},
		{"java.util.List<?>", "java.util.Collection<?>"},
		{"java.util.ArrayList<? extends Number>", "java.util.AbstractList<? extends java.lang.Number>"},
		{"java.util.HashMap<String, ? extends List<? extends Number>>",
			"java.util.AbstractMap<java.lang.String,? extends java.util.List<? extends java.lang.Number>>"},
	}
	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			d := mustDescriptor(t, u, tt.sig)
			var first descriptor.Descriptor
			if d.Superclass() != nil && d.Superclass().Key() != "java.lang.Object" {
				first = d.Superclass()
			} else if len(d.Interfaces()) > 0 {
				first = d.Interfaces()[0]
			}
			if first == nil {
				t.Fatal("no supertypes")
			}
			if got := first.Key(); got != tt.want {
				t.Errorf("supertype = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestWildcardArrayElement(t *testing.T) {
	src := `schema: "1"
types:
  - name: java.lang.Object
  - name: p.Base
    params: [X]
  - name: p.Holder
    params: [T]
    extends: "p.Base<T[]>"
`
	u, err := Parse([]byte(src), "holder.yaml")
	if err != nil {
		t.Fatal(err)
	}
	d := mustDescriptor(t, u, "p.Holder<java.lang.Object>")
	if got, want := d.Superclass().Key(), "p.Base<java.lang.Object[]>"; got != want {
		t.Errorf("superclass = %s, want %s", got, want)
	}
	_, err = u.Descriptor("p.Holder<?>")
	if err == nil || !strings.Contains(err.Error(), "invalid array element") {
		t.Errorf("p.Holder<?>: err = %v, want invalid array element", err)
	}
}

func TestRawSupertypesErased(t *testing.T) {
	u := Builtin()
	d := mustDescriptor(t, u, "java.util.ArrayList")
	if s := d.Superclass(); s.Kind() != descriptor.Raw || s.Key() != "java.util.AbstractList" {
		t.Errorf("superclass = %v %s, want raw java.util.AbstractList", s.Kind(), s.Key())
	}
	if i := d.Interfaces()[0]; i.Kind() != descriptor.Raw || i.Key() != "java.util.List" {
		t.Errorf("first interface = %v %s, want raw java.util.List", i.Kind(), i.Key())
	}
}

func TestImplicitObjectSuperclass(t *testing.T) {
	u := Builtin()
	if s := mustDescriptor(t, u, "java.lang.Number").Superclass(); s == nil || s.Key() != "java.lang.Object" {
		t.Errorf("Number superclass = %v, want java.lang.Object", s)
	}
	if s := mustDescriptor(t, u, "java.lang.Object").Superclass(); s != nil {
		t.Errorf("Object superclass = %s, want none", s.Key())
	}
	if s := mustDescriptor(t, u, "java.lang.CharSequence").Superclass(); s != nil {
		t.Errorf("interface superclass = %s, want none", s.Key())
	}
}

func TestRecursiveBound(t *testing.T) {
	u := Builtin()
	e := mustDescriptor(t, u, "E@java.lang.Enum")
	bounds := e.Bounds()
	if len(bounds) != 1 {
		t.Fatalf("E has %d bounds, want 1", len(bounds))
	}
	b := bounds[0]
	if b.Key() != "java.lang.Enum<E@java.lang.Enum>" {
		t.Errorf("bound = %s", b.Key())
	}
	if b.TypeArguments()[0] != e {
		t.Error("bound argument is not the type variable itself")
	}
}

func TestDeclarationFlags(t *testing.T) {
	u := Builtin()
	tests := []struct {
		sig   string
		flags descriptor.Flags
		mods  descriptor.Modifiers
	}{
		{"java.lang.String", descriptor.IsClass | descriptor.IsTopLevel, descriptor.Public | descriptor.Final},
		{"java.lang.CharSequence", descriptor.IsInterface | descriptor.IsTopLevel, descriptor.Public},
		{"java.lang.Thread.State", descriptor.IsClass | descriptor.IsEnum | descriptor.IsNested | descriptor.IsMember,
			descriptor.Public | descriptor.StaticModifier | descriptor.Final},
		{"java.lang.Override", descriptor.IsInterface | descriptor.IsAnnotation | descriptor.IsTopLevel, descriptor.Public},
	}
	for _, tt := range tests {
		d := mustDescriptor(t, u, tt.sig)
		if d.Flags() != tt.flags {
			t.Errorf("%s: Flags() = %b, want %b", tt.sig, d.Flags(), tt.flags)
		}
		if d.Modifiers() != tt.mods {
			t.Errorf("%s: Modifiers() = %b, want %b", tt.sig, d.Modifiers(), tt.mods)
		}
	}
}

func TestDescriptorErrors(t *testing.T) {
	u := Builtin()
	tests := []struct {
		sig  string
		want string
	}{
		{"Foo", "unknown type Foo"},
		{"List<String, String>", "wrong number of type arguments"},
		{"String<Integer>", "is not generic"},
		{"#String", "is not generic"},
		{"List<int>", "not a reference type"},
		{"List<? extends int>", "not a reference type"},
		{"X@java.util.List", "has no type parameter X"},
		{"void[]", "invalid array element"},
		{"List<", "expected type"},
	}
	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			_, err := u.Descriptor(tt.sig)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}

	_, err := u.Descriptor("Nope")
	if !errors.Is(err, descriptor.ErrNotFound) {
		t.Errorf("unknown name error %v does not wrap ErrNotFound", err)
	}
}

func TestResolveType(t *testing.T) {
	u := Builtin()
	d, err := u.ResolveType("java.lang.Integer", nil)
	if err != nil {
		t.Fatal(err)
	}
	if d.Kind() != descriptor.Class || d.Name() != "java.lang.Integer" {
		t.Errorf("got %v %s", d.Kind(), d.Name())
	}
	if d, err := u.ResolveType("java.util.List", nil); err != nil || d.Kind() != descriptor.Generic {
		t.Errorf("ResolveType(List) = %v, %v; want generic declaration", d, err)
	}
	if _, err := u.ResolveType("java.lang.Missing", nil); !errors.Is(err, descriptor.ErrNotFound) {
		t.Errorf("missing type: err = %v, want ErrNotFound", err)
	}
	if _, err := u.ResolveType("int", nil); !errors.Is(err, descriptor.ErrNotFound) {
		t.Errorf("primitive: err = %v, want ErrNotFound", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", "empty file"},
		{"no_schema", "types: []", "missing schema version"},
		{"bad_schema", "schema: banana", "schema \"banana\""},
		{"future_schema", "schema: \"2.0\"", "unsupported schema 2.0.0"},
		{"unknown_field", "schema: \"1\"\ncolor: red", "field color not found"},
		{"unknown_kind", "schema: \"1\"\ntypes:\n  - {name: A, kind: struct}", "unknown kind \"struct\""},
		{"unknown_modifier", "schema: \"1\"\ntypes:\n  - {name: A, modifiers: [sealed]}", "unknown modifier \"sealed\""},
		{"unknown_nesting", "schema: \"1\"\ntypes:\n  - {name: A, nesting: deep}", "unknown nesting \"deep\""},
		{"no_name", "schema: \"1\"\ntypes:\n  - {kind: class}", "type without a name"},
		{"bad_name", "schema: \"1\"\ntypes:\n  - {name: \"A<B>\"}", "qualified identifier"},
		{"redeclared", "schema: \"1\"\ntypes:\n  - {name: A}\n  - {name: A}", "type A redeclared"},
		{"param_redeclared", "schema: \"1\"\ntypes:\n  - {name: A, params: [T, T]}", "type parameter T redeclared"},
		{"bad_param", "schema: \"1\"\ntypes:\n  - {name: A, params: [\"T extends\"]}", "param \"T extends\""},
		{"unknown_super", "schema: \"1\"\ntypes:\n  - {name: A, extends: B}", "unknown type B"},
		{"interface_extends", "schema: \"1\"\ntypes:\n  - {name: B, kind: interface}\n  - {name: A, kind: interface, extends: B}", "list superinterfaces under implements"},
		{"extends_primitive", "schema: \"1\"\ntypes:\n  - {name: A, extends: int}", "A cannot extend int"},
		{"bad_bound", "schema: \"1\"\ntypes:\n  - {name: A, params: [\"T extends int\"]}", "invalid bound int for T"},
		{"arity", "schema: \"1\"\ntypes:\n  - {name: G, params: [T]}\n  - {name: A, extends: \"G<A, A>\"}", "wrong number of type arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "test.yaml")
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
			if !strings.HasPrefix(err.Error(), "universe: ") {
				t.Errorf("error %q lacks the package prefix", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "u.yaml")
	src := `schema: "1.2.0"
types:
  - name: java.lang.Object
  - name: p.Shape
    kind: interface
  - name: p.Box
    params: ["T extends p.Shape"]
    implements: [p.Shape]
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	u, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	d := mustDescriptor(t, u, "Box<Box<Shape>>")
	if d.Key() != "p.Box<p.Box<p.Shape>>" {
		t.Errorf("Key() = %s", d.Key())
	}
	if d.Superclass().Key() != "java.lang.Object" {
		t.Errorf("superclass = %s", d.Superclass().Key())
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil || !strings.Contains(err.Error(), "universe: read") {
		t.Errorf("Load(missing) error = %v", err)
	}
}

func TestAmbiguousSimpleName(t *testing.T) {
	u, err := Parse([]byte("schema: \"1\"\ntypes:\n  - {name: a.T}\n  - {name: b.T}"), "amb.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := u.Descriptor("T"); err == nil || !strings.Contains(err.Error(), "ambiguous type T") {
		t.Errorf("error = %v, want ambiguous", err)
	}
	if _, err := u.Descriptor("a.T"); err != nil {
		t.Errorf("qualified lookup failed: %v", err)
	}
}

func TestScopeString(t *testing.T) {
	u := Builtin()
	s := u.Lookup("java.util.Map").Scope().String()
	for _, want := range []string{"scope type java.util.Map {", "K: type parameter of java.util.Map", "V: type parameter of java.util.Map"} {
		if !strings.Contains(s, want) {
			t.Errorf("scope dump missing %q:\n%s", want, s)
		}
	}
	if obj, _ := u.Lookup("java.util.Map").Scope().LookupParent("int"); obj == nil {
		t.Error("predeclared int not visible from a declaration scope")
	}
}
