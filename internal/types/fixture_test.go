package types

import (
	"strings"
	"testing"

	"github.com/you-not-fish/jtypes/internal/universe"
)

// ----------------------------------------------------------------------------
// Test helpers

// fixtureYAML declares a small hierarchy next to the parts of java.lang the
// tests need.
const fixtureYAML = `
schema: "1"
types:
  - name: java.lang.Object
  - name: java.lang.Cloneable
    kind: interface
  - name: java.io.Serializable
    kind: interface
  - name: java.lang.Comparable
    kind: interface
    params: [T]
  - name: java.lang.Number
    modifiers: [abstract]
    implements: [java.io.Serializable]
  - name: java.lang.Integer
    modifiers: [final]
    extends: java.lang.Number
    implements: ["java.lang.Comparable<java.lang.Integer>"]
  - name: p.A
  - name: p.B
    extends: p.A
  - name: p.C
    extends: p.B
  - name: p.Box
    params: ["T extends java.lang.Number"]
  - name: p.Pair
    params: [T, "U extends T"]
  - name: p.Max
    params: ["T extends java.lang.Number & java.lang.Comparable<T>"]
`

type fixture struct {
	t   *testing.T
	u   *universe.Universe
	env *Environment
}

// newFixture returns an environment over the builtin universe.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	u := universe.Builtin()
	return &fixture{t: t, u: u, env: NewEnvironment(&Config{Resolver: u})}
}

// newCustomFixture returns an environment over the fixture universe.
func newCustomFixture(t *testing.T) *fixture {
	t.Helper()
	u, err := universe.Parse([]byte(fixtureYAML), "fixture.yaml")
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return &fixture{t: t, u: u, env: NewEnvironment(&Config{Resolver: u})}
}

// typ creates the type denoted by sig.
func (f *fixture) typ(sig string) Type {
	f.t.Helper()
	d, err := f.u.Descriptor(sig)
	if err != nil {
		f.t.Fatalf("Descriptor(%q): %v", sig, err)
	}
	return f.env.Create(d)
}

func (f *fixture) hier(sig string) HierarchyType {
	f.t.Helper()
	h, ok := f.typ(sig).(HierarchyType)
	if !ok {
		f.t.Fatalf("%s is not a hierarchy type", sig)
	}
	return h
}

// mustPanic runs fn and reports an error unless it panics with a message
// containing want.
func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Errorf("expected panic containing %q", want)
			return
		}
		msg, _ := r.(string)
		if !strings.Contains(msg, want) {
			t.Errorf("panic %v does not contain %q", r, want)
		}
	}()
	fn()
}
