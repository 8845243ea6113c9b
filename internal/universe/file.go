package universe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	semver "github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/you-not-fish/jtypes/internal/descriptor"
	"github.com/you-not-fish/jtypes/internal/syntax"
)

// SchemaConstraint is the range of universe file schemas this package reads.
const SchemaConstraint = "^1"

// file is the on-disk form of a universe.
type file struct {
	Schema string      `yaml:"schema"`
	Types  []typeEntry `yaml:"types"`
}

type typeEntry struct {
	Name       string   `yaml:"name"`
	Kind       string   `yaml:"kind"`
	Modifiers  []string `yaml:"modifiers"`
	Nesting    string   `yaml:"nesting"`
	Params     []string `yaml:"params"`
	Extends    string   `yaml:"extends"`
	Implements []string `yaml:"implements"`
}

// Load reads the universe file at path.
func Load(path string) (*Universe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("universe: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a universe from YAML. name labels errors.
func Parse(data []byte, name string) (*Universe, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("universe: parse %s: empty file", name)
		}
		return nil, fmt.Errorf("universe: parse %s: %w", name, err)
	}
	if err := checkSchema(f.Schema); err != nil {
		return nil, fmt.Errorf("universe: %s: %w", name, err)
	}

	u := newUniverse(name)
	for i := range f.Types {
		if err := u.declare(&f.Types[i]); err != nil {
			return nil, fmt.Errorf("universe: %s: %w", name, err)
		}
	}
	if err := u.check(); err != nil {
		return nil, fmt.Errorf("universe: %s: %w", name, err)
	}
	return u, nil
}

func checkSchema(schema string) error {
	if schema == "" {
		return errors.New("missing schema version")
	}
	v, err := semver.NewVersion(schema)
	if err != nil {
		return fmt.Errorf("schema %q: %w", schema, err)
	}
	c, err := semver.NewConstraint(SchemaConstraint)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("unsupported schema %s (want %s)", v, SchemaConstraint)
	}
	return nil
}

var modifierNames = map[string]descriptor.Modifiers{
	"public":    descriptor.Public,
	"protected": descriptor.Protected,
	"private":   descriptor.Private,
	"static":    descriptor.StaticModifier,
	"final":     descriptor.Final,
	"abstract":  descriptor.Abstract,
}

var kindFlags = map[string]descriptor.Flags{
	"":           descriptor.IsClass,
	"class":      descriptor.IsClass,
	"interface":  descriptor.IsInterface,
	"enum":       descriptor.IsClass | descriptor.IsEnum,
	"annotation": descriptor.IsInterface | descriptor.IsAnnotation,
}

var nestingFlags = map[string]descriptor.Flags{
	"":          descriptor.IsTopLevel,
	"top":       descriptor.IsTopLevel,
	"member":    descriptor.IsNested | descriptor.IsMember,
	"local":     descriptor.IsNested | descriptor.IsLocal,
	"anonymous": descriptor.IsNested | descriptor.IsAnonymous,
}

// declare parses one entry and inserts it into the universe scope.
// Names inside signatures are resolved later by check.
func (u *Universe) declare(e *typeEntry) error {
	if e.Name == "" {
		return errors.New("type without a name")
	}
	if strings.ContainsAny(e.Name, "<>[]?@# ") {
		return fmt.Errorf("type %q: name must be a qualified identifier", e.Name)
	}

	kf, ok := kindFlags[e.Kind]
	if !ok {
		return fmt.Errorf("type %s: unknown kind %q", e.Name, e.Kind)
	}
	nf, ok := nestingFlags[e.Nesting]
	if !ok {
		return fmt.Errorf("type %s: unknown nesting %q", e.Name, e.Nesting)
	}
	tn := &TypeName{object: object{name: e.Name}, flags: kf | nf}
	for _, m := range e.Modifiers {
		bit, ok := modifierNames[m]
		if !ok {
			return fmt.Errorf("type %s: unknown modifier %q", e.Name, m)
		}
		tn.mods |= bit
	}

	if alt := u.scope.Insert(tn); alt != nil {
		return fmt.Errorf("type %s redeclared", e.Name)
	}
	tn.scope = NewScope(u.scope, "type "+e.Name)

	for i, src := range e.Params {
		tp, err := syntax.ParseTypeParam(src)
		if err != nil {
			return fmt.Errorf("type %s: param %q: %w", e.Name, src, err)
		}
		p := &TypeParam{object: object{name: tp.Name.Value}, owner: tn, index: i, bounds: tp.Bounds}
		if alt := tn.scope.Insert(p); alt != nil {
			return fmt.Errorf("type %s: type parameter %s redeclared", e.Name, p.name)
		}
		tn.params = append(tn.params, p)
	}

	if e.Extends != "" {
		if tn.IsInterface() {
			return fmt.Errorf("interface %s: list superinterfaces under implements", e.Name)
		}
		x, err := syntax.ParseType(e.Extends)
		if err != nil {
			return fmt.Errorf("type %s: extends %q: %w", e.Name, e.Extends, err)
		}
		tn.extends = x
	}
	for _, src := range e.Implements {
		x, err := syntax.ParseType(src)
		if err != nil {
			return fmt.Errorf("type %s: implements %q: %w", e.Name, src, err)
		}
		tn.implements = append(tn.implements, x)
	}

	u.decls = append(u.decls, tn)
	simple := e.Name[strings.LastIndexByte(e.Name, '.')+1:]
	u.simple[simple] = append(u.simple[simple], tn)
	return nil
}
