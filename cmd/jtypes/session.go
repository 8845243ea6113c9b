package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/you-not-fish/jtypes/internal/syntax"
	"github.com/you-not-fish/jtypes/internal/types"
	"github.com/you-not-fish/jtypes/internal/universe"
)

// session is a universe and an environment over it. Types created by
// earlier queries stay interned for later ones.
type session struct {
	conf *config
	u    *universe.Universe
	env  *types.Environment
	out  io.Writer
}

func newSession(conf *config, out io.Writer) (*session, error) {
	u := universe.Builtin()
	if conf.universe != "" {
		var err error
		if u, err = universe.Load(conf.universe); err != nil {
			return nil, err
		}
	}
	env := types.NewEnvironment(&types.Config{Resolver: u, CacheSize: conf.cacheSize})
	return &session{conf: conf, u: u, env: env, out: out}, nil
}

type queryInfo struct {
	name  string
	arity int
	usage string
	help  string
	run   func(s *session, ts []types.Type) error
}

// queryList is ordered for the usage message. parse is handled apart
// since it does not build types.
var queryList = []*queryInfo{
	{"assign", 2, "assign <from> <to>", "report whether <from> is assignable to <to>", (*session).assign},
	{"equiv", 2, "equiv <a> <b>", "report whether <a> and <b> are equivalent", (*session).equiv},
	{"subtype", 2, "subtype <sub> <super>", "report whether <sub> is a proper subtype of <super>", (*session).subtype},
	{"erasure", 1, "erasure <type>", "print the erasure of <type>", (*session).erasure},
	{"print", 1, "print <type>", "print the signature and kind of <type>", (*session).print},
	{"supertypes", 1, "supertypes <type>", "print the direct supertypes of <type>", (*session).supertypes},
	{"parse", 1, "parse <type>", "print the syntax tree of <type>", nil},
}

func lookupQuery(name string) *queryInfo {
	for _, q := range queryList {
		if q.name == name {
			return q
		}
	}
	return nil
}

// run executes one query.
func (s *session) run(op string, operands []string) error {
	q := lookupQuery(op)
	if q == nil {
		return fmt.Errorf("unknown query %q", op)
	}
	if len(operands) != q.arity {
		return fmt.Errorf("%s: want %d type(s), have %d", op, q.arity, len(operands))
	}
	if q.run == nil {
		return s.parse(operands[0])
	}
	ts := make([]types.Type, len(operands))
	for i, sig := range operands {
		t, err := s.typ(sig)
		if err != nil {
			return err
		}
		ts[i] = t
	}
	return q.run(s, ts)
}

// runAll runs the queries in src, reporting failures to errw, and returns
// the number that failed.
func (s *session) runAll(filename, src string, errw io.Writer) int {
	failed := 0
	for _, q := range parseQueries(src) {
		if err := s.run(q.op, q.operands); err != nil {
			fmt.Fprintf(errw, "%s:%d: %v\n", filename, q.line, err)
			failed++
		}
	}
	return failed
}

// typ creates the type denoted by sig.
func (s *session) typ(sig string) (types.Type, error) {
	d, err := s.u.Descriptor(sig)
	if err != nil {
		return nil, err
	}
	return s.env.Create(d), nil
}

func (s *session) assign(ts []types.Type) error {
	fmt.Fprintf(s.out, "%s -> %s: %v\n", ts[0], ts[1], types.AssignableTo(ts[0], ts[1]))
	return nil
}

func (s *session) equiv(ts []types.Type) error {
	fmt.Fprintf(s.out, "%s == %s: %v\n", ts[0], ts[1], types.Equivalent(ts[0], ts[1]))
	return nil
}

func (s *session) subtype(ts []types.Type) error {
	var hs [2]types.HierarchyType
	for i, t := range ts {
		h, ok := t.(types.HierarchyType)
		if !ok {
			return fmt.Errorf("subtype: %s is a %s type, want a class or interface", t, t.Kind())
		}
		hs[i] = h
	}
	fmt.Fprintf(s.out, "%s <: %s: %v\n", hs[0], hs[1], types.IsSubType(hs[0], hs[1]))
	return nil
}

func (s *session) erasure(ts []types.Type) error {
	fmt.Fprintf(s.out, "%s => %s\n", ts[0], types.Erasure(ts[0]))
	return nil
}

func (s *session) print(ts []types.Type) error {
	fmt.Fprintf(s.out, "%s (%s)\n", ts[0], ts[0].Kind())
	return nil
}

func (s *session) supertypes(ts []types.Type) error {
	sups, err := types.DirectSupertypes(ts[0])
	if err != nil {
		return fmt.Errorf("supertypes: %w", err)
	}
	fmt.Fprintf(s.out, "%s:\n", ts[0])
	for _, t := range sups {
		fmt.Fprintf(s.out, "  %s\n", t)
	}
	return nil
}

func (s *session) parse(sig string) error {
	x, err := syntax.ParseType(sig)
	if err != nil {
		return fmt.Errorf("parse %q: %w", sig, err)
	}
	switch s.conf.astFormat {
	case "json":
		return syntax.FprintJSON(s.out, x)
	case "text", "":
		syntax.Fprint(s.out, x)
		return nil
	}
	return errors.New("unknown tree format " + s.conf.astFormat)
}

func (s *session) printStats() {
	if !s.conf.cacheStats {
		return
	}
	st := s.env.CacheStats()
	fmt.Fprintf(s.out, "subtype cache: %d entries, %d hits, %d misses, %d evictions\n",
		s.env.CacheLen(), st.Hits, st.Misses, st.Evictions)
}

// query is one line of a query file.
type query struct {
	line     int
	op       string
	operands []string
}

// parseQueries splits src into queries. Blank lines and lines starting
// with "//" are skipped.
func parseQueries(src string) []query {
	var qs []query
	for i, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		fields := splitOperands(line)
		qs = append(qs, query{line: i + 1, op: fields[0], operands: fields[1:]})
	}
	return qs
}

// splitOperands splits line at white space outside angle brackets, so
// that "assign Map<K, V> Object" yields three fields.
func splitOperands(line string) []string {
	var fields []string
	var cur strings.Builder
	depth := 0
	flush := func() {
		if cur.Len() > 0 {
			fields = append(fields, cur.String())
			cur.Reset()
		}
	}
	for _, r := range line {
		switch {
		case r == '<':
			depth++
		case r == '>' && depth > 0:
			depth--
		case depth == 0 && (r == ' ' || r == '\t'):
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	flush()
	return fields
}
