package types

import "fmt"

// Boxed returns the wrapper class of p, e.g. java.lang.Integer for int.
// scope is passed to the resolver when the class has not been created yet.
func (e *Environment) Boxed(p *PrimitiveType, scope any) (*StandardType, error) {
	s, err := e.lookupStandard(p.BoxedName(), scope)
	if err != nil {
		return nil, fmt.Errorf("box %s: %w", p, err)
	}
	return s, nil
}

// Unboxed returns the primitive wrapped by s, or false if s is not one of
// the eight wrapper classes.
func (e *Environment) Unboxed(s *StandardType) (*PrimitiveType, bool) {
	for id := Boolean; id < numPrimitives; id++ {
		if primitives[id].boxed == s.name {
			return e.primitives[id], true
		}
	}
	return nil, false
}
