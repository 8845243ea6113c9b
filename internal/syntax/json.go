package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the signature tree to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *ClassType:
		m := map[string]interface{}{
			"type": "ClassType",
			"pos":  n.pos.String(),
			"name": n.Name.Value,
		}
		if n.Decl {
			m["decl"] = true
		}
		if n.Args != nil {
			m["args"] = mapSlice(n.Args, toJSON)
		}
		return m

	case *ArrayType:
		return map[string]interface{}{
			"type": "ArrayType",
			"pos":  n.pos.String(),
			"dims": n.Dims,
			"elem": toJSON(n.Elem),
		}

	case *Wildcard:
		m := map[string]interface{}{
			"type": "Wildcard",
			"pos":  n.pos.String(),
		}
		if n.Bound != nil {
			m["bound"] = toJSON(n.Bound)
			m["upper"] = n.Upper
		}
		return m

	case *TypeVarRef:
		return map[string]interface{}{
			"type":  "TypeVarRef",
			"pos":   n.pos.String(),
			"name":  n.Name.Value,
			"owner": n.Owner.Value,
		}

	case *TypeParam:
		return map[string]interface{}{
			"type":   "TypeParam",
			"pos":    n.pos.String(),
			"name":   n.Name.Value,
			"bounds": mapSlice(n.Bounds, toJSON),
		}
	}
	return nil
}

func mapSlice[T Node](s []T, f func(Node) interface{}) []interface{} {
	out := make([]interface{}, len(s))
	for i, x := range s {
		out[i] = f(x)
	}
	return out
}
