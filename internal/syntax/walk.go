package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses a signature tree in depth-first order.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *ClassType:
		Walk(n.Name, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	case *ArrayType:
		Walk(n.Elem, v)

	case *Wildcard:
		if n.Bound != nil {
			Walk(n.Bound, v)
		}

	case *TypeVarRef:
		Walk(n.Name, v)
		Walk(n.Owner, v)

	case *TypeParam:
		Walk(n.Name, v)
		for _, b := range n.Bounds {
			Walk(b, v)
		}
	}
}
