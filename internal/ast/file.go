package ast

import "felix/internal/syntax"

// Root is the typed view of a whole parsed input.
type Root struct{ node *syntax.Node }

// CastRoot wraps n if it is the Root node.
func CastRoot(n *syntax.Node) (Root, bool) {
	if n == nil || n.Kind() != syntax.Root {
		return Root{}, false
	}
	return Root{n}, true
}

func (r Root) Syntax() *syntax.Node { return r.node }

// Stmts returns the top-level statements, skipping error nodes.
func (r Root) Stmts() []Stmt {
	var out []Stmt
	for _, child := range r.node.Children() {
		if s, ok := CastStmt(child); ok {
			out = append(out, s)
		}
	}
	return out
}
