package ast

import "felix/internal/syntax"

// Stmt is a VariableDef or an Expr.
type Stmt interface {
	Syntax() *syntax.Node
	isStmt()
}

// CastStmt wraps n if it is a statement node. Error nodes are not statements.
func CastStmt(n *syntax.Node) (Stmt, bool) {
	if n != nil && n.Kind() == syntax.VariableDef {
		return VariableDef{n}, true
	}
	return CastExpr(n)
}

type VariableDef struct{ node *syntax.Node }

func (VariableDef) isStmt() {}

func (v VariableDef) Syntax() *syntax.Node { return v.node }

// Name returns the bound identifier; false when it is missing.
func (v VariableDef) Name() (string, bool) {
	tok := v.node.FirstToken(syntax.Ident)
	if tok == nil {
		return "", false
	}
	return tok.Text(), true
}

// Value returns the initializer expression; false when it is missing.
func (v VariableDef) Value() (Expr, bool) {
	kids := exprChildren(v.node)
	if len(kids) == 0 {
		return nil, false
	}
	return kids[0], true
}
