package ast

import (
	"fmt"
	"strconv"

	"felix/internal/syntax"
)

type ExprKind uint8

const (
	ExprLit ExprKind = iota
	ExprIdent
	ExprBinary
	ExprUnary
	ExprGroup
)

// Expr is one of Literal, VariableRef, InfixExpr, PrefixExpr, ParenExpr.
type Expr interface {
	Stmt
	Kind() ExprKind
}

// CastExpr wraps n if it is an expression node.
func CastExpr(n *syntax.Node) (Expr, bool) {
	if n == nil {
		return nil, false
	}
	switch n.Kind() {
	case syntax.Literal:
		return Literal{n}, true
	case syntax.VariableRef:
		return VariableRef{n}, true
	case syntax.InfixExpr:
		return InfixExpr{n}, true
	case syntax.PrefixExpr:
		return PrefixExpr{n}, true
	case syntax.ParenExpr:
		return ParenExpr{n}, true
	default:
		return nil, false
	}
}

// exprChildren returns the expression children of n in source order.
func exprChildren(n *syntax.Node) []Expr {
	var out []Expr
	for _, child := range n.Children() {
		if e, ok := CastExpr(child); ok {
			out = append(out, e)
		}
	}
	return out
}

// BinaryOp - оператор инфиксного выражения.
type BinaryOp uint8

const (
	OpInvalid BinaryOp = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

func binaryOpFromKind(k syntax.Kind) BinaryOp {
	switch k {
	case syntax.Plus:
		return OpAdd
	case syntax.Minus:
		return OpSub
	case syntax.Star:
		return OpMul
	case syntax.Slash:
		return OpDiv
	}
	return OpInvalid
}

type Literal struct{ node *syntax.Node }

func (Literal) isStmt() {}
func (Literal) Kind() ExprKind { return ExprLit }
func (l Literal) Syntax() *syntax.Node { return l.node }

// Text returns the literal exactly as written.
func (l Literal) Text() string {
	if tok := l.node.FirstToken(syntax.Number); tok != nil {
		return tok.Text()
	}
	return ""
}

// Value parses the number literal.
func (l Literal) Value() (uint64, error) {
	tok := l.node.FirstToken(syntax.Number)
	if tok == nil {
		return 0, fmt.Errorf("literal at %s has no number", l.node.TextRange())
	}
	v, err := strconv.ParseUint(tok.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("literal %q: %w", tok.Text(), err)
	}
	return v, nil
}

type VariableRef struct{ node *syntax.Node }

func (VariableRef) isStmt() {}
func (VariableRef) Kind() ExprKind { return ExprIdent }
func (v VariableRef) Syntax() *syntax.Node { return v.node }

// Name returns the referenced identifier.
func (v VariableRef) Name() string {
	if tok := v.node.FirstToken(syntax.Ident); tok != nil {
		return tok.Text()
	}
	return ""
}

type InfixExpr struct{ node *syntax.Node }

func (InfixExpr) isStmt() {}
func (InfixExpr) Kind() ExprKind { return ExprBinary }
func (e InfixExpr) Syntax() *syntax.Node { return e.node }

// Op returns the operator token kind; OpInvalid if it is missing.
func (e InfixExpr) Op() BinaryOp {
	for _, el := range e.node.ChildrenWithTokens() {
		if tok, ok := el.(*syntax.Token); ok {
			if op := binaryOpFromKind(tok.Kind()); op != OpInvalid {
				return op
			}
		}
	}
	return OpInvalid
}

func (e InfixExpr) Lhs() (Expr, bool) {
	kids := exprChildren(e.node)
	if len(kids) == 0 {
		return nil, false
	}
	return kids[0], true
}

// Rhs is false when the right operand failed to parse.
func (e InfixExpr) Rhs() (Expr, bool) {
	kids := exprChildren(e.node)
	if len(kids) < 2 {
		return nil, false
	}
	return kids[1], true
}

type PrefixExpr struct{ node *syntax.Node }

func (PrefixExpr) isStmt() {}
func (PrefixExpr) Kind() ExprKind { return ExprUnary }
func (e PrefixExpr) Syntax() *syntax.Node { return e.node }

// Operand returns the negated expression.
func (e PrefixExpr) Operand() (Expr, bool) {
	kids := exprChildren(e.node)
	if len(kids) == 0 {
		return nil, false
	}
	return kids[0], true
}

type ParenExpr struct{ node *syntax.Node }

func (ParenExpr) isStmt() {}
func (ParenExpr) Kind() ExprKind { return ExprGroup }
func (e ParenExpr) Syntax() *syntax.Node { return e.node }

func (e ParenExpr) Inner() (Expr, bool) {
	kids := exprChildren(e.node)
	if len(kids) == 0 {
		return nil, false
	}
	return kids[0], true
}

// Closed reports whether the closing parenthesis is present.
func (e ParenExpr) Closed() bool {
	return e.node.FirstToken(syntax.RParen) != nil
}
