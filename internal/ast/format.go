package ast

import (
	"strings"
)

// Format renders statements as s-expressions, one per line:
//
//	let x = 1 + 2 * 3  =>  (let x (+ 1 (* 2 3)))
//
// Missing parts are printed as "?".
func Format(r Root) string {
	var sb strings.Builder
	for i, s := range r.Stmts() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeStmt(&sb, s)
	}
	return sb.String()
}

func writeStmt(sb *strings.Builder, s Stmt) {
	switch s := s.(type) {
	case VariableDef:
		sb.WriteString("(let ")
		if name, ok := s.Name(); ok {
			sb.WriteString(name)
		} else {
			sb.WriteByte('?')
		}
		sb.WriteByte(' ')
		value, ok := s.Value()
		writeExpr(sb, value, ok)
		sb.WriteByte(')')
	case Expr:
		writeExpr(sb, s, true)
	}
}

func writeExpr(sb *strings.Builder, e Expr, ok bool) {
	if !ok {
		sb.WriteByte('?')
		return
	}
	switch e := e.(type) {
	case Literal:
		sb.WriteString(e.Text())
	case VariableRef:
		sb.WriteString(e.Name())
	case InfixExpr:
		sb.WriteByte('(')
		sb.WriteString(e.Op().String())
		sb.WriteByte(' ')
		lhs, lok := e.Lhs()
		writeExpr(sb, lhs, lok)
		sb.WriteByte(' ')
		rhs, rok := e.Rhs()
		writeExpr(sb, rhs, rok)
		sb.WriteByte(')')
	case PrefixExpr:
		sb.WriteString("(- ")
		inner, iok := e.Operand()
		writeExpr(sb, inner, iok)
		sb.WriteByte(')')
	case ParenExpr:
		inner, iok := e.Inner()
		writeExpr(sb, inner, iok)
	}
}
