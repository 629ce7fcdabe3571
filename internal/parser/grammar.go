package parser

import "felix/internal/syntax"

// root: Stmt* до конца ввода.
func root(p *Parser) CompletedMarker {
	m := p.Start()
	for !p.atEnd() {
		stmt(p)
	}
	return m.Complete(p, syntax.Root)
}

// stmt: VariableDef | Expr.
func stmt(p *Parser) (CompletedMarker, bool) {
	if p.at(syntax.LetKw) {
		return variableDef(p), true
	}
	return expr(p)
}

// variableDef: 'let' Ident '=' Expr.
func variableDef(p *Parser) CompletedMarker {
	m := p.Start()
	p.bump()
	p.expect(syntax.Ident)
	p.expect(syntax.Equals)
	expr(p)
	return m.Complete(p, syntax.VariableDef)
}
