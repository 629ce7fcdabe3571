package parser

import "felix/internal/syntax"

// expr - главная точка входа для разбора выражений.
func expr(p *Parser) (CompletedMarker, bool) {
	return exprBindingPower(p, 0)
}

// exprBindingPower реализует Pratt parsing. Левый операнд уже выпущен в журнал,
// когда становится ясно, что он часть InfixExpr: Precede оборачивает его задним числом.
func exprBindingPower(p *Parser, minBP int) (CompletedMarker, bool) {
	lhs, ok := parseLhs(p)
	if !ok {
		return CompletedMarker{}, false
	}

	for {
		op, isOp := atInfixOperator(p)
		if !isOp {
			break
		}
		leftBP, rightBP, _ := infixBindingPower(op)
		if leftBP < minBP {
			break // оператор достанется внешнему вызову
		}

		p.bump()
		m := lhs.Precede(p)
		_, parsedRhs := exprBindingPower(p, rightBP)
		lhs = m.Complete(p, syntax.InfixExpr)
		if !parsedRhs {
			break
		}
	}
	return lhs, true
}

func atInfixOperator(p *Parser) (syntax.Kind, bool) {
	for _, op := range infixOperators {
		if p.at(op) {
			return op, true
		}
	}
	return syntax.EOF, false
}

// parseLhs: Literal | VariableRef | PrefixExpr | ParenExpr, иначе ошибка.
func parseLhs(p *Parser) (CompletedMarker, bool) {
	switch {
	case p.at(syntax.Number):
		return literal(p), true
	case p.at(syntax.Ident):
		return variableRef(p), true
	case p.at(syntax.Minus):
		return prefixExpr(p), true
	case p.at(syntax.LParen):
		return parenExpr(p), true
	default:
		p.error()
		return CompletedMarker{}, false
	}
}

func literal(p *Parser) CompletedMarker {
	m := p.Start()
	p.bump()
	return m.Complete(p, syntax.Literal)
}

func variableRef(p *Parser) CompletedMarker {
	m := p.Start()
	p.bump()
	return m.Complete(p, syntax.VariableRef)
}

func prefixExpr(p *Parser) CompletedMarker {
	m := p.Start()
	rightBP, _ := prefixBindingPower(syntax.Minus)
	p.bump()
	exprBindingPower(p, rightBP)
	return m.Complete(p, syntax.PrefixExpr)
}

func parenExpr(p *Parser) CompletedMarker {
	m := p.Start()
	p.bump()
	exprBindingPower(p, 0)
	p.expect(syntax.RParen)
	return m.Complete(p, syntax.ParenExpr)
}
