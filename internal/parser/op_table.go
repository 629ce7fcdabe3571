package parser

import "felix/internal/syntax"

// Сила связывания: чем больше, тем плотнее. Для левоассоциативных
// инфиксных операторов правая сила на единицу больше левой.
const (
	bpAdditive       = 1 // + -
	bpMultiplicative = 3 // * /
	bpPrefix         = 5 // унарный -
)

// infixBindingPower возвращает (левая, правая) силу связывания инфиксного оператора.
func infixBindingPower(kind syntax.Kind) (left, right int, ok bool) {
	switch kind {
	case syntax.Plus, syntax.Minus:
		return bpAdditive, bpAdditive + 1, true
	case syntax.Star, syntax.Slash:
		return bpMultiplicative, bpMultiplicative + 1, true
	default:
		return 0, 0, false
	}
}

// prefixBindingPower returns the right binding power of a prefix operator.
func prefixBindingPower(kind syntax.Kind) (int, bool) {
	if kind == syntax.Minus {
		return bpPrefix, true
	}
	return 0, false
}

// порядок проверки важен: именно в нём виды попадают в expected
var infixOperators = [...]syntax.Kind{syntax.Plus, syntax.Minus, syntax.Star, syntax.Slash}

// recoverySet - токены, на которых восстановление не съедает токен.
var recoverySet = [...]syntax.Kind{syntax.LetKw}
