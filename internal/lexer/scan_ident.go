package lexer

// matchIdent: [A-Za-z][A-Za-z0-9]*. Ключевые слова отделяет порядок правил, а не lookup.
func matchIdent(src []byte) int {
	if len(src) == 0 || !isIdentStartByte(src[0]) {
		return 0
	}
	n := 1
	for n < len(src) && isIdentContinueByte(src[n]) {
		n++
	}
	return n
}
