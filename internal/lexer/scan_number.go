package lexer

// matchNumber: [0-9]+ без знака, без дробной части.
func matchNumber(src []byte) int {
	n := 0
	for n < len(src) && isDec(src[n]) {
		n++
	}
	return n
}
