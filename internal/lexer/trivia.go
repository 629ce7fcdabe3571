package lexer

// matchWhitespace coalesces spaces, tabs and line breaks into one token.
func matchWhitespace(src []byte) int {
	n := 0
	for n < len(src) && isSpace(src[n]) {
		n++
	}
	return n
}

// matchComment: '#' до конца строки, сам '\n' в комментарий не входит.
func matchComment(src []byte) int {
	if len(src) == 0 || src[0] != '#' {
		return 0
	}
	n := 1
	for n < len(src) && src[n] != '\n' {
		n++
	}
	return n
}
