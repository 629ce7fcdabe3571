package lexer

import (
	"unicode/utf8"
)

// ===== Классификаторы =====

func isIdentStartByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// runeLen returns the byte length of the first rune in src; broken UTF-8 counts as one byte.
func runeLen(src []byte) int {
	if len(src) == 0 {
		return 0
	}
	if src[0] < utf8.RuneSelf {
		return 1
	}
	_, sz := utf8.DecodeRune(src)
	return sz
}
