package lexer

import (
	"bytes"

	"felix/internal/token"
)

// literal builds a matcher for kinds with a fixed spelling (keywords, operators, brackets).
func literal(k token.Kind) matcher {
	text, ok := k.Spelling()
	if !ok {
		panic("lexer: kind " + k.String() + " has no fixed spelling")
	}
	lit := []byte(text)
	return func(src []byte) int {
		if bytes.HasPrefix(src, lit) {
			return len(lit)
		}
		return 0
	}
}
