package lexer

import "felix/internal/token"

// matcher returns the length of the longest prefix of src it accepts, 0 if none.
type matcher func(src []byte) int

type rule struct {
	kind  token.Kind
	match matcher
}

// rules в порядке объявления: при равной длине побеждает более раннее правило,
// поэтому "let" - ключевое слово, а "letter" - идентификатор.
var rules = buildRules()

func buildRules() []rule {
	out := []rule{
		{token.Whitespace, matchWhitespace},
		{token.KwFn, literal(token.KwFn)},
		{token.KwLet, literal(token.KwLet)},
		{token.Ident, matchIdent},
		{token.Number, matchNumber},
	}
	for _, k := range []token.Kind{
		token.Plus, token.Minus, token.Star, token.Slash, token.Assign,
		token.LBrace, token.RBrace, token.LParen, token.RParen,
	} {
		out = append(out, rule{k, literal(k)})
	}
	return append(out, rule{token.Comment, matchComment})
}

// longestMatch applies every rule and keeps the first longest one.
func longestMatch(src []byte) (token.Kind, int) {
	best, bestLen := token.Invalid, 0
	for _, r := range rules {
		if n := r.match(src); n > bestLen {
			best, bestLen = r.kind, n
		}
	}
	return best, bestLen
}
