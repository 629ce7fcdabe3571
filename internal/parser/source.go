package parser

import (
	"felix/internal/syntax"
	"felix/internal/token"
)

// Token - токен в том виде, в каком его видят парсер и sink.
type Token struct {
	Kind  syntax.Kind
	Text  string
	Range syntax.TextRange
}

// FromLexed переводит вывод лексера в токены парсера (EOF отбрасывается).
func FromLexed(toks []token.Token) []Token {
	out := make([]Token, 0, len(toks))
	for _, t := range toks {
		if t.Kind == token.EOF {
			continue
		}
		out = append(out, Token{
			Kind:  syntax.FromToken(t.Kind),
			Text:  t.Text,
			Range: syntax.TextRange{Start: t.Span.Start, End: t.Span.End},
		})
	}
	return out
}

// Source - курсор по токенам, пропускающий trivia при принятии решений грамматикой.
// Сами trivia из буфера не удаляются: их вернёт в дерево sink.
type Source struct {
	tokens []Token
	cursor int
}

func NewSource(tokens []Token) *Source {
	return &Source{tokens: tokens}
}

// NextToken съедает следующий значимый токен вместе с trivia перед ним.
func (s *Source) NextToken() (Token, bool) {
	s.eatTrivia()
	if s.cursor >= len(s.tokens) {
		return Token{}, false
	}
	tok := s.tokens[s.cursor]
	s.cursor++
	return tok, true
}

// PeekKind возвращает вид следующего значимого токена; false на конце ввода.
func (s *Source) PeekKind() (syntax.Kind, bool) {
	s.eatTrivia()
	if s.cursor >= len(s.tokens) {
		return syntax.EOF, false
	}
	return s.tokens[s.cursor].Kind, true
}

// PeekToken is PeekKind with the whole token.
func (s *Source) PeekToken() (Token, bool) {
	s.eatTrivia()
	if s.cursor >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[s.cursor], true
}

// LastTokenRange returns the range of the last token in the buffer, trivia included.
func (s *Source) LastTokenRange() (syntax.TextRange, bool) {
	if len(s.tokens) == 0 {
		return syntax.TextRange{}, false
	}
	return s.tokens[len(s.tokens)-1].Range, true
}

func (s *Source) eatTrivia() {
	for s.cursor < len(s.tokens) && s.tokens[s.cursor].Kind.IsTrivia() {
		s.cursor++
	}
}
