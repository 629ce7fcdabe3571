package lexer

import (
	"fmt"
	"iter"

	"felix/internal/diag"
	"felix/internal/source"
	"felix/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий токен, trivia включительно.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	start := lx.cursor.Mark()
	kind, n := longestMatch(lx.cursor.Rest())
	if n == 0 {
		return lx.scanInvalid(start)
	}
	lx.cursor.Advance(n)
	return lx.emit(kind, start)
}

// All yields the remaining tokens up to, but not including, EOF.
// The sequence is single-use: it drains the lexer.
func (lx *Lexer) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok := lx.Next()
			if tok.Kind == token.EOF || !yield(tok) {
				return
			}
		}
	}
}

// Tokenize lexes the whole file. The result covers every byte of the input
// and does not contain the EOF token.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	out := make([]token.Token, 0, len(file.Content)/2+1)
	for tok := range lx.All() {
		out = append(out, tok)
	}
	return out
}

// scanInvalid склеивает подряд идущие нераспознанные руны в один Invalid токен.
func (lx *Lexer) scanInvalid(start Mark) token.Token {
	for !lx.cursor.EOF() {
		rest := lx.cursor.Rest()
		if _, n := longestMatch(rest); n > 0 {
			break
		}
		lx.cursor.Advance(runeLen(rest))
	}
	tok := lx.emit(token.Invalid, start)
	lx.report(diag.LexUnknownChar, tok.Span, fmt.Sprintf("unrecognized input %q", tok.Text))
	return tok
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: k,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
