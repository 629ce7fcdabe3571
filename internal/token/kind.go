package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid marks a run of input that matched no lexer rule.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Whitespace is a run of spaces, tabs and line breaks.
	Whitespace
	// Comment is a '#' comment up to the end of the line.
	Comment

	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwLet represents the 'let' keyword.
	KwLet // let

	// Ident represents an identifier token.
	Ident
	// Number represents a decimal integer literal.
	Number

	Plus   // +
	Minus  // -
	Star   // *
	Slash  // /
	Assign // =
	LBrace // {
	RBrace // }
	LParen // (
	RParen // )

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Whitespace: "Whitespace",
	Comment:    "Comment",
	KwFn:       "KwFn",
	KwLet:      "KwLet",
	Ident:      "Ident",
	Number:     "Number",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	Slash:      "Slash",
	Assign:     "Assign",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	LParen:     "LParen",
	RParen:     "RParen",
}

// fixed spellings of keywords and punctuation; empty for variable-text kinds
var kindSpellings = [kindCount]string{
	KwFn:   "fn",
	KwLet:  "let",
	Plus:   "+",
	Minus:  "-",
	Star:   "*",
	Slash:  "/",
	Assign: "=",
	LBrace: "{",
	RBrace: "}",
	LParen: "(",
	RParen: ")",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Spelling returns the fixed source text of keyword and punctuation kinds.
func (k Kind) Spelling() (string, bool) {
	if k >= kindCount {
		return "", false
	}
	s := kindSpellings[k]
	return s, s != ""
}

// Kinds returns every lexical kind that the lexer can produce, in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Invalid; k < kindCount; k++ {
		if k == EOF {
			continue
		}
		out = append(out, k)
	}
	return out
}
