package syntax

import (
	"fmt"

	"felix/internal/token"
)

// Kind classifies both tokens and nodes of the syntax tree.
type Kind uint8

const (
	// терминалы, один к одному с token.Kind
	Whitespace Kind = iota
	FnKw
	LetKw
	Ident
	Number
	Plus
	Minus
	Star
	Slash
	Equals
	LBrace
	RBrace
	LParen
	RParen
	Comment
	// Error is a run of input no lexer rule accepted.
	Error

	// нетерминалы
	Root
	InfixExpr
	PrefixExpr
	ParenExpr
	Literal
	VariableRef
	VariableDef
	// ErrorNode wraps tokens skipped by error recovery.
	ErrorNode

	// EOF never appears in a tree; ParseError uses it when nothing was found.
	EOF

	kindCount
)

var kindNames = [kindCount]string{
	Whitespace:  "Whitespace",
	FnKw:        "FnKw",
	LetKw:       "LetKw",
	Ident:       "Ident",
	Number:      "Number",
	Plus:        "Plus",
	Minus:       "Minus",
	Star:        "Star",
	Slash:       "Slash",
	Equals:      "Equals",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	LParen:      "LParen",
	RParen:      "RParen",
	Comment:     "Comment",
	Error:       "Error",
	Root:        "Root",
	InfixExpr:   "InfixExpr",
	PrefixExpr:  "PrefixExpr",
	ParenExpr:   "ParenExpr",
	Literal:     "Literal",
	VariableRef: "VariableRef",
	VariableDef: "VariableDef",
	ErrorNode:   "Error",
	EOF:         "EOF",
}

var kindDescriptions = [kindCount]string{
	Whitespace: "whitespace",
	FnKw:       "'fn'",
	LetKw:      "'let'",
	Ident:      "identifier",
	Number:     "number",
	Plus:       "'+'",
	Minus:      "'-'",
	Star:       "'*'",
	Slash:      "'/'",
	Equals:     "'='",
	LBrace:     "'{'",
	RBrace:     "'}'",
	LParen:     "'('",
	RParen:     "')'",
	Comment:    "comment",
	Error:      "an unrecognized token",
	EOF:        "end of input",
}

// String returns the name used by the debug tree rendering.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Describe returns the human description used in error messages,
// e.g. "identifier" or "'+'". Node kinds fall back to their name.
func (k Kind) Describe() string {
	if k < kindCount && kindDescriptions[k] != "" {
		return kindDescriptions[k]
	}
	return k.String()
}

// IsTrivia reports whether the kind is skipped by the grammar but kept in the tree.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment
}

// IsToken reports whether the kind labels a leaf.
func (k Kind) IsToken() bool {
	return k <= Error
}

// IsNode reports whether the kind labels an inner node.
func (k Kind) IsNode() bool {
	return k >= Root && k <= ErrorNode
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k < kindCount
}

// FromToken maps a lexical kind onto its syntax kind. Every lexical kind has
// exactly one image; token.EOF maps to EOF.
func FromToken(k token.Kind) Kind {
	switch k {
	case token.Whitespace:
		return Whitespace
	case token.KwFn:
		return FnKw
	case token.KwLet:
		return LetKw
	case token.Ident:
		return Ident
	case token.Number:
		return Number
	case token.Plus:
		return Plus
	case token.Minus:
		return Minus
	case token.Star:
		return Star
	case token.Slash:
		return Slash
	case token.Assign:
		return Equals
	case token.LBrace:
		return LBrace
	case token.RBrace:
		return RBrace
	case token.LParen:
		return LParen
	case token.RParen:
		return RParen
	case token.Comment:
		return Comment
	case token.Invalid:
		return Error
	case token.EOF:
		return EOF
	default:
		panic(fmt.Sprintf("syntax: no syntax kind for token kind %v", k))
	}
}
