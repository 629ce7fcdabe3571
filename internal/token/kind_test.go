package token_test

import (
	"testing"

	"felix/internal/source"
	"felix/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsTrivia(t *testing.T) {
	for _, k := range token.Kinds() {
		want := k == token.Whitespace || k == token.Comment
		if got := tok(k).IsTrivia(); got != want {
			t.Fatalf("%v: IsTrivia = %v, want %v", k, got, want)
		}
	}
}

func TestIsPunctOrOp(t *testing.T) {
	ops := []token.Kind{
		token.Plus, token.Minus, token.Star, token.Slash, token.Assign,
		token.LBrace, token.RBrace, token.LParen, token.RParen,
	}
	for _, k := range ops {
		if !tok(k).IsPunctOrOp() {
			t.Fatalf("%v should be punct/op", k)
		}
		if s, ok := k.Spelling(); !ok || len(s) != 1 {
			t.Fatalf("%v: spelling %q, %v", k, s, ok)
		}
	}
	non := []token.Kind{token.Ident, token.KwLet, token.Number, token.Whitespace}
	for _, k := range non {
		if tok(k).IsPunctOrOp() {
			t.Fatalf("%v must NOT be punct/op", k)
		}
	}
}

func TestKeywords(t *testing.T) {
	for text, want := range map[string]token.Kind{"fn": token.KwFn, "let": token.KwLet} {
		k, ok := token.LookupKeyword(text)
		if !ok || k != want {
			t.Fatalf("LookupKeyword(%q) = %v,%v", text, k, ok)
		}
		if s, _ := k.Spelling(); s != text {
			t.Fatalf("%v spelling = %q", k, s)
		}
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	for _, text := range []string{"Let", "letter", "x", ""} {
		if _, ok := token.LookupKeyword(text); ok {
			t.Fatalf("%q must not be a keyword", text)
		}
	}
}

func TestKindString(t *testing.T) {
	if token.RParen.String() != "RParen" || token.Invalid.String() != "Invalid" {
		t.Fatalf("unexpected names %q %q", token.RParen, token.Invalid)
	}
	if got := token.Kind(200).String(); got != "Kind(200)" {
		t.Fatalf("out of range: %q", got)
	}
	if _, ok := token.Ident.Spelling(); ok {
		t.Fatal("Ident has no fixed spelling")
	}
}
