package parser_test

import (
	"strings"
	"testing"

	"felix/internal/parser"
	"felix/internal/testkit"
)

func check(t *testing.T, input, want string) {
	t.Helper()
	res := parser.Parse(input)
	if got := res.DebugTree(); got != strings.TrimSpace(want) {
		t.Fatalf("input %q\nwant:\n%s\n\ngot:\n%s", input, strings.TrimSpace(want), got)
	}
	if err := testkit.CheckTreeInvariants(res.Syntax(), input); err != nil {
		t.Fatalf("input %q: %v", input, err)
	}
}

func TestParseNothing(t *testing.T) {
	check(t, "", `Root@0..0`)
}

func TestParseWhitespace(t *testing.T) {
	check(t, "   ", `
Root@0..3
  Whitespace@0..3 "   "`)
}

func TestParseComment(t *testing.T) {
	check(t, "# hello!", `
Root@0..8
  Comment@0..8 "# hello!"`)
}

func TestParseNumber(t *testing.T) {
	check(t, "123", `
Root@0..3
  Literal@0..3
    Number@0..3 "123"`)
}

func TestParseVariableRef(t *testing.T) {
	check(t, "counter", `
Root@0..7
  VariableRef@0..7
    Ident@0..7 "counter"`)
}

func TestParseSimpleInfix(t *testing.T) {
	check(t, "1+2", `
Root@0..3
  InfixExpr@0..3
    Literal@0..1
      Number@0..1 "1"
    Plus@1..2 "+"
    Literal@2..3
      Number@2..3 "2"`)
}

func TestParseLeftAssociative(t *testing.T) {
	check(t, "1+2+3+4", `
Root@0..7
  InfixExpr@0..7
    InfixExpr@0..5
      InfixExpr@0..3
        Literal@0..1
          Number@0..1 "1"
        Plus@1..2 "+"
        Literal@2..3
          Number@2..3 "2"
      Plus@3..4 "+"
      Literal@4..5
        Number@4..5 "3"
    Plus@5..6 "+"
    Literal@6..7
      Number@6..7 "4"`)
}

func TestParseMixedPrecedence(t *testing.T) {
	check(t, "1+2*3-4", `
Root@0..7
  InfixExpr@0..7
    InfixExpr@0..5
      Literal@0..1
        Number@0..1 "1"
      Plus@1..2 "+"
      InfixExpr@2..5
        Literal@2..3
          Number@2..3 "2"
        Star@3..4 "*"
        Literal@4..5
          Number@4..5 "3"
    Minus@5..6 "-"
    Literal@6..7
      Number@6..7 "4"`)
}

func TestParseNegationBindsTighterThanInfix(t *testing.T) {
	check(t, "-20+20", `
Root@0..6
  InfixExpr@0..6
    PrefixExpr@0..3
      Minus@0..1 "-"
      Literal@1..3
        Number@1..3 "20"
    Plus@3..4 "+"
    Literal@4..6
      Number@4..6 "20"`)
}

func TestParseDoubleNegation(t *testing.T) {
	check(t, "--10", `
Root@0..4
  PrefixExpr@0..4
    Minus@0..1 "-"
    PrefixExpr@1..4
      Minus@1..2 "-"
      Literal@2..4
        Number@2..4 "10"`)
}

func TestParseParenthesesOverridePrecedence(t *testing.T) {
	check(t, "5*(2+1)", `
Root@0..7
  InfixExpr@0..7
    Literal@0..1
      Number@0..1 "5"
    Star@1..2 "*"
    ParenExpr@2..7
      LParen@2..3 "("
      InfixExpr@3..6
        Literal@3..4
          Number@3..4 "2"
        Plus@4..5 "+"
        Literal@5..6
          Number@5..6 "1"
      RParen@6..7 ")"`)
}

func TestParseTriviaStaysInPlace(t *testing.T) {
	check(t, "1 + 2", `
Root@0..5
  InfixExpr@0..5
    Literal@0..2
      Number@0..1 "1"
      Whitespace@1..2 " "
    Plus@2..3 "+"
    Whitespace@3..4 " "
    Literal@4..5
      Number@4..5 "2"`)
}

func TestParseLeadingAndTrailingTrivia(t *testing.T) {
	check(t, "  9876", `
Root@0..6
  Whitespace@0..2 "  "
  Literal@2..6
    Number@2..6 "9876"`)
	check(t, "999   ", `
Root@0..6
  Literal@0..6
    Number@0..3 "999"
    Whitespace@3..6 "   "`)
	check(t, "1\n# comment", `
Root@0..11
  Literal@0..11
    Number@0..1 "1"
    Whitespace@1..2 "\n"
    Comment@2..11 "# comment"`)
}

func TestParseVariableDef(t *testing.T) {
	check(t, "let foo = bar", `
Root@0..13
  VariableDef@0..13
    LetKw@0..3 "let"
    Whitespace@3..4 " "
    Ident@4..7 "foo"
    Whitespace@7..8 " "
    Equals@8..9 "="
    Whitespace@9..10 " "
    VariableRef@10..13
      Ident@10..13 "bar"`)
}

func TestParseMultipleStatements(t *testing.T) {
	check(t, "let a = 1\na", `
Root@0..11
  VariableDef@0..10
    LetKw@0..3 "let"
    Whitespace@3..4 " "
    Ident@4..5 "a"
    Whitespace@5..6 " "
    Equals@6..7 "="
    Whitespace@7..8 " "
    Literal@8..10
      Number@8..9 "1"
      Whitespace@9..10 "\n"
  VariableRef@10..11
    Ident@10..11 "a"`)
}

func TestParseDanglingOperator(t *testing.T) {
	check(t, "1+", `
Root@0..2
  InfixExpr@0..2
    Literal@0..1
      Number@0..1 "1"
    Plus@1..2 "+"
error at 1..2: expected number, identifier, '-' or '('`)
}

func TestParseUnclosedParentheses(t *testing.T) {
	check(t, "(foo", `
Root@0..4
  ParenExpr@0..4
    LParen@0..1 "("
    VariableRef@1..4
      Ident@1..4 "foo"
error at 1..4: expected '+', '-', '*', '/' or ')'`)
}

func TestParseRecoversAfterBadToken(t *testing.T) {
	check(t, "1+)2", `
Root@0..4
  InfixExpr@0..3
    Literal@0..1
      Number@0..1 "1"
    Plus@1..2 "+"
    Error@2..3
      RParen@2..3 ")"
  Literal@3..4
    Number@3..4 "2"
error at 2..3: expected number, identifier, '-' or '(', but found ')'`)
}

func TestParseDoesNotConsumeLetWhenRecovering(t *testing.T) {
	check(t, "let a =\nlet b = a", `
Root@0..17
  VariableDef@0..8
    LetKw@0..3 "let"
    Whitespace@3..4 " "
    Ident@4..5 "a"
    Whitespace@5..6 " "
    Equals@6..7 "="
    Whitespace@7..8 "\n"
  VariableDef@8..17
    LetKw@8..11 "let"
    Whitespace@11..12 " "
    Ident@12..13 "b"
    Whitespace@13..14 " "
    Equals@14..15 "="
    Whitespace@15..16 " "
    VariableRef@16..17
      Ident@16..17 "a"
error at 8..11: expected number, identifier, '-' or '(', but found 'let'`)
}

func TestParseVariableDefWithMissingParts(t *testing.T) {
	check(t, "let = 10", `
Root@0..8
  VariableDef@0..8
    LetKw@0..3 "let"
    Whitespace@3..4 " "
    Error@4..6
      Equals@4..5 "="
      Whitespace@5..6 " "
    Error@6..8
      Number@6..8 "10"
error at 4..5: expected identifier, but found '='
error at 6..8: expected '=', but found number
error at 6..8: expected number, identifier, '-' or '('`)
}

func TestParseUnrecognizedInput(t *testing.T) {
	check(t, "1 @ 2", `
Root@0..5
  Literal@0..2
    Number@0..1 "1"
    Whitespace@1..2 " "
  Error@2..4
    Error@2..3 "@"
    Whitespace@3..4 " "
  Literal@4..5
    Number@4..5 "2"
error at 2..3: expected '+', '-', '*', '/', 'let', number, identifier or '(', but found an unrecognized token`)
}

func TestParseIsDeterministic(t *testing.T) {
	inputs := []string{"1+2*3", "let x = (1", ")))", "-(-a)/b # c"}
	for _, in := range inputs {
		a, b := parser.Parse(in), parser.Parse(in)
		if a.DebugTree() != b.DebugTree() {
			t.Fatalf("%q: parses differ", in)
		}
	}
}

func TestParseAlwaysRoundTrips(t *testing.T) {
	inputs := []string{
		"",
		"let",
		"let let let",
		"((((",
		"))))",
		"1 + + 2",
		"fn { } = =",
		"let x = 1 * (2 - -y) / z # trailing",
		"\t\r\n-",
		"§ ∑ let a = 1",
		"a b c 1 2 3",
	}
	for _, in := range inputs {
		res := parser.Parse(in)
		if err := testkit.CheckTreeInvariants(res.Syntax(), in); err != nil {
			t.Fatalf("%q: %v\n%s", in, err, res.DebugTree())
		}
	}
}

func TestMalformedInputReportsErrors(t *testing.T) {
	for _, in := range []string{"1+", "(", "let", "let x", "*", "fn"} {
		res := parser.Parse(in)
		if len(res.Errors()) == 0 {
			t.Fatalf("%q: expected errors\n%s", in, res.DebugTree())
		}
	}
}
