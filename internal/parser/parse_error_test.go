package parser

import (
	"testing"

	"felix/internal/diag"
	"felix/internal/syntax"
)

func TestParseErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  ParseError
		want string
	}{
		{
			"one expected did find",
			ParseError{[]syntax.Kind{syntax.Equals}, syntax.Ident, syntax.TextRange{Start: 10, End: 20}},
			"error at 10..20: expected '=', but found identifier",
		},
		{
			"one expected did not find",
			ParseError{[]syntax.Kind{syntax.RParen}, syntax.EOF, syntax.TextRange{Start: 5, End: 6}},
			"error at 5..6: expected ')'",
		},
		{
			"two expected",
			ParseError{[]syntax.Kind{syntax.Plus, syntax.Minus}, syntax.Number, syntax.TextRange{Start: 0, End: 1}},
			"error at 0..1: expected '+' or '-', but found number",
		},
		{
			"multiple expected",
			ParseError{
				[]syntax.Kind{syntax.Number, syntax.Ident, syntax.Minus, syntax.LParen},
				syntax.LetKw,
				syntax.TextRange{Start: 100, End: 105},
			},
			"error at 100..105: expected number, identifier, '-' or '(', but found 'let'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.String(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseErrorDiagnostic(t *testing.T) {
	eof := ParseError{[]syntax.Kind{syntax.RParen}, syntax.EOF, syntax.TextRange{Start: 3, End: 4}}
	d := eof.Diagnostic(7)
	if d.Code != diag.SynUnexpectedEOF || d.Severity != diag.SevError {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if d.Primary.File != 7 || d.Primary.Start != 3 || d.Primary.End != 4 {
		t.Fatalf("span = %v", d.Primary)
	}
	if d.Message != "expected ')', but reached end of input" {
		t.Fatalf("message = %q", d.Message)
	}

	found := ParseError{[]syntax.Kind{syntax.Ident}, syntax.Equals, syntax.TextRange{Start: 4, End: 5}}
	if d := found.Diagnostic(0); d.Code != diag.SynUnexpectedToken || d.Message != "expected identifier, but found '='" {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
}

func TestParseErrorSuggestsFix(t *testing.T) {
	tests := []struct {
		name    string
		err     ParseError
		title   string
		at      uint32
		newText string
	}{
		{
			"close paren at end of input",
			ParseError{[]syntax.Kind{syntax.Plus, syntax.RParen}, syntax.EOF, syntax.TextRange{Start: 1, End: 4}},
			"insert ')'", 4, ")",
		},
		{
			"close paren before token",
			ParseError{[]syntax.Kind{syntax.RParen}, syntax.Number, syntax.TextRange{Start: 3, End: 4}},
			"insert ')'", 3, ")",
		},
		{
			"missing equals",
			ParseError{[]syntax.Kind{syntax.Equals}, syntax.Number, syntax.TextRange{Start: 6, End: 7}},
			"insert '='", 6, "= ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.err.Diagnostic(2)
			if len(d.Fixes) != 1 || len(d.Fixes[0].Edits) != 1 {
				t.Fatalf("fixes = %+v", d.Fixes)
			}
			f := d.Fixes[0]
			e := f.Edits[0]
			if f.Title != tt.title || e.NewText != tt.newText || e.Span.Start != tt.at || e.Span.End != tt.at || e.Span.File != 2 {
				t.Fatalf("fix = %+v", f)
			}
		})
	}

	noFix := []ParseError{
		{[]syntax.Kind{syntax.Equals}, syntax.EOF, syntax.TextRange{Start: 4, End: 5}},
		{[]syntax.Kind{syntax.Number, syntax.Ident}, syntax.Star, syntax.TextRange{Start: 0, End: 1}},
	}
	for _, e := range noFix {
		if d := e.Diagnostic(0); len(d.Fixes) != 0 {
			t.Errorf("%s: unexpected fix %+v", e.String(), d.Fixes)
		}
	}
}

func TestCloseParenFixFollowsPreviousToken(t *testing.T) {
	tests := []struct {
		src string
		at  uint32
	}{
		{"let a = (1 + 2\nlet b 3", 14},
		{"(1 \n", 2},
		{"(1 + (2", 7},
	}
	for _, tt := range tests {
		var edits []diag.FixEdit
		for _, d := range Parse(tt.src).Diagnostics(0) {
			for _, f := range d.Fixes {
				if f.Title == "insert ')'" {
					edits = append(edits, f.Edits...)
				}
			}
		}
		if len(edits) == 0 {
			t.Fatalf("%q: no insert ')' fix", tt.src)
		}
		if e := edits[0]; e.Span.Start != tt.at || e.Span.End != tt.at {
			t.Fatalf("%q: fix at %d..%d, want %d", tt.src, e.Span.Start, e.Span.End, tt.at)
		}
	}
}
