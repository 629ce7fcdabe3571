package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"felix/internal/lexer"
	"felix/internal/parser"
	"felix/internal/source"
)

func TestFormatTreeDebug(t *testing.T) {
	res := parser.Parse("1+")
	var buf bytes.Buffer
	if err := FormatTree(&buf, "x.fx", res, TreeFormatDebug); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), res.DebugTree()+"\n"; got != want {
		t.Fatalf("want:\n%s\n\ngot:\n%s", want, got)
	}
}

func TestFormatTreeErrorsOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTree(&buf, "x.fx", parser.Parse("(foo"), TreeFormatErrors); err != nil {
		t.Fatal(err)
	}
	want := "x.fx: error at 1..4: expected '+', '-', '*', '/' or ')'\n"
	if buf.String() != want {
		t.Fatalf("want %q, got %q", want, buf.String())
	}
}

func TestFormatTreeAST(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTree(&buf, "x.fx", parser.Parse("let x = 1 + 2 * 3"), TreeFormatAST); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "(let x (+ 1 (* 2 3)))\n" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatTreeJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTree(&buf, "x.fx", parser.Parse("-a )"), TreeFormatJSON); err != nil {
		t.Fatal(err)
	}
	var out TreeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Path != "x.fx" || out.Root.Kind != "Root" || out.Root.End != 4 {
		t.Fatalf("root = %+v", out.Root)
	}
	prefix := out.Root.Children[0]
	if prefix.Kind != "PrefixExpr" || prefix.Children[0].Text == nil || *prefix.Children[0].Text != "-" {
		t.Fatalf("prefix = %+v", prefix)
	}
	if len(out.Errors) != 1 {
		t.Fatalf("errors = %+v", out.Errors)
	}
	e := out.Errors[0]
	if e.Found != "RParen" || e.Start != 3 || e.End != 4 {
		t.Fatalf("error = %+v", e)
	}
	if strings.Join(e.Expected, ",") != "Plus,Minus,Star,Slash,LetKw,Number,Ident,LParen" {
		t.Fatalf("expected = %v", e.Expected)
	}
}

func TestParseTreeFormat(t *testing.T) {
	for in, want := range map[string]TreeFormat{"": TreeFormatDebug, "tree": TreeFormatDebug, "json": TreeFormatJSON, "errors": TreeFormatErrors, "ast": TreeFormatAST} {
		got, err := ParseTreeFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseTreeFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseTreeFormat("yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.fx", []byte("let a\n")))
	tokens := lexer.Tokenize(file, lexer.Options{})

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 token lines, got:\n%s", buf.String())
	}
	if !strings.HasPrefix(lines[0], "  1: KwLet") || !strings.Contains(lines[0], `"let" at 1:1-1:4`) {
		t.Errorf("line 1 = %q", lines[0])
	}
	if !strings.HasSuffix(lines[3], "(trivia)") {
		t.Errorf("trailing newline must be trivia: %q", lines[3])
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 4 || out[2].Kind != "Ident" || out[2].Text != "a" || out[2].Span.Start != 4 {
		t.Fatalf("tokens = %+v", out)
	}
}
