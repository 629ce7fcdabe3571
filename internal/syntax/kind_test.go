package syntax_test

import (
	"testing"

	"felix/internal/syntax"
	"felix/internal/token"
)

func TestEveryTokenKindMapsOnce(t *testing.T) {
	seen := make(map[syntax.Kind]token.Kind)
	for _, tk := range token.Kinds() {
		sk := syntax.FromToken(tk)
		if !sk.IsToken() {
			t.Fatalf("%v maps to non-token kind %v", tk, sk)
		}
		if prev, dup := seen[sk]; dup {
			t.Fatalf("%v and %v both map to %v", prev, tk, sk)
		}
		seen[sk] = tk
		if sk.IsTrivia() != tk.IsTrivia() {
			t.Fatalf("%v: trivia mismatch", tk)
		}
	}
	if syntax.FromToken(token.EOF) != syntax.EOF {
		t.Fatal("token EOF must map to syntax EOF")
	}
}

func TestDescribe(t *testing.T) {
	tests := map[syntax.Kind]string{
		syntax.Ident:  "identifier",
		syntax.Number: "number",
		syntax.LetKw:  "'let'",
		syntax.Equals: "'='",
		syntax.RParen: "')'",
		syntax.Error:  "an unrecognized token",
		syntax.Root:   "Root",
	}
	for k, want := range tests {
		if got := k.Describe(); got != want {
			t.Errorf("%v.Describe() = %q, want %q", k, got, want)
		}
	}
}

func TestKindClasses(t *testing.T) {
	if syntax.ErrorNode.String() != "Error" || !syntax.ErrorNode.IsNode() {
		t.Fatal("ErrorNode renders as Error and is a node")
	}
	if syntax.EOF.IsNode() || syntax.EOF.IsToken() || !syntax.EOF.Valid() {
		t.Fatal("EOF is neither token nor node")
	}
	if syntax.Kind(250).Valid() || syntax.Kind(250).String() != "Kind(250)" {
		t.Fatal("out of range kind")
	}
}
