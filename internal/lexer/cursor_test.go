package lexer

import (
	"testing"

	"felix/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.fx", []byte(content))
	return fs.Get(id)
}

func TestCursorAdvanceAndSpan(t *testing.T) {
	c := NewCursor(createFile("let x"))
	m := c.Mark()
	c.Advance(3)
	if sp := c.SpanFrom(m); sp.Start != 0 || sp.End != 3 {
		t.Fatalf("span = %s", sp.Range())
	}
	if string(c.Rest()) != " x" {
		t.Fatalf("rest = %q", c.Rest())
	}
	c.Advance(100)
	if !c.EOF() || c.Off != 5 || c.Rest() != nil {
		t.Fatalf("expected clamp at EOF, off=%d", c.Off)
	}
}

func TestCursorEmptyFile(t *testing.T) {
	c := NewCursor(createFile(""))
	if !c.EOF() {
		t.Fatal("empty file must start at EOF")
	}
}

func TestLongestMatchTieGoesToEarlierRule(t *testing.T) {
	tests := []struct {
		src  string
		n    int
		kind string
	}{
		{"let", 3, "KwLet"},
		{"lets", 4, "Ident"},
		{"fn(", 2, "KwFn"},
		{"42x", 2, "Number"},
		{"# c\nx", 3, "Comment"},
		{"?", 0, "Invalid"},
	}
	for _, tt := range tests {
		k, n := longestMatch([]byte(tt.src))
		if n != tt.n || k.String() != tt.kind {
			t.Errorf("%q: got %v/%d, want %s/%d", tt.src, k, n, tt.kind, tt.n)
		}
	}
}
