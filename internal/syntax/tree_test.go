package syntax_test

import (
	"errors"
	"strings"
	"testing"

	"felix/internal/syntax"

	"github.com/vmihailenco/msgpack/v5"
)

// buildSample строит дерево для "1 + -x" вручную
func buildSample(cache *syntax.NodeCache) *syntax.GreenNode {
	b := syntax.NewBuilder(cache)
	b.StartNode(syntax.Root)
	b.StartNode(syntax.InfixExpr)
	b.StartNode(syntax.Literal)
	b.Token(syntax.Number, "1")
	b.Token(syntax.Whitespace, " ")
	b.FinishNode()
	b.Token(syntax.Plus, "+")
	b.Token(syntax.Whitespace, " ")
	b.StartNode(syntax.PrefixExpr)
	b.Token(syntax.Minus, "-")
	b.StartNode(syntax.VariableRef)
	b.Token(syntax.Ident, "x")
	b.FinishNode()
	b.FinishNode()
	b.FinishNode()
	b.FinishNode()
	return b.Finish()
}

const sampleDebug = `Root@0..6
  InfixExpr@0..6
    Literal@0..2
      Number@0..1 "1"
      Whitespace@1..2 " "
    Plus@2..3 "+"
    Whitespace@3..4 " "
    PrefixExpr@4..6
      Minus@4..5 "-"
      VariableRef@5..6
        Ident@5..6 "x"`

func TestDebugRendering(t *testing.T) {
	root := syntax.NewRoot(buildSample(nil))
	if got := root.Debug(); got != sampleDebug {
		t.Fatalf("want:\n%s\n\ngot:\n%s", sampleDebug, got)
	}
	if root.Text() != "1 + -x" {
		t.Fatalf("text = %q", root.Text())
	}
}

func TestRedNavigation(t *testing.T) {
	root := syntax.NewRoot(buildSample(nil))
	infix := root.Children()[0]
	if infix.Kind() != syntax.InfixExpr || infix.Parent() != root {
		t.Fatalf("unexpected first child %v", infix)
	}
	plus := infix.FirstToken(syntax.Plus)
	if plus == nil || plus.TextRange() != (syntax.TextRange{Start: 2, End: 3}) {
		t.Fatalf("plus = %v", plus)
	}
	if ws, ok := plus.NextSibling().(*syntax.Token); !ok || ws.Kind() != syntax.Whitespace {
		t.Fatalf("next sibling of '+' = %v", plus.NextSibling())
	}
	prefix := infix.FirstChild(func(n *syntax.Node) bool { return n.Kind() == syntax.PrefixExpr })
	if prefix == nil || prefix.Text() != "-x" {
		t.Fatal("prefix expression not found")
	}

	var kinds []string
	for n := range root.Descendants() {
		kinds = append(kinds, n.Kind().String())
	}
	if got := strings.Join(kinds, ","); got != "Root,InfixExpr,Literal,PrefixExpr,VariableRef" {
		t.Fatalf("descendants = %s", got)
	}

	var sb strings.Builder
	for tok := range root.Tokens() {
		sb.WriteString(tok.Text())
	}
	if sb.String() != "1 + -x" {
		t.Fatalf("tokens concatenate to %q", sb.String())
	}
}

func TestNodeCacheSharesEqualSubtrees(t *testing.T) {
	cache := syntax.NewNodeCache()
	a := buildSample(cache)
	b := buildSample(cache)
	litA := a.Children()[0].(*syntax.GreenNode).Children()[0]
	litB := b.Children()[0].(*syntax.GreenNode).Children()[0]
	if litA != litB {
		t.Fatal("identical small subtrees built through one cache must be shared")
	}
	// InfixExpr has four children and is never interned
	if a == b {
		t.Fatal("wide nodes must not be shared")
	}
	toks, nodes := cache.Len()
	if toks != 5 || nodes == 0 {
		t.Fatalf("cache sizes tokens=%d nodes=%d", toks, nodes)
	}
}

func TestBuilderPanicsOnUnbalanced(t *testing.T) {
	mustPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("%s: expected panic", name)
			}
		}()
		f()
	}
	mustPanic("unclosed", func() {
		b := syntax.NewBuilder(nil)
		b.StartNode(syntax.Root)
		b.Finish()
	})
	mustPanic("extra finish", func() {
		syntax.NewBuilder(nil).FinishNode()
	})
	mustPanic("token outside node", func() {
		syntax.NewBuilder(nil).Token(syntax.Number, "1")
	})
	mustPanic("token kind as node", func() {
		syntax.NewBuilder(nil).StartNode(syntax.Plus)
	})
}

func TestEmptyRoot(t *testing.T) {
	b := syntax.NewBuilder(nil)
	b.StartNode(syntax.Root)
	b.FinishNode()
	root := syntax.NewRoot(b.Finish())
	if root.Debug() != "Root@0..0" || len(root.ChildrenWithTokens()) != 0 {
		t.Fatalf("unexpected empty root %q", root.Debug())
	}
}

func TestCodecRoundTrip(t *testing.T) {
	green := buildSample(nil)
	data, err := syntax.EncodeGreen(green)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := syntax.DecodeGreen(data, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := syntax.NewRoot(back).Debug(); got != sampleDebug {
		t.Fatalf("round trip changed tree:\n%s", got)
	}
}

func TestCodecRejectsGarbage(t *testing.T) {
	if _, err := syntax.DecodeGreen([]byte{0xc1}, nil); err == nil {
		t.Fatal("expected error for invalid msgpack")
	}
	data, err := syntax.EncodeGreen(buildSample(nil))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// отрезаем хвост: записей меньше, чем обещает arity
	if _, err := syntax.DecodeGreen(data[:len(data)-4], nil); err == nil {
		t.Fatal("expected error for truncated input")
	}
}

func TestCodecSchemaMismatch(t *testing.T) {
	data, err := msgpack.Marshal(map[string]any{"v": 2, "r": []any{}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := syntax.DecodeGreen(data, nil); !errors.Is(err, syntax.ErrBadGreenEncoding) {
		t.Fatalf("expected ErrBadGreenEncoding, got %v", err)
	}
}
