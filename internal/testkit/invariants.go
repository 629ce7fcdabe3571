package testkit

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"felix/internal/syntax"
	"felix/internal/token"
)

// CheckTreeInvariants runs the structural invariants of a lossless tree:
// 1) the root is a Root node spanning [0, len(text))
// 2) the text of all tokens, concatenated in order, equals text
// 3) every node covers its children, and children are contiguous and ordered
// 4) tokens carry token kinds and nodes carry node kinds; EOF never appears
func CheckTreeInvariants(root *syntax.Node, text string) error {
	if root == nil {
		return fmt.Errorf("nil root")
	}
	if root.Kind() != syntax.Root {
		return fmt.Errorf("root kind is %v", root.Kind())
	}
	lenText, err := safecast.Conv[uint32](len(text))
	if err != nil {
		return fmt.Errorf("len text overflow: %w", err)
	}
	if rng := root.TextRange(); rng.Start != 0 || rng.End != lenText {
		return fmt.Errorf("root range %s, want 0..%d", rng, lenText)
	}

	var sb strings.Builder
	for tok := range root.Tokens() {
		sb.WriteString(tok.Text())
	}
	if sb.String() != text {
		return fmt.Errorf("tokens do not round-trip: %q != %q", sb.String(), text)
	}

	for n := range root.Descendants() {
		if err := checkNode(n); err != nil {
			return err
		}
	}
	return nil
}

func checkNode(n *syntax.Node) error {
	if !n.Kind().IsNode() {
		return fmt.Errorf("node %s has non-node kind", n)
	}
	rng := n.TextRange()
	off := rng.Start
	for _, el := range n.ChildrenWithTokens() {
		crng := el.TextRange()
		if crng.Start != off {
			return fmt.Errorf("child %v of %s starts at %d, want %d", el.Kind(), n, crng.Start, off)
		}
		if !rng.Contains(crng) {
			return fmt.Errorf("child %v %s is outside %s", el.Kind(), crng, n)
		}
		if tok, ok := el.(*syntax.Token); ok {
			if !tok.Kind().IsToken() {
				return fmt.Errorf("token %s has non-token kind", tok)
			}
			if crng.Empty() {
				return fmt.Errorf("empty token %s", tok)
			}
		}
		if el.Parent() != n {
			return fmt.Errorf("child %v of %s has wrong parent", el.Kind(), n)
		}
		off = crng.End
	}
	if off != rng.End {
		return fmt.Errorf("children of %s end at %d", n, off)
	}
	return nil
}

// CheckTokenCoverage verifies that lexer output covers content without gaps or overlaps.
func CheckTokenCoverage(tokens []token.Token, content []byte) error {
	var off uint32
	for i, tok := range tokens {
		if tok.Kind == token.EOF {
			return fmt.Errorf("token %d is EOF", i)
		}
		if tok.Span.Start != off {
			return fmt.Errorf("token %d (%v) starts at %d, want %d", i, tok.Kind, tok.Span.Start, off)
		}
		if tok.Span.Empty() {
			return fmt.Errorf("token %d (%v) is empty", i, tok.Kind)
		}
		if int(tok.Span.End) > len(content) {
			return fmt.Errorf("token %d (%v) ends beyond content", i, tok.Kind)
		}
		if got := string(content[tok.Span.Start:tok.Span.End]); got != tok.Text {
			return fmt.Errorf("token %d text %q does not match source %q", i, tok.Text, got)
		}
		off = tok.Span.End
	}
	if int(off) != len(content) {
		return fmt.Errorf("tokens cover %d of %d bytes", off, len(content))
	}
	return nil
}
