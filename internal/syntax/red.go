package syntax

import (
	"iter"
)

// Element is either a *Node or a *Token.
type Element interface {
	Kind() Kind
	TextRange() TextRange
	Parent() *Node
	isElement()
}

// Node is a positioned view of a GreenNode.
type Node struct {
	green  *GreenNode
	parent *Node
	index  int // позиция среди детей родителя
	offset uint32
}

// Token is a positioned view of a GreenToken.
type Token struct {
	green  *GreenToken
	parent *Node
	index  int
	offset uint32
}

// NewRoot wraps a green root into a red node at offset 0.
func NewRoot(green *GreenNode) *Node {
	return &Node{green: green}
}

func (*Node) isElement() {}
func (*Token) isElement() {}

func (n *Node) Kind() Kind { return n.green.kind }
func (n *Node) Green() *GreenNode { return n.green }
func (n *Node) Parent() *Node { return n.parent }
func (n *Node) Text() string { return n.green.Text() }
func (n *Node) TextRange() TextRange {
	return TextRange{Start: n.offset, End: n.offset + n.green.width}
}

// ChildrenWithTokens returns all direct children, nodes and tokens, in source order.
func (n *Node) ChildrenWithTokens() []Element {
	out := make([]Element, 0, len(n.green.children))
	off := n.offset
	for i, c := range n.green.children {
		switch g := c.(type) {
		case *GreenNode:
			out = append(out, &Node{green: g, parent: n, index: i, offset: off})
		case *GreenToken:
			out = append(out, &Token{green: g, parent: n, index: i, offset: off})
		}
		off += c.Width()
	}
	return out
}

// Children returns the direct child nodes, skipping tokens.
func (n *Node) Children() []*Node {
	var out []*Node
	for _, el := range n.ChildrenWithTokens() {
		if child, ok := el.(*Node); ok {
			out = append(out, child)
		}
	}
	return out
}

// FirstToken returns the first direct child token of the given kind, or nil.
func (n *Node) FirstToken(kind Kind) *Token {
	for _, el := range n.ChildrenWithTokens() {
		if tok, ok := el.(*Token); ok && tok.Kind() == kind {
			return tok
		}
	}
	return nil
}

// FirstChild returns the first direct child node accepted by pred, or nil.
func (n *Node) FirstChild(pred func(*Node) bool) *Node {
	for _, child := range n.Children() {
		if pred(child) {
			return child
		}
	}
	return nil
}

// Descendants yields n and every node below it in preorder.
func (n *Node) Descendants() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walkNodes(yield)
	}
}

func (n *Node) walkNodes(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, child := range n.Children() {
		if !child.walkNodes(yield) {
			return false
		}
	}
	return true
}

// Tokens yields every leaf below n in source order, trivia included.
func (n *Node) Tokens() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		n.walkTokens(yield)
	}
}

func (n *Node) walkTokens(yield func(*Token) bool) bool {
	for _, el := range n.ChildrenWithTokens() {
		switch e := el.(type) {
		case *Token:
			if !yield(e) {
				return false
			}
		case *Node:
			if !e.walkTokens(yield) {
				return false
			}
		}
	}
	return true
}

func (t *Token) Kind() Kind { return t.green.kind }
func (t *Token) Green() *GreenToken { return t.green }
func (t *Token) Parent() *Node { return t.parent }
func (t *Token) Text() string { return t.green.text }
func (t *Token) TextRange() TextRange {
	return TextRange{Start: t.offset, End: t.offset + t.green.Width()}
}

// NextSibling returns the element following t under the same parent, or nil.
func (t *Token) NextSibling() Element {
	if t.parent == nil {
		return nil
	}
	siblings := t.parent.ChildrenWithTokens()
	if t.index+1 < len(siblings) {
		return siblings[t.index+1]
	}
	return nil
}
