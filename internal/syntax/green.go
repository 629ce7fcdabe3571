package syntax

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
)

// GreenElement is either a *GreenNode or a *GreenToken.
type GreenElement interface {
	Kind() Kind
	Width() uint32
	writeText(sb *strings.Builder)
}

// GreenToken is an immutable leaf: a kind and its exact source text.
type GreenToken struct {
	kind Kind
	text string
}

// NewGreenToken creates a leaf. Prefer Builder.Token, which interns leaves.
func NewGreenToken(kind Kind, text string) *GreenToken {
	if !kind.IsToken() {
		panic(fmt.Sprintf("syntax: %v is not a token kind", kind))
	}
	if _, err := safecast.Conv[uint32](len(text)); err != nil {
		panic(fmt.Errorf("syntax: token text too long: %w", err))
	}
	return &GreenToken{kind: kind, text: text}
}

func (t *GreenToken) Kind() Kind { return t.kind }
func (t *GreenToken) Text() string { return t.text }
func (t *GreenToken) Width() uint32 { return uint32(len(t.text)) } // #nosec G115 -- checked in NewGreenToken

func (t *GreenToken) writeText(sb *strings.Builder) { sb.WriteString(t.text) }

// GreenNode is an immutable inner node. Its width is the sum of its children.
type GreenNode struct {
	kind     Kind
	width    uint32
	children []GreenElement
}

// NewGreenNode creates an inner node that owns children; the slice must not be modified afterwards.
func NewGreenNode(kind Kind, children []GreenElement) *GreenNode {
	if !kind.IsNode() {
		panic(fmt.Sprintf("syntax: %v is not a node kind", kind))
	}
	var width uint64
	for _, c := range children {
		width += uint64(c.Width())
	}
	w, err := safecast.Conv[uint32](width)
	if err != nil {
		panic(fmt.Errorf("syntax: node %v too wide: %w", kind, err))
	}
	return &GreenNode{kind: kind, width: w, children: children}
}

func (n *GreenNode) Kind() Kind { return n.kind }
func (n *GreenNode) Width() uint32 { return n.width }

// Children returns the node's direct children. The slice must not be modified.
func (n *GreenNode) Children() []GreenElement { return n.children }

// Text reconstructs the source text covered by the node.
func (n *GreenNode) Text() string {
	var sb strings.Builder
	sb.Grow(int(n.width))
	n.writeText(&sb)
	return sb.String()
}

func (n *GreenNode) writeText(sb *strings.Builder) {
	for _, c := range n.children {
		c.writeText(sb)
	}
}
