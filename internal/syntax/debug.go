package syntax

import (
	"strconv"
	"strings"
)

// Debug renders the subtree one element per line, indented by two spaces per level:
//
//	Root@0..3
//	  Literal@0..3
//	    Number@0..3 "123"
//
// The result has no trailing newline.
func (n *Node) Debug() string {
	var sb strings.Builder
	writeDebug(&sb, n, 0)
	return strings.TrimSuffix(sb.String(), "\n")
}

func writeDebug(sb *strings.Builder, n *Node, depth int) {
	writeIndent(sb, depth)
	sb.WriteString(n.Kind().String())
	sb.WriteByte('@')
	sb.WriteString(n.TextRange().String())
	sb.WriteByte('\n')
	for _, el := range n.ChildrenWithTokens() {
		switch e := el.(type) {
		case *Node:
			writeDebug(sb, e, depth+1)
		case *Token:
			writeIndent(sb, depth+1)
			sb.WriteString(e.String())
			sb.WriteByte('\n')
		}
	}
}

func writeIndent(sb *strings.Builder, depth int) {
	for range depth {
		sb.WriteString("  ")
	}
}

// String renders a leaf as `Kind@start..end "text"`.
func (t *Token) String() string {
	return t.Kind().String() + "@" + t.TextRange().String() + " " + strconv.Quote(t.Text())
}

// String renders the node header as `Kind@start..end`.
func (n *Node) String() string {
	return n.Kind().String() + "@" + n.TextRange().String()
}
