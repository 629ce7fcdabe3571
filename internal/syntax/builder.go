package syntax

import "fmt"

// NodeCache interns green tokens by (kind, text) and small green nodes by
// (kind, children). Trees built through one cache share equal subtrees.
// A NodeCache is not safe for concurrent use.
type NodeCache struct {
	tokens map[tokenKey]*GreenToken
	nodes  map[nodeKey]*GreenNode
}

type tokenKey struct {
	kind Kind
	text string
}

// children сравниваются по указателям: они уже интернированы
type nodeKey struct {
	kind       Kind
	n          int
	c0, c1, c2 GreenElement
}

const maxCachedChildren = 3

func NewNodeCache() *NodeCache {
	return &NodeCache{
		tokens: make(map[tokenKey]*GreenToken),
		nodes:  make(map[nodeKey]*GreenNode),
	}
}

func (c *NodeCache) token(kind Kind, text string) *GreenToken {
	key := tokenKey{kind: kind, text: text}
	if t, ok := c.tokens[key]; ok {
		return t
	}
	t := NewGreenToken(kind, text)
	c.tokens[key] = t
	return t
}

func (c *NodeCache) node(kind Kind, children []GreenElement) *GreenNode {
	if len(children) > maxCachedChildren {
		return NewGreenNode(kind, children)
	}
	key := nodeKey{kind: kind, n: len(children)}
	switch len(children) {
	case 3:
		key.c2 = children[2]
		fallthrough
	case 2:
		key.c1 = children[1]
		fallthrough
	case 1:
		key.c0 = children[0]
	}
	if n, ok := c.nodes[key]; ok {
		return n
	}
	n := NewGreenNode(kind, children)
	c.nodes[key] = n
	return n
}

// Len returns the number of interned tokens and nodes.
func (c *NodeCache) Len() (tokens, nodes int) {
	return len(c.tokens), len(c.nodes)
}

// Builder assembles a green tree from a well-nested sequence of
// StartNode/Token/FinishNode calls.
type Builder struct {
	cache    *NodeCache
	parents  []parentFrame
	children []GreenElement
}

type parentFrame struct {
	kind  Kind
	first int // индекс первого ребёнка в children
}

// NewBuilder returns a builder; a nil cache means a private one.
func NewBuilder(cache *NodeCache) *Builder {
	if cache == nil {
		cache = NewNodeCache()
	}
	return &Builder{cache: cache}
}

// StartNode opens a node; it becomes the parent of everything added until the matching FinishNode.
func (b *Builder) StartNode(kind Kind) {
	if !kind.IsNode() {
		panic(fmt.Sprintf("syntax: StartNode with token kind %v", kind))
	}
	b.parents = append(b.parents, parentFrame{kind: kind, first: len(b.children)})
}

// Token appends a leaf to the innermost open node.
func (b *Builder) Token(kind Kind, text string) {
	if len(b.parents) == 0 {
		panic(fmt.Sprintf("syntax: token %v outside of any node", kind))
	}
	b.children = append(b.children, b.cache.token(kind, text))
}

// FinishNode closes the innermost open node.
func (b *Builder) FinishNode() {
	if len(b.parents) == 0 {
		panic("syntax: FinishNode without open node")
	}
	top := b.parents[len(b.parents)-1]
	b.parents = b.parents[:len(b.parents)-1]

	kids := make([]GreenElement, len(b.children)-top.first)
	copy(kids, b.children[top.first:])
	b.children = b.children[:top.first]
	b.children = append(b.children, b.cache.node(top.kind, kids))
}

// Depth returns the number of currently open nodes.
func (b *Builder) Depth() int { return len(b.parents) }

// Finish returns the single completed root. It panics if nodes are still open
// or if the sequence did not produce exactly one root.
func (b *Builder) Finish() *GreenNode {
	if len(b.parents) != 0 {
		panic(fmt.Sprintf("syntax: Finish with %d unclosed node(s)", len(b.parents)))
	}
	if len(b.children) != 1 {
		panic(fmt.Sprintf("syntax: Finish expected one root, have %d", len(b.children)))
	}
	root, ok := b.children[0].(*GreenNode)
	if !ok {
		panic("syntax: root is a token")
	}
	b.children = b.children[:0]
	return root
}
