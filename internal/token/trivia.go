package token

// IsTrivia reports whether tokens of this kind are skipped by the grammar
// but kept in the tree.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment
}
