// Package syntax holds the closed set of syntax kinds and the lossless
// syntax tree.
//
// The tree has two layers. Green nodes (GreenNode, GreenToken) are immutable,
// carry only a kind and a width, and know nothing about their position, so
// equal subtrees can be shared between trees. Red nodes (Node, Token) are
// cheap positioned views created on demand from a green root with NewRoot;
// they add absolute offsets and parent links.
//
// Concatenating the text of every token of a tree in order yields the source
// the tree was built from, trivia included.
package syntax
