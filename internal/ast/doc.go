// Package ast provides typed, read-only views over the lossless syntax tree.
//
// A view is a thin wrapper around a *syntax.Node of the matching kind; it does
// not copy anything and never fails on malformed input: accessors report
// missing parts with a false flag instead. Evaluation is left to callers.
package ast
