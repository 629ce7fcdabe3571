// Package token defines lexical token kinds for the felix front-end.
// Invariants:
//   - Token.Text is exactly the source text under Token.Span.
//   - Token.Span matches Text exactly (Start..End).
//   - Trivia (whitespace, comments) are ordinary tokens in the stream;
//     Kind.IsTrivia tells them apart. Nothing is dropped by the lexer.
//   - Input matching no rule is surfaced as an Invalid token.
package token
