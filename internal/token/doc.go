// Package token defines lexical token kinds of the wright language.
// Invariants:
//   - Token.Fragment is a view into the source (no copies).
//   - Whitespace and comments are real tokens; together with all other
//     tokens they tile the input without gaps.
//   - Primitive type names (u8, i64, bool, char, ...) are keywords, not identifiers.
//   - There is no end-of-file token: running out of tokens is the end.
package token
