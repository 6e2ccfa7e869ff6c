// Package token defines token patterns, which classify prefixes of input
// text, and the token data a lexer produces from them.
//
// # Patterns
//
// A [Pattern] pairs a label and a numeric kind with one of four matchers:
//
//   - [Literal]: the input must start with the literal text
//   - [Range]: one or more leading runes within an inclusive range
//   - [Regex]: a text regular expression
//   - [Bytes]: a byte-oriented regular expression
//
// Matching is anchored. A pattern matches only when its match begins at
// offset zero of the remaining input; a match found later in the input is
// rejected. A zero-length match is never a match.
//
// # Tokens
//
// [Data] records what a pattern matched: kind, label, literal text, the
// line and column where it was produced, and its byte span in the input.
// Data values are immutable and cheap to copy.
package token
