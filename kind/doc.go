// Package kind defines the numeric tags shared by token patterns, tokens,
// syntax tree nodes, and visitor handlers.
//
// A [Kind] is a plain uint32. Grammars usually name their kinds with a
// [Table], which numbers an ordered list of names densely from zero:
//
//	kinds := kind.NewTable("Whitespace", "Let", "Ident", "Equal", "Number")
//	let, _ := kinds.Kind("Let") // 1
//	kinds.Format(let)           // "Let(1)"
//
// A [Set] is the ordered list of kinds accepted at some position of a
// grammar, as passed to the parser's Require and Is primitives.
package kind
