// Package filter selects tokens with boolean expressions.
//
// Expressions are written in the expr language
// (https://expr-lang.org) and evaluated against each token:
//
//	kind == 2 && len(text) > 1
//	label in ["ident", "number"] || line > 10
//	text matches "^[A-Z]"
//
// The variables available are kind, text, label, line, column, start, and
// end. When a [kind.Table] is supplied to [Compile], its names may be used as
// bare identifiers standing for their kinds (kind == Ident), and the map
// kinds holds the same mapping (kinds["Ident"]).
package filter
