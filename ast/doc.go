// Package ast provides the generic syntax tree built by parsing units.
//
// A [Node] carries a numeric kind, a debug label, an optional scalar
// [Value], and an ordered list of children. Trees are built bottom-up by
// appending children with [Node.AddChild]; children are never removed or
// reordered. Once a tree is handed to a visitor it is treated as read-only
// and may be shared by any number of readers.
package ast
