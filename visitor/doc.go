// Package visitor dispatches syntax tree nodes to handlers keyed by node
// kind.
//
// A [Visitor] holds one [Handler] per kind and a [Scope] shared by every
// handler it invokes. Handlers return a [Result], a small tagged union that
// can be assembled into a tree of compound, tagged, and scalar values. A
// handler may recurse with [Visitor.Visit] or [Visitor.VisitChildren], and
// may mutate the scope between child visits; later children observe the
// mutation.
//
// Visiting a node whose kind has no handler fails with an [*Error]. Every
// kind that can appear in a tree handed to a visitor must be registered.
package visitor
