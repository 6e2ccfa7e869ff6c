package filter

import (
	"github.com/expr-lang/expr/ast"
)

// reserved holds the variable names of [Env]; a kind with one of these names
// is only reachable through the kinds map.
var reserved = map[string]bool{
	"kinds": true, "text": true, "label": true, "kind": true,
	"line": true, "column": true, "start": true, "end": true,
}

// kindPatcher replaces bare identifiers naming a kind with the kind's
// integer value.
type kindPatcher struct {
	kinds map[string]int
}

// Visit implements ast.Visitor for kindPatcher.
func (p *kindPatcher) Visit(node *ast.Node) {
	ident, ok := (*node).(*ast.IdentifierNode)
	if !ok || reserved[ident.Value] {
		return
	}

	k, ok := p.kinds[ident.Value]
	if !ok {
		return
	}

	ast.Patch(node, &ast.IntegerNode{Value: k})
}
