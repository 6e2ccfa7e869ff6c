package ast

import (
	"iter"

	"github.com/ardnew/ars/kind"
	"github.com/ardnew/ars/pkg"
)

// Node is a tagged tree node.
type Node struct {
	Kind     kind.Kind `json:"kind"`
	Label    string    `json:"label"`
	Value    Value     `json:"value"`
	Children []*Node   `json:"children,omitempty"`
}

// New returns a childless node.
func New(k kind.Kind, label string, value Value) *Node {
	return &Node{Kind: k, Label: label, Value: value}
}

// AddChild appends children in order and returns n so calls can be chained.
// Nil children are ignored.
func (n *Node) AddChild(children ...*Node) *Node {
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}

	return n
}

// ValueString returns the scalar text of n. It fails with [pkg.ErrValue] when
// n is a structural node whose value is None.
func (n *Node) ValueString() (string, error) {
	text, ok := n.Value.Text()
	if !ok {
		return "", pkg.ErrValue.Wrapf("node %s(%d)", n.Label, n.Kind)
	}

	return text, nil
}

// Child returns the i'th child of n, or nil if there is none.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}

	return n.Children[i]
}

// Len returns the number of direct children of n.
func (n *Node) Len() int { return len(n.Children) }

// All returns a pre-order iterator over n and all of its descendants.
func (n *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(yield)
	}
}

func (n *Node) walk(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}

	for _, child := range n.Children {
		if !child.walk(yield) {
			return false
		}
	}

	return true
}

// ToMap converts n into nested maps and slices suitable for generic encoders.
func (n *Node) ToMap() map[string]any {
	m := map[string]any{
		"kind":  uint32(n.Kind),
		"label": n.Label,
		"value": nil,
	}

	if text, ok := n.Value.Text(); ok {
		m["value"] = text
	}

	if len(n.Children) > 0 {
		children := make([]any, 0, len(n.Children))
		for _, child := range n.Children {
			children = append(children, child.ToMap())
		}

		m["children"] = children
	}

	return m
}
