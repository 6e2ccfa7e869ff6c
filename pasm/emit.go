package pasm

import (
	"io"
	"strconv"
	"strings"

	"github.com/ardnew/ars/ast"
	"github.com/ardnew/ars/pkg"
	"github.com/ardnew/ars/visitor"
)

// Sink receives emitted text.
type Sink interface {
	Append(text string)
}

// Buffer is a Sink that accumulates text in memory.
type Buffer struct {
	strings.Builder
}

// Append implements Sink.
func (b *Buffer) Append(text string) { b.WriteString(text) }

// WriterSink is a Sink that writes to an io.Writer. After the first failed
// write, further text is discarded and the error is kept.
type WriterSink struct {
	W   io.Writer
	Err error
}

// Append implements Sink.
func (w *WriterSink) Append(text string) {
	if w.Err != nil {
		return
	}

	_, w.Err = io.WriteString(w.W, text)
}

// Indent is written before every instruction.
const Indent = "    "

// NewEmitter returns a visitor that appends canonical source for each node
// it visits to sink. Each handler also returns a result describing the node.
func NewEmitter(sink Sink, opts ...visitor.Option) *visitor.Visitor[Sink] {
	v := visitor.New(sink, append([]visitor.Option{visitor.WithNames(Nodes)}, opts...)...)

	v.Register(NodeProgram, emitProgram)
	v.Register(NodeLabel, emitLabel)
	v.Register(NodeInstruction, emitInstruction)
	v.Register(NodeRegister, emitRegister)
	v.Register(NodeConstant, emitConstant)
	v.Register(NodeIdent, emitIdent)

	return v
}

// Emit writes the canonical source of program to sink.
func Emit(program *ast.Node, sink Sink) (visitor.Result, error) {
	return NewEmitter(sink).Visit(program)
}

// Format parses source and returns it in canonical form.
func Format(source string) (string, error) {
	program, err := Parse(source)
	if err != nil {
		return "", err
	}

	var buf Buffer

	if _, err := Emit(program, &buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func appendText(v *visitor.Visitor[Sink], text string) {
	v.Scope().Do(func(s *Sink) { (*s).Append(text) })
}

func emitProgram(v *visitor.Visitor[Sink], n *ast.Node) (visitor.Result, error) {
	return v.VisitChildren(n)
}

func emitLabel(v *visitor.Visitor[Sink], n *ast.Node) (visitor.Result, error) {
	name, err := n.ValueString()
	if err != nil {
		return visitor.None(), err
	}

	appendText(v, name+":\n")

	return visitor.Tagged("label", visitor.String(name)), nil
}

func emitInstruction(v *visitor.Visitor[Sink], n *ast.Node) (visitor.Result, error) {
	op, err := n.ValueString()
	if err != nil {
		return visitor.None(), err
	}

	appendText(v, Indent+op+" ")

	operands := visitor.Compound()

	for i, child := range n.Children {
		if i > 0 {
			appendText(v, ", ")
		}

		r, err := v.Visit(child)
		if err != nil {
			return visitor.None(), err
		}

		_ = operands.Append(r)
	}

	appendText(v, "\n")

	return visitor.Tagged(op, operands), nil
}

func emitRegister(v *visitor.Visitor[Sink], n *ast.Node) (visitor.Result, error) {
	name, err := n.ValueString()
	if err != nil {
		return visitor.None(), err
	}

	appendText(v, "%"+name)

	return visitor.Tagged("register", visitor.String(name)), nil
}

func emitConstant(v *visitor.Visitor[Sink], n *ast.Node) (visitor.Result, error) {
	text, err := n.ValueString()
	if err != nil {
		return visitor.None(), err
	}

	appendText(v, "#"+text)

	if u, err := strconv.ParseUint(text, 10, 64); err == nil {
		return visitor.Tagged("constant", visitor.Integer(u)), nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return visitor.None(), pkg.ErrValue.Wrapf("constant %q", text).Wrap(err)
	}

	return visitor.Tagged("constant", visitor.Number(f)), nil
}

func emitIdent(v *visitor.Visitor[Sink], n *ast.Node) (visitor.Result, error) {
	name, err := n.ValueString()
	if err != nil {
		return visitor.None(), err
	}

	appendText(v, name)

	return visitor.String(name), nil
}
