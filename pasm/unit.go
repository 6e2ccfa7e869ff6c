package pasm

import (
	"github.com/ardnew/ars/ast"
	"github.com/ardnew/ars/lexer"
	"github.com/ardnew/ars/parser"
)

// Parse lexes and parses source as a whole program.
func Parse(source string, opts ...parser.Option) (*ast.Node, error) {
	tokens, err := lexer.Tokenize(source, Patterns()...)
	if err != nil {
		return nil, err
	}

	opts = append([]parser.Option{
		parser.WithSkip(KindWhitespace),
		parser.WithNames(Tokens),
	}, opts...)

	return parser.Run(tokens, Program{}, opts...)
}

// Program parses labels and instructions until the end of the stream.
type Program struct{}

// Parse returns a Program node holding each label and instruction in order.
func (Program) Parse(s *parser.State) (*ast.Node, error) {
	program := ast.New(NodeProgram, "Program", ast.None)

	for {
		s.SkipWhile(s.SkipKinds()...)

		if s.AtEnd() {
			return program, nil
		}

		var unit parser.Unit = Label{}
		if s.Is(KindInstruction) {
			unit = Instruction{}
		}

		node, err := s.Parse(unit)
		if err != nil {
			return nil, err
		}

		program.AddChild(node)
	}
}

// Label parses "name:".
type Label struct{}

// Parse returns a Label node valued with the label name.
func (Label) Parse(s *parser.State) (*ast.Node, error) {
	ident, err := s.Parse(Identity{})
	if err != nil {
		return nil, err
	}

	s.SkipWhile(s.SkipKinds()...)

	if _, err := s.Require(KindColon); err != nil {
		return nil, err
	}

	name, err := ident.ValueString()
	if err != nil {
		return nil, err
	}

	return ast.New(NodeLabel, "Label", ast.String(name)), nil
}

// Instruction parses a mnemonic followed by comma-separated operands.
type Instruction struct{}

// Parse returns an Instruction node valued with the mnemonic, with one
// child per operand.
func (Instruction) Parse(s *parser.State) (*ast.Node, error) {
	op, err := s.Require(KindInstruction)
	if err != nil {
		return nil, err
	}

	node := ast.New(NodeInstruction, "Instruction", ast.String(op.Text))

	for {
		operand, err := s.Parse(Identity{})
		if err != nil {
			return nil, err
		}

		node.AddChild(operand)

		s.SkipWhile(s.SkipKinds()...)

		if !s.Is(KindComma) {
			return node, nil
		}

		if _, err := s.Eat(); err != nil {
			return nil, err
		}
	}
}

// Identity parses an operand: a register, a constant, or an identifier.
type Identity struct{}

// Parse returns a Register, Constant, or Ident node.
func (Identity) Parse(s *parser.State) (*ast.Node, error) {
	switch {
	case s.Is(KindPercent):
		if _, err := s.Eat(); err != nil {
			return nil, err
		}

		return s.Parse(Register{})

	case s.Is(KindHashtag):
		if _, err := s.Eat(); err != nil {
			return nil, err
		}

		return s.Parse(Constant{})

	default:
		tok, err := s.Require(KindIdent)
		if err != nil {
			return nil, err
		}

		return ast.New(NodeIdent, "Ident", ast.String(tok.Text)), nil
	}
}

// Register parses the name following '%'.
type Register struct{}

// Parse returns a Register node valued with the register name.
func (Register) Parse(s *parser.State) (*ast.Node, error) {
	tok, err := s.Require(KindIdent, KindNumber)
	if err != nil {
		return nil, err
	}

	return ast.New(NodeRegister, "Register", ast.String(tok.Text)), nil
}

// Constant parses the number following '#'.
type Constant struct{}

// Parse returns a Constant node valued with the number text.
func (Constant) Parse(s *parser.State) (*ast.Node, error) {
	tok, err := s.Require(KindNumber)
	if err != nil {
		return nil, err
	}

	return ast.New(NodeConstant, "Constant", ast.String(tok.Text)), nil
}
