package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/ars/ast"
	"github.com/ardnew/ars/kind"
	"github.com/ardnew/ars/lexer"
	"github.com/ardnew/ars/pkg"
	"github.com/ardnew/ars/token"
)

const (
	kindWS kind.Kind = iota
	kindLet
	kindIdent
	kindEqual
	kindNumber
	kindVariable
)

func variablePatterns() []token.Pattern {
	return []token.Pattern{
		token.MustRegex("whitespace", kindWS, `\s+`),
		token.NewLiteral("let", kindLet, "let"),
		token.MustRegex("ident", kindIdent, `[a-zA-Z_][a-zA-Z0-9_]*`),
		token.NewLiteral("equal", kindEqual, "="),
		token.MustRegex("number", kindNumber, `\d+(\.\d+)?`),
	}
}

func stream(kinds ...kind.Kind) []token.Data {
	data := make([]token.Data, 0, len(kinds))
	for _, k := range kinds {
		data = append(data, token.FromString("t"+k.String(), k))
	}

	return data
}

// leaf requires one token of kind k and wraps it in a node.
func leaf(k kind.Kind, label string) Unit {
	return UnitFunc(func(s *State) (*ast.Node, error) {
		tok, err := s.Require(k)
		if err != nil {
			return nil, err
		}

		return ast.New(k, label, ast.String(tok.Text)), nil
	})
}

// variable parses "let <ident> = <number>" with whitespace between tokens.
var variable = UnitFunc(func(s *State) (*ast.Node, error) {
	node := ast.New(kindVariable, "Variable", ast.None)

	for _, part := range []struct {
		kind  kind.Kind
		label string
	}{
		{kindLet, "Let"},
		{kindIdent, "Ident"},
		{kindEqual, "Equal"},
		{kindNumber, "Number"},
	} {
		child, err := s.Parse(leaf(part.kind, part.label))
		if err != nil {
			return nil, err
		}

		node.AddChild(child)
	}

	return node, nil
})

func TestState_Peek_DoesNotAdvance(t *testing.T) {
	s := New(stream(kindLet, kindIdent))

	for range 3 {
		tok, err := s.Peek()
		if err != nil {
			t.Fatalf("Peek() error = %v", err)
		}

		if tok.Kind != kindLet {
			t.Errorf("Peek().Kind = %v, want %v", tok.Kind, kindLet)
		}
	}

	if s.Index() != 0 {
		t.Errorf("Index() = %d, want 0", s.Index())
	}
}

func TestState_Eat_EndOfStream(t *testing.T) {
	s := New(stream(kindLet))

	if _, err := s.Eat(); err != nil {
		t.Fatalf("Eat() error = %v", err)
	}

	if !s.AtEnd() {
		t.Fatal("AtEnd() = false after consuming every token")
	}

	for _, op := range []struct {
		name string
		fn   func() (token.Data, error)
	}{
		{"Peek", s.Peek},
		{"Eat", s.Eat},
		{"Require", func() (token.Data, error) { return s.Require(kindLet) }},
	} {
		t.Run(op.name, func(t *testing.T) {
			_, err := op.fn()
			if !errors.Is(err, pkg.ErrEndOfStream) {
				t.Errorf("%s() error = %v, want ErrEndOfStream", op.name, err)
			}

			if errors.Is(err, pkg.ErrParse) {
				t.Errorf("%s() error matches ErrParse at end of stream", op.name)
			}
		})
	}

	if s.Index() != 1 {
		t.Errorf("Index() = %d, want 1", s.Index())
	}
}

func TestState_Require(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []token.Data
		kinds   []kind.Kind
		wantErr bool
		wantIdx int
	}{
		{"single match", stream(kindLet), []kind.Kind{kindLet}, false, 1},
		{"any of set", stream(kindNumber), []kind.Kind{kindIdent, kindNumber}, false, 1},
		{"mismatch", stream(kindEqual), []kind.Kind{kindIdent, kindNumber}, true, 0},
		{"empty set", stream(kindEqual), nil, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.tokens)

			tok, err := s.Require(tt.kinds...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Require() error = %v, wantErr %v", err, tt.wantErr)
			}

			if s.Index() != tt.wantIdx {
				t.Errorf("Index() = %d, want %d", s.Index(), tt.wantIdx)
			}

			if err != nil {
				var perr *Error
				if !errors.As(err, &perr) {
					t.Fatalf("Require() error type = %T, want *Error", err)
				}

				if !errors.Is(err, pkg.ErrParse) {
					t.Errorf("Require() error does not match ErrParse")
				}

				if perr.Found.Kind != tt.tokens[0].Kind {
					t.Errorf("Found.Kind = %v, want %v", perr.Found.Kind, tt.tokens[0].Kind)
				}

				if diff := cmp.Diff(kind.Set(tt.kinds), perr.Expected); diff != "" {
					t.Errorf("Expected mismatch (-want +got):\n%s", diff)
				}

				return
			}

			if tok.Kind != tt.tokens[0].Kind {
				t.Errorf("Require().Kind = %v, want %v", tok.Kind, tt.tokens[0].Kind)
			}
		})
	}
}

func TestState_Require_ErrorMessage(t *testing.T) {
	names := kind.NewTable("WS", "Let", "Ident", "Equal", "Number")
	s := New([]token.Data{token.FromString("=", kindEqual)}, WithNames(names))

	_, err := s.Require(kindIdent, kindNumber)
	if err == nil {
		t.Fatal("Require() succeeded on mismatched token")
	}

	for _, want := range []string{"Ident(2)", "Number(4)", "Equal(3)", `"="`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not contain %q", err.Error(), want)
		}
	}
}

func TestState_Is(t *testing.T) {
	s := New(stream(kindIdent))

	if !s.Is(kindLet, kindIdent) {
		t.Error("Is(Let, Ident) = false, want true")
	}

	if s.Is(kindLet) {
		t.Error("Is(Let) = true, want false")
	}

	if s.Is() {
		t.Error("Is() with no kinds = true, want false")
	}

	_, _ = s.Eat()

	if s.Is(kindIdent) {
		t.Error("Is() at end of stream = true, want false")
	}
}

func TestState_SkipWhile(t *testing.T) {
	s := New(stream(kindWS, kindWS, kindLet, kindWS))

	if n := s.SkipWhile(kindWS); n != 2 {
		t.Errorf("SkipWhile() = %d, want 2", n)
	}

	if n := s.SkipWhile(kindWS); n != 0 {
		t.Errorf("SkipWhile() on non-matching token = %d, want 0", n)
	}

	_, _ = s.Eat()

	if n := s.SkipWhile(kindWS); n != 1 || !s.AtEnd() {
		t.Errorf("SkipWhile() = %d, AtEnd() = %v, want 1, true", n, s.AtEnd())
	}
}

func TestState_Parse_CommitsOnSuccess(t *testing.T) {
	s := New(stream(kindWS, kindIdent, kindEqual), WithSkip(kindWS))

	var inner int

	node, err := s.Parse(UnitFunc(func(c *State) (*ast.Node, error) {
		if c.Index() != 1 {
			t.Errorf("unit started at index %d, want 1 after skipping", c.Index())
		}

		if _, err := c.Require(kindIdent); err != nil {
			return nil, err
		}

		inner = c.Index()

		return ast.New(kindIdent, "Ident", ast.None), nil
	}))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if node == nil {
		t.Fatal("Parse() returned nil node")
	}

	if s.Index() != inner {
		t.Errorf("Index() = %d, want %d committed from unit", s.Index(), inner)
	}
}

func TestState_Parse_AbortLeavesCursor(t *testing.T) {
	s := New(stream(kindWS, kindIdent, kindEqual), WithSkip(kindWS))

	_, err := s.Parse(UnitFunc(func(c *State) (*ast.Node, error) {
		if _, err := c.Require(kindIdent); err != nil {
			return nil, err
		}

		_, err := c.Require(kindNumber)

		return nil, err
	}))
	if !errors.Is(err, pkg.ErrParse) {
		t.Fatalf("Parse() error = %v, want ErrParse", err)
	}

	if s.Index() != 0 {
		t.Errorf("Index() = %d after failed unit, want 0", s.Index())
	}
}

func TestState_Parse_ErrorPassesThrough(t *testing.T) {
	sentinel := errors.New("custom failure")
	s := New(stream(kindLet))

	_, err := s.Parse(UnitFunc(func(*State) (*ast.Node, error) {
		return nil, sentinel
	}))
	if !errors.Is(err, sentinel) {
		t.Errorf("Parse() error = %v, want %v", err, sentinel)
	}
}

func TestState_Parse_NestedCommit(t *testing.T) {
	s := New(stream(kindLet, kindIdent, kindEqual))

	outer := UnitFunc(func(c *State) (*ast.Node, error) {
		node := ast.New(kindVariable, "Pair", ast.None)

		for _, u := range []Unit{leaf(kindLet, "Let"), leaf(kindIdent, "Ident")} {
			child, err := c.Parse(u)
			if err != nil {
				return nil, err
			}

			node.AddChild(child)
		}

		// A failing alternative must not disturb the cursor.
		if _, err := c.Parse(leaf(kindNumber, "Number")); err == nil {
			t.Error("Parse(Number) succeeded on Equal token")
		}

		return node, nil
	})

	node, err := s.Parse(outer)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if node.Len() != 2 || s.Index() != 2 {
		t.Errorf("Len() = %d, Index() = %d, want 2, 2", node.Len(), s.Index())
	}
}

func TestRun_Variable(t *testing.T) {
	tokens, err := lexer.Tokenize("let x = 10.5", variablePatterns()...)
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	node, err := Run(tokens, variable, WithSkip(kindWS))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := ast.New(kindVariable, "Variable", ast.None).AddChild(
		ast.New(kindLet, "Let", ast.String("let")),
		ast.New(kindIdent, "Ident", ast.String("x")),
		ast.New(kindEqual, "Equal", ast.String("=")),
		ast.New(kindNumber, "Number", ast.String("10.5")),
	)

	if diff := cmp.Diff(want, node); diff != "" {
		t.Errorf("Run() mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_Variable_MissingNumber(t *testing.T) {
	tokens, err := lexer.Tokenize("let x =", variablePatterns()...)
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	_, err = Run(tokens, variable, WithSkip(kindWS))

	var perr *Error
	if !errors.As(err, &perr) || !perr.AtEnd {
		t.Fatalf("Run() error = %v, want end-of-stream *Error", err)
	}

	if !perr.Expected.Contains(kindNumber) {
		t.Errorf("Expected = %v, want it to contain %v", perr.Expected, kindNumber)
	}
}

func TestError_LogValue(t *testing.T) {
	err := &Error{
		Expected: kind.Of(kindIdent),
		Found:    token.FromString("=", kindEqual),
	}

	attrs := err.LogValue().Group()
	got := map[string]string{}

	for _, a := range attrs {
		got[a.Key] = a.Value.String()
	}

	if got["found"] != "3" || got["text"] != "=" {
		t.Errorf("LogValue() = %v", got)
	}
}
