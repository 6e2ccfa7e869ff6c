package parser

import (
	"fmt"
	"log/slog"

	"github.com/ardnew/ars/ast"
	"github.com/ardnew/ars/kind"
	"github.com/ardnew/ars/log"
	"github.com/ardnew/ars/token"
)

// Unit is a parsing unit: one grammar rule that consumes tokens from a state
// and returns the node it built.
type Unit interface {
	Parse(s *State) (*ast.Node, error)
}

// UnitFunc adapts an ordinary function to the [Unit] interface.
type UnitFunc func(s *State) (*ast.Node, error)

// Parse calls f(s).
func (f UnitFunc) Parse(s *State) (*ast.Node, error) { return f(s) }

// State is a cursor over an immutable token sequence.
//
// The token sequence and skip kinds are fixed for the lifetime of a State
// and shared by every copy made by [State.Parse]; only the cursor is
// private to each copy. A State is not safe for concurrent use.
type State struct {
	skip   kind.Set
	tokens []token.Data
	index  int
	depth  int
	names  *kind.Table
	logger log.Logger
}

// Option configures a State.
type Option func(*State)

// WithSkip sets the trivia kinds skipped before every unit run by
// [State.Parse].
func WithSkip(kinds ...kind.Kind) Option {
	return func(s *State) {
		s.skip = kind.Of(kinds...)
	}
}

// WithNames sets the table used to name kinds in error messages.
func WithNames(names *kind.Table) Option {
	return func(s *State) {
		s.names = names
	}
}

// WithLogger sets the logger used for trace output. The zero Logger, which is
// the default, discards everything.
func WithLogger(logger log.Logger) Option {
	return func(s *State) {
		s.logger = logger
	}
}

// New returns a State positioned at the first of tokens. The slice is
// retained, not copied, and must not be modified afterward.
func New(tokens []token.Data, opts ...Option) *State {
	s := &State{tokens: tokens}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run parses a single unit from the start of tokens.
func Run(tokens []token.Data, unit Unit, opts ...Option) (*ast.Node, error) {
	return New(tokens, opts...).Parse(unit)
}

// Index returns the cursor position: the number of tokens consumed.
func (s *State) Index() int { return s.index }

// Len returns the total number of tokens, consumed or not.
func (s *State) Len() int { return len(s.tokens) }

// Remaining returns the number of tokens not yet consumed.
func (s *State) Remaining() int { return len(s.tokens) - s.index }

// AtEnd reports whether every token has been consumed.
func (s *State) AtEnd() bool { return s.index >= len(s.tokens) }

// SkipKinds returns the trivia kinds skipped by [State.Parse].
func (s *State) SkipKinds() kind.Set { return s.skip }

// Peek returns the current token without advancing.
func (s *State) Peek() (token.Data, error) {
	if s.AtEnd() {
		return token.Data{}, s.endOfStream(nil)
	}

	return s.tokens[s.index], nil
}

// Eat returns the current token and advances past it.
func (s *State) Eat() (token.Data, error) {
	tok, err := s.Peek()
	if err != nil {
		return tok, err
	}

	s.index++

	return tok, nil
}

// Require eats the current token if its kind is one of kinds, and otherwise
// fails with an [*Error] naming the expected kinds and the kind found.
func (s *State) Require(kinds ...kind.Kind) (token.Data, error) {
	if s.AtEnd() {
		return token.Data{}, s.endOfStream(kinds)
	}

	tok := s.tokens[s.index]
	if !kind.Set(kinds).Contains(tok.Kind) {
		return token.Data{}, &Error{
			Expected: kind.Of(kinds...),
			Found:    tok,
			Index:    s.index,
			names:    s.names,
		}
	}

	s.index++

	return tok, nil
}

// Is reports whether the current token has one of kinds. It is false at the
// end of the stream.
func (s *State) Is(kinds ...kind.Kind) bool {
	if s.AtEnd() {
		return false
	}

	return kind.Set(kinds).Contains(s.tokens[s.index].Kind)
}

// SkipWhile advances past a run of tokens whose kinds are among kinds and
// returns how many were skipped.
func (s *State) SkipWhile(kinds ...kind.Kind) int {
	start := s.index

	for s.Is(kinds...) {
		s.index++
	}

	return s.index - start
}

// Parse runs unit against an isolated copy of s after skipping trivia on the
// copy. On success the copy's cursor is committed to s. On failure s is left
// unchanged and the unit's error is returned as is.
func (s *State) Parse(unit Unit) (*ast.Node, error) {
	sandbox := *s
	sandbox.depth++

	sandbox.SkipWhile(s.skip...)

	node, err := unit.Parse(&sandbox)
	if err != nil {
		s.logger.Trace("unit failed",
			slog.String("unit", unitName(unit)),
			slog.Int("depth", sandbox.depth),
			slog.Int("index", s.index),
			slog.Any("error", err),
		)

		return nil, err
	}

	s.logger.Trace("unit committed",
		slog.String("unit", unitName(unit)),
		slog.Int("depth", sandbox.depth),
		slog.Int("from", s.index),
		slog.Int("to", sandbox.index),
	)

	s.index = sandbox.index

	return node, nil
}

func (s *State) endOfStream(expected []kind.Kind) *Error {
	return &Error{
		Expected: kind.Of(expected...),
		AtEnd:    true,
		Index:    s.index,
		names:    s.names,
	}
}

func unitName(unit Unit) string {
	if _, ok := unit.(UnitFunc); ok {
		return "func"
	}

	return fmt.Sprintf("%T", unit)
}
