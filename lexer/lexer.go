package lexer

import (
	"errors"
	"io"
	"iter"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/ardnew/ars/log"
	"github.com/ardnew/ars/token"
)

// Lexer holds an ordered list of patterns and the input currently being
// tokenized. A Lexer is not safe for concurrent use; create one per input.
type Lexer struct {
	patterns []token.Pattern
	logger   log.Logger

	input string
	cur   int // byte offset of the next token
	line  int
	col   int
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithLogger sets the logger used for trace output. The zero Logger, which is
// the default, discards everything.
func WithLogger(logger log.Logger) Option {
	return func(l *Lexer) {
		l.logger = logger
	}
}

// New returns a Lexer that tries patterns in the given order.
func New(patterns []token.Pattern, opts ...Option) *Lexer {
	l := &Lexer{
		patterns: slices.Clone(patterns),
		line:     1,
		col:      1,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Tokenize lexes input with a throwaway Lexer and returns every token.
func Tokenize(input string, patterns ...token.Pattern) ([]token.Data, error) {
	l := New(patterns)
	l.Begin(input)

	return l.All()
}

// Patterns returns a copy of the patterns l tries, in order.
func (l *Lexer) Patterns() []token.Pattern {
	return slices.Clone(l.patterns)
}

// Begin resets l to the start of input, discarding any prior stream.
func (l *Lexer) Begin(input string) {
	l.input = input
	l.cur = 0
	l.line = 1
	l.col = 1
}

// Pos returns the line and column of the next token.
func (l *Lexer) Pos() token.Position {
	return token.Position{Line: l.line, Column: l.col}
}

// Offset returns the byte offset of the next token.
func (l *Lexer) Offset() int { return l.cur }

// Next returns the token at the current position and advances past it.
// It returns io.EOF once all input has been consumed, and an [*Error] if no
// pattern matches the remaining input.
func (l *Lexer) Next() (token.Data, error) {
	if l.cur >= len(l.input) {
		return token.Data{}, io.EOF
	}

	rest := l.input[l.cur:]

	for _, p := range l.patterns {
		n, ok := p.Match(rest)
		if !ok {
			continue
		}

		tok := token.Data{
			Kind:  p.Kind,
			Text:  rest[:n],
			Label: p.Label,
			Pos:   l.Pos(),
			Span:  token.Span{Start: l.cur, End: l.cur + n},
		}

		l.advance(tok.Text)

		l.logger.Trace("token",
			slog.String("label", tok.Label),
			slog.Any("kind", tok.Kind),
			slog.String("text", tok.Text),
			slog.Int("start", tok.Span.Start),
			slog.Int("end", tok.Span.End),
		)

		return tok, nil
	}

	c, _ := utf8.DecodeRuneInString(rest)
	err := &Error{Char: c, Pos: l.Pos(), Offset: l.cur}

	l.logger.Trace("no pattern matched", slog.Any("error", err))

	return token.Data{}, err
}

// advance moves the cursor past text and updates the line and column.
func (l *Lexer) advance(text string) {
	l.cur += len(text)

	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		l.line += strings.Count(text, "\n")
		l.col = 1 + utf8.RuneCountInString(text[i+1:])

		return
	}

	l.col += utf8.RuneCountInString(text)
}

// All drains l and returns every remaining token. On error the tokens
// produced so far are discarded.
func (l *Lexer) All() ([]token.Data, error) {
	var tokens []token.Data

	for tok, err := range l.Tokens() {
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)
	}

	return tokens, nil
}

// Tokens returns an iterator over the remaining tokens. Iteration ends at the
// end of input, or after yielding the first lexing error.
func (l *Lexer) Tokens() iter.Seq2[token.Data, error] {
	return func(yield func(token.Data, error) bool) {
		for {
			tok, err := l.Next()
			if errors.Is(err, io.EOF) {
				return
			}

			if !yield(tok, err) || err != nil {
				return
			}
		}
	}
}
