package filter

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/ars/kind"
	"github.com/ardnew/ars/log"
	"github.com/ardnew/ars/pkg"
	"github.com/ardnew/ars/token"
)

// Env is the environment an expression is evaluated in.
type Env struct {
	Kinds  map[string]int `expr:"kinds"`
	Text   string         `expr:"text"`
	Label  string         `expr:"label"`
	Kind   int            `expr:"kind"`
	Line   int            `expr:"line"`
	Column int            `expr:"column"`
	Start  int            `expr:"start"`
	End    int            `expr:"end"`
}

// Filter is a compiled token predicate. It is safe for concurrent use.
type Filter struct {
	program *vm.Program
	kinds   map[string]int
	source  string
	logger  log.Logger
}

// Option configures a Filter.
type Option func(*Filter)

// WithLogger sets the logger used for trace output.
func WithLogger(logger log.Logger) Option {
	return func(f *Filter) {
		f.logger = logger
	}
}

// Compile compiles source into a Filter. The expression must evaluate to a
// boolean. names may be nil.
func Compile(source string, names *kind.Table, opts ...Option) (*Filter, error) {
	f := &Filter{source: source, kinds: map[string]int{}}

	for _, opt := range opts {
		opt(f)
	}

	if names != nil {
		for k, name := range names.All() {
			if _, ok := f.kinds[name]; !ok {
				f.kinds[name] = int(k)
			}
		}
	}

	program, err := expr.Compile(source,
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Patch(&kindPatcher{kinds: f.kinds}),
	)
	if err != nil {
		return nil, pkg.ErrFilter.Wrap(err)
	}

	f.program = program

	f.logger.Trace("filter compiled",
		slog.String("source", source),
		slog.Int("kinds", len(f.kinds)),
	)

	return f, nil
}

// String returns the source expression of f.
func (f *Filter) String() string { return f.source }

// Match reports whether tok satisfies f.
func (f *Filter) Match(tok token.Data) (bool, error) {
	out, err := expr.Run(f.program, f.env(tok))
	if err != nil {
		return false, pkg.ErrFilter.Wrapf("%s: %w", tok, err)
	}

	ok, _ := out.(bool)

	return ok, nil
}

// Select returns the tokens that satisfy f, in order.
func (f *Filter) Select(tokens []token.Data) ([]token.Data, error) {
	var selected []token.Data

	for _, tok := range tokens {
		ok, err := f.Match(tok)
		if err != nil {
			return nil, err
		}

		if ok {
			selected = append(selected, tok)
		}
	}

	return selected, nil
}

func (f *Filter) env(tok token.Data) Env {
	return Env{
		Kinds:  f.kinds,
		Text:   tok.Text,
		Label:  tok.Label,
		Kind:   int(tok.Kind),
		Line:   tok.Pos.Line,
		Column: tok.Pos.Column,
		Start:  tok.Span.Start,
		End:    tok.Span.End,
	}
}
