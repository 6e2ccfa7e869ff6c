package cmd

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/ardnew/ars/filter"
	"github.com/ardnew/ars/grammar"
	"github.com/ardnew/ars/lexer"
	"github.com/ardnew/ars/log"
	"github.com/ardnew/ars/token"
)

// Lex tokenizes each source and prints the token stream.
type Lex struct {
	Grammar `embed:""`
	Output  `embed:""`

	Where    string `help:"Keep only tokens satisfying an expression, e.g. 'kind == number'." placeholder:"EXPR" short:"w"`
	KeepSkip bool   `help:"Keep tokens of the grammar's skip kinds."`

	Sources []string `arg:"" default:"-" help:"Source input file(s) or '-' for stdin." name:"source"`
}

// lexed is the token stream of one source.
type lexed struct {
	Source string       `json:"source" yaml:"source"`
	Tokens []token.Data `json:"tokens" yaml:"tokens"`
}

// Run executes the lex command.
func (l *Lex) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	gram, err := l.load(ctx)
	if err != nil {
		return err
	}

	var where *filter.Filter

	if l.Where != "" {
		where, err = filter.Compile(l.Where, gram.Kinds(),
			filter.WithLogger(log.Default()))
		if err != nil {
			return err
		}
	}

	sources, err := readSources(l.Sources)
	if err != nil {
		return err
	}

	results, err := l.lexAll(ctx, gram, where, sources)
	if err != nil {
		return err
	}

	return l.write(ctx, outputFrom(ctx), gram, results)
}

// lexAll tokenizes sources concurrently, one lexer per source. Results are
// in the order of sources.
func (l *Lex) lexAll(
	ctx context.Context,
	gram *grammar.Grammar,
	where *filter.Filter,
	sources []Source,
) ([]lexed, error) {
	results := make([]lexed, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			tokens, err := l.lex(gram, where, src)
			if err != nil {
				log.DebugContext(ctx, "lex failed",
					slog.String("source", src.Name),
					slog.Any("error", err),
				)

				return err
			}

			results[i] = lexed{Source: src.Name, Tokens: tokens}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (l *Lex) lex(
	gram *grammar.Grammar,
	where *filter.Filter,
	src Source,
) ([]token.Data, error) {
	lx := gram.Lexer(lexer.WithLogger(log.Default().With(
		slog.String("source", src.Name),
	)))
	lx.Begin(src.Text)

	tokens, err := lx.All()
	if err != nil {
		return nil, err
	}

	if !l.KeepSkip {
		skip := gram.Skip()
		tokens = slices.DeleteFunc(tokens, func(d token.Data) bool {
			return skip.Contains(d.Kind)
		})
	}

	if where != nil {
		return where.Select(tokens)
	}

	return tokens, nil
}

func (l *Lex) write(
	ctx context.Context,
	w io.Writer,
	gram *grammar.Grammar,
	results []lexed,
) error {
	if l.Format != FormatPretty {
		return l.encode(ctx, w, results)
	}

	p := l.printer(w, gram.Kinds())

	for i, r := range results {
		if len(results) > 1 {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}

			if _, err := io.WriteString(w, "==> "+r.Source+" <==\n"); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, p.Tokens(r.Tokens)); err != nil {
			return err
		}
	}

	return nil
}
