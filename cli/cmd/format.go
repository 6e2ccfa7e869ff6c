package cmd

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/ars/grammar"
	"github.com/ardnew/ars/kind"
	"github.com/ardnew/ars/log"
	"github.com/ardnew/ars/pasm"
	"github.com/ardnew/ars/pretty"
)

// Output formats accepted by the --format flag.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
)

// Output selects how a command renders its result.
type Output struct {
	Format string `default:"pretty" enum:"pretty,json,yaml" help:"Output format (${enum})." short:"o"`
	Indent int    `default:"2"                               help:"Indent width of JSON and YAML output." short:"i"`
	Color  bool   `default:"true"                            help:"Colorize pretty output on terminals."   negatable:""`
}

// printer returns a pretty printer for w naming kinds with names.
func (o Output) printer(w io.Writer, names *kind.Table) *pretty.Printer {
	return pretty.New(
		pretty.WithNames(names),
		pretty.WithRenderer(lipgloss.NewRenderer(w)),
		pretty.WithColor(o.Color),
	)
}

// encode writes v to w as JSON or YAML.
func (o Output) encode(ctx context.Context, w io.Writer, v any) error {
	var (
		data []byte
		err  error
	)

	switch o.Format {
	case FormatJSON:
		if o.Indent > 0 {
			data, err = json.MarshalIndent(v, "", strings.Repeat(" ", o.Indent))
		} else {
			data, err = json.Marshal(v)
		}

		data = append(data, '\n')

	default:
		opts := []yaml.EncodeOption{yaml.Flow(o.Indent <= 0)}
		if o.Indent > 0 {
			opts = append(opts, yaml.Indent(o.Indent))
		}

		data, err = yaml.MarshalContext(ctx, v, opts...)
	}

	if err != nil {
		return ErrEncode.Wrap(err)
	}

	_, err = w.Write(data)

	return err
}

// Grammar selects the token patterns used to lex input.
type Grammar struct {
	Grammar string `help:"Grammar definition file (YAML). Defaults to the built-in pasm grammar." placeholder:"FILE" short:"g" type:"path"`
}

// load returns the selected grammar.
func (g Grammar) load(ctx context.Context) (*grammar.Grammar, error) {
	if g.Grammar == "" {
		return pasm.Grammar(), nil
	}

	gram, err := grammar.LoadFile(ctx, g.Grammar)
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "grammar loaded",
		slog.String("name", gram.Name()),
		slog.Int("patterns", len(gram.Patterns())),
	)

	return gram, nil
}
