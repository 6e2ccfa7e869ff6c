package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/ars/ast"
	"github.com/ardnew/ars/log"
	"github.com/ardnew/ars/parser"
	"github.com/ardnew/ars/pasm"
)

// Parse parses a pasm program and prints its syntax tree.
type Parse struct {
	Output `embed:""`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	program, err := parseProgram(ctx, p.Source)
	if err != nil {
		return err
	}

	w := outputFrom(ctx)

	switch p.Format {
	case FormatJSON:
		err = program.FormatJSON(ctx, w, p.Indent)
	case FormatYAML:
		err = program.FormatYAML(ctx, w, p.Indent)
	default:
		_, err = io.WriteString(w, p.printer(w, pasm.Nodes).Node(program))
	}

	if err != nil {
		return ErrEncode.Wrap(err).With(slog.String("format", p.Format))
	}

	return nil
}

// parseProgram reads and parses the pasm program at path.
func parseProgram(ctx context.Context, path string) (*ast.Node, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}

	program, err := pasm.Parse(src.Text,
		parser.WithLogger(log.Default().With(slog.String("source", src.Name))))
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "parsed",
		slog.String("source", src.Name),
		slog.Int("nodes", countNodes(program)),
	)

	return program, nil
}

func countNodes(n *ast.Node) int {
	count := 0

	for range n.All() {
		count++
	}

	return count
}
