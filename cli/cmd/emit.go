package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/ars/log"
	"github.com/ardnew/ars/pasm"
	"github.com/ardnew/ars/visitor"
)

// Emit parses a pasm program and writes it back in canonical form.
type Emit struct {
	Result bool `help:"Print the emitter's result tree after the program." short:"r"`
	Color  bool `default:"true" help:"Colorize the result tree on terminals." negatable:""`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the emit command.
func (e *Emit) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	program, err := parseProgram(ctx, e.Source)
	if err != nil {
		return err
	}

	w := outputFrom(ctx)
	sink := &pasm.WriterSink{W: w}

	emitter := pasm.NewEmitter(sink, visitor.WithLogger(log.Default()))

	result, err := emitter.Visit(program)
	if err != nil {
		return err
	}

	if sink.Err != nil {
		return ErrEncode.Wrap(sink.Err).With(slog.String("source", e.Source))
	}

	if e.Result {
		out := Output{Color: e.Color}
		_, err = io.WriteString(w, "\n"+out.printer(w, pasm.Nodes).Result(result))
	}

	return err
}
