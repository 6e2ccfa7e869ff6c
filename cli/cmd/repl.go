package cmd

import (
	"context"
	"path/filepath"

	"github.com/ardnew/ars/cli/cmd/repl"
	"github.com/ardnew/ars/log"
)

// Repl starts an interactive tokenizer.
type Repl struct {
	Grammar `embed:""`

	History int  `default:"100"  help:"Number of input lines kept in history."`
	Color   bool `default:"true" help:"Colorize token output."                negatable:""`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	gram, err := r.load(ctx)
	if err != nil {
		return err
	}

	opts := []repl.Option{
		repl.WithHistory(r.History),
		repl.WithColor(r.Color),
		repl.WithLogger(log.Default()),
	}

	if ktx := kongContextFrom(ctx); ktx != nil {
		if cache, ok := ktx.Model.Vars()[CacheIdentifier]; ok && cache != "" {
			opts = append(opts, repl.WithHistoryFile(filepath.Join(cache, repl.BaseHistory)))
		}
	}

	return repl.Run(ctx, gram, opts...)
}
