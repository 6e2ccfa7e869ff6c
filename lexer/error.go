package lexer

import (
	"fmt"
	"log/slog"

	"github.com/ardnew/ars/pkg"
	"github.com/ardnew/ars/token"
)

// Error reports input that no pattern matches.
// It unwraps to [pkg.ErrLex].
type Error struct {
	Char   rune
	Pos    token.Position
	Offset int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s %q at line %d, column %d",
		pkg.ErrLex.Error(), e.Char, e.Pos.Line, e.Pos.Column)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return pkg.ErrLex }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", pkg.ErrLex.Error()),
		slog.String("char", string(e.Char)),
		slog.Int("line", e.Pos.Line),
		slog.Int("column", e.Pos.Column),
		slog.Int("offset", e.Offset),
	)
}
