package visitor

import (
	"log/slog"

	"github.com/ardnew/ars/kind"
	"github.com/ardnew/ars/pkg"
)

// Error reports a node whose kind has no registered handler.
type Error struct {
	Kind  kind.Kind
	Label string
	names *kind.Table
}

// Error implements the error interface.
func (e *Error) Error() string {
	return pkg.ErrVisit.Error() + " for " + e.node()
}

// Unwrap returns [pkg.ErrVisit].
func (e *Error) Unwrap() error { return pkg.ErrVisit }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", pkg.ErrVisit.Error()),
		slog.String("kind", e.kind()),
		slog.String("label", e.Label),
	)
}

func (e *Error) kind() string {
	if e.names != nil {
		return e.names.Format(e.Kind)
	}

	return e.Kind.String()
}

func (e *Error) node() string {
	if e.Label == "" && e.names != nil {
		return e.names.Format(e.Kind)
	}

	return e.Label + "(" + e.Kind.String() + ")"
}
