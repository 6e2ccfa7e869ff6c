package cmd

import (
	"log/slog"
	"slices"
)

// Error is a command failure carrying attributes for structured logging.
//
// Two Errors match under errors.Is when they describe the same operation, so
// the package sentinels match every error derived from them with Wrap or
// With.
type Error struct {
	op    string
	cause error
	attrs []slog.Attr
}

func newError(op string) *Error { return &Error{op: op} }

func (e *Error) Error() string {
	switch {
	case e.cause == nil:
		return e.op
	case e.op == "":
		return e.cause.Error()
	default:
		return e.op + ": " + e.cause.Error()
	}
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.op == e.op
}

func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.op != "" {
		attrs = append(attrs, slog.String("error", e.op))
	}

	if e.cause != nil {
		attrs = append(attrs, slog.Any("cause", e.cause))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap returns a copy of e caused by err.
func (e *Error) Wrap(err error) *Error {
	return &Error{op: e.op, cause: err, attrs: e.attrs}
}

// With returns a copy of e with attrs appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	return &Error{op: e.op, cause: e.cause, attrs: slices.Concat(e.attrs, attrs)}
}

var (
	ErrOpenSource  = newError("read source")
	ErrEncode      = newError("encode output")
	ErrWriteConfig = newError("write configuration file")
	ErrFileExists  = newError("file exists (use --force to overwrite)")
)
