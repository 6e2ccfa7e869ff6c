package parser

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/ardnew/ars/kind"
	"github.com/ardnew/ars/pkg"
	"github.com/ardnew/ars/token"
)

// Error reports a token that is not what the grammar required, or a request
// for a token past the end of the stream.
//
// It unwraps to [pkg.ErrParse] when a token was found, and to
// [pkg.ErrEndOfStream] when the stream was exhausted.
type Error struct {
	Expected kind.Set   // kinds that were acceptable, if any
	Found    token.Data // the offending token, unless AtEnd
	AtEnd    bool       // whether the stream was exhausted
	Index    int        // cursor position of the failure
	names    *kind.Table
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Unwrap().Error())

	if len(e.Expected) > 0 {
		sb.WriteString(": expected ")
		sb.WriteString(e.formatExpected())
		sb.WriteString(" but found ")
	} else {
		sb.WriteString(": found ")
	}

	if e.AtEnd {
		sb.WriteString("end of stream")

		return sb.String()
	}

	sb.WriteString(e.format(e.Found.Kind))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Quote(e.Found.Text))
	sb.WriteString(" at line ")
	sb.WriteString(strconv.Itoa(e.Found.Pos.Line))
	sb.WriteString(", column ")
	sb.WriteString(strconv.Itoa(e.Found.Pos.Column))

	return sb.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error {
	if e.AtEnd {
		return pkg.ErrEndOfStream
	}

	return pkg.ErrParse
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("error", e.Unwrap().Error()),
		slog.String("expected", e.formatExpected()),
		slog.Int("index", e.Index),
	}

	if !e.AtEnd {
		attrs = append(attrs,
			slog.String("found", e.format(e.Found.Kind)),
			slog.String("text", e.Found.Text),
			slog.Int("line", e.Found.Pos.Line),
			slog.Int("column", e.Found.Pos.Column),
		)
	}

	return slog.GroupValue(attrs...)
}

func (e *Error) format(k kind.Kind) string {
	if e.names != nil {
		return e.names.Format(k)
	}

	return k.String()
}

func (e *Error) formatExpected() string {
	if e.names == nil {
		return e.Expected.String()
	}

	part := make([]string, 0, len(e.Expected))
	for _, k := range e.Expected {
		part = append(part, e.names.Format(k))
	}

	return "[" + strings.Join(part, " ") + "]"
}
