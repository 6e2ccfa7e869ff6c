package pkg

// Sentinel errors for the ars packages and their commands.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrLex is returned when no token pattern matches at the current input
// position.
//
// Lexers wrap it with the offending character and its line and column.
var ErrLex = MakeErrorf("invalid character")

// ErrParse is returned when a parser state finds a token whose kind is outside
// the set of kinds required at that position.
var ErrParse = MakeErrorf("unexpected token")

// ErrEndOfStream is returned when a parser state is asked for a token after
// every token has been consumed.
var ErrEndOfStream = MakeErrorf("unexpected end of token stream")

// ErrVisit is returned when a visitor has no handler registered for the kind
// of a node it was asked to visit.
var ErrVisit = MakeErrorf("visitor not found")

// ErrValue is returned when a scalar accessor is invoked on a node or result
// that holds no value.
var ErrValue = MakeErrorf("value is none")

// ErrResultShape is returned when a child is appended to a visitor result that
// is not compound.
var ErrResultShape = MakeErrorf("value is not compound")

// ErrGrammar is returned when a grammar definition cannot be loaded.
//
// This error should be wrapped with the offending pattern and the underlying
// decode or compile error.
var ErrGrammar = MakeErrorf("invalid grammar")

// ErrFilter is returned when a token filter expression cannot be compiled or
// does not evaluate to a boolean.
var ErrFilter = MakeErrorf("invalid filter")

// ErrReadInput is returned when reading input fails.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrReadInput = MakeErrorf("failed to read input")

// ErrInvalidFormat is returned when an invalid output format is specified.
//
// This error should be wrapped with additional context that specifies the
// invalid format along with a list of valid formats.
var ErrInvalidFormat = MakeErrorf("invalid format")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", from innermost to outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Is reports whether target is a chain whose links prefix the receiver. A
// sentinel therefore matches itself and every chain wrapped from it.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok || len(t) == 0 || len(t) > len(e) {
		return false
	}

	for i := range t {
		if e[i] != t[i] {
			return false
		}
	}

	return true
}

// Wrap appends one or more errors to the receiver and returns the result.
func (e Error) Wrap(err ...error) Error {
	return append(e[:len(e):len(e)], err...)
}

// Wrapf appends a formatted error to the receiver and returns the result.
func (e Error) Wrapf(format string, args ...any) Error {
	return append(e[:len(e):len(e)], fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
