package visitor

import (
	"slices"
	"strconv"
	"strings"

	"github.com/ardnew/ars/pkg"
)

//go:generate go tool stringer --linecomment --type Shape --output result_string.go

// Shape identifies the variant held by a [Result].
type Shape uint8

const (
	ShapeNone     Shape = iota // none
	ShapeCompound              // compound
	ShapeString                // string
	ShapeInteger               // integer
	ShapeNumber                // number
	ShapeTagged                // tagged
)

// Result is the value produced by a visitor handler. The zero Result is
// [None].
//
// Only compound results accumulate children; see [Result.Append].
type Result struct {
	shape    Shape
	text     string // string value, or the label of a tagged result
	integer  uint64
	number   float64
	children []Result
	inner    *Result
}

// None returns the empty result.
func None() Result { return Result{} }

// Compound returns a compound result holding children in order.
func Compound(children ...Result) Result {
	return Result{shape: ShapeCompound, children: slices.Clone(children)}
}

// String returns a text result.
func String(text string) Result {
	return Result{shape: ShapeString, text: text}
}

// Integer returns an unsigned integer result.
func Integer(n uint64) Result {
	return Result{shape: ShapeInteger, integer: n}
}

// Number returns a floating-point result.
func Number(f float64) Result {
	return Result{shape: ShapeNumber, number: f}
}

// Tagged returns a result that labels inner.
func Tagged(label string, inner Result) Result {
	return Result{shape: ShapeTagged, text: label, inner: &inner}
}

// Shape returns the variant held by r.
func (r Result) Shape() Shape { return r.shape }

// IsNone reports whether r is the empty result.
func (r Result) IsNone() bool { return r.shape == ShapeNone }

// Append adds child to the end of a compound result. It fails with
// [pkg.ErrResultShape] if r is any other shape.
func (r *Result) Append(child Result) error {
	if r.shape != ShapeCompound {
		return pkg.ErrResultShape.Wrapf("append to %s", r.shape)
	}

	r.children = append(r.children, child)

	return nil
}

// Children returns the children of a compound result, or nil.
func (r Result) Children() []Result {
	if r.shape != ShapeCompound {
		return nil
	}

	return r.children
}

// Len returns the number of children of a compound result.
func (r Result) Len() int { return len(r.Children()) }

// Text returns the value of a string result.
func (r Result) Text() (string, bool) {
	return r.text, r.shape == ShapeString
}

// Integer returns the value of an integer result.
func (r Result) Integer() (uint64, bool) {
	return r.integer, r.shape == ShapeInteger
}

// Number returns the value of a number result.
func (r Result) Number() (float64, bool) {
	return r.number, r.shape == ShapeNumber
}

// Tag returns the label and inner result of a tagged result.
func (r Result) Tag() (string, Result, bool) {
	if r.shape != ShapeTagged {
		return "", Result{}, false
	}

	return r.text, *r.inner, true
}

// AsString renders r as text. Compound children are concatenated without
// separators, numbers use the shortest decimal form, and a tagged result is
// rendered as its label, a space, and its inner result.
//
// It fails with [pkg.ErrValue] if r or any result nested within it is None.
func (r Result) AsString() (string, error) {
	var sb strings.Builder

	if err := r.writeString(&sb); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func (r Result) writeString(sb *strings.Builder) error {
	switch r.shape {
	case ShapeCompound:
		for _, child := range r.children {
			if err := child.writeString(sb); err != nil {
				return err
			}
		}

	case ShapeString:
		sb.WriteString(r.text)

	case ShapeInteger:
		sb.WriteString(strconv.FormatUint(r.integer, 10))

	case ShapeNumber:
		sb.WriteString(strconv.FormatFloat(r.number, 'f', -1, 64))

	case ShapeTagged:
		sb.WriteString(r.text)
		sb.WriteByte(' ')

		return r.inner.writeString(sb)

	default:
		return pkg.ErrValue.Wrapf("render %s result", r.shape)
	}

	return nil
}

// Equal reports whether r and s hold the same variant and value, comparing
// children and tagged results recursively.
func (r Result) Equal(s Result) bool {
	if r.shape != s.shape {
		return false
	}

	switch r.shape {
	case ShapeCompound:
		return slices.EqualFunc(r.children, s.children, Result.Equal)
	case ShapeString:
		return r.text == s.text
	case ShapeInteger:
		return r.integer == s.integer
	case ShapeNumber:
		return r.number == s.number
	case ShapeTagged:
		return r.text == s.text && r.inner.Equal(*s.inner)
	default:
		return true
	}
}
