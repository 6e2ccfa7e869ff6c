package token

import (
	"strconv"

	"github.com/ardnew/ars/kind"
)

// Position is the 1-based line and column at which a token was produced.
type Position struct {
	Line   int `json:"line"   yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// String renders p as "line:column".
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Span is the half-open byte range [Start, End) a token occupies in its input.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end"   yaml:"end"`
}

// Len returns the number of bytes in s.
func (s Span) Len() int { return s.End - s.Start }

// Data is a single token produced by a lexer.
type Data struct {
	Kind  kind.Kind `json:"kind"  yaml:"kind"`
	Text  string    `json:"text"  yaml:"text"`
	Label string    `json:"label" yaml:"label"`
	Pos   Position  `json:"pos"   yaml:"pos"`
	Span  Span      `json:"span"  yaml:"span"`
}

// FromString returns a synthetic token of kind k whose text and label are
// both text and whose span covers all of it. It is useful for building token
// streams by hand.
func FromString(text string, k kind.Kind) Data {
	return Data{
		Kind:  k,
		Text:  text,
		Label: text,
		Pos:   Position{Line: 1, Column: 1},
		Span:  Span{Start: 0, End: len(text)},
	}
}

// Is reports whether d has one of the given kinds.
func (d Data) Is(kinds ...kind.Kind) bool {
	return kind.Set(kinds).Contains(d.Kind)
}

// String returns a one-line description of d.
func (d Data) String() string {
	return d.Label + "(" + d.Kind.String() + ") " + strconv.Quote(d.Text) +
		" at " + d.Pos.String()
}
