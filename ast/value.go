package ast

import (
	"encoding/json"
	"strconv"
)

// Value is the optional scalar text of a node. The zero Value is [None].
type Value struct {
	text string
	set  bool
}

// None is the value of purely structural nodes.
var None = Value{}

// String returns a Value holding text.
func String(text string) Value {
	return Value{text: text, set: true}
}

// IsNone reports whether v holds no text.
func (v Value) IsNone() bool { return !v.set }

// Text returns the scalar text and whether v holds any.
func (v Value) Text() (string, bool) { return v.text, v.set }

// GoString renders v for debugging, e.g. in %#v output and test diffs.
func (v Value) GoString() string {
	if !v.set {
		return "ast.None"
	}

	return "ast.String(" + strconv.Quote(v.text) + ")"
}

// MarshalJSON encodes v as a JSON string, or null when v is None.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}

	return json.Marshal(v.text)
}

// UnmarshalJSON decodes a JSON string or null into v.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = None

		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}

	*v = String(text)

	return nil
}

// Equal reports whether v and w hold the same text, or are both None.
func (v Value) Equal(w Value) bool { return v == w }
