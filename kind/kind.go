package kind

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Kind is the numeric tag of a token pattern, token, or syntax tree node.
type Kind uint32

// String returns the decimal representation of k.
func (k Kind) String() string {
	return strconv.FormatUint(uint64(k), 10)
}

// Set is an ordered collection of kinds. Order is preserved for diagnostics
// only; membership does not depend on it.
type Set []Kind

// Of returns a Set containing the given kinds in order.
func Of(kinds ...Kind) Set {
	return Set(kinds)
}

// Contains reports whether k is a member of s.
func (s Set) Contains(k Kind) bool {
	return slices.Contains(s, k)
}

// String renders s as a bracketed list, e.g. "[1 2 3]".
func (s Set) String() string {
	var sb strings.Builder

	sb.WriteByte('[')

	for i, k := range s {
		if i > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(k.String())
	}

	sb.WriteByte(']')

	return sb.String()
}

// Table assigns dense kinds, starting at zero, to an ordered list of names.
// A Table is immutable once constructed and safe for concurrent use.
type Table struct {
	names []string
	index map[string]Kind
}

// NewTable returns a Table naming kinds 0 through len(names)-1. A name that
// repeats keeps the kind of its first occurrence for lookups by name.
func NewTable(names ...string) *Table {
	t := &Table{
		names: slices.Clone(names),
		index: make(map[string]Kind, len(names)),
	}

	for i, name := range names {
		if _, ok := t.index[name]; !ok {
			t.index[name] = Kind(i)
		}
	}

	return t
}

// Len returns the number of kinds in t.
func (t *Table) Len() int { return len(t.names) }

// Kind returns the kind assigned to name.
func (t *Table) Kind(name string) (Kind, bool) {
	k, ok := t.index[name]

	return k, ok
}

// MustKind is like [Table.Kind] but panics when name is not in t. It is meant
// for package-level grammar declarations.
func (t *Table) MustKind(name string) Kind {
	k, ok := t.Kind(name)
	if !ok {
		panic("kind: unknown name " + strconv.Quote(name))
	}

	return k
}

// Name returns the name assigned to k, or the empty string if k is outside
// the table.
func (t *Table) Name(k Kind) string {
	if int(k) >= len(t.names) {
		return ""
	}

	return t.names[k]
}

// Format renders k as "Name(k)", or just the number when k has no name.
func (t *Table) Format(k Kind) string {
	name := t.Name(k)
	if name == "" {
		return k.String()
	}

	return name + "(" + k.String() + ")"
}

// All returns an iterator over every kind in t paired with its name.
func (t *Table) All() iter.Seq2[Kind, string] {
	return func(yield func(Kind, string) bool) {
		for i, name := range t.names {
			if !yield(Kind(i), name) {
				return
			}
		}
	}
}
