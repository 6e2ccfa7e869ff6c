package kind

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSet_Contains(t *testing.T) {
	s := Of(1, 3, 5)

	tests := []struct {
		name string
		k    Kind
		want bool
	}{
		{"first", 1, true},
		{"last", 5, true},
		{"missing", 2, false},
		{"zero", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Contains(tt.k); got != tt.want {
				t.Errorf("Contains(%d) = %v, want %v", tt.k, got, tt.want)
			}
		})
	}
}

func TestSet_String(t *testing.T) {
	tests := []struct {
		set  Set
		want string
	}{
		{nil, "[]"},
		{Of(7), "[7]"},
		{Of(4, 2, 9), "[4 2 9]"},
	}

	for _, tt := range tests {
		if got := tt.set.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTable_NumbersNamesDensely(t *testing.T) {
	table := NewTable("Whitespace", "Let", "Ident")

	if table.Len() != 3 {
		t.Fatalf("expected 3 kinds, got %d", table.Len())
	}

	for want, name := range []string{"Whitespace", "Let", "Ident"} {
		got, ok := table.Kind(name)
		if !ok {
			t.Fatalf("kind %q not found", name)
		}

		if got != Kind(want) {
			t.Errorf("Kind(%q) = %d, want %d", name, got, want)
		}
	}

	if _, ok := table.Kind("Number"); ok {
		t.Error("expected unknown name to be absent")
	}
}

func TestTable_Format(t *testing.T) {
	table := NewTable("Register", "Constant")

	if got := table.Format(1); got != "Constant(1)" {
		t.Errorf("Format(1) = %q", got)
	}

	if got := table.Format(9); got != "9" {
		t.Errorf("Format(9) = %q", got)
	}

	if got := table.Name(9); got != "" {
		t.Errorf("Name(9) = %q, want empty", got)
	}
}

func TestTable_DuplicateNameKeepsFirst(t *testing.T) {
	table := NewTable("a", "b", "a")

	if k := table.MustKind("a"); k != 0 {
		t.Errorf("MustKind(a) = %d, want 0", k)
	}

	if name := table.Name(2); name != "a" {
		t.Errorf("Name(2) = %q, want a", name)
	}
}

func TestTable_MustKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown name")
		}
	}()

	NewTable("x").MustKind("y")
}

func TestTable_All(t *testing.T) {
	table := NewTable("x", "y", "z")

	var got []string
	for k, name := range table.All() {
		got = append(got, name+"("+k.String()+")")
	}

	want := []string{"x(0)", "y(1)", "z(2)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}
