package filter

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/ars/kind"
	"github.com/ardnew/ars/pkg"
	"github.com/ardnew/ars/token"
)

var names = kind.NewTable("WS", "Let", "Ident", "Equal", "Number")

func sample() []token.Data {
	return []token.Data{
		{Kind: 1, Text: "let", Label: "let", Pos: token.Position{Line: 1, Column: 1}, Span: token.Span{Start: 0, End: 3}},
		{Kind: 0, Text: " ", Label: "whitespace", Pos: token.Position{Line: 1, Column: 4}, Span: token.Span{Start: 3, End: 4}},
		{Kind: 2, Text: "x", Label: "ident", Pos: token.Position{Line: 1, Column: 5}, Span: token.Span{Start: 4, End: 5}},
		{Kind: 0, Text: " ", Label: "whitespace", Pos: token.Position{Line: 1, Column: 6}, Span: token.Span{Start: 5, End: 6}},
		{Kind: 3, Text: "=", Label: "equal", Pos: token.Position{Line: 1, Column: 7}, Span: token.Span{Start: 6, End: 7}},
		{Kind: 0, Text: "\n", Label: "whitespace", Pos: token.Position{Line: 1, Column: 8}, Span: token.Span{Start: 7, End: 8}},
		{Kind: 4, Text: "10.5", Label: "number", Pos: token.Position{Line: 2, Column: 1}, Span: token.Span{Start: 8, End: 12}},
	}
}

func texts(tokens []token.Data) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Text)
	}

	return out
}

func TestFilter_Select(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{"by kind", "kind == 2", []string{"x"}},
		{"not whitespace", `label != "whitespace"`, []string{"let", "x", "=", "10.5"}},
		{"bare kind name", "kind == Number", []string{"10.5"}},
		{"kinds map", `kind in [kinds["Let"], kinds["Equal"]]`, []string{"let", "="}},
		{"line", "line > 1", []string{"10.5"}},
		{"span", "end - start > 1", []string{"let", "10.5"}},
		{"regex", `text matches "^[0-9]"`, []string{"10.5"}},
		{"none", "false", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.source, names)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.source, err)
			}

			got, err := f.Select(sample())
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}

			if diff := cmp.Diff(tt.want, texts(got)); diff != "" {
				t.Errorf("Select() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		names  *kind.Table
	}{
		{"syntax", "kind ==", names},
		{"not boolean", "kind + 1", names},
		{"unknown name", "kind == Bogus", names},
		{"kind names need table", "kind == Ident", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.source, tt.names)
			if !errors.Is(err, pkg.ErrFilter) {
				t.Errorf("Compile(%q) error = %v, want ErrFilter", tt.source, err)
			}
		})
	}
}

func TestFilter_String(t *testing.T) {
	f, err := Compile("kind == 0", nil)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	if f.String() != "kind == 0" {
		t.Errorf("String() = %q", f.String())
	}
}
