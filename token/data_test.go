package token

import "testing"

func TestFromString(t *testing.T) {
	d := FromString("let", 7)

	if d.Kind != 7 || d.Text != "let" || d.Label != "let" {
		t.Errorf("unexpected token: %+v", d)
	}

	if d.Span != (Span{Start: 0, End: 3}) {
		t.Errorf("unexpected span: %+v", d.Span)
	}

	if d.Span.Len() != 3 {
		t.Errorf("Span.Len() = %d, want 3", d.Span.Len())
	}
}

func TestData_Is(t *testing.T) {
	d := FromString("x", 2)

	if !d.Is(1, 2) {
		t.Error("expected kind 2 to be in {1, 2}")
	}

	if d.Is(3) || d.Is() {
		t.Error("expected kind 2 to be absent from {3} and {}")
	}
}

func TestData_String(t *testing.T) {
	d := Data{Kind: 4, Text: "10.5", Label: "number", Pos: Position{Line: 2, Column: 9}}

	want := `number(4) "10.5" at 2:9`
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
