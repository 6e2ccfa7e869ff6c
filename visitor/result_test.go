package visitor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/ars/pkg"
)

func TestResult_AsString(t *testing.T) {
	tests := []struct {
		name    string
		result  Result
		want    string
		wantErr error
	}{
		{"string", String("abc"), "abc", nil},
		{"integer", Integer(42), "42", nil},
		{"number", Number(10.5), "10.5", nil},
		{"whole number", Number(3), "3", nil},
		{"empty compound", Compound(), "", nil},
		{
			name:   "compound concatenates",
			result: Compound(String("imm "), Integer(1), String(", "), Number(2.25)),
			want:   "imm 1, 2.25",
		},
		{"tagged", Tagged("reg", String("%a")), "reg %a", nil},
		{
			name:   "nested tagged compound",
			result: Tagged("op", Compound(String("x"), Tagged("n", Integer(7)))),
			want:   "op xn 7",
		},
		{"none", None(), "", pkg.ErrValue},
		{"none in compound", Compound(String("x"), None()), "", pkg.ErrValue},
		{"none in tagged", Tagged("t", None()), "", pkg.ErrValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.result.AsString()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AsString() error = %v, want %v", err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("AsString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResult_Append(t *testing.T) {
	r := Compound(String("a"))

	if err := r.Append(Integer(1)); err != nil {
		t.Fatalf("Append() to compound error = %v", err)
	}

	want := Compound(String("a"), Integer(1))
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("Append() mismatch (-want +got):\n%s", diff)
	}

	for _, scalar := range []Result{None(), String("s"), Integer(1), Number(1), Tagged("t", None())} {
		t.Run(scalar.Shape().String(), func(t *testing.T) {
			before := scalar

			err := scalar.Append(String("child"))
			if !errors.Is(err, pkg.ErrResultShape) {
				t.Errorf("Append() error = %v, want ErrResultShape", err)
			}

			if !scalar.Equal(before) {
				t.Errorf("Append() modified a %s result", scalar.Shape())
			}
		})
	}
}

func TestResult_Compound_CopiesChildren(t *testing.T) {
	children := []Result{String("a"), String("b")}
	r := Compound(children...)
	children[0] = String("z")

	if got, _ := r.Children()[0].Text(); got != "a" {
		t.Errorf("Children()[0] = %q after caller mutation, want %q", got, "a")
	}
}

func TestResult_Accessors(t *testing.T) {
	if s, ok := String("x").Text(); !ok || s != "x" {
		t.Errorf("Text() = %q, %v", s, ok)
	}

	if _, ok := Integer(1).Text(); ok {
		t.Error("Text() on integer reported ok")
	}

	if n, ok := Integer(9).Integer(); !ok || n != 9 {
		t.Errorf("Integer() = %d, %v", n, ok)
	}

	if f, ok := Number(0.5).Number(); !ok || f != 0.5 {
		t.Errorf("Number() = %v, %v", f, ok)
	}

	label, inner, ok := Tagged("t", Integer(3)).Tag()
	if !ok || label != "t" || !inner.Equal(Integer(3)) {
		t.Errorf("Tag() = %q, %v, %v", label, inner, ok)
	}

	if !None().IsNone() || !(Result{}).IsNone() {
		t.Error("zero Result is not None")
	}

	if String("x").Children() != nil || String("x").Len() != 0 {
		t.Error("scalar result reports children")
	}
}

func TestResult_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Result
		want bool
	}{
		{"none", None(), None(), true},
		{"shape differs", String("1"), Integer(1), false},
		{"string", String("a"), String("a"), true},
		{"string differs", String("a"), String("b"), false},
		{"compound", Compound(Integer(1)), Compound(Integer(1)), true},
		{"compound length", Compound(Integer(1)), Compound(), false},
		{"tagged label", Tagged("a", None()), Tagged("b", None()), false},
		{"tagged inner", Tagged("a", Integer(1)), Tagged("a", Integer(2)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}
