package ast

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/ars/pkg"
)

func sampleTree() *Node {
	return New(0, "Let", None).AddChild(
		New(1, "Keyword", String("let")),
		New(2, "Ident", String("x")),
		New(3, "Equal", String("=")),
		New(4, "Number", String("10.5")),
	)
}

func TestNode_AddChild_PreservesOrder(t *testing.T) {
	root := sampleTree()

	var got []string
	for _, child := range root.Children {
		got = append(got, child.Label)
	}

	want := []string{"Keyword", "Ident", "Equal", "Number"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
}

func TestNode_AddChild_IgnoresNil(t *testing.T) {
	root := New(0, "root", None).AddChild(nil, New(1, "a", None), nil)

	if root.Len() != 1 {
		t.Errorf("expected 1 child, got %d", root.Len())
	}
}

func TestNode_ValueString(t *testing.T) {
	tests := []struct {
		name    string
		node    *Node
		want    string
		wantErr bool
	}{
		{"string value", New(2, "Ident", String("x")), "x", false},
		{"empty string is a value", New(2, "Ident", String("")), "", false},
		{"none value", New(0, "Group", None), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.node.ValueString()
			if tt.wantErr {
				if !errors.Is(err, pkg.ErrValue) {
					t.Fatalf("expected ErrValue, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("ValueString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNode_ValueString_ErrorNamesNode(t *testing.T) {
	_, err := New(5, "Block", None).ValueString()
	if err == nil || !strings.Contains(err.Error(), "Block(5)") {
		t.Errorf("expected error naming Block(5), got %v", err)
	}
}

func TestNode_Child(t *testing.T) {
	root := sampleTree()

	if c := root.Child(1); c == nil || c.Label != "Ident" {
		t.Errorf("Child(1) = %v", c)
	}

	if root.Child(-1) != nil || root.Child(4) != nil {
		t.Error("expected nil for out-of-range children")
	}
}

func TestNode_All_PreOrder(t *testing.T) {
	root := New(0, "a", None).AddChild(
		New(0, "b", None).AddChild(New(0, "c", None)),
		New(0, "d", None),
	)

	var got []string
	for n := range root.All() {
		got = append(got, n.Label)
	}

	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, got); diff != "" {
		t.Errorf("pre-order mismatch (-want +got):\n%s", diff)
	}

	count := 0
	for range root.All() {
		count++
		if count == 2 {
			break
		}
	}

	if count != 2 {
		t.Errorf("iteration did not stop early, count = %d", count)
	}
}

func TestNode_FormatJSON_RoundTrip(t *testing.T) {
	var buf bytes.Buffer

	if err := sampleTree().FormatJSON(context.Background(), &buf, 2); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var got Node
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	if diff := cmp.Diff(sampleTree(), &got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	if !strings.Contains(buf.String(), `"value": null`) {
		t.Errorf("expected None to encode as null:\n%s", buf.String())
	}
}

func TestNode_FormatYAML(t *testing.T) {
	var buf bytes.Buffer

	if err := sampleTree().FormatYAML(context.Background(), &buf, 2); err != nil {
		t.Fatalf("FormatYAML: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"label: Let", "10.5", "children:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected YAML to contain %q:\n%s", want, out)
		}
	}
}

func TestValue_GoString(t *testing.T) {
	if got := None.GoString(); got != "ast.None" {
		t.Errorf("None.GoString() = %q", got)
	}

	if got := String("x").GoString(); got != `ast.String("x")` {
		t.Errorf("String(x).GoString() = %q", got)
	}
}
