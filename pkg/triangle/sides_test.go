package triangle

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/gotri/pkg/geometry"
)

func TestResolveSideOppositeForm(t *testing.T) {
	vs, err := NewVertexSet("ABC")
	if err != nil {
		t.Fatalf("NewVertexSet failed: %v", err)
	}

	for i, token := range []string{"a", "b", "c"} {
		k, err := vs.ResolveSide(token)
		if err != nil {
			t.Fatalf("ResolveSide failed for %q: %v", token, err)
		}
		if k != i {
			t.Errorf("ResolveSide failed for %q: expected %d, got %d", token, i, k)
		}
	}
}

func TestResolveSideEndpointForm(t *testing.T) {
	vs, err := NewVertexSet("ABC")
	if err != nil {
		t.Fatalf("NewVertexSet failed: %v", err)
	}

	cases := []struct {
		token    string
		expected int
	}{
		{"BC", 0},
		{"CB", 0},
		{"CA", 1},
		{"AC", 1},
		{"AB", 2},
		{"BA", 2},
	}

	for _, c := range cases {
		k, err := vs.ResolveSide(c.token)
		if err != nil {
			t.Fatalf("ResolveSide failed for %q: %v", c.token, err)
		}
		if k != c.expected {
			t.Errorf("ResolveSide failed for %q: expected %d, got %d", c.token, c.expected, k)
		}
	}
}

func TestResolveSideDecoratedNames(t *testing.T) {
	vs, err := NewVertexSet("X1Y2Z3")
	if err != nil {
		t.Fatalf("NewVertexSet failed: %v", err)
	}

	k, err := vs.ResolveSide("y2")
	if err != nil {
		t.Fatalf("ResolveSide failed for opposite form: %v", err)
	}
	if k != 1 {
		t.Errorf("ResolveSide failed for y2: expected 1, got %d", k)
	}

	k, err = vs.ResolveSide("X1Z3")
	if err != nil {
		t.Fatalf("ResolveSide failed for endpoint form: %v", err)
	}
	if k != 1 {
		t.Errorf("ResolveSide failed for X1Z3: expected 1, got %d", k)
	}
}

func TestResolveSideUnknownVertex(t *testing.T) {
	vs, err := NewVertexSet("ABC")
	if err != nil {
		t.Fatalf("NewVertexSet failed: %v", err)
	}

	for _, token := range []string{"d", "xy", "AD", "DA", "DE"} {
		_, err := vs.ResolveSide(token)
		if !errors.Is(err, ErrUnknownVertex) {
			t.Errorf("ResolveSide failed for %q: expected ErrUnknownVertex, got %v", token, err)
		}
	}
}

func TestResolveSideMalformed(t *testing.T) {
	vs, err := NewVertexSet("ABC")
	if err != nil {
		t.Fatalf("NewVertexSet failed: %v", err)
	}

	for _, token := range []string{"", "A", "AA", "ABC", "Ax", "A-B"} {
		_, err := vs.ResolveSide(token)
		if !errors.Is(err, ErrMalformedSideName) {
			t.Errorf("ResolveSide failed for %q: expected ErrMalformedSideName, got %v", token, err)
		}
	}
}

func TestSideName(t *testing.T) {
	vs, err := NewVertexSet("ABC")
	if err != nil {
		t.Fatalf("NewVertexSet failed: %v", err)
	}

	for i, expected := range []string{"BC", "CA", "AB"} {
		if name := vs.SideName(i); name != expected {
			t.Errorf("SideName failed for %d: expected %s, got %s", i, expected, name)
		}
	}
}

func TestSideLength(t *testing.T) {
	vs := VertexSet{
		geometry.NewPoint("A", 0, 0),
		geometry.NewPoint("B", 3, 0),
		geometry.NewPoint("C", 0, 4),
	}

	cases := []struct {
		token    string
		expected float64
	}{
		{"a", 5},
		{"b", 4},
		{"c", 3},
		{"BC", 5},
		{"CA", 4},
		{"AB", 3},
	}

	for _, c := range cases {
		length, err := vs.SideLength(c.token)
		if err != nil {
			t.Fatalf("SideLength failed for %q: %v", c.token, err)
		}
		if math.Abs(length-c.expected) > 1e-10 {
			t.Errorf("SideLength failed for %q: expected %v, got %v", c.token, c.expected, length)
		}
	}
}
