package triangle

import (
	"errors"
	"math"
	"testing"

	"github.com/jbeda/geom"
	"github.com/philipparndt/gotri/pkg/geometry"
)

func TestTriangleConstructors(t *testing.T) {
	builds := map[string]func() (*Triangle, error){
		"New":     func() (*Triangle, error) { return New("ABC") },
		"FromSSS": func() (*Triangle, error) { return FromSSS(3, 4, 5, "ABC") },
		"FromSAS": func() (*Triangle, error) { return FromSAS(3, 60, 4, "ABC") },
		"FromASA": func() (*Triangle, error) { return FromASA(50, 8, 70, "ABC") },
		"FromAAS": func() (*Triangle, error) { return FromAAS(50, 70, 8, "ABC") },
		"FromHL":  func() (*Triangle, error) { return FromHL(13, 5, "ABC") },
	}

	for name, build := range builds {
		tri, err := build()
		if err != nil {
			t.Fatalf("%s failed: %v", name, err)
		}
		if err := tri.VertexSet().Validate(); err != nil {
			t.Errorf("%s failed: %v", name, err)
		}
	}
}

func TestTriangleConstructorErrors(t *testing.T) {
	if _, err := FromSSS(1, 1, 3, "ABC"); !errors.Is(err, geometry.ErrDegenerate) {
		t.Errorf("FromSSS failed: expected ErrDegenerate, got %v", err)
	}
	if _, err := FromHL(5, 5, "ABC"); !errors.Is(err, geometry.ErrInvalidLength) {
		t.Errorf("FromHL failed: expected ErrInvalidLength, got %v", err)
	}
	if _, err := New("AB"); !errors.Is(err, ErrMalformedName) {
		t.Errorf("New failed: expected ErrMalformedName, got %v", err)
	}
}

func TestTriangleSetSideLength(t *testing.T) {
	tri, err := FromSSS(3, 4, 5, "ABC")
	if err != nil {
		t.Fatalf("FromSSS failed: %v", err)
	}

	if err := tri.SetSideLength("a", 6); err != nil {
		t.Fatalf("SetSideLength failed: %v", err)
	}

	length, err := tri.SideLength("a")
	if err != nil {
		t.Fatalf("SideLength failed: %v", err)
	}
	if math.Abs(length-6) > 1e-9 {
		t.Errorf("SetSideLength failed: expected 6, got %v", length)
	}
}

func TestTriangleSetSideLengthsAtomic(t *testing.T) {
	tri, err := FromSSS(3, 4, 5, "ABC")
	if err != nil {
		t.Fatalf("FromSSS failed: %v", err)
	}
	before := tri.VertexSet()

	err = tri.SetSideLengths(map[string]float64{"a": 100})
	if !errors.Is(err, geometry.ErrDegenerate) {
		t.Errorf("SetSideLengths failed: expected ErrDegenerate, got %v", err)
	}
	if tri.VertexSet() != before {
		t.Errorf("SetSideLengths failed: triangle changed on error")
	}

	err = tri.SetSideLengths(map[string]float64{"a": 4, "BC": 5})
	if !errors.Is(err, ErrConflictingConstraint) {
		t.Errorf("SetSideLengths failed: expected ErrConflictingConstraint, got %v", err)
	}
	if tri.VertexSet() != before {
		t.Errorf("SetSideLengths failed: triangle changed on error")
	}
}

func TestTriangleTranslate(t *testing.T) {
	tri, err := FromSSS(3, 4, 5, "ABC")
	if err != nil {
		t.Fatalf("FromSSS failed: %v", err)
	}
	before := tri.VertexSet()

	tri.Translate(2, 3)

	after := tri.VertexSet()
	for i := range after {
		if math.Abs(after[i].X-before[i].X-2) > 1e-9 || math.Abs(after[i].Y-before[i].Y-3) > 1e-9 {
			t.Errorf("Translate failed for %s: expected offset (2, 3), got %v", before[i].Name, after[i].Coord)
		}
	}
}

func TestTriangleTranslatePoint(t *testing.T) {
	tri, err := FromSSS(3, 4, 5, "ABC")
	if err != nil {
		t.Fatalf("FromSSS failed: %v", err)
	}
	before := tri.VertexSet()

	if err := tri.TranslatePoint("C", 1, -1); err != nil {
		t.Fatalf("TranslatePoint failed: %v", err)
	}
	after := tri.VertexSet()
	expected := before[2].Coord.Plus(geom.Coord{X: 1, Y: -1})
	if !almostEqual(after[2].Coord, expected) {
		t.Errorf("TranslatePoint failed: expected %v, got %v", expected, after[2].Coord)
	}

	if err := tri.TranslatePoint("D", 1, 1); !errors.Is(err, ErrUnknownVertex) {
		t.Errorf("TranslatePoint failed: expected ErrUnknownVertex, got %v", err)
	}
}

func TestTriangleRigidMotionIdentities(t *testing.T) {
	tri, err := FromSSS(3, 4, 5, "ABC")
	if err != nil {
		t.Fatalf("FromSSS failed: %v", err)
	}
	before := tri.VertexSet()

	tri.Rotate(360)
	tri.Scale(1)
	line := geometry.NewLine(2, -1, 4)
	if err := tri.Reflect(line); err != nil {
		t.Fatalf("Reflect failed: %v", err)
	}
	if err := tri.Reflect(line); err != nil {
		t.Fatalf("Reflect failed: %v", err)
	}

	after := tri.VertexSet()
	for i := range after {
		if !almostEqual(after[i].Coord, before[i].Coord) {
			t.Errorf("identity chain failed for %s: expected %v, got %v", before[i].Name, before[i].Coord, after[i].Coord)
		}
	}
}

func TestTriangleCopy(t *testing.T) {
	tri, err := FromSSS(3, 4, 5, "ABC")
	if err != nil {
		t.Fatalf("FromSSS failed: %v", err)
	}

	dup := tri.Copy()

	original := tri.VertexSet()
	copied := dup.VertexSet()
	for i := range copied {
		if math.Abs(copied[i].X-original[i].X-copyOffset) > 1e-9 || math.Abs(copied[i].Y-original[i].Y-copyOffset) > 1e-9 {
			t.Errorf("Copy failed for %s: expected offset (%v, %v), got %v", original[i].Name, copyOffset, copyOffset, copied[i].Coord)
		}
	}

	// The copy is independent of the original
	if err := dup.SetSideLength("a", 6); err != nil {
		t.Fatalf("SetSideLength failed: %v", err)
	}
	length, _ := tri.SideLength("a")
	if math.Abs(length-3) > 1e-9 {
		t.Errorf("Copy failed: original changed to %v", length)
	}
}

func TestTriangleCentroid(t *testing.T) {
	tri, err := FromSSS(3, 4, 5, "ABC")
	if err != nil {
		t.Fatalf("FromSSS failed: %v", err)
	}

	vs := tri.VertexSet()
	expected := vs.Centroid()
	if !almostEqual(tri.Centroid(), expected) {
		t.Errorf("Centroid failed: expected %v, got %v", expected, tri.Centroid())
	}
}
