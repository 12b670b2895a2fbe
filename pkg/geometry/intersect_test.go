package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/jbeda/geom"
)

func TestCircleCircleIntersectionAbove(t *testing.T) {
	p1 := geom.Coord{X: 0, Y: 0}
	p2 := geom.Coord{X: 8, Y: 0}
	side := geom.Coord{X: 4, Y: 7}

	result, err := CircleCircleIntersection(p1, p2, 5, 5, side)
	if err != nil {
		t.Fatalf("CircleCircleIntersection failed: %v", err)
	}

	expected := geom.Coord{X: 4, Y: 3}
	if math.Abs(result.X-expected.X) > 1e-10 || math.Abs(result.Y-expected.Y) > 1e-10 {
		t.Errorf("CircleCircleIntersection failed: expected %v, got %v", expected, result)
	}
}

func TestCircleCircleIntersectionBelow(t *testing.T) {
	p1 := geom.Coord{X: 0, Y: 0}
	p2 := geom.Coord{X: 8, Y: 0}
	side := geom.Coord{X: 4, Y: -7}

	result, err := CircleCircleIntersection(p1, p2, 5, 5, side)
	if err != nil {
		t.Fatalf("CircleCircleIntersection failed: %v", err)
	}

	expected := geom.Coord{X: 4, Y: -3}
	if math.Abs(result.X-expected.X) > 1e-10 || math.Abs(result.Y-expected.Y) > 1e-10 {
		t.Errorf("CircleCircleIntersection failed: expected %v, got %v", expected, result)
	}
}

func TestCircleCircleIntersectionDistances(t *testing.T) {
	p1 := geom.Coord{X: 1, Y: 2}
	p2 := geom.Coord{X: 5, Y: -1}
	side := geom.Coord{X: 3, Y: 8}

	result, err := CircleCircleIntersection(p1, p2, 4, 3.5, side)
	if err != nil {
		t.Fatalf("CircleCircleIntersection failed: %v", err)
	}

	if math.Abs(result.DistanceFrom(p1)-4) > 1e-10 {
		t.Errorf("CircleCircleIntersection failed: distance to p1 expected 4, got %v", result.DistanceFrom(p1))
	}
	if math.Abs(result.DistanceFrom(p2)-3.5) > 1e-10 {
		t.Errorf("CircleCircleIntersection failed: distance to p2 expected 3.5, got %v", result.DistanceFrom(p2))
	}
}

func TestCircleCircleIntersectionTangent(t *testing.T) {
	p1 := geom.Coord{X: 0, Y: 0}
	p2 := geom.Coord{X: 5, Y: 0}
	side := geom.Coord{X: 2, Y: 3}

	result, err := CircleCircleIntersection(p1, p2, 2, 3, side)
	if err != nil {
		t.Fatalf("CircleCircleIntersection failed: %v", err)
	}

	expected := geom.Coord{X: 2, Y: 0}
	if math.Abs(result.X-expected.X) > 1e-10 || math.Abs(result.Y-expected.Y) > 1e-10 {
		t.Errorf("CircleCircleIntersection failed: expected %v, got %v", expected, result)
	}
}

func TestCircleCircleIntersectionNoSolution(t *testing.T) {
	p1 := geom.Coord{X: 0, Y: 0}
	p2 := geom.Coord{X: 10, Y: 0}

	_, err := CircleCircleIntersection(p1, p2, 1, 1, geom.Coord{X: 5, Y: 5})
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("CircleCircleIntersection failed: expected ErrDegenerate, got %v", err)
	}
}

func TestCircleCircleIntersectionContained(t *testing.T) {
	p1 := geom.Coord{X: 0, Y: 0}
	p2 := geom.Coord{X: 1, Y: 0}

	_, err := CircleCircleIntersection(p1, p2, 10, 2, geom.Coord{X: 0, Y: 5})
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("CircleCircleIntersection failed: expected ErrDegenerate, got %v", err)
	}
}

func TestCircleCircleIntersectionCoincidentCenters(t *testing.T) {
	p := geom.Coord{X: 2, Y: 2}

	_, err := CircleCircleIntersection(p, p, 3, 3, geom.Coord{X: 0, Y: 5})
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("CircleCircleIntersection failed: expected ErrDegenerate, got %v", err)
	}
}
