package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/jbeda/geom"
)

func TestLineReflectAcrossXAxis(t *testing.T) {
	line := NewLine(0, 1, 0)
	p := geom.Coord{X: 3, Y: 4}

	result := line.Reflect(p)

	expected := geom.Coord{X: 3, Y: -4}
	if math.Abs(result.X-expected.X) > 1e-10 || math.Abs(result.Y-expected.Y) > 1e-10 {
		t.Errorf("Reflect failed: expected %v, got %v", expected, result)
	}
}

func TestLineReflectAcrossDiagonal(t *testing.T) {
	line := NewLine(1, -1, 0)
	p := geom.Coord{X: 3, Y: 4}

	result := line.Reflect(p)

	expected := geom.Coord{X: 4, Y: 3}
	if math.Abs(result.X-expected.X) > 1e-10 || math.Abs(result.Y-expected.Y) > 1e-10 {
		t.Errorf("Reflect failed: expected %v, got %v", expected, result)
	}
}

func TestLineReflectTwiceIsIdentity(t *testing.T) {
	line := NewLine(2, -3, 7)
	p := geom.Coord{X: -1.5, Y: 6.25}

	result := line.Reflect(line.Reflect(p))

	if math.Abs(result.X-p.X) > 1e-10 || math.Abs(result.Y-p.Y) > 1e-10 {
		t.Errorf("Reflect twice failed: expected %v, got %v", p, result)
	}
}

func TestLineReflectPointOnLine(t *testing.T) {
	p := geom.Coord{X: 2, Y: 2}
	line := NewLine(1, -1, 0)

	result := line.Reflect(p)

	if math.Abs(result.X-p.X) > 1e-10 || math.Abs(result.Y-p.Y) > 1e-10 {
		t.Errorf("Reflect on-line point failed: expected %v, got %v", p, result)
	}
}

func TestLineValidate(t *testing.T) {
	if err := NewLine(1, 2, 3).Validate(); err != nil {
		t.Errorf("Validate failed for a proper line: %v", err)
	}

	err := NewLine(0, 0, 5).Validate()
	if !errors.Is(err, ErrDegenerateLine) {
		t.Errorf("Validate failed: expected ErrDegenerateLine, got %v", err)
	}
}

func TestLineThrough(t *testing.T) {
	p := geom.Coord{X: 1, Y: 2}
	q := geom.Coord{X: 4, Y: 6}

	line := LineThrough(p, q)

	if math.Abs(line.Eval(p)) > 1e-10 {
		t.Errorf("LineThrough failed: first point not on line, eval %v", line.Eval(p))
	}
	if math.Abs(line.Eval(q)) > 1e-10 {
		t.Errorf("LineThrough failed: second point not on line, eval %v", line.Eval(q))
	}
}

func TestLineThroughReflectKeepsEndpoints(t *testing.T) {
	p := geom.Coord{X: 0, Y: 0}
	q := geom.Coord{X: 5, Y: 5}
	line := LineThrough(p, q)

	rp := line.Reflect(p)
	rq := line.Reflect(q)

	if math.Abs(rp.X-p.X) > 1e-10 || math.Abs(rp.Y-p.Y) > 1e-10 {
		t.Errorf("Reflect failed: line endpoint moved from %v to %v", p, rp)
	}
	if math.Abs(rq.X-q.X) > 1e-10 || math.Abs(rq.Y-q.Y) > 1e-10 {
		t.Errorf("Reflect failed: line endpoint moved from %v to %v", q, rq)
	}
}
