package geometry

import (
	"fmt"

	"github.com/jbeda/geom"
)

// Line is the line ax + by + c = 0
type Line struct {
	A, B, C float64
}

// NewLine creates a line from its implicit-form coefficients
func NewLine(a, b, c float64) Line {
	return Line{A: a, B: b, C: c}
}

// LineThrough returns the implicit-form line through two points
func LineThrough(p, q geom.Coord) Line {
	return Line{
		A: q.Y - p.Y,
		B: p.X - q.X,
		C: q.X*p.Y - p.X*q.Y,
	}
}

// Validate reports whether the line is usable as a reflection axis
func (l Line) Validate() error {
	if l.A == 0 && l.B == 0 {
		return fmt.Errorf("%w: coefficients a and b are both zero", ErrDegenerateLine)
	}
	return nil
}

// Eval returns the signed value ax + by + c at a position
func (l Line) Eval(p geom.Coord) float64 {
	return l.A*p.X + l.B*p.Y + l.C
}

// Reflect mirrors a position across the line. The caller must check
// Validate first; a degenerate line divides by zero here.
func (l Line) Reflect(p geom.Coord) geom.Coord {
	d := l.Eval(p) / (l.A*l.A + l.B*l.B)
	return geom.Coord{
		X: p.X - 2*l.A*d,
		Y: p.Y - 2*l.B*d,
	}
}
