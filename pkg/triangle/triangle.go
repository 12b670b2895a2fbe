package triangle

import (
	"github.com/jbeda/geom"
	"github.com/philipparndt/gotri/pkg/geometry"
)

// copyOffset is the translation applied by Copy so the duplicate does
// not sit on top of the original.
const copyOffset = 10.0

// Triangle owns a vertex set and applies operations to it atomically: a
// mutator either commits a fully validated new set or leaves the current
// one untouched. A Triangle is not safe for concurrent use.
type Triangle struct {
	vs VertexSet
}

// New creates a triangle with the default equilateral placement and the
// vertex names split from name.
func New(name string) (*Triangle, error) {
	vs, err := NewVertexSet(name)
	if err != nil {
		return nil, err
	}
	return &Triangle{vs: vs}, nil
}

// FromSSS creates a triangle from its three side lengths.
func FromSSS(a, b, c float64, name string) (*Triangle, error) {
	vs, err := SSS(a, b, c, name)
	if err != nil {
		return nil, err
	}
	return &Triangle{vs: vs}, nil
}

// FromSAS creates a triangle from two sides and the included angle at
// the first vertex.
func FromSAS(b, angleA, c float64, name string) (*Triangle, error) {
	vs, err := SAS(b, angleA, c, name)
	if err != nil {
		return nil, err
	}
	return &Triangle{vs: vs}, nil
}

// FromASA creates a triangle from two angles and the side between them.
func FromASA(angleB, a, angleC float64, name string) (*Triangle, error) {
	vs, err := ASA(angleB, a, angleC, name)
	if err != nil {
		return nil, err
	}
	return &Triangle{vs: vs}, nil
}

// FromAAS creates a triangle from two angles and the side opposite the
// first.
func FromAAS(angleA, angleB, a float64, name string) (*Triangle, error) {
	vs, err := AAS(angleA, angleB, a, name)
	if err != nil {
		return nil, err
	}
	return &Triangle{vs: vs}, nil
}

// FromHL creates a right triangle from its hypotenuse and one leg.
func FromHL(hypotenuse, leg float64, name string) (*Triangle, error) {
	vs, err := HL(hypotenuse, leg, name)
	if err != nil {
		return nil, err
	}
	return &Triangle{vs: vs}, nil
}

// VertexSet returns a copy of the current vertex set.
func (t *Triangle) VertexSet() VertexSet {
	return t.vs
}

// SideLength returns the length of the side named by token.
func (t *Triangle) SideLength(token string) (float64, error) {
	return t.vs.SideLength(token)
}

// Centroid returns the centroid of the triangle.
func (t *Triangle) Centroid() geom.Coord {
	return t.vs.Centroid()
}

// Translate moves the whole triangle by the given offsets.
func (t *Triangle) Translate(dx, dy float64) {
	t.vs = t.vs.Translated(dx, dy)
}

// TranslatePoint moves the named vertex by the given offsets.
func (t *Triangle) TranslatePoint(name string, dx, dy float64) error {
	vs, err := t.vs.PointTranslated(name, dx, dy)
	if err != nil {
		return err
	}
	t.vs = vs
	return nil
}

// Rotate turns the triangle about its centroid, clockwise for positive
// degrees.
func (t *Triangle) Rotate(degrees float64) {
	t.vs = t.vs.Rotated(degrees)
}

// Scale moves every vertex along its offset from the centroid by the
// given factor.
func (t *Triangle) Scale(factor float64) {
	t.vs = t.vs.Scaled(factor)
}

// Reflect mirrors the triangle across the given line.
func (t *Triangle) Reflect(line geometry.Line) error {
	vs, err := t.vs.Reflected(line)
	if err != nil {
		return err
	}
	t.vs = vs
	return nil
}

// SetSideLength assigns a new length to a single side.
func (t *Triangle) SetSideLength(token string, length float64) error {
	return t.SetSideLengths(map[string]float64{token: length})
}

// SetSideLengths assigns new lengths to one, two or three sides in a
// single resolution step.
func (t *Triangle) SetSideLengths(changes map[string]float64) error {
	vs, err := t.vs.WithSideLengths(changes)
	if err != nil {
		return err
	}
	t.vs = vs
	return nil
}

// Copy returns a new triangle with the same names and geometry, offset
// so it does not overlap the original.
func (t *Triangle) Copy() *Triangle {
	return &Triangle{vs: t.vs.Translated(copyOffset, copyOffset)}
}
