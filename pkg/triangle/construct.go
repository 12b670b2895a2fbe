package triangle

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
	"github.com/philipparndt/gotri/pkg/geometry"
)

const (
	// defaultSide is the edge length of the default equilateral placement.
	defaultSide = 5.0

	// layoutMargin keeps finished sets away from the axes: constructors
	// translate their result so the minimum x and y both equal it.
	layoutMargin = 10.0
)

// defaultPlacement returns the counterclockwise equilateral starting
// positions shared by the default initializer and the constructors.
func defaultPlacement() (geom.Coord, geom.Coord, geom.Coord) {
	return geom.Coord{X: 0, Y: 0},
		geom.Coord{X: defaultSide, Y: 0},
		geom.Coord{X: defaultSide / 2, Y: defaultSide * math.Sqrt(3) / 2}
}

// normalized translates the set so the smallest x and y coordinates both
// equal the layout margin.
func (vs VertexSet) normalized() VertexSet {
	b := vs.Bounds()
	return vs.Translated(layoutMargin-b.Min.X, layoutMargin-b.Min.Y)
}

// NewVertexSet creates the default vertex set: an equilateral placement
// labeled with the three vertex names split from name.
func NewVertexSet(name string) (VertexSet, error) {
	names, err := SplitName(name)
	if err != nil {
		return VertexSet{}, err
	}
	a, b, c := defaultPlacement()
	return assemble(names, a, b, c).normalized(), nil
}

// SSS constructs a vertex set from its three side lengths, with side a
// opposite the first vertex, b the second and c the third.
func SSS(a, b, c float64, name string) (VertexSet, error) {
	names, err := SplitName(name)
	if err != nil {
		return VertexSet{}, err
	}
	for _, length := range []float64{a, b, c} {
		if err := geometry.CheckPositiveLength(length); err != nil {
			return VertexSet{}, err
		}
	}
	if err := geometry.CheckTriangleInequality(a, b, c); err != nil {
		return VertexSet{}, err
	}

	// Slide the second vertex out to the side-c length along the base,
	// then intersect for the third above it
	pa, pb, ref := defaultPlacement()
	pb = pa.Plus(pb.Minus(pa).Unit().Times(c))
	pc, err := geometry.CircleCircleIntersection(pa, pb, b, a, ref)
	if err != nil {
		return VertexSet{}, err
	}

	vs := assemble(names, pa, pb, pc).normalized()
	if err := vs.Validate(); err != nil {
		return VertexSet{}, err
	}
	return vs, nil
}

// SAS constructs a vertex set from two sides and the included angle at
// the first vertex: side c along the base, the angle in degrees, then
// side b to the third vertex.
func SAS(b, angleA, c float64, name string) (VertexSet, error) {
	names, err := SplitName(name)
	if err != nil {
		return VertexSet{}, err
	}
	if err := geometry.CheckPositiveLength(b); err != nil {
		return VertexSet{}, err
	}
	if err := geometry.CheckPositiveLength(c); err != nil {
		return VertexSet{}, err
	}
	if err := geometry.CheckAngleRange(angleA); err != nil {
		return VertexSet{}, err
	}

	// The third vertex sits at distance b from the first, rotated
	// counterclockwise from the base direction by the included angle
	pa, pb, _ := defaultPlacement()
	pb = pa.Plus(pb.Minus(pa).Unit().Times(c))
	dir := geometry.RotateAbout(pb.Minus(pa).Unit(), geom.Coord{}, geometry.Radians(angleA))
	pc := pa.Plus(dir.Times(b))

	vs := assemble(names, pa, pb, pc).normalized()
	if err := vs.Validate(); err != nil {
		return VertexSet{}, err
	}
	return vs, nil
}

// ASA constructs a vertex set from the side between two given angles:
// the angle at the second vertex, side a, and the angle at the third.
func ASA(angleB, a, angleC float64, name string) (VertexSet, error) {
	names, err := SplitName(name)
	if err != nil {
		return VertexSet{}, err
	}
	if err := geometry.CheckPositiveLength(a); err != nil {
		return VertexSet{}, err
	}
	for _, angle := range []float64{angleB, angleC, 180 - angleB - angleC} {
		if err := geometry.CheckAngleRange(angle); err != nil {
			return VertexSet{}, err
		}
	}

	// With the base from the second to the third vertex, the apex is
	// fixed by h = a / (cot B + cot C) and x = h * cot B from B
	sinB, cosB := math.Sincos(geometry.Radians(angleB))
	sinC, cosC := math.Sincos(geometry.Radians(angleC))
	cotB := cosB / sinB
	cotC := cosC / sinC
	h := a / (cotB + cotC)

	pb := geom.Coord{X: 0, Y: 0}
	pc := geom.Coord{X: a, Y: 0}
	pa := geom.Coord{X: h * cotB, Y: h}

	vs := assemble(names, pa, pb, pc).normalized()
	if err := vs.Validate(); err != nil {
		return VertexSet{}, err
	}
	return vs, nil
}

// AAS constructs a vertex set from two angles and the side opposite the
// first: the angles at the first and second vertices in degrees, then
// side a. The third angle is implied, so the build reduces to ASA.
func AAS(angleA, angleB, a float64, name string) (VertexSet, error) {
	if err := geometry.CheckAngleRange(angleA); err != nil {
		return VertexSet{}, err
	}
	if err := geometry.CheckAngleRange(angleB); err != nil {
		return VertexSet{}, err
	}
	return ASA(angleB, a, 180-angleA-angleB, name)
}

// HL constructs a right vertex set with the right angle at the second
// vertex, from the hypotenuse and the leg along the base. The remaining
// leg follows from the Pythagorean relation.
func HL(hypotenuse, leg float64, name string) (VertexSet, error) {
	names, err := SplitName(name)
	if err != nil {
		return VertexSet{}, err
	}
	if err := geometry.CheckPositiveLength(hypotenuse); err != nil {
		return VertexSet{}, err
	}
	if err := geometry.CheckPositiveLength(leg); err != nil {
		return VertexSet{}, err
	}
	if hypotenuse <= leg {
		return VertexSet{}, fmt.Errorf("%w: hypotenuse %g must exceed leg %g", geometry.ErrInvalidLength, hypotenuse, leg)
	}

	pb := geom.Coord{X: 0, Y: 0}
	pc := geom.Coord{X: leg, Y: 0}
	pa := geom.Coord{X: 0, Y: math.Sqrt(hypotenuse*hypotenuse - leg*leg)}

	vs := assemble(names, pa, pb, pc).normalized()
	if err := vs.Validate(); err != nil {
		return VertexSet{}, err
	}
	return vs, nil
}
