package triangle

import (
	"fmt"

	"github.com/jbeda/geom"
	"github.com/philipparndt/gotri/pkg/geometry"
)

// Translated returns the set moved by the given offsets.
func (vs VertexSet) Translated(dx, dy float64) VertexSet {
	d := geom.Coord{X: dx, Y: dy}
	for i := range vs {
		vs[i].Coord = vs[i].Coord.Plus(d)
	}
	return vs
}

// PointTranslated returns the set with the named vertex moved by the
// given offsets and the other two vertices unchanged.
func (vs VertexSet) PointTranslated(name string, dx, dy float64) (VertexSet, error) {
	i := vs.indexOf(name)
	if i < 0 {
		return vs, fmt.Errorf("%w: %q", ErrUnknownVertex, name)
	}
	vs[i].Coord = vs[i].Coord.Plus(geom.Coord{X: dx, Y: dy})
	return vs, nil
}

// Rotated returns the set rotated about its centroid by the given angle
// in degrees. Positive angles turn clockwise, negative angles turn
// counter-clockwise.
func (vs VertexSet) Rotated(degrees float64) VertexSet {
	centroid := vs.Centroid()
	radians := -geometry.Radians(degrees)
	for i := range vs {
		vs[i].Coord = geometry.RotateAbout(vs[i].Coord, centroid, radians)
	}
	return vs
}

// Scaled returns the set with every vertex displaced by (factor - 1)
// times its offset from the centroid: factor 1 leaves the set unchanged
// and factor 2 doubles each centroid offset. The factor is not
// validated.
func (vs VertexSet) Scaled(factor float64) VertexSet {
	centroid := vs.Centroid()
	for i := range vs {
		vs[i].Coord = vs[i].Coord.Plus(vs[i].Coord.Minus(centroid).Times(factor - 1))
	}
	return vs
}

// Reflected returns the set mirrored across the given line. The vertex
// order is kept, so the winding direction reverses.
func (vs VertexSet) Reflected(line geometry.Line) (VertexSet, error) {
	if err := line.Validate(); err != nil {
		return vs, err
	}
	for i := range vs {
		vs[i].Coord = line.Reflect(vs[i].Coord)
	}
	return vs, nil
}
