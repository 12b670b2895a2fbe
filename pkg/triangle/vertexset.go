package triangle

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
	"github.com/philipparndt/gotri/pkg/geometry"
)

// VertexSet is an ordered set of exactly three labeled vertices. It is a
// plain value: solver operations take a set and return a new one, they
// never mutate the receiver. A set produced by a constructor or resolver
// always satisfies the strict triangle inequality.
type VertexSet [3]geometry.Point

// assemble builds a vertex set from three names and three positions.
func assemble(names [3]string, a, b, c geom.Coord) VertexSet {
	return VertexSet{
		{Coord: a, Name: names[0]},
		{Coord: b, Name: names[1]},
		{Coord: c, Name: names[2]},
	}
}

// Names returns the three vertex names in order.
func (vs VertexSet) Names() [3]string {
	return [3]string{vs[0].Name, vs[1].Name, vs[2].Name}
}

// Point returns the vertex with the given name.
func (vs VertexSet) Point(name string) (geometry.Point, error) {
	i := vs.indexOf(name)
	if i < 0 {
		return geometry.Point{}, fmt.Errorf("%w: %q", ErrUnknownVertex, name)
	}
	return vs[i], nil
}

// Centroid returns the arithmetic mean of the three vertex positions.
func (vs VertexSet) Centroid() geom.Coord {
	return vs[0].Coord.Plus(vs[1].Coord).Plus(vs[2].Coord).Times(1.0 / 3.0)
}

// SideLengths returns the lengths of sides a, b and c, opposite the
// first, second and third vertex.
func (vs VertexSet) SideLengths() [3]float64 {
	return [3]float64{
		vs[1].DistanceFrom(vs[2].Coord),
		vs[0].DistanceFrom(vs[2].Coord),
		vs[0].DistanceFrom(vs[1].Coord),
	}
}

// Angles returns the three interior angles in degrees, at the first,
// second and third vertex.
func (vs VertexSet) Angles() [3]float64 {
	return [3]float64{
		geometry.Degrees(geometry.InteriorAngle(vs[0].Coord, vs[1].Coord, vs[2].Coord)),
		geometry.Degrees(geometry.InteriorAngle(vs[1].Coord, vs[0].Coord, vs[2].Coord)),
		geometry.Degrees(geometry.InteriorAngle(vs[2].Coord, vs[0].Coord, vs[1].Coord)),
	}
}

// Area returns the area of the triangle.
func (vs VertexSet) Area() float64 {
	return math.Abs(vs.doubleArea()) / 2.0
}

// Perimeter returns the sum of the side lengths.
func (vs VertexSet) Perimeter() float64 {
	s := vs.SideLengths()
	return s[0] + s[1] + s[2]
}

// doubleArea returns the signed double area: positive when the vertices
// wind counter-clockwise.
func (vs VertexSet) doubleArea() float64 {
	return geom.CrossProduct(vs[1].Coord.Minus(vs[0].Coord), vs[2].Coord.Minus(vs[0].Coord))
}

// Orientation returns +1 when the vertices wind counter-clockwise and -1
// when they wind clockwise.
func (vs VertexSet) Orientation() int {
	if vs.doubleArea() < 0 {
		return -1
	}
	return 1
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (vs VertexSet) Bounds() geom.Rect {
	r := geom.Rect{Min: vs[0].Coord, Max: vs[0].Coord}
	r.ExpandToContainCoord(vs[1].Coord)
	r.ExpandToContainCoord(vs[2].Coord)
	return r
}

// Validate checks the strict triangle inequality over the current side
// lengths.
func (vs VertexSet) Validate() error {
	s := vs.SideLengths()
	return geometry.CheckTriangleInequality(s[0], s[1], s[2])
}
