package geometry

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

// Circle is a circle given by center and radius
type Circle struct {
	Center geom.Coord
	Radius float64
}

// CircleThrough computes the circle through three points.
//
// Uses the 3-point determinant formula:
//
//	D = 2(x₁(y₂-y₃) + x₂(y₃-y₁) + x₃(y₁-y₂))
//	cx = ((x₁²+y₁²)(y₂-y₃) + (x₂²+y₂²)(y₃-y₁) + (x₃²+y₃²)(y₁-y₂)) / D
//	cy = ((x₁²+y₁²)(x₃-x₂) + (x₂²+y₂²)(x₁-x₃) + (x₃²+y₃²)(x₂-x₁)) / D
func CircleThrough(p1, p2, p3 geom.Coord) (Circle, error) {
	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y
	x3, y3 := p3.X, p3.Y

	d := 2.0 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(d) < 1e-10 {
		return Circle{}, fmt.Errorf("%w: points are collinear", ErrDegenerate)
	}

	sq1 := x1*x1 + y1*y1
	sq2 := x2*x2 + y2*y2
	sq3 := x3*x3 + y3*y3

	center := geom.Coord{
		X: (sq1*(y2-y3) + sq2*(y3-y1) + sq3*(y1-y2)) / d,
		Y: (sq1*(x3-x2) + sq2*(x1-x3) + sq3*(x2-x1)) / d,
	}

	return Circle{Center: center, Radius: center.DistanceFrom(p1)}, nil
}
