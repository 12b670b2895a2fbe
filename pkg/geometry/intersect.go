package geometry

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

// CircleCircleIntersection computes the point at distance r1 from p1 and
// r2 from p2, choosing between the two candidate intersections the one
// that lies on the same side of line p1->p2 as the reference point. A
// reference point on the line itself selects the positive-offset
// candidate.
//
// Uses the standard two-circle reduction:
//
//	a = (r1² - r2² + D²) / (2D)
//	h = sqrt(r1² - a²)
//
// where D is the distance between the centers and the candidates sit at
// the foot point p1 + a·u offset by ±h perpendicular to u = (p2-p1)/D.
func CircleCircleIntersection(p1, p2 geom.Coord, r1, r2 float64, side geom.Coord) (geom.Coord, error) {
	// Step 1: Center distance; coincident centers have no unique solution
	dist := p1.DistanceFrom(p2)
	if dist == 0 {
		return geom.Coord{}, fmt.Errorf("%w: coincident circle centers", ErrDegenerate)
	}

	// Step 2: Project the solution onto the p1->p2 axis
	a := (r1*r1 - r2*r2 + dist*dist) / (2 * dist)

	// Step 3: Perpendicular offset; a negative radicand means the circles
	// do not intersect and the requested distances are not realizable
	radicand := r1*r1 - a*a
	if radicand < 0 {
		return geom.Coord{}, fmt.Errorf("%w: circles with radii %g and %g at distance %g do not intersect", ErrDegenerate, r1, r2, dist)
	}
	h := math.Sqrt(radicand)

	// Step 4: Foot point and the two candidates along the perpendicular
	u := p2.Minus(p1).Unit()
	perp := geom.Coord{X: -u.Y, Y: u.X}
	foot := p1.Plus(u.Times(a))

	// Step 5: Keep the candidate on the reference point's side of p1->p2
	if geom.CrossProduct(u, side.Minus(p1)) < 0 {
		return foot.Plus(perp.Times(-h)), nil
	}
	return foot.Plus(perp.Times(h)), nil
}
