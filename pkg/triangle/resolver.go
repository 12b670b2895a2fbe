package triangle

import (
	"fmt"

	"github.com/philipparndt/gotri/pkg/geometry"
)

// anchorIndex picks the vertex that stays fixed among the candidates:
// leftmost by x, then bottommost by y. The tie-break is load-bearing:
// it decides which vertex moves for a given constraint set.
func (vs VertexSet) anchorIndex(candidates ...int) int {
	best := candidates[0]
	for _, i := range candidates[1:] {
		if vs[i].X < vs[best].X || (vs[i].X == vs[best].X && vs[i].Y < vs[best].Y) {
			best = i
		}
	}
	return best
}

// WithSideLengths returns the set recomputed so the named sides have the
// requested lengths. One, two or three distinct physical sides may be
// constrained; duplicate tokens naming one side must agree exactly.
// Relocated vertices keep their side of the reference edge, so the
// winding never flips. On any failure the receiver is returned
// unchanged together with the error.
func (vs VertexSet) WithSideLengths(changes map[string]float64) (VertexSet, error) {
	var lengths [3]float64
	var requested [3]bool

	for token, length := range changes {
		k, err := vs.ResolveSide(token)
		if err != nil {
			return vs, err
		}
		if requested[k] && lengths[k] != length {
			return vs, fmt.Errorf("%w: side %s requested as both %g and %g", ErrConflictingConstraint, vs.SideName(k), lengths[k], length)
		}
		lengths[k] = length
		requested[k] = true
	}

	var sides []int
	for k := range lengths {
		if requested[k] {
			if err := geometry.CheckPositiveLength(lengths[k]); err != nil {
				return vs, err
			}
			sides = append(sides, k)
		}
	}

	switch len(sides) {
	case 1:
		return vs.withOneSide(sides[0], lengths[sides[0]])
	case 2:
		return vs.withTwoSides(sides[0], lengths[sides[0]], sides[1], lengths[sides[1]])
	case 3:
		return vs.withThreeSides(lengths)
	default:
		return vs, nil
	}
}

// withOneSide changes the length of a single side. The anchor endpoint
// stays, the other endpoint slides along the side's direction, and the
// uninvolved vertex is relocated to keep its original distances to both
// endpoints.
func (vs VertexSet) withOneSide(k int, length float64) (VertexSet, error) {
	i, j := sideEndpoints(k)
	fixed := vs.anchorIndex(i, j)
	moving := i + j - fixed

	// The uninvolved vertex is the one opposite the side, vs[k]. Its
	// distances to both endpoints are captured before the slide.
	dFixed := vs[k].DistanceFrom(vs[fixed].Coord)
	dMoving := vs[k].DistanceFrom(vs[moving].Coord)

	next := vs
	dir := vs[moving].Coord.Minus(vs[fixed].Coord).Unit()
	next[moving].Coord = vs[fixed].Coord.Plus(dir.Times(length))

	relocated, err := geometry.CircleCircleIntersection(next[fixed].Coord, next[moving].Coord, dFixed, dMoving, vs[k].Coord)
	if err != nil {
		return vs, err
	}
	next[k].Coord = relocated

	if err := next.Validate(); err != nil {
		return vs, err
	}
	return next, nil
}

// withTwoSides changes two sides at once. The two sides meet in exactly
// one shared vertex, which is relocated from the two endpoints that do
// not move; the side between those endpoints keeps its current length.
func (vs VertexSet) withTwoSides(k1 int, l1 float64, k2 int, l2 float64) (VertexSet, error) {
	// Side k1 joins the shared vertex with vertex k2, side k2 joins it
	// with vertex k1, so the shared vertex is the remaining index.
	shared := 3 - k1 - k2

	third := vs[k1].DistanceFrom(vs[k2].Coord)
	if err := geometry.CheckTriangleInequality(l1, l2, third); err != nil {
		return vs, err
	}

	relocated, err := geometry.CircleCircleIntersection(vs[k2].Coord, vs[k1].Coord, l1, l2, vs[shared].Coord)
	if err != nil {
		return vs, err
	}

	next := vs
	next[shared].Coord = relocated

	if err := next.Validate(); err != nil {
		return vs, err
	}
	return next, nil
}

// withThreeSides rebuilds the set with all three side lengths replaced.
// The anchor vertex keeps its position, the next vertex by the same
// tie-break slides along their shared side, and the last vertex is
// relocated by intersection.
func (vs VertexSet) withThreeSides(lengths [3]float64) (VertexSet, error) {
	if err := geometry.CheckTriangleInequality(lengths[0], lengths[1], lengths[2]); err != nil {
		return vs, err
	}

	fixed := vs.anchorIndex(0, 1, 2)
	i, j := sideEndpoints(fixed)
	second := vs.anchorIndex(i, j)
	third := 3 - fixed - second

	next := vs
	dir := vs[second].Coord.Minus(vs[fixed].Coord).Unit()
	next[second].Coord = vs[fixed].Coord.Plus(dir.Times(lengths[third]))

	relocated, err := geometry.CircleCircleIntersection(next[fixed].Coord, next[second].Coord, lengths[second], lengths[fixed], vs[third].Coord)
	if err != nil {
		return vs, err
	}
	next[third].Coord = relocated

	if err := next.Validate(); err != nil {
		return vs, err
	}
	return next, nil
}
