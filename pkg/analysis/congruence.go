package analysis

import (
	"sort"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/philipparndt/gotri/pkg/triangle"
)

// sortedSides returns the side lengths in ascending order, factoring
// vertex labeling out of the comparison.
func sortedSides(vs triangle.VertexSet) [3]float64 {
	s := vs.SideLengths()
	sort.Float64s(s[:])
	return s
}

// Congruent reports whether two triangles have the same side lengths up
// to relabeling.
func Congruent(x, y triangle.VertexSet) bool {
	xs := sortedSides(x)
	ys := sortedSides(y)

	for i := range xs {
		if !scalar.EqualWithinAbs(xs[i], ys[i], classifyTol) {
			return false
		}
	}
	return true
}

// Similar reports whether two triangles have proportional side lengths
// up to relabeling, and returns the ratio of the second to the first.
func Similar(x, y triangle.VertexSet) (float64, bool) {
	xs := sortedSides(x)
	ys := sortedSides(y)

	ratio := ys[0] / xs[0]
	for i := 1; i < len(xs); i++ {
		if !scalar.EqualWithinAbs(ys[i]/xs[i], ratio, classifyTol) {
			return 0, false
		}
	}
	return ratio, true
}
