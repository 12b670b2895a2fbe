package analysis

import (
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/philipparndt/gotri/pkg/triangle"
)

// classifyTol is the absolute tolerance for treating two measurements
// as equal when classifying.
const classifyTol = 1e-9

// Kind describes a triangle by its side lengths
type Kind int

const (
	Scalene Kind = iota
	Isosceles
	Equilateral
)

func (k Kind) String() string {
	switch k {
	case Equilateral:
		return "equilateral"
	case Isosceles:
		return "isosceles"
	default:
		return "scalene"
	}
}

// AngleKind describes a triangle by its largest interior angle
type AngleKind int

const (
	Acute AngleKind = iota
	Right
	Obtuse
)

func (k AngleKind) String() string {
	switch k {
	case Right:
		return "right"
	case Obtuse:
		return "obtuse"
	default:
		return "acute"
	}
}

// ClassifySides classifies a triangle by comparing its side lengths
func ClassifySides(vs triangle.VertexSet) Kind {
	s := vs.SideLengths()
	ab := scalar.EqualWithinAbs(s[0], s[1], classifyTol)
	bc := scalar.EqualWithinAbs(s[1], s[2], classifyTol)
	ca := scalar.EqualWithinAbs(s[2], s[0], classifyTol)

	switch {
	case ab && bc && ca:
		return Equilateral
	case ab || bc || ca:
		return Isosceles
	default:
		return Scalene
	}
}

// ClassifyAngles classifies a triangle by its largest interior angle
func ClassifyAngles(vs triangle.VertexSet) AngleKind {
	largest := 0.0
	for _, angle := range vs.Angles() {
		if angle > largest {
			largest = angle
		}
	}

	switch {
	case scalar.EqualWithinAbs(largest, 90, classifyTol):
		return Right
	case largest > 90:
		return Obtuse
	default:
		return Acute
	}
}
